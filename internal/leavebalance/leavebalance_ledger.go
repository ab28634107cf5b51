package leavebalance

import (
	"time"

	leavebalanceerrors "go-hris-leave/internal/leavebalance/errors"
	"go-hris-leave/internal/leavescheme"
	"go-hris-leave/internal/leavetype"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func Remaining(b LeaveBalance) decimal.Decimal {
	return b.AllocatedDays.Sub(b.UsedDays)
}

// CheckDelta returns the used_days b would hold after applying delta, or a
// balance error when the result leaves [0, allocated_days].
func CheckDelta(b LeaveBalance, delta decimal.Decimal) (decimal.Decimal, error) {
	next := b.UsedDays.Add(delta)
	details := map[string]float64{
		"allocated_days": b.AllocatedDays.InexactFloat64(),
		"used_days":      b.UsedDays.InexactFloat64(),
		"remaining_days": Remaining(b).InexactFloat64(),
		"requested_days": delta.InexactFloat64(),
	}
	if next.IsNegative() {
		return b.UsedDays, leavebalanceerrors.ErrBalanceUnderflow.WithDetails(details)
	}
	if next.GreaterThan(b.AllocatedDays) {
		return b.UsedDays, leavebalanceerrors.ErrInsufficientBalance.WithDetails(details)
	}
	return next, nil
}

// ReferenceDate clamps today into the given year. Scheme assignments are
// resolved at this date when populating.
func ReferenceDate(year int, today time.Time) time.Time {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	d := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if d.Before(start) {
		return start
	}
	if d.After(end) {
		return end
	}
	return d
}

type allocation struct {
	LeaveTypeID uuid.UUID
	Days        decimal.Decimal
	Source      string
	SchemeID    *uuid.UUID
}

// planAllocations decides the allocated days per active leave type. An
// active scheme wins and limits the rows to the scheme's leave types. Without
// one the year config applies, falling back to the leave type's max_days.
func planAllocations(
	types []leavetype.LeaveType,
	scheme *leavescheme.ActiveScheme,
	yearConfig map[string]decimal.Decimal,
) []allocation {
	plan := make([]allocation, 0, len(types))
	if scheme != nil {
		schemeID := scheme.SchemeID
		for _, lt := range types {
			allowance, ok := scheme.Allowances[lt.ID.String()]
			if !ok {
				continue
			}
			plan = append(plan, allocation{
				LeaveTypeID: lt.ID,
				Days:        allowance.Days,
				Source:      SourceScheme,
				SchemeID:    &schemeID,
			})
		}
		return plan
	}

	for _, lt := range types {
		if days, ok := yearConfig[lt.ID.String()]; ok {
			plan = append(plan, allocation{LeaveTypeID: lt.ID, Days: days, Source: SourceGlobal})
			continue
		}
		plan = append(plan, allocation{LeaveTypeID: lt.ID, Days: lt.MaxDays, Source: SourceLeaveType})
	}
	return plan
}
