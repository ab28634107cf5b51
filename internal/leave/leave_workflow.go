package leave

import (
	"time"

	leaveerrors "go-hris-leave/internal/leave/errors"

	"github.com/shopspring/decimal"
)

var transitions = map[string][]string{
	StatusPending:  {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved: {StatusCancelled},
}

func isAllowedStatusTransition(current, target string) bool {
	for _, next := range transitions[current] {
		if next == target {
			return true
		}
	}
	return false
}

func transitionError(current, target string) error {
	return leaveerrors.ErrInvalidStatusTransition.WithDetails(map[string]string{
		"current_status":   current,
		"attempted_status": target,
	})
}

func isHalfDay(durationType string) bool {
	return durationType == DurationHalfDayMorning || durationType == DurationHalfDayAfternoon
}

// WorkingDays counts the inclusive calendar days of the range, or 0.5 for a
// half-day application on a single date.
func WorkingDays(start, end time.Time, durationType string) (decimal.Decimal, error) {
	switch durationType {
	case "", DurationFullDay, DurationHalfDayMorning, DurationHalfDayAfternoon:
	default:
		return decimal.Zero, leaveerrors.ErrInvalidDurationType
	}
	if end.Before(start) {
		return decimal.Zero, leaveerrors.ErrInvalidDateRange
	}
	if start.Year() != end.Year() {
		return decimal.Zero, leaveerrors.ErrCrossYearRange
	}
	if isHalfDay(durationType) {
		if !start.Equal(end) {
			return decimal.Zero, leaveerrors.ErrHalfDayRange
		}
		return decimal.NewFromFloat(0.5), nil
	}
	days := int64(end.Sub(start).Hours()/24) + 1
	return decimal.NewFromInt(days), nil
}
