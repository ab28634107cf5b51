package leave

import (
	"context"
	"fmt"
	"time"

	leaveerrors "go-hris-leave/internal/leave/errors"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const calendarProductID = "-//go-hris-leave//approved leave//EN"

// Calendar renders the approved applications touching year as an iCalendar
// feed. An empty employeeID covers the whole company.
func (s *service) Calendar(ctx context.Context, companyID, employeeID string, year int) (string, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return "", leaveerrors.ErrInvalidCompanyID
	}
	if employeeID != "" {
		if _, err := uuid.Parse(employeeID); err != nil {
			return "", leaveerrors.ErrInvalidEmployeeID
		}
	}
	if year < 2000 || year > 2100 {
		return "", leaveerrors.ErrInvalidYear
	}

	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	apps, err := s.repo.FindApprovedInRange(ctx, companyID, employeeID, from, to)
	if err != nil {
		s.logger.Error("leave calendar query failed", zap.String("company_id", companyID), zap.Error(err))
		return "", err
	}

	s.logger.Debug("leave calendar rendered",
		zap.String("company_id", companyID),
		zap.Int("year", year),
		zap.Int("events", len(apps)),
	)
	return renderCalendar(apps, time.Now().UTC()), nil
}

func renderCalendar(apps []LeaveApplication, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(calendarProductID)

	for _, l := range apps {
		event := cal.AddEvent(l.ID.String() + "@go-hris-leave")
		event.SetDtStampTime(stamp)
		// DTEND of an all-day event is exclusive.
		event.SetAllDayStartAt(l.StartDate)
		event.SetAllDayEndAt(l.EndDate.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("%s leave (%s days)", l.ReferenceNo, l.WorkingDays.String()))
		if isHalfDay(l.DurationType) {
			event.SetDescription(l.DurationType)
		}
	}
	return cal.Serialize()
}
