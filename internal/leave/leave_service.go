package leave

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/events"
	leaveerrors "go-hris-leave/internal/leave/errors"
	"go-hris-leave/internal/leavebalance"
	leavebalanceerrors "go-hris-leave/internal/leavebalance/errors"
	"go-hris-leave/internal/leavetype"
	"go-hris-leave/internal/messaging/kafka"
	"go-hris-leave/internal/shared/contextutil"
	"go-hris-leave/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// EmployeeDirectory answers whether an employee may file leave.
type EmployeeDirectory interface {
	IsActive(ctx context.Context, companyID, employeeID string) (bool, error)
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, companyID, actorID string, req SubmitLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, companyID, actorID, id string, req ApproveLeaveRequest) (LeaveResponse, error)
	Reject(ctx context.Context, companyID, actorID, id string, req RejectLeaveRequest) (LeaveResponse, error)
	Cancel(ctx context.Context, companyID, actorID, id string, req CancelLeaveRequest) (LeaveResponse, error)
	GetByID(ctx context.Context, companyID, id string) (LeaveResponse, error)
	GetAll(ctx context.Context, companyID string, filter ListFilter) ([]LeaveResponse, int64, error)
	Calendar(ctx context.Context, companyID, employeeID string, year int) (string, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	catalog   leavetype.Catalog
	ledger    leavebalance.Ledger
	directory EmployeeDirectory
	counter   counter.Repository
	outbox    kafka.OutboxRepository
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	catalog leavetype.Catalog,
	ledger leavebalance.Ledger,
	directory EmployeeDirectory,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		catalog:   catalog,
		ledger:    ledger,
		directory: directory,
		counter:   counter,
		outbox:    outboxRepo,
		logger:    l,
	}
}

func (s *service) Submit(ctx context.Context, companyID, actorID string, req SubmitLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit leave requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("actor_id", actorID),
		zap.String("leave_type_id", req.LeaveTypeID),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	employeeID := strings.TrimSpace(req.EmployeeID)
	if employeeID == "" {
		employeeID = actorID
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	if employeeUUID != actorUUID && !contextutil.GetCapabilities(ctx).Has(domain.ResourceLeaveApplication, domain.ActionManage) {
		s.logger.Warn("submit leave on behalf refused",
			zap.String("actor_id", actorID),
			zap.String("employee_id", employeeID),
		)
		return LeaveResponse{}, leaveerrors.ErrFileOnBehalfForbidden
	}
	leaveTypeUUID, err := uuid.Parse(req.LeaveTypeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveTypeID
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	durationType := req.LeaveDurationType
	if durationType == "" {
		durationType = DurationFullDay
	}
	workingDays, err := WorkingDays(startDate, endDate, durationType)
	if err != nil {
		s.logger.Warn("submit leave invalid period",
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
			zap.String("duration_type", durationType),
		)
		return LeaveResponse{}, err
	}

	lt, err := s.catalog.Lookup(ctx, companyID, req.LeaveTypeID)
	if err != nil {
		return LeaveResponse{}, err
	}
	if !lt.IsActive {
		return LeaveResponse{}, leaveerrors.ErrLeaveTypeInactive
	}

	active, err := s.directory.IsActive(ctx, companyID, employeeID)
	if err != nil {
		s.logger.Error("submit leave employee lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if !active {
		return LeaveResponse{}, leaveerrors.ErrEmployeeNotFound
	}

	// Advisory only: nothing is reserved, approval re-checks under a row lock.
	year := startDate.Year()
	if err := s.checkRemaining(ctx, companyID, employeeID, req.LeaveTypeID, year, workingDays); err != nil {
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit leave begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	overlap, err := qtx.HasOverlappingPeriod(ctx, companyID, employeeID, startDate, endDate, nil)
	if err != nil {
		s.logger.Error("submit leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("submit leave overlapping period",
			zap.String("employee_id", employeeID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrOverlappingLeave
	}

	next, err := s.counter.WithTx(tx).GetNextValue(ctx, companyID, ReferencePrefix)
	if err != nil {
		s.logger.Error("submit leave generate reference failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	l := &LeaveApplication{
		ID:                 uuid.New(),
		CompanyID:          companyUUID,
		ReferenceNo:        counter.FormatReference(ReferencePrefix, year, next),
		EmployeeID:         employeeUUID,
		LeaveTypeID:        leaveTypeUUID,
		StartDate:          startDate,
		EndDate:            endDate,
		DurationType:       durationType,
		WorkingDays:        workingDays,
		Reason:             optional(req.Reason),
		ContactDuringLeave: optional(req.ContactDuringLeave),
		AttachmentURL:      optional(req.AttachmentURL),
		Status:             StatusPending,
		CreatedBy:          actorUUID,
	}
	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("submit leave persist failed", zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("submit leave commit failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("submit leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", l.ID.String()),
		zap.String("reference_no", l.ReferenceNo),
		zap.String("working_days", workingDays.String()),
	)
	return mapToResponse(*l), nil
}

func (s *service) checkRemaining(ctx context.Context, companyID, employeeID, leaveTypeID string, year int, requested decimal.Decimal) error {
	b, err := s.ledger.Current(ctx, companyID, employeeID, leaveTypeID, year)
	if err != nil {
		if errors.Is(err, leavebalanceerrors.ErrBalanceNotFound) {
			s.logger.Warn("submit leave without balance row",
				zap.String("employee_id", employeeID),
				zap.String("leave_type_id", leaveTypeID),
				zap.Int("year", year),
			)
			return leavebalanceerrors.ErrInsufficientBalance.WithDetails(map[string]float64{
				"remaining_days": 0,
				"requested_days": requested.InexactFloat64(),
			})
		}
		return err
	}
	if b.RemainingDays().LessThan(requested) {
		s.logger.Warn("submit leave insufficient balance",
			zap.String("employee_id", employeeID),
			zap.String("remaining_days", b.RemainingDays().String()),
			zap.String("requested_days", requested.String()),
		)
		return leavebalanceerrors.ErrInsufficientBalance.WithDetails(map[string]float64{
			"remaining_days": b.RemainingDays().InexactFloat64(),
			"requested_days": requested.InexactFloat64(),
		})
	}
	return nil
}

func (s *service) Approve(ctx context.Context, companyID, actorID, id string, req ApproveLeaveRequest) (LeaveResponse, error) {
	return s.transitionLeaveStatus(ctx, companyID, actorID, id, StatusApproved, optional(req.Comments))
}

func (s *service) Reject(ctx context.Context, companyID, actorID, id string, req RejectLeaveRequest) (LeaveResponse, error) {
	return s.transitionLeaveStatus(ctx, companyID, actorID, id, StatusRejected, optional(req.RejectionReason))
}

func (s *service) Cancel(ctx context.Context, companyID, actorID, id string, req CancelLeaveRequest) (LeaveResponse, error) {
	return s.transitionLeaveStatus(ctx, companyID, actorID, id, StatusCancelled, optional(req.CancellationReason))
}

// transitionLeaveStatus applies the status change and its balance effect in
// one transaction. note is the comment, rejection or cancellation reason.
func (s *service) transitionLeaveStatus(ctx context.Context, companyID, actorID, id, targetStatus string, note *string) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("transition leave status requested",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("company_id", companyID),
		zap.String("actor_id", actorID),
		zap.String("target_status", targetStatus),
	)

	if _, err := uuid.Parse(companyID); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidApplicationID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("transition leave status begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	l, err := qtx.LockByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	previous := l.Status
	if !isAllowedStatusTransition(previous, targetStatus) {
		s.logger.Warn("transition leave status invalid",
			zap.String("leave_id", id),
			zap.String("from_status", previous),
			zap.String("to_status", targetStatus),
		)
		return LeaveResponse{}, transitionError(previous, targetStatus)
	}
	if targetStatus == StatusCancelled && l.EmployeeID != actorUUID &&
		!contextutil.GetCapabilities(ctx).Has(domain.ResourceLeaveApplication, domain.ActionApprove) {
		return LeaveResponse{}, leaveerrors.ErrCancelForbidden
	}

	var delta decimal.Decimal
	switch {
	case targetStatus == StatusApproved:
		delta = l.WorkingDays
	case targetStatus == StatusCancelled && previous == StatusApproved:
		delta = l.WorkingDays.Neg()
	}
	if !delta.IsZero() {
		if _, err := s.ledger.AdjustUsed(ctx, tx, companyID, l.EmployeeID.String(), l.LeaveTypeID.String(), l.Year(), delta); err != nil {
			s.logger.Warn("transition leave status balance rejected",
				zap.String("leave_id", id),
				zap.String("to_status", targetStatus),
				zap.Error(err),
			)
			return LeaveResponse{}, err
		}
	}

	now := time.Now().UTC()
	l.Status = targetStatus
	switch targetStatus {
	case StatusApproved:
		l.ApprovedBy = &actorUUID
		l.ApprovedAt = &now
		l.Comments = note
	case StatusRejected:
		l.RejectedBy = &actorUUID
		l.RejectedAt = &now
		l.RejectionReason = note
	case StatusCancelled:
		l.CancelledBy = &actorUUID
		l.CancelledAt = &now
		l.CancellationReason = note
	}

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("transition leave status persist failed",
			zap.String("leave_id", id),
			zap.String("target_status", targetStatus),
			zap.Error(err),
		)
		return LeaveResponse{}, mapRepositoryError(err)
	}

	if !delta.IsZero() {
		if err := s.queueEvent(ctx, tx, l, actorID, now); err != nil {
			s.logger.Error("transition leave status outbox persist failed",
				zap.String("leave_id", id),
				zap.Error(err),
			)
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("transition leave status commit failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	s.logger.Info("transition leave status success",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("from_status", previous),
		zap.String("status", targetStatus),
	)
	return mapToResponse(*l), nil
}

func (s *service) queueEvent(ctx context.Context, tx *sql.Tx, l *LeaveApplication, actorID string, at time.Time) error {
	if s.outbox == nil {
		return nil
	}
	eventType := events.LeaveApplicationApproved
	if l.Status == StatusCancelled {
		eventType = events.LeaveApplicationCancelled
	}
	event, err := kafka.NewOutboxEvent(
		contextutil.GetRequestID(ctx),
		"leave_application",
		l.ID.String(),
		eventType,
		events.LeaveApplicationTopic,
		events.LeaveApplicationEvent{
			EventType:     eventType,
			ApplicationID: l.ID.String(),
			ReferenceNo:   l.ReferenceNo,
			CompanyID:     l.CompanyID.String(),
			EmployeeID:    l.EmployeeID.String(),
			LeaveTypeID:   l.LeaveTypeID.String(),
			StartDate:     l.StartDate.Format(dateLayout),
			EndDate:       l.EndDate.Format(dateLayout),
			WorkingDays:   l.WorkingDays.InexactFloat64(),
			Status:        l.Status,
			ActorID:       actorID,
			OccurredAt:    at,
		},
	)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidApplicationID
	}
	l, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, filter ListFilter) ([]LeaveResponse, int64, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, 0, leaveerrors.ErrInvalidCompanyID
	}
	switch filter.Status {
	case "", StatusPending, StatusApproved, StatusRejected, StatusCancelled:
	default:
		return nil, 0, leaveerrors.ErrInvalidStatusFilter
	}
	if filter.EmployeeID != "" {
		if _, err := uuid.Parse(filter.EmployeeID); err != nil {
			return nil, 0, leaveerrors.ErrInvalidEmployeeID
		}
	}
	if filter.Year != 0 && (filter.Year < 2000 || filter.Year > 2100) {
		return nil, 0, leaveerrors.ErrInvalidYear
	}
	if filter.Page < 1 {
		filter.Page = 1
	}

	apps, total, err := s.repo.FindAll(ctx, companyID, filter)
	if err != nil {
		s.logger.Error("list leave applications failed", zap.Error(err))
		return nil, 0, err
	}
	return mapToListResponse(apps), total, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	v := id.String()
	return &v
}

func mapToResponse(l LeaveApplication) LeaveResponse {
	return LeaveResponse{
		ID:                 l.ID.String(),
		ReferenceNo:        l.ReferenceNo,
		CompanyID:          l.CompanyID.String(),
		EmployeeID:         l.EmployeeID.String(),
		LeaveTypeID:        l.LeaveTypeID.String(),
		StartDate:          l.StartDate.Format(dateLayout),
		EndDate:            l.EndDate.Format(dateLayout),
		LeaveDurationType:  l.DurationType,
		WorkingDays:        l.WorkingDays.InexactFloat64(),
		Reason:             l.Reason,
		ContactDuringLeave: l.ContactDuringLeave,
		AttachmentURL:      l.AttachmentURL,
		Comments:           l.Comments,
		Status:             l.Status,
		CreatedBy:          l.CreatedBy.String(),
		ApprovedBy:         uuidString(l.ApprovedBy),
		ApprovedAt:         formatTime(l.ApprovedAt),
		RejectedBy:         uuidString(l.RejectedBy),
		RejectedAt:         formatTime(l.RejectedAt),
		RejectionReason:    l.RejectionReason,
		CancelledBy:        uuidString(l.CancelledBy),
		CancelledAt:        formatTime(l.CancelledAt),
		CancellationReason: l.CancellationReason,
		CreatedAt:          l.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(apps []LeaveApplication) []LeaveResponse {
	resp := make([]LeaveResponse, len(apps))
	for i, l := range apps {
		resp[i] = mapToResponse(l)
	}
	return resp
}
