package leavescheme

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	leaveschemeerrors "go-hris-leave/internal/leavescheme/errors"
	"go-hris-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=leavescheme_service.go -destination=mock/leavescheme_service_mock.go -package=mock
type Service interface {
	CreateScheme(ctx context.Context, companyID, actorID string, req CreateSchemeRequest) (SchemeResponse, error)
	GetAllSchemes(ctx context.Context, companyID string) ([]SchemeResponse, error)
	GetScheme(ctx context.Context, companyID, id string) (SchemeResponse, error)
	UpdateScheme(ctx context.Context, companyID, actorID, id string, req UpdateSchemeRequest) (SchemeResponse, error)
	DeactivateScheme(ctx context.Context, companyID, actorID, id string) (SchemeResponse, error)

	UpsertAllowance(ctx context.Context, companyID, schemeID, leaveTypeID string, req UpsertAllowanceRequest) (AllowanceResponse, error)
	RemoveAllowance(ctx context.Context, companyID, schemeID, leaveTypeID string) error

	AssignScheme(ctx context.Context, companyID, actorID, schemeID string, req AssignSchemeRequest) (AssignmentResponse, error)
	UpdateAssignment(ctx context.Context, companyID, assignmentID string, req UpdateAssignmentRequest) (AssignmentResponse, error)
	RemoveAssignment(ctx context.Context, companyID, assignmentID string) error
	GetEmployeeAssignments(ctx context.Context, companyID, employeeID string) ([]AssignmentResponse, error)

	// ActiveSchemeFor returns nil when no active scheme covers the date.
	ActiveSchemeFor(ctx context.Context, companyID, employeeID string, on time.Time) (*ActiveScheme, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavescheme.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavescheme.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) CreateScheme(ctx context.Context, companyID, actorID string, req CreateSchemeRequest) (SchemeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave scheme requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("name", req.Name),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return SchemeResponse{}, leaveschemeerrors.ErrInvalidCompanyID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave scheme begin tx failed", zap.Error(err))
		return SchemeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	name := strings.TrimSpace(req.Name)
	exists, err := qtx.ActiveNameExists(ctx, companyID, name, "")
	if err != nil {
		s.logger.Error("create leave scheme name check failed", zap.Error(err))
		return SchemeResponse{}, err
	}
	if exists {
		s.logger.Warn("create leave scheme duplicate name", zap.String("name", name))
		return SchemeResponse{}, leaveschemeerrors.ErrSchemeNameExists
	}

	actor := uuidPtr(actorID)
	scheme := &LeaveScheme{
		ID:          uuid.New(),
		CompanyID:   companyUUID,
		Name:        name,
		Description: req.Description,
		IsActive:    true,
		CreatedBy:   actor,
		UpdatedBy:   actor,
	}
	if err := qtx.CreateScheme(ctx, scheme); err != nil {
		s.logger.Error("create leave scheme persist failed", zap.Error(err))
		return SchemeResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave scheme commit failed", zap.Error(err))
		return SchemeResponse{}, err
	}

	s.logger.Info("create leave scheme success",
		zap.String("request_id", rid),
		zap.String("scheme_id", scheme.ID.String()),
	)
	return mapSchemeResponse(*scheme, nil), nil
}

func (s *service) GetAllSchemes(ctx context.Context, companyID string) ([]SchemeResponse, error) {
	schemes, err := s.repo.FindAllSchemes(ctx, companyID)
	if err != nil {
		s.logger.Error("list leave schemes failed", zap.Error(err))
		return nil, err
	}
	res := make([]SchemeResponse, 0, len(schemes))
	for _, sc := range schemes {
		res = append(res, mapSchemeResponse(sc, nil))
	}
	return res, nil
}

func (s *service) GetScheme(ctx context.Context, companyID, id string) (SchemeResponse, error) {
	scheme, err := s.findScheme(ctx, s.repo, companyID, id)
	if err != nil {
		return SchemeResponse{}, err
	}
	allowances, err := s.repo.FindAllowances(ctx, id)
	if err != nil {
		s.logger.Error("get leave scheme allowances failed", zap.Error(err))
		return SchemeResponse{}, err
	}
	return mapSchemeResponse(*scheme, allowances), nil
}

func (s *service) UpdateScheme(ctx context.Context, companyID, actorID, id string, req UpdateSchemeRequest) (SchemeResponse, error) {
	s.logger.Debug("update leave scheme requested",
		zap.String("company_id", companyID),
		zap.String("scheme_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update leave scheme begin tx failed", zap.Error(err))
		return SchemeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	scheme, err := s.findScheme(ctx, qtx, companyID, id)
	if err != nil {
		return SchemeResponse{}, err
	}

	scheme.Name = strings.TrimSpace(req.Name)
	scheme.Description = req.Description
	if req.IsActive != nil {
		scheme.IsActive = *req.IsActive
	}
	scheme.UpdatedBy = uuidPtr(actorID)

	if scheme.IsActive {
		exists, err := qtx.ActiveNameExists(ctx, companyID, scheme.Name, id)
		if err != nil {
			s.logger.Error("update leave scheme name check failed", zap.Error(err))
			return SchemeResponse{}, err
		}
		if exists {
			s.logger.Warn("update leave scheme duplicate name", zap.String("name", scheme.Name))
			return SchemeResponse{}, leaveschemeerrors.ErrSchemeNameExists
		}
	}

	if err := qtx.UpdateScheme(ctx, scheme); err != nil {
		s.logger.Error("update leave scheme persist failed", zap.Error(err))
		return SchemeResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update leave scheme commit failed", zap.Error(err))
		return SchemeResponse{}, err
	}

	s.logger.Info("update leave scheme success", zap.String("scheme_id", id))
	return mapSchemeResponse(*scheme, nil), nil
}

func (s *service) DeactivateScheme(ctx context.Context, companyID, actorID, id string) (SchemeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("deactivate leave scheme begin tx failed", zap.Error(err))
		return SchemeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	scheme, err := s.findScheme(ctx, qtx, companyID, id)
	if err != nil {
		return SchemeResponse{}, err
	}
	scheme.IsActive = false
	scheme.UpdatedBy = uuidPtr(actorID)

	if err := qtx.UpdateScheme(ctx, scheme); err != nil {
		s.logger.Error("deactivate leave scheme persist failed", zap.Error(err))
		return SchemeResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("deactivate leave scheme commit failed", zap.Error(err))
		return SchemeResponse{}, err
	}

	s.logger.Info("deactivate leave scheme success", zap.String("scheme_id", id))
	return mapSchemeResponse(*scheme, nil), nil
}

// UpsertAllowance is idempotent on (scheme, leave type): a second call with
// the same pair replaces the allowance.
func (s *service) UpsertAllowance(ctx context.Context, companyID, schemeID, leaveTypeID string, req UpsertAllowanceRequest) (AllowanceResponse, error) {
	s.logger.Debug("upsert scheme allowance requested",
		zap.String("company_id", companyID),
		zap.String("scheme_id", schemeID),
		zap.String("leave_type_id", leaveTypeID),
		zap.Float64("days_allowed", req.DaysAllowed),
	)

	leaveTypeUUID, err := uuid.Parse(leaveTypeID)
	if err != nil {
		return AllowanceResponse{}, leaveschemeerrors.ErrInvalidLeaveTypeID
	}
	days := decimal.NewFromFloat(req.DaysAllowed)
	if days.IsNegative() || days.GreaterThan(decimal.NewFromInt(365)) || !days.Mul(decimal.NewFromInt(2)).IsInteger() {
		s.logger.Warn("upsert scheme allowance invalid days", zap.Float64("days_allowed", req.DaysAllowed))
		return AllowanceResponse{}, leaveschemeerrors.ErrInvalidDaysAllowed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("upsert scheme allowance begin tx failed", zap.Error(err))
		return AllowanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	scheme, err := s.findScheme(ctx, qtx, companyID, schemeID)
	if err != nil {
		return AllowanceResponse{}, err
	}
	ok, err := qtx.LeaveTypeExists(ctx, companyID, leaveTypeID)
	if err != nil {
		s.logger.Error("upsert scheme allowance leave type check failed", zap.Error(err))
		return AllowanceResponse{}, err
	}
	if !ok {
		return AllowanceResponse{}, leaveschemeerrors.ErrLeaveTypeNotFound
	}

	allowance := &SchemeLeaveType{
		ID:          uuid.New(),
		SchemeID:    scheme.ID,
		LeaveTypeID: leaveTypeUUID,
		DaysAllowed: days.Round(1),
		IsPaid:      req.IsPaid,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := qtx.UpsertAllowance(ctx, allowance); err != nil {
		s.logger.Error("upsert scheme allowance persist failed", zap.Error(err))
		return AllowanceResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("upsert scheme allowance commit failed", zap.Error(err))
		return AllowanceResponse{}, err
	}

	s.logger.Info("upsert scheme allowance success",
		zap.String("scheme_id", schemeID),
		zap.String("leave_type_id", leaveTypeID),
	)
	return mapAllowanceResponse(*allowance), nil
}

func (s *service) RemoveAllowance(ctx context.Context, companyID, schemeID, leaveTypeID string) error {
	if _, err := uuid.Parse(leaveTypeID); err != nil {
		return leaveschemeerrors.ErrInvalidLeaveTypeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("remove scheme allowance begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if _, err := s.findScheme(ctx, qtx, companyID, schemeID); err != nil {
		return err
	}
	affected, err := qtx.DeleteAllowance(ctx, schemeID, leaveTypeID)
	if err != nil {
		s.logger.Error("remove scheme allowance persist failed", zap.Error(err))
		return err
	}
	if affected == 0 {
		return leaveschemeerrors.ErrAllowanceNotFound
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("remove scheme allowance commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("remove scheme allowance success",
		zap.String("scheme_id", schemeID),
		zap.String("leave_type_id", leaveTypeID),
	)
	return nil
}

func (s *service) AssignScheme(ctx context.Context, companyID, actorID, schemeID string, req AssignSchemeRequest) (AssignmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("assign leave scheme requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("scheme_id", schemeID),
		zap.String("employee_id", req.EmployeeID),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return AssignmentResponse{}, leaveschemeerrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AssignmentResponse{}, leaveschemeerrors.ErrInvalidEmployeeID
	}
	window, err := parseWindow(req.EffectiveFrom, req.EffectiveTo)
	if err != nil {
		s.logger.Warn("assign leave scheme invalid window", zap.Error(err))
		return AssignmentResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("assign leave scheme begin tx failed", zap.Error(err))
		return AssignmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	scheme, err := s.findScheme(ctx, qtx, companyID, schemeID)
	if err != nil {
		return AssignmentResponse{}, err
	}
	if !scheme.IsActive {
		return AssignmentResponse{}, leaveschemeerrors.ErrSchemeInactive
	}
	exists, err := qtx.EmployeeExists(ctx, companyID, req.EmployeeID)
	if err != nil {
		s.logger.Error("assign leave scheme employee check failed", zap.Error(err))
		return AssignmentResponse{}, err
	}
	if !exists {
		return AssignmentResponse{}, leaveschemeerrors.ErrEmployeeNotFound
	}

	if err := s.ensureNoOverlap(ctx, qtx, companyID, req.EmployeeID, "", window); err != nil {
		return AssignmentResponse{}, err
	}

	assignment := &EmployeeLeaveScheme{
		ID:            uuid.New(),
		CompanyID:     companyUUID,
		EmployeeID:    employeeUUID,
		SchemeID:      scheme.ID,
		EffectiveFrom: window.From,
		EffectiveTo:   window.To,
		CreatedBy:     uuidPtr(actorID),
	}
	if err := qtx.CreateAssignment(ctx, assignment); err != nil {
		s.logger.Error("assign leave scheme persist failed", zap.Error(err))
		return AssignmentResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("assign leave scheme commit failed", zap.Error(err))
		return AssignmentResponse{}, err
	}

	s.logger.Info("assign leave scheme success",
		zap.String("request_id", rid),
		zap.String("assignment_id", assignment.ID.String()),
	)
	return mapAssignmentResponse(*assignment), nil
}

func (s *service) UpdateAssignment(ctx context.Context, companyID, assignmentID string, req UpdateAssignmentRequest) (AssignmentResponse, error) {
	window, err := parseWindow(req.EffectiveFrom, req.EffectiveTo)
	if err != nil {
		return AssignmentResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update scheme assignment begin tx failed", zap.Error(err))
		return AssignmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	assignment, err := qtx.FindAssignmentByID(ctx, companyID, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AssignmentResponse{}, leaveschemeerrors.ErrAssignmentNotFound
		}
		return AssignmentResponse{}, err
	}

	if err := s.ensureNoOverlap(ctx, qtx, companyID, assignment.EmployeeID.String(), assignmentID, window); err != nil {
		return AssignmentResponse{}, err
	}

	assignment.EffectiveFrom = window.From
	assignment.EffectiveTo = window.To
	if err := qtx.UpdateAssignment(ctx, assignment); err != nil {
		s.logger.Error("update scheme assignment persist failed", zap.Error(err))
		return AssignmentResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update scheme assignment commit failed", zap.Error(err))
		return AssignmentResponse{}, err
	}

	s.logger.Info("update scheme assignment success", zap.String("assignment_id", assignmentID))
	return mapAssignmentResponse(*assignment), nil
}

func (s *service) RemoveAssignment(ctx context.Context, companyID, assignmentID string) error {
	affected, err := s.repo.DeleteAssignment(ctx, companyID, assignmentID)
	if err != nil {
		s.logger.Error("remove scheme assignment failed", zap.Error(err))
		return err
	}
	if affected == 0 {
		return leaveschemeerrors.ErrAssignmentNotFound
	}
	s.logger.Info("remove scheme assignment success", zap.String("assignment_id", assignmentID))
	return nil
}

func (s *service) GetEmployeeAssignments(ctx context.Context, companyID, employeeID string) ([]AssignmentResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, leaveschemeerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.FindAssignmentsByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, err
	}
	res := make([]AssignmentResponse, 0, len(rows))
	for _, a := range rows {
		res = append(res, mapAssignmentResponse(a))
	}
	return res, nil
}

func (s *service) ActiveSchemeFor(ctx context.Context, companyID, employeeID string, on time.Time) (*ActiveScheme, error) {
	assignment, err := s.repo.FindActiveAssignment(ctx, companyID, employeeID, on)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	scheme, err := s.repo.FindSchemeByID(ctx, companyID, assignment.SchemeID.String())
	if err != nil {
		return nil, err
	}
	allowances, err := s.repo.FindAllowances(ctx, scheme.ID.String())
	if err != nil {
		return nil, err
	}

	active := &ActiveScheme{
		SchemeID:   scheme.ID,
		Name:       scheme.Name,
		Allowances: make(map[string]Allowance, len(allowances)),
	}
	for _, a := range allowances {
		active.Allowances[a.LeaveTypeID.String()] = Allowance{Days: a.DaysAllowed, IsPaid: a.IsPaid}
	}
	return active, nil
}

// ensureNoOverlap must run inside the write transaction.
func (s *service) ensureNoOverlap(ctx context.Context, qtx Repository, companyID, employeeID, excludeID string, window Window) error {
	if err := qtx.LockEmployeeAssignments(ctx, employeeID); err != nil {
		s.logger.Error("lock employee assignments failed", zap.Error(err))
		return err
	}
	existing, err := qtx.FindAssignmentsByEmployee(ctx, companyID, employeeID)
	if err != nil {
		s.logger.Error("load employee assignments failed", zap.Error(err))
		return err
	}
	for _, a := range existing {
		if a.ID.String() == excludeID {
			continue
		}
		if a.Window().Overlaps(window) {
			s.logger.Warn("scheme assignment overlap detected",
				zap.String("employee_id", employeeID),
				zap.String("existing_assignment_id", a.ID.String()),
			)
			return leaveschemeerrors.ErrAssignmentOverlap.WithDetails(map[string]any{
				"conflicting_assignment_id": a.ID.String(),
				"effective_from":            a.EffectiveFrom.Format(dateLayout),
				"effective_to":              formatDatePtr(a.EffectiveTo),
			})
		}
	}
	return nil
}

func (s *service) findScheme(ctx context.Context, repo Repository, companyID, id string) (*LeaveScheme, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, leaveschemeerrors.ErrInvalidSchemeID
	}
	scheme, err := repo.FindSchemeByID(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveschemeerrors.ErrSchemeNotFound
		}
		s.logger.Error("find leave scheme failed", zap.Error(err))
		return nil, err
	}
	return scheme, nil
}

func parseWindow(from string, to *string) (Window, error) {
	start, err := time.Parse(dateLayout, from)
	if err != nil {
		return Window{}, leaveschemeerrors.ErrInvalidDateFormat
	}
	w := Window{From: start}
	if to != nil && *to != "" {
		end, err := time.Parse(dateLayout, *to)
		if err != nil {
			return Window{}, leaveschemeerrors.ErrInvalidDateFormat
		}
		w.To = &end
	}
	if !w.Valid() {
		return Window{}, leaveschemeerrors.ErrInvalidWindow
	}
	return w, nil
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func uuidPtr(s string) *uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

func mapSchemeResponse(sc LeaveScheme, allowances []SchemeLeaveType) SchemeResponse {
	res := SchemeResponse{
		ID:          sc.ID.String(),
		Name:        sc.Name,
		Description: sc.Description,
		IsActive:    sc.IsActive,
		CreatedAt:   sc.CreatedAt.Format(time.RFC3339),
	}
	for _, a := range allowances {
		res.LeaveTypes = append(res.LeaveTypes, mapAllowanceResponse(a))
	}
	return res
}

func mapAllowanceResponse(a SchemeLeaveType) AllowanceResponse {
	return AllowanceResponse{
		LeaveTypeID: a.LeaveTypeID.String(),
		DaysAllowed: a.DaysAllowed.InexactFloat64(),
		IsPaid:      a.IsPaid,
	}
}

func mapAssignmentResponse(a EmployeeLeaveScheme) AssignmentResponse {
	return AssignmentResponse{
		ID:            a.ID.String(),
		EmployeeID:    a.EmployeeID.String(),
		SchemeID:      a.SchemeID.String(),
		EffectiveFrom: a.EffectiveFrom.Format(dateLayout),
		EffectiveTo:   formatDatePtr(a.EffectiveTo),
	}
}
