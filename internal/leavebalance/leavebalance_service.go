package leavebalance

import (
	"context"
	"database/sql"
	"io"
	"time"

	leavebalanceerrors "go-hris-leave/internal/leavebalance/errors"
	"go-hris-leave/internal/leavescheme"
	"go-hris-leave/internal/leavetype"
	"go-hris-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=leavebalance_service.go -destination=mock/leavebalance_service_mock.go -package=mock

// EmployeeDirectory lists the employees that receive balances.
type EmployeeDirectory interface {
	ActiveEmployeeIDs(ctx context.Context, companyID string) ([]string, error)
}

type SchemeResolver interface {
	ActiveSchemeFor(ctx context.Context, companyID, employeeID string, on time.Time) (*leavescheme.ActiveScheme, error)
}

type YearConfigSource interface {
	YearAllocations(ctx context.Context, companyID string, year int) (map[string]decimal.Decimal, bool, error)
}

// Ledger is the write side driven by the application workflow.
type Ledger interface {
	// Current is a plain read, used for advisory checks.
	Current(ctx context.Context, companyID, employeeID, leaveTypeID string, year int) (*LeaveBalance, error)
	// AdjustUsed locks the balance row and moves used_days by delta. With a
	// non-nil tx the caller owns commit and rollback.
	AdjustUsed(ctx context.Context, tx *sql.Tx, companyID, employeeID, leaveTypeID string, year int, delta decimal.Decimal) (*LeaveBalance, error)
}

type Service interface {
	Ledger

	GetBalance(ctx context.Context, companyID, employeeID, leaveTypeID string, year int) (BalanceResponse, error)
	GetEmployeeBalances(ctx context.Context, companyID, employeeID string, year int) ([]BalanceResponse, error)
	PopulateForYear(ctx context.Context, companyID string, year int) (PopulateResult, error)
	PopulateForEmployee(ctx context.Context, companyID, employeeID string, year int) (PopulateResult, error)
	AdjustAllocation(ctx context.Context, companyID, id string, req AdjustAllocationRequest) (BalanceResponse, error)
	ExportXLSX(ctx context.Context, companyID string, year int, w io.Writer) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	catalog   leavetype.Catalog
	configs   YearConfigSource
	schemes   SchemeResolver
	directory EmployeeDirectory
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	catalog leavetype.Catalog,
	configs YearConfigSource,
	schemes SchemeResolver,
	directory EmployeeDirectory,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leavebalance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavebalance.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		catalog:   catalog,
		configs:   configs,
		schemes:   schemes,
		directory: directory,
		logger:    l,
	}
}

func (s *service) GetBalance(ctx context.Context, companyID, employeeID, leaveTypeID string, year int) (BalanceResponse, error) {
	b, err := s.Current(ctx, companyID, employeeID, leaveTypeID, year)
	if err != nil {
		return BalanceResponse{}, err
	}
	return mapToResponse(*b), nil
}

func (s *service) Current(ctx context.Context, companyID, employeeID, leaveTypeID string, year int) (*LeaveBalance, error) {
	if err := validateKey(companyID, employeeID, leaveTypeID, year); err != nil {
		return nil, err
	}
	b, err := s.repo.FindByKey(ctx, companyID, employeeID, leaveTypeID, year)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return b, nil
}

func (s *service) GetEmployeeBalances(ctx context.Context, companyID, employeeID string, year int) ([]BalanceResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, leavebalanceerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, leavebalanceerrors.ErrInvalidEmployeeID
	}
	if !validYear(year) {
		return nil, leavebalanceerrors.ErrInvalidYear
	}

	balances, err := s.repo.FindByEmployee(ctx, companyID, employeeID, year)
	if err != nil {
		s.logger.Error("list employee balances failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	resp := make([]BalanceResponse, 0, len(balances))
	for _, b := range balances {
		resp = append(resp, mapToResponse(b))
	}
	return resp, nil
}

func (s *service) AdjustUsed(
	ctx context.Context,
	tx *sql.Tx,
	companyID, employeeID, leaveTypeID string,
	year int,
	delta decimal.Decimal,
) (*LeaveBalance, error) {
	if err := validateKey(companyID, employeeID, leaveTypeID, year); err != nil {
		return nil, err
	}
	if tx != nil {
		return s.adjustUsed(ctx, tx, companyID, employeeID, leaveTypeID, year, delta)
	}

	own, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("adjust used begin tx failed", zap.Error(err))
		return nil, err
	}
	defer own.Rollback()

	b, err := s.adjustUsed(ctx, own, companyID, employeeID, leaveTypeID, year, delta)
	if err != nil {
		return nil, err
	}
	if err := own.Commit(); err != nil {
		s.logger.Error("adjust used commit failed", zap.Error(err))
		return nil, err
	}
	return b, nil
}

func (s *service) adjustUsed(
	ctx context.Context,
	tx *sql.Tx,
	companyID, employeeID, leaveTypeID string,
	year int,
	delta decimal.Decimal,
) (*LeaveBalance, error) {
	log := contextutil.GetLogger(ctx, s.logger).With(
		zap.String("employee_id", employeeID),
		zap.String("leave_type_id", leaveTypeID),
		zap.Int("year", year),
		zap.String("delta", delta.String()),
	)

	qtx := s.repo.WithTx(tx)
	b, err := qtx.LockByKey(ctx, companyID, employeeID, leaveTypeID, year)
	if err != nil {
		mapped := mapRepositoryError(err)
		if mapped == err {
			log.Error("lock leave balance failed", zap.Error(err))
		}
		return nil, mapped
	}

	next, err := CheckDelta(*b, delta)
	if err != nil {
		log.Warn("leave balance adjustment rejected",
			zap.String("allocated_days", b.AllocatedDays.String()),
			zap.String("used_days", b.UsedDays.String()),
		)
		return nil, err
	}

	rows, err := qtx.IncrementUsed(ctx, b.ID.String(), delta)
	if err != nil {
		log.Error("increment used days failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	if rows == 0 {
		log.Warn("guarded increment matched no row")
		return nil, leavebalanceerrors.ErrInsufficientBalance
	}

	b.UsedDays = next
	log.Info("leave balance adjusted", zap.String("used_days", next.String()))
	return b, nil
}

func (s *service) AdjustAllocation(ctx context.Context, companyID, id string, req AdjustAllocationRequest) (BalanceResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return BalanceResponse{}, leavebalanceerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(id); err != nil {
		return BalanceResponse{}, leavebalanceerrors.ErrInvalidBalanceID
	}
	if req.AllocatedDays == nil {
		return BalanceResponse{}, leavebalanceerrors.ErrInvalidAllocation
	}
	allocated := decimal.NewFromFloat(*req.AllocatedDays)
	if allocated.IsNegative() || allocated.GreaterThan(decimal.NewFromInt(365)) || !allocated.Mul(decimal.NewFromInt(2)).IsInteger() {
		return BalanceResponse{}, leavebalanceerrors.ErrInvalidAllocation
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("adjust allocation begin tx failed", zap.Error(err))
		return BalanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	b, err := qtx.LockByID(ctx, companyID, id)
	if err != nil {
		return BalanceResponse{}, mapRepositoryError(err)
	}
	if allocated.LessThan(b.UsedDays) {
		s.logger.Warn("allocation below used days",
			zap.String("balance_id", id),
			zap.String("allocated_days", allocated.String()),
			zap.String("used_days", b.UsedDays.String()),
		)
		return BalanceResponse{}, leavebalanceerrors.ErrAllocationBelowUsed.WithDetails(map[string]float64{
			"used_days":      b.UsedDays.InexactFloat64(),
			"allocated_days": allocated.InexactFloat64(),
		})
	}

	rows, err := qtx.UpdateAllocated(ctx, id, allocated)
	if err != nil {
		s.logger.Error("update allocation failed", zap.String("balance_id", id), zap.Error(err))
		return BalanceResponse{}, mapRepositoryError(err)
	}
	if rows == 0 {
		return BalanceResponse{}, leavebalanceerrors.ErrAllocationBelowUsed
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("adjust allocation commit failed", zap.Error(err))
		return BalanceResponse{}, err
	}

	b.AllocatedDays = allocated
	s.logger.Info("leave allocation adjusted",
		zap.String("balance_id", id),
		zap.String("allocated_days", allocated.String()),
	)
	return mapToResponse(*b), nil
}

func (s *service) PopulateForYear(ctx context.Context, companyID string, year int) (PopulateResult, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("populate leave balances requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.Int("year", year),
	)
	if _, err := uuid.Parse(companyID); err != nil {
		return PopulateResult{}, leavebalanceerrors.ErrInvalidCompanyID
	}
	if !validYear(year) {
		return PopulateResult{}, leavebalanceerrors.ErrInvalidYear
	}

	employeeIDs, err := s.directory.ActiveEmployeeIDs(ctx, companyID)
	if err != nil {
		s.logger.Error("list active employees failed", zap.Error(err))
		return PopulateResult{}, err
	}
	return s.populate(ctx, companyID, year, employeeIDs)
}

func (s *service) PopulateForEmployee(ctx context.Context, companyID, employeeID string, year int) (PopulateResult, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return PopulateResult{}, leavebalanceerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return PopulateResult{}, leavebalanceerrors.ErrInvalidEmployeeID
	}
	if !validYear(year) {
		return PopulateResult{}, leavebalanceerrors.ErrInvalidYear
	}
	return s.populate(ctx, companyID, year, []string{employeeID})
}

func (s *service) populate(ctx context.Context, companyID string, year int, employeeIDs []string) (PopulateResult, error) {
	types, err := s.catalog.ListActive(ctx, companyID)
	if err != nil {
		s.logger.Error("list active leave types failed", zap.Error(err))
		return PopulateResult{}, err
	}
	yearConfig, found, err := s.configs.YearAllocations(ctx, companyID, year)
	if err != nil {
		s.logger.Error("load year config failed", zap.Int("year", year), zap.Error(err))
		return PopulateResult{}, err
	}
	if !found {
		yearConfig = nil
	}

	on := ReferenceDate(year, time.Now().UTC())
	result := PopulateResult{Year: year, Employees: len(employeeIDs)}
	for _, employeeID := range employeeIDs {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		created, skipped, err := s.populateEmployee(ctx, companyID, employeeID, year, types, yearConfig, on)
		if err != nil {
			s.logger.Error("populate employee balances failed",
				zap.String("employee_id", employeeID),
				zap.Int("year", year),
				zap.Error(err),
			)
			result.Failed++
			result.FailedEmployeeIDs = append(result.FailedEmployeeIDs, employeeID)
			continue
		}
		result.Created += created
		result.Skipped += skipped
	}

	s.logger.Info("leave balances populated",
		zap.String("company_id", companyID),
		zap.Int("year", year),
		zap.Int("employees", result.Employees),
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

// populateEmployee inserts the missing rows of one employee in its own tx.
func (s *service) populateEmployee(
	ctx context.Context,
	companyID, employeeID string,
	year int,
	types []leavetype.LeaveType,
	yearConfig map[string]decimal.Decimal,
	on time.Time,
) (int, int, error) {
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return 0, 0, leavebalanceerrors.ErrInvalidEmployeeID
	}
	scheme, err := s.schemes.ActiveSchemeFor(ctx, companyID, employeeID, on)
	if err != nil {
		return 0, 0, err
	}
	plan := planAllocations(types, scheme, yearConfig)
	if len(plan) == 0 {
		return 0, 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	companyUUID := uuid.MustParse(companyID)
	created, skipped := 0, 0
	for _, a := range plan {
		ok, err := qtx.InsertIfAbsent(ctx, &LeaveBalance{
			CompanyID:     companyUUID,
			EmployeeID:    employeeUUID,
			LeaveTypeID:   a.LeaveTypeID,
			Year:          year,
			AllocatedDays: a.Days,
			UsedDays:      decimal.Zero,
			Source:        a.Source,
			SchemeID:      a.SchemeID,
		})
		if err != nil {
			return 0, 0, err
		}
		if ok {
			created++
		} else {
			skipped++
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, 0, err
	}
	return created, skipped, nil
}

func validateKey(companyID, employeeID, leaveTypeID string, year int) error {
	if _, err := uuid.Parse(companyID); err != nil {
		return leavebalanceerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return leavebalanceerrors.ErrInvalidEmployeeID
	}
	if _, err := uuid.Parse(leaveTypeID); err != nil {
		return leavebalanceerrors.ErrInvalidLeaveTypeID
	}
	if !validYear(year) {
		return leavebalanceerrors.ErrInvalidYear
	}
	return nil
}

func validYear(year int) bool {
	return year >= 2000 && year <= 2100
}

func mapToResponse(b LeaveBalance) BalanceResponse {
	resp := BalanceResponse{
		ID:            b.ID.String(),
		EmployeeID:    b.EmployeeID.String(),
		LeaveTypeID:   b.LeaveTypeID.String(),
		Year:          b.Year,
		AllocatedDays: b.AllocatedDays.InexactFloat64(),
		UsedDays:      b.UsedDays.InexactFloat64(),
		RemainingDays: b.RemainingDays().InexactFloat64(),
		Source:        b.Source,
	}
	if b.SchemeID != nil {
		resp.SchemeID = b.SchemeID.String()
	}
	return resp
}
