package leavetype

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	leavetypeerrors "go-hris-leave/internal/leavetype/errors"
	"go-hris-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	ListKeyPrefix = "leave_types:list:"
	listCacheTTL  = 30 * time.Minute
)

func GetListKey(companyID string, activeOnly bool) string {
	if activeOnly {
		return ListKeyPrefix + companyID + ":active"
	}
	return ListKeyPrefix + companyID + ":all"
}

// Catalog is the read side consumed by the balance ledger and the
// application workflow.
type Catalog interface {
	ListActive(ctx context.Context, companyID string) ([]LeaveType, error)
	Lookup(ctx context.Context, companyID, id string) (*LeaveType, error)
}

//go:generate mockgen -source=leavetype_service.go -destination=mock/leavetype_service_mock.go -package=mock
type Service interface {
	Catalog
	Create(ctx context.Context, companyID, actorID string, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	GetAll(ctx context.Context, companyID string, activeOnly bool) ([]LeaveTypeResponse, error)
	GetByID(ctx context.Context, companyID, id string) (LeaveTypeResponse, error)
	Update(ctx context.Context, companyID, actorID, id string, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)
	Deactivate(ctx context.Context, companyID, actorID, id string) (LeaveTypeResponse, error)
	InvalidateCache(ctx context.Context, companyID string)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavetype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavetype.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, companyID, actorID string, req CreateLeaveTypeRequest) (LeaveTypeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave type requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("name", req.Name),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidCompanyID
	}
	maxDays, err := parseMaxDays(req.MaxDays)
	if err != nil {
		s.logger.Warn("create leave type invalid max_days", zap.Float64("max_days", req.MaxDays))
		return LeaveTypeResponse{}, err
	}

	isPaid := true
	if req.IsPaid != nil {
		isPaid = *req.IsPaid
	}

	lt := &LeaveType{
		ID:          uuid.New(),
		CompanyID:   companyUUID,
		Name:        req.Name,
		Code:        req.Code,
		MaxDays:     maxDays,
		Description: req.Description,
		Color:       req.Color,
		IsPaid:      isPaid,
		IsActive:    true,
		CreatedBy:   uuidPtr(actorID),
		UpdatedBy:   uuidPtr(actorID),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave type begin tx failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, lt); err != nil {
		mapped := mapRepositoryError(err)
		if errors.Is(mapped, leavetypeerrors.ErrLeaveTypeNameExists) {
			s.logger.Warn("create leave type duplicate name", zap.String("name", req.Name))
		} else {
			s.logger.Error("create leave type persist failed", zap.Error(err))
		}
		return LeaveTypeResponse{}, mapped
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave type commit failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	s.InvalidateCache(ctx, companyID)
	s.logger.Info("create leave type success",
		zap.String("request_id", rid),
		zap.String("leave_type_id", lt.ID.String()),
	)
	return mapToResponse(*lt), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, activeOnly bool) ([]LeaveTypeResponse, error) {
	cacheKey := GetListKey(companyID, activeOnly)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []LeaveTypeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		types, err := s.repo.FindAllByCompany(ctx, companyID, activeOnly)
		if err != nil {
			s.logger.Error("list leave types failed", zap.Error(err))
			return nil, mapRepositoryError(err)
		}
		resp := mapToListResponse(types)

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, data, listCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]LeaveTypeResponse), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (LeaveTypeResponse, error) {
	lt, err := s.Lookup(ctx, companyID, id)
	if err != nil {
		return LeaveTypeResponse{}, err
	}
	return mapToResponse(*lt), nil
}

func (s *service) Update(ctx context.Context, companyID, actorID, id string, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error) {
	s.logger.Debug("update leave type requested",
		zap.String("company_id", companyID),
		zap.String("leave_type_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidLeaveTypeID
	}
	maxDays, err := parseMaxDays(req.MaxDays)
	if err != nil {
		return LeaveTypeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update leave type begin tx failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	lt, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	lt.Name = req.Name
	lt.Code = req.Code
	lt.MaxDays = maxDays
	lt.Description = req.Description
	lt.Color = req.Color
	if req.IsPaid != nil {
		lt.IsPaid = *req.IsPaid
	}
	if req.IsActive != nil {
		lt.IsActive = *req.IsActive
	}
	lt.UpdatedBy = uuidPtr(actorID)

	if err := qtx.Update(ctx, lt); err != nil {
		s.logger.Error("update leave type persist failed", zap.Error(err))
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update leave type commit failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	s.InvalidateCache(ctx, companyID)
	s.logger.Info("update leave type success", zap.String("leave_type_id", id))
	return mapToResponse(*lt), nil
}

// Deactivate soft-disables a leave type. Balances and applications keep
// referencing the row, so it is never deleted.
func (s *service) Deactivate(ctx context.Context, companyID, actorID, id string) (LeaveTypeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveTypeResponse{}, leavetypeerrors.ErrInvalidLeaveTypeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("deactivate leave type begin tx failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	lt, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}

	lt.IsActive = false
	lt.UpdatedBy = uuidPtr(actorID)
	if err := qtx.Update(ctx, lt); err != nil {
		s.logger.Error("deactivate leave type persist failed", zap.Error(err))
		return LeaveTypeResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("deactivate leave type commit failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	s.InvalidateCache(ctx, companyID)
	s.logger.Info("deactivate leave type success", zap.String("leave_type_id", id))
	return mapToResponse(*lt), nil
}

func (s *service) ListActive(ctx context.Context, companyID string) ([]LeaveType, error) {
	types, err := s.repo.FindAllByCompany(ctx, companyID, true)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return types, nil
}

func (s *service) Lookup(ctx context.Context, companyID, id string) (*LeaveType, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, leavetypeerrors.ErrInvalidLeaveTypeID
	}
	lt, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return lt, nil
}

func (s *service) InvalidateCache(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	keys := []string{GetListKey(companyID, false), GetListKey(companyID, true)}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.logger.Error("failed to invalidate leave type cache",
			zap.Error(err),
			zap.Strings("keys", keys),
		)
	}
}

func parseMaxDays(v float64) (decimal.Decimal, error) {
	d := decimal.NewFromFloat(v)
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(365)) {
		return decimal.Zero, leavetypeerrors.ErrInvalidMaxDays
	}
	if !d.Mul(decimal.NewFromInt(2)).IsInteger() {
		return decimal.Zero, leavetypeerrors.ErrInvalidMaxDays
	}
	return d.Round(1), nil
}

func uuidPtr(s string) *uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

func mapToResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:          lt.ID.String(),
		CompanyID:   lt.CompanyID.String(),
		Name:        lt.Name,
		Code:        lt.Code,
		MaxDays:     lt.MaxDays.InexactFloat64(),
		Description: lt.Description,
		Color:       lt.Color,
		IsPaid:      lt.IsPaid,
		IsActive:    lt.IsActive,
		CreatedAt:   lt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   lt.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(types []LeaveType) []LeaveTypeResponse {
	res := make([]LeaveTypeResponse, 0, len(types))
	for _, lt := range types {
		res = append(res, mapToResponse(lt))
	}
	return res
}
