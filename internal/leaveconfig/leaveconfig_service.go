package leaveconfig

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	leaveconfigerrors "go-hris-leave/internal/leaveconfig/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_.]{1,100}$`)

//go:generate mockgen -source=leaveconfig_service.go -destination=mock/leaveconfig_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreateConfigRequest) (ConfigResponse, error)
	Upsert(ctx context.Context, companyID, actorID, key string, value json.RawMessage) (ConfigResponse, error)
	GetByKey(ctx context.Context, companyID, key string) (ConfigResponse, error)
	GetAll(ctx context.Context, companyID string) ([]ConfigResponse, error)
	GetYear(ctx context.Context, companyID string, year int) (YearConfig, error)
	SaveYear(ctx context.Context, companyID, actorID string, cfg YearConfig) (ConfigResponse, error)
	// YearAllocations returns leave_type_id -> days for the year; found is
	// false when no config row exists.
	YearAllocations(ctx context.Context, companyID string, year int) (allocations map[string]decimal.Decimal, found bool, err error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leaveconfig.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaveconfig.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, companyID, actorID string, req CreateConfigRequest) (ConfigResponse, error) {
	s.logger.Debug("create leave config requested",
		zap.String("company_id", companyID),
		zap.String("key", req.Key),
	)

	cfg, err := s.buildConfig(companyID, actorID, req.Key, req.Value)
	if err != nil {
		s.logger.Warn("create leave config validation failed", zap.String("key", req.Key), zap.Error(err))
		return ConfigResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave config begin tx failed", zap.Error(err))
		return ConfigResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, cfg); err != nil {
		mapped := mapRepositoryError(err)
		if errors.Is(mapped, leaveconfigerrors.ErrConfigKeyExists) {
			s.logger.Warn("create leave config duplicate key", zap.String("key", req.Key))
		} else {
			s.logger.Error("create leave config persist failed", zap.Error(err))
		}
		return ConfigResponse{}, mapped
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave config commit failed", zap.Error(err))
		return ConfigResponse{}, err
	}

	s.logger.Info("create leave config success", zap.String("key", req.Key))
	return mapToResponse(*cfg), nil
}

// Upsert writes key, replacing the value when the key already exists.
func (s *service) Upsert(ctx context.Context, companyID, actorID, key string, value json.RawMessage) (ConfigResponse, error) {
	s.logger.Debug("upsert leave config requested",
		zap.String("company_id", companyID),
		zap.String("key", key),
	)

	cfg, err := s.buildConfig(companyID, actorID, key, value)
	if err != nil {
		s.logger.Warn("upsert leave config validation failed", zap.String("key", key), zap.Error(err))
		return ConfigResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("upsert leave config begin tx failed", zap.Error(err))
		return ConfigResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Upsert(ctx, cfg); err != nil {
		s.logger.Error("upsert leave config persist failed", zap.Error(err))
		return ConfigResponse{}, mapRepositoryError(err)
	}
	stored, err := qtx.FindByKey(ctx, companyID, key)
	if err != nil {
		s.logger.Error("upsert leave config reload failed", zap.Error(err))
		return ConfigResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("upsert leave config commit failed", zap.Error(err))
		return ConfigResponse{}, err
	}

	s.logger.Info("upsert leave config success", zap.String("key", key))
	return mapToResponse(*stored), nil
}

func (s *service) GetByKey(ctx context.Context, companyID, key string) (ConfigResponse, error) {
	cfg, err := s.repo.FindByKey(ctx, companyID, key)
	if err != nil {
		return ConfigResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*cfg), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]ConfigResponse, error) {
	cfgs, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("list leave configs failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	res := make([]ConfigResponse, 0, len(cfgs))
	for _, c := range cfgs {
		res = append(res, mapToResponse(c))
	}
	return res, nil
}

func (s *service) GetYear(ctx context.Context, companyID string, year int) (YearConfig, error) {
	if !validYear(year) {
		return YearConfig{}, leaveconfigerrors.ErrInvalidYear
	}
	cfg, err := s.repo.FindByKey(ctx, companyID, YearKey(year))
	if err != nil {
		return YearConfig{}, mapRepositoryError(err)
	}
	var yc YearConfig
	if err := json.Unmarshal(cfg.Value, &yc); err != nil {
		s.logger.Error("stored leave config is not decodable",
			zap.String("key", cfg.Key),
			zap.Error(err),
		)
		return YearConfig{}, err
	}
	return yc, nil
}

func (s *service) SaveYear(ctx context.Context, companyID, actorID string, cfg YearConfig) (ConfigResponse, error) {
	value, err := json.Marshal(cfg)
	if err != nil {
		return ConfigResponse{}, err
	}
	return s.Upsert(ctx, companyID, actorID, YearKey(cfg.Year), value)
}

func (s *service) YearAllocations(ctx context.Context, companyID string, year int) (map[string]decimal.Decimal, bool, error) {
	yc, err := s.GetYear(ctx, companyID, year)
	if err != nil {
		if errors.Is(err, leaveconfigerrors.ErrConfigNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	out := make(map[string]decimal.Decimal, len(yc.Allocations))
	for _, a := range yc.Allocations {
		out[a.LeaveTypeID] = decimal.NewFromFloat(a.MaxDays).Round(1)
	}
	return out, true, nil
}

func (s *service) buildConfig(companyID, actorID, key string, value json.RawMessage) (*GlobalLeaveConfig, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, leaveconfigerrors.ErrInvalidCompanyID
	}
	if !keyPattern.MatchString(key) {
		return nil, leaveconfigerrors.ErrInvalidKey
	}
	if !json.Valid(value) {
		return nil, leaveconfigerrors.ErrInvalidValue
	}
	if strings.HasPrefix(key, YearKeyPrefix) {
		if err := validateYearValue(key, value); err != nil {
			return nil, err
		}
	}

	actor := uuidPtr(actorID)
	return &GlobalLeaveConfig{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		Key:       key,
		Value:     value,
		CreatedBy: actor,
		UpdatedBy: actor,
		UpdatedAt: time.Now().UTC(),
	}, nil
}

// validateYearValue guards the keys read by balance population.
func validateYearValue(key string, value json.RawMessage) error {
	year, err := strconv.Atoi(strings.TrimPrefix(key, YearKeyPrefix))
	if err != nil || !validYear(year) {
		return leaveconfigerrors.ErrInvalidKey
	}
	var yc YearConfig
	if err := json.Unmarshal(value, &yc); err != nil || yc.Year != year {
		return leaveconfigerrors.ErrInvalidYearConfig
	}
	for _, a := range yc.Allocations {
		if _, err := uuid.Parse(a.LeaveTypeID); err != nil {
			return leaveconfigerrors.ErrInvalidYearConfig.WithDetails(allocationDetails(a.LeaveTypeID))
		}
		if a.MaxDays < 0 || a.MaxDays > 365 {
			return leaveconfigerrors.ErrInvalidYearConfig.WithDetails(allocationDetails(a.LeaveTypeID))
		}
	}
	return nil
}

func allocationDetails(leaveTypeID string) map[string]string {
	return map[string]string{"leave_type_id": leaveTypeID}
}

func validYear(year int) bool {
	return year >= 2000 && year <= 2100
}

func uuidPtr(s string) *uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

func mapToResponse(c GlobalLeaveConfig) ConfigResponse {
	return ConfigResponse{
		ID:        c.ID.String(),
		Key:       c.Key,
		Value:     c.Value,
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}
