package employee

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	employeeerrors "go-hris-leave/internal/employee/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	ActiveEmployeesKeyPrefix = "employees:active:"
	activeEmployeesTTL       = 5 * time.Minute
)

func GetActiveEmployeesKey(companyID string) string {
	return ActiveEmployeesKeyPrefix + companyID
}

// Service is the read-only employee directory used by the leave modules.
//
//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetActive(ctx context.Context, companyID string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error)
	ActiveEmployeeIDs(ctx context.Context, companyID string) ([]string, error)
	IsActive(ctx context.Context, companyID, employeeID string) (bool, error)
	InvalidateCache(ctx context.Context, companyID string)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) GetActive(ctx context.Context, companyID string) ([]EmployeeResponse, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, employeeerrors.ErrInvalidCompanyID
	}
	cacheKey := GetActiveEmployeesKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		emps, err := s.repo.FindActiveByCompany(ctx, companyID)
		if err != nil {
			s.logger.Error("load active employees failed", zap.String("company_id", companyID), zap.Error(err))
			return nil, mapRepositoryError(err)
		}
		resp := mapToListResponse(emps)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, activeEmployeesTTL).Err(); err != nil {
					s.logger.Warn("cache active employees failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	emp, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*emp), nil
}

func (s *service) ActiveEmployeeIDs(ctx context.Context, companyID string) ([]string, error) {
	emps, err := s.GetActive(ctx, companyID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(emps))
	for i, e := range emps {
		ids[i] = e.ID
	}
	return ids, nil
}

// IsActive reads through to the database so a status change takes effect
// before the cached list expires.
func (s *service) IsActive(ctx context.Context, companyID, employeeID string) (bool, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return false, employeeerrors.ErrInvalidEmployeeID
	}
	emp, err := s.repo.FindByIDAndCompany(ctx, companyID, employeeID)
	if err != nil {
		if errors.Is(mapRepositoryError(err), employeeerrors.ErrEmployeeNotFound) {
			return false, nil
		}
		return false, err
	}
	return emp.EmploymentStatus == StatusActive, nil
}

func (s *service) InvalidateCache(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetActiveEmployeesKey(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate active employees cache",
			zap.String("company_id", companyID),
			zap.String("key", cacheKey),
			zap.Error(err),
		)
	}
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID.String(),
		EmployeeNumber:   e.EmployeeNumber,
		FullName:         e.FullName,
		Email:            e.Email,
		CompanyID:        e.CompanyID.String(),
		DepartmentID:     uuidToString(e.DepartmentID),
		PositionID:       uuidToString(e.PositionID),
		EmploymentStatus: e.EmploymentStatus,
	}
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		resp[i] = mapToResponse(e)
	}
	return resp
}

func uuidToString(v *uuid.UUID) string {
	if v == nil {
		return ""
	}
	return v.String()
}
