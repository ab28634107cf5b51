package leavesetup

import (
	"context"
	"errors"
	"strings"

	"go-hris-leave/internal/leavebalance"
	"go-hris-leave/internal/leaveconfig"
	leavesetuperrors "go-hris-leave/internal/leavesetup/errors"
	"go-hris-leave/internal/leavetype"
	leavetypeerrors "go-hris-leave/internal/leavetype/errors"
	"go-hris-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TypeCatalog is the part of the leave type service the setup run needs.
type TypeCatalog interface {
	GetAll(ctx context.Context, companyID string, activeOnly bool) ([]leavetype.LeaveTypeResponse, error)
	Create(ctx context.Context, companyID, actorID string, req leavetype.CreateLeaveTypeRequest) (leavetype.LeaveTypeResponse, error)
}

type ConfigStore interface {
	SaveYear(ctx context.Context, companyID, actorID string, cfg leaveconfig.YearConfig) (leaveconfig.ConfigResponse, error)
}

type Populator interface {
	PopulateForYear(ctx context.Context, companyID string, year int) (leavebalance.PopulateResult, error)
}

//go:generate mockgen -source=leavesetup_service.go -destination=mock/leavesetup_service_mock.go -package=mock
type Service interface {
	Run(ctx context.Context, companyID, actorID string, year int) (SetupResult, error)
}

type service struct {
	catalog   TypeCatalog
	configs   ConfigStore
	populator Populator
	defaults  []DefaultLeaveType
	logger    *zap.Logger
}

func NewService(catalog TypeCatalog, configs ConfigStore, populator Populator, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavesetup.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavesetup.service")
	}
	return &service{
		catalog:   catalog,
		configs:   configs,
		populator: populator,
		defaults:  DefaultLeaveTypes,
		logger:    l,
	}
}

// Run seeds the default catalog, rewrites leave_config_{year} from every
// active leave type and populates balances. Every step is idempotent.
func (s *service) Run(ctx context.Context, companyID, actorID string, year int) (SetupResult, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("leave setup requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.Int("year", year),
	)

	if _, err := uuid.Parse(companyID); err != nil {
		return SetupResult{}, leavesetuperrors.ErrInvalidCompanyID
	}
	if year < 2000 || year > 2100 {
		return SetupResult{}, leavesetuperrors.ErrInvalidYear
	}

	result := SetupResult{
		Year:               year,
		LeaveTypesCreated:  []string{},
		LeaveTypesExisting: []string{},
		ConfigKey:          leaveconfig.YearKey(year),
	}

	existing, err := s.catalog.GetAll(ctx, companyID, false)
	if err != nil {
		s.logger.Error("leave setup load catalog failed", zap.Error(err))
		return SetupResult{}, err
	}
	known := make(map[string]bool, len(existing))
	for _, lt := range existing {
		known[strings.ToLower(lt.Name)] = true
	}

	for _, d := range s.defaults {
		if known[strings.ToLower(d.Name)] {
			result.LeaveTypesExisting = append(result.LeaveTypesExisting, d.Name)
			continue
		}
		_, err := s.catalog.Create(ctx, companyID, actorID, toCreateRequest(d))
		if errors.Is(err, leavetypeerrors.ErrLeaveTypeNameExists) {
			// created concurrently
			result.LeaveTypesExisting = append(result.LeaveTypesExisting, d.Name)
			continue
		}
		if err != nil {
			s.logger.Error("leave setup seed failed", zap.String("name", d.Name), zap.Error(err))
			return SetupResult{}, err
		}
		result.LeaveTypesCreated = append(result.LeaveTypesCreated, d.Name)
	}

	active, err := s.catalog.GetAll(ctx, companyID, true)
	if err != nil {
		s.logger.Error("leave setup reload catalog failed", zap.Error(err))
		return SetupResult{}, err
	}
	cfg := leaveconfig.YearConfig{Year: year, Allocations: make([]leaveconfig.Allocation, 0, len(active))}
	for _, lt := range active {
		cfg.Allocations = append(cfg.Allocations, leaveconfig.Allocation{
			LeaveTypeID:   lt.ID,
			LeaveTypeName: lt.Name,
			MaxDays:       lt.MaxDays,
		})
	}
	if _, err := s.configs.SaveYear(ctx, companyID, actorID, cfg); err != nil {
		s.logger.Error("leave setup save year config failed", zap.String("key", result.ConfigKey), zap.Error(err))
		return SetupResult{}, err
	}

	population, err := s.populator.PopulateForYear(ctx, companyID, year)
	if err != nil {
		s.logger.Error("leave setup populate failed", zap.Int("year", year), zap.Error(err))
		return SetupResult{}, err
	}
	result.Population = population

	s.logger.Info("leave setup success",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.Int("created", len(result.LeaveTypesCreated)),
		zap.Int("existing", len(result.LeaveTypesExisting)),
		zap.Int("balances_created", population.Created),
	)
	return result, nil
}

func toCreateRequest(d DefaultLeaveType) leavetype.CreateLeaveTypeRequest {
	code, color, description, isPaid := d.Code, d.Color, d.Description, d.IsPaid
	return leavetype.CreateLeaveTypeRequest{
		Name:        d.Name,
		Code:        &code,
		MaxDays:     d.MaxDays,
		Description: &description,
		Color:       &color,
		IsPaid:      &isPaid,
	}
}
