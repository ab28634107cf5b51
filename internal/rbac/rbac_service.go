package rbac

import (
	"context"
	"sync"
	"time"

	"go-hris-leave/internal/domain"
	"go-hris-leave/internal/rbac/infra"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

const DefaultPolicyTTL = time.Minute

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	ResolveCapabilities(ctx context.Context, companyID, employeeID string) (domain.Capabilities, error)
	Enforce(ctx context.Context, req EnforceRequest) (bool, error)
	Invalidate(companyID string)
}

type companyPolicy struct {
	enforcer *casbin.Enforcer
	loadedAt time.Time
}

type service struct {
	repo      Repository
	modelText string
	ttl       time.Duration
	now       func() time.Time
	logger    *zap.Logger

	mu       sync.Mutex
	policies map[string]*companyPolicy
}

// NewService keeps one enforcer per company, rebuilt from the database
// after ttl or an explicit Invalidate.
func NewService(repo Repository, modelText string, ttl time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	if ttl <= 0 {
		ttl = DefaultPolicyTTL
	}
	return &service{
		repo:      repo,
		modelText: modelText,
		ttl:       ttl,
		now:       time.Now,
		logger:    l,
		policies:  make(map[string]*companyPolicy),
	}
}

func (s *service) ResolveCapabilities(ctx context.Context, companyID, employeeID string) (domain.Capabilities, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.enforcerFor(ctx, companyID)
	if err != nil {
		return nil, err
	}
	perms, err := e.GetImplicitPermissionsForUser(employeeID, companyID)
	if err != nil {
		s.logger.Error("rbac resolve permissions failed",
			zap.String("company_id", companyID),
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return nil, err
	}

	keys := make([]string, 0, len(perms))
	for _, p := range perms {
		// sub, dom, obj, act
		if len(p) < 4 || p[1] != companyID {
			continue
		}
		keys = append(keys, domain.CapabilityKey(p[2], p[3]))
	}
	caps := domain.NewCapabilities(keys...)
	s.logger.Debug("rbac capabilities resolved",
		zap.String("company_id", companyID),
		zap.String("employee_id", employeeID),
		zap.Strings("capabilities", caps.List()),
	)
	return caps, nil
}

func (s *service) Enforce(ctx context.Context, req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.enforcerFor(ctx, req.CompanyID)
	if err != nil {
		return false, err
	}
	allowed, err := e.Enforce(req.EmployeeID, req.CompanyID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("company_id", req.CompanyID),
			zap.Error(err),
		)
		return false, err
	}
	s.logger.Debug("rbac enforce result",
		zap.String("employee_id", req.EmployeeID),
		zap.String("company_id", req.CompanyID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) Invalidate(companyID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.policies, companyID)
}

// enforcerFor must be called with s.mu held.
func (s *service) enforcerFor(ctx context.Context, companyID string) (*casbin.Enforcer, error) {
	if p, ok := s.policies[companyID]; ok && s.now().Sub(p.loadedAt) < s.ttl {
		return p.enforcer, nil
	}

	e, err := infra.NewEnforcer(s.modelText)
	if err != nil {
		return nil, err
	}

	employeeRoles, err := s.repo.GetEmployeeRoles(ctx, companyID)
	if err != nil {
		return nil, err
	}
	for _, er := range employeeRoles {
		if _, err := e.AddGroupingPolicy(er.EmployeeID, er.RoleID, companyID); err != nil {
			return nil, err
		}
	}

	rolePerms, err := s.repo.GetRolePermissions(ctx, companyID)
	if err != nil {
		return nil, err
	}
	for _, rp := range rolePerms {
		if _, err := e.AddPolicy(rp.RoleID, companyID, rp.Resource, rp.Action); err != nil {
			return nil, err
		}
	}

	s.logger.Info("rbac policy loaded",
		zap.String("company_id", companyID),
		zap.Int("employee_roles", len(employeeRoles)),
		zap.Int("role_permissions", len(rolePerms)),
	)
	s.policies[companyID] = &companyPolicy{enforcer: e, loadedAt: s.now()}
	return e, nil
}
