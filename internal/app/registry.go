package app

import (
	"database/sql"

	"go-hris-leave/internal/config"
	"go-hris-leave/internal/employee"
	"go-hris-leave/internal/leave"
	"go-hris-leave/internal/leavebalance"
	"go-hris-leave/internal/leaveconfig"
	"go-hris-leave/internal/leavescheme"
	"go-hris-leave/internal/leavesetup"
	"go-hris-leave/internal/leavetype"
	"go-hris-leave/internal/messaging/kafka"
	"go-hris-leave/internal/middleware"
	"go-hris-leave/internal/rbac"
	"go-hris-leave/internal/rbac/infra"
	"go-hris-leave/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Services holds every wired domain service. The HTTP server and the
// command line tools share the same graph.
type Services struct {
	RBAC         rbac.Service
	Employee     employee.Service
	LeaveType    leavetype.Service
	LeaveConfig  leaveconfig.Service
	LeaveScheme  leavescheme.Service
	LeaveBalance leavebalance.Service
	Leave        leave.Service
	Setup        leavesetup.Service
}

func buildServices(
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) (*Services, error) {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveTypeRepo := leavetype.NewRepository(gormDB)
	leaveConfigRepo := leaveconfig.NewRepository(gormDB)
	leaveSchemeRepo := leavescheme.NewRepository(gormDB)
	leaveBalanceRepo := leavebalance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	modelText, err := infra.LoadModel(cfg.Leave.RBACModelPath)
	if err != nil {
		return nil, err
	}
	rbacService := rbac.NewService(rbacRepo, modelText, cfg.Leave.PolicyCacheTTL, logger)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo, rdb, logger)
	leaveTypeService := leavetype.NewService(db, leaveTypeRepo, rdb, logger)
	leaveConfigService := leaveconfig.NewService(db, leaveConfigRepo, logger)
	leaveSchemeService := leavescheme.NewService(db, leaveSchemeRepo, logger)
	leaveBalanceService := leavebalance.NewService(
		db,
		leaveBalanceRepo,
		leaveTypeService,
		leaveConfigService,
		leaveSchemeService,
		employeeService,
		logger,
	)
	leaveService := leave.NewService(
		db,
		leaveRepo,
		leaveTypeService,
		leaveBalanceService,
		employeeService,
		counterRepo,
		outboxRepo,
		logger,
	)
	setupService := leavesetup.NewService(leaveTypeService, leaveConfigService, leaveBalanceService, logger)

	return &Services{
		RBAC:         rbacService,
		Employee:     employeeService,
		LeaveType:    leaveTypeService,
		LeaveConfig:  leaveConfigService,
		LeaveScheme:  leaveSchemeService,
		LeaveBalance: leaveBalanceService,
		Leave:        leaveService,
		Setup:        setupService,
	}, nil
}

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	svc *Services,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	// --- Handlers ---
	rbacHandler := rbac.NewHandler(svc.RBAC, logger)
	employeeHandler := employee.NewHandler(svc.Employee, logger)
	leaveTypeHandler := leavetype.NewHandler(svc.LeaveType, logger)
	leaveConfigHandler := leaveconfig.NewHandler(svc.LeaveConfig, logger)
	leaveSchemeHandler := leavescheme.NewHandler(svc.LeaveScheme, logger)
	leaveBalanceHandler := leavebalance.NewHandler(svc.LeaveBalance, logger)
	leaveHandler := leave.NewHandler(svc.Leave, logger)
	setupHandler := leavesetup.NewHandler(svc.Setup, logger)

	// the request logger is rebuilt once the user id is known
	guard := middleware.NewGuard(
		cfg.Auth.JWTSecret,
		svc.RBAC,
		middleware.ContextLogger(logger),
		middleware.RateLimitByUser(rate.Limit(cfg.Server.RateLimit), cfg.Server.RateBurst),
	)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		rbac.RegisterRoutes(api, rbacHandler, guard)
		employee.RegisterRoutes(api, employeeHandler, guard)
		leavetype.RegisterRoutes(api, leaveTypeHandler, guard)
		leaveconfig.RegisterRoutes(api, leaveConfigHandler, guard)
		leavescheme.RegisterRoutes(api, leaveSchemeHandler, guard)
		leavebalance.RegisterRoutes(api, leaveBalanceHandler, guard)
		leave.RegisterRoutes(api, leaveHandler, guard, rdb)
		leavesetup.RegisterRoutes(api, setupHandler, guard)
	}
}
