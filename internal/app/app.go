package app

import (
	"database/sql"

	"go-hris-leave/internal/config"
	"go-hris-leave/internal/middleware"
	"go-hris-leave/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// Infrastructure is the set of external connections a process holds.
type Infrastructure struct {
	GormDB *gorm.DB
	SQLDB  *sql.DB
	Redis  *redis.Client
}

func (i *Infrastructure) Close() {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.SQLDB != nil {
		_ = i.SQLDB.Close()
	}
}

// OpenInfrastructure connects to postgres and, when withRedis is set, redis.
// Pending migrations are applied when db.auto_migrate is on.
func OpenInfrastructure(cfg *config.Config, logger *zap.Logger, withRedis bool) (*Infrastructure, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	infra := &Infrastructure{GormDB: gormDB, SQLDB: sqlDB}

	if cfg.Database.AutoMigrate {
		if err := connection.RunMigrations(sqlDB, logger); err != nil {
			infra.Close()
			return nil, err
		}
	}

	if withRedis {
		rdb, err := connection.ConnectRedisWithRetry(cfg.Redis, cfg.Database.MaxRetries)
		if err != nil {
			infra.Close()
			return nil, err
		}
		infra.Redis = rdb
	}

	return infra, nil
}

// BuildServices wires the domain services on top of an open infrastructure.
func BuildServices(cfg *config.Config, infra *Infrastructure, logger *zap.Logger) (*Services, error) {
	return buildServices(cfg, infra.SQLDB, infra.GormDB, infra.Redis, logger)
}

// BuildApp connects everything the API needs and mounts the routes on router.
// The returned infrastructure must be closed by the caller.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (*Infrastructure, error) {
	infra, err := OpenInfrastructure(cfg, logger, true)
	if err != nil {
		return nil, err
	}

	svc, err := BuildServices(cfg, infra, logger)
	if err != nil {
		infra.Close()
		return nil, err
	}

	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(logger),
		middleware.RateLimitByIP(rate.Limit(cfg.Server.RateLimit*2), cfg.Server.RateBurst*2),
	)
	registerModules(router, cfg, svc, infra.Redis, logger)

	logger.Info("modules registered")
	return infra, nil
}
