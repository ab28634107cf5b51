package main

import (
	"log"
	"os"

	"go-hris-leave/internal/app"
	"go-hris-leave/internal/bootstrap"
	"go-hris-leave/internal/config"
	"go-hris-leave/internal/shared/apperror"
	"go-hris-leave/internal/shared/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(os.Getenv("HRIS_CONFIG_FILE"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync()
	zap.ReplaceGlobals(zl)

	apperror.Init()
	if cfg.Log.Format != "console" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// build dependency + routes
	infra, err := app.BuildApp(r, cfg, zl)
	if err != nil {
		zl.Fatal("build app failed", zap.Error(err))
	}
	defer infra.Close()

	bootstrap.StartHTTPServer(r, cfg.Server, bootstrap.NewStdoutAuditLogger(zl))
}
