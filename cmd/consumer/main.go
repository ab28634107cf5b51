package main

import (
	"log"
	"os"

	"go-hris-leave/internal/app"
	"go-hris-leave/internal/config"
	"go-hris-leave/internal/shared/apperror"
	"go-hris-leave/internal/shared/logger"

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

	if err := app.RunConsumer(cfg, zl); err != nil {
		zl.Fatal("run consumer failed", zap.Error(err))
	}
}
