package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go-hris-leave/internal/config"
	"go-hris-leave/internal/leavebalance"

	"go.uber.org/zap"
)

// RunConsumer populates balances for new hires from the employee lifecycle
// topic until SIGINT or SIGTERM.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	logger = logger.Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return ErrKafkaBrokerRequired
	}

	infra, err := OpenInfrastructure(cfg, logger, true)
	if err != nil {
		return err
	}
	defer infra.Close()

	svc, err := BuildServices(cfg, infra, logger)
	if err != nil {
		return err
	}

	consumer := leavebalance.NewEmployeeCreatedConsumer(
		cfg.Kafka.Broker,
		cfg.Kafka.EmployeeGroupID,
		svc.LeaveBalance,
		logger,
	)
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer.Run(ctx)

	logger.Info("consumer shutting down")
	return nil
}
