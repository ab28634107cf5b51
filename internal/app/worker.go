package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go-hris-leave/internal/config"
	"go-hris-leave/internal/messaging/kafka"
	"go-hris-leave/internal/messaging/kafka/producer"
	"go-hris-leave/internal/shared/connection"

	"go.uber.org/zap"
)

var ErrKafkaBrokerRequired = errors.New("kafka.broker is required")

// RunWorker relays outbox rows to kafka until SIGINT or SIGTERM.
func RunWorker(cfg *config.Config, logger *zap.Logger) error {
	logger = logger.Named("app.worker")

	if cfg.Kafka.Broker == "" {
		return ErrKafkaBrokerRequired
	}

	infra, err := OpenInfrastructure(cfg, logger, false)
	if err != nil {
		return err
	}
	defer infra.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.Database.MaxRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(infra.SQLDB)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		cfg.Kafka.OutboxPollInterval,
	)

	logger.Info("worker shutting down")
	return nil
}
