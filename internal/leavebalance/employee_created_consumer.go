package leavebalance

import (
	"context"
	"encoding/json"
	"time"

	"go-hris-leave/internal/events"
	"go-hris-leave/internal/shared/apperror"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EmployeeCreatedConsumer gives a new hire balances for the current year.
type EmployeeCreatedConsumer struct {
	reader  *kafka.Reader
	service Service
	logger  *zap.Logger
}

func NewEmployeeCreatedConsumer(
	broker string,
	groupID string,
	service Service,
	logger ...*zap.Logger,
) *EmployeeCreatedConsumer {
	l := zap.L().Named("leavebalance.consumer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavebalance.consumer")
	}

	return &EmployeeCreatedConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:        []string{broker},
			Topic:          events.EmployeeCreatedTopic,
			GroupID:        groupID,
			CommitInterval: time.Second,
			StartOffset:    kafka.FirstOffset,
		}),
		service: service,
		logger:  l,
	}
}

// Run blocks until ctx is done.
func (c *EmployeeCreatedConsumer) Run(ctx context.Context) {
	c.logger.Info("employee created consumer started")
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Info("employee created consumer stopped")
				return
			}
			c.logger.Error("consume employee_created failed", zap.Error(err))
			continue
		}

		if c.handle(ctx, msg.Value) {
			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error("commit employee_created event failed", zap.Error(err))
			}
		}
	}
}

func (c *EmployeeCreatedConsumer) Close() error {
	return c.reader.Close()
}

// handle reports whether the message is done with and can be committed.
// Population is insert-if-absent so a redelivered event is harmless.
func (c *EmployeeCreatedConsumer) handle(ctx context.Context, value []byte) bool {
	var event events.EmployeeCreatedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		c.logger.Error("decode employee_created event failed", zap.Error(err))
		return true
	}

	year := event.OccurredAt.UTC().Year()
	if event.OccurredAt.IsZero() {
		year = time.Now().UTC().Year()
	}
	result, err := c.service.PopulateForEmployee(ctx, event.CompanyID, event.EmployeeID, year)
	if err != nil {
		c.logger.Error("populate balances for new employee failed",
			zap.String("employee_id", event.EmployeeID),
			zap.String("company_id", event.CompanyID),
			zap.Error(err),
		)
		return apperror.IsKind(err, apperror.CodeInvalidInput)
	}
	if result.Failed > 0 {
		c.logger.Warn("populate balances for new employee incomplete",
			zap.String("employee_id", event.EmployeeID),
			zap.Int("failed", result.Failed),
		)
		return false
	}

	c.logger.Info("leave balances created from employee_created event",
		zap.String("employee_id", event.EmployeeID),
		zap.String("company_id", event.CompanyID),
		zap.Int("created", result.Created),
	)
	return true
}
