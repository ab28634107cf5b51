package producer_test

import (
	"context"
	"errors"
	"testing"

	"go-hris-leave/internal/messaging/kafka"
	kafkaMock "go-hris-leave/internal/messaging/kafka/mock"
	"go-hris-leave/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failTopic string
	written   []kafkago.Message
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if m.Topic == w.failTopic {
			return errors.New("broker unavailable")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	writer := &fakeWriter{failTopic: "broken.topic"}

	pending := []kafka.OutboxEvent{
		{ID: "1", AggregateID: "app-1", EventType: "leave_application_approved", Topic: "hr.leave.application.v1", Payload: []byte(`{}`), RequestID: "req-9"},
		{ID: "2", AggregateID: "app-2", EventType: "leave_application_cancelled", Topic: "broken.topic", Payload: []byte(`{}`)},
	}
	repo.EXPECT().ListPending(ctx, 50).Return(pending, nil)
	repo.EXPECT().MarkSent(ctx, "1").Return(nil)
	repo.EXPECT().MarkFailed(ctx, "2", "broker unavailable").Return(nil)

	sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	require.Len(t, writer.written, 1)
	assert.Equal(t, []byte("app-1"), writer.written[0].Key)

	var requestID string
	for _, h := range writer.written[0].Headers {
		if h.Key == "request_id" {
			requestID = string(h.Value)
		}
	}
	assert.Equal(t, "req-9", requestID)
}

func TestProcessPendingEvents_ListError(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	repo.EXPECT().ListPending(ctx, 50).Return(nil, errors.New("db down"))

	_, err := producer.ProcessPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())
	assert.Error(t, err)
}
