package kafka_test

import (
	"context"
	"encoding/json"
	"testing"

	"go-hris-leave/internal/events"
	"go-hris-leave/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutboxEvent(t *testing.T) {
	event, err := kafka.NewOutboxEvent("req-1", "leave_application", "app-1",
		events.LeaveApplicationApproved, events.LeaveApplicationTopic,
		events.LeaveApplicationEvent{ApplicationID: "app-1", WorkingDays: 2})

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, kafka.OutboxStatusPending, event.Status)

	var decoded events.LeaveApplicationEvent
	require.NoError(t, json.Unmarshal(event.Payload, &decoded))
	assert.Equal(t, 2.0, decoded.WorkingDays)
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := kafka.OutboxEvent{ID: "1", Topic: "t", Payload: []byte("{}"), Status: kafka.OutboxStatusPending}
	assert.NoError(t, kafka.ValidateOutboxEvent(valid))

	missingTopic := valid
	missingTopic.Topic = ""
	assert.Error(t, kafka.ValidateOutboxEvent(missingTopic))

	badStatus := valid
	badStatus.Status = "queued"
	assert.Error(t, kafka.ValidateOutboxEvent(badStatus))
}

func TestOutboxRepository_CreateUsesTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs("1", "", "leave_application", "app-1", events.LeaveApplicationApproved, events.LeaveApplicationTopic, []byte("{}"), kafka.OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	repo := kafka.NewOutboxRepository(db).WithTx(tx)
	err = repo.Create(context.Background(), kafka.OutboxEvent{
		ID:            "1",
		AggregateType: "leave_application",
		AggregateID:   "app-1",
		EventType:     events.LeaveApplicationApproved,
		Topic:         events.LeaveApplicationTopic,
		Payload:       []byte("{}"),
		Status:        kafka.OutboxStatusPending,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
