package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-hris-leave/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps code and status", func(t *testing.T) {
		err := apperror.New(apperror.CodeConflict, "duplicate", http.StatusConflict)
		got := apperror.ToHTTP(fmt.Errorf("wrapped: %w", err))
		assert.Equal(t, http.StatusConflict, got.Status)
		assert.Equal(t, apperror.CodeConflict, got.Code)
		assert.Equal(t, "duplicate", got.Message)
	})

	t.Run("unknown error is hidden behind 500", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.NotContains(t, got.Message, "pq")
	})
}

func TestWithDetailsMatchesSentinel(t *testing.T) {
	sentinel := apperror.New(apperror.CodeInvalidState, "bad transition", http.StatusConflict)
	detailed := sentinel.WithDetails(map[string]string{"from": "approved"})

	assert.True(t, errors.Is(detailed, sentinel))
	assert.Equal(t, map[string]string{"from": "approved"}, apperror.ToHTTP(detailed).Details)
}

type sample struct {
	LeaveTypeID string   `json:"leave_type_id" validate:"required"`
	Days        *float64 `json:"days" validate:"omitempty,halfday"`
}

func TestValidationDetails(t *testing.T) {
	v := validator.New()
	apperror.Register(v)

	bad := 1.3
	err := v.Struct(sample{Days: &bad})
	details := apperror.ValidationDetails(err)

	assert.Len(t, details, 2)
	assert.Equal(t, "leave_type_id", details[0].Field)
	assert.Equal(t, "required", details[0].Tag)
	assert.Equal(t, "Leave Type Id is required", details[0].Message)
	assert.Equal(t, "days", details[1].Field)
	assert.Equal(t, "halfday", details[1].Tag)

	ok := 1.5
	assert.NoError(t, v.Struct(sample{LeaveTypeID: "x", Days: &ok}))
}
