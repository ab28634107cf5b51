package leavebalanceerrors

import (
	"net/http"

	"go-hris-leave/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveTypeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave type id",
		http.StatusBadRequest,
	)
	ErrInvalidBalanceID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave balance id",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year must be between 2000 and 2100",
		http.StatusBadRequest,
	)
	ErrInvalidAllocation = apperror.New(
		apperror.CodeInvalidInput,
		"allocated_days must be between 0 and 365 in steps of 0.5",
		http.StatusBadRequest,
	)

	ErrBalanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave balance not found",
		http.StatusNotFound,
	)

	ErrInsufficientBalance = apperror.New(
		apperror.CodeInsufficientBalance,
		"insufficient leave balance",
		http.StatusUnprocessableEntity,
	)
	ErrBalanceUnderflow = apperror.New(
		apperror.CodeInsufficientBalance,
		"cannot restore more days than were used",
		http.StatusUnprocessableEntity,
	)
	ErrAllocationBelowUsed = apperror.New(
		apperror.CodeInsufficientBalance,
		"allocated_days cannot be lower than used_days",
		http.StatusUnprocessableEntity,
	)
)
