package leavetypeerrors

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
	ErrInvalidLeaveTypeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave type id",
		http.StatusBadRequest,
	)
	ErrInvalidMaxDays = apperror.New(
		apperror.CodeInvalidInput,
		"max_days must be between 0 and 365 in steps of 0.5",
		http.StatusBadRequest,
	)
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave type not found",
		http.StatusNotFound,
	)
	ErrLeaveTypeNameExists = apperror.New(
		apperror.CodeConflict,
		"leave type name already exists",
		http.StatusConflict,
	)
)
