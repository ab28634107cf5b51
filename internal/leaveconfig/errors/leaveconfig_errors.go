package leaveconfigerrors

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
	ErrInvalidKey = apperror.New(
		apperror.CodeInvalidInput,
		"config key must be 1-100 characters of letters, digits, '_' or '.'",
		http.StatusBadRequest,
	)
	ErrInvalidValue = apperror.New(
		apperror.CodeInvalidInput,
		"config value must be valid JSON",
		http.StatusBadRequest,
	)
	ErrInvalidYearConfig = apperror.New(
		apperror.CodeInvalidInput,
		"leave config must contain the matching year and allocations between 0 and 365 days",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"invalid year",
		http.StatusBadRequest,
	)
	ErrConfigNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave config not found",
		http.StatusNotFound,
	)
	ErrConfigKeyExists = apperror.New(
		apperror.CodeConflict,
		"leave config key already exists",
		http.StatusConflict,
	)
)
