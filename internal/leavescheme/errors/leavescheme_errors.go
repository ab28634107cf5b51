package leaveschemeerrors

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
	ErrInvalidSchemeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid scheme id",
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
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidWindow = apperror.New(
		apperror.CodeInvalidInput,
		"effective_to must be on or after effective_from",
		http.StatusBadRequest,
	)
	ErrInvalidDaysAllowed = apperror.New(
		apperror.CodeInvalidInput,
		"days_allowed must be between 0 and 365 in steps of 0.5",
		http.StatusBadRequest,
	)
	ErrAssignmentOverlap = apperror.New(
		apperror.CodeInvalidInput,
		"scheme assignment overlaps an existing assignment of this employee",
		http.StatusBadRequest,
	)
	ErrSchemeInactive = apperror.New(
		apperror.CodeInvalidInput,
		"inactive scheme cannot be assigned",
		http.StatusBadRequest,
	)
	ErrSchemeNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave scheme not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave type not found",
		http.StatusNotFound,
	)
	ErrAllowanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave type is not part of this scheme",
		http.StatusNotFound,
	)
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"scheme assignment not found",
		http.StatusNotFound,
	)
	ErrSchemeNameExists = apperror.New(
		apperror.CodeConflict,
		"an active leave scheme with this name already exists",
		http.StatusConflict,
	)
	ErrAllowanceExists = apperror.New(
		apperror.CodeConflict,
		"leave type already configured for this scheme",
		http.StatusConflict,
	)
)
