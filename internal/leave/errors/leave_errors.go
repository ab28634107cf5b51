package leaveerrors

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
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
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
	ErrInvalidApplicationID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave application id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"end_date must be on or after start_date",
		http.StatusBadRequest,
	)
	ErrCrossYearRange = apperror.New(
		apperror.CodeInvalidInput,
		"a leave application cannot span two calendar years",
		http.StatusBadRequest,
	)
	ErrHalfDayRange = apperror.New(
		apperror.CodeInvalidInput,
		"a half-day application must start and end on the same date",
		http.StatusBadRequest,
	)
	ErrInvalidDurationType = apperror.New(
		apperror.CodeInvalidInput,
		"leave_duration_type must be full_day, half_day_morning or half_day_afternoon",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"status must be pending, approved, rejected or cancelled",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year must be between 2000 and 2100",
		http.StatusBadRequest,
	)
	ErrLeaveTypeInactive = apperror.New(
		apperror.CodeInvalidInput,
		"leave type is not active",
		http.StatusBadRequest,
	)

	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave application not found",
		http.StatusNotFound,
	)

	ErrOverlappingLeave = apperror.New(
		apperror.CodeConflict,
		"leave period overlaps another pending or approved application",
		http.StatusConflict,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"leave application status does not allow this action",
		http.StatusConflict,
	)

	ErrFileOnBehalfForbidden = apperror.New(
		apperror.CodeForbidden,
		"you are not allowed to apply for leave on behalf of another employee",
		http.StatusForbidden,
	)
	ErrCancelForbidden = apperror.New(
		apperror.CodeForbidden,
		"you are not allowed to cancel this leave application",
		http.StatusForbidden,
	)
)
