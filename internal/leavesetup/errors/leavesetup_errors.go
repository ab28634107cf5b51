package leavesetuperrors

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
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"year must be between 2000 and 2100",
		http.StatusBadRequest,
	)
)
