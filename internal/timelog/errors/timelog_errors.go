package timelogerrors

import (
	"net/http"

	"payrollpro/internal/shared/apperror"
)

var (
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeInvalidState,
		"Already clocked in, clock out first",
		http.StatusConflict,
	)

	ErrNotClockedIn = apperror.New(
		apperror.CodeInvalidState,
		"No open time log to clock out of",
		http.StatusConflict,
	)

	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Month must be in YYYY-MM format",
		http.StatusBadRequest,
	)

	ErrFutureMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Month is beyond the current month",
		http.StatusBadRequest,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"User id is invalid",
		http.StatusBadRequest,
	)
)
