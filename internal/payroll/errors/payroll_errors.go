package payrollerrors

import (
	"net/http"

	"payrollpro/internal/shared/apperror"
)

var (
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be one of all, pending, approved",
		http.StatusBadRequest,
	)
)
