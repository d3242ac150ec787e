package profileerrors

import (
	"net/http"

	"payrollpro/internal/shared/apperror"
)

var (
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"User id is invalid",
		http.StatusBadRequest,
	)
)
