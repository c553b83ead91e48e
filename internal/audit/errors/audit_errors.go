package auditerrors

import (
	"net/http"

	"am-hris/internal/shared/apperror"
)

var ErrForbidden = apperror.New(
	apperror.CodeForbidden,
	"only administrators can read the audit log",
	http.StatusForbidden,
)
