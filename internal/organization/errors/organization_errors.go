package organizationerrors

import (
	"net/http"

	"am-hris/internal/shared/apperror"
)

var (
	ErrOrganizationNotFound = apperror.New(
		apperror.CodeNotFound,
		"organization not found",
		http.StatusNotFound,
	)
	ErrInvalidName = apperror.New(
		apperror.CodeInvalidInput,
		"organization name must contain at least one letter or digit",
		http.StatusBadRequest,
	)
)
