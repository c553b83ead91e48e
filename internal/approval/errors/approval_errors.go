package approvalerrors

import (
	"net/http"

	"am-hris/internal/shared/apperror"
)

var (
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"only admins and leaders can process approvals",
		http.StatusForbidden,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"request not found",
		http.StatusNotFound,
	)
	ErrAlreadyProcessed = apperror.New(
		apperror.CodeAlreadyProcessed,
		"request has already been processed",
		http.StatusConflict,
	)
	ErrSelfDecision = apperror.New(
		apperror.CodeForbidden,
		"you cannot approve or reject your own request",
		http.StatusForbidden,
	)
	ErrInvalidKind = apperror.New(
		apperror.CodeInvalidInput,
		"kind must be CORRECTION, MANUAL_ENTRY or LEAVE_REQUEST",
		http.StatusBadRequest,
	)
	ErrInvalidRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid request id",
		http.StatusBadRequest,
	)
)
