package correctionerrors

import (
	"net/http"

	"am-hris/internal/shared/apperror"
)

var (
	ErrCorrectionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Correction not found",
		http.StatusNotFound,
	)
	ErrTimeLogNotFound = apperror.New(
		apperror.CodeNotFound,
		"Time log not found",
		http.StatusNotFound,
	)
	ErrInvalidTimeLogID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid time log ID",
		http.StatusBadRequest,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"You can only request corrections for your own time logs",
		http.StatusForbidden,
	)
	ErrReasonTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"Reason must be at least 5 characters",
		http.StatusBadRequest,
	)
	ErrInvalidTime = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid timestamp, expected RFC3339",
		http.StatusBadRequest,
	)
	ErrEndBeforeStart = apperror.New(
		apperror.CodeInvalidInput,
		"Requested end time must be after the start time",
		http.StatusBadRequest,
	)
	ErrPendingExists = apperror.New(
		apperror.CodeConflict,
		"A correction for this time log is already pending",
		http.StatusConflict,
	)
)
