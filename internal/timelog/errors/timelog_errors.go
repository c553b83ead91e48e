package timelogerrors

import (
	"net/http"

	"am-hris/internal/shared/apperror"
)

var (
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeInvalidState,
		"Already clocked in",
		http.StatusConflict,
	)
	ErrNoActiveTimer = apperror.New(
		apperror.CodeNotFound,
		"No active timer found",
		http.StatusNotFound,
	)
	ErrTimeLogNotFound = apperror.New(
		apperror.CodeNotFound,
		"Time log not found",
		http.StatusNotFound,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)
	ErrInvalidTime = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid timestamp, expected RFC3339",
		http.StatusBadRequest,
	)
	ErrEndBeforeStart = apperror.New(
		apperror.CodeInvalidInput,
		"End time must be after start time",
		http.StatusBadRequest,
	)
	ErrInvalidType = apperror.New(
		apperror.CodeInvalidInput,
		"Manual entries must be of type WORK",
		http.StatusBadRequest,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to manage time logs",
		http.StatusForbidden,
	)
)
