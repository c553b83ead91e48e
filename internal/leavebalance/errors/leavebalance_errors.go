package leavebalanceerrors

import (
	"net/http"

	"am-hris/internal/shared/apperror"
)

var (
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"only administrators can change leave balances",
		http.StatusForbidden,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"leave type must be VACATION, SICK or EARNED",
		http.StatusBadRequest,
	)
	ErrNegativeBalance = apperror.New(
		apperror.CodeInvalidInput,
		"balance cannot be negative",
		http.StatusBadRequest,
	)
	ErrInvalidBalance = apperror.New(
		apperror.CodeInvalidInput,
		"balance must be a decimal number",
		http.StatusBadRequest,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInsufficientBalance,
		"insufficient leave balance",
		http.StatusUnprocessableEntity,
	)
)
