package apperror

import "net/http"

// Cross-cutting errors. Feature packages declare their own in
// internal/<feature>/errors.
var (
	ErrNotFound     = New(CodeNotFound, "Resource not found", http.StatusNotFound)
	ErrForbidden    = New(CodeForbidden, "You do not have permission to access this resource", http.StatusForbidden)
	ErrUnauthorized = New(CodeUnauthorized, "Authentication is required", http.StatusUnauthorized)
	ErrInvalidInput = New(CodeInvalidInput, "The provided input is invalid", http.StatusBadRequest)
	ErrInternal     = New(CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)

	ErrRateLimited = New(CodeRateLimited, "Too many requests, slow down", http.StatusTooManyRequests)
	ErrInFlight    = New(CodeInFlight, "A request with this idempotency key is still being processed", http.StatusConflict)

	ErrConcurrentUpdate = New(CodeConflict, "The resource was changed by a concurrent request, retry", http.StatusConflict)

	ErrServiceUnavailable = New(CodeServiceUnavailable, "A dependency is unavailable", http.StatusServiceUnavailable)
)
