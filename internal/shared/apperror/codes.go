package apperror

// Codes are stable strings clients switch on; messages may change.
const (
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"
	CodeRateLimited  = "RATE_LIMITED"
	CodeInFlight     = "REQUEST_IN_FLIGHT"

	// approval workflow
	CodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	CodeAlreadyProcessed    = "ALREADY_PROCESSED"

	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
