package errors

// Error codes for standardized error responses
const (
	ErrCodeInvalidRequest   = "invalid_request"
	ErrCodeInvalidPayload   = "invalid_payload"
	ErrCodeValidationFailed = "validation_failed"
	ErrCodeUnknownCategory  = "unknown_category"
	ErrCodeInvalidPage      = "invalid_page"

	ErrCodeNotFound         = "not_found"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeUnprocessable    = "unprocessable"

	ErrCodeInternalError = "internal_error"
	ErrCodeUpstreamError = "upstream_error"
)

// Fixed human-readable messages, one per status.
const (
	MessageBadRequest       = "bad request"
	MessageNotFound         = "resource not found"
	MessageMethodNotAllowed = "method not allowed"
	MessageUnprocessable    = "unprocessable"
	MessageInternal         = "internal server error"
	MessageUpstream         = "upstream error"
)
