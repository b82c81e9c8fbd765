package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the envelope written for every failed request. Error
// repeats the HTTP status code.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
	Field   string `json:"field,omitempty"`
}

// MessageFor returns the fixed message for a status.
func MessageFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return MessageBadRequest
	case http.StatusNotFound:
		return MessageNotFound
	case http.StatusMethodNotAllowed:
		return MessageMethodNotAllowed
	case http.StatusUnprocessableEntity:
		return MessageUnprocessable
	case http.StatusBadGateway:
		return MessageUpstream
	default:
		return MessageInternal
	}
}

func write(w http.ResponseWriter, status int, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// RespondError writes a standardized error response to the HTTP response writer
func RespondError(w http.ResponseWriter, status int, code, detail string) {
	write(w, status, ErrorResponse{
		Error:   status,
		Code:    code,
		Message: MessageFor(status),
		Detail:  detail,
	})
}

// RespondValidationError writes a 422 response naming the offending field
func RespondValidationError(w http.ResponseWriter, code, detail, field string) {
	write(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error:   http.StatusUnprocessableEntity,
		Code:    code,
		Message: MessageUnprocessable,
		Detail:  detail,
		Field:   field,
	})
}

// RespondInternalError writes an internal server error response
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, ErrCodeInternalError, "")
}

// RespondNotFound writes a not found error response
func RespondNotFound(w http.ResponseWriter, code, detail string) {
	RespondError(w, http.StatusNotFound, code, detail)
}

// RespondBadRequest writes a bad request error response
func RespondBadRequest(w http.ResponseWriter, code, detail string) {
	RespondError(w, http.StatusBadRequest, code, detail)
}

// RespondUnprocessable writes an unprocessable entity error response
func RespondUnprocessable(w http.ResponseWriter, code, detail string) {
	RespondError(w, http.StatusUnprocessableEntity, code, detail)
}

// RespondMethodNotAllowed writes a method not allowed error response
func RespondMethodNotAllowed(w http.ResponseWriter) {
	RespondError(w, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "")
}
