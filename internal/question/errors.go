package question

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for the response boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindBadRequest
	KindUnprocessable
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	case KindUnprocessable:
		return "unprocessable"
	default:
		return "internal"
	}
}

// Error is the typed failure returned by Service operations. Message is safe
// to show to clients; Err is the underlying cause and is only logged.
type Error struct {
	Kind    Kind
	Op      string
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Message != "":
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the Kind of err; anything that is not an *Error is internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func notFound(op, message string, err error) *Error {
	return &Error{Kind: KindNotFound, Op: op, Message: message, Err: err}
}

func badRequest(op, field, message string, err error) *Error {
	return &Error{Kind: KindBadRequest, Op: op, Field: field, Message: message, Err: err}
}

func unprocessable(op, field, message string, err error) *Error {
	return &Error{Kind: KindUnprocessable, Op: op, Field: field, Message: message, Err: err}
}

func internal(op string, err error) *Error {
	return &Error{Kind: KindInternal, Op: op, Err: err}
}
