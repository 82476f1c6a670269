package errors

import (
	"errors"
	"net/http"
)

// ResponseCodeError is the single failure type crossing service boundaries.
// Every failure carries a human-readable message and the HTTP status the
// boundary should answer with; services raise it at the point of detection and
// never recover from it silently.
type ResponseCodeError struct {
	err  error
	msg  string
	code int
}

func New(err error, msg string) error {
	return ResponseCodeError{err: err, msg: msg, code: http.StatusInternalServerError}
}

func NewWithCode(err error, msg string, code int) error {
	return ResponseCodeError{err: err, msg: msg, code: code}
}

func (rce ResponseCodeError) Error() string {
	return rce.err.Error()
}

func (rce ResponseCodeError) Msg() string {
	return rce.msg
}

func (rce ResponseCodeError) Code() int {
	return rce.code
}

func (rce ResponseCodeError) Unwrap() error {
	return rce.err
}

// Failure taxonomy. Each constructor pins the status code of one failure kind
// so call sites only supply the message.

func NewInvalidRequest(msg string) error {
	return NewWithCode(errors.New(msg), msg, http.StatusBadRequest)
}

func NewNotFound(msg string) error {
	return NewWithCode(errors.New(msg), msg, http.StatusNotFound)
}

func NewForbidden(msg string) error {
	return NewWithCode(errors.New(msg), msg, http.StatusForbidden)
}

func NewConflict(msg string) error {
	return NewWithCode(errors.New(msg), msg, http.StatusConflict)
}

func NewInsufficientBalance(msg string) error {
	return NewWithCode(errors.New(msg), msg, http.StatusPaymentRequired)
}

func NewServiceUnavailable(msg string) error {
	return NewWithCode(errors.New(msg), msg, http.StatusServiceUnavailable)
}

// IsKind reports whether err is a ResponseCodeError carrying the given status
// code. Used by tests and by callers that branch on a specific failure kind.
func IsKind(err error, code int) bool {
	var rce ResponseCodeError
	return errors.As(err, &rce) && rce.Code() == code
}
