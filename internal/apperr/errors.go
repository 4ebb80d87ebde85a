package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeNotFound         Code = "NOT_FOUND"
	CodeDatabaseError    Code = "DATABASE_ERROR"
	CodeInternalError    Code = "INTERNAL_ERROR"
)

// Error is the error type returned across the service boundary.
// Message is safe to show to front-desk staff; Err is for logs only.
type Error struct {
	Code     Code
	Domain   string
	Message  string
	Details  map[string]string
	Err      error
	HTTPCode int
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s:%s] %s (%v)", e.Domain, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Domain, e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code Code, domain, message string, httpCode int) *Error {
	return &Error{
		Code:     code,
		Domain:   domain,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code Code, domain, message string, httpCode int) *Error {
	e := New(code, domain, message, httpCode)
	e.Err = err
	return e
}

func (e *Error) WithDetails(details map[string]string) *Error {
	e.Details = details
	return e
}

// Validation rejects input before any store mutation.
func Validation(domain, message string) *Error {
	return New(CodeValidationFailed, domain, message, http.StatusBadRequest)
}

func NotFound(domain, message string) *Error {
	return New(CodeNotFound, domain, message, http.StatusNotFound)
}

// Store wraps a store failure. The caller decides whether to retry.
func Store(err error, domain string) *Error {
	return Wrap(err, CodeDatabaseError, domain, "Error del servidor", http.StatusInternalServerError)
}

func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func IsCode(err error, code Code) bool {
	e, ok := As(err)
	return ok && e.Code == code
}

func IsNotFound(err error) bool {
	return IsCode(err, CodeNotFound)
}

func IsValidation(err error) bool {
	return IsCode(err, CodeValidationFailed)
}
