// Package apperror carries client-facing failures together with the HTTP status they map to.
package apperror

import (
	"errors"
	"net/http"
)

type Error struct {
	Code    int
	Message string
}

func New(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

// Validation returns a 400 error.
func Validation(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// NotFound returns a 404 error.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// As unwraps err into an *Error, if it carries one.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
