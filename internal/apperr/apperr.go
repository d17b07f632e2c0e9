// Package apperr carries HTTP-facing error wrapping for the citation
// service: an error type that knows its status code and a user-safe
// message, so the transport layer never has to leak internals.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is an application error carrying an HTTP status and a
// user-facing message, with the real cause kept out of the JSON response.
type AppError struct {
	Code    int    `json:"status_code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
	Context string `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status to respond with.
func (e *AppError) StatusCode() int { return e.Code }

// UserMessage returns the message that is safe to show the client.
func (e *AppError) UserMessage() string { return e.Message }

// GetContext returns the context string set by WithContext.
func (e *AppError) GetContext() string { return e.Context }

func (e *AppError) WithContext(context string) *AppError {
	e.Context = context
	return e
}

// NewValidationError reports a malformed request body (400).
func NewValidationError(message string, err error) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: err}
}

// NewInternalError reports an unexpected failure during recognition (500).
// The client sees the generic message from spec §7; the real cause is
// joined into Err for logging only.
func NewInternalError(message string, err error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: "Internal parsing error",
		Err:     errors.Join(errors.New(message), err),
	}
}

// NewNotFoundError reports a missing resource (404).
func NewNotFoundError(message string, err error) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: err}
}

// NewServiceUnavailableError reports that the recognizer is not yet ready,
// e.g. during a reload (503).
func NewServiceUnavailableError(message string, err error) *AppError {
	return &AppError{Code: http.StatusServiceUnavailable, Message: message, Err: err}
}

// WrapError attaches context to err. If err is already an *AppError its
// status and cause are preserved; otherwise it becomes an internal error.
func WrapError(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: fmt.Sprintf("%s: %s", message, appErr.Message),
			Err:     appErr.Err,
			Context: appErr.Context,
		}
	}

	return NewInternalError(message, err)
}
