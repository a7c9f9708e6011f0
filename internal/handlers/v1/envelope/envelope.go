// Package envelope defines the {statusCode, message, body, success} wrapper every
// API response uses. Install makes it huma's error format.
package envelope

import (
	"errors"
	"net/http"
	"sync"

	"github.com/danielgtaylor/huma/v2"
)

// Response wraps a successful payload.
type Response[T any] struct {
	StatusCode int    `json:"statusCode" doc:"HTTP status"`
	Message    string `json:"message" doc:"Human readable outcome"`
	Body       T      `json:"body" doc:"Payload"`
	Success    bool   `json:"success" doc:"Always true for successful responses"`
}

// New builds a successful envelope with the given status.
func New[T any](status int, message string, body T) Response[T] {
	return Response[T]{
		StatusCode: status,
		Message:    message,
		Body:       body,
		Success:    true,
	}
}

func OK[T any](message string, body T) Response[T] {
	return New(http.StatusOK, message, body)
}

func Created[T any](message string, body T) Response[T] {
	return New(http.StatusCreated, message, body)
}

// Error is the failure form of the envelope. Body carries validation details only;
// the wrapped causes stay server side.
type Error struct {
	StatusCode int      `json:"statusCode" doc:"HTTP status"`
	Message    string   `json:"message" doc:"Human readable error"`
	Body       []string `json:"body,omitempty" doc:"Validation details"`
	Success    bool     `json:"success" doc:"Always false for errors"`

	causes []error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) GetStatus() int {
	return e.StatusCode
}

func (e *Error) Unwrap() []error {
	return e.causes
}

// Cause joins the wrapped errors for logging.
func (e *Error) Cause() error {
	return errors.Join(e.causes...)
}

// NewError builds an envelope error. It matches huma.NewError's signature.
func NewError(status int, message string, errs ...error) huma.StatusError {
	e := &Error{
		StatusCode: status,
		Message:    message,
	}
	for _, err := range errs {
		if err == nil {
			continue
		}
		var detailer huma.ErrorDetailer
		if errors.As(err, &detailer) {
			e.Body = append(e.Body, detailer.ErrorDetail().Error())
			continue
		}
		e.causes = append(e.causes, err)
	}
	return e
}

var installOnce sync.Once

// Install replaces huma.NewError with NewError so validation failures and
// handler errors render as the envelope. It must run before any request is served.
func Install() {
	installOnce.Do(func() {
		huma.NewError = NewError
	})
}
