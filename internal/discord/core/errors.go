package core

import (
	"errors"
	"fmt"

	cberr "github.com/KirkDiggler/challenge-bot-discord/internal/errors"
)

// HandlerError represents an error that occurred during handler execution
type HandlerError struct {
	// The underlying error
	Err error

	// User-friendly message to display
	UserMessage string

	// HTTP-like status code for categorization
	Code int
}

// Error implements the error interface
func (e *HandlerError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMessage
}

// Unwrap returns the underlying error
func (e *HandlerError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrorCodeBadRequest  = 400
	ErrorCodeNotFound    = 404
	ErrorCodeRateLimited = 429
	ErrorCodeInternal    = 500
	ErrorCodeUnavailable = 503
)

// NewHandlerError creates a new handler error
func NewHandlerError(err error, userMessage string, code int) *HandlerError {
	return &HandlerError{
		Err:         err,
		UserMessage: userMessage,
		Code:        code,
	}
}

// NewInternalError hides the cause behind a generic message
func NewInternalError(err error) *HandlerError {
	return NewHandlerError(err, "An internal error occurred. Please try again later.", ErrorCodeInternal)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(resource string) *HandlerError {
	return NewHandlerError(nil, fmt.Sprintf("%s not found", resource), ErrorCodeNotFound)
}

// NewValidationError creates a validation error
func NewValidationError(message string) *HandlerError {
	return NewHandlerError(nil, message, ErrorCodeBadRequest)
}

// FromError converts any error into a HandlerError.
// Application error codes decide what the user sees.
func FromError(err error) *HandlerError {
	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) {
		return handlerErr
	}

	var appErr *cberr.Error
	if !errors.As(err, &appErr) {
		return NewInternalError(err)
	}

	switch appErr.Code {
	case cberr.CodeInvalidArgument:
		return NewHandlerError(err, appErr.Message, ErrorCodeBadRequest)
	case cberr.CodeNotFound:
		return NewHandlerError(err, appErr.Message, ErrorCodeNotFound)
	case cberr.CodeNotApplicable:
		return NewHandlerError(err, "There is nothing to score yet.", ErrorCodeBadRequest)
	case cberr.CodeConfiguration:
		return NewHandlerError(err, "The challenge catalog is misconfigured. Ask an admin to check the games and weights.", ErrorCodeInternal)
	case cberr.CodeUnavailable:
		return NewHandlerError(err, "The challenge catalog is temporarily unavailable. Please try again later.", ErrorCodeUnavailable)
	default:
		return NewInternalError(err)
	}
}
