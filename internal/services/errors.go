package services

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials deliberately does not distinguish an unknown
	// login from a wrong password.
	ErrInvalidCredentials = errors.New("Invalid login or password")
	// ErrDuplicateUser keeps quiet about which field collided.
	ErrDuplicateUser = errors.New("User with the same login or email already exists. Please, choose another one")
)

// ValidationError reports rejected client input. The message always
// enumerates the valid alternatives.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func newValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an absent task or user, naming the missing
// identifier.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func newNotFoundError(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ForbiddenError reports a role constraint violation, naming the allowed
// roles.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string { return e.Message }

func newForbiddenError(format string, args ...interface{}) *ForbiddenError {
	return &ForbiddenError{Message: fmt.Sprintf(format, args...)}
}
