package internal

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an operation targets a nonexistent id.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned by the mock login when the submitted
	// email/password pair does not match the fixture credentials.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrPasswordMismatch is returned when two submitted password fields differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrUnauthorized marks an authorization failure that could not be
	// recovered by a token refresh.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrSimulatedNetwork is injected by the mock layer to exercise caller
	// error handling.
	ErrSimulatedNetwork = errors.New("simulated network error")
)

// NotFoundError carries the resource name and id of a failed lookup.
// It matches ErrNotFound under errors.Is.
type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AppError is the error shape rendered in API responses.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}
