package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrReference indicates a dangling foreign key: a referenced user, variant,
// session or account does not resolve.
var ErrReference = errors.New("referenced resource not found")

// ErrState indicates the operation conflicts with the current state of the
// target (closed cash session, already-cancelled transaction, ...).
var ErrState = errors.New("invalid state for operation")

// ErrUnsupported indicates the operation is not defined for the target's type.
var ErrUnsupported = errors.New("operation not supported for this type")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrStorage indicates a lower-level persistence failure, including isolation
// conflicts. Nothing in the core retries internally; callers decide.
var ErrStorage = errors.New("storage error")

// ErrForbidden indicates the acting user lacks the required role.
var ErrForbidden = errors.New("forbidden")

// AppError carries an HTTP-ish status code and a human-readable message next
// to the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewStorageError wraps a persistence failure so it matches ErrStorage.
func NewStorageError(message string, err error) *AppError {
	return &AppError{Code: 500, Message: message, Err: errors.Join(ErrStorage, err)}
}
