package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates a write lost against concurrent or referencing data,
// e.g. two invoices racing for the same number. The caller may retry.
var ErrConflict = errors.New("conflicting write")

// ErrInvoiceNumberTaken is the ErrConflict raised when another invoice already holds the number.
var ErrInvoiceNumberTaken = fmt.Errorf("invoice number already taken: %w", ErrConflict)

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// AppError carries an HTTP-ish status code and a client safe message alongside
// a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError wraps ErrValidation with a human readable reason.
func NewValidationError(format string, args ...any) error {
	return &AppError{Code: 400, Message: fmt.Sprintf(format, args...), Err: ErrValidation}
}

// NewNotFoundError wraps ErrNotFound naming the missing entity.
func NewNotFoundError(entity string) error {
	return &AppError{Code: 404, Message: entity + " not found", Err: ErrNotFound}
}

// PublicMessage returns the message of the outermost AppError in err's chain,
// or fallback when there is none.
func PublicMessage(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
