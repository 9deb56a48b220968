package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller may not perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrWorkplaceNotAssignable is returned when an assignment targets a workplace
// whose can_assign flag is false.
var ErrWorkplaceNotAssignable = errors.New("workplace cannot receive assignments")

// ErrLayoutConflict is returned when a proposed layout cell overlaps an existing one.
var ErrLayoutConflict = errors.New("layout cells overlap")

// ErrCellOutOfBounds is returned when a layout cell does not fit inside its grid.
var ErrCellOutOfBounds = errors.New("layout cell out of grid bounds")

// AppError carries an HTTP-ish code and a user facing message while keeping
// the underlying cause available to errors.Is / errors.As.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewConflictError returns an AppError that matches ErrDuplicate.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrDuplicate}
}

// NewValidationFailedError returns an AppError that matches ErrValidation.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// UserMessage returns the message meant for API clients. Errors that are not
// AppErrors, or whose code is a server error, yield fallback.
func UserMessage(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError && appErr.Message != "" {
		return appErr.Message
	}
	switch {
	case errors.Is(err, ErrWorkplaceNotAssignable):
		return ErrWorkplaceNotAssignable.Error()
	case errors.Is(err, ErrLayoutConflict), errors.Is(err, ErrCellOutOfBounds):
		return err.Error()
	}
	return fallback
}
