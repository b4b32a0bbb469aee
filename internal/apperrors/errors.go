package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrDuplicateCertificateNumber indicates that the (work order, certificate number) pair is already taken.
// It is a specialization of ErrDuplicate.
var ErrDuplicateCertificateNumber = fmt.Errorf("duplicate certificate number: %w", ErrDuplicate)

// ErrWorkOrderNotFound indicates that a certificate references a work order that does not exist.
var ErrWorkOrderNotFound = fmt.Errorf("work order not found: %w", ErrNotFound)

// ErrStoreUnavailable indicates a connection or transaction failure in the data store.
var ErrStoreUnavailable = errors.New("data store unavailable")

// AppError carries an HTTP-ish status code and a message alongside the error kind
// (one of the sentinels above) and the underlying cause.
type AppError struct {
	Code    int
	Message string
	Kind    error
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewAppError creates an AppError without a kind, for failures that match none of the sentinels.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates a not-found AppError.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Kind: ErrNotFound}
}

// NewValidationError creates a validation AppError.
func NewValidationError(message string, err error) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Kind: ErrValidation, Err: err}
}

// NewStoreError wraps a driver error that prevented a store operation from completing.
func NewStoreError(message string, err error) *AppError {
	return &AppError{Code: http.StatusServiceUnavailable, Message: message, Kind: ErrStoreUnavailable, Err: err}
}

// NewDuplicateCertificateNumberError reports a lost race on the per-work-order numbering.
func NewDuplicateCertificateNumberError(workOrderID int64, number int, err error) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: fmt.Sprintf("certificate number %d already exists for work order %d", number, workOrderID),
		Kind:    ErrDuplicateCertificateNumber,
		Err:     err,
	}
}

// NewWorkOrderNotFoundError reports a reference to an unknown work order.
func NewWorkOrderNotFoundError(workOrderID int64, err error) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: fmt.Sprintf("work order %d does not exist", workOrderID),
		Kind:    ErrWorkOrderNotFound,
		Err:     err,
	}
}
