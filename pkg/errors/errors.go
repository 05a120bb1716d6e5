package errors

import (
	"errors"
	"fmt"
)

var (
	ErrContractNotFound      = errors.New("contract not found")
	ErrContractAlreadyExists = errors.New("contract already exists")
	ErrContractLocked        = errors.New("contract is locked")

	ErrShipmentNotFound = errors.New("shipment not found")

	ErrInvalidInput    = errors.New("invalid input data")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	ErrConflict = errors.New("operation conflicted with a concurrent update")
)

// Error codes carried by AppError. Handlers map them to HTTP statuses.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeConflict   = "CONFLICT"
	CodeInternal   = "INTERNAL_ERROR"
)

type AppError struct {
	Code    string
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

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewValidationError(message string, err error) *AppError {
	return NewAppError(CodeValidation, message, err)
}

func NewNotFoundError(message string, err error) *AppError {
	return NewAppError(CodeNotFound, message, err)
}

func NewConflictError(message string, err error) *AppError {
	return NewAppError(CodeConflict, message, err)
}

// CodeOf extracts the AppError code from err, falling back to CodeInternal.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}

	switch {
	case errors.Is(err, ErrContractNotFound), errors.Is(err, ErrShipmentNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidQuantity):
		return CodeValidation
	case errors.Is(err, ErrConflict):
		return CodeConflict
	}

	return CodeInternal
}
