package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"validation app error", NewValidationError("bad input", nil), CodeValidation},
		{"not found app error", NewNotFoundError("missing", nil), CodeNotFound},
		{"conflict app error", NewConflictError("conflict", nil), CodeConflict},
		{"wrapped app error", fmt.Errorf("handler: %w", NewNotFoundError("missing", nil)), CodeNotFound},
		{"contract sentinel", ErrContractNotFound, CodeNotFound},
		{"shipment sentinel", ErrShipmentNotFound, CodeNotFound},
		{"quantity sentinel", ErrInvalidQuantity, CodeValidation},
		{"conflict sentinel", fmt.Errorf("tx: %w", ErrConflict), CodeConflict},
		{"unknown error", errors.New("boom"), CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("row not found")
	err := NewNotFoundError("Contract not found", cause)

	if !errors.Is(err, cause) {
		t.Error("AppError does not unwrap to its cause")
	}
	if err.Error() != "Contract not found: row not found" {
		t.Errorf("Error() = %q", err.Error())
	}

	bare := NewConflictError("already exists", nil)
	if bare.Error() != "already exists" {
		t.Errorf("Error() without cause = %q", bare.Error())
	}
}
