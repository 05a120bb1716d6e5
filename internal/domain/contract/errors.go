package contract

import "errors"

var (
	ErrContractNotFound      = errors.New("contract not found")
	ErrContractAlreadyExists = errors.New("contract already exists")
	ErrInvalidContractID     = errors.New("contract ID must not be empty")
	ErrInvalidDeviceCount    = errors.New("device count must be a positive integer")
	ErrInvalidQuantity       = errors.New("quantity must be a positive integer")
)
