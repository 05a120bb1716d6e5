package shipment

import "errors"

var (
	ErrShipmentNotFound  = errors.New("shipment not found")
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
	ErrInvalidContractID = errors.New("contract ID must not be empty")
	ErrAlreadyProcessed  = errors.New("shipment has already been processed")
	ErrInvalidStatus     = errors.New("invalid shipment status")
)
