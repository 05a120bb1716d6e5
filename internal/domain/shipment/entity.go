package shipment

import (
	"fmt"
	"time"
)

// ShipmentStatus is the admission decision state of a shipment.
type ShipmentStatus string

const (
	StatusPending  ShipmentStatus = "PENDING"
	StatusApproved ShipmentStatus = "APPROVED"
	StatusBlocked  ShipmentStatus = "BLOCKED"
)

// Block reasons recorded on BLOCKED shipments.
const (
	BlockReasonLocked    = "Contract is locked"
	BlockReasonThreshold = "Exceeds contract threshold"
)

// Shipment is one admission decision. It is created PENDING, transitions
// exactly once to APPROVED or BLOCKED, and is immutable thereafter.
type Shipment struct {
	ShipmentID  string
	ContractID  string
	Quantity    int
	Status      ShipmentStatus
	InitiatedBy string
	RequestedAt time.Time
	ProcessedAt *time.Time
	BlockReason string
}

// New creates a pending shipment request.
func New(shipmentID, contractID string, quantity int, initiatedBy string) (*Shipment, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if contractID == "" {
		return nil, ErrInvalidContractID
	}

	return &Shipment{
		ShipmentID:  shipmentID,
		ContractID:  contractID,
		Quantity:    quantity,
		Status:      StatusPending,
		InitiatedBy: initiatedBy,
		RequestedAt: time.Now(),
	}, nil
}

// Approve finalizes the shipment as APPROVED. Valid only from PENDING.
func (s *Shipment) Approve(at time.Time) error {
	if s.Status != StatusPending {
		return ErrAlreadyProcessed
	}

	s.Status = StatusApproved
	s.ProcessedAt = &at
	return nil
}

// Block finalizes the shipment as BLOCKED with the given reason. Valid only
// from PENDING.
func (s *Shipment) Block(reason string, at time.Time) error {
	if s.Status != StatusPending {
		return ErrAlreadyProcessed
	}

	s.Status = StatusBlocked
	s.BlockReason = reason
	s.ProcessedAt = &at
	return nil
}

// Processed reports whether the shipment has left PENDING.
func (s *Shipment) Processed() bool {
	return s.Status != StatusPending
}

// FormatID renders the human-readable shipment ID for a sequence value.
func FormatID(seq int64) string {
	return fmt.Sprintf("SHP-%06d", seq)
}
