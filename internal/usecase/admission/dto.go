package admission

import (
	"time"

	domainShipment "battery-shipment-monitor/internal/domain/shipment"
)

// AdmitRequest asks for a quantity of batteries to ship against a contract.
type AdmitRequest struct {
	ContractID  string `json:"contract_id" validate:"required"`
	Quantity    int    `json:"batteries_shipped" validate:"required,min=1"`
	InitiatedBy string `json:"-"`
}

// ListShipmentsRequest filters and paginates shipment listings.
type ListShipmentsRequest struct {
	Status     string `form:"status" validate:"omitempty,oneof=PENDING APPROVED BLOCKED"`
	ContractID string `form:"contract_id"`
	Page       int    `form:"page" validate:"omitempty,min=1"`
	Limit      int    `form:"limit" validate:"omitempty,min=1,max=200"`
}

// ShipmentResponse mirrors the shipment entity for API consumers.
type ShipmentResponse struct {
	ShipmentID  string     `json:"shipment_id"`
	ContractID  string     `json:"contract_id"`
	Quantity    int        `json:"batteries_shipped"`
	Status      string     `json:"status"`
	InitiatedBy string     `json:"initiated_by"`
	RequestedAt time.Time  `json:"requested_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	BlockReason string     `json:"block_reason,omitempty"`
}

func ToShipmentResponse(s *domainShipment.Shipment) *ShipmentResponse {
	return &ShipmentResponse{
		ShipmentID:  s.ShipmentID,
		ContractID:  s.ContractID,
		Quantity:    s.Quantity,
		Status:      string(s.Status),
		InitiatedBy: s.InitiatedBy,
		RequestedAt: s.RequestedAt,
		ProcessedAt: s.ProcessedAt,
		BlockReason: s.BlockReason,
	}
}

func toShipmentResponses(shipments []*domainShipment.Shipment) []*ShipmentResponse {
	out := make([]*ShipmentResponse, len(shipments))
	for i, s := range shipments {
		out[i] = ToShipmentResponse(s)
	}
	return out
}
