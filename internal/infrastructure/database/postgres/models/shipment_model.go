package models

import "time"

type ShipmentModel struct {
	ShipmentID  string     `gorm:"column:shipment_id;primaryKey"`
	ContractID  string     `gorm:"column:contract_id;not null;index:idx_shipments_contract_requested,priority:1"`
	Quantity    int        `gorm:"column:batteries_shipped;not null"`
	Status      string     `gorm:"column:status;not null;index"`
	InitiatedBy string     `gorm:"column:initiated_by;not null"`
	RequestedAt time.Time  `gorm:"column:requested_at;index;index:idx_shipments_contract_requested,priority:2,sort:desc"`
	ProcessedAt *time.Time `gorm:"column:processed_at"`
	BlockReason *string    `gorm:"column:block_reason"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ShipmentModel) TableName() string {
	return "shipments"
}
