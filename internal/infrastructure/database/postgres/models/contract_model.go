package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"battery-shipment-monitor/internal/domain/contract"
)

// NotificationList stores the contract's notification audit trail as JSONB.
type NotificationList []contract.Notification

func (n NotificationList) Value() (driver.Value, error) {
	if n == nil {
		n = NotificationList{}
	}
	return json.Marshal(n)
}

func (n *NotificationList) Scan(value interface{}) error {
	if value == nil {
		*n = NotificationList{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type for NotificationList: %T", value)
	}

	return json.Unmarshal(raw, n)
}

type ContractModel struct {
	ContractID        string           `gorm:"column:contract_id;primaryKey"`
	DeviceCount       int              `gorm:"column:device_count;not null"`
	BatteriesShipped  int              `gorm:"column:batteries_shipped;not null;default:0"`
	Threshold         int              `gorm:"column:threshold;not null"`
	IsLocked          bool             `gorm:"column:is_locked;not null;default:false;index"`
	NotificationsSent NotificationList `gorm:"column:notifications_sent;type:jsonb;not null;default:'[]'"`
	LastUpdated       time.Time        `gorm:"column:last_updated;index:idx_contracts_last_updated,sort:desc"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (ContractModel) TableName() string {
	return "contracts"
}
