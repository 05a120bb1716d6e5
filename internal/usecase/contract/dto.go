package contract

import (
	"time"

	domainContract "battery-shipment-monitor/internal/domain/contract"
)

type CreateContractRequest struct {
	ContractID  string `json:"contract_id" validate:"required,min=1,max=64"`
	DeviceCount int    `json:"device_count" validate:"required,min=1"`
}

type UpdateContractRequest struct {
	DeviceCount *int `json:"device_count" validate:"omitempty,min=1"`
}

type ContractResponse struct {
	ContractID        string                        `json:"contract_id"`
	DeviceCount       int                           `json:"device_count"`
	BatteriesShipped  int                           `json:"batteries_shipped"`
	Threshold         int                           `json:"threshold"`
	IsLocked          bool                          `json:"is_locked"`
	UsagePercent      float64                       `json:"usage_percent"`
	NotificationsSent []domainContract.Notification `json:"notifications_sent"`
	LastUpdated       time.Time                     `json:"last_updated"`
	CreatedAt         time.Time                     `json:"created_at"`
}

func ToContractResponse(c *domainContract.Contract) *ContractResponse {
	notifications := c.NotificationsSent
	if notifications == nil {
		notifications = []domainContract.Notification{}
	}

	return &ContractResponse{
		ContractID:        c.ContractID,
		DeviceCount:       c.DeviceCount,
		BatteriesShipped:  c.BatteriesShipped,
		Threshold:         c.Threshold,
		IsLocked:          c.IsLocked,
		UsagePercent:      c.UsagePercent(),
		NotificationsSent: notifications,
		LastUpdated:       c.LastUpdated,
		CreatedAt:         c.CreatedAt,
	}
}

func toContractResponses(contracts []*domainContract.Contract) []*ContractResponse {
	out := make([]*ContractResponse, len(contracts))
	for i, c := range contracts {
		out[i] = ToContractResponse(c)
	}
	return out
}
