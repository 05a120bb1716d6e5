package contract

import (
	"math"
	"time"
)

// thresholdBuffer is the 20% margin added on top of the device count.
const thresholdBuffer = 1.2

// Notification is one entry of the contract's append-only audit trail.
type Notification struct {
	Recipient string    `json:"recipient"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// Contract caps the cumulative batteries shippable for one agreement.
// Threshold is always derived from DeviceCount; it is never set directly.
type Contract struct {
	ContractID        string
	DeviceCount       int
	BatteriesShipped  int
	Threshold         int
	IsLocked          bool
	NotificationsSent []Notification
	LastUpdated       time.Time
	CreatedAt         time.Time
}

// ThresholdFor derives the shipment cap for a device count.
func ThresholdFor(deviceCount int) int {
	return int(math.Ceil(float64(deviceCount) * thresholdBuffer))
}

// New creates a contract with its threshold derived from the device count.
func New(contractID string, deviceCount int) (*Contract, error) {
	if contractID == "" {
		return nil, ErrInvalidContractID
	}
	if deviceCount < 1 {
		return nil, ErrInvalidDeviceCount
	}

	now := time.Now()
	return &Contract{
		ContractID:  contractID,
		DeviceCount: deviceCount,
		Threshold:   ThresholdFor(deviceCount),
		LastUpdated: now,
		CreatedAt:   now,
	}, nil
}

// SetDeviceCount changes the device count and recomputes the threshold.
// This is the only way the threshold moves after creation.
func (c *Contract) SetDeviceCount(deviceCount int) error {
	if deviceCount < 1 {
		return ErrInvalidDeviceCount
	}

	c.DeviceCount = deviceCount
	c.Threshold = ThresholdFor(deviceCount)
	c.touch()
	return nil
}

// AddShipped increases the running total of approved batteries.
func (c *Contract) AddShipped(quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	c.BatteriesShipped += quantity
	c.touch()
	return nil
}

// LockForBreach latches the contract after a threshold breach. Only
// ToggleLock can reopen it.
func (c *Contract) LockForBreach() {
	c.IsLocked = true
	c.touch()
}

// ToggleLock flips the lock manually and returns the new state.
func (c *Contract) ToggleLock() bool {
	c.IsLocked = !c.IsLocked
	c.touch()
	return c.IsLocked
}

// AppendNotification records a notification in the contract's audit trail.
// The trail is append-only and never pruned.
func (c *Contract) AppendNotification(recipient, message string) {
	c.NotificationsSent = append(c.NotificationsSent, Notification{
		Recipient: recipient,
		Timestamp: time.Now(),
		Message:   message,
	})
	c.touch()
}

// UsagePercent reports the shipped total as a percentage of the threshold.
func (c *Contract) UsagePercent() float64 {
	if c.Threshold == 0 {
		return 0
	}
	return float64(c.BatteriesShipped) / float64(c.Threshold) * 100
}

func (c *Contract) touch() {
	c.LastUpdated = time.Now()
}
