package contract

import (
	"errors"
	"testing"
)

func TestThresholdFor(t *testing.T) {
	tests := []struct {
		deviceCount int
		want        int
	}{
		{1, 2},    // 1.2 rounds up
		{3, 4},    // 3.6 rounds up
		{5, 6},    // exact
		{10, 12},  // exact
		{83, 100}, // 99.6 rounds up
		{100, 120},
		{150, 180},
		{1000, 1200},
	}

	for _, tt := range tests {
		if got := ThresholdFor(tt.deviceCount); got != tt.want {
			t.Errorf("ThresholdFor(%d) = %d, want %d", tt.deviceCount, got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	c, err := New("PBR-2024-001", 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if c.Threshold != 120 {
		t.Errorf("threshold = %d, want 120", c.Threshold)
	}
	if c.BatteriesShipped != 0 {
		t.Errorf("batteries shipped = %d, want 0", c.BatteriesShipped)
	}
	if c.IsLocked {
		t.Error("new contract is locked")
	}

	if _, err := New("", 100); !errors.Is(err, ErrInvalidContractID) {
		t.Errorf("New with empty ID: err = %v, want ErrInvalidContractID", err)
	}
	if _, err := New("PBR-2024-001", 0); !errors.Is(err, ErrInvalidDeviceCount) {
		t.Errorf("New with zero devices: err = %v, want ErrInvalidDeviceCount", err)
	}
	if _, err := New("PBR-2024-001", -3); !errors.Is(err, ErrInvalidDeviceCount) {
		t.Errorf("New with negative devices: err = %v, want ErrInvalidDeviceCount", err)
	}
}

func TestSetDeviceCountRecomputesThreshold(t *testing.T) {
	c, err := New("PBR-2024-001", 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := c.SetDeviceCount(200); err != nil {
		t.Fatalf("SetDeviceCount: %v", err)
	}
	if c.Threshold != 240 {
		t.Errorf("threshold = %d, want 240", c.Threshold)
	}

	// Shrinking is allowed even below the shipped total; only future
	// admissions are affected.
	c.BatteriesShipped = 150
	if err := c.SetDeviceCount(50); err != nil {
		t.Fatalf("SetDeviceCount: %v", err)
	}
	if c.Threshold != 60 {
		t.Errorf("threshold = %d, want 60", c.Threshold)
	}
	if c.BatteriesShipped != 150 {
		t.Errorf("batteries shipped = %d, want unchanged 150", c.BatteriesShipped)
	}

	if err := c.SetDeviceCount(0); !errors.Is(err, ErrInvalidDeviceCount) {
		t.Errorf("SetDeviceCount(0): err = %v, want ErrInvalidDeviceCount", err)
	}
}

func TestAddShipped(t *testing.T) {
	c, err := New("PBR-2024-001", 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := c.AddShipped(50); err != nil {
		t.Fatalf("AddShipped: %v", err)
	}
	if err := c.AddShipped(25); err != nil {
		t.Fatalf("AddShipped: %v", err)
	}
	if c.BatteriesShipped != 75 {
		t.Errorf("batteries shipped = %d, want 75", c.BatteriesShipped)
	}

	if err := c.AddShipped(0); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("AddShipped(0): err = %v, want ErrInvalidQuantity", err)
	}
	if err := c.AddShipped(-10); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("AddShipped(-10): err = %v, want ErrInvalidQuantity", err)
	}
}

func TestLockLatch(t *testing.T) {
	c, err := New("PBR-2024-001", 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	c.LockForBreach()
	if !c.IsLocked {
		t.Fatal("LockForBreach did not lock")
	}

	// Latching again is a no-op, not a toggle.
	c.LockForBreach()
	if !c.IsLocked {
		t.Fatal("second LockForBreach unlocked the contract")
	}

	if locked := c.ToggleLock(); locked {
		t.Error("ToggleLock on a locked contract reported locked")
	}
	if locked := c.ToggleLock(); !locked {
		t.Error("ToggleLock on an open contract reported unlocked")
	}
}

func TestAppendNotification(t *testing.T) {
	c, err := New("PBR-2024-001", 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	c.AppendNotification("a@company.com", "first")
	c.AppendNotification("b@company.com", "second")

	if len(c.NotificationsSent) != 2 {
		t.Fatalf("audit trail entries = %d, want 2", len(c.NotificationsSent))
	}
	if c.NotificationsSent[0].Message != "first" || c.NotificationsSent[1].Message != "second" {
		t.Error("audit trail lost insertion order")
	}
	if c.NotificationsSent[1].Timestamp.IsZero() {
		t.Error("audit entry has no timestamp")
	}
}

func TestUsagePercent(t *testing.T) {
	c, err := New("PBR-2024-001", 100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := c.UsagePercent(); got != 0 {
		t.Errorf("usage = %v, want 0", got)
	}

	c.BatteriesShipped = 105
	if got := c.UsagePercent(); got != 87.5 {
		t.Errorf("usage = %v, want 87.5", got)
	}

	c.BatteriesShipped = 120
	if got := c.UsagePercent(); got != 100 {
		t.Errorf("usage = %v, want 100", got)
	}
}
