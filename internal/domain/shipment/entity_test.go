package shipment

import (
	"errors"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	s, err := New("SHP-000001", "PBR-2024-001", 50, "ops@company.com")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if s.Status != StatusPending {
		t.Errorf("status = %s, want PENDING", s.Status)
	}
	if s.ProcessedAt != nil {
		t.Error("new shipment already has a processed timestamp")
	}
	if s.RequestedAt.IsZero() {
		t.Error("new shipment has no requested timestamp")
	}

	if _, err := New("SHP-000002", "PBR-2024-001", 0, ""); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("New with zero quantity: err = %v, want ErrInvalidQuantity", err)
	}
	if _, err := New("SHP-000002", "", 10, ""); !errors.Is(err, ErrInvalidContractID) {
		t.Errorf("New with empty contract: err = %v, want ErrInvalidContractID", err)
	}
}

func TestApprove(t *testing.T) {
	s, err := New("SHP-000001", "PBR-2024-001", 50, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	at := time.Now()
	if err := s.Approve(at); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	if s.Status != StatusApproved {
		t.Errorf("status = %s, want APPROVED", s.Status)
	}
	if s.ProcessedAt == nil || !s.ProcessedAt.Equal(at) {
		t.Errorf("processed at = %v, want %v", s.ProcessedAt, at)
	}
	if !s.Processed() {
		t.Error("Processed() = false after approval")
	}

	// The decision is final.
	if err := s.Approve(time.Now()); !errors.Is(err, ErrAlreadyProcessed) {
		t.Errorf("second Approve: err = %v, want ErrAlreadyProcessed", err)
	}
	if err := s.Block(BlockReasonThreshold, time.Now()); !errors.Is(err, ErrAlreadyProcessed) {
		t.Errorf("Block after Approve: err = %v, want ErrAlreadyProcessed", err)
	}
}

func TestBlock(t *testing.T) {
	s, err := New("SHP-000001", "PBR-2024-001", 50, "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := s.Block(BlockReasonLocked, time.Now()); err != nil {
		t.Fatalf("Block: %v", err)
	}

	if s.Status != StatusBlocked {
		t.Errorf("status = %s, want BLOCKED", s.Status)
	}
	if s.BlockReason != BlockReasonLocked {
		t.Errorf("block reason = %q, want %q", s.BlockReason, BlockReasonLocked)
	}

	if err := s.Approve(time.Now()); !errors.Is(err, ErrAlreadyProcessed) {
		t.Errorf("Approve after Block: err = %v, want ErrAlreadyProcessed", err)
	}
}

func TestFormatID(t *testing.T) {
	tests := []struct {
		seq  int64
		want string
	}{
		{1, "SHP-000001"},
		{42, "SHP-000042"},
		{999999, "SHP-999999"},
		{1000000, "SHP-1000000"},
	}

	for _, tt := range tests {
		if got := FormatID(tt.seq); got != tt.want {
			t.Errorf("FormatID(%d) = %s, want %s", tt.seq, got, tt.want)
		}
	}
}
