package admission

import (
	"context"

	"battery-shipment-monitor/internal/domain/contract"
	"battery-shipment-monitor/internal/domain/shipment"
)

// Stores bundles the repositories bound to one transaction.
type Stores struct {
	Contracts contract.Repository
	Shipments shipment.Repository
}

// TxManager runs fn atomically: every store write inside fn commits as one
// unit or not at all. Implementations translate retryable storage conflicts
// (serialization failures, deadlocks) into errors matching
// pkg/errors.ErrConflict so the engine can retry.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, stores Stores) error) error
}
