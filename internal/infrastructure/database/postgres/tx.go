package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"battery-shipment-monitor/internal/usecase/admission"
	appErrors "battery-shipment-monitor/pkg/errors"
)

// Postgres error codes that are safe to retry as a whole transaction.
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// TxManager runs admission transactions against Postgres. Repositories
// handed to fn are bound to the transaction, so every write inside fn
// commits atomically with the rest.
type TxManager struct {
	db *DB
}

func NewTxManager(db *DB) *TxManager {
	return &TxManager{db: db}
}

func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context, stores admission.Stores) error) error {
	err := m.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txDB := &DB{DB: tx}
		return fn(ctx, admission.Stores{
			Contracts: NewContractRepository(txDB),
			Shipments: NewShipmentRepository(txDB),
		})
	})

	if err != nil && isRetryable(err) {
		return fmt.Errorf("%w: %v", appErrors.ErrConflict, err)
	}

	return err
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
	}
	return false
}
