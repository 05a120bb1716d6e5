package contract

import "context"

// Repository defines the interface for contract storage.
type Repository interface {
	Create(ctx context.Context, contract *Contract) error
	GetByID(ctx context.Context, contractID string) (*Contract, error)
	// GetForUpdate loads the contract with an exclusive row lock. It is
	// only meaningful inside a transaction.
	GetForUpdate(ctx context.Context, contractID string) (*Contract, error)
	Save(ctx context.Context, contract *Contract) error
	List(ctx context.Context) ([]*Contract, error)
	Delete(ctx context.Context, contractID string) error
}
