package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"battery-shipment-monitor/internal/domain/contract"
	"battery-shipment-monitor/internal/infrastructure/database/postgres/models"
)

type ContractRepository struct {
	db *DB
}

func NewContractRepository(db *DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) Create(ctx context.Context, c *contract.Contract) error {
	dbModel := toContractModel(c)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if isDuplicateKey(err) {
			return contract.ErrContractAlreadyExists
		}
		return fmt.Errorf("failed to create contract: %w", err)
	}

	return nil
}

func (r *ContractRepository) GetByID(ctx context.Context, contractID string) (*contract.Contract, error) {
	var dbModel models.ContractModel
	err := r.db.DB.WithContext(ctx).
		Where("contract_id = ?", contractID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, contract.ErrContractNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}

	return toContractEntity(&dbModel), nil
}

// GetForUpdate loads the contract row with SELECT ... FOR UPDATE. Must run
// inside a transaction; the row lock is held until commit or rollback.
func (r *ContractRepository) GetForUpdate(ctx context.Context, contractID string) (*contract.Contract, error) {
	var dbModel models.ContractModel
	err := r.db.DB.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("contract_id = ?", contractID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, contract.ErrContractNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock contract: %w", err)
	}

	return toContractEntity(&dbModel), nil
}

func (r *ContractRepository) Save(ctx context.Context, c *contract.Contract) error {
	dbModel := toContractModel(c)

	result := r.db.DB.WithContext(ctx).
		Model(&models.ContractModel{}).
		Where("contract_id = ?", c.ContractID).
		Updates(map[string]interface{}{
			"device_count":       dbModel.DeviceCount,
			"batteries_shipped":  dbModel.BatteriesShipped,
			"threshold":          dbModel.Threshold,
			"is_locked":          dbModel.IsLocked,
			"notifications_sent": dbModel.NotificationsSent,
			"last_updated":       dbModel.LastUpdated,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to save contract: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return contract.ErrContractNotFound
	}

	return nil
}

func (r *ContractRepository) List(ctx context.Context) ([]*contract.Contract, error) {
	var dbModels []models.ContractModel
	err := r.db.DB.WithContext(ctx).
		Order("last_updated DESC").
		Find(&dbModels).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	contracts := make([]*contract.Contract, len(dbModels))
	for i := range dbModels {
		contracts[i] = toContractEntity(&dbModels[i])
	}

	return contracts, nil
}

func (r *ContractRepository) Delete(ctx context.Context, contractID string) error {
	result := r.db.DB.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Delete(&models.ContractModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete contract: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return contract.ErrContractNotFound
	}

	return nil
}

func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key")
}

func toContractModel(c *contract.Contract) *models.ContractModel {
	return &models.ContractModel{
		ContractID:        c.ContractID,
		DeviceCount:       c.DeviceCount,
		BatteriesShipped:  c.BatteriesShipped,
		Threshold:         c.Threshold,
		IsLocked:          c.IsLocked,
		NotificationsSent: models.NotificationList(c.NotificationsSent),
		LastUpdated:       c.LastUpdated,
		CreatedAt:         c.CreatedAt,
	}
}

func toContractEntity(m *models.ContractModel) *contract.Contract {
	return &contract.Contract{
		ContractID:        m.ContractID,
		DeviceCount:       m.DeviceCount,
		BatteriesShipped:  m.BatteriesShipped,
		Threshold:         m.Threshold,
		IsLocked:          m.IsLocked,
		NotificationsSent: []contract.Notification(m.NotificationsSent),
		LastUpdated:       m.LastUpdated,
		CreatedAt:         m.CreatedAt,
	}
}
