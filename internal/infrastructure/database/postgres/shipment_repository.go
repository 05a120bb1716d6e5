package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"battery-shipment-monitor/internal/domain/shipment"
	"battery-shipment-monitor/internal/infrastructure/database/postgres/models"
)

type ShipmentRepository struct {
	db *DB
}

func NewShipmentRepository(db *DB) *ShipmentRepository {
	return &ShipmentRepository{db: db}
}

func (r *ShipmentRepository) Create(ctx context.Context, s *shipment.Shipment) error {
	dbModel := toShipmentModel(s)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create shipment: %w", err)
	}

	return nil
}

func (r *ShipmentRepository) GetByShipmentID(ctx context.Context, shipmentID string) (*shipment.Shipment, error) {
	var dbModel models.ShipmentModel
	err := r.db.DB.WithContext(ctx).
		Where("shipment_id = ?", shipmentID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shipment.ErrShipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}

	return toShipmentEntity(&dbModel), nil
}

func (r *ShipmentRepository) List(ctx context.Context, filter *shipment.Filter) ([]*shipment.Shipment, int64, error) {
	var dbModels []models.ShipmentModel
	var total int64

	db := r.db.DB.WithContext(ctx).Model(&models.ShipmentModel{})

	if filter.Status != nil {
		db = db.Where("status = ?", string(*filter.Status))
	}
	if filter.ContractID != "" {
		db = db.Where("contract_id = ?", filter.ContractID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count shipments: %w", err)
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := (page - 1) * limit

	err := db.Order("requested_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&dbModels).Error

	if err != nil {
		return nil, 0, fmt.Errorf("failed to list shipments: %w", err)
	}

	shipments := make([]*shipment.Shipment, len(dbModels))
	for i := range dbModels {
		shipments[i] = toShipmentEntity(&dbModels[i])
	}

	return shipments, total, nil
}

// NextID draws the next value from the shipment sequence. Sequence values
// survive rollbacks, so blocked attempts may leave gaps; the IDs stay
// monotonic, which is all the log format requires.
func (r *ShipmentRepository) NextID(ctx context.Context) (string, error) {
	var seq int64
	err := r.db.DB.WithContext(ctx).
		Raw("SELECT nextval('shipment_id_seq')").
		Scan(&seq).Error

	if err != nil {
		return "", fmt.Errorf("failed to allocate shipment ID: %w", err)
	}

	return shipment.FormatID(seq), nil
}

func toShipmentModel(s *shipment.Shipment) *models.ShipmentModel {
	var blockReason *string
	if s.BlockReason != "" {
		blockReason = &s.BlockReason
	}

	return &models.ShipmentModel{
		ShipmentID:  s.ShipmentID,
		ContractID:  s.ContractID,
		Quantity:    s.Quantity,
		Status:      string(s.Status),
		InitiatedBy: s.InitiatedBy,
		RequestedAt: s.RequestedAt,
		ProcessedAt: s.ProcessedAt,
		BlockReason: blockReason,
	}
}

func toShipmentEntity(m *models.ShipmentModel) *shipment.Shipment {
	blockReason := ""
	if m.BlockReason != nil {
		blockReason = *m.BlockReason
	}

	return &shipment.Shipment{
		ShipmentID:  m.ShipmentID,
		ContractID:  m.ContractID,
		Quantity:    m.Quantity,
		Status:      shipment.ShipmentStatus(m.Status),
		InitiatedBy: m.InitiatedBy,
		RequestedAt: m.RequestedAt,
		ProcessedAt: m.ProcessedAt,
		BlockReason: blockReason,
	}
}
