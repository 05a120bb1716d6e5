// Package contract implements contract administration: creation, device
// count changes (which re-derive the threshold), manual lock toggling, and
// deletion. These operations feed the schema the admission engine reads.
package contract

import (
	"context"
	"errors"

	"go.uber.org/zap"

	domainContract "battery-shipment-monitor/internal/domain/contract"
	"battery-shipment-monitor/internal/logger"
	"battery-shipment-monitor/internal/realtime"
	appErrors "battery-shipment-monitor/pkg/errors"
	"battery-shipment-monitor/pkg/lock"
	"battery-shipment-monitor/pkg/utils"
)

type Service struct {
	repo      domainContract.Repository
	locker    lock.Locker
	publisher realtime.Publisher
}

func NewService(repo domainContract.Repository, locker lock.Locker, publisher realtime.Publisher) *Service {
	return &Service{
		repo:      repo,
		locker:    locker,
		publisher: publisher,
	}
}

func (s *Service) Create(ctx context.Context, req *CreateContractRequest) (*ContractResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewValidationError("Invalid contract request", err)
	}

	c, err := domainContract.New(utils.SanitizeString(req.ContractID), req.DeviceCount)
	if err != nil {
		return nil, appErrors.NewValidationError("Invalid contract request", err)
	}

	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, domainContract.ErrContractAlreadyExists) {
			return nil, appErrors.NewConflictError("Contract with this ID already exists", err)
		}
		return nil, err
	}

	logger.Info("Contract created",
		zap.String("contract_id", c.ContractID),
		zap.Int("device_count", c.DeviceCount),
		zap.Int("threshold", c.Threshold),
	)

	s.publisher.Publish(realtime.NewEvent(realtime.EventContractCreated, ToContractResponse(c)))

	return ToContractResponse(c), nil
}

func (s *Service) Get(ctx context.Context, contractID string) (*ContractResponse, error) {
	c, err := s.getContract(ctx, contractID)
	if err != nil {
		return nil, err
	}

	return ToContractResponse(c), nil
}

func (s *Service) List(ctx context.Context) ([]*ContractResponse, error) {
	contracts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return toContractResponses(contracts), nil
}

// UpdateDeviceCount changes the device count and re-derives the threshold.
// It takes the same per-contract lock as the admission path so the update
// cannot clobber a concurrent admission's running total.
func (s *Service) UpdateDeviceCount(ctx context.Context, contractID string, req *UpdateContractRequest) (*ContractResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewValidationError("Invalid contract request", err)
	}

	release, err := s.locker.Acquire(ctx, contractID)
	if err != nil {
		return nil, err
	}
	defer release()

	c, err := s.getContract(ctx, contractID)
	if err != nil {
		return nil, err
	}

	if req.DeviceCount != nil {
		if err := c.SetDeviceCount(*req.DeviceCount); err != nil {
			return nil, appErrors.NewValidationError("Invalid contract request", err)
		}
	}

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}

	logger.Info("Contract updated",
		zap.String("contract_id", c.ContractID),
		zap.Int("device_count", c.DeviceCount),
		zap.Int("threshold", c.Threshold),
	)

	s.publisher.Publish(realtime.NewEvent(realtime.EventContractUpdated, ToContractResponse(c)))

	return ToContractResponse(c), nil
}

// ToggleLock flips the manual lock. This is the only path that clears an
// automatic breach lock.
func (s *Service) ToggleLock(ctx context.Context, contractID string) (*ContractResponse, error) {
	release, err := s.locker.Acquire(ctx, contractID)
	if err != nil {
		return nil, err
	}
	defer release()

	c, err := s.getContract(ctx, contractID)
	if err != nil {
		return nil, err
	}

	locked := c.ToggleLock()

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, err
	}

	logger.Info("Contract lock toggled",
		zap.String("contract_id", c.ContractID),
		zap.Bool("is_locked", locked),
	)

	s.publisher.Publish(realtime.NewEvent(realtime.EventContractUpdated, ToContractResponse(c)))

	return ToContractResponse(c), nil
}

func (s *Service) Delete(ctx context.Context, contractID string) error {
	err := s.repo.Delete(ctx, contractID)
	if errors.Is(err, domainContract.ErrContractNotFound) {
		return appErrors.NewNotFoundError("Contract not found", err)
	}
	if err != nil {
		return err
	}

	logger.Info("Contract deleted", zap.String("contract_id", contractID))
	return nil
}

func (s *Service) getContract(ctx context.Context, contractID string) (*domainContract.Contract, error) {
	c, err := s.repo.GetByID(ctx, contractID)
	if errors.Is(err, domainContract.ErrContractNotFound) {
		return nil, appErrors.NewNotFoundError("Contract not found", err)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
