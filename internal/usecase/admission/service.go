// Package admission decides whether a requested battery shipment is approved
// or blocked against its contract's threshold, under per-contract mutual
// exclusion.
package admission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	domainContract "battery-shipment-monitor/internal/domain/contract"
	domainShipment "battery-shipment-monitor/internal/domain/shipment"
	"battery-shipment-monitor/internal/logger"
	"battery-shipment-monitor/internal/notification"
	"battery-shipment-monitor/internal/realtime"
	contractUC "battery-shipment-monitor/internal/usecase/contract"
	appErrors "battery-shipment-monitor/pkg/errors"
	"battery-shipment-monitor/pkg/lock"
	"battery-shipment-monitor/pkg/utils"
)

const (
	// warningFloor is the usage percentage at which approvals start
	// emitting warnings. The band is [80, 100): at 100% and above the
	// shipment is blocked instead.
	warningFloor = 80.0

	// maxAttempts bounds transaction retries on storage conflicts.
	maxAttempts = 3
	retryDelay  = 25 * time.Millisecond
)

// Service is the admission engine.
type Service struct {
	tx         TxManager
	shipments  domainShipment.Repository
	locker     lock.Locker
	dispatcher *notification.Dispatcher
	publisher  realtime.Publisher
	recipient  string
	now        func() time.Time
}

func NewService(
	tx TxManager,
	shipments domainShipment.Repository,
	locker lock.Locker,
	dispatcher *notification.Dispatcher,
	publisher realtime.Publisher,
	recipient string,
) *Service {
	return &Service{
		tx:         tx,
		shipments:  shipments,
		locker:     locker,
		dispatcher: dispatcher,
		publisher:  publisher,
		recipient:  recipient,
		now:        time.Now,
	}
}

// outcome carries the committed state out of the transaction closure.
type outcome struct {
	shipment        *domainShipment.Shipment
	contract        *domainContract.Contract
	contractChanged bool
	messages        []*notification.Message
}

// Admit processes one shipment request: load the contract under exclusivity,
// decide APPROVED or BLOCKED, persist shipment and contract atomically, then
// dispatch notifications and publish events without gating the decision.
func (s *Service) Admit(ctx context.Context, req *AdmitRequest) (*ShipmentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewValidationError("Invalid shipment request", err)
	}

	initiator := utils.SanitizeIdentity(req.InitiatedBy)
	if initiator == "" {
		initiator = "system"
	}

	// Serialize all admissions for this contract. Requests for other
	// contracts proceed in parallel.
	release, err := s.locker.Acquire(ctx, req.ContractID)
	if err != nil {
		return nil, err
	}

	var result outcome
	err = s.withRetry(ctx, func(ctx context.Context, stores Stores) error {
		result = outcome{}
		return s.decide(ctx, stores, req, initiator, &result)
	})
	release()

	if err != nil {
		return nil, err
	}

	// Side effects run after commit and never affect the decision.
	s.dispatcher.Dispatch(result.messages...)
	s.publisher.Publish(realtime.NewEvent(
		realtime.EventShipmentRecorded,
		ToShipmentResponse(result.shipment),
	))
	if result.contractChanged {
		s.publisher.Publish(realtime.NewEvent(
			realtime.EventContractUpdated,
			contractUC.ToContractResponse(result.contract),
		))
	}

	logger.Info("Shipment processed",
		zap.String("shipment_id", result.shipment.ShipmentID),
		zap.String("contract_id", req.ContractID),
		zap.String("status", string(result.shipment.Status)),
		zap.Int("quantity", req.Quantity),
		zap.String("initiated_by", initiator),
	)

	return ToShipmentResponse(result.shipment), nil
}

// decide runs the transition rules inside one transaction. The contract row
// is loaded FOR UPDATE, so no concurrent admission for the same contract can
// observe intermediate state.
func (s *Service) decide(ctx context.Context, stores Stores, req *AdmitRequest, initiator string, result *outcome) error {
	c, err := stores.Contracts.GetForUpdate(ctx, req.ContractID)
	if errors.Is(err, domainContract.ErrContractNotFound) {
		return appErrors.NewNotFoundError("Contract not found", err)
	}
	if err != nil {
		return err
	}

	shipmentID, err := stores.Shipments.NextID(ctx)
	if err != nil {
		return err
	}

	next, err := domainShipment.New(shipmentID, req.ContractID, req.Quantity, initiator)
	if err != nil {
		return appErrors.NewValidationError("Invalid shipment request", err)
	}

	now := s.now()

	// A locked contract blocks everything. The shipment is still recorded
	// as a log entry; the contract itself stays untouched.
	if c.IsLocked {
		if err := next.Block(domainShipment.BlockReasonLocked, now); err != nil {
			return err
		}
		if err := stores.Shipments.Create(ctx, next); err != nil {
			return err
		}
		result.shipment = next
		result.contract = c
		return nil
	}

	newTotal := c.BatteriesShipped + req.Quantity

	if newTotal > c.Threshold {
		// Breach: block the shipment and latch the contract. The running
		// total stays where it was.
		if err := next.Block(domainShipment.BlockReasonThreshold, now); err != nil {
			return err
		}
		c.LockForBreach()
		c.AppendNotification(s.recipient, fmt.Sprintf(
			"Contract limit exceeded - shipment blocked (%d/%d)", newTotal, c.Threshold,
		))
		result.messages = append(result.messages, s.message(c, newTotal, notification.ActionBlocked))
	} else {
		if err := next.Approve(now); err != nil {
			return err
		}
		if err := c.AddShipped(req.Quantity); err != nil {
			return err
		}

		percentage := float64(newTotal) / float64(c.Threshold) * 100
		if percentage >= warningFloor && percentage < 100 {
			c.AppendNotification(s.recipient, fmt.Sprintf(
				"Warning: 80%% threshold reached (%d/%d)", newTotal, c.Threshold,
			))
			result.messages = append(result.messages, s.message(c, newTotal, notification.ActionWarning))
		}
	}

	if err := stores.Shipments.Create(ctx, next); err != nil {
		return err
	}
	if err := stores.Contracts.Save(ctx, c); err != nil {
		return err
	}

	result.shipment = next
	result.contract = c
	result.contractChanged = true
	return nil
}

// withRetry reruns the transaction on storage conflicts, up to maxAttempts.
// Exhaustion surfaces a conflict error; the stores hold no partial state in
// any case.
func (s *Service) withRetry(ctx context.Context, fn func(ctx context.Context, stores Stores) error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = s.tx.RunInTx(ctx, fn)
		if err == nil || !errors.Is(err, appErrors.ErrConflict) {
			return err
		}

		if attempt < maxAttempts {
			logger.Warn("Admission transaction conflicted, retrying",
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			select {
			case <-time.After(retryDelay * time.Duration(attempt)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	return appErrors.NewConflictError("admission retries exhausted", err)
}

func (s *Service) message(c *domainContract.Contract, newTotal int, action notification.Action) *notification.Message {
	return &notification.Message{
		To:               s.recipient,
		ContractID:       c.ContractID,
		DeviceCount:      c.DeviceCount,
		BatteriesShipped: newTotal,
		Threshold:        c.Threshold,
		Action:           action,
	}
}

// GetShipment returns one shipment by its human-readable ID.
func (s *Service) GetShipment(ctx context.Context, shipmentID string) (*ShipmentResponse, error) {
	sh, err := s.shipments.GetByShipmentID(ctx, shipmentID)
	if errors.Is(err, domainShipment.ErrShipmentNotFound) {
		return nil, appErrors.NewNotFoundError("Shipment not found", err)
	}
	if err != nil {
		return nil, err
	}

	return ToShipmentResponse(sh), nil
}

// ListShipments returns a page of shipments, newest first.
func (s *Service) ListShipments(ctx context.Context, req *ListShipmentsRequest) ([]*ShipmentResponse, int64, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, 0, appErrors.NewValidationError("Invalid filter", err)
	}

	filter := &domainShipment.Filter{
		ContractID: req.ContractID,
		Page:       req.Page,
		Limit:      req.Limit,
	}
	if req.Status != "" {
		status := domainShipment.ShipmentStatus(req.Status)
		filter.Status = &status
	}

	shipments, total, err := s.shipments.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return toShipmentResponses(shipments), total, nil
}
