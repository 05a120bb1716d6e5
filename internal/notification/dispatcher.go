package notification

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"battery-shipment-monitor/internal/logger"
)

const dispatchTimeout = 30 * time.Second

// Dispatcher sends notifications asynchronously after a commit. Failures are
// logged and swallowed; they never reach the caller of the admission path.
type Dispatcher struct {
	notifier Notifier
	wg       sync.WaitGroup
}

func NewDispatcher(notifier Notifier) *Dispatcher {
	return &Dispatcher{notifier: notifier}
}

// Dispatch queues the messages for delivery and returns immediately.
func (d *Dispatcher) Dispatch(msgs ...*Message) {
	for _, msg := range msgs {
		d.wg.Add(1)
		go func(msg *Message) {
			defer d.wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
			defer cancel()

			if err := d.notifier.Send(ctx, msg); err != nil {
				logger.Error("Failed to send notification",
					zap.String("contract_id", msg.ContractID),
					zap.String("action", string(msg.Action)),
					zap.String("recipient", msg.To),
					zap.Error(err),
				)
				return
			}

			logger.Info("Notification sent",
				zap.String("contract_id", msg.ContractID),
				zap.String("action", string(msg.Action)),
				zap.String("recipient", msg.To),
			)
		}(msg)
	}
}

// Wait blocks until all in-flight notifications finish. Used on shutdown and
// in tests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
