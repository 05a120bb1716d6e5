// Package realtime publishes post-commit state changes to connected
// observers (dashboards). Delivery is at-least-once, best-effort; there is
// no replay.
package realtime

import "time"

// Event types emitted after a successful commit.
const (
	EventContractCreated  = "contract_created"
	EventContractUpdated  = "contract_updated"
	EventShipmentRecorded = "shipment_recorded"
)

// Event is one state-change message pushed to observers.
type Event struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

func NewEvent(eventType string, payload interface{}) Event {
	return Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	}
}

// Publisher pushes events to observers. Implementations must not block the
// caller and must not fail the operation that produced the event.
type Publisher interface {
	Publish(event Event)
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(event Event) {}

// MultiPublisher fans one event out to several sinks.
type MultiPublisher []Publisher

func (m MultiPublisher) Publish(event Event) {
	for _, p := range m {
		p.Publish(event)
	}
}
