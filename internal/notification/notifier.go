// Package notification delivers threshold warnings and breach notices to
// stakeholders. Delivery is best-effort: failures are logged and never
// propagate into the admission decision.
package notification

import "context"

// Action distinguishes the two notification kinds.
type Action string

const (
	ActionWarning Action = "WARNING"
	ActionBlocked Action = "BLOCKED"
)

// Message is one notification to deliver.
type Message struct {
	To               string
	ContractID       string
	DeviceCount      int
	BatteriesShipped int
	Threshold        int
	Action           Action
}

// Subject renders the message subject line.
func (m *Message) Subject() string {
	if m.Action == ActionBlocked {
		return "Battery shipment limit exceeded (contract " + m.ContractID + ")"
	}
	return "Battery shipment warning (contract " + m.ContractID + ")"
}

// Notifier sends a single notification.
type Notifier interface {
	Send(ctx context.Context, msg *Message) error
}

// NopNotifier drops every message. Used when no SMTP is configured and in
// tests.
type NopNotifier struct{}

func (NopNotifier) Send(ctx context.Context, msg *Message) error {
	return nil
}
