package notification

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"battery-shipment-monitor/internal/config"
	"battery-shipment-monitor/internal/logger"
)

// EmailNotifier delivers notifications over SMTP. When the SMTP settings are
// incomplete it degrades to a no-op, matching the behavior of running the
// service without a mail account.
type EmailNotifier struct {
	cfg config.SMTPConfig
}

func NewEmailNotifier(cfg config.SMTPConfig) *EmailNotifier {
	return &EmailNotifier{cfg: cfg}
}

func (n *EmailNotifier) configured() bool {
	return n.cfg.Host != "" && n.cfg.User != "" && n.cfg.Password != ""
}

func (n *EmailNotifier) Send(ctx context.Context, msg *Message) error {
	if !n.configured() {
		logger.Info("Email service not configured, skipping notification")
		return nil
	}

	from := n.cfg.From
	if from == "" {
		from = n.cfg.User
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject())
	m.SetBody("text/plain", renderBody(msg))

	dialer := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.User, n.cfg.Password)

	done := make(chan error, 1)
	go func() {
		done <- dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("sending notification email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func renderBody(msg *Message) string {
	percentage := 0.0
	if msg.Threshold > 0 {
		percentage = float64(msg.BatteriesShipped) / float64(msg.Threshold) * 100
	}

	headline := "Contract has reached 80% of its battery shipment threshold."
	if msg.Action == ActionBlocked {
		headline = "The battery shipment limit for this contract has been exceeded. The contract is now locked."
	}

	return fmt.Sprintf(`%s

Contract ID:       %s
Device count:      %d
Batteries shipped: %d
Threshold:         %d
Usage:             %.1f%%
`, headline, msg.ContractID, msg.DeviceCount, msg.BatteriesShipped, msg.Threshold, percentage)
}
