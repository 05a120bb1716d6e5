package realtime

import (
	"encoding/json"

	"go.uber.org/zap"

	"battery-shipment-monitor/internal/logger"
	"battery-shipment-monitor/pkg/mqtt"
)

// MQTTPublisher mirrors committed events onto an MQTT topic so external
// integrations can follow contract state without polling the API.
type MQTTPublisher struct {
	client      *mqtt.Client
	topicPrefix string
}

func NewMQTTPublisher(client *mqtt.Client, topicPrefix string) *MQTTPublisher {
	if topicPrefix == "" {
		topicPrefix = "battery-monitor/events"
	}
	return &MQTTPublisher{
		client:      client,
		topicPrefix: topicPrefix,
	}
}

func (p *MQTTPublisher) Publish(event Event) {
	if !p.client.IsConnected() {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Error("Failed to encode MQTT event", zap.Error(err))
		return
	}

	topic := p.topicPrefix + "/" + event.Type
	if err := p.client.Publish(topic, 0, false, data); err != nil {
		logger.Warn("Failed to publish MQTT event",
			zap.String("topic", topic),
			zap.Error(err),
		)
	}
}
