package ingestion

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"fleet-telematics-monitor/internal/logger"
	pkgmqtt "fleet-telematics-monitor/pkg/mqtt"
)

// MQTTIngestionConfig describes the topics and MQTT connection parameters.
type MQTTIngestionConfig struct {
	ClientConfig *pkgmqtt.Config
	EventTopic   string
	TripTopic    string
	QoS          byte
}

// MQTTIngestionClient wires MQTT messages into the ingestion processor.
type MQTTIngestionClient struct {
	cfg       *MQTTIngestionConfig
	client    *pkgmqtt.Client
	processor *Processor

	mu            sync.Mutex
	started       bool
	subscriptions []string
}

// NewMQTTIngestionClient builds a new MQTT client for ingestion.
func NewMQTTIngestionClient(cfg *MQTTIngestionConfig, processor *Processor) (*MQTTIngestionClient, error) {
	if cfg == nil || cfg.ClientConfig == nil {
		return nil, errors.New("mqtt ingestion config is not configured")
	}
	if processor == nil {
		return nil, errors.New("processor is required")
	}

	client := pkgmqtt.NewClient(cfg.ClientConfig)
	return &MQTTIngestionClient{
		cfg:       cfg,
		client:    client,
		processor: processor,
	}, nil
}

// Start establishes the MQTT connection and subscribes to the topics.
func (c *MQTTIngestionClient) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return nil
	}

	if err := c.client.Connect(); err != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", err)
	}

	type subscription struct {
		topic   string
		handler pkgmqtt.MessageHandler
	}

	subs := []subscription{}
	if c.cfg.EventTopic != "" {
		subs = append(subs, subscription{
			topic:   c.cfg.EventTopic,
			handler: c.handleEventMessage,
		})
	}
	if c.cfg.TripTopic != "" {
		subs = append(subs, subscription{
			topic:   c.cfg.TripTopic,
			handler: c.handleTripMessage,
		})
	}

	if len(subs) == 0 {
		return errors.New("no MQTT topics configured for ingestion")
	}

	qos := c.cfg.QoS
	for _, sub := range subs {
		if err := c.client.Subscribe(sub.topic, qos, sub.handler); err != nil {
			c.client.Disconnect()
			return fmt.Errorf("subscribe failed for topic %s: %w", sub.topic, err)
		}
		c.subscriptions = append(c.subscriptions, sub.topic)
	}

	c.started = true
	return nil
}

// Stop unsubscribes and disconnects from the broker.
func (c *MQTTIngestionClient) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started {
		return
	}

	if len(c.subscriptions) > 0 {
		if err := c.client.Unsubscribe(c.subscriptions...); err != nil {
			logger.Warn("Failed to unsubscribe from MQTT topics", zap.Error(err))
		}
	}

	c.client.Disconnect()
	c.started = false
	c.subscriptions = nil
}

func (c *MQTTIngestionClient) handleEventMessage(_ string, payload []byte) {
	msg, err := ParseEventMessage(payload)
	if err != nil {
		logger.Warn("Invalid event payload", zap.Error(err))
		return
	}

	c.processor.ProcessEvent(msg)
}

func (c *MQTTIngestionClient) handleTripMessage(_ string, payload []byte) {
	msg, err := ParseTripMessage(payload)
	if err != nil {
		logger.Warn("Invalid trip payload", zap.Error(err))
		return
	}

	c.processor.ProcessTrip(msg)
}
