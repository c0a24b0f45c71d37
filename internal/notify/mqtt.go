package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"asset_maintenance/internal/logger"
	"asset_maintenance/internal/models"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	qosAtLeastOnce  = 1
	connectTimeout  = 5 * time.Second
	publishTimeout  = 2 * time.Second
	disconnectQuiet = 250 // ms
)

var ErrPublishTimeout = errors.New("mqtt publish timed out")

// client is the subset of mqtt.Client used here.
type client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Disconnect(quiesce uint)
}

// MQTTPublisher publishes events to <prefix>/<recordID>/events with QoS 1.
// A publish waits at most timeout for the broker; while the client is
// reconnecting the message stays queued in paho and the caller moves on.
type MQTTPublisher struct {
	client  client
	prefix  string
	timeout time.Duration
	log     *logger.Logger
}

type MQTTOptions struct {
	Broker      string // e.g. tcp://localhost:1883
	ClientID    string
	TopicPrefix string
}

// NewMQTT connects to the broker. The client reconnects on its own after
// the first successful connection.
func NewMQTT(opts MQTTOptions, log *logger.Logger) (*MQTTPublisher, error) {
	co := mqtt.NewClientOptions().
		AddBroker(opts.Broker).
		SetClientID(opts.ClientID).
		SetAutoReconnect(true).
		SetConnectTimeout(connectTimeout).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			log.Warnw("mqtt_connection_lost", "broker", opts.Broker, "err", err)
		})

	c := mqtt.NewClient(co)
	tok := c.Connect()
	if !tok.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("connect to mqtt broker %s: timed out", opts.Broker)
	}
	if err := tok.Error(); err != nil {
		return nil, fmt.Errorf("connect to mqtt broker %s: %w", opts.Broker, err)
	}
	return newMQTTPublisher(c, opts.TopicPrefix, log), nil
}

func newMQTTPublisher(c client, prefix string, log *logger.Logger) *MQTTPublisher {
	return &MQTTPublisher{client: c, prefix: strings.Trim(prefix, "/"), timeout: publishTimeout, log: log}
}

// Topic returns the topic events of recordID are published to.
func (p *MQTTPublisher) Topic(recordID string) string {
	if p.prefix == "" {
		return recordID + "/events"
	}
	return p.prefix + "/" + recordID + "/events"
}

func (p *MQTTPublisher) Publish(ctx context.Context, recordID string, ev models.TimelineEvent) error {
	payload, err := json.Marshal(Message{RecordID: recordID, Event: ev})
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", ev.ID, err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	topic := p.Topic(recordID)
	tok := p.client.Publish(topic, qosAtLeastOnce, false, payload)
	select {
	case <-tok.Done():
		err = tok.Error()
	case <-ctx.Done():
		err = fmt.Errorf("%w: %v", ErrPublishTimeout, ctx.Err())
	}
	if err != nil {
		p.log.Warnw("mqtt_publish_failed", "topic", topic, "event_id", ev.ID, "err", err)
		return err
	}
	p.log.Debugw("mqtt_published", "topic", topic, "event_id", ev.ID, "type", ev.Type)
	return nil
}

func (p *MQTTPublisher) Close() {
	p.client.Disconnect(disconnectQuiet)
}
