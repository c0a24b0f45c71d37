package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"asset_maintenance/internal/logger"
	"asset_maintenance/internal/models"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeToken struct {
	done chan struct{}
	err  error
}

func doneToken(err error) *fakeToken {
	t := &fakeToken{done: make(chan struct{}), err: err}
	close(t.done)
	return t
}

func (t *fakeToken) Wait() bool                     { <-t.done; return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{}          { return t.done }
func (t *fakeToken) Error() error                   { return t.err }

type published struct {
	topic   string
	qos     byte
	payload []byte
}

type fakeClient struct {
	sent         []published
	token        mqtt.Token
	disconnected bool
}

func (c *fakeClient) Publish(topic string, qos byte, _ bool, payload interface{}) mqtt.Token {
	c.sent = append(c.sent, published{topic: topic, qos: qos, payload: payload.([]byte)})
	return c.token
}

func (c *fakeClient) Disconnect(uint) { c.disconnected = true }

func TestMQTTPublisher_Publish(t *testing.T) {
	t.Parallel()

	fc := &fakeClient{token: doneToken(nil)}
	p := newMQTTPublisher(fc, "/plant/maintenance/", logger.Nop())

	ev := models.TimelineEvent{ID: "e1", Type: models.EventStatusChange, Title: "Pending → Scheduled", User: "tech"}
	require.NoError(t, p.Publish(context.Background(), "MNT-001", ev))

	require.Len(t, fc.sent, 1)
	assert.Equal(t, "plant/maintenance/MNT-001/events", fc.sent[0].topic)
	assert.Equal(t, byte(1), fc.sent[0].qos)

	var msg Message
	require.NoError(t, json.Unmarshal(fc.sent[0].payload, &msg))
	assert.Equal(t, "MNT-001", msg.RecordID)
	assert.Equal(t, ev.Title, msg.Event.Title)

	p.Close()
	assert.True(t, fc.disconnected)
}

func TestMQTTPublisher_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("not connected")
	p := newMQTTPublisher(&fakeClient{token: doneToken(boom)}, "", logger.Nop())
	assert.ErrorIs(t, p.Publish(context.Background(), "MNT-001", models.TimelineEvent{}), boom)
	assert.Equal(t, "MNT-001/events", p.Topic("MNT-001"))

	pending := &fakeToken{done: make(chan struct{})}
	p = newMQTTPublisher(&fakeClient{token: pending}, "x", logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, p.Publish(ctx, "MNT-001", models.TimelineEvent{}), ErrPublishTimeout)
}

func TestMQTTPublisher_PublishDoesNotWaitForStalledBroker(t *testing.T) {
	t.Parallel()

	// token of a publish queued while the client reconnects
	stalled := &fakeToken{done: make(chan struct{})}
	p := newMQTTPublisher(&fakeClient{token: stalled}, "plant", logger.Nop())
	p.timeout = 20 * time.Millisecond

	errc := make(chan error, 1)
	go func() {
		errc <- p.Publish(context.Background(), "MNT-001", models.TimelineEvent{ID: "e1"})
	}()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, ErrPublishTimeout)
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a token that never completes")
	}
}

func TestNop(t *testing.T) {
	t.Parallel()

	var p Publisher = Nop{}
	assert.NoError(t, p.Publish(context.Background(), "MNT-001", models.TimelineEvent{}))
	p.Close()
}
