// Package notify fans timeline events out to subscribers. Delivery is best
// effort: a failed publish never undoes the change that produced the event.
package notify

import (
	"context"

	"asset_maintenance/internal/models"
)

// Publisher delivers appended timeline events.
type Publisher interface {
	Publish(ctx context.Context, recordID string, ev models.TimelineEvent) error
	Close()
}

// Nop drops every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, string, models.TimelineEvent) error { return nil }
func (Nop) Close()                                                      {}

// Message is the JSON payload published for every event.
type Message struct {
	RecordID string               `json:"recordId"`
	Event    models.TimelineEvent `json:"event"`
}
