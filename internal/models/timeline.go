package models

import (
	"fmt"
	"strings"
	"time"
)

// EventType classifies a timeline entry.
type EventType string

const (
	EventStatusChange EventType = "status_change"
	EventComment      EventType = "comment"
	EventAssignment   EventType = "assignment"
	EventCreation     EventType = "creation"
	EventUpdate       EventType = "update"
)

var AllEventTypes = [...]EventType{EventStatusChange, EventComment, EventAssignment, EventCreation, EventUpdate}

func (t EventType) Valid() bool {
	for _, known := range AllEventTypes {
		if t == known {
			return true
		}
	}
	return false
}

func ParseEventType(s string) (EventType, error) {
	t := EventType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown event type %q", s)
	}
	return t, nil
}

// TimelineEvent is one immutable audit entry attached to a record.
type TimelineEvent struct {
	ID          string    `json:"id"`
	Type        EventType `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	User        string    `json:"user"`
	Timestamp   time.Time `json:"timestamp"`
}

// Comment is a user note on a ticket; internal ones are visible to IT staff only.
type Comment struct {
	ID         string    `json:"id"`
	Author     string    `json:"author"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	IsInternal bool      `json:"isInternal"`
}
