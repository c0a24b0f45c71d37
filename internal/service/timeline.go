package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"asset_maintenance/internal/models"
	"asset_maintenance/internal/notify"
	"asset_maintenance/internal/repository"

	"github.com/google/uuid"
)

// TimelineService is the single place timeline events are stamped and
// published. MaintenanceService builds the events of its mutations here and
// stores them atomically with the record change; Record appends free-form
// update entries directly.
type TimelineService struct {
	repo repository.TimelineRepo
	pub  notify.Publisher
	now  func() time.Time
}

func NewTimelineService(repo repository.TimelineRepo, pub notify.Publisher, now func() time.Time) *TimelineService {
	return &TimelineService{repo: repo, pub: pub, now: now}
}

// newEvent stamps an event with a fresh id and the current time.
func (s *TimelineService) newEvent(typ models.EventType, title, description, user string) models.TimelineEvent {
	return models.TimelineEvent{
		ID:          uuid.NewString(),
		Type:        typ,
		Title:       title,
		Description: description,
		User:        userOrSystem(user),
		Timestamp:   s.now().UTC(),
	}
}

// publish hands events to the notifier. Delivery failures are the
// publisher's concern and never fail the mutation.
func (s *TimelineService) publish(ctx context.Context, recordID string, events ...models.TimelineEvent) {
	for _, ev := range events {
		_ = s.pub.Publish(ctx, recordID, ev)
	}
}

// normalizeEventType trims and lower-cases the type filter; "" means every type.
func normalizeEventType(f TimelineFilter) (models.EventType, error) {
	if isAll(f.Type) {
		return "", nil
	}
	t, err := models.ParseEventType(f.Type)
	if err != nil {
		v := models.ValidationError{}
		v.Add("type", "unknown event type")
		return "", &v
	}
	return t, nil
}

// Events returns the timeline of recordID, newest first.
func (s *TimelineService) Events(ctx context.Context, recordID string, f TimelineFilter) ([]models.TimelineEvent, error) {
	typ, err := normalizeEventType(f)
	if err != nil {
		return nil, err
	}
	events, err := s.repo.List(ctx, strings.TrimSpace(recordID))
	if err != nil {
		return nil, err
	}
	out := make([]models.TimelineEvent, 0, len(events))
	for _, ev := range events {
		if typ == "" || ev.Type == typ {
			out = append(out, ev)
		}
	}
	sortEventsDesc(out)
	return out, nil
}

// Record appends a manual update entry, e.g. "Warranty checked". Creation,
// status, comment and assignment events change the record as well and are
// only written by the matching MaintenanceService operation.
func (s *TimelineService) Record(ctx context.Context, recordID string, ev models.TimelineEvent) (models.TimelineEvent, error) {
	var v models.ValidationError
	typ := models.EventUpdate
	if raw := strings.TrimSpace(string(ev.Type)); raw != "" {
		parsed, err := models.ParseEventType(raw)
		switch {
		case err != nil:
			v.Add("type", "unknown event type")
		case parsed != models.EventUpdate:
			v.Add("type", "only update entries can be recorded directly")
		}
	}
	title := strings.TrimSpace(ev.Title)
	switch {
	case title == "":
		v.Add("title", "is required")
	case utf8.RuneCountInString(title) > MaxTitleLength:
		v.Add("title", fmt.Sprintf("must be at most %d characters", MaxTitleLength))
	}
	description := strings.TrimSpace(ev.Description)
	if utf8.RuneCountInString(description) > MaxCommentLength {
		v.Add("description", fmt.Sprintf("must be at most %d characters", MaxCommentLength))
	}
	if err := v.OrNil(); err != nil {
		return models.TimelineEvent{}, err
	}

	out := s.newEvent(typ, title, description, ev.User)
	recordID = strings.TrimSpace(recordID)
	if err := s.repo.Append(ctx, recordID, out); err != nil {
		return models.TimelineEvent{}, err
	}
	s.publish(ctx, recordID, out)
	return out, nil
}
