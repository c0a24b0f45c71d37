// Package memory keeps maintenance records in process memory. It backs the
// "memory" storage driver used for demos and the service tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"asset_maintenance/internal/models"
	"asset_maintenance/internal/repository"

	"github.com/google/uuid"
)

// Store holds records with their timelines and comments. Callers always
// receive copies.
type Store struct {
	mu      sync.RWMutex
	records map[string]models.MaintenanceRecord
	now     func() time.Time
}

var (
	_ repository.MaintenanceRepo = (*Store)(nil)
	_ repository.TimelineRepo    = Timeline{}
)

func New() *Store {
	return &Store{
		records: make(map[string]models.MaintenanceRecord),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// NewRepository wires a fresh Store and user list behind the repository interfaces.
func NewRepository() *repository.Repository {
	s := New()
	return &repository.Repository{Maintenance: s, Timeline: s.Timeline(), Auth: NewUsers()}
}

func (s *Store) eventDefaults(ev models.TimelineEvent) models.TimelineEvent {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = s.now()
	}
	ev.Timestamp = ev.Timestamp.UTC()
	return ev
}

func (s *Store) Create(_ context.Context, rec models.MaintenanceRecord) (models.MaintenanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec = rec.Clone()
	if rec.ID == "" {
		rec.ID = models.RecordID(len(s.records) + 1)
	}
	if _, exists := s.records[rec.ID]; exists {
		return models.MaintenanceRecord{}, fmt.Errorf("insert record %s: duplicate id", rec.ID)
	}
	if rec.Notes == nil {
		rec.Notes = []string{}
	}
	for i, ev := range rec.Timeline {
		rec.Timeline[i] = s.eventDefaults(ev)
	}
	for i, c := range rec.Comments {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if c.Timestamp.IsZero() {
			c.Timestamp = s.now()
		}
		rec.Comments[i] = c
	}
	s.records[rec.ID] = rec
	return rec.Clone(), nil
}

func (s *Store) Get(_ context.Context, id string) (models.MaintenanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getLocked(id)
}

func (s *Store) getLocked(id string) (models.MaintenanceRecord, error) {
	rec, ok := s.records[id]
	if !ok {
		return models.MaintenanceRecord{}, fmt.Errorf("record %s: %w", id, models.ErrNotFound)
	}
	out := rec.Clone()
	if out.Timeline == nil {
		out.Timeline = []models.TimelineEvent{}
	}
	if out.Comments == nil {
		out.Comments = []models.Comment{}
	}
	return out, nil
}

func matches(r models.MaintenanceRecord, q repository.RecordQuery) bool {
	if s := strings.ToLower(strings.TrimSpace(q.Search)); s != "" {
		if !strings.Contains(strings.ToLower(r.AssetTag), s) &&
			!strings.Contains(strings.ToLower(r.Issue), s) &&
			!strings.Contains(strings.ToLower(r.Technician), s) {
			return false
		}
	}
	if q.Status != "" && r.Status != q.Status {
		return false
	}
	if q.Category != "" && r.Category != q.Category {
		return false
	}
	if q.Priority != "" && r.Priority != q.Priority {
		return false
	}
	if q.AssetTag != "" && r.AssetTag != q.AssetTag {
		return false
	}
	return true
}

// List orders like the SQL store: created_at desc, then id desc.
func (s *Store) List(_ context.Context, q repository.RecordQuery) ([]models.MaintenanceRecord, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.MaintenanceRecord, 0, len(s.records))
	for _, r := range s.records {
		if !matches(r, q) {
			continue
		}
		c := r.Clone()
		c.Timeline, c.Comments = nil, nil
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	total := len(out)
	if q.Limit > 0 {
		start := min(q.Offset, total)
		end := min(start+q.Limit, total)
		out = out[start:end]
	}
	return out, total, nil
}

func (s *Store) Count(context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// Mutate runs fn under the write lock, so concurrent mutations of one record serialize.
func (s *Store) Mutate(_ context.Context, id string, fn repository.Mutation) (models.MaintenanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.records[id]
	if !ok {
		return models.MaintenanceRecord{}, fmt.Errorf("record %s: %w", id, models.ErrNotFound)
	}
	rec := stored.Clone()
	events, err := fn(&rec)
	if err != nil {
		return models.MaintenanceRecord{}, err
	}
	if len(events) == 0 {
		return s.getLocked(id)
	}

	rec.ID = id
	// fields the store owns
	rec.Timeline = stored.Clone().Timeline
	rec.Comments = stored.Clone().Comments
	rec.CreatedAt = stored.CreatedAt
	rec.ReportedBy = stored.ReportedBy
	rec.ReportedDate = stored.ReportedDate
	for _, ev := range events {
		rec.Timeline = append(rec.Timeline, s.eventDefaults(ev))
	}
	rec.UpdatedAt = rec.Timeline[len(rec.Timeline)-1].Timestamp
	s.records[id] = rec
	return s.getLocked(id)
}

func (s *Store) AddComment(_ context.Context, recordID string, c models.Comment, ev models.TimelineEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[recordID]
	if !ok {
		return fmt.Errorf("record %s: %w", recordID, models.ErrNotFound)
	}
	rec = rec.Clone()
	ev = s.eventDefaults(ev)
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Timestamp.IsZero() {
		c.Timestamp = ev.Timestamp
	}
	rec.Comments = append(rec.Comments, c)
	rec.Timeline = append(rec.Timeline, ev)
	rec.UpdatedAt = ev.Timestamp
	s.records[recordID] = rec
	return nil
}

// Timeline is the TimelineRepo view of a Store.
type Timeline struct {
	s *Store
}

func (s *Store) Timeline() Timeline { return Timeline{s: s} }

func (t Timeline) Append(_ context.Context, recordID string, ev models.TimelineEvent) error {
	s := t.s
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[recordID]
	if !ok {
		return fmt.Errorf("record %s: %w", recordID, models.ErrNotFound)
	}
	rec = rec.Clone()
	ev = s.eventDefaults(ev)
	rec.Timeline = append(rec.Timeline, ev)
	rec.UpdatedAt = ev.Timestamp
	s.records[recordID] = rec
	return nil
}

// List returns the events of recordID in insertion order.
func (t Timeline) List(_ context.Context, recordID string) ([]models.TimelineEvent, error) {
	s := t.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[recordID]
	if !ok {
		return nil, fmt.Errorf("record %s: %w", recordID, models.ErrNotFound)
	}
	return append([]models.TimelineEvent{}, rec.Timeline...), nil
}
