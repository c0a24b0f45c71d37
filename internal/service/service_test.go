package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"asset_maintenance/internal/logger"
	"asset_maintenance/internal/models"
	"asset_maintenance/internal/repository"
	"asset_maintenance/internal/repository/memory"

	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// stepClock returns a time that moves forward by step on every call.
type stepClock struct {
	mu   sync.Mutex
	t    time.Time
	step time.Duration
}

func newStepClock(step time.Duration) *stepClock {
	return &stepClock{t: testStart, step: step}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.t
	c.t = c.t.Add(c.step)
	return t
}

func (c *stepClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.TimelineEvent
	ids    []string
}

func (p *recordingPublisher) Publish(_ context.Context, recordID string, ev models.TimelineEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ids = append(p.ids, recordID)
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) Close() {}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

type fixture struct {
	svc   *Service
	repos *repository.Repository
	clock *stepClock
	pub   *recordingPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		repos: memory.NewRepository(),
		clock: newStepClock(time.Second),
		pub:   &recordingPublisher{},
	}
	f.svc = NewService(f.repos, Deps{
		Publisher:  f.pub,
		Logger:     logger.Nop(),
		SigningKey: testSigningKey,
		TokenTTL:   time.Hour,
		PendingTTL: 10 * time.Minute,
		Now:        f.clock.Now,
	})
	return f
}

func validCreate(tag, issue string) CreateParams {
	return CreateParams{
		AssetTag:      tag,
		AssetCategory: "Laptop",
		Issue:         issue,
		Description:   issue + " reported at the front desk",
		Category:      "hardware",
		Priority:      "medium",
	}
}

// mustCreate opens a ticket as alice.
func (f *fixture) mustCreate(t *testing.T, tag, issue string) models.MaintenanceRecord {
	t.Helper()
	rec, err := f.svc.Maintenance.Create(context.Background(), validCreate(tag, issue), "alice")
	require.NoError(t, err)
	return rec
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Fields
}
