package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"asset_maintenance/internal/board"
	"asset_maintenance/internal/logger"
	"asset_maintenance/internal/models"
	"asset_maintenance/internal/repository"

	"github.com/google/uuid"
)

// DropAction tells the client what to do after a drag ends.
type DropAction string

const (
	ActionOpenDetail DropAction = "open_detail" // travel below the activation distance: a click
	ActionNoop       DropAction = "noop"
	ActionConfirm    DropAction = "confirm"
)

// DropParams describes a finished pointer gesture on the board.
type DropParams struct {
	RecordID string
	OverID   string
	Travel   float64
}

type DropOutcome struct {
	Action   DropAction `json:"action"`
	RecordID string     `json:"recordId"`
	Reason   string     `json:"reason,omitempty"`
	Pending  *Pending   `json:"pending,omitempty"`
}

// Pending is a proposed status change waiting for the user to confirm it.
type Pending struct {
	ID          string        `json:"id"`
	RecordID    string        `json:"recordId"`
	AssetTag    string        `json:"assetTag"`
	Issue       string        `json:"issue"`
	From        models.Status `json:"from"`
	To          models.Status `json:"to"`
	TargetLabel string        `json:"targetLabel"`
	Committing  bool          `json:"committing"`
	CreatedAt   time.Time     `json:"createdAt"`
	ExpiresAt   time.Time     `json:"expiresAt"`
}

type userSession struct {
	session board.Session
	pending Pending
}

// TransitionService holds one drag session per user.
type TransitionService struct {
	repo   repository.MaintenanceRepo
	status statusUpdater
	ttl    time.Duration
	now    func() time.Time
	log    *logger.Logger

	mu       sync.Mutex
	sessions map[string]*userSession
}

type statusUpdater interface {
	UpdateStatus(ctx context.Context, id string, status models.Status, reason, user string) (models.MaintenanceRecord, error)
}

func NewTransitionService(repo repository.MaintenanceRepo, status statusUpdater, ttl time.Duration, now func() time.Time, log *logger.Logger) *TransitionService {
	return &TransitionService{
		repo:     repo,
		status:   status,
		ttl:      ttl,
		now:      now,
		log:      log,
		sessions: make(map[string]*userSession),
	}
}

// hasOpen reports whether user has a proposal pending or in flight. Callers hold mu.
func (s *TransitionService) hasOpen(user string) bool {
	us, ok := s.sessions[user]
	return ok && us.session.State() != board.Idle
}

// Propose resolves a drag that ended over overID. Short gestures open the
// ticket detail, drops that change nothing are a no-op, anything else opens
// a pending transition.
func (s *TransitionService) Propose(ctx context.Context, user string, p DropParams) (DropOutcome, error) {
	recordID := strings.TrimSpace(p.RecordID)

	s.mu.Lock()
	open := s.hasOpen(user)
	s.mu.Unlock()
	if open {
		return DropOutcome{}, ErrTransitionPending
	}

	if !board.IsDrag(p.Travel) {
		return DropOutcome{Action: ActionOpenDetail, RecordID: recordID}, nil
	}

	records, _, err := s.repo.List(ctx, repository.RecordQuery{})
	if err != nil {
		return DropOutcome{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	us, ok := s.sessions[user]
	if !ok {
		us = &userSession{}
	}
	if err := us.session.BeginDrag(recordID); err != nil {
		return DropOutcome{}, ErrTransitionPending
	}
	overID := strings.TrimSpace(p.OverID)
	if overID == "" {
		// released outside the board
		us.session.AbortDrag()
		return DropOutcome{Action: ActionNoop, RecordID: recordID, Reason: board.ErrNoDropTarget.Error()}, nil
	}
	prop, err := us.session.Drop(records, overID)
	if err != nil {
		if board.IsNoop(err) {
			return DropOutcome{Action: ActionNoop, RecordID: recordID, Reason: err.Error()}, nil
		}
		return DropOutcome{}, err
	}

	now := s.now().UTC()
	us.pending = Pending{
		ID:          uuid.NewString(),
		RecordID:    prop.Record.ID,
		AssetTag:    prop.Record.AssetTag,
		Issue:       prop.Record.Issue,
		From:        prop.From,
		To:          prop.To,
		TargetLabel: prop.To.Label(),
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.ttl),
	}
	s.sessions[user] = us

	pending := us.pending
	return DropOutcome{Action: ActionConfirm, RecordID: recordID, Pending: &pending}, nil
}

// lookup returns the session owning pendingID. Callers hold mu.
func (s *TransitionService) lookup(user, pendingID string) (*userSession, error) {
	us, ok := s.sessions[user]
	if !ok || us.session.State() == board.Idle || us.pending.ID != pendingID {
		return nil, ErrNoPendingTransition
	}
	return us, nil
}

// Confirm commits the pending transition. On failure the transition stays
// open so the user can retry or cancel; nothing is applied.
func (s *TransitionService) Confirm(ctx context.Context, user, pendingID, reason string) (models.MaintenanceRecord, error) {
	s.mu.Lock()
	us, err := s.lookup(user, pendingID)
	if err != nil {
		s.mu.Unlock()
		return models.MaintenanceRecord{}, err
	}
	prop, err := us.session.BeginCommit()
	if err != nil {
		s.mu.Unlock()
		return models.MaintenanceRecord{}, err
	}
	us.pending.Committing = true
	s.mu.Unlock()

	rec, updateErr := s.status.UpdateStatus(ctx, prop.Record.ID, prop.To, reason, user)

	s.mu.Lock()
	defer s.mu.Unlock()
	us.pending.Committing = false
	if updateErr != nil {
		if err := us.session.CommitFailed(); err != nil {
			return models.MaintenanceRecord{}, errors.Join(updateErr, err)
		}
		us.pending.ExpiresAt = s.now().UTC().Add(s.ttl)
		return models.MaintenanceRecord{}, updateErr
	}
	if err := us.session.Committed(); err != nil {
		return models.MaintenanceRecord{}, err
	}
	delete(s.sessions, user)
	return rec, nil
}

// Cancel discards the pending transition without touching the record.
func (s *TransitionService) Cancel(user, pendingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	us, err := s.lookup(user, pendingID)
	if err != nil {
		return err
	}
	if err := us.session.Cancel(); err != nil {
		return err
	}
	delete(s.sessions, user)
	return nil
}

func (s *TransitionService) Current(user string) (Pending, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasOpen(user) {
		return Pending{}, false
	}
	return s.sessions[user].pending, true
}

// Run ticks at the given interval until ctx is canceled, discarding
// proposals whose dialog was abandoned.
func (s *TransitionService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			for user, p := range s.sweep(s.now().UTC()) {
				s.log.Infow("transition_expired",
					"user", user,
					"pending_id", p.ID,
					"record_id", p.RecordID,
					"to", p.To,
				)
			}
		}
	}
}

// sweep drops expired proposals. Commits in flight are left alone.
func (s *TransitionService) sweep(now time.Time) map[string]Pending {
	s.mu.Lock()
	defer s.mu.Unlock()

	expired := make(map[string]Pending)
	for user, us := range s.sessions {
		if us.session.State() != board.PendingConfirmation || now.Before(us.pending.ExpiresAt) {
			continue
		}
		if err := us.session.Cancel(); err != nil {
			continue
		}
		expired[user] = us.pending
		delete(s.sessions, user)
	}
	return expired
}
