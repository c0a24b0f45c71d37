package board

import (
	"errors"
	"fmt"

	"asset_maintenance/internal/models"
)

// State of a drag Session.
type State int

const (
	Idle State = iota
	Dragging
	PendingConfirmation
	Committing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case PendingConfirmation:
		return "pending_confirmation"
	case Committing:
		return "committing"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	ErrIllegalState   = errors.New("illegal drag state transition")
	ErrCommitInFlight = errors.New("status update already in flight")
)

// Session is the gesture state machine for one user:
//
//	Idle -> Dragging -> Idle | PendingConfirmation
//	PendingConfirmation -> Committing | Idle (cancel)
//	Committing -> Idle (committed) | PendingConfirmation (failed)
//
// Only one gesture or proposal exists at a time. A Session is not safe for
// concurrent use.
type Session struct {
	state   State
	active  string
	pending Proposal
}

func (s *Session) State() State { return s.state }

// BeginDrag picks up a ticket.
func (s *Session) BeginDrag(recordID string) error {
	if s.state != Idle {
		return fmt.Errorf("%w: begin drag while %s", ErrIllegalState, s.state)
	}
	s.state = Dragging
	s.active = recordID
	return nil
}

// AbortDrag drops the ticket without a target, e.g. released outside the board.
func (s *Session) AbortDrag() {
	if s.state == Dragging {
		s.state = Idle
		s.active = ""
	}
}

// Drop ends the drag over overID. No-op outcomes return the resolver error
// and put the session back to Idle.
func (s *Session) Drop(records []models.MaintenanceRecord, overID string) (Proposal, error) {
	if s.state != Dragging {
		return Proposal{}, fmt.Errorf("%w: drop while %s", ErrIllegalState, s.state)
	}
	p, err := ResolveDrop(records, s.active, overID)
	s.active = ""
	if err != nil {
		s.state = Idle
		return Proposal{}, err
	}
	s.state = PendingConfirmation
	s.pending = p
	return p, nil
}

// Pending returns the proposal awaiting confirmation or in flight.
func (s *Session) Pending() (Proposal, bool) {
	if s.state != PendingConfirmation && s.state != Committing {
		return Proposal{}, false
	}
	return s.pending, true
}

// BeginCommit marks the proposal as submitted.
func (s *Session) BeginCommit() (Proposal, error) {
	switch s.state {
	case PendingConfirmation:
		s.state = Committing
		return s.pending, nil
	case Committing:
		return Proposal{}, ErrCommitInFlight
	default:
		return Proposal{}, fmt.Errorf("%w: confirm while %s", ErrIllegalState, s.state)
	}
}

// CommitFailed reopens the proposal so the user can retry or cancel.
func (s *Session) CommitFailed() error {
	if s.state != Committing {
		return fmt.Errorf("%w: commit failed while %s", ErrIllegalState, s.state)
	}
	s.state = PendingConfirmation
	return nil
}

// Committed closes the proposal after the store confirmed the change.
func (s *Session) Committed() error {
	if s.state != Committing {
		return fmt.Errorf("%w: committed while %s", ErrIllegalState, s.state)
	}
	s.state = Idle
	s.pending = Proposal{}
	return nil
}

// Cancel discards the proposal. An in-flight commit cannot be cancelled.
func (s *Session) Cancel() error {
	switch s.state {
	case PendingConfirmation:
		s.state = Idle
		s.pending = Proposal{}
		return nil
	case Committing:
		return ErrCommitInFlight
	default:
		return fmt.Errorf("%w: cancel while %s", ErrIllegalState, s.state)
	}
}
