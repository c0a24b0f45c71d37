package service

import (
	"errors"

	"asset_maintenance/internal/board"
)

var (
	// ErrTransitionPending means the user must confirm or cancel the open
	// proposal before starting another move.
	ErrTransitionPending   = errors.New("another transition is awaiting confirmation")
	ErrNoPendingTransition = errors.New("no pending transition with this id")
	ErrCommitInFlight      = board.ErrCommitInFlight
)
