package board

import (
	"errors"

	"asset_maintenance/internal/models"
)

// ActivationDistance is the pointer travel in pixels that separates a click
// (open the detail view) from a drag.
const ActivationDistance = 5.0

// IsDrag reports whether a gesture with the given pointer travel is a drag.
func IsDrag(travel float64) bool {
	return travel >= ActivationDistance
}

// Drop outcomes that mean "nothing to confirm". Callers treat all three as a no-op.
var (
	ErrNoDropTarget  = errors.New("drop target is neither a column nor a ticket on the board")
	ErrSameColumn    = errors.New("ticket dropped into its current column")
	ErrUnknownRecord = errors.New("dragged ticket is not on the board")
)

// IsNoop reports whether err is one of the no-op drop outcomes.
func IsNoop(err error) bool {
	return errors.Is(err, ErrNoDropTarget) || errors.Is(err, ErrSameColumn) || errors.Is(err, ErrUnknownRecord)
}

// Proposal is a transition waiting for confirmation.
type Proposal struct {
	Record models.MaintenanceRecord `json:"record"`
	From   models.Status            `json:"from"`
	To     models.Status            `json:"to"`
}

// ResolveDrop computes the target status for a drag that ended over overID.
// overID may be a column id or the id of another ticket on the board, in
// which case the ticket's column is the target.
func ResolveDrop(records []models.MaintenanceRecord, activeID, overID string) (Proposal, error) {
	active, ok := findOnBoard(records, activeID)
	if !ok {
		return Proposal{}, ErrUnknownRecord
	}

	var target models.Status
	if col, ok := ColumnFor(overID); ok {
		target = col.ID
	} else if over, ok := findOnBoard(records, overID); ok {
		target = over.Status
	} else {
		return Proposal{}, ErrNoDropTarget
	}

	if target == active.Status {
		return Proposal{}, ErrSameColumn
	}
	return Proposal{Record: active, From: active.Status, To: target}, nil
}

func findOnBoard(records []models.MaintenanceRecord, id string) (models.MaintenanceRecord, bool) {
	if id == "" {
		return models.MaintenanceRecord{}, false
	}
	for _, r := range records {
		if r.ID == id && OnBoard(r.Status) {
			return r, true
		}
	}
	return models.MaintenanceRecord{}, false
}
