package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"asset_maintenance/internal/board"
	"asset_maintenance/internal/models"
	"asset_maintenance/internal/service"
)

func newBoardRouter(b *mockBoard, tr *mockTransition) http.Handler {
	s := &service.Service{
		Authorization: &mockAuth{parseID: models.Identity{ID: 3, Username: "bob"}},
		Board:         b,
		Transition:    tr,
	}
	return newTestRouter(s)
}

func TestBoardHandlers_SnapshotAndLegend(t *testing.T) {
	b := &mockBoard{snap: board.Project([]models.MaintenanceRecord{{ID: "MNT-001", Status: models.StatusScheduled}})}
	r := newBoardRouter(b, &mockTransition{})

	w := doJSON(t, r, http.MethodGet, "/api/v1/board?search=lap", "")
	if w.Code != http.StatusOK {
		t.Fatalf("board status=%d, body=%s", w.Code, w.Body.String())
	}
	if b.lastSearch != "lap" {
		t.Fatalf("search not forwarded: %q", b.lastSearch)
	}
	var snap board.Snapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	col, ok := snap.Column(models.StatusScheduled)
	if !ok || col.Count != 1 || col.Title != "Scheduled" {
		t.Fatalf("unexpected scheduled column: %+v", col)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/board/legend", "")
	if w.Code != http.StatusOK {
		t.Fatalf("legend status=%d", w.Code)
	}
	var legend board.Legend
	_ = json.Unmarshal(w.Body.Bytes(), &legend)
	if legend.Statuses[models.StatusInProgress].Label != "In Progress" {
		t.Fatalf("unexpected legend: %+v", legend.Statuses)
	}
}

func TestBoardHandlers_Drop(t *testing.T) {
	tr := &mockTransition{outcome: service.DropOutcome{
		Action:   service.ActionConfirm,
		RecordID: "MNT-001",
		Pending:  &service.Pending{ID: "p-1", RecordID: "MNT-001", From: models.StatusPending, To: models.StatusInProgress, TargetLabel: "IN PROGRESS"},
	}}
	r := newBoardRouter(&mockBoard{}, tr)

	w := doJSON(t, r, http.MethodPost, "/api/v1/board/drop", `{"recordId":"MNT-001","overId":"in-progress","travel":42}`)
	if w.Code != http.StatusOK {
		t.Fatalf("drop status=%d, body=%s", w.Code, w.Body.String())
	}
	if tr.lastUser != "bob" || tr.lastDrop != (service.DropParams{RecordID: "MNT-001", OverID: "in-progress", Travel: 42}) {
		t.Fatalf("unexpected propose call: %q %+v", tr.lastUser, tr.lastDrop)
	}
	var out service.DropOutcome
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Action != service.ActionConfirm || out.Pending == nil || out.Pending.TargetLabel != "IN PROGRESS" {
		t.Fatalf("unexpected outcome: %+v", out)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/board/drop", `{"overId":"completed"}`)
	if w.Code != http.StatusBadRequest || decodeError(t, w).Fields["recordId"] == "" {
		t.Fatalf("expected recordId field error, got %d %s", w.Code, w.Body.String())
	}

	tr.err = service.ErrTransitionPending
	w = doJSON(t, r, http.MethodPost, "/api/v1/board/drop", `{"recordId":"MNT-002","overId":"completed","travel":10}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 while a transition is pending, got %d", w.Code)
	}
}

func TestBoardHandlers_TransitionLifecycle(t *testing.T) {
	tr := &mockTransition{
		hasOpen: true,
		pending: service.Pending{ID: "p-1", RecordID: "MNT-001", To: models.StatusCompleted},
		record:  models.MaintenanceRecord{ID: "MNT-001", Status: models.StatusCompleted},
	}
	r := newBoardRouter(&mockBoard{}, tr)

	w := doJSON(t, r, http.MethodGet, "/api/v1/board/transition", "")
	if w.Code != http.StatusOK {
		t.Fatalf("current status=%d", w.Code)
	}
	var p service.Pending
	_ = json.Unmarshal(w.Body.Bytes(), &p)
	if p.ID != "p-1" {
		t.Fatalf("unexpected pending: %+v", p)
	}

	// confirm without a body: reason is optional
	w = doJSON(t, r, http.MethodPost, "/api/v1/board/transition/p-1/confirm", "")
	if w.Code != http.StatusOK {
		t.Fatalf("confirm status=%d, body=%s", w.Code, w.Body.String())
	}
	if tr.lastID != "p-1" || tr.lastReason != "" || tr.lastUser != "bob" {
		t.Fatalf("unexpected confirm call: %q %q %q", tr.lastID, tr.lastReason, tr.lastUser)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/board/transition/p-1/confirm", `{"reason":"fixed on site"}`)
	if w.Code != http.StatusOK || tr.lastReason != "fixed on site" {
		t.Fatalf("confirm with reason status=%d reason=%q", w.Code, tr.lastReason)
	}

	tr.err = service.ErrCommitInFlight
	w = doJSON(t, r, http.MethodPost, "/api/v1/board/transition/p-1/confirm", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for in-flight commit, got %d", w.Code)
	}

	tr.err = errors.New("database is locked")
	w = doJSON(t, r, http.MethodPost, "/api/v1/board/transition/p-1/confirm", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for failed commit, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/v1/board/transition/p-1", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("cancel status=%d", w.Code)
	}

	tr.cancelErr = service.ErrNoPendingTransition
	w = doJSON(t, r, http.MethodDelete, "/api/v1/board/transition/p-9", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown transition, got %d", w.Code)
	}

	tr.hasOpen = false
	w = doJSON(t, r, http.MethodGet, "/api/v1/board/transition", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without pending transition, got %d", w.Code)
	}
}
