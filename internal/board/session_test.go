package board

import (
	"testing"

	"asset_maintenance/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_HappyPath(t *testing.T) {
	t.Parallel()

	var s Session
	records := sampleRecords()

	require.NoError(t, s.BeginDrag("MNT-001"))
	assert.Equal(t, Dragging, s.State())

	p, err := s.Drop(records, "in-progress")
	require.NoError(t, err)
	assert.Equal(t, PendingConfirmation, s.State())
	assert.Equal(t, models.StatusInProgress, p.To)

	// the record itself is untouched by the gesture
	assert.Equal(t, models.StatusPending, records[0].Status)

	got, ok := s.Pending()
	require.True(t, ok)
	assert.Equal(t, p, got)

	_, err = s.BeginCommit()
	require.NoError(t, err)
	assert.Equal(t, Committing, s.State())

	_, err = s.BeginCommit()
	assert.ErrorIs(t, err, ErrCommitInFlight)
	assert.ErrorIs(t, s.Cancel(), ErrCommitInFlight)

	require.NoError(t, s.Committed())
	assert.Equal(t, Idle, s.State())
	_, ok = s.Pending()
	assert.False(t, ok)
}

func TestSession_SameColumnDropReturnsToIdle(t *testing.T) {
	t.Parallel()

	var s Session
	require.NoError(t, s.BeginDrag("MNT-001"))
	_, err := s.Drop(sampleRecords(), "MNT-003")
	assert.ErrorIs(t, err, ErrSameColumn)
	assert.Equal(t, Idle, s.State())
	_, ok := s.Pending()
	assert.False(t, ok)
}

func TestSession_FailedCommitKeepsProposalOpen(t *testing.T) {
	t.Parallel()

	var s Session
	require.NoError(t, s.BeginDrag("MNT-002"))
	_, err := s.Drop(sampleRecords(), "completed")
	require.NoError(t, err)
	_, err = s.BeginCommit()
	require.NoError(t, err)

	require.NoError(t, s.CommitFailed())
	assert.Equal(t, PendingConfirmation, s.State())

	require.NoError(t, s.Cancel())
	assert.Equal(t, Idle, s.State())
}

func TestSession_RejectsOverlappingGestures(t *testing.T) {
	t.Parallel()

	var s Session
	require.NoError(t, s.BeginDrag("MNT-001"))
	assert.ErrorIs(t, s.BeginDrag("MNT-002"), ErrIllegalState)

	_, err := s.Drop(sampleRecords(), "scheduled")
	require.NoError(t, err)
	assert.ErrorIs(t, s.BeginDrag("MNT-002"), ErrIllegalState, "modal proposal blocks new drags")
}

func TestSession_IllegalEvents(t *testing.T) {
	t.Parallel()

	var s Session
	_, err := s.Drop(sampleRecords(), "pending")
	assert.ErrorIs(t, err, ErrIllegalState)
	_, err = s.BeginCommit()
	assert.ErrorIs(t, err, ErrIllegalState)
	assert.ErrorIs(t, s.Committed(), ErrIllegalState)
	assert.ErrorIs(t, s.CommitFailed(), ErrIllegalState)
	assert.ErrorIs(t, s.Cancel(), ErrIllegalState)

	require.NoError(t, s.BeginDrag("MNT-001"))
	s.AbortDrag()
	assert.Equal(t, Idle, s.State())
	assert.Equal(t, "pending_confirmation", PendingConfirmation.String())
}
