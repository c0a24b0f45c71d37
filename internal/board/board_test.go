package board

import (
	"testing"

	"asset_maintenance/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id string, st models.Status) models.MaintenanceRecord {
	return models.MaintenanceRecord{ID: id, AssetTag: "TAG-" + id, Status: st, Priority: models.PriorityMedium}
}

func sampleRecords() []models.MaintenanceRecord {
	return []models.MaintenanceRecord{
		rec("MNT-001", models.StatusPending),
		rec("MNT-002", models.StatusInProgress),
		rec("MNT-003", models.StatusPending),
		rec("MNT-004", models.StatusCancelled),
		rec("MNT-005", models.StatusCompleted),
		rec("MNT-006", models.StatusScheduled),
		rec("MNT-007", models.StatusPending),
	}
}

func TestProject_EveryBoardRecordInExactlyOneColumn(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	snap := Project(records)

	require.Len(t, snap.Columns, 4)
	assert.Equal(t, len(records), snap.Total)
	assert.Equal(t, 1, snap.Hidden, "cancelled has no column")

	seen := map[string]int{}
	for _, col := range snap.Columns {
		want := 0
		for _, r := range records {
			if r.Status == col.ID {
				want++
			}
		}
		assert.Equal(t, want, col.Count, "count of %s", col.ID)
		assert.Len(t, col.Records, col.Count)
		for _, r := range col.Records {
			assert.Equal(t, col.ID, r.Status)
			seen[r.ID]++
		}
	}
	for _, r := range records {
		if OnBoard(r.Status) {
			assert.Equal(t, 1, seen[r.ID], "record %s", r.ID)
		} else {
			assert.Zero(t, seen[r.ID])
		}
	}
}

func TestProject_PreservesRelativeOrder(t *testing.T) {
	t.Parallel()

	snap := Project(sampleRecords())
	pending, ok := snap.Column(models.StatusPending)
	require.True(t, ok)

	ids := make([]string, 0, len(pending.Records))
	for _, r := range pending.Records {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"MNT-001", "MNT-003", "MNT-007"}, ids)
}

func TestProject_EmptyInputHasEmptyColumns(t *testing.T) {
	t.Parallel()

	snap := Project(nil)
	require.Len(t, snap.Columns, len(Columns))
	for i, col := range snap.Columns {
		assert.Equal(t, Columns[i].Title, col.Title)
		assert.NotNil(t, col.Records)
		assert.Zero(t, col.Count)
	}
}

func TestResolveDrop(t *testing.T) {
	t.Parallel()

	records := sampleRecords()
	cases := []struct {
		name    string
		active  string
		over    string
		wantTo  models.Status
		wantErr error
	}{
		{name: "drop on column", active: "MNT-001", over: "in-progress", wantTo: models.StatusInProgress},
		{name: "drop on card retargets to its column", active: "MNT-001", over: "MNT-005", wantTo: models.StatusCompleted},
		{name: "drop on same column", active: "MNT-001", over: "pending", wantErr: ErrSameColumn},
		{name: "drop on card in same column", active: "MNT-001", over: "MNT-003", wantErr: ErrSameColumn},
		{name: "drop on itself", active: "MNT-002", over: "MNT-002", wantErr: ErrSameColumn},
		{name: "drop outside", active: "MNT-001", over: "", wantErr: ErrNoDropTarget},
		{name: "unknown target", active: "MNT-001", over: "nowhere", wantErr: ErrNoDropTarget},
		{name: "cancelled card is not a target", active: "MNT-001", over: "MNT-004", wantErr: ErrNoDropTarget},
		{name: "cancelled column does not exist", active: "MNT-001", over: "cancelled", wantErr: ErrNoDropTarget},
		{name: "unknown dragged ticket", active: "MNT-999", over: "pending", wantErr: ErrUnknownRecord},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p, err := ResolveDrop(records, tc.active, tc.over)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.True(t, IsNoop(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.active, p.Record.ID)
			assert.Equal(t, tc.wantTo, p.To)
			assert.NotEqual(t, p.From, p.To)
		})
	}
}

func TestIsDrag(t *testing.T) {
	t.Parallel()

	assert.False(t, IsDrag(0))
	assert.False(t, IsDrag(4.9))
	assert.True(t, IsDrag(5))
	assert.True(t, IsDrag(120))
}

func TestPresentationCoversEveryEnumValueInOrder(t *testing.T) {
	t.Parallel()

	for i, s := range models.AllStatuses {
		assert.Equal(t, s, statusStyles[i].status)
		assert.NotEmpty(t, StatusStyle(s).Label)
	}
	for i, p := range models.AllPriorities {
		assert.Equal(t, p, priorityStyles[i].priority)
		assert.NotEmpty(t, PriorityStyle(p).Label)
	}
	for i, e := range models.AllEventTypes {
		assert.Equal(t, e, eventStyles[i].event)
		assert.NotEmpty(t, EventStyle(e).Icon)
	}

	legend := NewLegend()
	assert.Len(t, legend.Statuses, len(models.AllStatuses))
	assert.Len(t, legend.Priorities, len(models.AllPriorities))
	assert.Len(t, legend.Events, len(models.AllEventTypes))
	for _, p := range models.AllPriorities {
		assert.Equal(t, PriorityStyle(p), legend.Priorities[p])
	}
	for _, e := range models.AllEventTypes {
		assert.Equal(t, EventStyle(e), legend.Events[e])
	}
	assert.Equal(t, "In Progress", StatusStyle(models.StatusInProgress).Label)
	assert.Equal(t, "muted", StatusStyle("bogus").Color)
	assert.Equal(t, "red", PriorityStyle(models.PriorityCritical).Color)
	assert.Equal(t, "message-circle", EventStyle(models.EventComment).Icon)
	assert.Equal(t, "bogus", EventStyle("bogus").Label)
}
