package service

import (
	"context"
	"strings"
	"testing"

	"asset_maintenance/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeline_EventsNewestFirstWithTypeFilter(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	rec := f.mustCreate(t, "LAP-0042", "Screen flickers")

	_, err := f.svc.Maintenance.AddComment(ctx, rec.ID, CommentParams{Content: "first"}, "bob")
	require.NoError(t, err)
	_, err = f.svc.Maintenance.UpdateStatus(ctx, rec.ID, models.StatusScheduled, "", "bob")
	require.NoError(t, err)
	_, err = f.svc.Maintenance.AddComment(ctx, rec.ID, CommentParams{Content: "second"}, "bob")
	require.NoError(t, err)

	all, err := f.svc.Timeline.Events(ctx, rec.ID, TimelineFilter{Type: "all"})
	require.NoError(t, err)
	require.Len(t, all, 4)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].Timestamp.After(all[i-1].Timestamp), "event %d is newer than its predecessor", i)
	}
	assert.Equal(t, models.EventCreation, all[3].Type)

	comments, err := f.svc.Timeline.Events(ctx, rec.ID, TimelineFilter{Type: " COMMENT "})
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "second", comments[0].Description)
	assert.Equal(t, "first", comments[1].Description)

	_, err = f.svc.Timeline.Events(ctx, rec.ID, TimelineFilter{Type: "deleted"})
	assert.Contains(t, fieldErrors(t, err), "type")

	_, err = f.svc.Timeline.Events(ctx, "MNT-404", TimelineFilter{})
	assert.True(t, IsNotFound(err))
}

func TestTimeline_EqualTimestampsKeepInsertionOrder(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.clock.step = 0
	ctx := context.Background()
	rec := f.mustCreate(t, "LAP-0042", "Screen flickers")

	for _, body := range []string{"a", "b", "c"} {
		_, err := f.svc.Maintenance.AddComment(ctx, rec.ID, CommentParams{Content: body}, "bob")
		require.NoError(t, err)
	}

	events, err := f.svc.Timeline.Events(ctx, rec.ID, TimelineFilter{})
	require.NoError(t, err)
	got := make([]string, 0, len(events))
	for _, ev := range events {
		got = append(got, ev.Description)
	}
	assert.Equal(t, []string{"Ticket created by alice", "a", "b", "c"}, got)
}

func TestTimeline_RecordAppendsUpdateEntries(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	rec := f.mustCreate(t, "LAP-0042", "Screen flickers")

	ev, err := f.svc.Timeline.Record(ctx, rec.ID, models.TimelineEvent{
		Title:       " Warranty checked ",
		Description: "Covered until 2026",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, models.EventUpdate, ev.Type, "type defaults to update")
	assert.Equal(t, "Warranty checked", ev.Title)
	assert.Equal(t, "System", ev.User)
	assert.False(t, ev.Timestamp.IsZero())
	assert.Equal(t, 2, f.pub.count())

	_, err = f.svc.Timeline.Record(ctx, rec.ID, models.TimelineEvent{Type: " UPDATE ", Title: "Vendor called back", User: "bob"})
	require.NoError(t, err)

	got, err := f.svc.Maintenance.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.Len(t, got.Timeline, 3)
	assert.Equal(t, "Vendor called back", got.Timeline[0].Title)
	assert.Equal(t, models.StatusPending, got.Status)

	_, err = f.svc.Timeline.Record(ctx, "MNT-404", models.TimelineEvent{Title: "x"})
	assert.True(t, IsNotFound(err))
}

func TestTimeline_RecordRejectsEventsOwnedByOtherOperations(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	rec := f.mustCreate(t, "LAP-0042", "Screen flickers")

	for _, typ := range []models.EventType{models.EventCreation, models.EventStatusChange, models.EventComment, models.EventAssignment} {
		_, err := f.svc.Timeline.Record(ctx, rec.ID, models.TimelineEvent{Type: typ, Title: "Forged"})
		assert.Contains(t, fieldErrors(t, err), "type", "type %s", typ)
	}

	_, err := f.svc.Timeline.Record(ctx, rec.ID, models.TimelineEvent{Type: "note"})
	fields := fieldErrors(t, err)
	assert.Contains(t, fields, "type")
	assert.Contains(t, fields, "title")

	_, err = f.svc.Timeline.Record(ctx, rec.ID, models.TimelineEvent{Title: "x", Description: strings.Repeat("d", MaxCommentLength+1)})
	assert.Contains(t, fieldErrors(t, err), "description")

	got, err := f.svc.Maintenance.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.Len(t, got.Timeline, 1, "rejected entries are not stored")
	assert.Equal(t, models.EventCreation, got.Timeline[0].Type)
	assert.Equal(t, 1, f.pub.count())
}

func TestTimeline_MutationEventsComeFromRecorder(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	rec := f.mustCreate(t, "LAP-0042", "Screen flickers")

	got, err := f.svc.Maintenance.UpdateStatus(ctx, rec.ID, models.StatusScheduled, "", "")
	require.NoError(t, err)

	ev := got.Timeline[0]
	assert.Equal(t, models.EventStatusChange, ev.Type)
	assert.Equal(t, "System", ev.User)
	require.Equal(t, 2, f.pub.count())
	assert.Equal(t, ev.ID, f.pub.events[1].ID, "the stored event is the one published")
	assert.Equal(t, ev.Timestamp, f.pub.events[1].Timestamp)
}
