package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"asset_maintenance/internal/models"
	"asset_maintenance/internal/repository/db"

	"github.com/google/uuid"
)

type TimelineSQL struct {
	db      *sql.DB
	dialect db.Dialect
}

func NewTimelineSQL(conn *sql.DB, d db.Dialect) *TimelineSQL {
	return &TimelineSQL{db: conn, dialect: d}
}

var _ TimelineRepo = (*TimelineSQL)(nil)

const (
	insertEventSQL = `INSERT INTO maintenance_timeline_events (id, record_id, type, title, description, user_name, occurred_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	selectEventsSQL = `SELECT id, type, title, description, user_name, occurred_at
		FROM maintenance_timeline_events WHERE record_id = ? ORDER BY seq ASC`
	recordExistsSQL = `SELECT 1 FROM maintenance_records WHERE id = ?`
	touchRecordSQL  = `UPDATE maintenance_records SET updated_at = ? WHERE id = ?`
)

// Append inserts one event. Empty ID and zero Timestamp are filled in.
func (t *TimelineSQL) Append(ctx context.Context, recordID string, ev models.TimelineEvent) error {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin append event: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := ensureRecord(ctx, tx, t.dialect, recordID); err != nil {
		return err
	}
	ev = withEventDefaults(ev)
	if err := insertEvent(ctx, tx, t.dialect, recordID, ev); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, t.dialect.Rebind(touchRecordSQL), ev.Timestamp, recordID); err != nil {
		return fmt.Errorf("touch record %s: %w", recordID, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit append event: %w", err)
	}
	return nil
}

// List returns the events of recordID in insertion order.
func (t *TimelineSQL) List(ctx context.Context, recordID string) ([]models.TimelineEvent, error) {
	events, err := listEvents(ctx, t.db, t.dialect, recordID)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		// every stored record has a creation event; tell "none yet" from "no such record"
		if err := ensureRecord(ctx, t.db, t.dialect, recordID); err != nil {
			return nil, err
		}
	}
	return events, nil
}

func withEventDefaults(ev models.TimelineEvent) models.TimelineEvent {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now().UTC()
	} else {
		ev.Timestamp = ev.Timestamp.UTC()
	}
	return ev
}

func ensureRecord(ctx context.Context, q queryer, d db.Dialect, recordID string) error {
	var one int
	err := q.QueryRowContext(ctx, d.Rebind(recordExistsSQL), recordID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("record %s: %w", recordID, models.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("check record %s: %w", recordID, err)
	}
	return nil
}

func insertEvent(ctx context.Context, ex execer, d db.Dialect, recordID string, ev models.TimelineEvent) error {
	_, err := ex.ExecContext(ctx, d.Rebind(insertEventSQL),
		ev.ID,
		recordID,
		string(ev.Type),
		ev.Title,
		ev.Description,
		ev.User,
		ev.Timestamp.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert %s event for %s: %w", ev.Type, recordID, err)
	}
	return nil
}

func listEvents(ctx context.Context, q queryer, d db.Dialect, recordID string) ([]models.TimelineEvent, error) {
	rows, err := q.QueryContext(ctx, d.Rebind(selectEventsSQL), recordID)
	if err != nil {
		return nil, fmt.Errorf("select events for %s: %w", recordID, err)
	}
	defer rows.Close()

	out := make([]models.TimelineEvent, 0, 8)
	for rows.Next() {
		var (
			ev  models.TimelineEvent
			typ string
		)
		if err := rows.Scan(&ev.ID, &typ, &ev.Title, &ev.Description, &ev.User, &ev.Timestamp); err != nil {
			return nil, fmt.Errorf("scan event for %s: %w", recordID, err)
		}
		ev.Type = models.EventType(typ)
		ev.Timestamp = ev.Timestamp.UTC()
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events for %s: %w", recordID, err)
	}
	return out, nil
}
