package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"asset_maintenance/internal/models"
	"asset_maintenance/internal/repository/db"

	"github.com/google/uuid"
)

type MaintenanceSQL struct {
	db      *sql.DB
	dialect db.Dialect
}

func NewMaintenanceSQL(conn *sql.DB, d db.Dialect) *MaintenanceSQL {
	return &MaintenanceSQL{db: conn, dialect: d}
}

var _ MaintenanceRepo = (*MaintenanceSQL)(nil)

const recordColumns = `id, asset_tag, asset_category, asset_make, asset_model, issue, description,
		category, status, priority, technician, reported_by, reported_date, scheduled_date,
		completed_date, estimated_cost, actual_cost, notes, created_at, updated_at`

const (
	insertRecordSQL = `INSERT INTO maintenance_records (` + recordColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	selectRecordSQL  = `SELECT ` + recordColumns + ` FROM maintenance_records WHERE id = ?`
	selectRecordsSQL = `SELECT ` + recordColumns + ` FROM maintenance_records`
	countRecordsSQL  = `SELECT COUNT(*) FROM maintenance_records`
	updateRecordSQL  = `UPDATE maintenance_records SET
		asset_tag = ?, asset_category = ?, asset_make = ?, asset_model = ?, issue = ?, description = ?,
		category = ?, status = ?, priority = ?, technician = ?, scheduled_date = ?, completed_date = ?,
		estimated_cost = ?, actual_cost = ?, notes = ?, updated_at = ?
		WHERE id = ?`
	listOrderSQL = ` ORDER BY created_at DESC, id DESC`

	insertCommentSQL = `INSERT INTO maintenance_comments (id, record_id, author, content, is_internal, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	selectCommentsSQL = `SELECT id, author, content, is_internal, created_at
		FROM maintenance_comments WHERE record_id = ? ORDER BY seq ASC`
)

func recordArgs(r models.MaintenanceRecord) []any {
	return []any{
		r.ID, r.AssetTag, r.AssetCategory, r.AssetMake, r.AssetModel, r.Issue, r.Description,
		string(r.Category), string(r.Status), string(r.Priority), r.Technician, r.ReportedBy,
		r.ReportedDate, r.ScheduledDate, r.CompletedDate, nullFloat(r.EstimatedCost), nullFloat(r.ActualCost),
		encodeNotes(r.Notes), r.CreatedAt.UTC(), r.UpdatedAt.UTC(),
	}
}

func scanRecord(s rowScanner) (models.MaintenanceRecord, error) {
	var (
		r                          models.MaintenanceRecord
		category, status, priority string
		estimated, actual          sql.NullFloat64
		notes                      string
	)
	err := s.Scan(
		&r.ID, &r.AssetTag, &r.AssetCategory, &r.AssetMake, &r.AssetModel, &r.Issue, &r.Description,
		&category, &status, &priority, &r.Technician, &r.ReportedBy,
		&r.ReportedDate, &r.ScheduledDate, &r.CompletedDate, &estimated, &actual,
		&notes, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return models.MaintenanceRecord{}, err
	}
	r.Category = models.Category(category)
	r.Status = models.Status(status)
	r.Priority = models.Priority(priority)
	r.EstimatedCost = floatPtr(estimated)
	r.ActualCost = floatPtr(actual)
	r.CreatedAt = r.CreatedAt.UTC()
	r.UpdatedAt = r.UpdatedAt.UTC()
	if r.Notes, err = decodeNotes(notes); err != nil {
		return models.MaintenanceRecord{}, fmt.Errorf("decode notes of %s: %w", r.ID, err)
	}
	return r, nil
}

// Create inserts rec, its timeline and its comments in one transaction.
func (m *MaintenanceSQL) Create(ctx context.Context, rec models.MaintenanceRecord) (models.MaintenanceRecord, error) {
	rec = rec.Clone()
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return models.MaintenanceRecord{}, fmt.Errorf("begin create record: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if rec.ID == "" {
		var n int
		if err := tx.QueryRowContext(ctx, countRecordsSQL).Scan(&n); err != nil {
			return models.MaintenanceRecord{}, fmt.Errorf("count records: %w", err)
		}
		rec.ID = models.RecordID(n + 1)
	}

	if _, err := tx.ExecContext(ctx, m.dialect.Rebind(insertRecordSQL), recordArgs(rec)...); err != nil {
		return models.MaintenanceRecord{}, fmt.Errorf("insert record %s: %w", rec.ID, err)
	}
	for i, ev := range rec.Timeline {
		ev = withEventDefaults(ev)
		if err := insertEvent(ctx, tx, m.dialect, rec.ID, ev); err != nil {
			return models.MaintenanceRecord{}, err
		}
		rec.Timeline[i] = ev
	}
	for i, c := range rec.Comments {
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if err := insertComment(ctx, tx, m.dialect, rec.ID, c); err != nil {
			return models.MaintenanceRecord{}, err
		}
		rec.Comments[i] = c
	}

	if err := tx.Commit(); err != nil {
		return models.MaintenanceRecord{}, fmt.Errorf("commit create record %s: %w", rec.ID, err)
	}
	return rec, nil
}

func (m *MaintenanceSQL) Get(ctx context.Context, id string) (models.MaintenanceRecord, error) {
	rec, err := scanRecord(m.db.QueryRowContext(ctx, m.dialect.Rebind(selectRecordSQL), id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.MaintenanceRecord{}, fmt.Errorf("record %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return models.MaintenanceRecord{}, fmt.Errorf("select record %s: %w", id, err)
	}

	if rec.Timeline, err = listEvents(ctx, m.db, m.dialect, id); err != nil {
		return models.MaintenanceRecord{}, err
	}
	if rec.Comments, err = listComments(ctx, m.db, m.dialect, id); err != nil {
		return models.MaintenanceRecord{}, err
	}
	return rec, nil
}

func (q RecordQuery) where() (string, []any) {
	var (
		conds []string
		args  []any
	)
	if s := strings.TrimSpace(q.Search); s != "" {
		like := likePattern(s)
		conds = append(conds, `(LOWER(asset_tag) LIKE ? ESCAPE '\' OR LOWER(issue) LIKE ? ESCAPE '\' OR LOWER(technician) LIKE ? ESCAPE '\')`)
		args = append(args, like, like, like)
	}
	if q.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, string(q.Status))
	}
	if q.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, string(q.Category))
	}
	if q.Priority != "" {
		conds = append(conds, "priority = ?")
		args = append(args, string(q.Priority))
	}
	if q.AssetTag != "" {
		conds = append(conds, "asset_tag = ?")
		args = append(args, q.AssetTag)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (m *MaintenanceSQL) List(ctx context.Context, q RecordQuery) ([]models.MaintenanceRecord, int, error) {
	where, args := q.where()

	var total int
	if err := m.db.QueryRowContext(ctx, m.dialect.Rebind(countRecordsSQL+where), args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count records: %w", err)
	}

	query := selectRecordsSQL + where + listOrderSQL
	if q.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, q.Limit, q.Offset)
	}
	rows, err := m.db.QueryContext(ctx, m.dialect.Rebind(query), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("select records: %w", err)
	}
	defer rows.Close()

	out := make([]models.MaintenanceRecord, 0, 32)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan record: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate records: %w", err)
	}
	return out, total, nil
}

func (m *MaintenanceSQL) Count(ctx context.Context) (int, error) {
	var n int
	if err := m.db.QueryRowContext(ctx, countRecordsSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

// Mutate reads the row (locked where the dialect supports it), applies fn
// and writes the row plus fn's events before committing.
func (m *MaintenanceSQL) Mutate(ctx context.Context, id string, fn Mutation) (models.MaintenanceRecord, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return models.MaintenanceRecord{}, fmt.Errorf("begin update record %s: %w", id, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	rec, err := scanRecord(tx.QueryRowContext(ctx, m.dialect.Rebind(selectRecordSQL+m.dialect.LockSuffix()), id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.MaintenanceRecord{}, fmt.Errorf("record %s: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return models.MaintenanceRecord{}, fmt.Errorf("select record %s: %w", id, err)
	}

	events, err := fn(&rec)
	if err != nil {
		return models.MaintenanceRecord{}, err
	}
	if len(events) == 0 {
		// release the connection before re-reading; sqlite runs on a single one
		_ = tx.Rollback()
		return m.Get(ctx, id)
	}

	rec.ID = id
	for i := range events {
		events[i] = withEventDefaults(events[i])
	}
	rec.UpdatedAt = events[len(events)-1].Timestamp

	if _, err := tx.ExecContext(ctx, m.dialect.Rebind(updateRecordSQL),
		rec.AssetTag, rec.AssetCategory, rec.AssetMake, rec.AssetModel, rec.Issue, rec.Description,
		string(rec.Category), string(rec.Status), string(rec.Priority), rec.Technician, rec.ScheduledDate, rec.CompletedDate,
		nullFloat(rec.EstimatedCost), nullFloat(rec.ActualCost), encodeNotes(rec.Notes), rec.UpdatedAt,
		id,
	); err != nil {
		return models.MaintenanceRecord{}, fmt.Errorf("update record %s: %w", id, err)
	}
	for _, ev := range events {
		if err := insertEvent(ctx, tx, m.dialect, id, ev); err != nil {
			return models.MaintenanceRecord{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return models.MaintenanceRecord{}, fmt.Errorf("commit update record %s: %w", id, err)
	}
	return m.Get(ctx, id)
}

func (m *MaintenanceSQL) AddComment(ctx context.Context, recordID string, c models.Comment, ev models.TimelineEvent) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin add comment: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := ensureRecord(ctx, tx, m.dialect, recordID); err != nil {
		return err
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	ev = withEventDefaults(ev)
	if c.Timestamp.IsZero() {
		c.Timestamp = ev.Timestamp
	}
	if err := insertComment(ctx, tx, m.dialect, recordID, c); err != nil {
		return err
	}
	if err := insertEvent(ctx, tx, m.dialect, recordID, ev); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, m.dialect.Rebind(touchRecordSQL), ev.Timestamp, recordID); err != nil {
		return fmt.Errorf("touch record %s: %w", recordID, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit add comment: %w", err)
	}
	return nil
}

func insertComment(ctx context.Context, ex execer, d db.Dialect, recordID string, c models.Comment) error {
	if c.Timestamp.IsZero() {
		c.Timestamp = time.Now().UTC()
	}
	_, err := ex.ExecContext(ctx, d.Rebind(insertCommentSQL),
		c.ID, recordID, c.Author, c.Content, c.IsInternal, c.Timestamp.UTC())
	if err != nil {
		return fmt.Errorf("insert comment for %s: %w", recordID, err)
	}
	return nil
}

func listComments(ctx context.Context, q queryer, d db.Dialect, recordID string) ([]models.Comment, error) {
	rows, err := q.QueryContext(ctx, d.Rebind(selectCommentsSQL), recordID)
	if err != nil {
		return nil, fmt.Errorf("select comments for %s: %w", recordID, err)
	}
	defer rows.Close()

	out := make([]models.Comment, 0, 4)
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.Author, &c.Content, &c.IsInternal, &c.Timestamp); err != nil {
			return nil, fmt.Errorf("scan comment for %s: %w", recordID, err)
		}
		c.Timestamp = c.Timestamp.UTC()
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments for %s: %w", recordID, err)
	}
	return out, nil
}
