package repository

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"asset_maintenance/internal/models"
	"asset_maintenance/internal/repository/db"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockTimeline(t *testing.T, d db.Dialect) (*TimelineSQL, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		_ = conn.Close()
	})
	return NewTimelineSQL(conn, d), mock
}

func TestTimelineSQL_AppendFillsDefaults(t *testing.T) {
	t.Parallel()

	repo, mock := newMockTimeline(t, db.SQLite{})

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(recordExistsSQL)).
		WithArgs("MNT-003").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta(insertEventSQL)).
		WithArgs(sqlmock.AnyArg(), "MNT-003", "update", "Record Updated", "", "admin", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(touchRecordSQL)).
		WithArgs(sqlmock.AnyArg(), "MNT-003").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Append(ctx(t), "MNT-003", models.TimelineEvent{Type: models.EventUpdate, Title: "Record Updated", User: "admin"})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
}

func TestTimelineSQL_ListPostgres(t *testing.T) {
	t.Parallel()

	repo, mock := newMockTimeline(t, db.Postgres{})

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE record_id = $1 ORDER BY seq ASC`)).
		WithArgs("MNT-001").
		WillReturnRows(sqlmock.NewRows(eventCols).
			AddRow("e1", "creation", "Ticket Created", "", "jdoe", t0).
			AddRow("e2", "comment", "Comment Added", "hello", "tech1", t0))

	events, err := repo.List(ctx(t), "MNT-001")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(events) != 2 || events[0].ID != "e1" || events[1].Type != models.EventComment {
		t.Fatalf("unexpected events: %+v", events)
	}
}

func TestTimelineSQL_ListUnknownRecord(t *testing.T) {
	t.Parallel()

	repo, mock := newMockTimeline(t, db.SQLite{})

	mock.ExpectQuery(regexp.QuoteMeta(selectEventsSQL)).
		WithArgs("MNT-404").
		WillReturnRows(sqlmock.NewRows(eventCols))
	mock.ExpectQuery(regexp.QuoteMeta(recordExistsSQL)).
		WithArgs("MNT-404").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.List(ctx(t), "MNT-404")
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
