package repository

import (
	"context"
	"database/sql"

	"asset_maintenance/internal/models"
	"asset_maintenance/internal/repository/db"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// RecordQuery filters a record listing. Zero fields do not filter; Limit 0 means no limit.
type RecordQuery struct {
	Search   string // case-insensitive substring of asset tag, issue or technician
	Status   models.Status
	Category models.Category
	Priority models.Priority
	AssetTag string // exact match
	Limit    int
	Offset   int
}

// Mutation edits rec in place and returns the timeline events recorded with
// the change. Returning no events leaves the stored record untouched.
type Mutation func(rec *models.MaintenanceRecord) ([]models.TimelineEvent, error)

type MaintenanceRepo interface {
	// Create stores rec with its Timeline and Comments. An empty ID is
	// assigned as the next MNT-NNN number.
	Create(ctx context.Context, rec models.MaintenanceRecord) (models.MaintenanceRecord, error)
	// Get returns the record with timeline and comments in insertion order.
	Get(ctx context.Context, id string) (models.MaintenanceRecord, error)
	// List returns matching records newest first, without timeline or
	// comments, plus the total number of matches ignoring Limit/Offset.
	List(ctx context.Context, q RecordQuery) ([]models.MaintenanceRecord, int, error)
	Count(ctx context.Context) (int, error)
	// Mutate applies fn and persists the record together with its events in
	// one transaction.
	Mutate(ctx context.Context, id string, fn Mutation) (models.MaintenanceRecord, error)
	// AddComment stores c and its comment event atomically.
	AddComment(ctx context.Context, recordID string, c models.Comment, ev models.TimelineEvent) error
}

// TimelineRepo is the append-only event log of each record.
type TimelineRepo interface {
	Append(ctx context.Context, recordID string, ev models.TimelineEvent) error
	// List returns events in insertion order.
	List(ctx context.Context, recordID string) ([]models.TimelineEvent, error)
}

type Repository struct {
	Maintenance MaintenanceRepo
	Timeline    TimelineRepo
	Auth        Authorization
}

func NewRepository(conn *sql.DB, d db.Dialect) *Repository {
	return &Repository{
		Maintenance: NewMaintenanceSQL(conn, d),
		Timeline:    NewTimelineSQL(conn, d),
		Auth:        NewUserRepository(conn, d),
	}
}
