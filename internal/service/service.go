package service

import (
	"context"
	"io"
	"time"

	"asset_maintenance/internal/board"
	"asset_maintenance/internal/logger"
	"asset_maintenance/internal/models"
	"asset_maintenance/internal/notify"
	"asset_maintenance/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (models.Identity, error)
}

// Maintenance owns the ticket lifecycle. Every mutation records its timeline
// event in the same write.
type Maintenance interface {
	List(ctx context.Context, f ListFilter) (models.Page, error)
	Get(ctx context.Context, id string) (models.MaintenanceRecord, error)
	Create(ctx context.Context, p CreateParams, user string) (models.MaintenanceRecord, error)
	UpdateStatus(ctx context.Context, id string, status models.Status, reason, user string) (models.MaintenanceRecord, error)
	AddComment(ctx context.Context, id string, p CommentParams, user string) (models.TimelineEvent, error)
	Update(ctx context.Context, id string, p UpdateParams, user string) (models.MaintenanceRecord, error)
	AssetHistory(ctx context.Context, assetTag string) ([]models.MaintenanceRecord, error)
	BulkUpdate(ctx context.Context, p BulkParams, user string) (BulkResult, error)
}

// Timeline reads and appends audit events.
type Timeline interface {
	Events(ctx context.Context, recordID string, f TimelineFilter) ([]models.TimelineEvent, error)
	Record(ctx context.Context, recordID string, ev models.TimelineEvent) (models.TimelineEvent, error)
}

// Board projects the current tickets into status columns.
type Board interface {
	Snapshot(ctx context.Context, search string) (board.Snapshot, error)
	Legend() board.Legend
}

// Transition gates board moves behind an explicit confirmation, one pending
// move per user.
type Transition interface {
	Propose(ctx context.Context, user string, p DropParams) (DropOutcome, error)
	Confirm(ctx context.Context, user, pendingID, reason string) (models.MaintenanceRecord, error)
	Cancel(user, pendingID string) error
	Current(user string) (Pending, bool)
	// Run expires abandoned proposals until ctx is canceled.
	Run(ctx context.Context, tick time.Duration)
}

type Export interface {
	Report(ctx context.Context, f ListFilter, w io.Writer) error
}

type Service struct {
	Maintenance
	Timeline
	Board
	Transition
	Export
	Authorization
}

// Deps carries the collaborators and settings that are not repositories.
type Deps struct {
	Publisher  notify.Publisher
	Logger     *logger.Logger
	SigningKey string
	TokenTTL   time.Duration
	PendingTTL time.Duration
	Now        func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.Publisher == nil {
		d.Publisher = notify.Nop{}
	}
	if d.Logger == nil {
		d.Logger = logger.Nop()
	}
	if d.Now == nil {
		d.Now = func() time.Time { return time.Now().UTC() }
	}
	if d.TokenTTL <= 0 {
		d.TokenTTL = time.Hour
	}
	if d.PendingTTL <= 0 {
		d.PendingTTL = 10 * time.Minute
	}
	return d
}

func NewService(repos *repository.Repository, deps Deps) *Service {
	deps = deps.withDefaults()
	timeline := NewTimelineService(repos.Timeline, deps.Publisher, deps.Now)
	maintenance := NewMaintenanceService(repos.Maintenance, timeline)
	return &Service{
		Maintenance:   maintenance,
		Timeline:      timeline,
		Board:         NewBoardService(repos.Maintenance),
		Transition:    NewTransitionService(repos.Maintenance, maintenance, deps.PendingTTL, deps.Now, deps.Logger),
		Export:        NewExportService(maintenance),
		Authorization: NewAuthService(repos.Auth, deps.SigningKey, deps.TokenTTL),
	}
}
