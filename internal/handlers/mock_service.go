package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"asset_maintenance/internal/board"
	"asset_maintenance/internal/models"
	"asset_maintenance/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       models.Identity
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (models.Identity, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockMaintenance struct {
	page    models.Page
	record  models.MaintenanceRecord
	records []models.MaintenanceRecord
	event   models.TimelineEvent
	bulk    service.BulkResult
	err     error

	lastFilter  service.ListFilter
	lastID      string
	lastUser    string
	lastCreate  service.CreateParams
	lastUpdate  service.UpdateParams
	lastStatus  models.Status
	lastReason  string
	lastComment service.CommentParams
	lastBulk    service.BulkParams
	lastTag     string
}

func (m *mockMaintenance) List(ctx context.Context, f service.ListFilter) (models.Page, error) {
	m.lastFilter = f
	return m.page, m.err
}
func (m *mockMaintenance) Get(ctx context.Context, id string) (models.MaintenanceRecord, error) {
	m.lastID = id
	return m.record, m.err
}
func (m *mockMaintenance) Create(ctx context.Context, p service.CreateParams, user string) (models.MaintenanceRecord, error) {
	m.lastCreate, m.lastUser = p, user
	return m.record, m.err
}
func (m *mockMaintenance) UpdateStatus(ctx context.Context, id string, status models.Status, reason, user string) (models.MaintenanceRecord, error) {
	m.lastID, m.lastStatus, m.lastReason, m.lastUser = id, status, reason, user
	return m.record, m.err
}
func (m *mockMaintenance) AddComment(ctx context.Context, id string, p service.CommentParams, user string) (models.TimelineEvent, error) {
	m.lastID, m.lastComment, m.lastUser = id, p, user
	return m.event, m.err
}
func (m *mockMaintenance) Update(ctx context.Context, id string, p service.UpdateParams, user string) (models.MaintenanceRecord, error) {
	m.lastID, m.lastUpdate, m.lastUser = id, p, user
	return m.record, m.err
}
func (m *mockMaintenance) AssetHistory(ctx context.Context, assetTag string) ([]models.MaintenanceRecord, error) {
	m.lastTag = assetTag
	return m.records, m.err
}
func (m *mockMaintenance) BulkUpdate(ctx context.Context, p service.BulkParams, user string) (service.BulkResult, error) {
	m.lastBulk, m.lastUser = p, user
	return m.bulk, m.err
}

type mockTimeline struct {
	events    []models.TimelineEvent
	event     models.TimelineEvent
	err       error
	lastID    string
	lastType  string
	lastEvent models.TimelineEvent
}

func (m *mockTimeline) Events(ctx context.Context, recordID string, f service.TimelineFilter) ([]models.TimelineEvent, error) {
	m.lastID, m.lastType = recordID, f.Type
	return m.events, m.err
}
func (m *mockTimeline) Record(ctx context.Context, recordID string, ev models.TimelineEvent) (models.TimelineEvent, error) {
	m.lastID, m.lastEvent = recordID, ev
	return m.event, m.err
}

type mockBoard struct {
	snap       board.Snapshot
	err        error
	lastSearch string
}

func (m *mockBoard) Snapshot(ctx context.Context, search string) (board.Snapshot, error) {
	m.lastSearch = search
	return m.snap, m.err
}
func (m *mockBoard) Legend() board.Legend { return board.NewLegend() }

type mockTransition struct {
	outcome   service.DropOutcome
	record    models.MaintenanceRecord
	pending   service.Pending
	hasOpen   bool
	err       error
	cancelErr error

	lastUser   string
	lastDrop   service.DropParams
	lastID     string
	lastReason string
}

func (m *mockTransition) Propose(ctx context.Context, user string, p service.DropParams) (service.DropOutcome, error) {
	m.lastUser, m.lastDrop = user, p
	return m.outcome, m.err
}
func (m *mockTransition) Confirm(ctx context.Context, user, pendingID, reason string) (models.MaintenanceRecord, error) {
	m.lastUser, m.lastID, m.lastReason = user, pendingID, reason
	return m.record, m.err
}
func (m *mockTransition) Cancel(user, pendingID string) error {
	m.lastUser, m.lastID = user, pendingID
	return m.cancelErr
}
func (m *mockTransition) Current(user string) (service.Pending, bool) {
	m.lastUser = user
	return m.pending, m.hasOpen
}
func (m *mockTransition) Run(ctx context.Context, tick time.Duration) {}

type mockExport struct {
	body       string
	err        error
	lastFilter service.ListFilter
}

func (m *mockExport) Report(ctx context.Context, f service.ListFilter, w io.Writer) error {
	m.lastFilter = f
	if m.err != nil {
		return m.err
	}
	_, err := io.WriteString(w, m.body)
	return err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
