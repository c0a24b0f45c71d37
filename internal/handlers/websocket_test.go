package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"asset_maintenance/internal/board"
	"asset_maintenance/internal/models"
	"asset_maintenance/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// --- parseInterval unit tests ---

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil)

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws", 5 * time.Second},
		{"interval_string_valid", "/ws?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws?interval=2m", 5 * time.Second},
		{"interval_ms_too_large", "/ws?interval_ms=70000", 5 * time.Second},
		{"interval_invalid_string", "/ws?interval=bogus", 5 * time.Second},
		{"interval_ms_invalid", "/ws?interval_ms=NaN", 5 * time.Second},
		{"both_present_interval_wins", "/ws?interval=2s&interval_ms=150", 2 * time.Second},
		{"both_present_invalid_interval_ms_used", "/ws?interval=bogus&interval_ms=250", 250 * time.Millisecond},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.u, nil)
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			got := h.parseInterval(c)
			if got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

func TestParseInterval_ConfiguredDefault(t *testing.T) {
	h := NewHandler(&service.Service{}, nil, WithStreamInterval(2*time.Second))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/ws", nil)
	if got := h.parseInterval(c); got != 2*time.Second {
		t.Fatalf("got %v, want 2s", got)
	}

	// out-of-range option keeps the built-in default
	h = NewHandler(&service.Service{}, nil, WithStreamInterval(time.Hour))
	if got := h.parseInterval(c); got != defaultInterval {
		t.Fatalf("got %v, want %v", got, defaultInterval)
	}
}

// --- websocket integration tests ---

func dialBoard(t *testing.T, s *service.Service, query url.Values) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/ws", h.wsConnect)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"
	u.RawQuery = query.Encode()

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestWebSocket_BoardStream_InitialAndPeriodic(t *testing.T) {
	snap := board.Project([]models.MaintenanceRecord{
		{ID: "MNT-001", Status: models.StatusPending},
		{ID: "MNT-002", Status: models.StatusInProgress},
		{ID: "MNT-003", Status: models.StatusCancelled},
	})
	b := &mockBoard{snap: snap}
	tr := &mockTransition{hasOpen: true, pending: service.Pending{ID: "p-1", RecordID: "MNT-001", To: models.StatusScheduled}}
	s := &service.Service{Board: b, Transition: tr}

	conn := dialBoard(t, s, url.Values{"interval_ms": {"20"}, "search": {"srv"}})

	type frame struct {
		Board   board.Snapshot   `json:"board"`
		Pending *service.Pending `json:"pending"`
	}
	type envelope struct {
		Type  string `json:"type"`
		Data  frame  `json:"data"`
		Error string `json:"error"`
	}

	// Read initial frame
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read initial: %v", err)
	}
	if env.Type != "board" {
		t.Fatalf("bad envelope: %+v", env)
	}
	if env.Data.Board.Total != 3 || env.Data.Board.Hidden != 1 || len(env.Data.Board.Columns) != len(board.Columns) {
		t.Fatalf("unexpected board: %+v", env.Data.Board)
	}
	if env.Data.Pending == nil || env.Data.Pending.ID != "p-1" {
		t.Fatalf("expected pending transition in frame, got %+v", env.Data.Pending)
	}
	if b.lastSearch != "srv" {
		t.Fatalf("expected search to be forwarded, got %q", b.lastSearch)
	}

	// Read a subsequent tick
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	env = envelope{}
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read second: %v", err)
	}
	if env.Type != "board" {
		t.Fatalf("expected type=board, got %+v", env)
	}
}

func TestWebSocket_InitialSnapshotError_Closes(t *testing.T) {
	s := &service.Service{Board: &mockBoard{err: errors.New("boom")}}
	conn := dialBoard(t, s, url.Values{})

	// The server should close immediately after failing the initial snapshot
	_ = conn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
	var raw json.RawMessage
	if err := conn.ReadJSON(&raw); err == nil {
		t.Fatalf("expected read error (closed), got message: %s", string(raw))
	}
}

func TestWebSocket_RequiresToken(t *testing.T) {
	s := &service.Service{Authorization: &mockAuth{}}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}
