package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"asset_maintenance/internal/board"
	"asset_maintenance/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 5 * time.Second
	maxInterval      = time.Minute
	maxIntervalMilli = 60_000
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// boardFrame is pushed on every tick: the board plus the caller's open
// transition, so a reconnecting client can restore its dialog.
type boardFrame struct {
	Board   board.Snapshot   `json:"board"`
	Pending *service.Pending `json:"pending,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // TODO: check Origin against a configured allow-list
}

// @Summary      Live board stream
// @Description  WebSocket. Pushes {"type":"board","data":{board,pending}} every interval (?interval=5s or ?interval_ms=5000, max 1m). Token via Authorization header or ?token=.
// @Tags         board
// @Param        token        query  string  false  "JWT when headers cannot be set"
// @Param        search       query  string  false  "Board search"
// @Param        interval     query  string  false  "Push interval, e.g. 2s"
// @Param        interval_ms  query  int     false  "Push interval in milliseconds"
// @Success      101
// @Failure      401  {object}  map[string]string
// @Router       /ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	interval := h.parseInterval(c)
	search := c.Query("search")
	user := currentUser(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	// Configure read limits and pong handler to extend read deadline.
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine to handle control frames and detect disconnects.
	done := make(chan struct{})
	go h.startReader(conn, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	ctx := c.Request.Context()
	if err := h.sendBoard(ctx, conn, user, search); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err)
		}
		return
	}

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case <-ticker.C:
			if err := h.sendBoard(ctx, conn, user, search); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		}
	}
}

// Helper: parseInterval reads ?interval=2s or ?interval_ms=2000 with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}

	return h.streamInterval
}

// Helper: startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
	}
}

// Helper: sendBoard projects the current records and writes them with a write deadline.
func (h *Handler) sendBoard(ctx context.Context, conn *websocket.Conn, user, search string) error {
	snap, err := h.services.Board.Snapshot(ctx, search)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_board_snapshot_failed", "err", err)
		}
		return err
	}
	frame := boardFrame{Board: snap}
	if h.services.Transition != nil {
		if p, ok := h.services.Transition.Current(user); ok {
			frame.Pending = &p
		}
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(wsEnvelope{Type: "board", Data: frame})
}
