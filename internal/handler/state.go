package handler

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/flicky/eatsy-store/internal/store"
)

const eventsWriteWait = 10 * time.Second

type StateHandler struct {
	store    *store.Store
	upgrader websocket.Upgrader
	log      *slog.Logger
}

// NewStateHandler accepts websocket upgrades from allowedOrigins only.
// Requests without an Origin header (non-browser clients) are accepted.
func NewStateHandler(s *store.Store, allowedOrigins []string, log *slog.Logger) *StateHandler {
	return &StateHandler{
		store: s,
		log:   log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

func (h *StateHandler) Snapshot(c *gin.Context) {
	c.JSON(http.StatusOK, toStateResponse(h.store.Snapshot()))
}

// Events streams a state snapshot after every store change. Slow clients
// only ever receive the latest state; intermediate snapshots are dropped.
func (h *StateHandler) Events(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade", "error", err)
		return
	}
	defer conn.Close()

	updates := make(chan store.State, 1)
	push := func(st store.State) {
		for {
			select {
			case updates <- st:
				return
			default:
			}
			select {
			case <-updates:
			default:
			}
		}
	}

	unsubscribe := h.store.Subscribe(push)
	defer unsubscribe()
	select {
	case updates <- h.store.Snapshot():
	default:
	}

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	h.log.Debug("events client connected", "remote", c.Request.RemoteAddr)
	for {
		select {
		case <-closed:
			h.log.Debug("events client disconnected", "remote", c.Request.RemoteAddr)
			return
		case st := <-updates:
			_ = conn.SetWriteDeadline(time.Now().Add(eventsWriteWait))
			if err := conn.WriteJSON(toStateResponse(st)); err != nil {
				h.log.Warn("write state event", "error", err)
				return
			}
		}
	}
}
