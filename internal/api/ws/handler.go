package ws

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/blackroad/shell/internal/domain/app"
	"github.com/blackroad/shell/internal/domain/palette"
	"github.com/blackroad/shell/internal/domain/window"
	"github.com/blackroad/shell/internal/shared/types"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS policy is enforced on the REST surface
	},
}

// Handler accepts WebSocket connections and routes input messages into
// the shell core.
type Handler struct {
	hub *Hub
	ctx *app.Context
}

// NewHandler creates a WebSocket handler.
func NewHandler(hub *Hub, ctx *app.Context) *Handler {
	return &Handler{hub: hub, ctx: ctx}
}

// HandleConnection upgrades the request and runs the client's read
// loop. The write side runs on its own goroutine so broadcasts never
// interleave on the wire.
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.hub.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	cl := &client{
		id:   uuid.New().String(),
		conn: conn,
		send: make(chan []byte, sendQueueSize),
	}
	h.hub.register(cl)
	go cl.writePump()

	h.sendSnapshot(cl)
	h.readPump(cl)
}

// sendSnapshot gives a newly connected client the full shell state so
// a reconnect redraws everything.
func (h *Handler) sendSnapshot(cl *client) {
	h.hub.sendTo(cl, map[string]any{
		"type":    "snapshot",
		"windows": h.ctx.Windows.Windows(),
		"taskbar": h.ctx.Windows.TaskbarEntries(),
		"apps":    h.ctx.Apps.List(),
		"toasts":  h.ctx.Notifications.Active(),
		"theme":   h.ctx.Theme(),
	})
}

func (h *Handler) readPump(cl *client) {
	defer func() {
		h.hub.unregister(cl)
		cl.conn.Close()
	}()

	for {
		var msg types.WSMessage
		if err := cl.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.hub.log.Warn("websocket read error", zap.Error(err))
			}
			return
		}
		h.dispatch(cl, msg)
	}
}

func (h *Handler) dispatch(cl *client, msg types.WSMessage) {
	switch msg.Type {
	case "pointer_down":
		h.ctx.Windows.DragStart(msg.WindowID, msg.X, msg.Y)
	case "pointer_move":
		h.ctx.Windows.DragMove(msg.X, msg.Y)
	case "pointer_up":
		h.ctx.Windows.DragEnd()

	case "key_down":
		h.handleKey(msg.Key)

	case "viewport":
		h.ctx.Windows.SetScreenSize(msg.Width, msg.Height)

	case "create_window":
		if msg.Create != nil {
			h.ctx.Windows.CreateWindow(window.CreateOptions{
				ID:        msg.Create.ID,
				Title:     msg.Create.Title,
				Icon:      msg.Create.Icon,
				Content:   msg.Create.Content,
				Width:     msg.Create.Width,
				Height:    msg.Create.Height,
				X:         msg.Create.X,
				Y:         msg.Create.Y,
				Toolbar:   msg.Create.Toolbar,
				StatusBar: msg.Create.StatusBar,
				NoPadding: msg.Create.NoPadding,
			})
		}
	case "focus_window":
		h.ctx.Windows.FocusWindow(msg.WindowID)
	case "minimize_window":
		h.ctx.Windows.MinimizeWindow(msg.WindowID)
	case "restore_window":
		h.ctx.Windows.RestoreWindow(msg.WindowID)
	case "close_window":
		h.ctx.Windows.CloseWindow(msg.WindowID)

	case "launch_app":
		h.ctx.Apps.Launch(msg.TargetID)

	case "notify":
		if msg.Notify != nil {
			h.ctx.Notifications.Show(*msg.Notify)
		}
	case "dismiss_notification":
		h.ctx.Notifications.Dismiss(msg.TargetID)

	case "palette_toggle":
		open := h.ctx.Palette.Toggle()
		h.hub.sendTo(cl, map[string]any{"type": "palette_state", "open": open})
	case "palette_query":
		results := h.ctx.Palette.Search(msg.Query)
		h.hub.sendTo(cl, map[string]any{"type": "palette_results", "results": results})
	case "palette_exec":
		h.ctx.Palette.Execute(palette.Kind(msg.Kind), msg.TargetID)

	case "ping":
		h.hub.sendTo(cl, map[string]any{"type": "pong"})

	default:
		h.hub.log.Warn("unknown message type", zap.String("type", msg.Type))
	}
}

// handleKey implements the global keyboard surface: Escape closes the
// palette when it is open, otherwise the focused window.
func (h *Handler) handleKey(key string) {
	switch key {
	case "Escape":
		if h.ctx.Palette.IsOpen() {
			h.ctx.Palette.Close()
			h.hub.Broadcast(map[string]any{"type": "palette_state", "open": false})
			return
		}
		h.ctx.Windows.CloseFocused()
	case "Meta+k", "Ctrl+k":
		open := h.ctx.Palette.Toggle()
		h.hub.Broadcast(map[string]any{"type": "palette_state", "open": open})
	}
}

func (cl *client) writePump() {
	defer cl.conn.Close()
	for data := range cl.send {
		cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := cl.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
