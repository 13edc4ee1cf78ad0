// Package ws bridges the shell core and connected browsers: pointer
// and keyboard input arrives as JSON messages, and every bus event and
// render command is pushed back out. The hub is the production
// implementation of the window manager's View port.
package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/blackroad/shell/internal/domain/events"
	"github.com/blackroad/shell/internal/infrastructure/logging"
	"github.com/blackroad/shell/internal/infrastructure/monitoring"
	"github.com/blackroad/shell/internal/shared/types"
)

const (
	writeWait     = 10 * time.Second
	sendQueueSize = 256
)

// Hub fans shell output out to every connected client.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*client
	log     *logging.Logger
	metrics *monitoring.Metrics
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates an empty hub.
func NewHub(log *logging.Logger) *Hub {
	return &Hub{
		clients: make(map[string]*client),
		log:     log,
	}
}

// WithMetrics adds connection tracking to the hub.
func (h *Hub) WithMetrics(metrics *monitoring.Metrics) *Hub {
	h.metrics = metrics
	return h
}

func (h *Hub) register(cl *client) {
	h.mu.Lock()
	h.clients[cl.id] = cl
	count := len(h.clients)
	h.mu.Unlock()

	if h.metrics != nil {
		h.metrics.WSConnections.Set(float64(count))
	}
	h.log.Info("client connected", zap.String("client_id", cl.id), zap.Int("clients", count))
}

func (h *Hub) unregister(cl *client) {
	h.mu.Lock()
	if _, ok := h.clients[cl.id]; ok {
		delete(h.clients, cl.id)
		close(cl.send)
	}
	count := len(h.clients)
	h.mu.Unlock()

	if h.metrics != nil {
		h.metrics.WSConnections.Set(float64(count))
	}
	h.log.Info("client disconnected", zap.String("client_id", cl.id), zap.Int("clients", count))
}

// Broadcast sends a message to every connected client. A client whose
// queue is full is skipped rather than blocking the shell.
func (h *Hub) Broadcast(msg any) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.log.Error("broadcast marshal failed", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, cl := range h.clients {
		select {
		case cl.send <- data:
		default:
			h.log.Warn("client send queue full, dropping message",
				zap.String("client_id", cl.id))
		}
	}
}

func (h *Hub) sendTo(cl *client, msg any) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.log.Error("send marshal failed", zap.Error(err))
		return
	}
	select {
	case cl.send <- data:
	default:
	}
}

// ForwardBus pushes every recognized shell event to connected clients.
func (h *Hub) ForwardBus(bus *events.Bus) {
	names := []events.Name{
		events.OSBoot, events.OSReady,
		events.WindowCreated, events.WindowFocused,
		events.WindowMinimized, events.WindowRestored, events.WindowClosed,
		events.ThemeChanged, events.NotificationShown,
	}
	for _, name := range names {
		name := name
		bus.On(name, func(payload any) {
			h.Broadcast(map[string]any{
				"type":    "event",
				"event":   string(name),
				"payload": payload,
			})
		})
	}
}

// View port implementation. The manager calls these on every visible
// state change.

func (h *Hub) RenderWindow(win types.Window, content string) {
	h.Broadcast(map[string]any{"type": "window_render", "window": win, "content": content})
}

func (h *Hub) UpdateWindow(win types.Window) {
	h.Broadcast(map[string]any{"type": "window_update", "window": win})
}

func (h *Hub) RemoveWindow(id string) {
	h.Broadcast(map[string]any{"type": "window_remove", "window_id": id})
}

func (h *Hub) SyncTaskbar(entries []types.TaskbarEntry) {
	h.Broadcast(map[string]any{"type": "taskbar", "entries": entries})
}
