// Package notify implements the transient toast queue. Toasts
// self-destruct after their duration unless it is zero, in which case
// they persist until dismissed. Every shown toast is announced on the
// bus exactly once, regardless of how it is later removed.
package notify

import (
	"sort"
	"sync"
	"time"

	"github.com/blackroad/shell/internal/domain/events"
	"github.com/blackroad/shell/internal/infrastructure/logging"
	"github.com/blackroad/shell/internal/infrastructure/monitoring"
	sharedid "github.com/blackroad/shell/internal/shared/id"
	"github.com/blackroad/shell/internal/shared/types"
)

// Center manages live toasts and their dismissal timers.
type Center struct {
	mu      sync.Mutex
	toasts  map[string]*types.Notification
	timers  map[string]*time.Timer
	bus     *events.Bus
	log     *logging.Logger
	metrics *monitoring.Metrics

	defaultDuration time.Duration
}

// NewCenter creates a notification center.
func NewCenter(bus *events.Bus, defaultDuration time.Duration, log *logging.Logger) *Center {
	return &Center{
		toasts:          make(map[string]*types.Notification),
		timers:          make(map[string]*time.Timer),
		bus:             bus,
		log:             log,
		defaultDuration: defaultDuration,
	}
}

// WithMetrics adds metrics tracking to the center.
func (c *Center) WithMetrics(metrics *monitoring.Metrics) *Center {
	c.metrics = metrics
	return c
}

// Show displays a toast and returns its ID. A nil duration falls back
// to the configured default; zero means persistent.
func (c *Center) Show(opts types.NotificationOptions) string {
	duration := c.defaultDuration
	if opts.DurationMs != nil {
		duration = time.Duration(*opts.DurationMs) * time.Millisecond
	}

	kind := opts.Type
	if kind == "" {
		kind = types.NotifyInfo
	}

	toast := &types.Notification{
		ID:         sharedid.NewToastID(),
		Type:       kind,
		Title:      opts.Title,
		Message:    opts.Message,
		DurationMs: int(duration / time.Millisecond),
		CreatedAt:  time.Now(),
	}

	c.mu.Lock()
	c.toasts[toast.ID] = toast
	if duration > 0 {
		id := toast.ID
		c.timers[id] = time.AfterFunc(duration, func() {
			c.Dismiss(id)
		})
	}
	shown := *toast
	c.mu.Unlock()

	if c.metrics != nil {
		c.metrics.NotificationsShown.Inc()
	}
	c.bus.Emit(events.NotificationShown, shown)
	return toast.ID
}

// Dismiss removes a toast. It is idempotent: the auto-dismiss timer
// firing after a manual dismissal finds nothing and does nothing.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.toasts[id]; !ok {
		return false
	}
	delete(c.toasts, id)
	if timer, ok := c.timers[id]; ok {
		timer.Stop()
		delete(c.timers, id)
	}
	return true
}

// Active returns the live toasts, oldest first.
func (c *Center) Active() []types.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]types.Notification, 0, len(c.toasts))
	for _, toast := range c.toasts {
		out = append(out, *toast)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
