package events

import (
	"sync"

	"go.uber.org/zap"

	"github.com/blackroad/shell/internal/infrastructure/logging"
	"github.com/blackroad/shell/internal/infrastructure/monitoring"
)

// Listener receives an event payload.
type Listener func(payload any)

type entry struct {
	id uint64
	fn Listener
}

// Bus is a synchronous, order-preserving publish/subscribe bus.
// One instance lives for the whole shell process.
type Bus struct {
	mu        sync.Mutex
	nextID    uint64
	listeners map[Name][]entry
	log       *logging.Logger
	metrics   *monitoring.Metrics
}

// New creates an event bus.
func New(log *logging.Logger) *Bus {
	return &Bus{
		listeners: make(map[Name][]entry),
		log:       log,
	}
}

// WithMetrics adds emission counters to the bus.
func (b *Bus) WithMetrics(metrics *monitoring.Metrics) *Bus {
	b.metrics = metrics
	return b
}

// Subscription identifies one registered listener.
type Subscription struct {
	bus   *Bus
	event Name
	id    uint64
}

// Cancel removes the listener. Safe to call more than once.
func (s *Subscription) Cancel() {
	if s == nil || s.bus == nil {
		return
	}
	s.bus.remove(s.event, s.id)
}

// On registers a listener for an event. Listeners fire in registration
// order.
func (b *Bus) On(event Name, fn Listener) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.listeners[event] = append(b.listeners[event], entry{id: b.nextID, fn: fn})
	return &Subscription{bus: b, event: event, id: b.nextID}
}

// Emit invokes every listener registered for event, synchronously and
// in registration order. A panic in one listener is recovered and
// logged; remaining listeners still run and the panic never reaches
// the caller.
func (b *Bus) Emit(event Name, payload any) {
	b.mu.Lock()
	entries := make([]entry, len(b.listeners[event]))
	copy(entries, b.listeners[event])
	b.mu.Unlock()

	if b.metrics != nil {
		b.metrics.EventsEmitted.WithLabelValues(string(event)).Inc()
	}

	for _, e := range entries {
		b.invoke(event, e, payload)
	}
}

func (b *Bus) invoke(event Name, e entry, payload any) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("event listener panicked",
				zap.String("event", string(event)),
				zap.Any("panic", r),
			)
			if b.metrics != nil {
				b.metrics.ListenerPanics.WithLabelValues(string(event)).Inc()
			}
		}
	}()
	e.fn(payload)
}

// RemoveAll clears the listener lists for the named events, or every
// event when called without arguments.
func (b *Bus) RemoveAll(events ...Name) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(events) == 0 {
		b.listeners = make(map[Name][]entry)
		return
	}
	for _, ev := range events {
		delete(b.listeners, ev)
	}
}

// ListenerCount reports how many listeners are registered for event.
func (b *Bus) ListenerCount(event Name) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners[event])
}

func (b *Bus) remove(event Name, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	list := b.listeners[event]
	for i, e := range list {
		if e.id == id {
			b.listeners[event] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// SubscribeTyped registers a listener that only fires when the payload
// is of type T. Payloads of another type are logged and skipped, so a
// miswired emitter cannot crash a subscriber.
func SubscribeTyped[T any](b *Bus, event Name, fn func(T)) *Subscription {
	return b.On(event, func(payload any) {
		v, ok := payload.(T)
		if !ok {
			b.log.Warn("event payload type mismatch",
				zap.String("event", string(event)),
			)
			return
		}
		fn(v)
	})
}
