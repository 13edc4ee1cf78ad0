package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackroad/shell/internal/infrastructure/logging"
)

func newFakeClient(id string, queue int) *client {
	return &client{id: id, send: make(chan []byte, queue)}
}

func TestBroadcastReachesEveryClient(t *testing.T) {
	h := NewHub(logging.NewNop())

	a := newFakeClient("a", 4)
	b := newFakeClient("b", 4)
	h.register(a)
	h.register(b)

	h.Broadcast(map[string]any{"type": "pong"})

	require.Len(t, a.send, 1)
	require.Len(t, b.send, 1)
	assert.JSONEq(t, `{"type":"pong"}`, string(<-a.send))
}

func TestUnregisterDropsClient(t *testing.T) {
	h := NewHub(logging.NewNop())

	a := newFakeClient("a", 4)
	b := newFakeClient("b", 4)
	h.register(a)
	h.register(b)

	h.unregister(a)
	h.unregister(a) // second disconnect is a no-op

	h.Broadcast(map[string]any{"type": "pong"})
	assert.Len(t, b.send, 1)

	_, open := <-a.send
	assert.False(t, open, "send queue closes on disconnect")
}

func TestBroadcastSkipsFullQueue(t *testing.T) {
	h := NewHub(logging.NewNop())

	slow := newFakeClient("slow", 1)
	fast := newFakeClient("fast", 4)
	h.register(slow)
	h.register(fast)

	h.Broadcast(map[string]any{"type": "pong"})
	h.Broadcast(map[string]any{"type": "pong"}) // slow queue now full

	assert.Len(t, slow.send, 1, "full queue drops, never blocks")
	assert.Len(t, fast.send, 2)
}
