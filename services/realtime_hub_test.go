package services

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn records writes and flags any two that overlap in time.
type fakeConn struct {
	inWrite  atomic.Int32
	overlaps atomic.Int32

	mu       sync.Mutex
	messages [][]byte
	closed   bool
}

func (f *fakeConn) WriteMessage(messageType int, data []byte) error {
	if f.inWrite.Add(1) > 1 {
		f.overlaps.Add(1)
	}
	time.Sleep(time.Millisecond)
	f.mu.Lock()
	f.messages = append(f.messages, append([]byte(nil), data...))
	f.mu.Unlock()
	f.inWrite.Add(-1)
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	return nil
}

func (f *fakeConn) received() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]byte(nil), f.messages...)
}

func TestBroadcastEventIsolatedPerUser(t *testing.T) {
	hub := NewRealtimeHub()

	tabA1 := &fakeConn{}
	tabA2 := &fakeConn{}
	tabB := &fakeConn{}
	hub.Register(&WSClient{UserID: 1, Conn: tabA1})
	hub.Register(&WSClient{UserID: 1, Conn: tabA2})
	hub.Register(&WSClient{UserID: 2, Conn: tabB})

	hub.BroadcastEvent(1, map[string]any{"kind": "plan.saved"})

	require.Len(t, tabA1.received(), 1)
	require.Len(t, tabA2.received(), 1)
	assert.JSONEq(t, `{"kind":"plan.saved"}`, string(tabA1.received()[0]))
	assert.Empty(t, tabB.received())
}

func TestUnregisterRemovesClientAndClosesConn(t *testing.T) {
	hub := NewRealtimeHub()

	conn := &fakeConn{}
	client := &WSClient{UserID: 1, Conn: conn}
	hub.Register(client)
	hub.Unregister(client)

	hub.BroadcastEvent(1, map[string]any{"kind": "plan.saved"})

	assert.Empty(t, conn.received())
	assert.True(t, conn.closed)
}

func TestBroadcastEventSerializesWritesPerConn(t *testing.T) {
	hub := NewRealtimeHub()

	conn := &fakeConn{}
	client := &WSClient{UserID: 1, Conn: conn}
	hub.Register(client)

	// Two tabs logging progress at once plus the keepalive ping all write
	// to the same conn; none of them may overlap.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			hub.BroadcastEvent(1, map[string]any{"kind": "progress.logged"})
		}()
		go func() {
			defer wg.Done()
			_ = client.Send(websocket.PingMessage, nil)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 0, conn.overlaps.Load())
	assert.Len(t, conn.received(), 16)
}
