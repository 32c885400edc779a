package realtime

import (
	"encoding/json"
	"github.com/fasthttp/websocket"
	"github.com/stretchr/testify/require"
	"messenger/internal/identity"
	"sync"
	"testing"
	"time"
)

// fakeConn feeds frames written to in and records text frames written by the client
type fakeConn struct {
	in chan []byte

	mu     sync.Mutex
	frames [][]byte
	closed bool
}

func newFakeConn() *fakeConn {
	return &fakeConn{in: make(chan []byte, 16)}
}

func (f *fakeConn) ReadMessage() (int, []byte, error) {
	frame, ok := <-f.in
	if !ok {
		return 0, nil, &websocket.CloseError{Code: websocket.CloseNormalClosure}
	}
	return websocket.TextMessage, frame, nil
}

func (f *fakeConn) WriteMessage(messageType int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if messageType == websocket.TextMessage {
		f.frames = append(f.frames, append([]byte(nil), data...))
	}
	return nil
}

func (f *fakeConn) SetReadLimit(int64)                {}
func (f *fakeConn) SetReadDeadline(time.Time) error   { return nil }
func (f *fakeConn) SetWriteDeadline(time.Time) error  { return nil }
func (f *fakeConn) SetPongHandler(func(string) error) {}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	return nil
}

func (f *fakeConn) written() []frame {
	f.mu.Lock()
	defer f.mu.Unlock()

	frames := make([]frame, 0, len(f.frames))
	for _, data := range f.frames {
		var fr frame
		if err := json.Unmarshal(data, &fr); err == nil {
			frames = append(frames, fr)
		}
	}
	return frames
}

func (f *fakeConn) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.closed
}

type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

func newTestClient(userID string) *Client {
	return NewClient(newFakeConn(), identity.Session{ID: userID, Name: userID})
}

// nextFrame pops a frame queued for client
func nextFrame(t *testing.T, c *Client) frame {
	t.Helper()

	select {
	case data := <-c.send:
		var fr frame
		require.NoError(t, json.Unmarshal(data, &fr))
		return fr
	case <-time.After(time.Second):
		t.Fatalf("no frame queued for user %s", c.Session.ID)
	}
	return frame{}
}

func requireNoFrame(t *testing.T, c *Client) {
	t.Helper()
	require.Len(t, c.send, 0, "unexpected frame queued for user %s", c.Session.ID)
}
