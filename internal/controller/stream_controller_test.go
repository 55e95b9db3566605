package controller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"financegpt-be/internal/dto"
	"financegpt-be/internal/service"

	"github.com/stretchr/testify/assert"
)

// fakeStreamConn mimics the read-deadline semantics of the underlying
// websocket: a pending read fails once the deadline passes, and a zero
// deadline blocks until the connection is torn down.
type fakeStreamConn struct {
	mu        sync.Mutex
	request   dto.StreamRequest
	readErr   error
	deadline  time.Time
	deadlines []time.Time
	frames    []string
	jsons     []interface{}
	closed    chan struct{}
}

func newFakeStreamConn(req dto.StreamRequest) *fakeStreamConn {
	return &fakeStreamConn{request: req, closed: make(chan struct{})}
}

func (c *fakeStreamConn) ReadJSON(v interface{}) error {
	if c.readErr != nil {
		return c.readErr
	}
	*(v.(*dto.StreamRequest)) = c.request
	return nil
}

func (c *fakeStreamConn) ReadMessage() (int, []byte, error) {
	c.mu.Lock()
	deadline := c.deadline
	c.mu.Unlock()
	if deadline.IsZero() {
		<-c.closed
		return 0, nil, errors.New("use of closed network connection")
	}
	select {
	case <-time.After(time.Until(deadline)):
		return 0, nil, errors.New("read timeout")
	case <-c.closed:
		return 0, nil, errors.New("use of closed network connection")
	}
}

func (c *fakeStreamConn) SetReadDeadline(t time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deadline = t
	c.deadlines = append(c.deadlines, t)
	return nil
}

func (c *fakeStreamConn) WriteMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = append(c.frames, string(data))
	return nil
}

func (c *fakeStreamConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.jsons = append(c.jsons, v)
	return nil
}

// slowStreamService emits chunks at a fixed pace and records whether
// its context was cancelled while it was still producing.
type slowStreamService struct {
	chunks   []string
	perChunk time.Duration
	ctxErr   error
}

func (s *slowStreamService) HandleQuery(ctx context.Context, req *dto.StreamRequest, sink service.Sink) {
	for _, chunk := range s.chunks {
		time.Sleep(s.perChunk)
		if ctx.Err() != nil {
			s.ctxErr = ctx.Err()
			return
		}
		_ = sink.SendChunk(chunk)
	}
	s.ctxErr = ctx.Err()
	_ = sink.SendRecommendations([]string{})
}

func TestServeStreamOutlivesHandshakeDeadline(t *testing.T) {
	svc := &slowStreamService{
		chunks:   []string{"one ", "two ", "three"},
		perChunk: 20 * time.Millisecond,
	}
	c := &streamController{
		queryService: svc,
		logger:       noopControllerLogger{},
		idleTimeout:  30 * time.Millisecond,
	}
	conn := newFakeStreamConn(dto.StreamRequest{Query: "q", Token: "t"})

	c.serve(conn)
	close(conn.closed)

	assert.NoError(t, svc.ctxErr, "a healthy connection must not be cancelled just because the answer outlives the handshake deadline")
	assert.Equal(t, []string{"one ", "two ", "three"}, conn.frames)
	assert.Equal(t, []interface{}{dto.RecommendationsMessage{Recommendations: []string{}}}, conn.jsons)

	assert.Len(t, conn.deadlines, 2, "deadline set for the initiating message, then cleared")
	assert.False(t, conn.deadlines[0].IsZero())
	assert.True(t, conn.deadlines[1].IsZero(), "deadline must be cleared once the initiating message arrived")
}

func TestServeMalformedFirstMessage(t *testing.T) {
	svc := &slowStreamService{}
	c := &streamController{
		queryService: svc,
		logger:       noopControllerLogger{},
		idleTimeout:  30 * time.Millisecond,
	}
	conn := newFakeStreamConn(dto.StreamRequest{})
	conn.readErr = errors.New("invalid json")

	c.serve(conn)
	close(conn.closed)

	assert.Empty(t, conn.frames)
	assert.Len(t, conn.jsons, 1, "exactly one terminal message")
	assert.Equal(t, dto.ErrorMessage{Error: "request must be a JSON message with query and token"}, conn.jsons[0])
}

type noopControllerLogger struct{}

func (noopControllerLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopControllerLogger) Info(module, message string, details map[string]interface{})  {}
func (noopControllerLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopControllerLogger) Error(module, message string, details map[string]interface{}) {}
func (noopControllerLogger) Sync() error                                                  { return nil }
