package controller

import (
	"context"
	"sync"
	"time"

	"financegpt-be/internal/dto"
	"financegpt-be/internal/pkg/logger"
	"financegpt-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type IStreamController interface {
	RegisterRoutes(r fiber.Router)
}

// streamConn is the slice of the websocket connection the handler
// touches. *websocket.Conn satisfies it.
type streamConn interface {
	ReadJSON(v interface{}) error
	ReadMessage() (messageType int, p []byte, err error)
	SetReadDeadline(t time.Time) error
	WriteMessage(messageType int, data []byte) error
	WriteJSON(v interface{}) error
}

type streamController struct {
	queryService service.IQueryService
	logger       logger.ILogger
	idleTimeout  time.Duration
}

func NewStreamController(queryService service.IQueryService, log logger.ILogger, idleTimeoutSeconds int) IStreamController {
	if idleTimeoutSeconds <= 0 {
		idleTimeoutSeconds = 120
	}
	return &streamController{
		queryService: queryService,
		logger:       log,
		idleTimeout:  time.Duration(idleTimeoutSeconds) * time.Second,
	}
}

func (c *streamController) RegisterRoutes(r fiber.Router) {
	r.Use("/ws", func(ctx *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	r.Get("/ws/stream", websocket.New(c.handleQuery))
}

func (c *streamController) handleQuery(conn *websocket.Conn) {
	defer conn.Close()
	c.serve(conn)
}

// serve runs one question per connection: one initiating message in,
// streamed chunks out, one terminal JSON message, close.
func (c *streamController) serve(conn streamConn) {
	sink := newWsSink(conn)

	// The idle deadline only bounds the wait for the initiating
	// message. It must be cleared afterwards: a timed-out read poisons
	// the connection, and the disconnect reader below would cancel a
	// healthy stream once the absolute deadline passed.
	_ = conn.SetReadDeadline(time.Now().Add(c.idleTimeout))
	var req dto.StreamRequest
	if err := conn.ReadJSON(&req); err != nil {
		_ = sink.SendError("request must be a JSON message with query and token")
		return
	}
	_ = conn.SetReadDeadline(time.Time{})

	// The connection owner cancels in-flight work when the peer goes
	// away; the orchestrator watches this context.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		c.queryService.HandleQuery(ctx, &req, sink)
	}()

	// Reads after the initiating message only serve to detect
	// disconnection.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	<-done
}

// wsSink adapts one websocket connection to the orchestrator's sink
// contract. Writes are serialized because chunk forwarding and
// disconnect detection run on different goroutines.
type wsSink struct {
	mu   sync.Mutex
	conn streamConn
}

func newWsSink(conn streamConn) *wsSink {
	return &wsSink{conn: conn}
}

func (s *wsSink) SendChunk(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteMessage(websocket.TextMessage, []byte(text))
}

func (s *wsSink) SendRecommendations(recommendations []string) error {
	if recommendations == nil {
		recommendations = []string{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(dto.RecommendationsMessage{Recommendations: recommendations})
}

func (s *wsSink) SendError(message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(dto.ErrorMessage{Error: message})
}
