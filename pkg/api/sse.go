package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// sseConsumer adapts a gin response to the supervisor's consumer contract:
// records are written in SSE framing and flushed immediately, and the
// request context's done channel reports disconnects.
type sseConsumer struct {
	writer  gin.ResponseWriter
	flusher http.Flusher
	done    <-chan struct{}
	started bool
}

// newSSEConsumer wraps the response for SSE framing. Nothing is written
// until the first Send, so the handler can still answer with a plain JSON
// error after the consumer exists.
func newSSEConsumer(c *gin.Context) (*sseConsumer, error) {
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("response writer does not support streaming")
	}
	return &sseConsumer{
		writer:  c.Writer,
		flusher: flusher,
		done:    c.Request.Context().Done(),
	}, nil
}

// Send writes one SSE record: an event line, a data line, and a blank line.
// The stream headers go out ahead of the first record.
func (s *sseConsumer) Send(eventType string, data []byte) error {
	if !s.started {
		header := s.writer.Header()
		header.Set("Content-Type", "text/event-stream")
		header.Set("Cache-Control", "no-cache")
		header.Set("Connection", "keep-alive")
		header.Set("X-Accel-Buffering", "no")
		s.writer.WriteHeader(http.StatusOK)
		s.started = true
	}
	if _, err := fmt.Fprintf(s.writer, "event: %s\ndata: %s\n\n", eventType, data); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// Disconnected closes when the client goes away.
func (s *sseConsumer) Disconnected() <-chan struct{} { return s.done }
