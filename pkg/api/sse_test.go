package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSSEConsumer_DefersWritesUntilFirstSend(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/run", nil)

	consumer, err := newSSEConsumer(c)
	require.NoError(t, err)

	// Creating the consumer commits nothing, so the handler can still
	// answer with a JSON error if run admission fails afterwards.
	assert.Zero(t, w.Body.Len())
	assert.Empty(t, w.Header().Get("Content-Type"))

	require.NoError(t, consumer.Send("ping", []byte(`{"ok":true}`)))
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))
	assert.Contains(t, w.Body.String(), "event: ping\ndata: {\"ok\":true}\n\n")

	require.NoError(t, consumer.Send("pong", []byte(`{}`)))
	assert.Contains(t, w.Body.String(), "event: pong")
}
