package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		out = append(out, entry)
	}
	return out
}

func TestInitWithWriter_TagsServiceAndRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("catalog-test", "warn", &buf)

	Info().Msg("dropped")
	Warn().Str("k", "v").Msg("kept")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "catalog-test", lines[0]["service"])
	assert.Equal(t, "kept", lines[0]["message"])
	assert.Equal(t, "v", lines[0]["k"])
}

func TestInitWithWriter_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("catalog-test", "loud", &buf)

	Debug().Msg("hidden")
	Info().Msg("shown")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "info", lines[0]["level"])
}

func TestComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("catalog-test", "debug", &buf)

	l := Component("store")
	l.Info().Msg("hello")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "store", lines[0]["component"])
}

func TestGinLoggerMiddleware(t *testing.T) {
	t.Run("generates request id", func(t *testing.T) {
		var buf bytes.Buffer
		InitWithWriter("catalog-test", "info", &buf)

		r := gin.New()
		r.Use(GinLoggerMiddleware())
		r.GET("/ping/:id", func(c *gin.Context) { c.Status(http.StatusTeapot) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping/42", nil))

		id := w.Header().Get(RequestIDHeader)
		assert.NotEmpty(t, id)

		lines := decodeLines(t, &buf)
		require.Len(t, lines, 1)
		assert.Equal(t, id, lines[0]["request_id"])
		assert.Equal(t, "/ping/:id", lines[0]["route"])
		assert.Equal(t, "warn", lines[0]["level"])
		assert.EqualValues(t, http.StatusTeapot, lines[0]["status"])
	})

	t.Run("propagates incoming request id", func(t *testing.T) {
		var buf bytes.Buffer
		InitWithWriter("catalog-test", "info", &buf)

		r := gin.New()
		r.Use(GinLoggerMiddleware())
		r.GET("/ok", func(c *gin.Context) {
			assert.Equal(t, "abc-123", c.GetString(RequestIDKey))
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		lines := decodeLines(t, &buf)
		require.Len(t, lines, 1)
		assert.Equal(t, "info", lines[0]["level"])
	})
}
