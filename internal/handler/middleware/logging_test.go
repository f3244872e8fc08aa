//go:build unit

package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-desk/internal/handler/httperr"
	"hotel-desk/internal/pkg/config"
	"hotel-desk/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := NewLogger(config.NewTestConfig().Log)

	r := gin.New()
	r.Use(CustomRecovery(), logger.Middleware(), ErrorHandler())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})
	r.GET("/boom", func(*gin.Context) {
		panic("boom")
	})
	return r
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	r := newTestEngine()

	t.Run("generates an id when none is sent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(requestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("reuses the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(requestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}

func TestLoggingMiddleware_ErrorStack(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	l := &Logger{logger: slog.New(slog.NewJSONHandler(&buf, nil))}

	r := gin.New()
	r.Use(l.Middleware(), ErrorHandler())
	r.GET("/fail", func(c *gin.Context) {
		httperr.Abort(c, errs.Wrap(errs.New("connection refused"), "list rooms"), "failed to list rooms")
	})
	r.GET("/missing", func(c *gin.Context) {
		httperr.Abort(c, errs.NewKind("room not found", errs.ErrNotFound), "failed")
	})

	t.Run("server errors carry the stack", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, buf.String(), `"stack":[`)
		assert.Contains(t, buf.String(), "connection refused")
	})

	t.Run("client errors do not", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.NotContains(t, buf.String(), `"stack"`)
	})
}

func TestCustomRecovery(t *testing.T) {
	r := newTestEngine()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "message")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("debug").String())
	assert.Equal(t, "WARN", parseLevel("WARN").String())
	assert.Equal(t, "INFO", parseLevel("verbose").String())
}

func TestNewCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	preflight := func(cfg config.CORSConfig, origin string) *httptest.ResponseRecorder {
		r := gin.New()
		r.Use(NewCORSMiddleware(cfg))
		r.GET("/api/rooms", func(c *gin.Context) { c.Status(http.StatusOK) })

		req := httptest.NewRequest(http.MethodOptions, "/api/rooms", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	cfg := config.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{http.MethodGet},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       time.Hour,
	}

	t.Run("listed origin is allowed", func(t *testing.T) {
		w := preflight(cfg, "http://localhost:3000")
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unlisted origin is refused", func(t *testing.T) {
		w := preflight(cfg, "http://evil.example")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("wildcard allows any origin", func(t *testing.T) {
		all := cfg
		all.AllowOrigins = []string{"*"}
		w := preflight(all, "http://other.example")
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
