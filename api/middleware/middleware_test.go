package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/fyyur/fyyur-backend/utils"
)

func TestNewRequestId(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewRequestId())
	r.GET("/", func(c *gin.Context) {
		requestId, _ := utils.RequestIdFromContext(c.Request.Context())
		c.String(http.StatusOK, requestId)
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(w.Body.String())
		assert.NoError(t, err)
		assert.Equal(t, w.Body.String(), w.Header().Get(HeaderRequestId))
	})

	t.Run("forwarded", func(t *testing.T) {
		requestId := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestId, requestId)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, requestId, w.Body.String())
	})
}

func TestNewLogging(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(buf *bytes.Buffer, options ...LoggerOption) *gin.Engine {
		logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		r := gin.New()
		r.Use(NewLogging(logger, options...))
		r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
		r.GET("/static/style.css", func(c *gin.Context) { c.Status(http.StatusOK) })
		r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
		return r
	}
	serve := func(r *gin.Engine, path string) {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	t.Run("levels by status", func(t *testing.T) {
		var buf bytes.Buffer
		r := newRouter(&buf)
		serve(r, "/ok")
		serve(r, "/boom")

		assert.Contains(t, buf.String(), "level=INFO msg=\"GET /ok\"")
		assert.Contains(t, buf.String(), "level=ERROR msg=\"GET /boom\"")
	})

	t.Run("errors only", func(t *testing.T) {
		var buf bytes.Buffer
		r := newRouter(&buf, WithRequestLoggingLevel("errors"))
		serve(r, "/ok")
		serve(r, "/boom")

		assert.NotContains(t, buf.String(), "/ok")
		assert.Contains(t, buf.String(), "/boom")
	})

	t.Run("ignored prefix", func(t *testing.T) {
		var buf bytes.Buffer
		r := newRouter(&buf, WithIgnorePrefix("/static"))
		serve(r, "/static/style.css")

		assert.Empty(t, buf.String())
	})
}

func TestWriteRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewWriteRateLimiter(0.001, 2).Handler())
	r.GET("/venues", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/venues/create", func(c *gin.Context) { c.Status(http.StatusSeeOther) })

	serve := func(method, path, remoteAddr string) int {
		req := httptest.NewRequest(method, path, nil)
		req.RemoteAddr = remoteAddr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusSeeOther, serve(http.MethodPost, "/venues/create", "10.0.0.1:1234"))
	assert.Equal(t, http.StatusSeeOther, serve(http.MethodPost, "/venues/create", "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, serve(http.MethodPost, "/venues/create", "10.0.0.1:1234"))

	// reads and other clients are unaffected
	assert.Equal(t, http.StatusOK, serve(http.MethodGet, "/venues", "10.0.0.1:1234"))
	assert.Equal(t, http.StatusSeeOther, serve(http.MethodPost, "/venues/create", "10.0.0.2:1234"))
}
