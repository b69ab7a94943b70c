package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/bookshelf-api/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	e.Use(mw...)
	e.GET("/books", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	})
	return e
}

func serve(e http.Handler, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestCORS_Wildcard(t *testing.T) {
	e := newTestEngine(CORS([]string{"*"}))

	w := serve(e, http.MethodGet, "/books", http.Header{"Origin": {"https://anywhere.example"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)

	w = serve(e, http.MethodGet, "/books", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_Preflight(t *testing.T) {
	e := newTestEngine(CORS([]string{"*"}))

	w := serve(e, http.MethodOptions, "/books", http.Header{
		"Origin":                        {"https://anywhere.example"},
		"Access-Control-Request-Method": {http.MethodDelete},
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
}

func TestCORS_AllowList(t *testing.T) {
	e := newTestEngine(CORS([]string{"https://a.example"}))

	w := serve(e, http.MethodGet, "/books", http.Header{"Origin": {"https://a.example"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://a.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", w.Header().Get("Vary"))

	w = serve(e, http.MethodGet, "/books", http.Header{"Origin": {"https://evil.example"}})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Format: logging.FormatJSON, Output: &buf})

	e := newTestEngine(RequestLogger(logger))

	w := serve(e, http.MethodGet, "/books", nil)
	require.Equal(t, http.StatusOK, w.Code)

	id := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, id)
	assert.Contains(t, buf.String(), `"request_id":"`+id+`"`)
	assert.Contains(t, buf.String(), `"path":"/books"`)
	assert.Contains(t, buf.String(), `"status":200`)

	w = serve(e, http.MethodGet, "/books", http.Header{RequestIDHeader: {"given-id"}})
	assert.Equal(t, "given-id", w.Header().Get(RequestIDHeader))
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(1, 2)
	e := newTestEngine(limiter.Middleware())

	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/books", nil).Code)
	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/books", nil).Code)

	w := serve(e, http.MethodGet, "/books", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"status":"fail","message":"rate limit exceeded"}`, w.Body.String())
}

func TestRateLimiter_Sweep(t *testing.T) {
	limiter := NewRateLimiter(1, 1)
	now := time.Now()

	assert.True(t, limiter.allow("10.0.0.1", now.Add(-time.Hour)))
	assert.True(t, limiter.allow("10.0.0.2", now))

	limiter.Sweep(now.Add(-limiterIdleTTL))

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	assert.NotContains(t, limiter.clients, "10.0.0.1")
	assert.Contains(t, limiter.clients, "10.0.0.2")
}
