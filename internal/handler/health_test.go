package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func setupHealthRouter(repo *fakeBookRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHealthHandler(repo, time.Now().Add(-time.Minute), "test").RegisterRoutes(r)
	return r
}

func TestHealth(t *testing.T) {
	router := setupHealthRouter(&fakeBookRepo{})

	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if body["status"] != "ok" || body["version"] != "test" {
		t.Errorf("unexpected body %v", body)
	}
	if uptime, _ := body["uptime"].(float64); uptime < 60 {
		t.Errorf("expected uptime >= 60, got %v", body["uptime"])
	}
}

func TestReady(t *testing.T) {
	router := setupHealthRouter(&fakeBookRepo{})

	req, _ := http.NewRequest(http.MethodGet, "/ready", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}
}

func TestReady_StoreDown(t *testing.T) {
	router := setupHealthRouter(&fakeBookRepo{
		PingFn: func(ctx context.Context) error {
			return errors.New("store closed")
		},
	})

	req, _ := http.NewRequest(http.MethodGet, "/ready", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", w.Code)
	}
}
