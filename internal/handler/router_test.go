package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	chatbotService "github.com/rootsai/rootschat/internal/service/chatbot"
	"github.com/rootsai/rootschat/internal/service/session"
)

type stubExtractor struct{}

func (stubExtractor) Extract(_ []byte) (string, error) { return "", nil }

func newTestRouter() http.Handler {
	store := session.NewStore(session.Config{MinTextLength: 1, Capacity: 4, TTL: time.Hour})
	svc := chatbotService.NewService(store, stubExtractor{}, nil, time.Second, "http://localhost:8080")
	return NewRouter(svc, "")
}

func TestHealthz(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/sessions", nil)
	req.Header.Set("Origin", "https://customer.example")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
}
