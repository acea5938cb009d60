package server

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/recruitflow/pipeline/internal/config"
	"github.com/recruitflow/pipeline/internal/server/handler"
)

func testRouter(cfg *config.Config) http.Handler {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	// A zero handler is enough here: these tests only exercise routing and
	// middleware, which answer before any endpoint logic runs.
	return NewRouter(cfg, &handler.Handler{}, logger)
}

func TestRouterRejectsWrongMethod(t *testing.T) {
	r := testRouter(&config.Config{})

	req := httptest.NewRequest(http.MethodDelete, "/api/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method not allowed"}`, rec.Body.String())
}

func TestRouterChecksCallbackSecret(t *testing.T) {
	cfg := &config.Config{LionWebhookSecret: "s3cret"}
	r := testRouter(cfg)

	req := httptest.NewRequest(http.MethodPost, "/api/lionagent-callback", strings.NewReader(`{}`))
	req.Header.Set("x-webhook-secret", "wrong")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid webhook secret"}`, rec.Body.String())
}

func TestRouterServesDocumentedPaths(t *testing.T) {
	r := testRouter(&config.Config{})

	tests := []struct {
		method   string
		path     string
		payload  string
		wantCode int
	}{
		{http.MethodGet, "/api/index", "", http.StatusOK},
		{http.MethodPost, "/api/check-tavus-conversation", `{}`, http.StatusBadRequest},
		{http.MethodPost, "/api/transcribe-interview", "", http.StatusBadRequest},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.payload))
		if tt.payload != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equalf(t, tt.wantCode, rec.Code, "%s %s", tt.method, tt.path)
		assert.NotEqualf(t, http.StatusNotFound, rec.Code, "%s %s is not routed", tt.method, tt.path)
	}
}

func TestRouterAnswersPreflight(t *testing.T) {
	r := testRouter(&config.Config{})

	req := httptest.NewRequest(http.MethodOptions, "/api/zebraagent-trigger", nil)
	req.Header.Set("Origin", "https://forms.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
