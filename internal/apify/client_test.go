package apify

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func TestRun(t *testing.T) {
	var gotPath, gotAuth string
	var gotInput map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotInput)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"run-123","status":"RUNNING"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok-1", testLogger())
	run, err := c.Run(context.Background(), "acme~zebra-caller", map[string]any{"name": "Jane Doe", "phone": "+447700900000"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if run.ID != "run-123" || run.Status != "RUNNING" {
		t.Errorf("run = %+v", run)
	}
	if gotPath != "/v2/acts/acme~zebra-caller/runs" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer tok-1" {
		t.Errorf("auth = %q", gotAuth)
	}
	if gotInput["name"] != "Jane Doe" {
		t.Errorf("input = %v", gotInput)
	}
}

func TestRunUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"invalid token"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad", testLogger())
	_, err := c.Run(context.Background(), "acme~zebra-caller", nil)
	if err == nil {
		t.Fatal("expected error on 403")
	}
	// The raw upstream body must survive into the error for the 500 details.
	if !strings.Contains(err.Error(), "403") || !strings.Contains(err.Error(), "invalid token") {
		t.Errorf("error = %v", err)
	}
}
