package tavus

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func TestGetConversation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-api-key") != "key-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/v2/conversations/conv-1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`{"conversation_id":"conv-1","status":"ended","transcript":"Interviewer: welcome","recording_url":"https://rec/1","duration":600}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key-1", slog.New(slog.NewTextHandler(os.Stdout, nil)))
	conv, err := c.GetConversation(context.Background(), "conv-1")
	if err != nil {
		t.Fatalf("GetConversation() error = %v", err)
	}
	if conv.Status != "ended" || conv.Transcript != "Interviewer: welcome" {
		t.Errorf("conversation = %+v", conv)
	}
	if len(conv.Raw) == 0 {
		t.Error("Raw body should be retained for the passthrough endpoint")
	}
}

func TestFetchTranscriptEmptyIsNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"conversation_id":"conv-2","status":"ended","recording_url":"https://rec/2"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key-1", slog.New(slog.NewTextHandler(os.Stdout, nil)))
	transcript, recording, err := c.FetchTranscript(context.Background(), "conv-2")
	if err != nil {
		t.Fatalf("FetchTranscript() error = %v", err)
	}
	if transcript != "" {
		t.Errorf("transcript = %q, want empty", transcript)
	}
	if recording != "https://rec/2" {
		t.Errorf("recording = %q", recording)
	}
}
