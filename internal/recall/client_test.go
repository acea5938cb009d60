package recall

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name     string
		segments []Segment
		want     string
	}{
		{
			name: "two speakers",
			segments: []Segment{
				{Speaker: "Interviewer", Words: []Word{{Text: "Tell"}, {Text: "me"}, {Text: "more"}}},
				{Speaker: "Jane", Words: []Word{{Text: "Sure"}}},
			},
			want: "Interviewer: Tell me more\n\nJane: Sure",
		},
		{
			name:     "empty input",
			segments: nil,
			want:     "",
		},
		{
			name: "segment with no words",
			segments: []Segment{
				{Speaker: "Bot"},
			},
			want: "Bot: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Flatten(tt.segments); got != tt.want {
				t.Errorf("Flatten() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetTranscript(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Token key-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/api/v1/bot/bot-1/transcript" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`[{"speaker":"Interviewer","words":[{"text":"welcome"}]},{"speaker":"Jane","words":[{"text":"thank"},{"text":"you"}]}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key-1", slog.New(slog.NewTextHandler(os.Stdout, nil)))
	transcript, _, err := c.FetchTranscript(context.Background(), "bot-1")
	if err != nil {
		t.Fatalf("FetchTranscript() error = %v", err)
	}
	want := "Interviewer: welcome\n\nJane: thank you"
	if transcript != want {
		t.Errorf("transcript = %q, want %q", transcript, want)
	}
}
