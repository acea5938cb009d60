package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(slog.LevelInfo, "text", &buf)

		log.Info("callback processed", "agent", "zebra")

		out := buf.String()
		if !strings.Contains(out, "level=INFO") || !strings.Contains(out, "callback processed") {
			t.Errorf("unexpected text output: %s", out)
		}
	})

	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(slog.LevelDebug, "json", &buf)

		log.Debug("callback processed", "agent", "whale")

		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("failed to unmarshal JSON log: %v, output: %s", err, buf.String())
		}
		if entry["level"] != "DEBUG" || entry["msg"] != "callback processed" {
			t.Errorf("unexpected JSON log entry: %v", entry)
		}
	})

	t.Run("level filtering", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(slog.LevelWarn, "text", &buf)

		log.Info("should not appear")
		if buf.Len() != 0 {
			t.Errorf("info record leaked past warn level: %s", buf.String())
		}
	})
}
