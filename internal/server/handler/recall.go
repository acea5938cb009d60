package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
)

// RecallWebhook receives meeting-bot status events. Only a finished recording
// matters: its transcript is pulled from the bot provider, flattened, and
// handed to the video processor actor together with the conversation it
// belongs to. Every other event is acknowledged and echoed back.
func (h *Handler) RecallWebhook(w http.ResponseWriter, r *http.Request) error {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		return badRequest("Could not read request body")
	}

	event := gjson.GetBytes(payload, "event").String()
	botID := gjson.GetBytes(payload, "data.bot_id").String()
	status := gjson.GetBytes(payload, "data.status_changes.status").String()

	if event != "bot.status_change" || status != "done" {
		writeJSON(w, http.StatusOK, body{
			"message":   fmt.Sprintf("Recall event received: %s", event),
			"status":    status,
			"botId":     botID,
			"timestamp": timestamp(),
		})
		return nil
	}

	conversationID := gjson.GetBytes(payload, "data.metadata.conversation_id").String()
	if conversationID == "" {
		writeJSON(w, http.StatusOK, body{
			"message":   "Recording finished but bot carries no conversation metadata",
			"botId":     botID,
			"timestamp": timestamp(),
		})
		return nil
	}
	if h.cfg.ApifyToken == "" || h.cfg.WhaleProcessorActorID == "" {
		return notConfigured("Video processing not configured", body{
			"apifyToken":                 h.cfg.ApifyToken == "",
			"whaleagentProcessorActorId": h.cfg.WhaleProcessorActorID == "",
		})
	}

	transcript, _, err := h.recallClient.FetchTranscript(r.Context(), botID)
	if err != nil {
		return fmt.Errorf("failed to fetch bot transcript: %w", err)
	}
	if transcript == "" {
		writeJSON(w, http.StatusOK, body{
			"message":        "Recording finished but transcript is empty",
			"botId":          botID,
			"conversationId": conversationID,
			"timestamp":      timestamp(),
		})
		return nil
	}

	h.logger.Info("forwarding bot transcript for processing",
		"bot_id", botID,
		"conversation_id", conversationID,
		"transcript_length", len(transcript),
	)

	run, err := h.runner.Run(r.Context(), h.cfg.WhaleProcessorActorID, body{
		"conversationId":   conversationID,
		"transcript":       transcript,
		"transcriptSource": "recall.ai",
		"botId":            botID,
	})
	if err != nil {
		return fmt.Errorf("failed to start transcript processing: %w", err)
	}

	writeJSON(w, http.StatusOK, body{
		"success":          true,
		"apifyRunId":       run.ID,
		"conversationId":   conversationID,
		"transcriptLength": len(transcript),
		"transcriptSource": "recall.ai",
		"botId":            botID,
		"timestamp":        timestamp(),
	})
	return nil
}
