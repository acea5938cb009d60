package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckTavusConversation is a diagnostic passthrough: it fetches a video
// conversation and returns the provider's raw object next to a short summary,
// so an operator can see exactly what the platform holds for a stuck call.
// The conversation ID comes from the JSON body, or from the URL on the
// browser-friendly GET alias.
func (h *Handler) CheckTavusConversation(w http.ResponseWriter, r *http.Request) error {
	conversationID := chi.URLParam(r, "conversationID")
	if conversationID == "" {
		var req struct {
			ConversationID string `json:"conversationId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			return badRequest("Invalid JSON body")
		}
		conversationID = req.ConversationID
	}
	if conversationID == "" {
		return badRequest("Missing conversationId")
	}
	if h.cfg.TavusAPIKey == "" {
		return notConfigured("Video platform not configured", body{"tavusApiKey": true})
	}

	conv, err := h.tavusClient.GetConversation(r.Context(), conversationID)
	if err != nil {
		return err
	}

	transcript := "Not available"
	if conv.Transcript != "" {
		transcript = "Available"
	}

	writeJSON(w, http.StatusOK, body{
		"success":          true,
		"conversation":     json.RawMessage(conv.Raw),
		"status":           conv.Status,
		"transcript":       transcript,
		"transcriptLength": len(conv.Transcript),
		"recording":        orNotAvailable(conv.RecordingURL),
		"callbackUrl":      orNotAvailable(conv.CallbackURL),
		"timestamp":        timestamp(),
	})
	return nil
}
