package handler

import (
	"encoding/json"
	"net/http"

	"github.com/recruitflow/pipeline/internal/core"
)

// WhaleRetry re-checks a video conversation whose original callback arrived
// before the transcript was ready. When the transcript now exists the call is
// re-run through the regular video pipeline, so retries and live callbacks
// score and persist identically.
func (h *Handler) WhaleRetry(w http.ResponseWriter, r *http.Request) error {
	var req struct {
		ConversationID string `json:"conversationId"`
		RowNumber      int    `json:"rowNumber"`
		CandidateName  string `json:"candidateName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return badRequest("Invalid JSON body")
	}
	if req.ConversationID == "" {
		return badRequest("Missing conversationId")
	}
	if h.cfg.TavusAPIKey == "" {
		return notConfigured("Video platform not configured", body{"tavusApiKey": true})
	}

	conv, err := h.tavusClient.GetConversation(r.Context(), req.ConversationID)
	if err != nil {
		return err
	}

	if conv.Transcript == "" {
		writeJSON(w, http.StatusOK, body{
			"success":        false,
			"message":        "Transcript still not available",
			"conversationId": req.ConversationID,
			"status":         conv.Status,
			"recordingUrl":   orNotAvailable(conv.RecordingURL),
			"suggestion":     "Try again in a few minutes or review the recording manually",
			"timestamp":      timestamp(),
		})
		return nil
	}

	payload, err := json.Marshal(body{
		"conversation_id": conv.ConversationID,
		"status":          "ended",
		"transcript":      conv.Transcript,
		"recording_url":   conv.RecordingURL,
		"duration":        conv.Duration,
		"candidate_name":  req.CandidateName,
		"rowNumber":       req.RowNumber,
	})
	if err != nil {
		return err
	}

	res, err := h.whale.Process(r.Context(), payload)
	if err != nil {
		return err
	}
	if res.Kind != core.Relevant {
		writeJSON(w, http.StatusOK, body{"message": res.Message, "timestamp": timestamp()})
		return nil
	}

	resp := whaleSuccess(res)
	resp["message"] = "Transcript recovered and scored"
	writeJSON(w, http.StatusOK, resp)
	return nil
}
