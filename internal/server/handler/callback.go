package handler

import (
	"io"
	"net/http"

	"github.com/recruitflow/pipeline/internal/core"
	"github.com/recruitflow/pipeline/internal/pipeline"
)

// resultBody builds the agent-specific success body for a processed callback.
type resultBody func(res *pipeline.Result) body

// callback runs one agent's pipeline over the raw payload and renders the
// outcome. Ignored and Pending outcomes answer 200 with a diagnostic message
// and no side effects; only upstream or persistence failures become 500s.
func (h *Handler) callback(w http.ResponseWriter, r *http.Request, p *pipeline.CallbackProcessor, success resultBody) error {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		return badRequest("Could not read request body")
	}

	res, err := p.Process(r.Context(), payload)
	if err != nil {
		return err
	}

	switch res.Kind {
	case core.Ignored:
		writeJSON(w, http.StatusOK, body{"message": res.Message})
	case core.Pending:
		resp := body{"message": res.Message, "timestamp": timestamp()}
		if res.Event != nil {
			if res.Event.ConversationID != "" {
				resp["conversationId"] = res.Event.ConversationID
			}
			resp["recordingUrl"] = orNotAvailable(res.Event.RecordingURL)
		}
		writeJSON(w, http.StatusOK, resp)
	default:
		writeJSON(w, http.StatusOK, success(res))
	}
	return nil
}

// ZebraCallback scores a completed phone screening call.
func (h *Handler) ZebraCallback(w http.ResponseWriter, r *http.Request) error {
	return h.callback(w, r, h.zebra, func(res *pipeline.Result) body {
		return body{
			"success":          true,
			"message":          "Phone screening scored",
			"score":            res.Score.Score,
			"candidateName":    res.Event.CandidateName,
			"row":              res.Event.RowNumber,
			"transcriptLength": len(res.Event.Transcript),
			"timestamp":        timestamp(),
		}
	})
}

// LionCallback scores a completed technical phone interview.
func (h *Handler) LionCallback(w http.ResponseWriter, r *http.Request) error {
	return h.callback(w, r, h.lion, func(res *pipeline.Result) body {
		return body{
			"success":       true,
			"message":       "Technical interview scored",
			"score":         res.Score.Score,
			"candidateName": res.Event.CandidateName,
			"jobTitle":      res.Event.JobTitle,
			"row":           res.Event.RowNumber,
			"timestamp":     timestamp(),
		}
	})
}

// WhaleCallback scores a completed video interview.
func (h *Handler) WhaleCallback(w http.ResponseWriter, r *http.Request) error {
	return h.callback(w, r, h.whale, whaleSuccess)
}

func whaleSuccess(res *pipeline.Result) body {
	return body{
		"success":          true,
		"message":          "Video interview scored",
		"score":            res.Score.Score,
		"conversationId":   res.Event.ConversationID,
		"transcriptLength": len(res.Event.Transcript),
		"duration":         durationMinutes(res.Event.Duration),
		"recordingUrl":     orNotAvailable(res.Event.RecordingURL),
		"timestamp":        timestamp(),
	}
}
