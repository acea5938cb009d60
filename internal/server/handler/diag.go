package handler

import (
	"net/http"
	"time"
)

const version = "2.0.0"

// Health reports liveness plus which integrations are configured. Values are
// never echoed, only presence.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, body{
		"status":      "healthy",
		"version":     version,
		"uptime":      time.Since(h.startedAt).Round(time.Second).String(),
		"timestamp":   timestamp(),
		"environment": h.configPresence(),
	})
	return nil
}

// Index lists the webhook surface so a browser hit on the root is useful.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, body{
		"message": "Recruitment pipeline webhook service",
		"availableEndpoints": []string{
			"GET  /api/index",
			"GET  /api/health",
			"GET  /api/debug-env",
			"POST /api/webhook",
			"POST /api/zebraagent-trigger",
			"POST /api/zebraagent-callback",
			"POST /api/lionagent-trigger",
			"POST /api/lionagent-callback",
			"POST /api/whaleagent-trigger",
			"POST /api/whaleagent-callback",
			"POST /api/whaleagent-retry",
			"POST /api/recall-webhook",
			"POST /api/check-tavus-conversation",
			"POST /api/transcribe-interview",
		},
		"timestamp": timestamp(),
	})
	return nil
}

// DebugEnv exposes configuration presence for deployment troubleshooting.
func (h *Handler) DebugEnv(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, body{
		"environment": h.configPresence(),
		"timestamp":   timestamp(),
	})
	return nil
}

func (h *Handler) configPresence() body {
	return body{
		"apifyToken":                 h.cfg.ApifyToken != "",
		"apifyActorId":               h.cfg.CVParseActorID != "",
		"zebraagentActorId":          h.cfg.ZebraActorID != "",
		"lionagentActorId":           h.cfg.LionActorID != "",
		"whaleagentActorId":          h.cfg.WhaleActorID != "",
		"whaleagentProcessorActorId": h.cfg.WhaleProcessorActorID != "",
		"openaiApiKey":               h.cfg.OpenAIKey != "",
		"tavusApiKey":                h.cfg.TavusAPIKey != "",
		"recallApiKey":               h.cfg.RecallAPIKey != "",
		"vapiApiKey":                 h.cfg.VapiAPIKey != "",
		"spreadsheetId":              h.cfg.SpreadsheetID != "",
		"databaseUrl":                h.cfg.DatabaseURL != "",
	}
}
