package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// CVWebhook starts a CV-parse run on the job platform. When the platform is
// not configured yet it answers 200 with a diagnostic instead of failing, so
// the upload form keeps working during initial setup.
func (h *Handler) CVWebhook(w http.ResponseWriter, r *http.Request) error {
	var req struct {
		FileID        string `json:"fileId"`
		ApplicantName string `json:"applicantName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return badRequest("Invalid JSON body")
	}
	if req.FileID == "" {
		return badRequest("Missing fileId")
	}

	if h.cfg.ApifyToken == "" || h.cfg.CVParseActorID == "" {
		writeJSON(w, http.StatusOK, body{
			"message":      "Webhook working - CV parsing not configured yet",
			"receivedData": body{"fileId": req.FileID, "applicantName": req.ApplicantName},
			"timestamp":    timestamp(),
			"note":         "Set APIFY_TOKEN and APIFY_ACTOR_ID to enable CV processing",
		})
		return nil
	}

	run, err := h.runner.Run(r.Context(), h.cfg.CVParseActorID, body{
		"fileId":        req.FileID,
		"applicantName": req.ApplicantName,
	})
	if err != nil {
		return fmt.Errorf("failed to start CV processing: %w", err)
	}

	writeJSON(w, http.StatusOK, body{
		"success":    true,
		"message":    "CV processing started",
		"apifyRunId": run.ID,
		"status":     "processing",
		"timestamp":  timestamp(),
	})
	return nil
}

// ZebraTrigger starts an automated phone screening call.
func (h *Handler) ZebraTrigger(w http.ResponseWriter, r *http.Request) error {
	var req struct {
		Name       string `json:"name"`
		Phone      string `json:"phone"`
		Row        int    `json:"row"`
		JobOrderID string `json:"jobOrderId"`
		JobTitle   string `json:"jobTitle"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return badRequest("Invalid JSON body")
	}
	if req.Name == "" || req.Phone == "" {
		return badRequest("Missing required fields: name or phone")
	}
	if h.cfg.ApifyToken == "" || h.cfg.ZebraActorID == "" {
		return notConfigured("ZebraAgent not configured", body{
			"apifyToken":        h.cfg.ApifyToken == "",
			"zebraagentActorId": h.cfg.ZebraActorID == "",
		})
	}

	jobOrderID := req.JobOrderID
	if jobOrderID == "" {
		jobOrderID = "unknown"
	}
	jobTitle := req.JobTitle
	if jobTitle == "" {
		jobTitle = "General Position"
	}

	h.logger.Info("starting phone screening", "candidate", req.Name, "row", req.Row)

	run, err := h.runner.Run(r.Context(), h.cfg.ZebraActorID, body{
		"name":       req.Name,
		"phone":      req.Phone,
		"row":        req.Row,
		"jobOrderId": jobOrderID,
		"jobTitle":   jobTitle,
	})
	if err != nil {
		return fmt.Errorf("failed to start phone screening: %w", err)
	}

	writeJSON(w, http.StatusOK, body{
		"success":       true,
		"message":       "ZebraAgent phone screening started",
		"apifyRunId":    run.ID,
		"candidateName": req.Name,
		"phone":         req.Phone,
		"row":           req.Row,
		"jobTitle":      jobTitle,
		"timestamp":     timestamp(),
	})
	return nil
}

// LionTrigger starts a technical phone interview.
func (h *Handler) LionTrigger(w http.ResponseWriter, r *http.Request) error {
	var req struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Row   int    `json:"row"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return badRequest("Invalid JSON body")
	}
	if req.Name == "" || req.Phone == "" {
		return badRequest("Missing required fields: name or phone")
	}
	if h.cfg.ApifyToken == "" || h.cfg.LionActorID == "" {
		return notConfigured("LionAgent not configured", body{
			"apifyToken":       h.cfg.ApifyToken == "",
			"lionagentActorId": h.cfg.LionActorID == "",
		})
	}

	h.logger.Info("starting technical interview", "candidate", req.Name, "row", req.Row)

	run, err := h.runner.Run(r.Context(), h.cfg.LionActorID, body{
		"name":  req.Name,
		"phone": req.Phone,
		"row":   req.Row,
	})
	if err != nil {
		return fmt.Errorf("failed to start technical interview: %w", err)
	}

	writeJSON(w, http.StatusOK, body{
		"success":       true,
		"message":       "LionAgent technical interview started",
		"apifyRunId":    run.ID,
		"candidateName": req.Name,
		"phone":         req.Phone,
		"row":           req.Row,
		"timestamp":     timestamp(),
	})
	return nil
}

// WhaleTrigger creates a video interview and emails the candidate a link.
func (h *Handler) WhaleTrigger(w http.ResponseWriter, r *http.Request) error {
	var req struct {
		CandidateName  string `json:"candidateName"`
		CandidateEmail string `json:"candidateEmail"`
		Row            int    `json:"row"`
		CustomMessage  string `json:"customMessage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return badRequest("Invalid JSON body")
	}
	if req.CandidateName == "" || req.CandidateEmail == "" {
		return badRequest("Missing required fields: candidateName or candidateEmail")
	}
	if h.cfg.ApifyToken == "" || h.cfg.WhaleActorID == "" {
		return notConfigured("WhaleAgent not configured", body{
			"apifyToken":        h.cfg.ApifyToken == "",
			"whaleagentActorId": h.cfg.WhaleActorID == "",
		})
	}

	h.logger.Info("creating video interview", "candidate", req.CandidateName, "row", req.Row)

	run, err := h.runner.Run(r.Context(), h.cfg.WhaleActorID, body{
		"action":         "create_interview",
		"candidateName":  req.CandidateName,
		"candidateEmail": req.CandidateEmail,
		"row":            req.Row,
		"customMessage":  req.CustomMessage,
		"sendEmail":      true,
	})
	if err != nil {
		return fmt.Errorf("failed to create video interview: %w", err)
	}

	writeJSON(w, http.StatusOK, body{
		"success":        true,
		"message":        "WhaleAgent video interview creation started",
		"apifyRunId":     run.ID,
		"candidateName":  req.CandidateName,
		"candidateEmail": req.CandidateEmail,
		"row":            req.Row,
		"timestamp":      timestamp(),
	})
	return nil
}
