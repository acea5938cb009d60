// Package handler provides the HTTP handlers for the recruitment pipeline's
// webhook surface. Every endpoint answers structured JSON on both success and
// failure; irrelevant or not-yet-ready events are valid 200 outcomes.
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// body is shorthand for an ad-hoc JSON response object.
type body map[string]any

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// apiError carries an error message plus the structured fields that belong in
// the response body, e.g. the missing-configuration map.
type apiError struct {
	status  int
	message string
	fields  body
}

func (e *apiError) Error() string { return e.message }

// badRequest reports invalid caller input.
func badRequest(message string) *apiError {
	return &apiError{status: http.StatusBadRequest, message: message}
}

// notConfigured reports absent platform configuration, naming which keys are
// unset so the operator can fix the deployment.
func notConfigured(message string, missing body) *apiError {
	return &apiError{status: http.StatusInternalServerError, message: message, fields: body{"missing": missing}}
}

// APIFunc is a handler that may fail; failures are rendered by Wrap.
type APIFunc func(w http.ResponseWriter, r *http.Request) error

// Wrap is the single recovery boundary: any error or panic escaping a handler
// becomes a uniform {error, details, timestamp} response.
func Wrap(logger *slog.Logger, fn APIFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("handler panicked", "path", r.URL.Path, "panic", rec)
				writeJSON(w, http.StatusInternalServerError, body{
					"error":     "Internal server error",
					"details":   "unexpected failure",
					"timestamp": time.Now().UTC().Format(time.RFC3339),
				})
			}
		}()

		err := fn(w, r)
		if err == nil {
			return
		}

		if apiErr, ok := err.(*apiError); ok {
			resp := body{"error": apiErr.message}
			for k, v := range apiErr.fields {
				resp[k] = v
			}
			if apiErr.status >= http.StatusInternalServerError {
				resp["timestamp"] = time.Now().UTC().Format(time.RFC3339)
				logger.Error("request failed", "path", r.URL.Path, "error", apiErr.message)
			}
			writeJSON(w, apiErr.status, resp)
			return
		}

		logger.Error("request failed", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, body{
			"error":     "Request failed",
			"details":   err.Error(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// orNotAvailable substitutes the placeholder the callers expect for empty
// optional URLs.
func orNotAvailable(s string) string {
	if s == "" {
		return "Not available"
	}
	return s
}

// durationMinutes renders a call duration rounded to the nearest whole
// minute, the form the spreadsheet consumers read.
func durationMinutes(seconds int) string {
	return fmt.Sprintf("%d minutes", (seconds+30)/60)
}
