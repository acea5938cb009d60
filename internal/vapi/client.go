// Package vapi is the client for the conversational-voice platform that
// places the screening and technical interview calls.
package vapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Call is the subset of the provider's call object the pipeline reads.
type Call struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	Transcript   string `json:"transcript"`
	RecordingURL string `json:"recordingUrl"`
}

// Client calls the voice platform's REST API.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	logger  *slog.Logger
}

// NewClient creates a voice-platform client. baseURL is overridable for tests.
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

// GetCall fetches a call by ID.
func (c *Client) GetCall(ctx context.Context, callID string) (*Call, error) {
	url := fmt.Sprintf("%s/call/%s", c.baseURL, callID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build call request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("Vapi API error: %d - %s", resp.StatusCode, string(raw))
	}

	var call Call
	if err := json.Unmarshal(raw, &call); err != nil {
		return nil, fmt.Errorf("failed to decode call response: %w", err)
	}
	return &call, nil
}

// FetchTranscript recovers a missing transcript by call ID.
func (c *Client) FetchTranscript(ctx context.Context, callID string) (string, string, error) {
	call, err := c.GetCall(ctx, callID)
	if err != nil {
		return "", "", err
	}
	c.logger.Debug("call fetched", "call_id", callID, "status", call.Status, "transcript_length", len(call.Transcript))
	return call.Transcript, call.RecordingURL, nil
}
