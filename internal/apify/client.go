// Package apify is the client for the job-execution platform that performs
// the pipeline's actual CV parsing, dialing and email sending. Each pipeline
// stage owns one actor; a run, once accepted, has a lifecycle independent of
// the request that started it.
package apify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/recruitflow/pipeline/internal/core"
)

// Client calls the job platform's REST API.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
	logger  *slog.Logger
}

// NewClient creates a job-platform client. baseURL is overridable for tests.
func NewClient(baseURL, token string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

// runResponse mirrors the platform's run-creation envelope.
type runResponse struct {
	Data struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"data"`
}

// Run starts the given actor with the supplied input. A non-2xx platform
// response is returned as an error carrying the upstream status and raw body.
func (c *Client) Run(ctx context.Context, actorID string, input any) (*core.RunInfo, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to encode actor input: %w", err)
	}

	url := fmt.Sprintf("%s/v2/acts/%s/runs", c.baseURL, actorID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build actor run request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("actor run request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("Apify API error: %d - %s", resp.StatusCode, string(raw))
	}

	var run runResponse
	if err := json.Unmarshal(raw, &run); err != nil {
		return nil, fmt.Errorf("failed to decode actor run response: %w", err)
	}

	c.logger.Info("actor run started", "actor", actorID, "run_id", run.Data.ID, "status", run.Data.Status)
	return &core.RunInfo{ID: run.Data.ID, Status: run.Data.Status}, nil
}
