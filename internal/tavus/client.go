// Package tavus is the client for the video-avatar interview platform.
package tavus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Conversation is the provider's conversation object. Raw keeps the full
// response body for the diagnostic passthrough endpoint.
type Conversation struct {
	ConversationID string `json:"conversation_id"`
	Status         string `json:"status"`
	Transcript     string `json:"transcript"`
	RecordingURL   string `json:"recording_url"`
	Duration       int    `json:"duration"`
	CallbackURL    string `json:"callback_url"`

	Raw json.RawMessage `json:"-"`
}

// Client calls the video platform's REST API.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
	logger  *slog.Logger
}

// NewClient creates a video-platform client. baseURL is overridable for tests.
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

// GetConversation fetches a conversation by ID.
func (c *Client) GetConversation(ctx context.Context, conversationID string) (*Conversation, error) {
	url := fmt.Sprintf("%s/v2/conversations/%s", c.baseURL, conversationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build conversation request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("conversation request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("Tavus API error: %d - %s", resp.StatusCode, string(raw))
	}

	var conv Conversation
	if err := json.Unmarshal(raw, &conv); err != nil {
		return nil, fmt.Errorf("failed to decode conversation response: %w", err)
	}
	conv.Raw = raw
	return &conv, nil
}

// FetchTranscript recovers a missing transcript by conversation ID. An ended
// conversation with no transcript yet is not an error; the recording URL is
// returned so a pending response can reference it.
func (c *Client) FetchTranscript(ctx context.Context, conversationID string) (string, string, error) {
	conv, err := c.GetConversation(ctx, conversationID)
	if err != nil {
		return "", "", err
	}
	c.logger.Debug("conversation fetched",
		"conversation_id", conversationID,
		"status", conv.Status,
		"transcript_length", len(conv.Transcript),
	)
	return conv.Transcript, conv.RecordingURL, nil
}
