// Package recall is the client for the meeting-bot provider that records
// video interviews as an alternative to the avatar platform. Its transcripts
// are segmented per speaker and need flattening before scoring.
package recall

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Word is a single recognized word in a transcript segment.
type Word struct {
	Text string `json:"text"`
}

// Segment is one speaker turn in the bot's transcript.
type Segment struct {
	Speaker string `json:"speaker"`
	Words   []Word `json:"words"`
}

// Client calls the meeting-bot provider's REST API.
type Client struct {
	host   string
	apiKey string
	httpc  *http.Client
	logger *slog.Logger
}

// NewClient creates a meeting-bot client. host is overridable for tests.
func NewClient(host, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		host:   host,
		apiKey: apiKey,
		httpc:  &http.Client{Timeout: 30 * time.Second},
		logger: logger,
	}
}

// GetTranscript fetches the segmented transcript for a completed bot.
func (c *Client) GetTranscript(ctx context.Context, botID string) ([]Segment, error) {
	url := fmt.Sprintf("%s/api/v1/bot/%s/transcript", c.host, botID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build transcript request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transcript request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("Recall API error: %d - %s", resp.StatusCode, string(raw))
	}

	var segments []Segment
	if err := json.Unmarshal(raw, &segments); err != nil {
		return nil, fmt.Errorf("failed to decode transcript response: %w", err)
	}
	return segments, nil
}

// Flatten converts segmented transcript data into "{speaker}: {joined words}"
// lines joined by blank lines, preserving segment order.
func Flatten(segments []Segment) string {
	var lines []string
	for _, seg := range segments {
		words := make([]string, 0, len(seg.Words))
		for _, w := range seg.Words {
			words = append(words, w.Text)
		}
		lines = append(lines, fmt.Sprintf("%s: %s", seg.Speaker, strings.Join(words, " ")))
	}
	return strings.Join(lines, "\n\n")
}

// FetchTranscript recovers a transcript by bot ID, flattened for scoring.
// The provider exposes no recording URL on this endpoint.
func (c *Client) FetchTranscript(ctx context.Context, botID string) (string, string, error) {
	segments, err := c.GetTranscript(ctx, botID)
	if err != nil {
		return "", "", err
	}
	return Flatten(segments), "", nil
}
