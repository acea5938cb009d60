package scorer

import (
	"context"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"github.com/recruitflow/pipeline/internal/core"
)

// gradingTemperature keeps the model close to deterministic so repeated
// evaluations of the same transcript agree.
const gradingTemperature = 0.2

// completer is the slice of the OpenAI client the scorer needs.
type completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Scorer grades transcripts through the OpenAI chat completion API.
type Scorer struct {
	client  completer
	model   string
	prompts *promptSet
	logger  *slog.Logger
}

// New creates a Scorer using the given API key and model name.
func New(apiKey, model string, logger *slog.Logger) (*Scorer, error) {
	prompts, err := loadPrompts()
	if err != nil {
		return nil, err
	}
	return &Scorer{
		client:  openai.NewClient(apiKey),
		model:   model,
		prompts: prompts,
		logger:  logger,
	}, nil
}

// Score builds the role-specific prompt, invokes the model and parses its
// answer. A model/API failure is returned as an error; an unparseable answer
// is not, it degrades to the scale's default score.
func (s *Scorer) Score(ctx context.Context, req *core.ScoreRequest) (*core.ScoreResult, error) {
	prompt, err := s.prompts.buildPrompt(req)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: gradingTemperature,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You evaluate recruitment interviews. Follow the scoring format exactly.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("scoring request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("scoring response contained no choices")
	}

	raw := resp.Choices[0].Message.Content
	result := parseScore(req.Scale, raw)
	s.logger.Debug("transcript scored",
		"scale", req.Scale,
		"score", result.Score,
		"response_length", len(raw),
	)
	return result, nil
}
