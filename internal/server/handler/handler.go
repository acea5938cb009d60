package handler

import (
	"context"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/recruitflow/pipeline/internal/config"
	"github.com/recruitflow/pipeline/internal/core"
	"github.com/recruitflow/pipeline/internal/pipeline"
	"github.com/recruitflow/pipeline/internal/recall"
	"github.com/recruitflow/pipeline/internal/tavus"
)

// transcriber is the slice of the OpenAI client used for speech-to-text.
type transcriber interface {
	CreateTranscription(ctx context.Context, req openai.AudioRequest) (openai.AudioResponse, error)
}

// Handler owns the webhook surface. All collaborators are injected once at
// startup; handlers hold no mutable state of their own.
type Handler struct {
	cfg    *config.Config
	runner core.JobRunner

	zebra *pipeline.CallbackProcessor
	lion  *pipeline.CallbackProcessor
	whale *pipeline.CallbackProcessor

	tavusClient  *tavus.Client
	recallClient *recall.Client
	transcriber  transcriber
	scorer       core.Scorer
	sheet        core.CallSheet

	logger    *slog.Logger
	startedAt time.Time
}

// New assembles the handler set.
func New(
	cfg *config.Config,
	runner core.JobRunner,
	zebra, lion, whale *pipeline.CallbackProcessor,
	tavusClient *tavus.Client,
	recallClient *recall.Client,
	transcriber transcriber,
	scorer core.Scorer,
	sheet core.CallSheet,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		cfg:          cfg,
		runner:       runner,
		zebra:        zebra,
		lion:         lion,
		whale:        whale,
		tavusClient:  tavusClient,
		recallClient: recallClient,
		transcriber:  transcriber,
		scorer:       scorer,
		sheet:        sheet,
		logger:       logger,
		startedAt:    time.Now(),
	}
}
