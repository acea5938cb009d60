// Package app initializes and orchestrates the main components of the
// recruitment pipeline service. It wires together the configuration, the
// provider clients, the per-agent callback processors and the HTTP server.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/recruitflow/pipeline/internal/agent"
	"github.com/recruitflow/pipeline/internal/apify"
	"github.com/recruitflow/pipeline/internal/config"
	"github.com/recruitflow/pipeline/internal/core"
	"github.com/recruitflow/pipeline/internal/db"
	"github.com/recruitflow/pipeline/internal/logger"
	"github.com/recruitflow/pipeline/internal/pipeline"
	"github.com/recruitflow/pipeline/internal/recall"
	"github.com/recruitflow/pipeline/internal/scorer"
	"github.com/recruitflow/pipeline/internal/server"
	"github.com/recruitflow/pipeline/internal/server/handler"
	"github.com/recruitflow/pipeline/internal/sheets"
	"github.com/recruitflow/pipeline/internal/storage"
	"github.com/recruitflow/pipeline/internal/tavus"
	"github.com/recruitflow/pipeline/internal/vapi"
)

// App holds the main application components.
type App struct {
	cfg     *config.Config
	server  *server.Server
	logger  *slog.Logger
	closeDB func()
}

// NewApp sets up the application with all its dependencies.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	logger.Info("initializing recruitment pipeline",
		"server_port", cfg.ServerPort,
		"scoring_model", cfg.ScoringModel,
	)

	sheet, err := sheets.NewStore(ctx, cfg.GoogleCredentialsFile, cfg.SpreadsheetID, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create spreadsheet store: %w", err)
	}

	grader, err := scorer.New(cfg.OpenAIKey, cfg.ScoringModel, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create scorer: %w", err)
	}

	audit := core.AuditStore(storage.NewNopStore())
	closeDB := func() {}
	if cfg.DatabaseURL != "" {
		dbConn, cleanup, err := db.New(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		audit = storage.NewStore(dbConn.DB)
		closeDB = cleanup
		logger.Info("callback audit trail enabled")
	}

	runner := apify.NewClient(cfg.ApifyBaseURL, cfg.ApifyToken, logger)
	voiceClient := vapi.NewClient(cfg.VapiBaseURL, cfg.VapiAPIKey, logger)
	tavusClient := tavus.NewClient(cfg.TavusBaseURL, cfg.TavusAPIKey, logger)
	recallClient := recall.NewClient(cfg.RecallHost, cfg.RecallAPIKey, logger)

	zebra := pipeline.NewCallbackProcessor(agent.Zebra(), voiceClient, grader, sheet, audit, logger)
	lion := pipeline.NewCallbackProcessor(agent.Lion(), voiceClient, grader, sheet, audit, logger)
	whale := pipeline.NewCallbackProcessor(agent.Whale(), tavusClient, grader, sheet, audit, logger)

	speech := openai.NewClient(cfg.OpenAIKey)

	h := handler.New(cfg, runner, zebra, lion, whale, tavusClient, recallClient, speech, grader, sheet, logger)
	httpServer := server.NewServer(cfg, h, logger)

	logger.Info("recruitment pipeline initialized successfully")
	return &App{
		cfg:     cfg,
		server:  httpServer,
		logger:  logger,
		closeDB: closeDB,
	}, nil
}

// Start runs the HTTP server and blocks until shutdown.
func (a *App) Start() error {
	a.logger.Info("starting recruitment pipeline", "server_port", a.cfg.ServerPort)

	if err := a.server.Start(); err != nil {
		a.logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the application cleanly.
func (a *App) Stop() error {
	a.logger.Info("shutting down recruitment pipeline")

	serverErr := a.server.Stop()
	if serverErr != nil {
		a.logger.Error("error during HTTP server shutdown", "error", serverErr)
	}

	a.closeDB()

	if serverErr != nil {
		return serverErr
	}
	a.logger.Info("recruitment pipeline stopped successfully")
	return nil
}

// NewLogger builds the process-wide logger from the loaded configuration.
func NewLogger(cfg *config.Config) *slog.Logger {
	return logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
}
