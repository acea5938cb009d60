package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application's configuration values. It is constructed once
// at process start and passed by reference into every handler and component.
type Config struct {
	ServerPort string
	LogLevel   slog.Level
	LogFormat  string

	// Job-execution platform.
	ApifyToken   string
	ApifyBaseURL string
	// One actor per pipeline stage.
	CVParseActorID        string
	ZebraActorID          string
	LionActorID           string
	WhaleActorID          string
	WhaleProcessorActorID string

	// Language model used for scoring and transcription.
	OpenAIKey    string
	ScoringModel string

	// Voice/video providers.
	TavusAPIKey  string
	TavusBaseURL string
	RecallAPIKey string
	RecallHost   string
	VapiAPIKey   string
	VapiBaseURL  string

	// Spreadsheet datastore.
	SpreadsheetID         string
	GoogleCredentialsFile string

	// Optional callback audit trail; disabled when empty.
	DatabaseURL string

	// Optional per-agent webhook secrets, checked against x-webhook-secret.
	ZebraWebhookSecret string
	LionWebhookSecret  string
	WhaleWebhookSecret string
}

// Load reads configuration from environment variables and a .env file, sets
// sensible defaults, and validates required fields. It uses the Viper library
// to handle configuration loading and precedence.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("APIFY_BASE_URL", "https://api.apify.com")
	viper.SetDefault("TAVUS_BASE_URL", "https://tavusapi.com")
	viper.SetDefault("RECALL_HOST", "https://us-west-2.recall.ai")
	viper.SetDefault("VAPI_BASE_URL", "https://api.vapi.ai")
	viper.SetDefault("SCORING_MODEL", "gpt-4o-mini")
	viper.SetDefault("GOOGLE_APPLICATION_CREDENTIALS", "keys/service-account.json")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Error("failed to read config file", "error", err)
		}
	}

	// Scoring and persistence are needed by every callback; fail fast.
	// Per-stage actor IDs are checked by the handlers that use them so a
	// partially configured deployment can still serve the other stages.
	if viper.GetString("OPENAI_API_KEY") == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set")
	}
	if viper.GetString("SPREADSHEET_ID") == "" {
		return nil, fmt.Errorf("SPREADSHEET_ID must be set")
	}

	return &Config{
		ServerPort:            viper.GetString("SERVER_PORT"),
		LogLevel:              parseLogLevel(viper.GetString("LOG_LEVEL")),
		LogFormat:             viper.GetString("LOG_FORMAT"),
		ApifyToken:            viper.GetString("APIFY_TOKEN"),
		ApifyBaseURL:          viper.GetString("APIFY_BASE_URL"),
		CVParseActorID:        viper.GetString("APIFY_ACTOR_ID"),
		ZebraActorID:          viper.GetString("ZEBRAAGENT_ACTOR_ID"),
		LionActorID:           viper.GetString("LIONAGENT_ACTOR_ID"),
		WhaleActorID:          viper.GetString("WHALEAGENT_ACTOR_ID"),
		WhaleProcessorActorID: viper.GetString("WHALEAGENT_PROCESSOR_ACTOR_ID"),
		OpenAIKey:             viper.GetString("OPENAI_API_KEY"),
		ScoringModel:          viper.GetString("SCORING_MODEL"),
		TavusAPIKey:           viper.GetString("TAVUS_API_KEY"),
		TavusBaseURL:          viper.GetString("TAVUS_BASE_URL"),
		RecallAPIKey:          viper.GetString("RECALL_API_KEY"),
		RecallHost:            viper.GetString("RECALL_HOST"),
		VapiAPIKey:            viper.GetString("VAPI_API_KEY"),
		VapiBaseURL:           viper.GetString("VAPI_BASE_URL"),
		SpreadsheetID:         viper.GetString("SPREADSHEET_ID"),
		GoogleCredentialsFile: viper.GetString("GOOGLE_APPLICATION_CREDENTIALS"),
		DatabaseURL:           viper.GetString("DATABASE_URL"),
		ZebraWebhookSecret:    viper.GetString("ZEBRAAGENT_WEBHOOK_SECRET"),
		LionWebhookSecret:     viper.GetString("LIONAGENT_WEBHOOK_SECRET"),
		WhaleWebhookSecret:    viper.GetString("WHALEAGENT_WEBHOOK_SECRET"),
	}, nil
}

// parseLogLevel maps the configured log level string onto slog.Level.
func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "info":
		return slog.LevelInfo
	default:
		slog.Warn("unrecognized log level, defaulting to info", "provided", s)
		return slog.LevelInfo
	}
}
