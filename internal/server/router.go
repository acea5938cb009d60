package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/recruitflow/pipeline/internal/config"
	"github.com/recruitflow/pipeline/internal/server/handler"
)

// NewRouter creates and configures a new HTTP router with middleware and API routes.
// Callers are external platforms with fixed form URLs, so routes keep the
// exact paths those platforms were configured with.
func NewRouter(cfg *config.Config, h *handler.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Configure middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "x-webhook-secret"},
	}))

	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = w.Write([]byte(`{"error":"Method not allowed"}`))
	})

	r.Get("/", handler.Wrap(logger, h.Index))

	r.Route("/api", func(r chi.Router) {
		r.Get("/index", handler.Wrap(logger, h.Index))
		r.Get("/health", handler.Wrap(logger, h.Health))
		r.Get("/debug-env", handler.Wrap(logger, h.DebugEnv))

		r.Post("/webhook", handler.Wrap(logger, h.CVWebhook))

		r.Post("/zebraagent-trigger", handler.Wrap(logger, h.ZebraTrigger))
		r.With(requireSecret(cfg.ZebraWebhookSecret)).
			Post("/zebraagent-callback", handler.Wrap(logger, h.ZebraCallback))

		r.Post("/lionagent-trigger", handler.Wrap(logger, h.LionTrigger))
		r.With(requireSecret(cfg.LionWebhookSecret)).
			Post("/lionagent-callback", handler.Wrap(logger, h.LionCallback))

		r.Post("/whaleagent-trigger", handler.Wrap(logger, h.WhaleTrigger))
		r.With(requireSecret(cfg.WhaleWebhookSecret)).
			Post("/whaleagent-callback", handler.Wrap(logger, h.WhaleCallback))
		r.Post("/whaleagent-retry", handler.Wrap(logger, h.WhaleRetry))

		r.Post("/recall-webhook", handler.Wrap(logger, h.RecallWebhook))
		r.Post("/check-tavus-conversation", handler.Wrap(logger, h.CheckTavusConversation))
		r.Get("/check-tavus/{conversationID}", handler.Wrap(logger, h.CheckTavusConversation))

		r.Post("/transcribe-interview", handler.Wrap(logger, h.Transcribe))
		r.Post("/transcribe", handler.Wrap(logger, h.Transcribe))
	})

	return r
}

// requireSecret rejects callback deliveries whose x-webhook-secret header
// does not match the configured secret. An empty configured secret disables
// the check; the voice platforms cannot always send custom headers.
func requireSecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret != "" && r.Header.Get("x-webhook-secret") != secret {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Invalid webhook secret"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
