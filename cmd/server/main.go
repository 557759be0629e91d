// HealthBot - health triage assistant server
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/triagelabs/healthbot/internal/api"
	"github.com/triagelabs/healthbot/internal/assistant"
	"github.com/triagelabs/healthbot/internal/config"
	"github.com/triagelabs/healthbot/internal/llm"
	"github.com/triagelabs/healthbot/internal/middleware"
	"github.com/triagelabs/healthbot/internal/store"
	"github.com/triagelabs/healthbot/web"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "port", cfg.Port, "dev", cfg.IsDevelopment())

	// Initialize dependencies.
	history, err := newHistoryStore(cfg)
	if err != nil {
		slog.Error("Failed to initialize history storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := history.Close(); closeErr != nil {
			slog.Error("Failed to close history storage", "error", closeErr)
		}
	}()

	if err := history.Ping(context.Background()); err != nil {
		slog.Error("History storage health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("History storage ready", "backend", cfg.HistoryBackend)

	client, aiEnabled := llm.FromConfig(llm.Config{
		APIKey:    cfg.OpenAI.APIKey,
		Model:     cfg.OpenAI.Model,
		BaseURL:   cfg.OpenAI.BaseURL,
		MaxTokens: cfg.OpenAI.MaxTokens,
	})

	bot := assistant.New(assistant.Config{
		Name:           cfg.AssistantName,
		Client:         client,
		UseAIByDefault: aiEnabled,
		AITimeout:      cfg.OpenAI.Timeout,
	})
	slog.Info("Assistant ready", "name", bot.Name(), "ai_enabled", bot.AIEnabled())

	// Initialize handlers.
	baseHandler := api.NewHandler(bot, history)
	chatHandler := api.NewChatHandler(baseHandler)
	healthHandler := api.NewHealthHandler(history)

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS(corsOrigins(cfg)))

	healthHandler.RegisterHealth(r)
	chatHandler.RegisterRoutes(r)

	// Embedded chat UI.
	r.Handle("/chatbox", web.ChatboxHandler())

	// Create server. WriteTimeout stays comfortably above the AI reply
	// timeout so a slow model falls back instead of truncating responses.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server.
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}

// newHistoryStore selects the history backend. Config validation has
// already constrained the backend name.
func newHistoryStore(cfg *config.Config) (store.Store, error) {
	if cfg.HistoryBackend == config.BackendSQLite {
		return store.NewSQLite(cfg.DBPath)
	}
	return store.NewJSONFile(cfg.HistoryPath)
}

// corsOrigins pins cross-origin access to the deployed frontend when one
// is configured; development stays wide open.
func corsOrigins(cfg *config.Config) []string {
	if cfg.IsDevelopment() {
		return []string{"*"}
	}
	return []string{cfg.FrontendURL}
}
