package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/iammuttaqi/gemini-nano-banana/internal/editor"
	"github.com/iammuttaqi/gemini-nano-banana/internal/http/handlers"
	"github.com/iammuttaqi/gemini-nano-banana/internal/http/httpapi"
	"github.com/iammuttaqi/gemini-nano-banana/internal/infra"
	"github.com/iammuttaqi/gemini-nano-banana/internal/providers/genai"
)

func main() {
	// Load .env (optional).
	_ = godotenv.Load()

	// Config is fail-fast: a missing GEMINI_API_KEY stops the process here,
	// before anything listens.
	cfg, err := infra.LoadConfig()
	if err != nil {
		bootLogger := infra.NewLogger("production")
		bootLogger.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := infra.NewLogger(cfg.AppEnv)

	// The client handle is built once and threaded explicitly; nothing reads
	// the credential after this point.
	client, err := genai.NewClient(genai.Options{
		APIKey:  cfg.GeminiAPIKey,
		BaseURL: cfg.GeminiBaseURL,
		Model:   cfg.GeminiModel,
		Logger:  &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build gemini client")
	}

	edit, err := editor.New(client, cfg.EditTimeout, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build editor")
	}

	app := handlers.NewApp(logger, edit)
	router := httpapi.NewRouter(app, cfg, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().
			Str("model", client.Model()).
			Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// Graceful shutdown.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
