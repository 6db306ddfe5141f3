package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/iammuttaqi/gemini-nano-banana/internal/http/handlers"
	"github.com/iammuttaqi/gemini-nano-banana/internal/infra"
	"github.com/iammuttaqi/gemini-nano-banana/internal/middleware"
)

// NewRouter wires the middleware chain and routes. Only the edit endpoint is
// rate limited; health and presets are cheap and stay open.
func NewRouter(app *handlers.App, cfg *infra.Config, logger infra.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		middleware.RequestID,
		middleware.Logger(logger),
		chimw.Recoverer,
		middleware.CORS(cfg.AllowedOrigins),
	)

	r.Get("/v1/healthz", app.Health)
	r.Get("/v1/prompts", app.Prompts)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute))
		r.Post("/v1/edits", app.EditImage)
	})

	return r
}
