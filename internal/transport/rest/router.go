package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/feddict/feddict-backend/internal/config"
	"github.com/feddict/feddict-backend/internal/service/glossary"
	"github.com/feddict/feddict-backend/internal/transport/middleware"
)

// RouterDeps carries everything the router needs.
type RouterDeps struct {
	Log     *slog.Logger
	Cfg     *config.Config
	Service *glossary.Service
	DB      dbPinger
	Version string
}

// NewRouter builds the HTTP routing tree: public read endpoints, basic-auth
// guarded write and admin endpoints, and health probes outside the API
// prefix. The returned stop function terminates the rate limiter.
func NewRouter(deps RouterDeps) (http.Handler, func()) {
	terms := NewTermHandler(deps.Service, deps.Log)
	admin := NewAdminHandler(deps.Service, deps.Log)
	health := NewHealthHandler(deps.DB, deps.Version)

	limiter := middleware.NewRateLimiter(time.Minute)

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.Recovery(deps.Log),
		middleware.Logger(deps.Log),
		middleware.CORS(deps.Cfg.CORS),
	)

	r.Get("/health", health.Health)
	r.Get("/health/live", health.Live)
	r.Get("/health/ready", health.Ready)

	r.Route("/api/v1", func(r chi.Router) {
		if limit := deps.Cfg.Server.RateLimitPerMinute; limit > 0 {
			r.Use(limiter.Limit(limit))
		}

		r.Get("/terms", terms.List)
		r.Get("/terms/suggest", terms.Suggest)
		r.Get("/terms/{id}", terms.Get)
		r.Get("/categories", terms.Categories)

		r.Group(func(r chi.Router) {
			r.Use(middleware.BasicAuth(deps.Cfg.Auth))

			r.Post("/terms", terms.Create)
			r.Put("/terms/{id}", terms.Update)
			r.Delete("/terms/{id}", terms.Delete)

			r.Get("/verify-auth", admin.VerifyAuth)

			r.Route("/admin", func(r chi.Router) {
				r.Post("/terms/bulk-delete", admin.BulkDelete)
				r.Post("/terms/delete-all", admin.DeleteAll)
				r.Post("/terms/upload", admin.Ingest)
				r.Post("/cleanup", admin.Cleanup)
				r.Get("/stats", admin.Stats)
			})
		})
	})

	return r, limiter.Stop
}
