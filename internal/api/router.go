package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/Showroom/internal/config"
	"github.com/MikeSquared-Agency/Showroom/internal/hermes"
	"github.com/MikeSquared-Agency/Showroom/internal/reviews"
	"github.com/MikeSquared-Agency/Showroom/internal/scoring"
)

// NewRouter builds the public API. h may be nil when event publishing is
// disabled.
func NewRouter(cfg *config.Config, m *scoring.Matcher, rs reviews.Store, h hermes.Client, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(cfg.Server.RateLimitPerMinute))

	s := mustCompileSchemas()
	catalogH := NewCatalogHandler()
	match := NewMatchHandler(m, h, s.match, cfg.Matching.DefaultBudget, logger)
	fin := NewFinanceHandler(cfg.Finance, h, s.finance, logger)
	rev := NewReviewsHandler(rs, h, s.review, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog/cars", catalogH.List)
		r.Get("/catalog/cars/{id}", catalogH.Get)
		r.Get("/quiz/questions", catalogH.Questions)

		r.Post("/match", match.Match)
		r.Post("/match/explain/{car_id}", match.Explain)

		r.Post("/finance/compare", fin.Compare)

		r.Get("/reviews", rev.List)
		r.Post("/reviews", rev.Create)
		r.Post("/reviews/{id}/helpful", rev.Helpful)
		r.Get("/reviews/summary/{car_id}", rev.Summary)
		r.Get("/reviews/friends/{car_id}", rev.Friends)
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
