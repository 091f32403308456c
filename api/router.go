package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gridiron-analytics/gridrank/api/handlers"
	predictionservice "github.com/gridiron-analytics/gridrank/app/modules/prediction/application"
	rankingservice "github.com/gridiron-analytics/gridrank/app/modules/ranking/application"
	ratingservice "github.com/gridiron-analytics/gridrank/app/modules/rating/application"
)

// NewRouter wires every module's handlers onto one chi router, with the
// metrics and health endpoints the deployment probes expect.
func NewRouter(
	ratingSvc ratingservice.Service,
	rankingSvc rankingservice.Service,
	predictionSvc predictionservice.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	rating := handlers.NewRatingHandlers(ratingSvc)
	ranking := handlers.NewRankingHandlers(rankingSvc)
	prediction := handlers.NewPredictionHandlers(predictionSvc)

	r.Post("/games/{gameID}/process", rating.ProcessGame)

	r.Get("/rankings", ranking.GetRankings)
	r.Get("/rankings/export", ranking.ExportRankings)
	r.Get("/teams/{name}/sos", ranking.GetSOS)
	r.Get("/teams/{name}/chart", ranking.GetRatingChart)
	r.Post("/snapshots", ranking.SaveSnapshot)
	r.Post("/seasons/{year}/reset", ranking.ResetSeason)

	r.Post("/predictions", prediction.Predict)
	r.Post("/predictions/backfill", prediction.Backfill)
	r.Get("/predictions/accuracy", prediction.GetAccuracy)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if registry != nil {
		r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	return r
}
