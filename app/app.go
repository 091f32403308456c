package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/gridiron-analytics/gridrank/api"
	"github.com/gridiron-analytics/gridrank/app/eventbus"
	predictionservice "github.com/gridiron-analytics/gridrank/app/modules/prediction/application"
	rankingservice "github.com/gridiron-analytics/gridrank/app/modules/ranking/application"
	ratingservice "github.com/gridiron-analytics/gridrank/app/modules/rating/application"
	ratingevents "github.com/gridiron-analytics/gridrank/app/modules/rating/events"
	"github.com/gridiron-analytics/gridrank/config"
	"github.com/gridiron-analytics/gridrank/internal/db/bundb"
	"github.com/gridiron-analytics/gridrank/internal/observability"
	"github.com/gridiron-analytics/gridrank/internal/provider"
)

// App wires configuration, storage, the event bus, and the three module
// services behind one HTTP surface.
type App struct {
	Cfg               *config.Config
	RatingService     ratingservice.Service
	RankingService    rankingservice.Service
	PredictionService predictionservice.Service
	Provider          *provider.Client
	Registry          *prometheus.Registry

	logger   *slog.Logger
	db       *bundb.DBService
	eventBus eventbus.EventBus
	server   *http.Server
}

// NewApp initializes the application with the necessary services and configuration.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := observability.NewLogger(cfg.Observability.Environment)

	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database service: %w", err)
	}

	bus := eventbus.New(logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	db := dbService.GetDB()
	ratingSvc := ratingservice.NewRatingService(
		dbService.Team,
		dbService.Game,
		bus,
		logger,
		observability.NewOperationMetrics(registry, "rating"),
		observability.NewTracer("rating"),
		db,
		cfg.Engine,
	)
	rankingSvc := rankingservice.NewRankingService(
		dbService.Team,
		dbService.Game,
		dbService.Snapshot,
		bus,
		logger,
		observability.NewOperationMetrics(registry, "ranking"),
		observability.NewTracer("ranking"),
		db,
		cfg.Engine,
	)
	predictionSvc := predictionservice.NewPredictionService(
		dbService.Team,
		dbService.Game,
		dbService.Snapshot,
		dbService.Prediction,
		bus,
		logger,
		observability.NewOperationMetrics(registry, "prediction"),
		observability.NewTracer("prediction"),
		db,
		cfg.Engine,
	)

	a := &App{
		Cfg:               cfg,
		RatingService:     ratingSvc,
		RankingService:    rankingSvc,
		PredictionService: predictionSvc,
		Provider:          provider.NewClient(cfg.Provider.BaseURL, cfg.Provider.APIKey),
		Registry:          registry,
		logger:            logger,
		db:                dbService,
		eventBus:          bus,
	}

	if err := a.subscribeAuditLog(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// subscribeAuditLog attaches a logging consumer to the processing topic so
// every applied game leaves a trace independent of the request path.
func (a *App) subscribeAuditLog(ctx context.Context) error {
	messages, err := a.eventBus.Subscribe(ctx, ratingevents.GameProcessedTopic)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", ratingevents.GameProcessedTopic, err)
	}
	go func() {
		for msg := range messages {
			a.logGameProcessed(msg)
		}
	}()
	return nil
}

func (a *App) logGameProcessed(msg *message.Message) {
	defer msg.Ack()
	a.logger.Info("Game applied to ratings",
		slog.String("message_id", msg.UUID),
		slog.String("payload", string(msg.Payload)),
	)
}

// Start runs the HTTP server until the context is canceled.
func (a *App) Start(ctx context.Context) error {
	addr := a.Cfg.HTTP.Address
	if addr == "" {
		addr = ":8080"
	}

	a.server = &http.Server{
		Addr:              addr,
		Handler:           api.NewRouter(a.RatingService, a.RankingService, a.PredictionService, a.Registry),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server", slog.String("address", addr))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return a.Shutdown()
	}
}

// Shutdown drains the HTTP server and closes the bus and database.
func (a *App) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var firstErr error
	if a.server != nil {
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			firstErr = err
		}
	}
	if err := a.eventBus.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := a.db.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
