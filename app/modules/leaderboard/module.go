package leaderboard

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"

	leaderboardservice "github.com/Black-And-White-Club/game-night/app/modules/leaderboard/application"
	leaderboardhandlers "github.com/Black-And-White-Club/game-night/app/modules/leaderboard/infrastructure/handlers"
	leaderboarddb "github.com/Black-And-White-Club/game-night/app/modules/leaderboard/infrastructure/repositories"
	"github.com/Black-And-White-Club/game-night/config"
	"github.com/Black-And-White-Club/game-night/internal/observability"
)

// Module represents the leaderboard module.
type Module struct {
	LeaderboardService leaderboardservice.Service
	Handlers           leaderboardhandlers.Handlers
}

// NewLeaderboardModule wires the standings reads and their exports.
func NewLeaderboardModule(
	ctx context.Context,
	cfg *config.Config,
	obs observability.Observability,
	db *bun.DB,
	httpRouter chi.Router,
) *Module {
	logger := obs.Provider.Logger
	tracer := obs.Registry.Tracer

	logger.InfoContext(ctx, "leaderboard.NewLeaderboardModule initializing",
		"scoring_mode", cfg.Scoring.Mode,
	)

	repo := leaderboarddb.NewRepository(db)
	service := leaderboardservice.NewLeaderboardService(repo, logger, obs.Registry.Metrics, tracer, db, cfg.LegacyScoring())
	handlers := leaderboardhandlers.NewLeaderboardHandlers(service, logger, tracer)

	if httpRouter != nil {
		httpRouter.Get("/players", handlers.HandleListPlayers)
		httpRouter.Get("/players/export.xlsx", handlers.HandleExportXLSX)
		httpRouter.Get("/players/chart.png", handlers.HandleChartPNG)
	}

	return &Module{
		LeaderboardService: service,
		Handlers:           handlers,
	}
}
