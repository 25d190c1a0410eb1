package player

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"

	playerservice "github.com/Black-And-White-Club/game-night/app/modules/player/application"
	playerhandlers "github.com/Black-And-White-Club/game-night/app/modules/player/infrastructure/handlers"
	playerdb "github.com/Black-And-White-Club/game-night/app/modules/player/infrastructure/repositories"
	"github.com/Black-And-White-Club/game-night/config"
	"github.com/Black-And-White-Club/game-night/internal/observability"
	"github.com/Black-And-White-Club/game-night/internal/web"
)

// Module represents the player module.
type Module struct {
	PlayerService playerservice.Service
	Handlers      playerhandlers.Handlers
}

// NewPlayerModule wires the player repository, service and HTTP routes.
// POST /score is registered only in legacy scoring mode.
func NewPlayerModule(
	ctx context.Context,
	cfg *config.Config,
	obs observability.Observability,
	db *bun.DB,
	httpRouter chi.Router,
	limiter *web.IPRateLimiter,
) *Module {
	logger := obs.Provider.Logger
	tracer := obs.Registry.Tracer

	logger.InfoContext(ctx, "player.NewPlayerModule initializing",
		"scoring_mode", cfg.Scoring.Mode,
	)

	repo := playerdb.NewRepository(db)
	service := playerservice.NewPlayerService(repo, logger, obs.Registry.Metrics, tracer, db, cfg.Validation.MaxNameLength)
	handlers := playerhandlers.NewPlayerHandlers(service, logger, tracer)

	if httpRouter != nil {
		httpRouter.Group(func(r chi.Router) {
			r.Use(web.RateLimitMiddleware(limiter))
			r.Post("/players", handlers.HandleCreatePlayer)
			if cfg.LegacyScoring() {
				r.Post("/score", handlers.HandleAdjustScore)
			}
		})
	}

	return &Module{
		PlayerService: service,
		Handlers:      handlers,
	}
}
