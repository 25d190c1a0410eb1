package game

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"

	gameservice "github.com/Black-And-White-Club/game-night/app/modules/game/application"
	gamehandlers "github.com/Black-And-White-Club/game-night/app/modules/game/infrastructure/handlers"
	gamedb "github.com/Black-And-White-Club/game-night/app/modules/game/infrastructure/repositories"
	"github.com/Black-And-White-Club/game-night/config"
	"github.com/Black-And-White-Club/game-night/internal/observability"
	"github.com/Black-And-White-Club/game-night/internal/web"
)

// Module represents the game module.
type Module struct {
	GameService gameservice.Service
	Handlers    gamehandlers.Handlers
}

// NewGameModule wires the game catalogue and registers GET and POST /games.
func NewGameModule(
	ctx context.Context,
	cfg *config.Config,
	obs observability.Observability,
	db *bun.DB,
	httpRouter chi.Router,
	limiter *web.IPRateLimiter,
) *Module {
	logger := obs.Provider.Logger
	tracer := obs.Registry.Tracer

	logger.InfoContext(ctx, "game.NewGameModule initializing")

	repo := gamedb.NewRepository(db)
	service := gameservice.NewGameService(repo, logger, obs.Registry.Metrics, tracer, db, cfg.Validation.MaxNameLength)
	handlers := gamehandlers.NewGameHandlers(service, logger, tracer)

	if httpRouter != nil {
		httpRouter.Get("/games", handlers.HandleListGames)
		httpRouter.With(web.RateLimitMiddleware(limiter)).Post("/games", handlers.HandleCreateGame)
	}

	return &Module{
		GameService: service,
		Handlers:    handlers,
	}
}
