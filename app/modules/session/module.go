package session

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"

	sessionservice "github.com/Black-And-White-Club/game-night/app/modules/session/application"
	sessionhandlers "github.com/Black-And-White-Club/game-night/app/modules/session/infrastructure/handlers"
	sessiondb "github.com/Black-And-White-Club/game-night/app/modules/session/infrastructure/repositories"
	"github.com/Black-And-White-Club/game-night/config"
	"github.com/Black-And-White-Club/game-night/internal/observability"
	"github.com/Black-And-White-Club/game-night/internal/web"
)

// Module represents the session module.
type Module struct {
	SessionService sessionservice.Service
	Handlers       sessionhandlers.Handlers
}

// NewSessionModule wires session recording and history.
func NewSessionModule(
	ctx context.Context,
	cfg *config.Config,
	obs observability.Observability,
	db *bun.DB,
	httpRouter chi.Router,
	limiter *web.IPRateLimiter,
) *Module {
	logger := obs.Provider.Logger
	tracer := obs.Registry.Tracer

	logger.InfoContext(ctx, "session.NewSessionModule initializing",
		"strict_placements", cfg.Sessions.StrictPlacements,
	)

	repo := sessiondb.NewRepository(db)
	service := sessionservice.NewSessionService(repo, logger, obs.Registry.Metrics, tracer, db, cfg.Sessions.StrictPlacements)
	handlers := sessionhandlers.NewSessionHandlers(service, logger, tracer)

	if httpRouter != nil {
		httpRouter.Get("/sessions", handlers.HandleListSessions)
		httpRouter.With(web.RateLimitMiddleware(limiter)).Post("/session", handlers.HandleRecordSession)
	}

	return &Module{
		SessionService: service,
		Handlers:       handlers,
	}
}
