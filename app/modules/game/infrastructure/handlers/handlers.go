package gamehandlers

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/trace"

	gameservice "github.com/Black-And-White-Club/game-night/app/modules/game/application"
	"github.com/Black-And-White-Club/game-night/internal/web"
)

// Handlers serves the game HTTP endpoints.
type Handlers interface {
	HandleCreateGame(w http.ResponseWriter, r *http.Request)
	HandleListGames(w http.ResponseWriter, r *http.Request)
}

// GameHandlers implements the Handlers interface.
type GameHandlers struct {
	service gameservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

func NewGameHandlers(service gameservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &GameHandlers{service: service, logger: logger, tracer: tracer}
}

type createGameRequest struct {
	Name string `json:"name"`
}

// HandleCreateGame handles POST /games.
func (h *GameHandlers) HandleCreateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GameHandlers.HandleCreateGame")
	defer span.End()
	r = r.WithContext(ctx)

	var req createGameRequest
	if err := web.DecodeJSON(w, r, &req); err != nil {
		web.WriteError(w, r, h.logger, err)
		return
	}

	game, err := h.service.CreateGame(ctx, req.Name)
	if err != nil {
		web.WriteError(w, r, h.logger, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, game)
}

// HandleListGames handles GET /games.
func (h *GameHandlers) HandleListGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GameHandlers.HandleListGames")
	defer span.End()
	r = r.WithContext(ctx)

	games, err := h.service.ListGames(ctx)
	if err != nil {
		web.WriteError(w, r, h.logger, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, games)
}
