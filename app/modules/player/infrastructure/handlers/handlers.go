package playerhandlers

import (
	"log/slog"
	"math"
	"net/http"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	playerservice "github.com/Black-And-White-Club/game-night/app/modules/player/application"
	"github.com/Black-And-White-Club/game-night/app/shared/apperrors"
	"github.com/Black-And-White-Club/game-night/internal/observability/attr"
	"github.com/Black-And-White-Club/game-night/internal/web"
)

// PlayerHandlers implements the Handlers interface.
type PlayerHandlers struct {
	service playerservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewPlayerHandlers creates a new PlayerHandlers instance.
func NewPlayerHandlers(
	service playerservice.Service,
	logger *slog.Logger,
	tracer trace.Tracer,
) Handlers {
	return &PlayerHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

type createPlayerRequest struct {
	Name string `json:"name"`
}

// players.score is a Postgres INTEGER; a delta outside its range can only overflow.
const (
	minDelta = math.MinInt32
	maxDelta = math.MaxInt32
)

type adjustScoreRequest struct {
	ID    string `json:"id"`
	Delta *int   `json:"delta"`
}

// HandleCreatePlayer handles POST /players.
func (h *PlayerHandlers) HandleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "PlayerHandlers.HandleCreatePlayer")
	defer span.End()
	r = r.WithContext(ctx)

	var req createPlayerRequest
	if err := web.DecodeJSON(w, r, &req); err != nil {
		web.WriteError(w, r, h.logger, err)
		return
	}

	player, err := h.service.CreatePlayer(ctx, req.Name)
	if err != nil {
		web.WriteError(w, r, h.logger, err)
		return
	}

	h.logger.InfoContext(ctx, "Player created",
		attr.UUID("player_id", player.ID),
		attr.String("name", player.Name),
	)
	web.WriteJSON(w, http.StatusOK, player)
}

// HandleAdjustScore handles POST /score. It is only routed in legacy scoring mode.
func (h *PlayerHandlers) HandleAdjustScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "PlayerHandlers.HandleAdjustScore")
	defer span.End()
	r = r.WithContext(ctx)

	var req adjustScoreRequest
	if err := web.DecodeJSON(w, r, &req); err != nil {
		web.WriteError(w, r, h.logger, err)
		return
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		web.WriteError(w, r, h.logger, apperrors.Validation("id", "must be a valid UUID"))
		return
	}
	if req.Delta == nil {
		web.WriteError(w, r, h.logger, apperrors.Validation("delta", "is required"))
		return
	}
	if *req.Delta < minDelta || *req.Delta > maxDelta {
		web.WriteError(w, r, h.logger, apperrors.Validation("delta", "is out of range"))
		return
	}

	player, err := h.service.AdjustScore(ctx, id, *req.Delta)
	if err != nil {
		web.WriteError(w, r, h.logger, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, player)
}
