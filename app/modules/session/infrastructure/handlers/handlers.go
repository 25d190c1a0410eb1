package sessionhandlers

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/trace"

	sessionservice "github.com/Black-And-White-Club/game-night/app/modules/session/application"
	"github.com/Black-And-White-Club/game-night/internal/web"
)

// Handlers serves the session HTTP endpoints.
type Handlers interface {
	HandleRecordSession(w http.ResponseWriter, r *http.Request)
	HandleListSessions(w http.ResponseWriter, r *http.Request)
}

// SessionHandlers implements the Handlers interface.
type SessionHandlers struct {
	service sessionservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewSessionHandlers creates a new SessionHandlers instance.
func NewSessionHandlers(service sessionservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &SessionHandlers{service: service, logger: logger, tracer: tracer}
}

// HandleRecordSession handles POST /session. Success is an empty 200.
func (h *SessionHandlers) HandleRecordSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "SessionHandlers.HandleRecordSession")
	defer span.End()
	r = r.WithContext(ctx)

	var req sessionservice.RecordSessionRequest
	if err := web.DecodeJSON(w, r, &req); err != nil {
		web.WriteError(w, r, h.logger, err)
		return
	}

	if _, err := h.service.RecordSession(ctx, req); err != nil {
		web.WriteError(w, r, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// HandleListSessions handles GET /sessions.
func (h *SessionHandlers) HandleListSessions(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "SessionHandlers.HandleListSessions")
	defer span.End()
	r = r.WithContext(ctx)

	sessions, err := h.service.ListSessions(ctx)
	if err != nil {
		web.WriteError(w, r, h.logger, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, sessions)
}
