package leaderboardhandlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel/trace"

	leaderboardservice "github.com/Black-And-White-Club/game-night/app/modules/leaderboard/application"
	"github.com/Black-And-White-Club/game-night/internal/web"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handlers serves the leaderboard HTTP endpoints.
type Handlers interface {
	HandleListPlayers(w http.ResponseWriter, r *http.Request)
	HandleExportXLSX(w http.ResponseWriter, r *http.Request)
	HandleChartPNG(w http.ResponseWriter, r *http.Request)
}

// LeaderboardHandlers implements the Handlers interface.
type LeaderboardHandlers struct {
	service leaderboardservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

func NewLeaderboardHandlers(service leaderboardservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &LeaderboardHandlers{service: service, logger: logger, tracer: tracer}
}

// HandleListPlayers handles GET /players.
func (h *LeaderboardHandlers) HandleListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "LeaderboardHandlers.HandleListPlayers")
	defer span.End()
	r = r.WithContext(ctx)

	standings, err := h.service.ListStandings(ctx)
	if err != nil {
		web.WriteError(w, r, h.logger, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, standings)
}

// HandleExportXLSX handles GET /players/export.xlsx.
func (h *LeaderboardHandlers) HandleExportXLSX(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "LeaderboardHandlers.HandleExportXLSX")
	defer span.End()
	r = r.WithContext(ctx)

	data, err := h.service.ExportStandings(ctx)
	if err != nil {
		web.WriteError(w, r, h.logger, err)
		return
	}
	writeFile(w, xlsxContentType, `attachment; filename="leaderboard.xlsx"`, data)
}

// HandleChartPNG handles GET /players/chart.png.
func (h *LeaderboardHandlers) HandleChartPNG(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "LeaderboardHandlers.HandleChartPNG")
	defer span.End()
	r = r.WithContext(ctx)

	data, err := h.service.ChartStandings(ctx)
	if err != nil {
		web.WriteError(w, r, h.logger, err)
		return
	}
	writeFile(w, "image/png", "", data)
}

func writeFile(w http.ResponseWriter, contentType, disposition string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-store")
	if disposition != "" {
		w.Header().Set("Content-Disposition", disposition)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
