// Package ui serves the single-page leaderboard client.
package ui

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Black-And-White-Club/game-night/config"
	"github.com/Black-And-White-Club/game-night/internal/observability"
	"github.com/Black-And-White-Club/game-night/internal/observability/attr"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// Title is shown in the page title and heading.
const Title = "Game Night Leaderboard"

type pageData struct {
	Title         string
	Legacy        bool
	MaxNameLength int
}

// Handler renders the client page.
type Handler struct {
	data   pageData
	logger *slog.Logger
}

// NewHandler creates a Handler. Score buttons are rendered only in legacy scoring mode.
func NewHandler(legacy bool, maxNameLength int, logger *slog.Logger) *Handler {
	return &Handler{
		data: pageData{
			Title:         Title,
			Legacy:        legacy,
			MaxNameLength: maxNameLength,
		},
		logger: logger,
	}
}

// ServeHTTP handles GET /.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "index.html", h.data); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to render index", attr.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// Module represents the ui module.
type Module struct {
	Handler *Handler
}

// NewUIModule registers GET / on httpRouter.
func NewUIModule(cfg *config.Config, obs observability.Observability, httpRouter chi.Router) *Module {
	h := NewHandler(cfg.LegacyScoring(), cfg.Validation.MaxNameLength, obs.Provider.Logger)
	if httpRouter != nil {
		httpRouter.Get("/", h.ServeHTTP)
	}
	return &Module{Handler: h}
}
