package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"golang.org/x/time/rate"

	"github.com/Black-And-White-Club/game-night/app/modules/game"
	"github.com/Black-And-White-Club/game-night/app/modules/leaderboard"
	"github.com/Black-And-White-Club/game-night/app/modules/player"
	"github.com/Black-And-White-Club/game-night/app/modules/session"
	"github.com/Black-And-White-Club/game-night/app/modules/ui"
	"github.com/Black-And-White-Club/game-night/config"
	"github.com/Black-And-White-Club/game-night/internal/observability"
	"github.com/Black-And-White-Club/game-night/internal/observability/attr"
	"github.com/Black-And-White-Club/game-night/internal/web"
)

// App holds the application components.
type App struct {
	Config        *config.Config
	Observability observability.Observability
	DB            *bun.DB
	Router        *chi.Mux
	Modules       *Modules

	server        *http.Server
	metricsServer *http.Server
}

// Modules holds every domain module.
type Modules struct {
	Player      *player.Module
	Game        *game.Module
	Session     *session.Module
	Leaderboard *leaderboard.Module
	UI          *ui.Module
}

// NewApp builds the router and every module around an open database handle.
func NewApp(ctx context.Context, cfg *config.Config, obs observability.Observability, db *bun.DB) *App {
	app := &App{
		Config:        cfg,
		Observability: obs,
		DB:            db,
	}
	app.Router, app.Modules = app.buildRouter(ctx)

	app.server = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if cfg.Observability.MetricsAddress != "" {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", promhttp.HandlerFor(obs.Registry.Prometheus, promhttp.HandlerOpts{}))
		app.metricsServer = &http.Server{
			Addr:              cfg.Observability.MetricsAddress,
			Handler:           metricsMux,
			ReadHeaderTimeout: 10 * time.Second,
		}
	}
	return app
}

func (app *App) buildRouter(ctx context.Context) (*chi.Mux, *Modules) {
	cfg := app.Config
	logger := app.Observability.Provider.Logger

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// Without a trusted proxy the limiter keys on the connection's RemoteAddr.
	if cfg.HTTP.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.Recoverer)
	r.Use(web.CORSMiddleware)
	r.Use(web.RequestLogger(logger, app.Observability.Registry.Metrics))
	if cfg.HTTP.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.HTTP.RequestTimeout))
	}

	var limiter *web.IPRateLimiter
	if cfg.HTTP.RateLimit > 0 {
		limiter = web.NewIPRateLimiter(rate.Limit(cfg.HTTP.RateLimit), cfg.HTTP.RateBurst)
	}

	r.Get("/healthz", app.handleHealth)

	modules := &Modules{
		Player:      player.NewPlayerModule(ctx, cfg, app.Observability, app.DB, r, limiter),
		Game:        game.NewGameModule(ctx, cfg, app.Observability, app.DB, r, limiter),
		Session:     session.NewSessionModule(ctx, cfg, app.Observability, app.DB, r, limiter),
		Leaderboard: leaderboard.NewLeaderboardModule(ctx, cfg, app.Observability, app.DB, r),
		UI:          ui.NewUIModule(cfg, app.Observability, r),
	}
	return r, modules
}

func (app *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	if app.DB == nil {
		web.WriteJSON(w, http.StatusServiceUnavailable, web.ErrorResponse{Error: "database unavailable"})
		return
	}
	if err := app.DB.PingContext(r.Context()); err != nil {
		app.Observability.Provider.Logger.WarnContext(r.Context(), "Health check failed", attr.Error(err))
		web.WriteJSON(w, http.StatusServiceUnavailable, web.ErrorResponse{Error: "database unavailable"})
		return
	}
	web.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests for up
// to the configured shutdown timeout.
func (app *App) Run(ctx context.Context) error {
	logger := app.Observability.Provider.Logger
	errCh := make(chan error, 2)

	go func() {
		logger.InfoContext(ctx, "HTTP server listening",
			attr.String("addr", app.server.Addr),
			attr.String("scoring_mode", app.Config.Scoring.Mode),
		)
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	if app.metricsServer != nil {
		go func() {
			logger.InfoContext(ctx, "Metrics server listening", attr.String("addr", app.metricsServer.Addr))
			if err := app.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("metrics server: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case runErr = <-errCh:
		logger.Error("Server failed", attr.Error(runErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.server.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("http shutdown: %w", err))
	}
	if app.metricsServer != nil {
		if err := app.metricsServer.Shutdown(shutdownCtx); err != nil {
			runErr = errors.Join(runErr, fmt.Errorf("metrics shutdown: %w", err))
		}
	}
	return runErr
}

// Close releases the database pool and flushes telemetry.
func (app *App) Close(ctx context.Context) error {
	logger := app.Observability.Provider.Logger
	logger.Info("Closing application")

	var errs []error
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	if err := app.Observability.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown observability: %w", err))
	}
	return errors.Join(errs...)
}
