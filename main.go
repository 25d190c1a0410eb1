package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Black-And-White-Club/game-night/app"
	"github.com/Black-And-White-Club/game-night/config"
	"github.com/Black-And-White-Club/game-night/db/bundb"
	"github.com/Black-And-White-Club/game-night/internal/observability"
	"github.com/Black-And-White-Club/game-night/internal/observability/attr"
)

func main() {
	configFile := flag.String("config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Load config
	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize observability
	obs, err := observability.Init(ctx, cfg.Observability)
	if err != nil {
		log.Fatalf("Failed to initialize observability: %v", err)
	}

	logger := obs.Provider.Logger
	logger.Info("Starting game night server")

	db, err := bundb.Open(ctx, cfg.Postgres)
	if err != nil {
		logger.Error("Failed to open database", attr.Error(err))
		os.Exit(1)
	}

	if cfg.Postgres.AutoMigrate {
		if err := bundb.Migrate(ctx, db, logger); err != nil {
			logger.Error("Failed to run migrations", attr.Error(err))
			_ = db.Close()
			os.Exit(1)
		}
	}

	application := app.NewApp(ctx, cfg, obs, db)

	runErr := application.Run(ctx)
	if runErr != nil {
		logger.Error("Server stopped with error", attr.Error(runErr))
	}

	closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer closeCancel()

	if err := application.Close(closeCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	if runErr != nil {
		closeCancel()
		os.Exit(1)
	}
	log.Println("Game night server stopped")
}
