// Package bundb opens the Postgres connection pool shared by every module and
// applies the module migrations in dependency order.
package bundb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	gamedb "github.com/Black-And-White-Club/game-night/app/modules/game/infrastructure/repositories"
	gamemigrations "github.com/Black-And-White-Club/game-night/app/modules/game/infrastructure/repositories/migrations"
	playerdb "github.com/Black-And-White-Club/game-night/app/modules/player/infrastructure/repositories"
	playermigrations "github.com/Black-And-White-Club/game-night/app/modules/player/infrastructure/repositories/migrations"
	sessiondb "github.com/Black-And-White-Club/game-night/app/modules/session/infrastructure/repositories"
	sessionmigrations "github.com/Black-And-White-Club/game-night/app/modules/session/infrastructure/repositories/migrations"
	"github.com/Black-And-White-Club/game-night/config"
)

// ModuleMigrations names one module's migration set.
type ModuleMigrations struct {
	Module     string
	Migrations *migrate.Migrations
}

// Migrations returns every module's migrations. Sessions reference players and
// games, so they come last.
func Migrations() []ModuleMigrations {
	return []ModuleMigrations{
		{Module: "player", Migrations: playermigrations.Migrations},
		{Module: "game", Migrations: gamemigrations.Migrations},
		{Module: "session", Migrations: sessionmigrations.Migrations},
	}
}

// Open connects to Postgres and verifies the connection with a ping.
func Open(ctx context.Context, cfg config.PostgresConfig) (*bun.DB, error) {
	sqldb, err := pgConn(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return BunDB(sqldb), nil
}

// BunDB wraps an existing connection pool and registers the models.
func BunDB(sqldb *sql.DB) *bun.DB {
	db := bun.NewDB(sqldb, pgdialect.New())
	db.RegisterModel(
		(*playerdb.Player)(nil),
		(*gamedb.Game)(nil),
		(*sessiondb.Session)(nil),
		(*sessiondb.SessionResult)(nil),
	)
	return db
}

func pgConn(ctx context.Context, dsn string) (*sql.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))

	if err := sqldb.PingContext(ctx); err != nil {
		_ = sqldb.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return sqldb, nil
}

// Migrate initializes the migration tables and applies every pending migration.
func Migrate(ctx context.Context, db *bun.DB, logger *slog.Logger) error {
	for _, m := range Migrations() {
		migrator := migrate.NewMigrator(db, m.Migrations)
		if err := migrator.Init(ctx); err != nil {
			return fmt.Errorf("failed to init migrations for module %s: %w", m.Module, err)
		}

		group, err := migrator.Migrate(ctx)
		if err != nil {
			return fmt.Errorf("failed to migrate module %s: %w", m.Module, err)
		}
		if group.IsZero() {
			logger.InfoContext(ctx, "No new migrations", "module", m.Module)
		} else {
			logger.InfoContext(ctx, "Migrated module", "module", m.Module, "group", group.String())
		}
	}
	return nil
}
