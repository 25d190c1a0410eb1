package sessionmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// Requires the players and games tables.
func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating sessions and session_results tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS sessions (
					id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
					game_id UUID NOT NULL REFERENCES games(id),
					played_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`); err != nil {
				return fmt.Errorf("failed to create sessions table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS session_results (
					session_id UUID NOT NULL REFERENCES sessions(id),
					player_id UUID NOT NULL REFERENCES players(id),
					placement INTEGER NOT NULL CHECK (placement BETWEEN 1 AND 4),
					PRIMARY KEY (session_id, player_id)
				);
			`); err != nil {
				return fmt.Errorf("failed to create session_results table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping session_results and sessions tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS session_results;`); err != nil {
				return fmt.Errorf("failed to drop session_results table: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS sessions;`); err != nil {
				return fmt.Errorf("failed to drop sessions table: %w", err)
			}
			return nil
		})
	})
}
