package playerdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for player persistence.
// A nil db falls back to the repository's default connection.
//
// Error semantics:
//   - ErrNotFound: no player with the given id
//   - Other errors: infrastructure failures (DB connection, constraint violations)
type Repository interface {
	// Create inserts player and fills the generated id, score and created_at.
	Create(ctx context.Context, db bun.IDB, player *Player) error

	// AdjustScore applies score = GREATEST(score + delta, 0) and returns the updated row.
	AdjustScore(ctx context.Context, db bun.IDB, id uuid.UUID, delta int) (*Player, error)
}
