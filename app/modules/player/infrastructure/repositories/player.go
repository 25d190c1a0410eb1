package playerdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a player is not found.
var ErrNotFound = errors.New("player not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new player repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// Create inserts a player row.
func (r *Impl) Create(ctx context.Context, db bun.IDB, player *Player) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(player).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("playerdb.Create: %w", err)
	}
	return nil
}

// AdjustScore floors the adjusted score at zero on every call, not on the running sum.
func (r *Impl) AdjustScore(ctx context.Context, db bun.IDB, id uuid.UUID, delta int) (*Player, error) {
	db = r.resolveDB(db)
	player := new(Player)
	err := db.NewRaw(
		`UPDATE players
		 SET score = GREATEST(score + ?, 0)
		 WHERE id = ?
		 RETURNING id, name, score, created_at`,
		delta, id,
	).Scan(ctx, player)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("playerdb.AdjustScore: %w", err)
	}
	return player, nil
}
