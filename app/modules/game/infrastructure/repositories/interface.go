package gamedb

import (
	"context"

	"github.com/uptrace/bun"
)

// Repository defines the contract for game persistence.
type Repository interface {
	Create(ctx context.Context, db bun.IDB, game *Game) error
	// List returns every game ordered by name.
	List(ctx context.Context, db bun.IDB) ([]Game, error)
}
