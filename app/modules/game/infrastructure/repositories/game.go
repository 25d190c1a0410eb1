package gamedb

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new game repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) Create(ctx context.Context, db bun.IDB, game *Game) error {
	_, err := r.resolveDB(db).NewInsert().
		Model(game).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("gamedb.Create: %w", err)
	}
	return nil
}

func (r *Impl) List(ctx context.Context, db bun.IDB) ([]Game, error) {
	games := make([]Game, 0)
	err := r.resolveDB(db).NewSelect().
		Model(&games).
		OrderExpr("g.name ASC, g.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("gamedb.List: %w", err)
	}
	return games, nil
}
