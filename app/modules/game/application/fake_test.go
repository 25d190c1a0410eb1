package gameservice

import (
	"context"

	gamedb "github.com/Black-And-White-Club/game-night/app/modules/game/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type FakeGameRepo struct {
	trace []string

	CreateFunc func(ctx context.Context, db bun.IDB, game *gamedb.Game) error
	ListFunc   func(ctx context.Context, db bun.IDB) ([]gamedb.Game, error)
}

func (f *FakeGameRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeGameRepo) Create(ctx context.Context, db bun.IDB, game *gamedb.Game) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, game)
	}
	game.ID = uuid.New()
	return nil
}

func (f *FakeGameRepo) List(ctx context.Context, db bun.IDB) ([]gamedb.Game, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeGameRepo) Trace() []string {
	return append([]string(nil), f.trace...)
}

var _ gamedb.Repository = (*FakeGameRepo)(nil)
