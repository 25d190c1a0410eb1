package playerservice

import (
	"context"

	playerdb "github.com/Black-And-White-Club/game-night/app/modules/player/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Player Repo
// ------------------------

type FakePlayerRepo struct {
	trace []string

	CreateFunc      func(ctx context.Context, db bun.IDB, player *playerdb.Player) error
	AdjustScoreFunc func(ctx context.Context, db bun.IDB, id uuid.UUID, delta int) (*playerdb.Player, error)
}

func NewFakePlayerRepo() *FakePlayerRepo {
	return &FakePlayerRepo{
		trace: []string{},
	}
}

func (f *FakePlayerRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakePlayerRepo) Create(ctx context.Context, db bun.IDB, player *playerdb.Player) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, player)
	}
	player.ID = uuid.New()
	return nil
}

func (f *FakePlayerRepo) AdjustScore(ctx context.Context, db bun.IDB, id uuid.UUID, delta int) (*playerdb.Player, error) {
	f.record("AdjustScore")
	if f.AdjustScoreFunc != nil {
		return f.AdjustScoreFunc(ctx, db, id, delta)
	}
	return nil, playerdb.ErrNotFound
}

func (f *FakePlayerRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ playerdb.Repository = (*FakePlayerRepo)(nil)
