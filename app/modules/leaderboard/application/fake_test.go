package leaderboardservice

import (
	"context"

	leaderboarddb "github.com/Black-And-White-Club/game-night/app/modules/leaderboard/infrastructure/repositories"
	"github.com/Black-And-White-Club/game-night/app/modules/leaderboard/scoring"
	"github.com/uptrace/bun"
)

type FakeLeaderboardRepo struct {
	trace []string

	ComputedStandingsFunc func(ctx context.Context, db bun.IDB, points scoring.PointsTable) ([]leaderboarddb.Standing, error)
	StoredStandingsFunc   func(ctx context.Context, db bun.IDB) ([]leaderboarddb.Standing, error)
}

func (f *FakeLeaderboardRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeLeaderboardRepo) ComputedStandings(ctx context.Context, db bun.IDB, points scoring.PointsTable) ([]leaderboarddb.Standing, error) {
	f.record("ComputedStandings")
	if f.ComputedStandingsFunc != nil {
		return f.ComputedStandingsFunc(ctx, db, points)
	}
	return []leaderboarddb.Standing{}, nil
}

func (f *FakeLeaderboardRepo) StoredStandings(ctx context.Context, db bun.IDB) ([]leaderboarddb.Standing, error) {
	f.record("StoredStandings")
	if f.StoredStandingsFunc != nil {
		return f.StoredStandingsFunc(ctx, db)
	}
	return []leaderboarddb.Standing{}, nil
}

func (f *FakeLeaderboardRepo) Trace() []string {
	return append([]string{}, f.trace...)
}

var _ leaderboarddb.Repository = (*FakeLeaderboardRepo)(nil)
