package leaderboarddb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/Black-And-White-Club/game-night/app/modules/leaderboard/scoring"
)

// Standing is one player's row on the leaderboard.
type Standing struct {
	ID        uuid.UUID `bun:"id"`
	Name      string    `bun:"name"`
	Score     int       `bun:"score"`
	CreatedAt time.Time `bun:"created_at"`
}

// Repository reads leaderboard standings. Both queries order by score descending,
// then created_at ascending, then id.
type Repository interface {
	// ComputedStandings sums the points awarded by every session placement per player.
	ComputedStandings(ctx context.Context, db bun.IDB, points scoring.PointsTable) ([]Standing, error)

	// StoredStandings reads the directly adjusted players.score column.
	StoredStandings(ctx context.Context, db bun.IDB) ([]Standing, error)
}

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new leaderboard repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) ComputedStandings(ctx context.Context, db bun.IDB, points scoring.PointsTable) ([]Standing, error) {
	standings := make([]Standing, 0)
	err := r.resolveDB(db).NewSelect().
		TableExpr("players AS p").
		ColumnExpr("p.id, p.name, p.created_at").
		ColumnExpr("COALESCE(SUM(" + points.SQLCase("sr.placement") + "), 0) AS score").
		Join("LEFT JOIN session_results AS sr ON sr.player_id = p.id").
		GroupExpr("p.id").
		OrderExpr("score DESC, p.created_at ASC, p.id ASC").
		Scan(ctx, &standings)
	if err != nil {
		return nil, fmt.Errorf("leaderboarddb.ComputedStandings: %w", err)
	}
	return standings, nil
}

func (r *Impl) StoredStandings(ctx context.Context, db bun.IDB) ([]Standing, error) {
	standings := make([]Standing, 0)
	err := r.resolveDB(db).NewSelect().
		TableExpr("players AS p").
		ColumnExpr("p.id, p.name, p.score, p.created_at").
		OrderExpr("p.score DESC, p.created_at ASC, p.id ASC").
		Scan(ctx, &standings)
	if err != nil {
		return nil, fmt.Errorf("leaderboarddb.StoredStandings: %w", err)
	}
	return standings, nil
}
