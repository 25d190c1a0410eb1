package testutils

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	gamedb "github.com/Black-And-White-Club/game-night/app/modules/game/infrastructure/repositories"
	playerdb "github.com/Black-And-White-Club/game-night/app/modules/player/infrastructure/repositories"
	sessiondb "github.com/Black-And-White-Club/game-night/app/modules/session/infrastructure/repositories"
)

func TruncateTables(ctx context.Context, db *bun.DB, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}

	quoted := make([]string, len(tables))
	for i, table := range tables {
		quoted[i] = fmt.Sprintf(`"%s"`, table)
	}
	query := "TRUNCATE TABLE " + strings.Join(quoted, ", ") + " CASCADE"

	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to truncate tables %v: %w", tables, err)
	}
	return nil
}

// CountRows returns the number of rows in table.
func CountRows(t *testing.T, db bun.IDB, table string) int {
	t.Helper()
	n, err := db.NewSelect().TableExpr(table).Count(context.Background())
	if err != nil {
		t.Fatalf("failed to count %s: %v", table, err)
	}
	return n
}

// InsertPlayer stores a player with the given name and stored score.
func InsertPlayer(t *testing.T, db bun.IDB, name string, score int) playerdb.Player {
	t.Helper()
	p := playerdb.Player{Name: name, Score: score}
	if _, err := db.NewInsert().Model(&p).Returning("*").Exec(context.Background()); err != nil {
		t.Fatalf("failed to insert player %q: %v", name, err)
	}
	return p
}

// InsertGame stores a game with the given name.
func InsertGame(t *testing.T, db bun.IDB, name string) gamedb.Game {
	t.Helper()
	g := gamedb.Game{Name: name}
	if _, err := db.NewInsert().Model(&g).Returning("*").Exec(context.Background()); err != nil {
		t.Fatalf("failed to insert game %q: %v", name, err)
	}
	return g
}

// InsertSession stores a session with one result per player. placements[i]
// belongs to players[i].
func InsertSession(t *testing.T, db bun.IDB, gameID uuid.UUID, players []playerdb.Player, placements []int) sessiondb.Session {
	t.Helper()
	if len(players) != len(placements) {
		t.Fatalf("InsertSession: %d players but %d placements", len(players), len(placements))
	}

	ctx := context.Background()
	s := sessiondb.Session{GameID: gameID}
	if _, err := db.NewInsert().Model(&s).Returning("*").Exec(ctx); err != nil {
		t.Fatalf("failed to insert session: %v", err)
	}

	if len(players) == 0 {
		return s
	}
	rows := make([]sessiondb.SessionResult, len(players))
	for i, p := range players {
		rows[i] = sessiondb.SessionResult{SessionID: s.ID, PlayerID: p.ID, Placement: placements[i]}
	}
	if _, err := db.NewInsert().Model(&rows).Exec(ctx); err != nil {
		t.Fatalf("failed to insert session results: %v", err)
	}
	return s
}
