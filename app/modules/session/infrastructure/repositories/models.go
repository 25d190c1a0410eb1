package sessiondb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	gamedb "github.com/Black-And-White-Club/game-night/app/modules/game/infrastructure/repositories"
)

// Session is one recorded play of a game.
type Session struct {
	bun.BaseModel `bun:"table:sessions,alias:s"`

	ID       uuid.UUID    `bun:"id,pk,type:uuid,nullzero,default:gen_random_uuid()"`
	GameID   uuid.UUID    `bun:"game_id,type:uuid,notnull"`
	PlayedAt time.Time    `bun:"played_at,nullzero,notnull,default:current_timestamp"`
	Game     *gamedb.Game `bun:"rel:belongs-to,join:game_id=id"`
}

// SessionResult is one player's finishing placement within a session.
type SessionResult struct {
	bun.BaseModel `bun:"table:session_results,alias:sr"`

	SessionID uuid.UUID `bun:"session_id,pk,type:uuid"`
	PlayerID  uuid.UUID `bun:"player_id,pk,type:uuid"`
	Placement int       `bun:"placement,notnull"`
}

// ResultRow is a session result joined with the player's name.
type ResultRow struct {
	SessionID  uuid.UUID `bun:"session_id"`
	PlayerID   uuid.UUID `bun:"player_id"`
	PlayerName string    `bun:"player_name"`
	Placement  int       `bun:"placement"`
}
