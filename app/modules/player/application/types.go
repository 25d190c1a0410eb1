package playerservice

import (
	"github.com/google/uuid"

	playerdb "github.com/Black-And-White-Club/game-night/app/modules/player/infrastructure/repositories"
)

// Player is the public view of a player.
type Player struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Score int       `json:"score"`
}

func toPlayer(p *playerdb.Player) *Player {
	return &Player{ID: p.ID, Name: p.Name, Score: p.Score}
}
