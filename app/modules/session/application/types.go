package sessionservice

import (
	"time"

	"github.com/google/uuid"
)

// RecordSessionRequest is the unvalidated input of RecordSession.
type RecordSessionRequest struct {
	GameID  string        `json:"gameId"`
	Results []ResultInput `json:"results"`
}

// ResultInput is one unvalidated player placement.
type ResultInput struct {
	PlayerID  string `json:"playerId"`
	Placement *int   `json:"placement"`
}

// Session is the public view of a recorded session.
type Session struct {
	ID       uuid.UUID `json:"id"`
	GameID   uuid.UUID `json:"gameId"`
	GameName string    `json:"gameName"`
	PlayedAt time.Time `json:"playedAt"`
	Results  []Result  `json:"results"`
}

// Result is one placement of a recorded session with the points it awarded.
type Result struct {
	PlayerID   uuid.UUID `json:"playerId"`
	PlayerName string    `json:"playerName"`
	Placement  int       `json:"placement"`
	Points     int       `json:"points"`
}
