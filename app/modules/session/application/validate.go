package sessionservice

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Black-And-White-Club/game-night/app/modules/leaderboard/scoring"
	sessiondb "github.com/Black-And-White-Club/game-night/app/modules/session/infrastructure/repositories"
	"github.com/Black-And-White-Club/game-night/app/shared/apperrors"
)

// validateRequest checks req before anything is written and returns the parsed game id and results.
// Placement range and uniqueness are only checked when strict is set; otherwise the store's
// constraints reject them.
func validateRequest(req RecordSessionRequest, strict bool) (uuid.UUID, []sessiondb.SessionResult, error) {
	if req.GameID == "" {
		return uuid.Nil, nil, apperrors.Validation("gameId", "is required")
	}
	gameID, err := uuid.Parse(req.GameID)
	if err != nil {
		return uuid.Nil, nil, apperrors.Validation("gameId", "must be a valid UUID")
	}

	if req.Results == nil {
		return uuid.Nil, nil, apperrors.Validation("results", "is required")
	}
	if len(req.Results) != scoring.PlayersPerSession {
		return uuid.Nil, nil, apperrors.Validation("results", "must contain exactly %d entries, got %d", scoring.PlayersPerSession, len(req.Results))
	}

	rows := make([]sessiondb.SessionResult, 0, len(req.Results))
	for i, in := range req.Results {
		field := fmt.Sprintf("results[%d]", i)
		playerID, err := uuid.Parse(in.PlayerID)
		if err != nil {
			return uuid.Nil, nil, apperrors.Validation(field+".playerId", "must be a valid UUID")
		}
		if in.Placement == nil {
			return uuid.Nil, nil, apperrors.Validation(field+".placement", "is required")
		}
		rows = append(rows, sessiondb.SessionResult{PlayerID: playerID, Placement: *in.Placement})
	}

	if strict {
		if err := validatePlacements(rows); err != nil {
			return uuid.Nil, nil, err
		}
	}
	return gameID, rows, nil
}

// validatePlacements requires distinct players and placements forming a permutation of 1..PlayersPerSession.
func validatePlacements(rows []sessiondb.SessionResult) error {
	players := make(map[uuid.UUID]struct{}, len(rows))
	placements := make(map[int]struct{}, len(rows))
	for _, r := range rows {
		if _, dup := players[r.PlayerID]; dup {
			return apperrors.Validation("results", "must reference %d distinct players", scoring.PlayersPerSession)
		}
		players[r.PlayerID] = struct{}{}

		if r.Placement < 1 || r.Placement > scoring.PlayersPerSession {
			return apperrors.Validation("results", "placements must be between 1 and %d", scoring.PlayersPerSession)
		}
		if _, dup := placements[r.Placement]; dup {
			return apperrors.Validation("results", "placements must be distinct")
		}
		placements[r.Placement] = struct{}{}
	}
	return nil
}
