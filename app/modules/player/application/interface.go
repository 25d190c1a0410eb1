package playerservice

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the player operations.
type Service interface {
	// CreatePlayer validates name and inserts a player with score 0.
	CreatePlayer(ctx context.Context, name string) (*Player, error)

	// AdjustScore applies a legacy score delta, flooring the result at zero.
	AdjustScore(ctx context.Context, id uuid.UUID, delta int) (*Player, error)
}
