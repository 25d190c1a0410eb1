package playerhandlers

import (
	"context"

	playerservice "github.com/Black-And-White-Club/game-night/app/modules/player/application"
	"github.com/google/uuid"
)

// FakeService is a programmable fake for playerservice.Service.
type FakeService struct {
	CreatePlayerFunc func(ctx context.Context, name string) (*playerservice.Player, error)
	AdjustScoreFunc  func(ctx context.Context, id uuid.UUID, delta int) (*playerservice.Player, error)
}

func (f *FakeService) CreatePlayer(ctx context.Context, name string) (*playerservice.Player, error) {
	if f.CreatePlayerFunc != nil {
		return f.CreatePlayerFunc(ctx, name)
	}
	return &playerservice.Player{ID: uuid.New(), Name: name}, nil
}

func (f *FakeService) AdjustScore(ctx context.Context, id uuid.UUID, delta int) (*playerservice.Player, error) {
	if f.AdjustScoreFunc != nil {
		return f.AdjustScoreFunc(ctx, id, delta)
	}
	return &playerservice.Player{ID: id, Score: max(delta, 0)}, nil
}

var _ playerservice.Service = (*FakeService)(nil)
