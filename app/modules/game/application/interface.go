package gameservice

import "context"

// Service defines the game catalogue operations.
type Service interface {
	CreateGame(ctx context.Context, name string) (*Game, error)
	ListGames(ctx context.Context) ([]Game, error)
}
