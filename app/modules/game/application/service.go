package gameservice

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	gamedb "github.com/Black-And-White-Club/game-night/app/modules/game/infrastructure/repositories"
	"github.com/Black-And-White-Club/game-night/app/shared/apperrors"
	"github.com/Black-And-White-Club/game-night/app/shared/operation"
	"github.com/Black-And-White-Club/game-night/app/shared/validation"
	"github.com/Black-And-White-Club/game-night/internal/observability"
	"github.com/Black-And-White-Club/game-night/pkg/results"
)

// Game is the public view of a game.
type Game struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// GameService implements the Service interface.
type GameService struct {
	repo          gamedb.Repository
	runner        *operation.Runner
	maxNameLength int
}

// NewGameService creates a new GameService.
func NewGameService(
	repo gamedb.Repository,
	logger *slog.Logger,
	metrics *observability.Metrics,
	tracer trace.Tracer,
	db *bun.DB,
	maxNameLength int,
) *GameService {
	return &GameService{
		repo:          repo,
		runner:        operation.NewRunner("GameService", logger, metrics, tracer, db),
		maxNameLength: maxNameLength,
	}
}

// CreateGame inserts a new game.
func (s *GameService) CreateGame(ctx context.Context, name string) (*Game, error) {
	result, err := operation.WithTelemetry(s.runner, ctx, "CreateGame", name, func(ctx context.Context) (results.OperationResult[*Game, error], error) {
		return operation.RunInTx(s.runner, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[*Game, error], error) {
			return s.createGameLogic(ctx, db, name)
		})
	})
	return operation.Unwrap(result, err)
}

func (s *GameService) createGameLogic(ctx context.Context, db bun.IDB, name string) (results.OperationResult[*Game, error], error) {
	name, err := validation.Name(name, s.maxNameLength)
	if err != nil {
		return results.FailureResult[*Game, error](err), nil
	}

	game := &gamedb.Game{Name: name}
	if err := s.repo.Create(ctx, db, game); err != nil {
		return results.OperationResult[*Game, error]{}, apperrors.Store("create game", err)
	}
	return results.SuccessResult[*Game, error](&Game{ID: game.ID, Name: game.Name}), nil
}

// ListGames returns every game ordered by name. Reads run outside a transaction.
func (s *GameService) ListGames(ctx context.Context) ([]Game, error) {
	result, err := operation.WithTelemetry(s.runner, ctx, "ListGames", "", func(ctx context.Context) (results.OperationResult[[]Game, error], error) {
		rows, err := s.repo.List(ctx, nil)
		if err != nil {
			return results.OperationResult[[]Game, error]{}, apperrors.Store("list games", err)
		}
		games := make([]Game, 0, len(rows))
		for _, g := range rows {
			games = append(games, Game{ID: g.ID, Name: g.Name})
		}
		return results.SuccessResult[[]Game, error](games), nil
	})
	return operation.Unwrap(result, err)
}
