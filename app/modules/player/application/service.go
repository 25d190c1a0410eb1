package playerservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	playerdb "github.com/Black-And-White-Club/game-night/app/modules/player/infrastructure/repositories"
	"github.com/Black-And-White-Club/game-night/app/shared/apperrors"
	"github.com/Black-And-White-Club/game-night/app/shared/operation"
	"github.com/Black-And-White-Club/game-night/app/shared/validation"
	"github.com/Black-And-White-Club/game-night/internal/observability"
	"github.com/Black-And-White-Club/game-night/pkg/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// PlayerService implements the Service interface.
type PlayerService struct {
	repo          playerdb.Repository
	runner        *operation.Runner
	maxNameLength int
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(
	repo playerdb.Repository,
	logger *slog.Logger,
	metrics *observability.Metrics,
	tracer trace.Tracer,
	db *bun.DB,
	maxNameLength int,
) *PlayerService {
	return &PlayerService{
		repo:          repo,
		runner:        operation.NewRunner("PlayerService", logger, metrics, tracer, db),
		maxNameLength: maxNameLength,
	}
}

// CreatePlayer inserts a new player.
func (s *PlayerService) CreatePlayer(ctx context.Context, name string) (*Player, error) {
	createTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*Player, error], error) {
		return s.createPlayerLogic(ctx, db, name)
	}

	result, err := operation.WithTelemetry(s.runner, ctx, "CreatePlayer", name, func(ctx context.Context) (results.OperationResult[*Player, error], error) {
		return operation.RunInTx(s.runner, ctx, createTx)
	})
	return operation.Unwrap(result, err)
}

func (s *PlayerService) createPlayerLogic(ctx context.Context, db bun.IDB, name string) (results.OperationResult[*Player, error], error) {
	name, err := validation.Name(name, s.maxNameLength)
	if err != nil {
		return results.FailureResult[*Player, error](err), nil
	}

	player := &playerdb.Player{Name: name}
	if err := s.repo.Create(ctx, db, player); err != nil {
		return results.OperationResult[*Player, error]{}, apperrors.Store("create player", err)
	}

	return results.SuccessResult[*Player, error](toPlayer(player)), nil
}

// AdjustScore applies delta to the stored score of player id.
func (s *PlayerService) AdjustScore(ctx context.Context, id uuid.UUID, delta int) (*Player, error) {
	adjustTx := func(ctx context.Context, db bun.IDB) (results.OperationResult[*Player, error], error) {
		return s.adjustScoreLogic(ctx, db, id, delta)
	}

	identifier := id.String() + " delta=" + strconv.Itoa(delta)
	result, err := operation.WithTelemetry(s.runner, ctx, "AdjustScore", identifier, func(ctx context.Context) (results.OperationResult[*Player, error], error) {
		return operation.RunInTx(s.runner, ctx, adjustTx)
	})
	return operation.Unwrap(result, err)
}

func (s *PlayerService) adjustScoreLogic(ctx context.Context, db bun.IDB, id uuid.UUID, delta int) (results.OperationResult[*Player, error], error) {
	player, err := s.repo.AdjustScore(ctx, db, id, delta)
	if err != nil {
		if errors.Is(err, playerdb.ErrNotFound) {
			return results.FailureResult[*Player, error](fmt.Errorf("player %s: %w", id, apperrors.ErrNotFound)), nil
		}
		return results.OperationResult[*Player, error]{}, apperrors.Store("adjust score", err)
	}
	return results.SuccessResult[*Player, error](toPlayer(player)), nil
}
