package leaderboardservice

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	leaderboarddb "github.com/Black-And-White-Club/game-night/app/modules/leaderboard/infrastructure/repositories"
	"github.com/Black-And-White-Club/game-night/app/modules/leaderboard/scoring"
	"github.com/Black-And-White-Club/game-night/app/shared/apperrors"
	"github.com/Black-And-White-Club/game-night/app/shared/operation"
	"github.com/Black-And-White-Club/game-night/internal/observability"
	"github.com/Black-And-White-Club/game-night/pkg/results"
)

// Standing is one ranked player as returned by GET /players.
type Standing struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Score int       `json:"score"`
}

// LeaderboardService implements the Service interface.
type LeaderboardService struct {
	repo    leaderboarddb.Repository
	runner  *operation.Runner
	points  scoring.PointsTable
	legacy  bool
	palette ChartPalette
}

// NewLeaderboardService creates a new LeaderboardService. With legacy set, standings
// come from the stored score; otherwise they are computed from session placements.
func NewLeaderboardService(
	repo leaderboarddb.Repository,
	logger *slog.Logger,
	metrics *observability.Metrics,
	tracer trace.Tracer,
	db *bun.DB,
	legacy bool,
) *LeaderboardService {
	return &LeaderboardService{
		repo:    repo,
		runner:  operation.NewRunner("LeaderboardService", logger, metrics, tracer, db),
		points:  scoring.DefaultPoints,
		legacy:  legacy,
		palette: DefaultPalette,
	}
}

func (s *LeaderboardService) ListStandings(ctx context.Context) ([]Standing, error) {
	result, err := operation.WithTelemetry(s.runner, ctx, "ListStandings", s.mode(), func(ctx context.Context) (results.OperationResult[[]Standing, error], error) {
		return s.listStandingsLogic(ctx, nil)
	})
	return operation.Unwrap(result, err)
}

func (s *LeaderboardService) listStandingsLogic(ctx context.Context, db bun.IDB) (results.OperationResult[[]Standing, error], error) {
	var (
		rows []leaderboarddb.Standing
		err  error
	)
	if s.legacy {
		rows, err = s.repo.StoredStandings(ctx, db)
	} else {
		rows, err = s.repo.ComputedStandings(ctx, db, s.points)
	}
	if err != nil {
		return results.OperationResult[[]Standing, error]{}, apperrors.Store("list standings", err)
	}

	standings := make([]Standing, 0, len(rows))
	for _, r := range rows {
		standings = append(standings, Standing{ID: r.ID, Name: r.Name, Score: r.Score})
	}
	return results.SuccessResult[[]Standing, error](standings), nil
}

func (s *LeaderboardService) ExportStandings(ctx context.Context) ([]byte, error) {
	result, err := operation.WithTelemetry(s.runner, ctx, "ExportStandings", s.mode(), func(ctx context.Context) (results.OperationResult[[]byte, error], error) {
		standings, err := s.listStandingsLogic(ctx, nil)
		if err != nil || standings.IsFailure() {
			return results.OperationResult[[]byte, error]{Failure: standings.Failure}, err
		}
		data, err := BuildStandingsWorkbook(*standings.Success)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, err
		}
		return results.SuccessResult[[]byte, error](data), nil
	})
	return operation.Unwrap(result, err)
}

func (s *LeaderboardService) ChartStandings(ctx context.Context) ([]byte, error) {
	result, err := operation.WithTelemetry(s.runner, ctx, "ChartStandings", s.mode(), func(ctx context.Context) (results.OperationResult[[]byte, error], error) {
		standings, err := s.listStandingsLogic(ctx, nil)
		if err != nil || standings.IsFailure() {
			return results.OperationResult[[]byte, error]{Failure: standings.Failure}, err
		}
		data, err := GenerateStandingsChart(*standings.Success, s.palette)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, err
		}
		return results.SuccessResult[[]byte, error](data), nil
	})
	return operation.Unwrap(result, err)
}

func (s *LeaderboardService) mode() string {
	if s.legacy {
		return "legacy"
	}
	return "sessions"
}
