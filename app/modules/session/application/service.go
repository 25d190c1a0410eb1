package sessionservice

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"

	"github.com/Black-And-White-Club/game-night/app/modules/leaderboard/scoring"
	sessiondb "github.com/Black-And-White-Club/game-night/app/modules/session/infrastructure/repositories"
	"github.com/Black-And-White-Club/game-night/app/shared/apperrors"
	"github.com/Black-And-White-Club/game-night/app/shared/operation"
	"github.com/Black-And-White-Club/game-night/internal/observability"
	"github.com/Black-And-White-Club/game-night/internal/observability/attr"
	"github.com/Black-And-White-Club/game-night/pkg/results"
)

// SessionService implements the Service interface.
type SessionService struct {
	repo             sessiondb.Repository
	runner           *operation.Runner
	points           scoring.PointsTable
	strictPlacements bool
}

// NewSessionService creates a new SessionService.
func NewSessionService(
	repo sessiondb.Repository,
	logger *slog.Logger,
	metrics *observability.Metrics,
	tracer trace.Tracer,
	db *bun.DB,
	strictPlacements bool,
) *SessionService {
	return &SessionService{
		repo:             repo,
		runner:           operation.NewRunner("SessionService", logger, metrics, tracer, db),
		points:           scoring.DefaultPoints,
		strictPlacements: strictPlacements,
	}
}

// RecordSession stores a session and its results in one transaction.
// Validation failures write nothing; a failing insert rolls back every row.
func (s *SessionService) RecordSession(ctx context.Context, req RecordSessionRequest) (uuid.UUID, error) {
	result, err := operation.WithTelemetry(s.runner, ctx, "RecordSession", req.GameID, func(ctx context.Context) (results.OperationResult[uuid.UUID, error], error) {
		gameID, rows, err := validateRequest(req, s.strictPlacements)
		if err != nil {
			return results.FailureResult[uuid.UUID, error](err), nil
		}

		return operation.RunInTx(s.runner, ctx, func(ctx context.Context, db bun.IDB) (results.OperationResult[uuid.UUID, error], error) {
			return s.recordSessionLogic(ctx, db, gameID, rows)
		})
	})
	return operation.Unwrap(result, err)
}

func (s *SessionService) recordSessionLogic(ctx context.Context, db bun.IDB, gameID uuid.UUID, rows []sessiondb.SessionResult) (results.OperationResult[uuid.UUID, error], error) {
	session := &sessiondb.Session{GameID: gameID}
	if err := s.repo.CreateSession(ctx, db, session); err != nil {
		return results.OperationResult[uuid.UUID, error]{}, apperrors.Store("insert session", err)
	}

	for i := range rows {
		rows[i].SessionID = session.ID
	}
	if err := s.repo.CreateResults(ctx, db, rows); err != nil {
		return results.OperationResult[uuid.UUID, error]{}, apperrors.Store("insert session results", err)
	}

	s.runner.Logger.InfoContext(ctx, "Session recorded",
		attr.UUID("session_id", session.ID),
		attr.UUID("game_id", gameID),
		attr.Int("results", len(rows)),
	)
	return results.SuccessResult[uuid.UUID, error](session.ID), nil
}

// ListSessions returns every recorded session with its results and awarded points.
func (s *SessionService) ListSessions(ctx context.Context) ([]Session, error) {
	result, err := operation.WithTelemetry(s.runner, ctx, "ListSessions", "", func(ctx context.Context) (results.OperationResult[[]Session, error], error) {
		return s.listSessionsLogic(ctx, nil)
	})
	return operation.Unwrap(result, err)
}

func (s *SessionService) listSessionsLogic(ctx context.Context, db bun.IDB) (results.OperationResult[[]Session, error], error) {
	rows, err := s.repo.List(ctx, db)
	if err != nil {
		return results.OperationResult[[]Session, error]{}, apperrors.Store("list sessions", err)
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	resultRows, err := s.repo.ListResults(ctx, db, ids)
	if err != nil {
		return results.OperationResult[[]Session, error]{}, apperrors.Store("list session results", err)
	}

	bySession := make(map[uuid.UUID][]Result, len(rows))
	for _, rr := range resultRows {
		bySession[rr.SessionID] = append(bySession[rr.SessionID], Result{
			PlayerID:   rr.PlayerID,
			PlayerName: rr.PlayerName,
			Placement:  rr.Placement,
			Points:     s.points.For(rr.Placement),
		})
	}

	sessions := make([]Session, 0, len(rows))
	for _, r := range rows {
		view := Session{
			ID:       r.ID,
			GameID:   r.GameID,
			PlayedAt: r.PlayedAt,
			Results:  bySession[r.ID],
		}
		if r.Game != nil {
			view.GameName = r.Game.Name
		}
		if view.Results == nil {
			view.Results = []Result{}
		}
		sessions = append(sessions, view)
	}
	return results.SuccessResult[[]Session, error](sessions), nil
}
