package sessionservice

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	gamedb "github.com/Black-And-White-Club/game-night/app/modules/game/infrastructure/repositories"
	sessiondb "github.com/Black-And-White-Club/game-night/app/modules/session/infrastructure/repositories"
	"github.com/Black-And-White-Club/game-night/app/shared/apperrors"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"
)

func newTestService(repo sessiondb.Repository, strict bool) *SessionService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSessionService(repo, logger, nil, noop.NewTracerProvider().Tracer("test"), nil, strict)
}

func placement(p int) *int { return &p }

func fourResults(placements ...int) []ResultInput {
	out := make([]ResultInput, 0, len(placements))
	for _, p := range placements {
		out = append(out, ResultInput{PlayerID: uuid.NewString(), Placement: placement(p)})
	}
	return out
}

func TestSessionService_RecordSession(t *testing.T) {
	gameID := uuid.NewString()
	dupPlayer := uuid.NewString()

	tests := []struct {
		name      string
		strict    bool
		req       RecordSessionRequest
		setupRepo func(*FakeSessionRepo)
		wantErr   string
		wantStore bool
		wantTrace []string
	}{
		{
			name:      "four results insert session then results",
			req:       RecordSessionRequest{GameID: gameID, Results: fourResults(1, 2, 3, 4)},
			wantTrace: []string{"CreateSession", "CreateResults"},
		},
		{
			name:      "missing game id",
			req:       RecordSessionRequest{Results: fourResults(1, 2, 3, 4)},
			wantErr:   "gameId is required",
			wantTrace: []string{},
		},
		{
			name:      "malformed game id",
			req:       RecordSessionRequest{GameID: "catan", Results: fourResults(1, 2, 3, 4)},
			wantErr:   "gameId must be a valid UUID",
			wantTrace: []string{},
		},
		{
			name:      "missing results",
			req:       RecordSessionRequest{GameID: gameID},
			wantErr:   "results is required",
			wantTrace: []string{},
		},
		{
			name:      "three results",
			req:       RecordSessionRequest{GameID: gameID, Results: fourResults(1, 2, 3)},
			wantErr:   "results must contain exactly 4 entries, got 3",
			wantTrace: []string{},
		},
		{
			name:      "five results",
			req:       RecordSessionRequest{GameID: gameID, Results: fourResults(1, 2, 3, 4, 4)},
			wantErr:   "results must contain exactly 4 entries, got 5",
			wantTrace: []string{},
		},
		{
			name: "malformed player id",
			req: RecordSessionRequest{GameID: gameID, Results: append(fourResults(1, 2, 3),
				ResultInput{PlayerID: "bob", Placement: placement(4)})},
			wantErr:   "results[3].playerId must be a valid UUID",
			wantTrace: []string{},
		},
		{
			name: "missing placement",
			req: RecordSessionRequest{GameID: gameID, Results: append(fourResults(1, 2, 3),
				ResultInput{PlayerID: uuid.NewString()})},
			wantErr:   "results[3].placement is required",
			wantTrace: []string{},
		},
		{
			name:      "lenient mode passes duplicate placements to the store",
			req:       RecordSessionRequest{GameID: gameID, Results: fourResults(1, 1, 1, 1)},
			wantTrace: []string{"CreateSession", "CreateResults"},
		},
		{
			name:      "strict mode rejects duplicate placements",
			strict:    true,
			req:       RecordSessionRequest{GameID: gameID, Results: fourResults(1, 1, 2, 3)},
			wantErr:   "results placements must be distinct",
			wantTrace: []string{},
		},
		{
			name:      "strict mode rejects out of range placement",
			strict:    true,
			req:       RecordSessionRequest{GameID: gameID, Results: fourResults(1, 2, 3, 5)},
			wantErr:   "results placements must be between 1 and 4",
			wantTrace: []string{},
		},
		{
			name:   "strict mode rejects repeated player",
			strict: true,
			req: RecordSessionRequest{GameID: gameID, Results: []ResultInput{
				{PlayerID: dupPlayer, Placement: placement(1)},
				{PlayerID: dupPlayer, Placement: placement(2)},
				{PlayerID: uuid.NewString(), Placement: placement(3)},
				{PlayerID: uuid.NewString(), Placement: placement(4)},
			}},
			wantErr:   "results must reference 4 distinct players",
			wantTrace: []string{},
		},
		{
			name: "session insert failure skips results",
			req:  RecordSessionRequest{GameID: gameID, Results: fourResults(1, 2, 3, 4)},
			setupRepo: func(f *FakeSessionRepo) {
				f.CreateSessionFunc = func(ctx context.Context, db bun.IDB, s *sessiondb.Session) error {
					return errors.New("violates foreign key constraint \"sessions_game_id_fkey\"")
				}
			},
			wantStore: true,
			wantTrace: []string{"CreateSession"},
		},
		{
			name: "results insert failure",
			req:  RecordSessionRequest{GameID: gameID, Results: fourResults(1, 2, 3, 4)},
			setupRepo: func(f *FakeSessionRepo) {
				f.CreateResultsFunc = func(ctx context.Context, db bun.IDB, rows []sessiondb.SessionResult) error {
					return errors.New("violates foreign key constraint \"session_results_player_id_fkey\"")
				}
			},
			wantStore: true,
			wantTrace: []string{"CreateSession", "CreateResults"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakeSessionRepo()
			if tt.setupRepo != nil {
				tt.setupRepo(repo)
			}
			s := newTestService(repo, tt.strict)

			id, err := s.RecordSession(context.Background(), tt.req)

			assert.Equal(t, tt.wantTrace, repo.Trace())
			switch {
			case tt.wantErr != "":
				require.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
				assert.EqualError(t, err, tt.wantErr)
			case tt.wantStore:
				require.Error(t, err)
				assert.True(t, apperrors.IsStore(err))
				assert.False(t, apperrors.IsValidation(err))
			default:
				require.NoError(t, err)
				assert.NotEqual(t, uuid.Nil, id)
			}
		})
	}
}

func TestSessionService_RecordSession_LinksResultsToSession(t *testing.T) {
	repo := NewFakeSessionRepo()
	sessionID := uuid.New()
	repo.CreateSessionFunc = func(ctx context.Context, db bun.IDB, s *sessiondb.Session) error {
		s.ID = sessionID
		return nil
	}
	req := RecordSessionRequest{GameID: uuid.NewString(), Results: fourResults(1, 2, 3, 4)}

	id, err := newTestService(repo, false).RecordSession(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, sessionID, id)

	require.Len(t, repo.Inserted, 4)
	for i, row := range repo.Inserted {
		assert.Equal(t, sessionID, row.SessionID)
		assert.Equal(t, req.Results[i].PlayerID, row.PlayerID.String())
		assert.Equal(t, i+1, row.Placement)
	}
}

func TestSessionService_ListSessions(t *testing.T) {
	gameID := uuid.New()
	s1, s2 := uuid.New(), uuid.New()
	ada, bob := uuid.New(), uuid.New()
	playedAt := time.Date(2026, 10, 16, 20, 0, 0, 0, time.UTC)

	repo := NewFakeSessionRepo()
	repo.ListFunc = func(ctx context.Context, db bun.IDB) ([]sessiondb.Session, error) {
		return []sessiondb.Session{
			{ID: s2, GameID: gameID, PlayedAt: playedAt.Add(time.Hour), Game: &gamedb.Game{ID: gameID, Name: "Catan"}},
			{ID: s1, GameID: gameID, PlayedAt: playedAt, Game: &gamedb.Game{ID: gameID, Name: "Catan"}},
		}, nil
	}
	repo.ListResultsFunc = func(ctx context.Context, db bun.IDB, ids []uuid.UUID) ([]sessiondb.ResultRow, error) {
		assert.Equal(t, []uuid.UUID{s2, s1}, ids)
		return []sessiondb.ResultRow{
			{SessionID: s1, PlayerID: ada, PlayerName: "Ada", Placement: 1},
			{SessionID: s1, PlayerID: bob, PlayerName: "Bob", Placement: 4},
		}, nil
	}

	got, err := newTestService(repo, false).ListSessions(context.Background())
	require.NoError(t, err)

	want := []Session{
		{ID: s2, GameID: gameID, GameName: "Catan", PlayedAt: playedAt.Add(time.Hour), Results: []Result{}},
		{ID: s1, GameID: gameID, GameName: "Catan", PlayedAt: playedAt, Results: []Result{
			{PlayerID: ada, PlayerName: "Ada", Placement: 1, Points: 3},
			{PlayerID: bob, PlayerName: "Bob", Placement: 4, Points: 0},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListSessions() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"List", "ListResults"}, repo.Trace())
}

func TestSessionService_ListSessions_StoreFailure(t *testing.T) {
	repo := NewFakeSessionRepo()
	repo.ListFunc = func(ctx context.Context, db bun.IDB) ([]sessiondb.Session, error) {
		return nil, errors.New("connection refused")
	}

	_, err := newTestService(repo, false).ListSessions(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsStore(err))
}
