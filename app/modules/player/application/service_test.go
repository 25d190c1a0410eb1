package playerservice

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	playerdb "github.com/Black-And-White-Club/game-night/app/modules/player/infrastructure/repositories"
	"github.com/Black-And-White-Club/game-night/app/shared/apperrors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"
)

func newTestService(repo playerdb.Repository) *PlayerService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracer := noop.NewTracerProvider().Tracer("test")
	return NewPlayerService(repo, logger, nil, tracer, nil, 10)
}

func TestPlayerService_CreatePlayer(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		setupRepo func(*FakePlayerRepo)
		wantName  string
		wantValid bool
		wantStore bool
		wantTrace []string
	}{
		{
			name:      "trims and creates with zero score",
			input:     "  Ada ",
			wantName:  "Ada",
			wantTrace: []string{"Create"},
		},
		{
			name:      "empty name rejected before insert",
			input:     "",
			wantValid: true,
			wantTrace: []string{},
		},
		{
			name:      "whitespace only rejected",
			input:     "   \t",
			wantValid: true,
			wantTrace: []string{},
		},
		{
			name:      "name over limit rejected",
			input:     strings.Repeat("x", 11),
			wantValid: true,
			wantTrace: []string{},
		},
		{
			name:      "limit counts runes",
			input:     strings.Repeat("é", 10),
			wantName:  strings.Repeat("é", 10),
			wantTrace: []string{"Create"},
		},
		{
			name:  "store failure",
			input: "Grace",
			setupRepo: func(f *FakePlayerRepo) {
				f.CreateFunc = func(ctx context.Context, db bun.IDB, player *playerdb.Player) error {
					return errors.New("connection reset")
				}
			},
			wantStore: true,
			wantTrace: []string{"Create"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewFakePlayerRepo()
			if tt.setupRepo != nil {
				tt.setupRepo(repo)
			}
			s := newTestService(repo)

			got, err := s.CreatePlayer(context.Background(), tt.input)

			assert.Equal(t, tt.wantTrace, repo.Trace())
			switch {
			case tt.wantValid:
				require.Error(t, err)
				assert.True(t, apperrors.IsValidation(err))
				assert.Nil(t, got)
			case tt.wantStore:
				require.Error(t, err)
				assert.True(t, apperrors.IsStore(err))
				assert.Nil(t, got)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantName, got.Name)
				assert.Equal(t, 0, got.Score)
				assert.NotEqual(t, uuid.Nil, got.ID)
			}
		})
	}
}

// memoryScores mimics GREATEST(score + delta, 0) for the fake repository.
func memoryScores(name string, start int) (*FakePlayerRepo, uuid.UUID) {
	id := uuid.New()
	score := start
	repo := NewFakePlayerRepo()
	repo.AdjustScoreFunc = func(ctx context.Context, db bun.IDB, got uuid.UUID, delta int) (*playerdb.Player, error) {
		if got != id {
			return nil, playerdb.ErrNotFound
		}
		score = max(score+delta, 0)
		return &playerdb.Player{ID: id, Name: name, Score: score}, nil
	}
	return repo, id
}

func TestPlayerService_AdjustScore(t *testing.T) {
	t.Run("floors each call at zero", func(t *testing.T) {
		repo, id := memoryScores("Ada", 0)
		s := newTestService(repo)

		p, err := s.AdjustScore(context.Background(), id, -5)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Score)
		assert.Equal(t, "Ada", p.Name)

		p, err = s.AdjustScore(context.Background(), id, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, p.Score)
	})

	t.Run("unknown player is not found", func(t *testing.T) {
		repo, _ := memoryScores("Ada", 0)
		s := newTestService(repo)

		_, err := s.AdjustScore(context.Background(), uuid.New(), 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.False(t, apperrors.IsStore(err))
		// The single UPDATE ... RETURNING reports a missing row; no lookup precedes it.
		assert.Equal(t, []string{"AdjustScore"}, repo.Trace())
	})

	t.Run("store failure", func(t *testing.T) {
		repo := NewFakePlayerRepo()
		repo.AdjustScoreFunc = func(ctx context.Context, db bun.IDB, id uuid.UUID, delta int) (*playerdb.Player, error) {
			return nil, errors.New("deadlock detected")
		}
		s := newTestService(repo)

		_, err := s.AdjustScore(context.Background(), uuid.New(), 1)
		require.Error(t, err)
		assert.True(t, apperrors.IsStore(err))
		assert.Equal(t, []string{"AdjustScore"}, repo.Trace())
	})
}
