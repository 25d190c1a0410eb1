package playerhandlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	playerservice "github.com/Black-And-White-Club/game-night/app/modules/player/application"
	"github.com/Black-And-White-Club/game-night/app/shared/apperrors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func newTestHandlers(svc *FakeService) Handlers {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewPlayerHandlers(svc, logger, noop.NewTracerProvider().Tracer("test"))
}

func TestPlayerHandlers_HandleCreatePlayer(t *testing.T) {
	adaID := uuid.New()

	tests := []struct {
		name       string
		body       string
		setup      func(*FakeService)
		wantStatus int
		verify     func(t *testing.T, rr *httptest.ResponseRecorder)
	}{
		{
			name: "created",
			body: `{"name":"Ada"}`,
			setup: func(f *FakeService) {
				f.CreatePlayerFunc = func(ctx context.Context, name string) (*playerservice.Player, error) {
					return &playerservice.Player{ID: adaID, Name: name}, nil
				}
			},
			wantStatus: http.StatusOK,
			verify: func(t *testing.T, rr *httptest.ResponseRecorder) {
				var got map[string]any
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				assert.Equal(t, adaID.String(), got["id"])
				assert.Equal(t, "Ada", got["name"])
				assert.EqualValues(t, 0, got["score"])
			},
		},
		{
			name: "validation failure from service",
			body: `{}`,
			setup: func(f *FakeService) {
				f.CreatePlayerFunc = func(ctx context.Context, name string) (*playerservice.Player, error) {
					return nil, apperrors.Validation("name", "is required")
				}
			},
			wantStatus: http.StatusBadRequest,
			verify: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.Contains(t, rr.Body.String(), "name is required")
			},
		},
		{
			name:       "malformed body",
			body:       `{"name":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "store failure",
			body: `{"name":"Ada"}`,
			setup: func(f *FakeService) {
				f.CreatePlayerFunc = func(ctx context.Context, name string) (*playerservice.Player, error) {
					return nil, fmt.Errorf("CreatePlayer: %w", apperrors.Store("create player", errors.New("db down")))
				}
			},
			wantStatus: http.StatusInternalServerError,
			verify: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.NotContains(t, rr.Body.String(), "db down")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &FakeService{}
			if tt.setup != nil {
				tt.setup(svc)
			}
			h := newTestHandlers(svc)

			req := httptest.NewRequest(http.MethodPost, "/players", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			h.HandleCreatePlayer(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.verify != nil {
				tt.verify(t, rr)
			}
		})
	}
}

func TestPlayerHandlers_HandleAdjustScore(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		body       string
		setup      func(*FakeService)
		wantStatus int
		wantScore  int
		wantError  string
	}{
		{
			name: "negative delta floors at zero",
			body: fmt.Sprintf(`{"id":%q,"delta":-5}`, id),
			setup: func(f *FakeService) {
				f.AdjustScoreFunc = func(ctx context.Context, got uuid.UUID, delta int) (*playerservice.Player, error) {
					assert.Equal(t, id, got)
					assert.Equal(t, -5, delta)
					return &playerservice.Player{ID: got, Name: "Ada", Score: 0}, nil
				}
			},
			wantStatus: http.StatusOK,
			wantScore:  0,
		},
		{
			name:       "zero delta is accepted",
			body:       fmt.Sprintf(`{"id":%q,"delta":0}`, id),
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing delta",
			body:       fmt.Sprintf(`{"id":%q}`, id),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid id",
			body:       `{"id":"abc","delta":1}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "delta above integer column range",
			body:       fmt.Sprintf(`{"id":%q,"delta":2147483648}`, id),
			setup:      failOnAdjust(t),
			wantStatus: http.StatusBadRequest,
			wantError:  "delta is out of range",
		},
		{
			name:       "delta below integer column range",
			body:       fmt.Sprintf(`{"id":%q,"delta":-2147483649}`, id),
			setup:      failOnAdjust(t),
			wantStatus: http.StatusBadRequest,
			wantError:  "delta is out of range",
		},
		{
			name: "delta at integer column bound",
			body: fmt.Sprintf(`{"id":%q,"delta":2147483647}`, id),
			setup: func(f *FakeService) {
				f.AdjustScoreFunc = func(ctx context.Context, got uuid.UUID, delta int) (*playerservice.Player, error) {
					assert.Equal(t, math.MaxInt32, delta)
					return &playerservice.Player{ID: got, Name: "Ada", Score: math.MaxInt32}, nil
				}
			},
			wantStatus: http.StatusOK,
			wantScore:  math.MaxInt32,
		},
		{
			name: "unknown player",
			body: fmt.Sprintf(`{"id":%q,"delta":1}`, id),
			setup: func(f *FakeService) {
				f.AdjustScoreFunc = func(ctx context.Context, got uuid.UUID, delta int) (*playerservice.Player, error) {
					return nil, fmt.Errorf("player %s: %w", got, apperrors.ErrNotFound)
				}
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &FakeService{}
			if tt.setup != nil {
				tt.setup(svc)
			}
			h := newTestHandlers(svc)

			req := httptest.NewRequest(http.MethodPost, "/score", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			h.HandleAdjustScore(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantError != "" {
				assert.Contains(t, rr.Body.String(), tt.wantError)
			}
			if tt.wantStatus == http.StatusOK {
				var got playerservice.Player
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				assert.Equal(t, tt.wantScore, got.Score)
			}
		})
	}
}

func failOnAdjust(t *testing.T) func(*FakeService) {
	return func(f *FakeService) {
		f.AdjustScoreFunc = func(ctx context.Context, id uuid.UUID, delta int) (*playerservice.Player, error) {
			t.Errorf("AdjustScore called with out-of-range delta %d", delta)
			return nil, nil
		}
	}
}
