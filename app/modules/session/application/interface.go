package sessionservice

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the session operations.
type Service interface {
	// RecordSession validates req and atomically stores one session with its results.
	RecordSession(ctx context.Context, req RecordSessionRequest) (uuid.UUID, error)

	// ListSessions returns the session history, newest first.
	ListSessions(ctx context.Context) ([]Session, error)
}
