package sessiondb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for session persistence.
// CreateSession and CreateResults are meant to share one transaction handle.
type Repository interface {
	// CreateSession inserts session and fills its generated id and played_at.
	CreateSession(ctx context.Context, db bun.IDB, session *Session) error

	// CreateResults inserts the result rows of one session.
	CreateResults(ctx context.Context, db bun.IDB, results []SessionResult) error

	// List returns sessions newest first with their game loaded.
	List(ctx context.Context, db bun.IDB) ([]Session, error)

	// ListResults returns the results of the given sessions ordered by placement.
	ListResults(ctx context.Context, db bun.IDB, sessionIDs []uuid.UUID) ([]ResultRow, error)
}
