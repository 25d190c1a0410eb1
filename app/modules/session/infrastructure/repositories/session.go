package sessiondb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new session repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) CreateSession(ctx context.Context, db bun.IDB, session *Session) error {
	_, err := r.resolveDB(db).NewInsert().
		Model(session).
		Returning("id, played_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("sessiondb.CreateSession: %w", err)
	}
	return nil
}

func (r *Impl) CreateResults(ctx context.Context, db bun.IDB, results []SessionResult) error {
	if len(results) == 0 {
		return nil
	}
	_, err := r.resolveDB(db).NewInsert().
		Model(&results).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("sessiondb.CreateResults: %w", err)
	}
	return nil
}

func (r *Impl) List(ctx context.Context, db bun.IDB) ([]Session, error) {
	sessions := make([]Session, 0)
	err := r.resolveDB(db).NewSelect().
		Model(&sessions).
		Relation("Game").
		OrderExpr("s.played_at DESC, s.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("sessiondb.List: %w", err)
	}
	return sessions, nil
}

func (r *Impl) ListResults(ctx context.Context, db bun.IDB, sessionIDs []uuid.UUID) ([]ResultRow, error) {
	rows := make([]ResultRow, 0)
	if len(sessionIDs) == 0 {
		return rows, nil
	}
	err := r.resolveDB(db).NewSelect().
		TableExpr("session_results AS sr").
		ColumnExpr("sr.session_id, sr.player_id, sr.placement").
		ColumnExpr("p.name AS player_name").
		Join("JOIN players AS p ON p.id = sr.player_id").
		Where("sr.session_id IN (?)", bun.In(sessionIDs)).
		OrderExpr("sr.placement ASC, p.name ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("sessiondb.ListResults: %w", err)
	}
	return rows, nil
}
