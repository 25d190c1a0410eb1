package sessionservice

import (
	"context"
	"time"

	sessiondb "github.com/Black-And-White-Club/game-night/app/modules/session/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Session Repo
// ------------------------

type FakeSessionRepo struct {
	trace []string

	// Inserted holds every result row passed to CreateResults.
	Inserted []sessiondb.SessionResult

	CreateSessionFunc func(ctx context.Context, db bun.IDB, session *sessiondb.Session) error
	CreateResultsFunc func(ctx context.Context, db bun.IDB, results []sessiondb.SessionResult) error
	ListFunc          func(ctx context.Context, db bun.IDB) ([]sessiondb.Session, error)
	ListResultsFunc   func(ctx context.Context, db bun.IDB, sessionIDs []uuid.UUID) ([]sessiondb.ResultRow, error)
}

func NewFakeSessionRepo() *FakeSessionRepo {
	return &FakeSessionRepo{trace: []string{}}
}

func (f *FakeSessionRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeSessionRepo) CreateSession(ctx context.Context, db bun.IDB, session *sessiondb.Session) error {
	f.record("CreateSession")
	if f.CreateSessionFunc != nil {
		return f.CreateSessionFunc(ctx, db, session)
	}
	session.ID = uuid.New()
	session.PlayedAt = time.Now()
	return nil
}

func (f *FakeSessionRepo) CreateResults(ctx context.Context, db bun.IDB, results []sessiondb.SessionResult) error {
	f.record("CreateResults")
	if f.CreateResultsFunc != nil {
		return f.CreateResultsFunc(ctx, db, results)
	}
	f.Inserted = append(f.Inserted, results...)
	return nil
}

func (f *FakeSessionRepo) List(ctx context.Context, db bun.IDB) ([]sessiondb.Session, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx, db)
	}
	return []sessiondb.Session{}, nil
}

func (f *FakeSessionRepo) ListResults(ctx context.Context, db bun.IDB, sessionIDs []uuid.UUID) ([]sessiondb.ResultRow, error) {
	f.record("ListResults")
	if f.ListResultsFunc != nil {
		return f.ListResultsFunc(ctx, db, sessionIDs)
	}
	return []sessiondb.ResultRow{}, nil
}

func (f *FakeSessionRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ sessiondb.Repository = (*FakeSessionRepo)(nil)
