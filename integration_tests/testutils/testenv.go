package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Black-And-White-Club/game-night/config"
	"github.com/Black-And-White-Club/game-night/db/bundb"
	"github.com/Black-And-White-Club/game-night/integration_tests/containers"
	"github.com/Black-And-White-Club/game-night/internal/observability"
)

// TestEnvironment holds all resources needed for integration testing
type TestEnvironment struct {
	Ctx           context.Context
	CancelContext context.CancelFunc
	PgContainer   *postgres.PostgresContainer
	DB            *bun.DB
	Config        *config.Config
	Observability observability.Observability
}

// NewTestEnvironment starts Postgres, connects bun to it and applies every migration.
func NewTestEnvironment() (*TestEnvironment, error) {
	ctx, cancel := context.WithCancel(context.Background())

	env := &TestEnvironment{
		Ctx:           ctx,
		CancelContext: cancel,
		Observability: observability.NewNoop(),
	}

	pgContainer, pgConnStr, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to setup postgres container: %w", err)
	}
	env.PgContainer = pgContainer

	sqlDB, err := sql.Open("pgx", pgConnStr)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("failed to open sql DB connection: %w", err)
	}

	db := bundb.BunDB(sqlDB)
	env.DB = db

	if err := bundb.Migrate(ctx, db, env.Observability.Provider.Logger); err != nil {
		_ = db.Close()
		_ = pgContainer.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	cfg := config.Default()
	cfg.Postgres.DSN = pgConnStr
	env.Config = cfg

	return env, nil
}

// Reset empties every table so each test starts from a blank store.
func (env *TestEnvironment) Reset(ctx context.Context) error {
	return TruncateTables(ctx, env.DB, "session_results", "sessions", "games", "players")
}

// Cleanup closes the connection pool and terminates the container.
func (env *TestEnvironment) Cleanup() {
	if env.DB != nil {
		if err := env.DB.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}
	if env.PgContainer != nil {
		// Use context.Background() for termination as the original context might be cancelled
		if err := env.PgContainer.Terminate(context.Background()); err != nil {
			log.Printf("Error terminating Postgres container: %v", err)
		}
	}
	if env.CancelContext != nil {
		env.CancelContext()
	}
	log.Println("Test environment resources cleaned up.")
}

// Global variables for the test environment, initialized once per test binary.
var (
	testEnv     *TestEnvironment
	testEnvOnce sync.Once
	testEnvErr  error
)

// GetTestEnv returns the shared environment, reset to empty tables. Tests are
// skipped in -short mode and when no container runtime is reachable.
func GetTestEnv(t *testing.T) *TestEnvironment {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	testEnvOnce.Do(func() {
		log.Println("Initializing integration test environment...")
		testEnv, testEnvErr = NewTestEnvironment()
	})

	if testEnvErr != nil {
		t.Skipf("integration environment unavailable: %v", testEnvErr)
	}

	if err := testEnv.Reset(testEnv.Ctx); err != nil {
		t.Fatalf("Failed to reset environment: %v", err)
	}
	return testEnv
}

// Shutdown releases the shared environment. Call it from TestMain after m.Run.
func Shutdown() {
	if testEnv != nil {
		testEnv.Cleanup()
	}
}
