package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	testDB *DB
)

// GetTestDB returns the shared test database connection.
// Skips the calling test when running with -short or when TestMain could
// not reach a Postgres server.
func GetTestDB(t *testing.T) *DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test")
	}
	if testDB == nil {
		t.Skip("skipping integration test: no test database available")
	}
	return testDB
}

// SetupTestDB connects to dbURL and applies the schema migrations (no seed).
// Should be called once in TestMain, not in individual tests.
func SetupTestDB(dbURL string) (*DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := Connect(ctx, dbURL, "")
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	if err := db.Migrate(ctx, false); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// CleanupTestDB truncates all tables for a fresh test state.
// Call this at the start of each integration test.
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Pool.Exec(ctx, "TRUNCATE TABLE project_ratings, projects CASCADE")
	require.NoError(t, err)
}

// SeedTestDB inserts SeedProjects and returns the stored rows in seed order.
func SeedTestDB(t *testing.T, db *DB) []TestProject {
	t.Helper()

	ctx := context.Background()
	seeded := []TestProject{}
	for _, p := range SeedProjects() {
		stored, err := db.InsertProject(ctx, p)
		require.NoError(t, err)
		seeded = append(seeded, TestProject{FixtureID: p.ID, ID: stored.ID})
	}
	return seeded
}

// TestProject maps a fixture id ("1".."20") to the uuid Postgres assigned.
type TestProject struct {
	FixtureID string
	ID        string
}

// TeardownTestDB closes the test database connection.
// Safe to call with nil DB (no-op).
func TeardownTestDB(db *DB) {
	if db != nil {
		db.Close()
	}
}
