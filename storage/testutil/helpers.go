package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/solset/stringlens/analysis"
	"github.com/solset/stringlens/db"
)

// SetupTestDB creates an in-memory SQLite database for testing.
// Uses real migrations to ensure test schema matches production schema.
func SetupTestDB(t *testing.T) *sql.DB {
	testDB, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	err = db.Migrate(testDB, nil)
	require.NoError(t, err, "Failed to run migrations")

	return testDB
}

// SetupEmptyDB creates an in-memory SQLite database WITHOUT the strings
// table. Used for testing error handling when schema is missing.
func SetupEmptyDB(t *testing.T) *sql.DB {
	testDB, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	return testDB
}

// AnalyzedRecords analyzes each value in order, for seeding stores in tests
func AnalyzedRecords(values ...string) []analysis.PropertyRecord {
	records := make([]analysis.PropertyRecord, len(values))
	for i, v := range values {
		records[i] = analysis.Analyze(v)
	}
	return records
}
