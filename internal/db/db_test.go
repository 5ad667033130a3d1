package db

import (
	"testing"

	"github.com/AdamBeresnev/swiss-tournament/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations_SQLite(t *testing.T) {
	database, err := Open(config.DriverSQLite, "file::memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, RunMigrations(database, "file://../../migrations/sqlite3"))
	// Second run has nothing left to apply
	require.NoError(t, RunMigrations(database, "file://../../migrations/sqlite3"))

	var tables []string
	err = database.Select(&tables, "SELECT name FROM sqlite_master WHERE type IN ('table', 'view') AND name IN ('players', 'matches', 'standings') ORDER BY name")
	require.NoError(t, err)
	assert.Equal(t, []string{"matches", "players", "standings"}, tables)

	var fk int
	require.NoError(t, database.Get(&fk, "PRAGMA foreign_keys"))
	assert.Equal(t, 1, fk)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open("mysql", "whatever")
	assert.Error(t, err)
}
