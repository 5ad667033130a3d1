package service

import (
	"context"
	"testing"

	"github.com/AdamBeresnev/swiss-tournament/internal/config"
	"github.com/AdamBeresnev/swiss-tournament/internal/db"
	"github.com/AdamBeresnev/swiss-tournament/internal/store"
	"github.com/AdamBeresnev/swiss-tournament/internal/swiss"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database and applies migrations
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.Open(config.DriverSQLite, "file::memory:")
	require.NoError(t, err, "Failed to connect to in-memory DB")

	err = db.RunMigrations(database, "file://../../migrations/sqlite3")
	require.NoError(t, err, "Failed to apply migrations")

	return database
}

func newTestService(t *testing.T) (*TournamentService, *store.PlayerStore) {
	t.Helper()

	database := setupTestDB(t)
	t.Cleanup(func() { database.Close() })

	playerStore := store.NewPlayerStore(database)
	return NewTournamentService(database, playerStore), playerStore
}

func register(t *testing.T, s *TournamentService, names ...string) []int64 {
	t.Helper()

	ids := make([]int64, 0, len(names))
	for _, name := range names {
		id, err := s.RegisterPlayer(context.Background(), name)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func TestRegisterPlayer(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	ids := register(t, s, "Chandra Nalaar", "Chandra Nalaar")
	assert.NotEqual(t, ids[0], ids[1])

	count, err := s.CountPlayers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = s.RegisterPlayer(ctx, "   ")
	assert.ErrorIs(t, err, swiss.ErrInvalidName)

	count, err = s.CountPlayers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestResetPlayers(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	ids := register(t, s, "A", "B")
	_, err := s.RecordMatch(ctx, ids[0], &ids[1])
	require.NoError(t, err)

	require.NoError(t, s.ResetMatches(ctx))
	matches, err := s.Matches(ctx)
	require.NoError(t, err)
	assert.Empty(t, matches)

	require.NoError(t, s.ResetPlayers(ctx))
	count, err := s.CountPlayers(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestStorageUnavailable(t *testing.T) {
	database := setupTestDB(t)
	s := NewTournamentService(database, store.NewPlayerStore(database))
	require.NoError(t, database.Close())

	ctx := context.Background()

	_, err := s.CountPlayers(ctx)
	assert.ErrorIs(t, err, swiss.ErrStorageUnavailable)

	_, err = s.RegisterPlayer(ctx, "A")
	assert.ErrorIs(t, err, swiss.ErrStorageUnavailable)

	_, err = s.PairRound(ctx)
	assert.ErrorIs(t, err, swiss.ErrStorageUnavailable)
}
