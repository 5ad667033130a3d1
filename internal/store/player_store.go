package store

import (
	"context"
	"database/sql"

	"github.com/AdamBeresnev/swiss-tournament/internal/swiss"
	"github.com/jmoiron/sqlx"
)

// PlayerStore is the relational collaborator behind players, matches and the
// derived standings. Every method runs against q, which is either the pool or an
// open transaction, so callers decide the unit of work.
type PlayerStore struct {
	db *sqlx.DB
}

const (
	countPlayersQuery   = "SELECT COUNT(*) FROM players"
	registerPlayerQuery = "INSERT INTO players (name) VALUES (?) RETURNING id"
	getPlayerQuery      = "SELECT id, name, had_bye, created_at FROM players WHERE id = ?"
	markByeQuery        = "UPDATE players SET had_bye = ? WHERE id = ?"
	insertMatchQuery    = "INSERT INTO matches (winner_id, loser_id) VALUES (?, ?) RETURNING id"
	listMatchesQuery    = "SELECT id, winner_id, loser_id, created_at FROM matches ORDER BY id ASC"
	standingsQuery      = `
		SELECT id, name, wins, matches_played
		FROM standings
		ORDER BY wins DESC, id ASC
	`
	matchHistoryQuery = "SELECT winner_id, loser_id FROM matches WHERE loser_id IS NOT NULL"
	byeHistoryQuery   = "SELECT id FROM players WHERE had_bye ORDER BY id ASC"
)

func NewPlayerStore(db *sqlx.DB) *PlayerStore {
	return &PlayerStore{db: db}
}

// DB exposes the pool for callers that need to open their own transaction.
func (s *PlayerStore) DB() *sqlx.DB {
	return s.db
}

func (s *PlayerStore) ResetMatches(ctx context.Context, q sqlx.ExtContext) error {
	_, err := q.ExecContext(ctx, "DELETE FROM matches")
	return err
}

// ResetPlayers also removes their matches through the foreign key cascade.
func (s *PlayerStore) ResetPlayers(ctx context.Context, q sqlx.ExtContext) error {
	_, err := q.ExecContext(ctx, "DELETE FROM players")
	return err
}

func (s *PlayerStore) CountPlayers(ctx context.Context, q sqlx.ExtContext) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, q, &count, countPlayersQuery)
	return count, err
}

func (s *PlayerStore) RegisterPlayer(ctx context.Context, q sqlx.ExtContext, name string) (int64, error) {
	var id int64
	err := sqlx.GetContext(ctx, q, &id, q.Rebind(registerPlayerQuery), name)
	return id, err
}

// GetPlayer returns sql.ErrNoRows when the id is unknown.
func (s *PlayerStore) GetPlayer(ctx context.Context, q sqlx.ExtContext, id int64) (*swiss.Player, error) {
	var player swiss.Player
	err := sqlx.GetContext(ctx, q, &player, q.Rebind(getPlayerQuery), id)
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *PlayerStore) MarkBye(ctx context.Context, q sqlx.ExtContext, id int64) error {
	res, err := q.ExecContext(ctx, q.Rebind(markByeQuery), true, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// InsertMatch stores a finished match, a nil loser records a bye.
func (s *PlayerStore) InsertMatch(ctx context.Context, q sqlx.ExtContext, winnerID int64, loserID *int64) (int64, error) {
	var id int64
	err := sqlx.GetContext(ctx, q, &id, q.Rebind(insertMatchQuery), winnerID, loserID)
	return id, err
}

func (s *PlayerStore) ListMatches(ctx context.Context, q sqlx.ExtContext) ([]swiss.Match, error) {
	matches := []swiss.Match{}
	err := sqlx.SelectContext(ctx, q, &matches, listMatchesQuery)
	return matches, err
}

func (s *PlayerStore) Standings(ctx context.Context, q sqlx.ExtContext) ([]swiss.Standing, error) {
	standings := []swiss.Standing{}
	err := sqlx.SelectContext(ctx, q, &standings, standingsQuery)
	return standings, err
}

func (s *PlayerStore) MatchHistory(ctx context.Context, q sqlx.ExtContext) (swiss.MatchHistory, error) {
	var rows []struct {
		WinnerID int64 `db:"winner_id"`
		LoserID  int64 `db:"loser_id"`
	}
	if err := sqlx.SelectContext(ctx, q, &rows, matchHistoryQuery); err != nil {
		return nil, err
	}

	history := swiss.NewMatchHistory()
	for _, r := range rows {
		history.Add(r.WinnerID, r.LoserID)
	}
	return history, nil
}

func (s *PlayerStore) ByeHistory(ctx context.Context, q sqlx.ExtContext) (swiss.ByeHistory, error) {
	var ids []int64
	if err := sqlx.SelectContext(ctx, q, &ids, byeHistoryQuery); err != nil {
		return nil, err
	}
	return swiss.NewByeHistory(ids...), nil
}
