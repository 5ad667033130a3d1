package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/AdamBeresnev/swiss-tournament/internal/store"
	"github.com/AdamBeresnev/swiss-tournament/internal/swiss"
	"github.com/jmoiron/sqlx"
)

type TournamentService struct {
	db    *sqlx.DB
	store *store.PlayerStore

	// Pairing needs a stable snapshot of standings and history
	pairingMu sync.Mutex
}

func NewTournamentService(db *sqlx.DB, store *store.PlayerStore) *TournamentService {
	return &TournamentService{db: db, store: store}
}

// storageError marks err as a collaborator failure while keeping the driver error
// reachable through errors.Is / errors.As.
func storageError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, swiss.ErrStorageUnavailable, err)
}

// inTx runs fn inside a transaction that is committed only when fn succeeds.
func (s *TournamentService) inTx(ctx context.Context, op string, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return storageError(op, err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storageError(op, err)
	}
	return nil
}

func (s *TournamentService) ResetMatches(ctx context.Context) error {
	return s.inTx(ctx, "reset matches", func(tx *sqlx.Tx) error {
		if err := s.store.ResetMatches(ctx, tx); err != nil {
			return storageError("reset matches", err)
		}
		return nil
	})
}

func (s *TournamentService) ResetPlayers(ctx context.Context) error {
	return s.inTx(ctx, "reset players", func(tx *sqlx.Tx) error {
		if err := s.store.ResetPlayers(ctx, tx); err != nil {
			return storageError("reset players", err)
		}
		return nil
	})
}

func (s *TournamentService) CountPlayers(ctx context.Context) (int, error) {
	count, err := s.store.CountPlayers(ctx, s.db)
	if err != nil {
		return 0, storageError("count players", err)
	}
	return count, nil
}

// RegisterPlayer adds a player and returns the id assigned by the database.
// Names don't need to be unique.
func (s *TournamentService) RegisterPlayer(ctx context.Context, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, swiss.ErrInvalidName
	}

	var id int64
	err := s.inTx(ctx, "register player", func(tx *sqlx.Tx) error {
		var err error
		id, err = s.store.RegisterPlayer(ctx, tx, name)
		if err != nil {
			return storageError("register player", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("player registered", "player_id", id, "name", name)
	return id, nil
}

func (s *TournamentService) Standings(ctx context.Context) ([]swiss.Standing, error) {
	standings, err := s.store.Standings(ctx, s.db)
	if err != nil {
		return nil, storageError("fetch standings", err)
	}
	return standings, nil
}

func (s *TournamentService) Matches(ctx context.Context) ([]swiss.Match, error) {
	matches, err := s.store.ListMatches(ctx, s.db)
	if err != nil {
		return nil, storageError("list matches", err)
	}
	return matches, nil
}
