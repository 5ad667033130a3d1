package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/AdamBeresnev/swiss-tournament/internal/swiss"
	"github.com/AdamBeresnev/swiss-tournament/internal/utils"
	"github.com/jmoiron/sqlx"
)

// RecordMatch stores the outcome of a single match. A nil loserID awards winnerID
// a bye, which fails with swiss.ErrDuplicateBye if they already had one.
// Whether the two players met before is not checked here, pairing owns that.
func (s *TournamentService) RecordMatch(ctx context.Context, winnerID int64, loserID *int64) (int64, error) {
	var matchID int64
	err := s.inTx(ctx, "record match", func(tx *sqlx.Tx) error {
		var err error
		if loserID == nil {
			matchID, err = s.awardBye(ctx, tx, winnerID)
			return err
		}
		matchID, err = s.recordResult(ctx, tx, winnerID, *loserID)
		return err
	})
	if err != nil {
		return 0, err
	}

	slog.Info("match recorded", "match_id", matchID, "winner_id", winnerID,
		"loser_id", utils.OrZero(loserID), "bye", loserID == nil)
	return matchID, nil
}

func (s *TournamentService) recordResult(ctx context.Context, tx *sqlx.Tx, winnerID, loserID int64) (int64, error) {
	if winnerID == loserID {
		return 0, fmt.Errorf("player %d: %w", winnerID, swiss.ErrSamePlayer)
	}

	for _, id := range []int64{winnerID, loserID} {
		if _, err := s.getPlayer(ctx, tx, id); err != nil {
			return 0, err
		}
	}

	matchID, err := s.store.InsertMatch(ctx, tx, winnerID, &loserID)
	if err != nil {
		return 0, storageError("insert match", err)
	}
	return matchID, nil
}

func (s *TournamentService) awardBye(ctx context.Context, tx *sqlx.Tx, playerID int64) (int64, error) {
	player, err := s.getPlayer(ctx, tx, playerID)
	if err != nil {
		return 0, err
	}
	if player.HadBye {
		return 0, fmt.Errorf("player %d: %w", playerID, swiss.ErrDuplicateBye)
	}

	if err := s.store.MarkBye(ctx, tx, playerID); err != nil {
		return 0, storageError("mark bye", err)
	}

	matchID, err := s.store.InsertMatch(ctx, tx, playerID, nil)
	if err != nil {
		return 0, storageError("insert bye", err)
	}
	return matchID, nil
}

func (s *TournamentService) getPlayer(ctx context.Context, tx *sqlx.Tx, id int64) (*swiss.Player, error) {
	player, err := s.store.GetPlayer(ctx, tx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("player %d: %w", id, swiss.ErrPlayerNotFound)
	}
	if err != nil {
		return nil, storageError("get player", err)
	}
	return player, nil
}
