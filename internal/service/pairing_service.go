package service

import (
	"context"
	"log/slog"

	"github.com/AdamBeresnev/swiss-tournament/internal/swiss"
	"github.com/jmoiron/sqlx"
)

// PreviewRound computes the next round's pairings without changing anything.
func (s *TournamentService) PreviewRound(ctx context.Context) (swiss.Round, error) {
	s.pairingMu.Lock()
	defer s.pairingMu.Unlock()

	var round swiss.Round
	err := s.inTx(ctx, "preview round", func(tx *sqlx.Tx) error {
		var err error
		round, err = s.computeRound(ctx, tx)
		return err
	})
	return round, err
}

// PairRound computes the next round and records the bye, if any, in the same
// transaction. Regular pairings are returned for the caller to play out and
// report through RecordMatch.
func (s *TournamentService) PairRound(ctx context.Context) (swiss.Round, error) {
	s.pairingMu.Lock()
	defer s.pairingMu.Unlock()

	var round swiss.Round
	err := s.inTx(ctx, "pair round", func(tx *sqlx.Tx) error {
		var err error
		round, err = s.computeRound(ctx, tx)
		if err != nil {
			return err
		}

		if round.Bye != nil {
			if _, err := s.awardBye(ctx, tx, round.Bye.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return swiss.Round{}, err
	}

	attrs := []any{"pairings", len(round.Pairings), "degraded", round.Degraded}
	if round.Bye != nil {
		attrs = append(attrs, "bye_player_id", round.Bye.ID)
	}
	slog.Info("round paired", attrs...)
	return round, nil
}

func (s *TournamentService) computeRound(ctx context.Context, tx *sqlx.Tx) (swiss.Round, error) {
	standings, err := s.store.Standings(ctx, tx)
	if err != nil {
		return swiss.Round{}, storageError("fetch standings", err)
	}

	history, err := s.store.MatchHistory(ctx, tx)
	if err != nil {
		return swiss.Round{}, storageError("fetch match history", err)
	}

	byes, err := s.store.ByeHistory(ctx, tx)
	if err != nil {
		return swiss.Round{}, storageError("fetch bye history", err)
	}

	return swiss.ComputePairings(standings, history, byes)
}
