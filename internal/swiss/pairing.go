package swiss

import (
	"log/slog"
	"slices"
)

type Pairing struct {
	ID1   int64  `json:"id1"`
	Name1 string `json:"name1"`
	ID2   int64  `json:"id2"`
	Name2 string `json:"name2"`

	// Set when the two players have met before and no other partner was left
	Rematch bool `json:"rematch,omitempty"`
}

// Round is the outcome of pairing one round. Bye is nil when the player count is even.
type Round struct {
	Pairings []Pairing `json:"pairings"`
	Bye      *Standing `json:"bye,omitempty"`
	Degraded bool      `json:"degraded"`
}

type pair struct {
	first, second Standing
	rematch       bool
}

// ComputePairings pairs players for the next round. standings must be ordered by
// wins descending with a fixed tiebreak, so neighbours in the slice have the
// closest records.
func ComputePairings(standings []Standing, history MatchHistory, byes ByeHistory) (Round, error) {
	if len(standings) < 2 {
		return Round{}, ErrInsufficientPlayers
	}
	if exhausted(standings, history) {
		return Round{}, ErrNoValidPairingExists
	}

	unpaired := slices.Clone(standings)
	var pairs []pair

	for len(unpaired) >= 2 {
		current := unpaired[0]

		partner := -1
		for j := 1; j < len(unpaired); j++ {
			if !history.Played(current.ID, unpaired[j].ID) {
				partner = j
				break
			}
		}

		rematch := false
		if partner == -1 {
			// Nobody below is new to this player, take the closest record anyway
			partner = 1
			rematch = true
			slog.Warn("pairing repeats a previous match",
				"player_id", current.ID, "opponent_id", unpaired[partner].ID)
		}

		pairs = append(pairs, pair{first: current, second: unpaired[partner], rematch: rematch})
		unpaired = slices.Delete(unpaired, partner, partner+1)[1:]
	}

	var bye *Standing
	if len(unpaired) == 1 {
		leftover := unpaired[0]
		if byes.Had(leftover.ID) {
			swapped, err := repairBye(pairs, leftover, history, byes)
			if err != nil {
				return Round{}, err
			}
			leftover = swapped
		}
		bye = &leftover
	}

	round := Round{Pairings: make([]Pairing, 0, len(pairs)), Bye: bye}
	for _, p := range pairs {
		round.Pairings = append(round.Pairings, Pairing{
			ID1:     p.first.ID,
			Name1:   p.first.Name,
			ID2:     p.second.ID,
			Name2:   p.second.Name,
			Rematch: p.rematch,
		})
		if p.rematch {
			round.Degraded = true
		}
	}

	return round, nil
}

// repairBye swaps leftover into one of the formed pairs, starting from the last
// one, and returns the displaced player who takes the bye instead. Swaps that
// don't produce a rematch win over ones that do.
func repairBye(pairs []pair, leftover Standing, history MatchHistory, byes ByeHistory) (Standing, error) {
	for _, allowRematch := range []bool{false, true} {
		for i := len(pairs) - 1; i >= 0; i-- {
			p := &pairs[i]

			// Second member first, they sit closest to leftover in the standings
			if !byes.Had(p.second.ID) && (allowRematch || !history.Played(p.first.ID, leftover.ID)) {
				displaced := p.second
				p.second = leftover
				p.rematch = history.Played(p.first.ID, leftover.ID)
				logRepair(displaced, leftover, p.rematch)
				return displaced, nil
			}

			if !byes.Had(p.first.ID) && (allowRematch || !history.Played(p.second.ID, leftover.ID)) {
				displaced := p.first
				p.first, p.second = p.second, leftover
				p.rematch = history.Played(p.first.ID, leftover.ID)
				logRepair(displaced, leftover, p.rematch)
				return displaced, nil
			}
		}
	}

	return Standing{}, ErrNoEligibleByeCandidate
}

func logRepair(displaced, leftover Standing, rematch bool) {
	if rematch {
		slog.Warn("bye repair repeats a previous match",
			"bye_player_id", displaced.ID, "swapped_player_id", leftover.ID)
		return
	}
	slog.Debug("bye moved to an eligible player",
		"bye_player_id", displaced.ID, "swapped_player_id", leftover.ID)
}

func exhausted(standings []Standing, history MatchHistory) bool {
	for i := range standings {
		for j := i + 1; j < len(standings); j++ {
			if !history.Played(standings[i].ID, standings[j].ID) {
				return false
			}
		}
	}
	return true
}
