package swiss

import "errors"

var (
	ErrStorageUnavailable = errors.New("storage unavailable")

	ErrDuplicateBye           = errors.New("player has already had a bye")
	ErrInsufficientPlayers    = errors.New("at least two players are required for pairing")
	ErrNoValidPairingExists   = errors.New("every remaining combination of players has already played")
	ErrNoEligibleByeCandidate = errors.New("no player is eligible for a bye")

	ErrPlayerNotFound = errors.New("player not found")
	ErrSamePlayer     = errors.New("a player cannot play against themselves")
	ErrInvalidName    = errors.New("player name must not be empty")
)
