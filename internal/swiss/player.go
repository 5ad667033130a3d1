package swiss

import "time"

type Player struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	HadBye    bool      `db:"had_bye" json:"had_bye"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Standing is derived from the match records on every read and never stored.
type Standing struct {
	ID            int64  `db:"id" json:"id"`
	Name          string `db:"name" json:"name"`
	Wins          int    `db:"wins" json:"wins"`
	MatchesPlayed int    `db:"matches_played" json:"matches_played"`
}
