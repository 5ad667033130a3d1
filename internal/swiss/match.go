package swiss

import "time"

type Match struct {
	ID       int64 `db:"id" json:"id"`
	WinnerID int64 `db:"winner_id" json:"winner_id"`

	// Nil means the winner was awarded a bye
	LoserID *int64 `db:"loser_id" json:"loser_id"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func (m *Match) IsBye() bool {
	return m.LoserID == nil
}
