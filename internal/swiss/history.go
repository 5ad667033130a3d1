package swiss

// MatchHistory is the set of unordered id pairs that have already played.
type MatchHistory map[[2]int64]struct{}

func NewMatchHistory(pairs ...[2]int64) MatchHistory {
	h := make(MatchHistory, len(pairs))
	for _, p := range pairs {
		h.Add(p[0], p[1])
	}
	return h
}

func pairKey(a, b int64) [2]int64 {
	if a > b {
		a, b = b, a
	}
	return [2]int64{a, b}
}

func (h MatchHistory) Add(a, b int64) {
	h[pairKey(a, b)] = struct{}{}
}

func (h MatchHistory) Played(a, b int64) bool {
	_, ok := h[pairKey(a, b)]
	return ok
}

// ByeHistory is the set of player ids that already received a bye.
type ByeHistory map[int64]struct{}

func NewByeHistory(ids ...int64) ByeHistory {
	b := make(ByeHistory, len(ids))
	for _, id := range ids {
		b[id] = struct{}{}
	}
	return b
}

func (b ByeHistory) Had(id int64) bool {
	_, ok := b[id]
	return ok
}
