package battleship

import "slices"

const TopResultsCount = 3

// Results keeps the elapsed seconds of every won game.
// Equal times are kept as separate entries.
type Results struct {
	seconds []int64
}

func NewResults() *Results {
	return &Results{seconds: make([]int64, 0, 10)}
}

func (r *Results) Add(seconds int64) {
	r.seconds = append(r.seconds, seconds)
}

func (r *Results) Len() int {
	return len(r.seconds)
}

// Top returns at most n results, fastest first.
// A negative n returns nothing.
func (r *Results) Top(n int) []int64 {
	if n < 0 {
		n = 0
	}

	sorted := make([]int64, len(r.seconds))
	copy(sorted, r.seconds)
	slices.Sort(sorted)

	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}
