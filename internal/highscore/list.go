// Package highscore implements the persisted top-N score list and the
// storage backends it can live in.
package highscore

import "sort"

// DefaultLimit is the number of scores kept by default.
const DefaultLimit = 5

// List is an ordered, bounded sequence of scores, highest first.
type List struct {
	scores []int
	limit  int
}

// NewList builds a list from arbitrary scores, sorting them descending and
// keeping at most limit entries.
func NewList(limit int, scores []int) *List {
	if limit <= 0 {
		limit = DefaultLimit
	}
	l := &List{limit: limit}
	l.scores = append(make([]int, 0, len(scores)+1), scores...)
	l.normalize()
	return l
}

func (l *List) normalize() {
	sort.Sort(sort.Reverse(sort.IntSlice(l.scores)))
	if len(l.scores) > l.limit {
		l.scores = l.scores[:l.limit]
	}
}

// Record appends a finished run's score, re-sorts and truncates.
// It returns the 1-based rank of the new score, or 0 if it did not make the list.
func (l *List) Record(score int) int {
	// Ties rank the newest score below existing equal scores.
	rank := 1
	for _, s := range l.scores {
		if s >= score {
			rank++
		}
	}

	l.scores = append(l.scores, score)
	l.normalize()

	if rank > l.limit {
		return 0
	}
	return rank
}

// Scores returns a copy of the scores, highest first.
func (l *List) Scores() []int {
	out := make([]int, len(l.scores))
	copy(out, l.scores)
	return out
}

// Len returns the number of recorded scores.
func (l *List) Len() int {
	return len(l.scores)
}

// Best returns the top score, or 0 for an empty list.
func (l *List) Best() int {
	if len(l.scores) == 0 {
		return 0
	}
	return l.scores[0]
}

// Limit returns the maximum number of entries kept.
func (l *List) Limit() int {
	return l.limit
}
