package fuzzy

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultThreshold admits roughly one edit per three query characters.
const DefaultThreshold = 0.3

type Rank struct {
	Index int
	Score float64
}

// Score returns a normalized dissimilarity in [0, 1] between the query and
// the closest same-length window of the candidate. 0 means the query is an
// exact substring, 1 means nothing matched.
func Score(query, candidate string) float64 {
	q := []rune(strings.ToLower(query))
	c := []rune(strings.ToLower(candidate))

	if len(q) == 0 {
		return 0
	}
	if len(c) == 0 {
		return 1
	}
	if len(c) <= len(q) {
		return normalize(levenshtein.ComputeDistance(string(q), string(c)), len(q))
	}

	best := len(q)
	for start := 0; start+len(q) <= len(c); start++ {
		d := levenshtein.ComputeDistance(string(q), string(c[start:start+len(q)]))
		if d < best {
			best = d
		}
		if best == 0 {
			break
		}
	}
	return normalize(best, len(q))
}

func normalize(distance, length int) float64 {
	score := float64(distance) / float64(length)
	if score > 1 {
		return 1
	}
	return score
}

// Match ranks candidates against the query and keeps those scoring at or
// below the threshold, most similar first. Ties keep candidate order.
func Match(query string, candidates []string, threshold float64) []Rank {
	ranks := make([]Rank, 0, len(candidates))
	for i, candidate := range candidates {
		score := Score(query, candidate)
		if score <= threshold {
			ranks = append(ranks, Rank{Index: i, Score: score})
		}
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Score < ranks[j].Score
	})

	return ranks
}
