package algo

import (
	"slices"
	"sort"

	"github.com/huangsam/herotier/schema"
)

// RankScores returns the scores sorted by descending score and truncated
// to 'limit' entries when limit is positive. Equal scores keep their input
// order. The input slice is left untouched.
func RankScores(scores []schema.HeroScore, limit int) []schema.HeroScore {
	ranked := slices.Clone(scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if limit > 0 && len(ranked) > limit {
		return ranked[:limit]
	}
	return ranked
}

// RankAscending returns the scores sorted from lowest to highest, the order
// used by bar charts that grow upwards.
func RankAscending(scores []schema.HeroScore) []schema.HeroScore {
	ranked := slices.Clone(scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score < ranked[j].Score
	})
	return ranked
}

// RankPositions maps each hero to its 1-based position in the descending ranking.
func RankPositions(scores []schema.HeroScore) map[string]int {
	ranked := RankScores(scores, 0)
	out := make(map[string]int, len(ranked))
	for i, s := range ranked {
		out[s.Name] = i + 1
	}
	return out
}
