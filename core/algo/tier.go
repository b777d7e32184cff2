package algo

import (
	"sort"

	"github.com/huangsam/herotier/schema"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Tier threshold offsets, in population standard deviations from the mean.
const (
	sOffset = 1.5
	aOffset = 0.5
	bOffset = -0.5
	cOffset = -1.5
)

// ComputeStats returns the population mean and standard deviation of values.
// A population whose values are all equal gets its exact value as mean and
// a zero std, so that rounding never splits a uniform population.
func ComputeStats(values []float64) schema.Stats {
	if len(values) == 0 {
		return schema.Stats{}
	}
	lo, hi := floats.Min(values), floats.Max(values)
	if lo == hi {
		return schema.Stats{Count: len(values), Mean: lo, Std: 0, Min: lo, Max: hi}
	}
	mean, std := stat.PopMeanStdDev(values, nil)
	return schema.Stats{Count: len(values), Mean: mean, Std: std, Min: lo, Max: hi}
}

// ComputeThresholds derives the four tier lower bounds from the stats.
func ComputeThresholds(st schema.Stats) schema.Thresholds {
	return schema.Thresholds{
		S: st.Mean + sOffset*st.Std,
		A: st.Mean + aOffset*st.Std,
		B: st.Mean + bOffset*st.Std,
		C: st.Mean + cOffset*st.Std,
	}
}

// Classify assigns a score to the first tier whose lower bound it reaches.
// With a zero std every bound equals the mean, so every score lands in S.
func Classify(score float64, th schema.Thresholds) schema.Tier {
	switch {
	case score >= th.S:
		return schema.TierS
	case score >= th.A:
		return schema.TierA
	case score >= th.B:
		return schema.TierB
	case score >= th.C:
		return schema.TierC
	default:
		return schema.TierD
	}
}

// Partition buckets a scored population into the five tiers. Each tier is
// sorted by descending score; equal scores keep their input order.
func Partition(scores []schema.HeroScore) (schema.TierList, error) {
	if len(scores) == 0 {
		return schema.TierList{}, ErrEmptyPopulation
	}

	values := make([]float64, len(scores))
	for i, s := range scores {
		values[i] = s.Score
	}
	st := ComputeStats(values)
	th := ComputeThresholds(st)

	buckets := make(map[schema.Tier][]schema.HeroScore, len(schema.AllTiers))
	lookup := make(map[string]schema.Tier, len(scores))
	for _, s := range scores {
		tier := Classify(s.Score, th)
		buckets[tier] = append(buckets[tier], s)
		lookup[s.Name] = tier
	}

	groups := make([]schema.TierGroup, 0, len(schema.AllTiers))
	for _, tier := range schema.AllTiers {
		members := buckets[tier]
		if members == nil {
			members = []schema.HeroScore{}
		}
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].Score > members[j].Score
		})
		groups = append(groups, schema.TierGroup{Tier: tier, Heroes: members})
	}

	return schema.TierList{
		Tiers:      groups,
		Stats:      st,
		Thresholds: th,
		Lookup:     lookup,
	}, nil
}
