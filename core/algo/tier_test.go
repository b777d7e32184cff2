package algo

import (
	"math"
	"testing"

	"github.com/huangsam/herotier/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scoresOf builds a roster-ordered score list named after letters.
func scoresOf(values ...float64) []schema.HeroScore {
	out := make([]schema.HeroScore, len(values))
	for i, v := range values {
		out[i] = schema.HeroScore{Name: string(rune('A' + i)), Score: v, Index: i}
	}
	return out
}

// namesIn returns the member names of one tier group.
func namesIn(tl schema.TierList, tier schema.Tier) []string {
	names := []string{}
	for _, h := range tl.Group(tier).Heroes {
		names = append(names, h.Name)
	}
	return names
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		mean float64
		std  float64
	}{
		{"symmetric", []float64{10, 5, 0, -5, -10}, 0, math.Sqrt(50)},
		{"two values", []float64{1, 3}, 2, 1},
		{"single", []float64{7}, 7, 0},
		{"uniform", []float64{0.1, 0.1, 0.1}, 0.1, 0},
		{"empty", nil, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := ComputeStats(tt.in)
			assert.Equal(t, len(tt.in), st.Count)
			assert.InDelta(t, tt.mean, st.Mean, 1e-9)
			assert.InDelta(t, tt.std, st.Std, 1e-9)
		})
	}
}

func TestComputeStatsUniformIsExact(t *testing.T) {
	st := ComputeStats([]float64{0.1, 0.1, 0.1})
	assert.Equal(t, 0.1, st.Mean)
	assert.Equal(t, 0.0, st.Std)
}

func TestComputeThresholdsMonotonic(t *testing.T) {
	for _, std := range []float64{0, 0.5, 3, 100} {
		th := ComputeThresholds(schema.Stats{Mean: 4, Std: std})
		assert.GreaterOrEqual(t, th.S, th.A)
		assert.GreaterOrEqual(t, th.A, th.B)
		assert.GreaterOrEqual(t, th.B, th.C)
	}
}

func TestClassify(t *testing.T) {
	th := schema.Thresholds{S: 15, A: 5, B: -5, C: -15}
	tests := []struct {
		score    float64
		expected schema.Tier
	}{
		{20, schema.TierS},
		{15, schema.TierS}, // boundary is inclusive
		{14.99, schema.TierA},
		{5, schema.TierA},
		{0, schema.TierB},
		{-5, schema.TierB},
		{-5.01, schema.TierC},
		{-15, schema.TierC},
		{-15.01, schema.TierD},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Classify(tt.score, th), "score %v", tt.score)
	}
}

func TestClassifyZeroStdIsS(t *testing.T) {
	th := ComputeThresholds(schema.Stats{Mean: 3, Std: 0})
	assert.Equal(t, schema.TierS, Classify(3, th))
}

func TestPartitionEmpty(t *testing.T) {
	_, err := Partition(nil)
	assert.ErrorIs(t, err, ErrEmptyPopulation)

	_, err = Partition([]schema.HeroScore{})
	assert.ErrorIs(t, err, ErrEmptyPopulation)
}

func TestPartitionSymmetricScenario(t *testing.T) {
	scores := scoresOf(10, 5, 0, -5, -10)
	tl, err := Partition(scores)
	require.NoError(t, err)

	std := math.Sqrt(50)
	assert.InDelta(t, 0, tl.Stats.Mean, 1e-9)
	assert.InDelta(t, std, tl.Stats.Std, 1e-9)
	assert.InDelta(t, 1.5*std, tl.Thresholds.S, 1e-9)
	assert.InDelta(t, 0.5*std, tl.Thresholds.A, 1e-9)
	assert.InDelta(t, -0.5*std, tl.Thresholds.B, 1e-9)
	assert.InDelta(t, -1.5*std, tl.Thresholds.C, 1e-9)

	// Expected membership follows from the thresholds computed above.
	expected := map[schema.Tier][]string{}
	for _, s := range scores {
		tier := Classify(s.Score, tl.Thresholds)
		expected[tier] = append(expected[tier], s.Name)
	}
	for _, tier := range schema.AllTiers {
		want := expected[tier]
		if want == nil {
			want = []string{}
		}
		assert.Equal(t, want, namesIn(tl, tier), "tier %s", tier)
	}

	// And concretely for this population.
	assert.Empty(t, namesIn(tl, schema.TierS))
	assert.Equal(t, []string{"A", "B"}, namesIn(tl, schema.TierA))
	assert.Equal(t, []string{"C"}, namesIn(tl, schema.TierB))
	assert.Equal(t, []string{"D", "E"}, namesIn(tl, schema.TierC))
	assert.Empty(t, namesIn(tl, schema.TierD))
}

func TestPartitionSingleHero(t *testing.T) {
	tl, err := Partition(scoresOf(-42))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, namesIn(tl, schema.TierS))
	assert.Equal(t, 0.0, tl.Stats.Std)
	for _, tier := range []schema.Tier{schema.TierA, schema.TierB, schema.TierC, schema.TierD} {
		assert.Empty(t, namesIn(tl, tier))
	}
}

func TestPartitionUniformPopulation(t *testing.T) {
	tl, err := Partition(scoresOf(3.3, 3.3, 3.3, 3.3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, namesIn(tl, schema.TierS))
	assert.Equal(t, 4, tl.Len())
}

func TestPartitionTieBreakKeepsInputOrder(t *testing.T) {
	scores := []schema.HeroScore{
		{Name: "first", Score: 1, Index: 0},
		{Name: "top", Score: 100, Index: 1},
		{Name: "second", Score: 1, Index: 2},
		{Name: "third", Score: 1, Index: 3},
		{Name: "bottom", Score: -100, Index: 4},
	}
	tl, err := Partition(scores)
	require.NoError(t, err)

	tier := tl.Lookup["first"]
	assert.Equal(t, tier, tl.Lookup["second"])
	assert.Equal(t, tier, tl.Lookup["third"])
	assert.Equal(t, []string{"first", "second", "third"}, namesIn(tl, tier))
}

func TestPartitionCoverageAndOrdering(t *testing.T) {
	scores := scoresOf(3, 17, -2, 8, 8, 0, -11, 25, 4, 1)
	tl, err := Partition(scores)
	require.NoError(t, err)

	require.Len(t, tl.Tiers, 5)
	for i, tier := range schema.AllTiers {
		assert.Equal(t, tier, tl.Tiers[i].Tier)
	}

	seen := map[string]int{}
	for _, g := range tl.Tiers {
		for i, h := range g.Heroes {
			seen[h.Name]++
			assert.Equal(t, g.Tier, tl.Lookup[h.Name])
			if i > 0 {
				assert.GreaterOrEqual(t, g.Heroes[i-1].Score, h.Score)
			}
		}
	}
	assert.Len(t, seen, len(scores))
	for name, n := range seen {
		assert.Equal(t, 1, n, "hero %s appears once", name)
	}

	// Every member of a higher tier outscores every member of a lower tier.
	for i := 1; i < len(tl.Tiers); i++ {
		upper, lower := tl.Tiers[i-1].Heroes, tl.Tiers[i].Heroes
		for _, u := range upper {
			for _, l := range lower {
				assert.Greater(t, u.Score, l.Score)
			}
		}
	}
}

func TestPartitionDoesNotMutateInput(t *testing.T) {
	scores := scoresOf(1, 5, 3)
	before := append([]schema.HeroScore(nil), scores...)
	_, err := Partition(scores)
	require.NoError(t, err)
	assert.Equal(t, before, scores)
}

func TestPartitionIsDeterministic(t *testing.T) {
	scores := scoresOf(9, -3, 4, 4, 0, 12, -8)
	first, err := Partition(scores)
	require.NoError(t, err)
	for range 5 {
		again, err := Partition(scores)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func BenchmarkPartition(b *testing.B) {
	values := make([]float64, 60)
	for i := range values {
		values[i] = float64((i*37)%61 - 30)
	}
	scores := scoresOf(values...)
	for b.Loop() {
		_, _ = Partition(scores)
	}
}
