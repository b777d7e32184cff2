package algo

import (
	"math"
	"testing"

	"github.com/huangsam/herotier/schema"
)

// FuzzScore checks that equal-length vectors always score and that the
// score is linear in the weighting.
func FuzzScore(f *testing.F) {
	f.Add(1.0, 0.0, 0.0, 3.0, -2.0, 5.0)
	f.Add(-10.0, 10.0, 4.0, 0.5, 0.25, -1.0)
	f.Add(0.0, 0.0, 0.0, 0.0, 0.0, 0.0)

	f.Fuzz(func(t *testing.T, a1, a2, a3, w1, w2, w3 float64) {
		for _, v := range []float64{a1, a2, a3, w1, w2, w3} {
			if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > 1e6 {
				t.Skip()
			}
		}
		attrs := []float64{a1, a2, a3}
		w := schema.Weighting{w1, w2, w3}

		got, err := Score(attrs, w)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		doubled, err := Score(attrs, schema.Weighting{2 * w1, 2 * w2, 2 * w3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(doubled-2*got) > 1e-6*math.Max(1, math.Abs(got)) {
			t.Errorf("score not linear: %v vs 2*%v", doubled, got)
		}
	})
}

// FuzzPartition checks total coverage and tier ordering for arbitrary populations.
func FuzzPartition(f *testing.F) {
	f.Add(10.0, 5.0, 0.0, -5.0, -10.0)
	f.Add(1.0, 1.0, 1.0, 1.0, 1.0)
	f.Add(0.0, 100.0, -3.0, 7.5, 7.5)

	f.Fuzz(func(t *testing.T, v1, v2, v3, v4, v5 float64) {
		for _, v := range []float64{v1, v2, v3, v4, v5} {
			if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > 1e9 {
				t.Skip()
			}
		}
		scores := scoresOf(v1, v2, v3, v4, v5)
		tl, err := Partition(scores)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tl.Len() != len(scores) {
			t.Fatalf("expected %d heroes, got %d", len(scores), tl.Len())
		}
		if len(tl.Lookup) != len(scores) {
			t.Fatalf("lookup has %d entries", len(tl.Lookup))
		}
		for _, g := range tl.Tiers {
			for i := 1; i < len(g.Heroes); i++ {
				if g.Heroes[i-1].Score < g.Heroes[i].Score {
					t.Errorf("tier %s not sorted", g.Tier)
				}
			}
		}
	})
}
