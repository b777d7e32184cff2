package schema

import "time"

// Stats holds the population statistics of one scoring pass.
type Stats struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"` // Population standard deviation (divides by N)
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// Thresholds holds the lower bound of every tier except D.
type Thresholds struct {
	S float64 `json:"s"` // mean + 1.5 std
	A float64 `json:"a"` // mean + 0.5 std
	B float64 `json:"b"` // mean - 0.5 std
	C float64 `json:"c"` // mean - 1.5 std
}

// TierGroup is one tier with its members sorted by descending score.
type TierGroup struct {
	Tier   Tier        `json:"tier"`
	Heroes []HeroScore `json:"heroes"`
}

// TierList is the partition of a scored population into the five tiers.
// Tiers always holds five groups in S, A, B, C, D order, empty ones included.
type TierList struct {
	Tiers      []TierGroup     `json:"tiers"`
	Stats      Stats           `json:"stats"`
	Thresholds Thresholds      `json:"thresholds"`
	Lookup     map[string]Tier `json:"lookup"`
}

// Group returns the group for a tier.
func (tl TierList) Group(t Tier) TierGroup {
	for _, g := range tl.Tiers {
		if g.Tier == t {
			return g
		}
	}
	return TierGroup{Tier: t}
}

// TierOf returns the tier a hero landed in.
func (tl TierList) TierOf(name string) (Tier, bool) {
	t, ok := tl.Lookup[name]
	return t, ok
}

// Len returns the number of heroes across all tiers.
func (tl TierList) Len() int {
	n := 0
	for _, g := range tl.Tiers {
		n += len(g.Heroes)
	}
	return n
}

// Flatten returns every hero in display order: tier by tier, best first.
func (tl TierList) Flatten() []RankedHero {
	out := make([]RankedHero, 0, tl.Len())
	for _, g := range tl.Tiers {
		for _, h := range g.Heroes {
			out = append(out, RankedHero{Rank: len(out) + 1, Tier: g.Tier, HeroScore: h})
		}
	}
	return out
}

// RankedHero adds presentation data to a HeroScore.
type RankedHero struct {
	Rank int  `json:"rank"`
	Tier Tier `json:"tier"`
	HeroScore
}

// TierListResult is a tier list together with the inputs that produced it.
type TierListResult struct {
	Preset    string             `json:"preset"`
	Profile   string             `json:"profile,omitempty"`
	Weighting Weighting          `json:"weighting"`
	Weights   map[string]float64 `json:"weights"`
	Roster    Roster             `json:"-"`
	Scores    []HeroScore        `json:"-"`
	TierList  TierList           `json:"tier_list"`
	RunID     int64              `json:"run_id,omitempty"`
	Generated time.Time          `json:"generated"`
}

// Attributes returns the attribute vector of the named hero.
func (r TierListResult) Attributes(name string) []float64 {
	if idx := r.Roster.Find(name); idx >= 0 {
		return r.Roster[idx].Attributes
	}
	return nil
}

// ScoreResult is a ranked list of scores without tiering.
type ScoreResult struct {
	Preset    string       `json:"preset"`
	Weighting Weighting    `json:"weighting"`
	Heroes    []RankedHero `json:"heroes"`
	Stats     Stats        `json:"stats"`
}
