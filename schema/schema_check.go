package schema

// HeroCheck is the outcome of one hero in a tier check.
type HeroCheck struct {
	Name   string  `json:"name"`
	Tier   Tier    `json:"tier"`
	Score  float64 `json:"score"`
	Rank   int     `json:"rank"`
	Passed bool    `json:"passed"`
}

// CheckResult reports whether every checked hero reached the minimum tier.
type CheckResult struct {
	Preset  string      `json:"preset"`
	MinTier Tier        `json:"min_tier"`
	Heroes  []HeroCheck `json:"heroes"`
	Failed  int         `json:"failed"`
	Passed  bool        `json:"passed"`
}
