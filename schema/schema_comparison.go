package schema

// TierMovement describes how one hero moved between a base and a target tier list.
type TierMovement struct {
	Name        string         `json:"name"`
	BeforeTier  Tier           `json:"before_tier"`
	AfterTier   Tier           `json:"after_tier"`
	BeforeScore float64        `json:"before_score"`
	AfterScore  float64        `json:"after_score"`
	BeforeRank  int            `json:"before_rank"`
	AfterRank   int            `json:"after_rank"`
	RankDelta   int            `json:"rank_delta"`  // BeforeRank - AfterRank (positive means moved up)
	TierDelta   int            `json:"tier_delta"`  // Tier steps gained (positive means promoted)
	ScoreDelta  float64        `json:"score_delta"` // AfterScore - BeforeScore
	Status      MovementStatus `json:"status"`
}

// ComparisonSummary has high-level movement counts.
type ComparisonSummary struct {
	TotalPromoted  int `json:"total_promoted"`
	TotalDemoted   int `json:"total_demoted"`
	TotalUnchanged int `json:"total_unchanged"`

	// Tier sizes before and after, keyed by tier
	BeforeSizes map[Tier]int `json:"before_sizes"`
	AfterSizes  map[Tier]int `json:"after_sizes"`
}

// ComparisonResult holds the movement details and summary.
type ComparisonResult struct {
	BasePreset   string            `json:"base_preset"`
	TargetPreset string            `json:"target_preset"`
	Details      []TierMovement    `json:"details"`
	Summary      ComparisonSummary `json:"summary"`
}
