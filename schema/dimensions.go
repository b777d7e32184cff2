package schema

import (
	"fmt"
	"strings"
)

// Dimension names one position of the attribute and weighting vectors.
type Dimension struct {
	Key  string `json:"key"`  // Config-friendly key, e.g. "card_value"
	Name string `json:"name"` // Display name, e.g. "Card Value"
}

// Dimensions is the ordered list of hero attributes used by the built-in catalog.
var Dimensions = []Dimension{
	{Key: "economy", Name: "Economy"},
	{Key: "tempo", Name: "Tempo"},
	{Key: "card_value", Name: "Card Value"},
	{Key: "survivability", Name: "Survivability"},
	{Key: "villain_damage", Name: "Villain Damage"},
	{Key: "threat_removal", Name: "Threat Removal"},
	{Key: "reliability", Name: "Reliability"},
	{Key: "minion_control", Name: "Minion Control"},
	{Key: "control", Name: "Control"},
	{Key: "support", Name: "Support"},
	{Key: "unique_builds", Name: "Unique Broken Builds"},
	{Key: "late_game", Name: "Late Game Power"},
	{Key: "simplicity", Name: "Simplicity"},
	{Key: "status_cards", Name: "Stun/Confuse"},
	{Key: "multiplayer_consistency", Name: "Multiplayer Consistency"},
}

// DimensionCount is the length of every built-in attribute vector.
var DimensionCount = len(Dimensions)

// DimensionIndex returns the position of a dimension by key or display name
// (case-insensitive), or -1 when unknown.
func DimensionIndex(name string) int {
	needle := strings.ToLower(strings.TrimSpace(name))
	for i, d := range Dimensions {
		if d.Key == needle || strings.ToLower(d.Name) == needle {
			return i
		}
	}
	return -1
}

// DimensionKeys returns the ordered dimension keys.
func DimensionKeys() []string {
	keys := make([]string, len(Dimensions))
	for i, d := range Dimensions {
		keys[i] = d.Key
	}
	return keys
}

// ApplyWeights returns a copy of base with every entry of overrides written
// at its dimension position. Unknown dimension keys are rejected.
func ApplyWeights(base Weighting, overrides map[string]float64) (Weighting, error) {
	out := base.Clone()
	for key, value := range overrides {
		idx := DimensionIndex(key)
		if idx < 0 {
			return nil, fmt.Errorf("unknown dimension '%s'", key)
		}
		if idx >= len(out) {
			return nil, fmt.Errorf("dimension '%s' is outside a weighting of length %d", key, len(out))
		}
		out[idx] = value
	}
	return out, nil
}
