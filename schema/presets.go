package schema

import (
	"fmt"
	"strings"
)

// Preset is a named weighting shipped with the tool.
type Preset struct {
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Weights     Weighting `json:"weights"`
}

// DefaultPresetName is the preset used when nothing else is configured.
const DefaultPresetName = "dashboard"

// Presets lists the built-in weightings in display order.
var Presets = []Preset{
	{
		Name:        "dashboard",
		Title:       "Dashboard Default",
		Description: "Starting slider positions; the last four dimensions are not weighted",
		Weights:     Weighting{4, 2, 2, 2, 1, 2, 3, 1, 2, 2, 1, 0, 0, 0, 0},
	},
	{
		Name:        "general",
		Title:       "General Power",
		Description: "Overall strength across game modes",
		Weights:     Weighting{4, 2, 2, 2, 1, 2, 3, 1, 2, 2, 2, 1, 0, 0, 0},
	},
	{
		Name:        "multiplayer",
		Title:       "Multiplayer 3/4",
		Description: "Three and four player games reward support and consistency",
		Weights:     Weighting{4, 1, 2, 2, 1, 2, 3, 3, 1, 7, 2, 4, 0, 0, 8},
	},
	{
		Name:        "solo",
		Title:       "Solo (No Rush)",
		Description: "True solo play against the full scenario",
		Weights:     Weighting{8, 3, 2, 4, 2, 2, 4, 1, 2, 2, 2, 1, 0, 4, -7},
	},
	{
		Name:        "solo-final-boss",
		Title:       "Solo Final Boss w/ Stalwart/Steady",
		Description: "Solo against a final boss that ignores status cards",
		Weights:     Weighting{10, 3, 3, 8, 6, 2, 2, 4, 1, 2, 2, 2, 1, -4, -7},
	},
	{
		Name:        "solo-rush",
		Title:       "Solo Rush",
		Description: "Racing the villain down as fast as possible",
		Weights:     Weighting{0, 5, 0, 2, 5, 0, 0, 0, 0, 0, 0, -3, 0, 0, 0},
	},
	{
		Name:        "beginner",
		Title:       "Beginner",
		Description: "Heroes that are forgiving and easy to pilot",
		Weights:     Weighting{1, 0, 1, 1, 0, 0, 5, 0, 0, 0, 0, -1, 10, 0, 0},
	},
}

// PresetNames returns the preset names in display order.
func PresetNames() []string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = p.Name
	}
	return names
}

// GetPreset looks a preset up by name or title (case-insensitive) and returns
// a copy whose weights can be modified freely.
func GetPreset(name string) (Preset, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, p := range Presets {
		if p.Name == needle || strings.ToLower(p.Title) == needle {
			p.Weights = p.Weights.Clone()
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset '%s'. must be one of %s", name, strings.Join(PresetNames(), ", "))
}
