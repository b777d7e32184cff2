package catalog

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/huangsam/herotier/schema"
)

// SettingsVersion is the settings file format written by SaveSettings.
const SettingsVersion = 1

// Settings is a saved dashboard state: a weighting keyed by dimension plus
// per-hero attribute edits.
type Settings struct {
	Version   int                  `json:"version" yaml:"version"`
	Preset    string               `json:"preset,omitempty" yaml:"preset,omitempty"`
	Weights   map[string]float64   `json:"weights" yaml:"weights"`
	HeroEdits map[string][]float64 `json:"hero_edits,omitempty" yaml:"hero_edits,omitempty"`
}

// NewSettings captures a weighting and hero edits as a Settings value.
func NewSettings(preset string, w schema.Weighting, edits map[string][]float64) Settings {
	s := Settings{
		Version: SettingsVersion,
		Preset:  preset,
		Weights: w.ToMap(),
	}
	if len(edits) > 0 {
		s.HeroEdits = make(map[string][]float64, len(edits))
		for name, attrs := range edits {
			s.HeroEdits[name] = slices.Clone(attrs)
		}
	}
	return s
}

// Clone returns a deep copy of the settings.
func (s Settings) Clone() Settings {
	out := Settings{Version: s.Version, Preset: s.Preset}
	if s.Weights != nil {
		out.Weights = maps.Clone(s.Weights)
	}
	if s.HeroEdits != nil {
		out.HeroEdits = make(map[string][]float64, len(s.HeroEdits))
		for name, attrs := range s.HeroEdits {
			out.HeroEdits[name] = slices.Clone(attrs)
		}
	}
	return out
}

// Weighting applies the saved weights on top of base.
func (s Settings) Weighting(base schema.Weighting) (schema.Weighting, error) {
	return schema.ApplyWeights(base, s.Weights)
}

// LoadSettings reads a settings file in JSON or YAML.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
	}
	var s Settings
	if err := decodeFile(path, data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	if s.Version > SettingsVersion {
		return Settings{}, fmt.Errorf("unsupported settings version %d (max %d)", s.Version, SettingsVersion)
	}
	if s.Version == 0 {
		s.Version = SettingsVersion
	}
	for key := range s.Weights {
		if schema.DimensionIndex(key) < 0 {
			return Settings{}, fmt.Errorf("settings file %s: unknown dimension '%s'", path, key)
		}
	}
	return s, nil
}

// SaveSettings writes settings to path. The format follows the file extension.
func SaveSettings(path string, s Settings) error {
	if s.Version == 0 {
		s.Version = SettingsVersion
	}
	data, err := encodeFile(path, s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}
