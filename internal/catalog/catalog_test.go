package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/herotier/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRoster(t *testing.T) {
	roster := DefaultRoster()
	require.NoError(t, ValidateRoster(roster))
	assert.Len(t, roster, 57)
	assert.Equal(t, "Captain Marvel", roster[0].Name)
	assert.Equal(t, "Nick Fury", roster[len(roster)-1].Name)
	for _, h := range roster {
		assert.Len(t, h.Attributes, schema.DimensionCount, "hero %s", h.Name)
	}

	// mutation of the copy must not leak into the built-in roster
	roster[0].Attributes[0] = 99
	assert.NotEqual(t, 99.0, DefaultRoster()[0].Attributes[0])
}

func TestDefaultRosterScoresWithEveryPreset(t *testing.T) {
	roster := DefaultRoster()
	for _, p := range schema.Presets {
		assert.Len(t, p.Weights, len(roster[0].Attributes), "preset %s", p.Name)
	}
}

func TestLoadRosterEmptyPath(t *testing.T) {
	roster, err := LoadRoster("")
	require.NoError(t, err)
	assert.Equal(t, DefaultRoster(), roster)
}

func TestLoadRosterFormats(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"roster.yaml": "heroes:\n  - name: \" Alpha \"\n    attributes: [1, 2, 3]\n  - name: Beta\n    attributes: [-1, 0, 4.5]\n",
		"roster.yml":  "heroes:\n  - name: Alpha\n    attributes: [1, 2, 3]\n  - name: Beta\n    attributes: [-1, 0, 4.5]\n",
		"roster.json": `{"heroes": [{"name": "Alpha", "attributes": [1, 2, 3]}, {"name": "Beta", "attributes": [-1, 0, 4.5]}]}`,
	}
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			roster, err := LoadRoster(path)
			require.NoError(t, err)
			assert.Equal(t, []string{"Alpha", "Beta"}, roster.Names())
			assert.Equal(t, []float64{-1, 0, 4.5}, roster[1].Attributes)
		})
	}
}

func TestLoadRosterErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name     string
		file     string
		content  string
		contains string
	}{
		{"unsupported extension", "roster.txt", "heroes: []", "unsupported file extension"},
		{"empty roster", "empty.yaml", "heroes: []\n", "roster has no heroes"},
		{"duplicate names", "dup.json", `{"heroes": [{"name": "A", "attributes": [1]}, {"name": "A", "attributes": [2]}]}`, "duplicate hero name"},
		{"ragged vectors", "ragged.json", `{"heroes": [{"name": "A", "attributes": [1, 2]}, {"name": "B", "attributes": [2]}]}`, "has 1 attributes, expected 2"},
		{"missing name", "noname.json", `{"heroes": [{"name": " ", "attributes": [1]}]}`, "has no name"},
		{"malformed", "bad.json", `{"heroes": [`, "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			_, err := LoadRoster(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}

	_, err := LoadRoster(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateRosterEmpty(t *testing.T) {
	assert.ErrorIs(t, ValidateRoster(nil), ErrEmptyRoster)
}

func TestApplyEdits(t *testing.T) {
	roster := schema.Roster{
		{Name: "A", Attributes: []float64{1, 1}},
		{Name: "B", Attributes: []float64{2, 2}},
	}

	edited, err := ApplyEdits(roster, map[string][]float64{"B": {5, -5}})
	require.NoError(t, err)
	assert.Equal(t, []float64{5, -5}, edited[1].Attributes)
	assert.Equal(t, []float64{2, 2}, roster[1].Attributes, "input roster untouched")

	_, err = ApplyEdits(roster, map[string][]float64{"Z": {1, 1}})
	assert.ErrorContains(t, err, "unknown hero 'Z'")

	_, err = ApplyEdits(roster, map[string][]float64{"A": {1}})
	assert.ErrorContains(t, err, "has 1 attributes, expected 2")

	same, err := ApplyEdits(roster, nil)
	require.NoError(t, err)
	assert.Equal(t, roster, same)
}

func TestSettingsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	preset, err := schema.GetPreset("solo")
	require.NoError(t, err)
	edits := map[string][]float64{"Hulk": {0, 5, -2, 4, 4, -5, -5, 3, 0, 0, 1, 0, 2, 0, 0}}
	s := NewSettings(preset.Name, preset.Weights, edits)

	for _, name := range []string{"settings.json", "settings.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, SaveSettings(path, s))

			loaded, err := LoadSettings(path)
			require.NoError(t, err)
			assert.Equal(t, SettingsVersion, loaded.Version)
			assert.Equal(t, "solo", loaded.Preset)
			assert.Equal(t, edits, loaded.HeroEdits)

			w, err := loaded.Weighting(make(schema.Weighting, schema.DimensionCount))
			require.NoError(t, err)
			assert.Equal(t, preset.Weights, w, "vector length and order survive the round trip")
		})
	}
}

func TestSettingsClone(t *testing.T) {
	s := NewSettings("dashboard", schema.Weighting{1, 2}, map[string][]float64{"A": {1}})
	c := s.Clone()
	c.Weights["economy"] = 42
	c.HeroEdits["A"][0] = 42
	assert.Equal(t, 1.0, s.Weights["economy"])
	assert.Equal(t, 1.0, s.HeroEdits["A"][0])
}

func TestLoadSettingsErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name     string
		file     string
		content  string
		contains string
	}{
		{"future version", "v9.json", `{"version": 9, "weights": {}}`, "unsupported settings version"},
		{"unknown dimension", "dim.yaml", "version: 1\nweights:\n  charisma: 3\n", "unknown dimension 'charisma'"},
		{"malformed", "bad.yaml", "weights: [", "failed to parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			_, err := LoadSettings(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}

	_, err := LoadSettings(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestSaveSettingsUnsupportedExtension(t *testing.T) {
	err := SaveSettings(filepath.Join(t.TempDir(), "settings.toml"), Settings{})
	assert.ErrorContains(t, err, "unsupported file extension")
}
