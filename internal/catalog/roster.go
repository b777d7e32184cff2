package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/huangsam/herotier/schema"
	"gopkg.in/yaml.v3"
)

// ErrEmptyRoster is returned when a roster has no heroes.
var ErrEmptyRoster = errors.New("roster has no heroes")

// rosterFile is the on-disk shape of a roster file.
type rosterFile struct {
	Heroes schema.Roster `json:"heroes" yaml:"heroes"`
}

// LoadRoster reads a roster from a JSON or YAML file. An empty path returns
// the built-in roster.
func LoadRoster(path string) (schema.Roster, error) {
	if path == "" {
		return DefaultRoster(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}
	var rf rosterFile
	if err := decodeFile(path, data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse roster file %s: %w", path, err)
	}
	for i := range rf.Heroes {
		rf.Heroes[i].Name = strings.TrimSpace(rf.Heroes[i].Name)
	}
	if err := ValidateRoster(rf.Heroes); err != nil {
		return nil, fmt.Errorf("invalid roster file %s: %w", path, err)
	}
	return rf.Heroes, nil
}

// ValidateRoster checks that a roster is non-empty, that names are present
// and unique, and that every attribute vector has the same length.
func ValidateRoster(roster schema.Roster) error {
	if len(roster) == 0 {
		return ErrEmptyRoster
	}
	seen := make(map[string]struct{}, len(roster))
	width := len(roster[0].Attributes)
	for i, h := range roster {
		name := strings.TrimSpace(h.Name)
		if name == "" {
			return fmt.Errorf("hero at position %d has no name", i)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("duplicate hero name '%s'", name)
		}
		seen[name] = struct{}{}
		if len(h.Attributes) != width {
			return fmt.Errorf("hero '%s' has %d attributes, expected %d", name, len(h.Attributes), width)
		}
	}
	return nil
}

// ApplyEdits returns a copy of roster with the attribute vectors of the named
// heroes replaced. The input roster is left untouched.
func ApplyEdits(roster schema.Roster, edits map[string][]float64) (schema.Roster, error) {
	out := roster.Clone()
	names := make([]string, 0, len(edits))
	for name := range edits {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		idx := out.Find(name)
		if idx < 0 {
			return nil, fmt.Errorf("unknown hero '%s'", name)
		}
		attrs := edits[name]
		if len(attrs) != len(out[idx].Attributes) {
			return nil, fmt.Errorf("edit for hero '%s' has %d attributes, expected %d", name, len(attrs), len(out[idx].Attributes))
		}
		out[idx].Attributes = slices.Clone(attrs)
	}
	return out, nil
}

// decodeFile unmarshals data according to the extension of path.
func decodeFile(path string, data []byte, v any) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, v)
	case ".json":
		return json.Unmarshal(data, v)
	default:
		return fmt.Errorf("unsupported file extension '%s'. must be .json, .yaml, .yml", ext)
	}
}

// encodeFile marshals v according to the extension of path.
func encodeFile(path string, v any) ([]byte, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yaml.Marshal(v)
	case ".json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported file extension '%s'. must be .json, .yaml, .yml", ext)
	}
}
