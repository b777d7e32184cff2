package contract

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/huangsam/herotier/internal/catalog"
	"github.com/huangsam/herotier/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 0 // 0 = every hero
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
)

// ProfilingConfig holds pprof settings.
type ProfilingConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for a tier list computation.
// This struct remains the "final, validated" config.
type Config struct {
	RosterFile   string
	Roster       schema.Roster // Roster with settings-file hero edits applied
	SettingsFile string

	Preset  string // Canonical preset name
	Profile string // Stored profile to load before overrides (empty = none)

	// Weighting is the preset weighting with Overrides applied
	Weighting schema.Weighting

	// Overrides holds dimension weights from the settings file, the config file
	// and the --weights-override flag, merged in that order
	Overrides map[string]float64

	// HeroEdits holds per-hero attribute vectors from the settings file
	HeroEdits map[string][]float64

	ResultLimit int
	Ascending   bool
	Detail      bool
	Explain     bool
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	TargetPreset string // Preset on the AFTER side of a comparison

	MinTier schema.Tier // Lowest passing tier for the check command

	ProfileBackend   schema.DatabaseBackend
	ProfileDBConnect string // Please use env var as this is plaintext

	HistoryBackend   schema.DatabaseBackend
	HistoryDBConnect string // Please use env var as this is plaintext

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored tier labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Roster           string `mapstructure:"roster"`
	Settings         string `mapstructure:"settings"`
	Preset           string `mapstructure:"preset"`
	Profile          string `mapstructure:"profile"`
	WeightsOverride  string `mapstructure:"weights-override"`
	OutputFile       string `mapstructure:"output-file"`
	Limit            int    `mapstructure:"limit"`
	Precision        int    `mapstructure:"precision"`
	Output           string `mapstructure:"output"`
	Detail           bool   `mapstructure:"detail"`
	Width            int    `mapstructure:"width"`
	ProfileBackend   string `mapstructure:"profile-backend"`
	ProfileDBConnect string `mapstructure:"profile-db-connect"`
	HistoryBackend   string `mapstructure:"history-backend"`
	HistoryDBConnect string `mapstructure:"history-db-connect"`
	Emoji            string `mapstructure:"emoji"`
	Color            string `mapstructure:"color"`

	// --- Fields from tiersCmd.Flags() ---
	Explain bool `mapstructure:"explain"`

	// --- Fields from scoresCmd.Flags() ---
	Ascending bool `mapstructure:"ascending"`

	// --- Fields from compareCmd.Flags() ---
	TargetPreset string `mapstructure:"target-preset"`

	// --- Fields from checkCmd.Flags() ---
	MinTier string `mapstructure:"min-tier"`

	// --- Custom weights from config file, keyed by dimension ---
	Weights map[string]float64 `mapstructure:"weights"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Roster = c.Roster.Clone()
	clone.Weighting = c.Weighting.Clone()
	if c.Overrides != nil {
		clone.Overrides = maps.Clone(c.Overrides)
	}
	if c.HeroEdits != nil {
		clone.HeroEdits = make(map[string][]float64, len(c.HeroEdits))
		for name, attrs := range c.HeroEdits {
			clone.HeroEdits[name] = slices.Clone(attrs)
		}
	}
	return &clone
}

// CloneWithPreset creates a copy of the Config that scores with another preset.
// Profile and overrides are dropped so the preset weighting is used as-is.
func (c *Config) CloneWithPreset(p schema.Preset) *Config {
	clone := c.Clone()
	clone.Preset = p.Name
	clone.Profile = ""
	clone.Overrides = nil
	clone.Weighting = p.Weights.Clone()
	return clone
}

// ProcessAndValidate performs all complex parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processWeights(cfg, input); err != nil {
		return err
	}
	if err := processRoster(cfg, input); err != nil {
		return err
	}
	if err := processCompareMode(cfg, input); err != nil {
		return err
	}
	return processCheckMode(cfg, input)
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("a connection string is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ParseBackend normalizes a backend name. Empty means the store is disabled.
func ParseBackend(s string) (schema.DatabaseBackend, error) {
	if strings.TrimSpace(s) == "" {
		return schema.NoneBackend, nil
	}
	backend := schema.DatabaseBackend(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return "", fmt.Errorf("invalid backend '%s'. must be sqlite, mysql, postgresql, none", s)
	}
	return backend, nil
}

// validateBackendConfigs validates profile and history backend configurations.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	// --- Profile Backend Validation ---
	backend, err := ParseBackend(input.ProfileBackend)
	if err != nil {
		return fmt.Errorf("invalid profile backend: %w", err)
	}
	cfg.ProfileBackend = backend
	cfg.ProfileDBConnect = input.ProfileDBConnect
	if err := ValidateDatabaseConnectionString(cfg.ProfileBackend, cfg.ProfileDBConnect); err != nil {
		return err
	}

	// --- History Backend Validation ---
	backend, err = ParseBackend(input.HistoryBackend)
	if err != nil {
		return fmt.Errorf("invalid history backend: %w", err)
	}
	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = input.HistoryDBConnect
	if err := ValidateDatabaseConnectionString(cfg.HistoryBackend, cfg.HistoryDBConnect); err != nil {
		return err
	}

	// For SQLite, resolve to actual file paths to catch default path conflicts
	if cfg.ProfileBackend == schema.SQLiteBackend && cfg.HistoryBackend == schema.SQLiteBackend {
		profilePath := orDefault(cfg.ProfileDBConnect, GetProfileDBFilePath())
		historyPath := orDefault(cfg.HistoryDBConnect, GetHistoryDBFilePath())
		if profilePath == historyPath {
			return fmt.Errorf("profile and history storage must use different SQLite database files. Both resolve to %q", profilePath)
		}
	}
	return nil
}

// orDefault returns s, or fallback when s is empty.
func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// validateSimpleInputs processes and validates all non-weight fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Explain = input.Explain
	cfg.Ascending = input.Ascending
	cfg.Width = input.Width
	cfg.RosterFile = strings.TrimSpace(input.Roster)
	cfg.SettingsFile = strings.TrimSpace(input.Settings)

	emojis, err := ParseBoolString(orDefault(input.Emoji, "no"))
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	colors, err := ParseBoolString(orDefault(input.Color, "yes"))
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit < 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 0 and %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}

	// --- 3. Backend Validation ---
	return validateBackendConfigs(cfg, input)
}

// processWeights resolves the preset, then layers settings-file weights, config-file
// weights and flag weights on top of it. The stored profile is resolved later by the
// caller that owns the profile store.
func processWeights(cfg *Config, input *ConfigRawInput) error {
	preset, err := schema.GetPreset(orDefault(strings.TrimSpace(input.Preset), schema.DefaultPresetName))
	if err != nil {
		return err
	}
	cfg.Preset = preset.Name
	cfg.Profile = strings.TrimSpace(input.Profile)

	overrides := make(map[string]float64)
	cfg.HeroEdits = nil
	if cfg.SettingsFile != "" {
		settings, err := catalog.LoadSettings(cfg.SettingsFile)
		if err != nil {
			return err
		}
		if err := mergeWeights(overrides, settings.Weights); err != nil {
			return fmt.Errorf("invalid settings file weights: %w", err)
		}
		cfg.HeroEdits = settings.HeroEdits
	}

	if err := mergeWeights(overrides, input.Weights); err != nil {
		return fmt.Errorf("invalid weights in config file: %w", err)
	}

	flagWeights, err := ParseWeightsString(input.WeightsOverride)
	if err != nil {
		return fmt.Errorf("invalid --weights-override format: %w", err)
	}
	if err := mergeWeights(overrides, flagWeights); err != nil {
		return fmt.Errorf("invalid --weights-override format: %w", err)
	}

	cfg.Overrides = overrides
	cfg.Weighting, err = schema.ApplyWeights(preset.Weights, overrides)
	return err
}

// mergeWeights copies src into dst under canonical dimension keys.
func mergeWeights(dst, src map[string]float64) error {
	for key, value := range src {
		idx := schema.DimensionIndex(key)
		if idx < 0 {
			return fmt.Errorf("unknown dimension '%s'. must be one of %s", key, strings.Join(schema.DimensionKeys(), ", "))
		}
		dst[schema.Dimensions[idx].Key] = value
	}
	return nil
}

// processRoster loads the roster file, or the built-in roster, and applies hero edits.
func processRoster(cfg *Config, _ *ConfigRawInput) error {
	roster, err := catalog.LoadRoster(cfg.RosterFile)
	if err != nil {
		return err
	}
	if len(cfg.HeroEdits) > 0 {
		roster, err = catalog.ApplyEdits(roster, cfg.HeroEdits)
		if err != nil {
			return fmt.Errorf("invalid settings file hero edits: %w", err)
		}
	}
	cfg.Roster = roster
	return nil
}

// processCompareMode resolves the target preset of a comparison.
func processCompareMode(cfg *Config, input *ConfigRawInput) error {
	cfg.TargetPreset = ""
	name := strings.TrimSpace(input.TargetPreset)
	if name == "" {
		return nil
	}
	preset, err := schema.GetPreset(name)
	if err != nil {
		return fmt.Errorf("invalid --target-preset: %w", err)
	}
	cfg.TargetPreset = preset.Name
	return nil
}

// processCheckMode resolves the minimum tier of a check. Empty defaults to B.
func processCheckMode(cfg *Config, input *ConfigRawInput) error {
	tier, err := schema.ParseTier(orDefault(strings.TrimSpace(input.MinTier), string(schema.TierB)))
	if err != nil {
		return fmt.Errorf("invalid --min-tier: %w", err)
	}
	cfg.MinTier = tier
	return nil
}

// ProcessProfilingConfig handles the pprof flag and sets up profiling configuration.
func ProcessProfilingConfig(profiling *ProfilingConfig, prefix string) {
	if prefix != "" {
		profiling.Enabled = true
		profiling.Prefix = prefix
	}
}

// ParseWeightsString parses a string like "economy:4,tempo:2,card value:1"
// into a map of dimension key to weight.
func ParseWeightsString(s string) (map[string]float64, error) {
	weights := make(map[string]float64)

	if s == "" {
		return weights, nil
	}

	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		keyValue := strings.Split(part, ":")
		if len(keyValue) != 2 {
			return nil, fmt.Errorf("invalid weight format '%s', expected 'dimension:value'", part)
		}

		name := strings.TrimSpace(keyValue[0])
		valueStr := strings.TrimSpace(keyValue[1])

		idx := schema.DimensionIndex(name)
		if idx < 0 {
			return nil, fmt.Errorf("unknown dimension '%s'", name)
		}

		value, err := strconv.ParseFloat(valueStr, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight value '%s' for dimension %s: %w", valueStr, name, err)
		}

		weights[schema.Dimensions[idx].Key] = value
	}

	return weights, nil
}

// RevalidateWeights re-resolves the weighting of a cloned config for another
// preset and extra weight overrides. The MCP tools use it per request.
func RevalidateWeights(cfg *Config, presetName, weightsStr string) error {
	if name := strings.TrimSpace(presetName); name != "" {
		preset, err := schema.GetPreset(name)
		if err != nil {
			return err
		}
		cfg.Preset = preset.Name
	}
	preset, err := schema.GetPreset(orDefault(cfg.Preset, schema.DefaultPresetName))
	if err != nil {
		return err
	}
	cfg.Preset = preset.Name

	extra, err := ParseWeightsString(weightsStr)
	if err != nil {
		return fmt.Errorf("invalid weights format: %w", err)
	}
	overrides := make(map[string]float64, len(cfg.Overrides)+len(extra))
	maps.Copy(overrides, cfg.Overrides)
	maps.Copy(overrides, extra)

	weighting, err := schema.ApplyWeights(preset.Weights, overrides)
	if err != nil {
		return err
	}
	cfg.Overrides = overrides
	cfg.Weighting = weighting
	return nil
}
