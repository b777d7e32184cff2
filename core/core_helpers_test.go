package core

import (
	"context"
	"testing"

	"github.com/huangsam/herotier/internal/catalog"
	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/schema"
	"github.com/stretchr/testify/require"
)

// testRoster has five heroes over the first three dimensions.
func testRoster() schema.Roster {
	return schema.Roster{
		{Name: "Thor", Attributes: []float64{3, 1, 0}},
		{Name: "Hulk", Attributes: []float64{2, 0, 1}},
		{Name: "Groot", Attributes: []float64{1, 1, 1}},
		{Name: "Rocket", Attributes: []float64{0, 0, 2}},
		{Name: "Gamora", Attributes: []float64{0, 2, 4}},
	}
}

// newTestConfig scores Thor 6, Hulk 3, Groot 1, Rocket -2 and Gamora -4, which
// tiers as A: Thor, Hulk / B: Groot / C: Rocket, Gamora.
func newTestConfig() *contract.Config {
	return &contract.Config{
		Roster:         testRoster(),
		Preset:         "custom",
		Weighting:      schema.Weighting{2, 0, -1},
		Precision:      1,
		Output:         schema.TextOut,
		MinTier:        schema.TierB,
		ProfileBackend: schema.NoneBackend,
		HistoryBackend: schema.NoneBackend,
	}
}

// newBuiltinConfig validates a config over the built-in roster.
func newBuiltinConfig(t *testing.T, mutate func(*contract.ConfigRawInput)) *contract.Config {
	t.Helper()
	input := &contract.ConfigRawInput{
		Precision:      1,
		Output:         "text",
		Color:          "no",
		ProfileBackend: "none",
		HistoryBackend: "none",
	}
	if mutate != nil {
		mutate(input)
	}
	cfg := &contract.Config{}
	require.NoError(t, contract.ProcessAndValidate(cfg, input))
	return cfg
}

// quietContext suppresses run headers on stdout.
func quietContext() context.Context {
	return WithSuppressHeader(context.Background())
}

// newBenchConfig scores the built-in roster with the default preset.
func newBenchConfig(b *testing.B) *contract.Config {
	b.Helper()
	preset, err := schema.GetPreset(schema.DefaultPresetName)
	if err != nil {
		b.Fatal(err)
	}
	return &contract.Config{
		Roster:    catalog.DefaultRoster(),
		Preset:    preset.Name,
		Weighting: preset.Weights,
	}
}
