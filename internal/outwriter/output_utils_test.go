package outwriter

import (
	"strings"
	"testing"

	"github.com/huangsam/herotier/schema"
	"github.com/stretchr/testify/assert"
)

func TestFormatTopContributions(t *testing.T) {
	w := testWeighting()
	tests := []struct {
		name       string
		attributes []float64
		expected   string
	}{
		{"single dimension", []float64{3, 1, 0}, "economy +6.0"},
		{"ordered by magnitude", []float64{1, 1, 1}, "economy +2.0 > card_value -1.0"},
		{"negative only", []float64{0, 2, 4}, "card_value -4.0"},
		{"nothing contributes", []float64{0, 5, 0}, "Not applicable"},
		{"dimension mismatch", []float64{1, 2}, "Not applicable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatTopContributions(tt.attributes, w, 1))
		})
	}
}

func TestTopContributionsCapsAtN(t *testing.T) {
	w := schema.Weighting{1, 1, 1, 1, 1}
	parts := topContributions([]float64{1, 5, 2, 4, 3}, w, 3)
	assert.Len(t, parts, 3)
	assert.Equal(t, "tempo", parts[0].Key)
	assert.Equal(t, "survivability", parts[1].Key)
	assert.Equal(t, "villain_damage", parts[2].Key)
}

func TestFormatFormula(t *testing.T) {
	assert.Equal(t, "2*economy - 1*card_value", formatFormula(testWeighting()))
	assert.Equal(t, "-1.5*economy + 3*tempo", formatFormula(schema.Weighting{-1.5, 3}))
	assert.Equal(t, "0", formatFormula(schema.Weighting{0, 0}))
}

func TestFormatAttributes(t *testing.T) {
	assert.Equal(t, "4 2.5 -1", formatAttributes([]float64{4, 2.5, -1}))
	assert.Equal(t, "", formatAttributes(nil))
}

func TestFormatTierSizes(t *testing.T) {
	assert.Equal(t, "S=1 A=0 B=3 C=0 D=0", formatTierSizes(map[schema.Tier]int{schema.TierS: 1, schema.TierB: 3}))
}

func TestScoreBar(t *testing.T) {
	assert.Equal(t, strings.Repeat("█", barWidth), scoreBar(6, 6))
	assert.Equal(t, strings.Repeat("░", barWidth/2), scoreBar(-3, 6))
	assert.Empty(t, scoreBar(1, 0))
}

func TestLimitRanked(t *testing.T) {
	heroes := []schema.RankedHero{{Rank: 1}, {Rank: 2}, {Rank: 3}}
	assert.Len(t, limitRanked(heroes, 0), 3)
	assert.Len(t, limitRanked(heroes, 2), 2)
	assert.Len(t, limitRanked(heroes, 10), 3)
}

func TestTierLabelPlain(t *testing.T) {
	cfg := newTestConfig()
	assert.Equal(t, "S", tierLabel(schema.TierS, cfg))
	assert.Equal(t, "-", tierLabel("", cfg))
}

func TestGetMaxTableNameWidth(t *testing.T) {
	cfg := newTestConfig()
	assert.Equal(t, 40, getMaxTableNameWidth(cfg))

	cfg.Width = 60
	assert.Equal(t, 20, getMaxTableNameWidth(cfg))

	cfg.Width = 50
	cfg.Detail = true
	assert.Equal(t, 12, getMaxTableNameWidth(cfg))
}
