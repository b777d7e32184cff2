package outwriter

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/huangsam/herotier/core/algo"
	"github.com/huangsam/herotier/internal/contract"
	"github.com/huangsam/herotier/schema"
)

const (
	topNContributions = 3
	barWidth          = 30
)

// tierLabel returns the tier label, colored when colors are enabled.
func tierLabel(t schema.Tier, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorLabel(t)
	}
	return contract.GetPlainLabel(t)
}

// limitRanked truncates a ranked list when limit is positive.
func limitRanked(heroes []schema.RankedHero, limit int) []schema.RankedHero {
	if limit > 0 && len(heroes) > limit {
		return heroes[:limit]
	}
	return heroes
}

// contribution is one dimension's share of a hero score.
type contribution struct {
	Key   string
	Value float64
}

// topContributions returns the dimensions with the largest absolute contribution.
// Dimensions contributing exactly zero are skipped.
func topContributions(attributes []float64, weighting schema.Weighting, n int) []contribution {
	values, err := algo.Contributions(attributes, weighting)
	if err != nil {
		return nil
	}

	var parts []contribution
	for i, v := range values {
		if v == 0 {
			continue
		}
		key := strconv.Itoa(i)
		if i < len(schema.Dimensions) {
			key = schema.Dimensions[i].Key
		}
		parts = append(parts, contribution{Key: key, Value: v})
	}

	sort.SliceStable(parts, func(i, j int) bool {
		return math.Abs(parts[i].Value) > math.Abs(parts[j].Value)
	})
	return parts[:min(len(parts), n)]
}

// formatTopContributions renders the top contributing dimensions of a hero.
func formatTopContributions(attributes []float64, weighting schema.Weighting, precision int) string {
	parts := topContributions(attributes, weighting, topNContributions)
	if len(parts) == 0 {
		return "Not applicable"
	}
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = fmt.Sprintf("%s %+.*f", p.Key, precision, p.Value)
	}
	return strings.Join(out, " > ")
}

// formatAttributes renders an attribute vector compactly.
func formatAttributes(attributes []float64) string {
	out := make([]string, len(attributes))
	for i, v := range attributes {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(out, " ")
}

// formatFormula renders a weighting as a readable sum, skipping zero weights.
func formatFormula(weights schema.Weighting) string {
	var b strings.Builder
	for i, w := range weights {
		if w == 0 || i >= len(schema.Dimensions) {
			continue
		}
		term := fmt.Sprintf("%s*%s", strconv.FormatFloat(math.Abs(w), 'g', -1, 64), schema.Dimensions[i].Key)
		switch {
		case b.Len() == 0 && w < 0:
			b.WriteString("-" + term)
		case b.Len() == 0:
			b.WriteString(term)
		case w < 0:
			b.WriteString(" - " + term)
		default:
			b.WriteString(" + " + term)
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

// formatTierSizes renders the size of every tier in display order.
func formatTierSizes(sizes map[schema.Tier]int) string {
	parts := make([]string, len(schema.AllTiers))
	for i, t := range schema.AllTiers {
		parts[i] = fmt.Sprintf("%s=%d", t, sizes[t])
	}
	return strings.Join(parts, " ")
}

// tierSizes counts the members of every tier of a tier list.
func tierSizes(tl schema.TierList) map[schema.Tier]int {
	sizes := make(map[schema.Tier]int, len(schema.AllTiers))
	for _, g := range tl.Tiers {
		sizes[g.Tier] = len(g.Heroes)
	}
	return sizes
}

// scoreBar renders a horizontal bar scaled against the largest absolute score.
// Negative scores use a lighter block.
func scoreBar(score, maxAbs float64) string {
	if maxAbs <= 0 || math.IsNaN(score) || math.IsInf(score, 0) {
		return ""
	}
	n := int(math.Round(math.Abs(score) / maxAbs * barWidth))
	if score < 0 {
		return strings.Repeat("░", n)
	}
	return strings.Repeat("█", n)
}

// maxAbsScore returns the largest absolute score of a ranked list.
func maxAbsScore(heroes []schema.RankedHero) float64 {
	maxAbs := 0.0
	for _, h := range heroes {
		if a := math.Abs(h.Score); a > maxAbs && !math.IsInf(a, 0) {
			maxAbs = a
		}
	}
	return maxAbs
}
