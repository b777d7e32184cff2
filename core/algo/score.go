// Package algo has the pure scoring, tiering and ranking algorithms.
package algo

import (
	"errors"
	"fmt"

	"github.com/huangsam/herotier/schema"
	"gonum.org/v1/gonum/floats"
)

// Sentinel errors returned by the algorithms.
var (
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrEmptyPopulation   = errors.New("empty population")
)

// DimensionMismatchError reports an attribute vector whose length does not
// match the weighting, or a zero-length weighting.
type DimensionMismatchError struct {
	Hero string // empty when scoring a bare vector
	Got  int    // attribute vector length
	Want int    // weighting length
}

func (e *DimensionMismatchError) Error() string {
	if e.Hero == "" {
		return fmt.Sprintf("%v: %d attributes vs %d weights", ErrDimensionMismatch, e.Got, e.Want)
	}
	return fmt.Sprintf("%v: hero %q has %d attributes vs %d weights", ErrDimensionMismatch, e.Hero, e.Got, e.Want)
}

// Unwrap lets errors.Is match ErrDimensionMismatch.
func (e *DimensionMismatchError) Unwrap() error {
	return ErrDimensionMismatch
}

// Score returns the dot product of attributes and weighting. Both vectors
// must have the same non-zero length. No normalization or rounding is applied.
func Score(attributes []float64, weighting schema.Weighting) (float64, error) {
	if len(weighting) == 0 || len(attributes) != len(weighting) {
		return 0, &DimensionMismatchError{Got: len(attributes), Want: len(weighting)}
	}
	return floats.Dot(attributes, weighting), nil
}

// ScoreAll scores every hero in roster order. It stops at the first hero
// whose vector does not fit the weighting and returns no partial result.
func ScoreAll(roster schema.Roster, weighting schema.Weighting) ([]schema.HeroScore, error) {
	scores := make([]schema.HeroScore, 0, len(roster))
	for i, hero := range roster {
		s, err := Score(hero.Attributes, weighting)
		if err != nil {
			var dm *DimensionMismatchError
			if errors.As(err, &dm) {
				dm.Hero = hero.Name
			}
			return nil, err
		}
		scores = append(scores, schema.HeroScore{Name: hero.Name, Score: s, Index: i})
	}
	return scores, nil
}

// ScoreMap derives the name to score mapping from a score list.
func ScoreMap(scores []schema.HeroScore) map[string]float64 {
	out := make(map[string]float64, len(scores))
	for _, s := range scores {
		out[s.Name] = s.Score
	}
	return out
}

// Contributions returns the per-dimension terms of the dot product.
func Contributions(attributes []float64, weighting schema.Weighting) ([]float64, error) {
	if len(weighting) == 0 || len(attributes) != len(weighting) {
		return nil, &DimensionMismatchError{Got: len(attributes), Want: len(weighting)}
	}
	out := make([]float64, len(attributes))
	floats.MulTo(out, attributes, weighting)
	return out, nil
}
