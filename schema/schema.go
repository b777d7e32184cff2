// Package schema has models, enums and built-in presets for all parts of herotier.
package schema

import "slices"

// Hero is a single rankable entity: a unique name and one attribute vector.
type Hero struct {
	Name       string    `json:"name" yaml:"name"`             // Unique hero name
	Attributes []float64 `json:"attributes" yaml:"attributes"` // Ordered attribute scores, one per dimension
}

// Clone returns a deep copy of the hero.
func (h Hero) Clone() Hero {
	return Hero{Name: h.Name, Attributes: slices.Clone(h.Attributes)}
}

// Roster is an ordered list of heroes. Catalog order is significant since
// it breaks score ties in every ranking.
type Roster []Hero

// Clone returns a deep copy of the roster so that a scoring pass can run
// over a snapshot that later edits cannot touch.
func (r Roster) Clone() Roster {
	if r == nil {
		return nil
	}
	out := make(Roster, len(r))
	for i, h := range r {
		out[i] = h.Clone()
	}
	return out
}

// Names returns hero names in catalog order.
func (r Roster) Names() []string {
	names := make([]string, len(r))
	for i, h := range r {
		names[i] = h.Name
	}
	return names
}

// Find returns the index of the named hero, or -1.
func (r Roster) Find(name string) int {
	for i, h := range r {
		if h.Name == name {
			return i
		}
	}
	return -1
}

// Weighting is the ordered weight vector applied to every hero. It is
// positional: weight i multiplies attribute i.
type Weighting []float64

// Clone returns a copy of the weighting.
func (w Weighting) Clone() Weighting {
	return slices.Clone(w)
}

// ToMap keys the weighting by dimension key. Extra positions beyond the
// known dimensions are dropped.
func (w Weighting) ToMap() map[string]float64 {
	out := make(map[string]float64, len(w))
	for i, d := range Dimensions {
		if i >= len(w) {
			break
		}
		out[d.Key] = w[i]
	}
	return out
}

// HeroScore is the derived score of one hero under one weighting.
type HeroScore struct {
	Name  string  `json:"name"`  // Hero name
	Score float64 `json:"score"` // Dot product of attributes and weighting
	Index int     `json:"index"` // Position of the hero in the source roster
}
