// Package catalog provides the built-in hero roster and loaders for roster and settings files.
package catalog

import "github.com/huangsam/herotier/schema"

// builtinHeroes is the default roster in catalog order. Attribute positions
// follow schema.Dimensions.
var builtinHeroes = schema.Roster{
	{Name: "Captain Marvel", Attributes: []float64{4, 3, -1, 3, 4, 2, 4, 1, 1, 2, 0, 0, 5, 1, 0}},
	{Name: "Iron Man", Attributes: []float64{4, -5, 4, 2, 5, 2, 0, 3, 0, 0, 1, 4, -5, 0, 5}},
	{Name: "Spider-Man (Peter Parker)", Attributes: []float64{4, 0, 3, 5, 3, -2, 2, 0, 4, 1, 2, 0, 0, 0, 0}},
	{Name: "Black Panther", Attributes: []float64{3, -1, 4, 3, 3, 1, 1, 5, 0, 0, 0, 3, -1, 0, 0}},
	{Name: "She-Hulk", Attributes: []float64{1, 3, -3, 3, 4, -2, 0, 4, 1, 0, 1, 0, -3, 1, 0}},
	{Name: "Captain America", Attributes: []float64{4, 4, 3, 3, 3, 4, 5, 5, 1, 1, 0, 0, 5, 2, 0}},
	{Name: "Ms. Marvel", Attributes: []float64{3, -2, 1, 3, 0, 3, 3, 1, 0, 0, 3, 3, 0, 0, 0}},
	{Name: "Thor", Attributes: []float64{2, -4, -4, 3, 3, -1, -2, 5, -1, 0, 1, 0, 3, 0, 2}},
	{Name: "Black Widow", Attributes: []float64{2, 0, 3, -2, -4, 3, 2, 3, 4, 0, 0, 0, -5, 4, 0}},
	{Name: "Doctor Strange", Attributes: []float64{4, 3, 5, 4, 2, 5, 5, 0, 5, 5, 5, 5, 3, 5, 4}},
	{Name: "Hulk", Attributes: []float64{-3, 5, -2, 4, 4, -5, -5, 3, 0, 0, 1, 0, 2, 0, 0}},
	{Name: "Hawkeye", Attributes: []float64{1, -1, 4, -3, 2, 1, -2, 5, 3, 0, 0, 0, -3, 5, 0}},
	{Name: "Spider-Woman", Attributes: []float64{3, 3, 4, 3, 2, 4, 3, 2, 3, 1, 2, 0, -3, 5, 0}},
	{Name: "Ant-Man", Attributes: []float64{2, 0, 3, 3, 4, 1, 2, 4, 2, 0, 0, 2, -3, 1, 0}},
	{Name: "Wasp", Attributes: []float64{1, 3, 0, 1, 4, 2, 3, 4, 0, 1, 1, 0, -5, 0, 0}},
	{Name: "Quicksilver", Attributes: []float64{1, -3, 3, -1, 3, 4, 3, 3, 0, 1, 0, 3, 0, 0, 0}},
	{Name: "Scarlet Witch", Attributes: []float64{2, 3, 5, 3, 3, 2, 3, 1, 3, 4, 1, 0, -3, 2, 0}},
	{Name: "Star-Lord", Attributes: []float64{4, 5, 3, 1, 5, 3, 2, 3, -3, 0, 1, 0, -5, 0, 0}},
	{Name: "Groot", Attributes: []float64{0, -3, 2, 4, 3, 2, -2, 2, 0, 3, 0, 1, 2, 0, 0}},
	{Name: "Rocket", Attributes: []float64{3, -1, 0, 0, -2, 2, -2, 4, 0, 0, 1, 1, -3, 0, 0}},
	{Name: "Gamora", Attributes: []float64{1, 4, 3, 1, 3, 4, 4, 3, 0, 0, 1, 0, 3, 0, 0}},
	{Name: "Drax", Attributes: []float64{2, -3, 4, 2, 4, -1, -5, 3, 0, 1, 1, 0, -2, 0, 0}},
	{Name: "Venom (Flash Thompson)", Attributes: []float64{3, 2, 4, 3, 3, 4, 5, 5, 3, 0, 0, 1, -3, 5, 0}},
	{Name: "Spectrum", Attributes: []float64{3, 3, 2, 2, 2, 3, -2, 3, 0, 0, 2, 0, -5, 0, 0}},
	{Name: "Adam Warlock", Attributes: []float64{3, -3, 2, 3, 2, 4, -1, 1, 3, 2, 3, 2, -5, 0, 0}},
	{Name: "Nebula", Attributes: []float64{2, 1, 2, 1, -3, 2, 3, 1, 1, 0, 0, 0, -5, 0, 0}},
	{Name: "War Machine", Attributes: []float64{1, -2, 1, 2, 4, 0, -2, 5, 0, 0, 0, 1, -3, 0, 0}},
	{Name: "Valkyrie", Attributes: []float64{1, 3, -2, 2, 2, 0, -1, 4, 0, 0, 0, 0, -3, 0, 0}},
	{Name: "Vision", Attributes: []float64{2, 3, 3, 3, 4, 3, 4, 2, 2, 0, 1, 0, 0, 1, 0}},
	{Name: "Ghost Spider", Attributes: []float64{3, 3, 3, 3, 3, 2, 2, 2, 4, 1, 1, 0, -3, 0, 0}},
	{Name: "Spider-Man (Miles Morales)", Attributes: []float64{2, 4, 5, 3, 5, 4, 5, 1, 4, 0, 1, 0, 3, 5, 0}},
	{Name: "Nova", Attributes: []float64{4, 4, 4, 1, 2, 3, 4, 3, 0, 1, 2, 0, 2, 0, 2}},
	{Name: "Ironheart", Attributes: []float64{2, -3, 4, 3, 5, 5, 0, 3, 0, 0, 2, 5, -3, 0, 3}},
	{Name: "SP//dr", Attributes: []float64{2, -1, 5, 3, 3, 5, 0, 1, 1, 0, 2, 2, -5, 0, 0}},
	{Name: "Spider-Ham", Attributes: []float64{5, 3, 4, 5, 2, 4, 5, 2, 4, 0, 2, 1, -1, 5, 0}},
	{Name: "Colossus", Attributes: []float64{1, -1, 4, 5, 3, -5, -2, 2, 4, 0, 0, 0, -3, 5, 0}},
	{Name: "Shadowcat", Attributes: []float64{3, 4, 2, 3, 1, 3, 5, 3, 3, 0, 0, 0, -5, 3, 0}},
	{Name: "Cyclops", Attributes: []float64{1, -2, 5, 3, 4, 4, 3, 3, 0, 2, 2, 1, -3, 0, 0}},
	{Name: "Phoenix", Attributes: []float64{2, 3, 3, 3, 4, 4, 3, 4, 3, 1, 2, 0, 0, 4, 0}},
	{Name: "Wolverine", Attributes: []float64{3, 5, 3, 4, 5, 3, 4, 5, 0, 0, 1, 0, 1, 0, 0}},
	{Name: "Storm", Attributes: []float64{1, 3, 3, 1, 4, 4, 3, 3, 1, 3, 1, 0, -3, 0, 2}},
	{Name: "Gambit", Attributes: []float64{1, -1, 2, 2, 3, 3, 2, 4, 2, 1, 0, 0, -1, 4, 0}},
	{Name: "Rogue", Attributes: []float64{0, 3, 3, 3, 3, 3, 1, 2, 2, 0, 1, 0, 0, 1, 2}},
	{Name: "Cable", Attributes: []float64{2, 3, 4, 3, 3, 5, 5, 2, 3, 3, 2, 3, -5, 0, -5}},
	{Name: "Domino", Attributes: []float64{3, -2, 4, 1, 4, 3, 2, 4, 1, 0, 0, 3, -5, 0, 0}},
	{Name: "Psylocke", Attributes: []float64{4, 4, 4, 1, 1, 5, 4, 3, 5, 0, 2, 0, -3, 5, 0}},
	{Name: "Angel", Attributes: []float64{2, 5, 2, 2, 3, 5, 5, 2, 1, 0, 2, 0, -1, 0, 0}},
	{Name: "X-23", Attributes: []float64{1, 5, 4, 3, 5, 5, 5, 4, 0, 0, 1, 2, -2, 0, 0}},
	{Name: "Deadpool", Attributes: []float64{1, 5, 5, 5, 5, 5, -3, 2, 1, 3, 1, 0, -1, 1, 0}},
	{Name: "Bishop", Attributes: []float64{5, 2, 4, 4, 5, 1, 3, 2, 0, 0, 1, 1, -3, 0, 0}},
	{Name: "Magik", Attributes: []float64{4, 1, 4, 3, 2, 4, 3, 3, 3, 0, 1, 1, -5, 5, 0}},
	{Name: "Iceman", Attributes: []float64{3, 2, 3, 3, 2, 2, 3, 5, 3, 2, 0, 0, 0, 0, 0}},
	{Name: "Jubilee", Attributes: []float64{3, -1, 4, 0, 2, 4, 3, 3, 4, 1, 0, 1, -1, 5, 0}},
	{Name: "Nightcrawler", Attributes: []float64{1, 2, 3, 3, 0, 3, 4, 4, 1, 3, 0, 0, -1, 1, 0}},
	{Name: "Magneto", Attributes: []float64{3, 3, 3, 4, 3, 4, 5, 4, 2, 0, 0, 1, 3, 0, 1}},
	{Name: "Maria Hill", Attributes: []float64{2, 1, 5, 1, 2, 5, 5, 1, 1, 2, 2, 5, -3, 0, 0}},
	{Name: "Nick Fury", Attributes: []float64{1, 2, 1, 3, 2, 4, 4, 5, 2, 0, 0, 0, -3, 0, 0}},
}

// DefaultRoster returns a fresh copy of the built-in roster.
func DefaultRoster() schema.Roster {
	return builtinHeroes.Clone()
}
