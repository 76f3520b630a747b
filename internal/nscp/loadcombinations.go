package nscp

import (
	"fmt"
	"strings"
)

// LoadType is a source of load recognized by the NSCP combinations.
type LoadType int

const (
	Dead       LoadType = iota // D
	Live                       // L
	Roof                       // Lr - roof live load
	Wind                       // W
	Earthquake                 // E
	Rain                       // R
)

func (t LoadType) String() string {
	return [...]string{"D", "L", "Lr", "W", "E", "R"}[t]
}

// caseAliases maps lower-cased load case labels to load types.
var caseAliases = map[string]LoadType{
	"d": Dead, "dead": Dead,
	"l": Live, "live": Live,
	"lr": Roof, "roof": Roof,
	"w": Wind, "wind": Wind,
	"e": Earthquake, "earthquake": Earthquake,
	"r": Rain, "rain": Rain,
}

// ClassifyCase maps a load case label such as "Dead" or "L" to its load
// type. Matching ignores case.
func ClassifyCase(label string) (LoadType, bool) {
	t, ok := caseAliases[strings.ToLower(strings.TrimSpace(label))]
	return t, ok
}

// Term is one factored load type.
type Term struct {
	Type   LoadType
	Factor float64
}

func (t Term) String() string {
	return fmt.Sprintf("%.1f%s", t.Factor, t.Type)
}

// Alternative is a group of terms of which exactly one applies, such as
// 0.5(Lr or R).
type Alternative []Term

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors that always apply
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
	// "or" groups; the combination expands into one variant per choice
	Alternatives []Alternative
}

// Factor returns the fixed factor the combination applies to load type t.
// Factors inside Alternatives are not included.
func (lc LoadCombination) Factor(t LoadType) float64 {
	switch t {
	case Dead:
		return lc.Dead
	case Live:
		return lc.Live
	case Roof:
		return lc.Roof
	case Wind:
		return lc.Wind
	case Earthquake:
		return lc.Earthquake
	case Rain:
		return lc.Rain
	}
	return 0
}

func (lc LoadCombination) fixedTerms() []Term {
	var terms []Term
	for t := Dead; t <= Rain; t++ {
		if f := lc.Factor(t); f != 0 {
			terms = append(terms, Term{Type: t, Factor: f})
		}
	}
	return terms
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.6,
		Alternatives: []Alternative{
			{{Roof, 0.5}, {Rain, 0.5}},
		},
	},
	{
		ID:          "3",
		Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)",
		Dead:        1.2,
		Alternatives: []Alternative{
			{{Roof, 1.6}, {Rain, 1.6}},
			{{Live, 1.0}, {Wind, 0.5}},
		},
	},
	{
		ID:          "4",
		Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)",
		Dead:        1.2,
		Live:        1.0,
		Wind:        1.0,
		Alternatives: []Alternative{
			{{Roof, 0.5}, {Rain, 0.5}},
		},
	},
	{
		ID:          "5",
		Description: "1.2D + 1.0E + 1.0L",
		Dead:        1.2,
		Live:        1.0,
		Earthquake:  1.0,
	},
	{
		ID:          "6",
		Description: "0.9D + 1.0W",
		Dead:        0.9,
		Wind:        1.0,
	},
	{
		ID:          "7",
		Description: "0.9D + 1.0E",
		Dead:        0.9,
		Earthquake:  1.0,
	},
}

// SimplifiedCombinations for common beam design scenarios
// These are the most frequently used combinations for gravity loads
var SimplifiedCombinations = []LoadCombination{
	{
		ID:          "1",
		Description: "1.4D",
		Dead:        1.4,
	},
	{
		ID:          "2",
		Description: "1.2D + 1.6L",
		Dead:        1.2,
		Live:        1.6,
	},
}

// Set names a combination table: "full", "simplified" or "none".
func Set(name string) ([]LoadCombination, error) {
	switch name {
	case "full":
		return LoadCombinations, nil
	case "simplified", "":
		return SimplifiedCombinations, nil
	case "none":
		return nil, nil
	}
	return nil, fmt.Errorf("unknown load combination set %q (want full, simplified or none)", name)
}

// CaseFactor is the factor applied to one load case of a beam.
type CaseFactor struct {
	Case   string  `json:"case" yaml:"case"`
	Factor float64 `json:"factor" yaml:"factor"`
}

// Combination is a load combination expressed in a beam's own case labels.
type Combination struct {
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Factors     []CaseFactor `json:"factors" yaml:"factors"`
}

// CombinationsFor applies the combinations in table to the load case labels
// of a beam. Factors follow the order of labels.
//
// A combination with Alternatives expands into one variant per choice among
// the load types the beam has, named with a letter suffix (NSCP-3a,
// NSCP-3b, ...) when there is more than one. A group none of whose types
// the beam has is dropped. A variant that applies no factor to any of the
// labels is left out. Labels that match no load type are returned in
// unmapped, in their original order.
func CombinationsFor(labels []string, table []LoadCombination) (combos []Combination, unmapped []string) {
	types := make(map[string]LoadType, len(labels))
	present := make(map[LoadType]bool)
	for _, label := range labels {
		t, ok := ClassifyCase(label)
		if !ok {
			unmapped = append(unmapped, label)
			continue
		}
		types[label] = t
		present[t] = true
	}

	for _, lc := range table {
		variants := expand(lc.Alternatives, present)
		for i, chosen := range variants {
			c := Combination{Name: "NSCP-" + lc.ID, Description: lc.Description}
			if len(variants) > 1 {
				c.Name += string(rune('a' + i))
			}
			if len(lc.Alternatives) > 0 {
				c.Description = describe(append(lc.fixedTerms(), chosen...))
			}
			for _, label := range labels {
				t, ok := types[label]
				if !ok {
					continue
				}
				f := lc.Factor(t)
				for _, term := range chosen {
					if term.Type == t {
						f = term.Factor
					}
				}
				if f != 0 {
					c.Factors = append(c.Factors, CaseFactor{Case: label, Factor: f})
				}
			}
			if len(c.Factors) > 0 {
				combos = append(combos, c)
			}
		}
	}
	return combos, unmapped
}

// expand returns every choice of one present term per group. It always
// returns at least one, possibly empty, choice.
func expand(groups []Alternative, present map[LoadType]bool) [][]Term {
	variants := [][]Term{nil}
	for _, g := range groups {
		var options []Term
		for _, term := range g {
			if present[term.Type] {
				options = append(options, term)
			}
		}
		if len(options) == 0 {
			continue
		}
		next := make([][]Term, 0, len(variants)*len(options))
		for _, v := range variants {
			for _, o := range options {
				next = append(next, append(v[:len(v):len(v)], o))
			}
		}
		variants = next
	}
	return variants
}

func describe(terms []Term) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}
