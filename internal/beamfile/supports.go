package beamfile

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// SupportKind is the type of a support.
type SupportKind int

const (
	Unknown SupportKind = iota // restrains nothing; never a valid engineering state
	Pin
	Roller
	Fixed
)

var supportCodes = map[string]SupportKind{
	"P": Pin,
	"R": Roller,
	"F": Fixed,
}

// ParseSupportKind maps a support code (case-sensitive P, R or F) to its
// kind. Any other code is Unknown, and ok is false.
func ParseSupportKind(code string) (kind SupportKind, ok bool) {
	kind, ok = supportCodes[code]
	return kind, ok
}

// Code returns the single-letter input code, "?" for Unknown.
func (k SupportKind) Code() string {
	switch k {
	case Pin:
		return "P"
	case Roller:
		return "R"
	case Fixed:
		return "F"
	}
	return "?"
}

func (k SupportKind) String() string {
	switch k {
	case Pin:
		return "Pin"
	case Roller:
		return "Roller"
	case Fixed:
		return "Fixed"
	}
	return "Unknown"
}

func (k SupportKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *SupportKind) UnmarshalText(b []byte) error {
	for _, c := range []SupportKind{Unknown, Pin, Roller, Fixed} {
		if string(b) == c.String() {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownSupportKind, b)
}

// Support is one entry of a SupportTable.
type Support struct {
	Location float64     `json:"location" yaml:"location"`
	Kind     SupportKind `json:"kind" yaml:"kind"`
}

// SupportTable maps unique locations to support kinds. Iteration is always
// in ascending location order, whatever order the supports were given in.
type SupportTable struct {
	entries []Support // sorted by Location, unique
}

// NewSupportTable builds a table from supports in any order. A repeated
// location keeps the last entry.
func NewSupportTable(supports ...Support) SupportTable {
	var t SupportTable
	for _, s := range supports {
		t.set(s)
	}
	return t
}

// set inserts or overwrites, keeping entries sorted. It reports whether
// the location was already present.
func (t *SupportTable) set(s Support) (replaced bool) {
	i, found := slices.BinarySearchFunc(t.entries, s.Location, func(e Support, loc float64) int {
		switch {
		case e.Location < loc:
			return -1
		case e.Location > loc:
			return 1
		}
		return 0
	})
	if found {
		t.entries[i] = s
		return true
	}
	t.entries = slices.Insert(t.entries, i, s)
	return false
}

// Len returns the number of supports.
func (t SupportTable) Len() int { return len(t.entries) }

// Get returns the kind of the support at location, if any.
func (t SupportTable) Get(location float64) (SupportKind, bool) {
	for _, e := range t.entries {
		if e.Location == location {
			return e.Kind, true
		}
	}
	return Unknown, false
}

// All iterates location → kind in ascending location order.
func (t SupportTable) All() iter.Seq2[float64, SupportKind] {
	return func(yield func(float64, SupportKind) bool) {
		for _, e := range t.entries {
			if !yield(e.Location, e.Kind) {
				return
			}
		}
	}
}

// Supports returns a copy of the entries in ascending location order.
func (t SupportTable) Supports() []Support {
	return slices.Clone(t.entries)
}

// Locations returns the support locations in ascending order.
func (t SupportTable) Locations() []float64 {
	locs := make([]float64, len(t.entries))
	for i, e := range t.entries {
		locs[i] = e.Location
	}
	return locs
}

// Last returns the support with the greatest location.
func (t SupportTable) Last() (Support, bool) {
	if len(t.entries) == 0 {
		return Support{}, false
	}
	return t.entries[len(t.entries)-1], true
}

func (t SupportTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Supports())
}

func (t SupportTable) MarshalYAML() (any, error) {
	return t.Supports(), nil
}

// SupportOptions controls how strictly the supports row is read.
type SupportOptions struct {
	// Strict rejects repeated locations and support codes other than P, R
	// and F instead of overwriting and mapping to Unknown.
	Strict bool
}

// ParseSupports parses the supports row, tokens of the form
// "<location>:<kind>". Each token is split on its first colon.
func ParseSupports(tokens []string, opts SupportOptions) (SupportTable, error) {
	const row = 2
	var t SupportTable
	for _, tok := range trimTrailingEmpty(tokens) {
		s, err := parseSupport(tok, opts)
		if err != nil {
			return SupportTable{}, err
		}
		if replaced := t.set(s); replaced && opts.Strict {
			return SupportTable{}, rowError(row, tok, "each support location once", ErrDuplicateSupportLocation)
		}
	}
	if t.Len() == 0 {
		return SupportTable{}, rowError(row, "", shapeSupport, ErrNoSupportsDefined)
	}
	return t, nil
}

func parseSupport(tok string, opts SupportOptions) (Support, error) {
	const row = 2
	loc, code, found := strings.Cut(strings.TrimSpace(tok), ":")
	if !found {
		return Support{}, rowError(row, tok, shapeSupport, ErrMalformedSupportToken)
	}
	x, err := ParseFloat(loc)
	if err != nil {
		return Support{}, rowError(row, tok, shapeSupport, fmt.Errorf("%w: %w", ErrMalformedSupportToken, ErrInvalidNumber))
	}
	kind, ok := ParseSupportKind(strings.TrimSpace(code))
	if !ok && opts.Strict {
		return Support{}, rowError(row, tok, shapeSupport, ErrUnknownSupportKind)
	}
	return Support{Location: x, Kind: kind}, nil
}
