// Package beamfile reads the delimited description of a beam (name,
// section and material attributes, supports, loads) into a validated
// Description.
//
// A record is a sequence of rows already split into tokens:
//
//	Row 0:    <beam name>
//	Row 1:    L, E, Iz[, Iy, A, J, nu, rho]
//	Row 2:    <loc>:<P|R|F>, <loc>:<P|R|F>, ...
//	Row 3..N: POINT:<dir>, <P>, <x>, case:<label>
//	          DIST:<dir>, <w1>, <w2>, <x1>, <x2>, case:<label>
package beamfile

import (
	"errors"
	"fmt"
	"strings"
)

// Description is a normalized beam, ready for the model assembler.
type Description struct {
	Name string `json:"name" yaml:"name"`

	Attributes `yaml:",inline"`

	Supports SupportTable `json:"supports" yaml:"supports"`
	Loads    []Load       `json:"loads" yaml:"loads"`
}

// Options controls parsing.
type Options struct {
	Supports SupportOptions
}

const firstLoadRow = 3

// Parse normalizes one record. It never returns a partial Description:
// the first problem found rejects the whole record with a *ParseError.
func Parse(rows [][]string, opts Options) (*Description, error) {
	rows = dropBlankRows(rows)
	if len(rows) < firstLoadRow {
		return nil, &ParseError{Row: len(rows), Expected: "name, attributes and supports rows", Err: ErrMissingRow}
	}

	name := ""
	if r := trimTrailingEmpty(rows[0]); len(r) > 0 {
		name = ParseField(r[0]).Text
	}
	if name == "" {
		return nil, rowError(0, "", shapeName, ErrMissingName)
	}

	d, err := parseBody(rows, opts)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Beam = name
		}
		return nil, err
	}
	d.Name = name
	return d, nil
}

func parseBody(rows [][]string, opts Options) (*Description, error) {
	attrs, err := ParseAttributes(rows[1])
	if err != nil {
		return nil, err
	}

	supports, err := ParseSupports(rows[2], opts.Supports)
	if err != nil {
		return nil, err
	}
	for loc := range supports.All() {
		if loc < 0 || loc > attrs.Length {
			return nil, rowError(2, fmt.Sprint(loc), fmt.Sprintf("a location in [0, %g]", attrs.Length), ErrLocationOutOfRange)
		}
	}

	if len(rows) == firstLoadRow {
		return nil, rowError(firstLoadRow, "", shapeLoad, ErrNoLoadsDefined)
	}
	loads, err := ParseLoads(rows[firstLoadRow:], firstLoadRow)
	if err != nil {
		return nil, err
	}
	for i, l := range loads {
		if err := checkLoadRange(l, attrs.Length); err != nil {
			err.Row = firstLoadRow + i
			return nil, err
		}
	}

	return &Description{Attributes: attrs, Supports: supports, Loads: loads}, nil
}

func checkLoadRange(l Load, length float64) *ParseError {
	expected := fmt.Sprintf("a location in [0, %g]", length)
	inside := func(x float64) bool { return x >= 0 && x <= length }
	switch l := l.(type) {
	case PointLoad:
		if !inside(l.Location) {
			return rowError(-1, fmt.Sprint(l.Location), expected, ErrLocationOutOfRange)
		}
	case DistributedLoad:
		if !inside(l.StartLocation) {
			return rowError(-1, fmt.Sprint(l.StartLocation), expected, ErrLocationOutOfRange)
		}
		if !inside(l.EndLocation) {
			return rowError(-1, fmt.Sprint(l.EndLocation), expected, ErrLocationOutOfRange)
		}
	}
	return nil
}

// dropBlankRows removes rows with no non-blank token.
func dropBlankRows(rows [][]string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		if len(trimTrailingEmpty(r)) > 0 {
			out = append(out, r)
		}
	}
	return out
}

// Cases returns the distinct load case labels in first-seen order.
func (d *Description) Cases() []string {
	var cases []string
	seen := make(map[string]bool)
	for _, l := range d.Loads {
		if c := l.LoadCase(); !seen[c] {
			seen[c] = true
			cases = append(cases, c)
		}
	}
	return cases
}

// Warnings lists engineering defaults that were applied silently by the
// file format and deserve a second look.
func (d *Description) Warnings() []string {
	return append(d.DefaultWarnings(), d.SupportWarnings()...)
}

// DefaultWarnings reports Poisson's ratio and density taking the 1.0
// default, which is rarely a physical value.
func (d *Description) DefaultWarnings() []string {
	var w []string
	if d.UsesDefault("nu") {
		w = append(w, fmt.Sprintf("beam %q: Poisson's ratio not given, using nu = %g", d.Name, DefaultOptionalAttribute))
	}
	if d.UsesDefault("rho") {
		w = append(w, fmt.Sprintf("beam %q: density not given, using rho = %g", d.Name, DefaultOptionalAttribute))
	}
	return w
}

// SupportWarnings reports supports of unknown kind.
func (d *Description) SupportWarnings() []string {
	var w []string
	for loc, kind := range d.Supports.All() {
		if kind == Unknown {
			w = append(w, fmt.Sprintf("beam %q: support at %g has an unknown kind and restrains nothing", d.Name, loc))
		}
	}
	return w
}

// String summarizes the description on one line.
func (d *Description) String() string {
	var kinds []string
	for loc, kind := range d.Supports.All() {
		kinds = append(kinds, fmt.Sprintf("%g:%s", loc, kind.Code()))
	}
	return fmt.Sprintf("%s L=%g supports=[%s] loads=%d", d.Name, d.Length, strings.Join(kinds, " "), len(d.Loads))
}
