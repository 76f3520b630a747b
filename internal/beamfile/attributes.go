package beamfile

import (
	"slices"
	"strings"
)

// Attributes are the material and section properties of a beam, in the
// units of the input file.
type Attributes struct {
	Length float64 `json:"L" yaml:"L"`     // total span
	E      float64 `json:"E" yaml:"E"`     // elastic modulus
	Iz     float64 `json:"Iz" yaml:"Iz"`   // moment of inertia, primary bending axis
	Iy     float64 `json:"Iy" yaml:"Iy"`   // moment of inertia, secondary axis
	A      float64 `json:"A" yaml:"A"`     // cross-sectional area
	J      float64 `json:"J" yaml:"J"`     // polar moment of inertia
	Nu     float64 `json:"nu" yaml:"nu"`   // Poisson's ratio
	Rho    float64 `json:"rho" yaml:"rho"` // density

	// Defaulted names the optional attributes that were absent from the
	// input and took their default value, in positional order.
	Defaulted []string `json:"defaulted,omitempty" yaml:"defaulted,omitempty"`
}

// DefaultOptionalAttribute is the value an absent optional attribute takes.
// A Poisson's ratio or density of 1.0 is not physically meaningful; it is
// kept because existing beam files rely on it.
const DefaultOptionalAttribute = 1.0

const (
	requiredAttributes = 3
	maxAttributes      = 8
)

// optionalSlot is one positional optional attribute.
type optionalSlot struct {
	name string
	dst  func(*Attributes) *float64
}

var optionalSlots = [maxAttributes - requiredAttributes]optionalSlot{
	{"Iy", func(a *Attributes) *float64 { return &a.Iy }},
	{"A", func(a *Attributes) *float64 { return &a.A }},
	{"J", func(a *Attributes) *float64 { return &a.J }},
	{"nu", func(a *Attributes) *float64 { return &a.Nu }},
	{"rho", func(a *Attributes) *float64 { return &a.Rho }},
}

// ParseAttributes parses the attributes row [L, E, Iz, Iy?, A?, J?, nu?, rho?].
// Optional tokens fill slots strictly left to right; absent trailing slots
// take DefaultOptionalAttribute. Any non-numeric token is fatal, optional
// or not.
func ParseAttributes(tokens []string) (Attributes, error) {
	const row = 1
	tokens = trimTrailingEmpty(tokens)

	if len(tokens) < requiredAttributes {
		return Attributes{}, rowError(row, strings.Join(tokens, ","), shapeAttributes, ErrMissingRequiredAttribute)
	}
	if len(tokens) > maxAttributes {
		return Attributes{}, rowError(row, strings.Join(tokens, ","), shapeAttributes, ErrTooManyAttributes)
	}

	values := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, err := ParseFloat(tok)
		if err != nil {
			return Attributes{}, rowError(row, tok, shapeAttributes, ErrInvalidNumber)
		}
		values[i] = v
	}

	for i, label := range []string{"L", "E", "Iz"} {
		if values[i] <= 0 {
			return Attributes{}, rowError(row, tokens[i], "a positive "+label, ErrInvalidAttribute)
		}
	}

	attrs := Attributes{Length: values[0], E: values[1], Iz: values[2]}
	for i, slot := range optionalSlots {
		dst := slot.dst(&attrs)
		if pos := requiredAttributes + i; pos < len(values) {
			*dst = values[pos]
			continue
		}
		*dst = DefaultOptionalAttribute
		attrs.Defaulted = append(attrs.Defaulted, slot.name)
	}
	return attrs, nil
}

// UsesDefault reports whether the named optional attribute was defaulted.
func (a Attributes) UsesDefault(name string) bool {
	return slices.Contains(a.Defaulted, name)
}

// trimTrailingEmpty drops blank trailing tokens, which spreadsheets and
// hand-edited CSV files leave behind.
func trimTrailingEmpty(tokens []string) []string {
	n := len(tokens)
	for n > 0 && strings.TrimSpace(tokens[n-1]) == "" {
		n--
	}
	return tokens[:n]
}
