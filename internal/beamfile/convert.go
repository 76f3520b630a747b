package beamfile

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is a numeric token. Integral tokens keep their integer value so
// "4800" and "4800.0" can be told apart when that matters.
type Number struct {
	Int     int64
	Float   float64
	Integer bool
}

// Value returns the number as a float64.
func (n Number) Value() float64 {
	if n.Integer {
		return float64(n.Int)
	}
	return n.Float
}

// ParseNumber parses token as an integer, then as a real. Surrounding
// whitespace is ignored. NaN and infinities are rejected.
func ParseNumber(token string) (Number, error) {
	s := strings.TrimSpace(token)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Number{Int: i, Float: float64(i), Integer: true}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}, fmt.Errorf("%w: %q", ErrInvalidNumber, token)
	}
	return Number{Float: f}, nil
}

// ParseFloat is ParseNumber for callers that only need the value.
func ParseFloat(token string) (float64, error) {
	n, err := ParseNumber(token)
	if err != nil {
		return 0, err
	}
	return n.Value(), nil
}

// Field is a token that may or may not be numeric, such as a label.
type Field struct {
	Text    string
	Number  float64
	Numeric bool
}

// ParseField is the permissive converter: a non-numeric token is kept as
// text instead of failing.
func ParseField(token string) Field {
	f := Field{Text: strings.TrimSpace(token)}
	if n, err := ParseNumber(f.Text); err == nil {
		f.Number = n.Value()
		f.Numeric = true
	}
	return f
}

// String returns the original text of the field.
func (f Field) String() string {
	return f.Text
}
