// Package statics holds closed-form statics results for single beams.
package statics

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSpanConfiguration is returned for spans that make a closed-form
// result undefined, such as a zero backspan.
var ErrInvalidSpanConfiguration = errors.New("invalid span configuration")

// Reactions are the support reactions of a simply supported beam with a
// continuous cantilever. Values oppose the applied load: a downward (positive)
// UDL gives negative reactions.
type Reactions struct {
	R1 float64 // hammer support, at the start of the cantilever
	R2 float64 // backspan support
}

// CantileverReactions returns the reactions of a beam carrying a uniform load
// w over its full length b + a, supported at its start and at distance b, so
// that a length a cantilevers past the hammer support.
//
//	R1 = w(b+a) * (b+a)/2 / b   (moments about the backspan support)
//	R2 = w(b+a) - R1
func CantileverReactions(w, b, a float64) (Reactions, error) {
	if !finite(w, b, a) || b <= 0 || a < 0 {
		return Reactions{}, fmt.Errorf("%w: w=%g b=%g a=%g (need b > 0, a >= 0)", ErrInvalidSpanConfiguration, w, b, a)
	}
	if w == 0 {
		return Reactions{}, nil
	}

	length := b + a
	centroid := length / 2
	total := w * length

	r1 := total * centroid / b
	r2 := total - r1
	return Reactions{R1: -r1, R2: -r2}, nil
}

// Total returns R1 + R2, which balances the applied load.
func (r Reactions) Total() float64 {
	return r.R1 + r.R2
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
