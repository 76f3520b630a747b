package statics

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidProperty is returned when a material or section property makes a
// formula meaningless.
var ErrInvalidProperty = errors.New("invalid property")

// ShearModulus returns G = E / (2(1 + nu)).
func ShearModulus(nu, e float64) (float64, error) {
	if nu <= -1 || !finite(nu, e) {
		return 0, fmt.Errorf("%w: nu=%g E=%g", ErrInvalidProperty, nu, e)
	}
	return e / (2 * (1 + nu)), nil
}

// EulerBucklingLoad returns the Euler critical load pi²EI/(kl)² of a column
// with braced length l, elastic modulus e, moment of inertia i and effective
// length factor k.
func EulerBucklingLoad(l, e, i, k float64) (float64, error) {
	if l <= 0 || k <= 0 || !finite(l, e, i, k) {
		return 0, fmt.Errorf("%w: l=%g k=%g", ErrInvalidProperty, l, k)
	}
	return math.Pi * math.Pi * e * i / math.Pow(k*l, 2), nil
}
