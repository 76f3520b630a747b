package statics

import "fmt"

// Spans splits a beam of totalLength whose hammer support sits at
// distToCantilever from the start into its backspan b and cantilever a.
// The backspan is assumed to begin at the start of the beam.
func Spans(totalLength, distToCantilever float64) (b, a float64, err error) {
	if !finite(totalLength, distToCantilever) || distToCantilever <= 0 || distToCantilever > totalLength {
		return 0, 0, fmt.Errorf("%w: support at %g on a beam of length %g", ErrInvalidSpanConfiguration, distToCantilever, totalLength)
	}
	return distToCantilever, totalLength - distToCantilever, nil
}
