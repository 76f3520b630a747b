package statics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShearModulus(t *testing.T) {
	g, err := ShearModulus(0.3, 200_000)
	require.NoError(t, err)
	assert.InDelta(t, 76923.07692307692, g, 1e-9)

	g, err = ShearModulus(0.2, 3645)
	require.NoError(t, err)
	assert.InDelta(t, 1518.75, g, 1e-9)

	_, err = ShearModulus(-1, 3645)
	assert.ErrorIs(t, err, ErrInvalidProperty)
}

func TestEulerBucklingLoad(t *testing.T) {
	// Newtons: l in mm, E in MPa, I in mm^4.
	p, err := EulerBucklingLoad(5300, 200000, 632e6, 1.0)
	require.NoError(t, err)
	assert.InEpsilon(t, 44411463.02234584, p, 1e-12)

	// kips: l in inch, E in ksi, I in inch^4.
	p, err = EulerBucklingLoad(212, 3645, 5125.4, 2.0)
	require.NoError(t, err)
	assert.InEpsilon(t, 1025.6361727834453, p, 1e-12)

	_, err = EulerBucklingLoad(0, 3645, 5125.4, 2.0)
	assert.ErrorIs(t, err, ErrInvalidProperty)
	_, err = EulerBucklingLoad(212, 3645, 5125.4, 0)
	assert.ErrorIs(t, err, ErrInvalidProperty)
}
