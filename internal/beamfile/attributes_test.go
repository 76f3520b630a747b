package beamfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAttributes_Defaults(t *testing.T) {
	attrs, err := ParseAttributes([]string{"4800", "24500", "1.2e9"})
	require.NoError(t, err)

	assert.Equal(t, 4800.0, attrs.Length)
	assert.Equal(t, 24500.0, attrs.E)
	assert.Equal(t, 1.2e9, attrs.Iz)
	for _, v := range []float64{attrs.Iy, attrs.A, attrs.J, attrs.Nu, attrs.Rho} {
		assert.Equal(t, 1.0, v)
	}
	assert.Equal(t, []string{"Iy", "A", "J", "nu", "rho"}, attrs.Defaulted)
	assert.True(t, attrs.UsesDefault("nu"))
}

func TestParseAttributes_AllGiven(t *testing.T) {
	attrs, err := ParseAttributes([]string{"20e3", "200e3", "6480e6", "390e6", "43900", "11900e3", "0.3", "7.85e-9"})
	require.NoError(t, err)

	assert.Equal(t, Attributes{
		Length: 20e3, E: 200e3, Iz: 6480e6, Iy: 390e6,
		A: 43900, J: 11900e3, Nu: 0.3, Rho: 7.85e-9,
	}, attrs)
	assert.Empty(t, attrs.Defaulted)
}

func TestParseAttributes_FillsLeftToRight(t *testing.T) {
	attrs, err := ParseAttributes([]string{"20e3", "200e3", "6480e6", "390e6", "43900", "", ""})
	require.NoError(t, err)

	assert.Equal(t, 390e6, attrs.Iy)
	assert.Equal(t, 43900.0, attrs.A)
	assert.Equal(t, []string{"J", "nu", "rho"}, attrs.Defaulted)
}

func TestParseAttributes_Errors(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   error
	}{
		{"two tokens", []string{"4800", "24500"}, ErrMissingRequiredAttribute},
		{"empty", nil, ErrMissingRequiredAttribute},
		{"nine tokens", []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, ErrTooManyAttributes},
		{"bad required", []string{"4800", "E", "1.2e9"}, ErrInvalidNumber},
		{"bad optional", []string{"4800", "24500", "1.2e9", "1", "area"}, ErrInvalidNumber},
		{"zero length", []string{"0", "24500", "1.2e9"}, ErrInvalidAttribute},
		{"negative E", []string{"4800", "-1", "1.2e9"}, ErrInvalidAttribute},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAttributes(tt.tokens)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, 1, pe.Row)
		})
	}
}
