package section

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobeam/internal/beamfile"
)

func rectangle() *Section {
	return &Section{
		Name:     "300x500",
		Material: "concrete",
		Fc:       28,
		Vertices: []Point{{0, 0}, {300, 0}, {300, 500}, {0, 500}},
	}
}

func TestProperties_Rectangle(t *testing.T) {
	p := rectangle().Properties()

	assert.Equal(t, 300.0, p.Width)
	assert.Equal(t, 500.0, p.Height)
	assert.InDelta(t, 150000, p.Area, 1e-6)
	assert.InDelta(t, 150, p.CentroidX, 1e-9)
	assert.InDelta(t, 250, p.CentroidY, 1e-9)
	assert.InEpsilon(t, 300*500.0*500*500/12, p.Iz, 1e-9)
	assert.InEpsilon(t, 500*300.0*300*300/12, p.Iy, 1e-9)
	assert.InEpsilon(t, 2.81737e9, p.J, 1e-5)
}

func TestProperties_VertexOrder(t *testing.T) {
	ccw := rectangle()
	cw := rectangle()
	slices.Reverse(cw.Vertices)

	a, b := ccw.Properties(), cw.Properties()
	assert.InDelta(t, a.Area, b.Area, 1e-6)
	assert.InEpsilon(t, a.Iz, b.Iz, 1e-9)
	assert.InEpsilon(t, a.Iy, b.Iy, 1e-9)
}

func TestProperties_TBeam(t *testing.T) {
	s := &Section{Material: "concrete", Fc: 28, Vertices: []Point{
		{0, 0}, {300, 0}, {300, 400}, {600, 400}, {600, 500}, {-300, 500}, {-300, 400}, {0, 400},
	}}
	p := s.Properties()

	// web 300x400 + flange 900x100
	area := 300*400.0 + 900*100.0
	cy := (300*400*200.0 + 900*100*450.0) / area
	iz := 300*400.0*400*400/12 + 300*400*(200-cy)*(200-cy) +
		900*100.0*100*100/12 + 900*100*(450-cy)*(450-cy)

	assert.InDelta(t, area, p.Area, 1e-6)
	assert.InDelta(t, 150, p.CentroidX, 1e-9)
	assert.InDelta(t, cy, p.CentroidY, 1e-9)
	assert.InEpsilon(t, iz, p.Iz, 1e-9)
}

func TestAttributeRow(t *testing.T) {
	row, err := rectangle().AttributeRow(4800)
	require.NoError(t, err)
	assert.Equal(t, []string{"4800", "24870.1", "3.125e+09", "1.125e+09", "150000", "2.81737e+09", "0.2", "2.4e-09"}, row)

	attrs, err := beamfile.ParseAttributes(row)
	require.NoError(t, err)
	assert.Empty(t, attrs.Defaulted)
	assert.Equal(t, 0.2, attrs.Nu)

	_, err = rectangle().AttributeRow(0)
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "rect.json")
	require.NoError(t, os.WriteFile(good, []byte(`{
  "name": "W-ish",
  "material": "steel",
  "vertices": [{"x": 0, "y": 0}, {"x": 100, "y": 0}, {"x": 100, "y": 200}, {"x": 0, "y": 200}]
}`), 0o644))

	s, err := LoadFromFile(good)
	require.NoError(t, err)
	assert.Equal(t, "W-ish", s.Name)
	assert.InDelta(t, 20000, s.Properties().Area, 1e-9)

	tests := []struct {
		name string
		body string
	}{
		{"too few vertices", `{"material": "steel", "vertices": [{"x": 0, "y": 0}, {"x": 1, "y": 0}]}`},
		{"unknown material", `{"material": "timber", "vertices": [{"x": 0, "y": 0}, {"x": 1, "y": 0}, {"x": 1, "y": 1}]}`},
		{"concrete without fc", `{"material": "concrete", "vertices": [{"x": 0, "y": 0}, {"x": 1, "y": 0}, {"x": 1, "y": 1}]}`},
		{"collinear", `{"material": "steel", "vertices": [{"x": 0, "y": 0}, {"x": 1, "y": 0}, {"x": 2, "y": 0}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "bad.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))
			_, err := LoadFromFile(path)
			var ve *ValidationError
			assert.ErrorAs(t, err, &ve)
		})
	}
}
