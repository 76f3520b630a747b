package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobeam/internal/beamfile"
)

func balcony(t *testing.T) *beamfile.Description {
	t.Helper()
	d, err := beamfile.Parse([][]string{
		{"Balcony transfer beam"},
		{"4800", "24500", "1.2e9"},
		{"0:P", "3800:R"},
		{"DIST:Fy", "-30", "-30", "0", "4800", "case:Dead"},
		{"DIST:Fy", "0", "-20", "2400", "4800", "case:Live"},
		{"POINT:Fy", "-10000", "4800", "case:Live"},
	}, beamfile.Options{})
	require.NoError(t, err)
	return d
}

func TestDrawBeam(t *testing.T) {
	out := DrawBeam(balcony(t))
	lines := strings.Split(out, "\n")

	assert.Contains(t, out, "BEAM ELEVATION: Balcony transfer beam (L = 4800)")
	var supportRow, labelRow, pointRow string
	for i, l := range lines {
		if strings.HasPrefix(l, "  ═") {
			pointRow = lines[i-1]
			supportRow = lines[i+1]
			labelRow = lines[i+2]
		}
	}
	require.NotEmpty(t, supportRow)

	runes := []rune(supportRow)
	assert.Equal(t, '△', runes[2])
	assert.Equal(t, '○', runes[2+column(3800, 4800)])
	assert.True(t, strings.HasPrefix(labelRow, "  0"))
	assert.Contains(t, labelRow, "3800")
	assert.Equal(t, '▼', []rune(pointRow)[2+elevationWidth])
}

func TestIntensity(t *testing.T) {
	d := balcony(t)
	assert.Equal(t, -30.0, Intensity(d, "Fy", 1000))
	assert.Equal(t, -40.0, Intensity(d, "Fy", 3600))
	assert.Equal(t, 0.0, Intensity(d, "Fx", 3600))
}

func TestLoadProfile(t *testing.T) {
	out, err := LoadProfile(balcony(t), "Fy")
	require.NoError(t, err)
	assert.Contains(t, out, "Fy distributed load, 0 to 4800")
	assert.Contains(t, out, "-50.00")

	_, err = LoadProfile(balcony(t), "Fx")
	assert.ErrorIs(t, err, ErrNoDistributedLoads)
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("REACTIONS", []string{"R1 = -12.5", "R2 = 40"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[1], "REACTIONS")
	assert.Contains(t, lines[3], "R1 = -12.5")
}

func TestExportBeamDiagram(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "out", "beam.svg")
	require.NoError(t, ExportBeamDiagram(balcony(t), path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	noExt := filepath.Join(dir, "beam")
	require.NoError(t, ExportBeamDiagram(balcony(t), noExt))
	_, err = os.Stat(noExt + ".png")
	assert.NoError(t, err)
}
