package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobeam/internal/statics"
)

const balconyCSV = `Balcony transfer beam
4800,24500,1.2e9,1,1,1,0.2,2.4e-9
0:P,3800:R
DIST:Fy,-30,-30,0,4800,case:Dead
POINT:Fy,-10000,4800,case:Live
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func execute(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestBeamParse(t *testing.T) {
	good := writeFile(t, "balcony.csv", balconyCSV)
	require.NoError(t, execute("beam", "parse", good))

	bad := writeFile(t, "bad.csv", "Bad\n4800,24500\n0:P\nPOINT:Fy,1,2,case:D\n")
	err := execute("beam", "parse", good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 beams failed")
}

func TestBeamModel(t *testing.T) {
	good := writeFile(t, "balcony.csv", balconyCSV)
	assert.NoError(t, execute("beam", "model", good))
}

func TestBeamReport_PDF(t *testing.T) {
	good := writeFile(t, "balcony.csv", balconyCSV)
	out := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, execute("beam", "report", good, "--pdf", out))
	_, err := os.Stat(out)
	assert.NoError(t, err)
}

func TestReaction_InvalidSpans(t *testing.T) {
	err := execute("reaction", "--w", "-50", "--length", "6850", "--cantilever-at", "7000")
	assert.ErrorIs(t, err, statics.ErrInvalidSpanConfiguration)
}

func TestBuckling(t *testing.T) {
	assert.NoError(t, execute("buckling", "--length", "3000", "--e", "200000", "--i", "8.5e6"))
}
