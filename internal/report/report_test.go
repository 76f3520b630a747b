package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobeam/internal/batch"
	"github.com/alexiusacademia/gobeam/internal/input"
	"github.com/alexiusacademia/gobeam/internal/model"
	"github.com/alexiusacademia/gobeam/internal/nscp"
)

func balcony() batch.Result {
	return batch.Process(input.Record{
		Source: "balcony.csv",
		Rows: [][]string{
			{"Balcony transfer beam"},
			{"4800", "24500", "1.2e9", "1", "1", "1", "0.2"},
			{"0:P", "3800:R"},
			{"DIST:Fy", "-30", "-20", "0", "4800", "case:Dead"},
			{"POINT:Fy", "-10000", "4800", "case:Live"},
		},
	}, batch.Options{Model: model.Options{Combinations: nscp.SimplifiedCombinations}})
}

func TestWriteText(t *testing.T) {
	r := balcony()
	require.NoError(t, r.Err)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))
	out := buf.String()

	for _, want := range []string{
		"BEAM: Balcony transfer beam",
		"ATTRIBUTES:",
		"SUPPORTS:",
		"Roller",
		"RFRRRR",
		"-30 → -20",
		"Node N2:",
		"Member M0:",
		"NSCP-2",
		"1.2·Dead + 1.6·Live",
		"WARNINGS:",
		"density not given",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Poisson's ratio not given")
}

func TestWriteText_Failure(t *testing.T) {
	r := batch.Result{Source: "broken.csv", Err: errors.New("broken.csv: missing row")}

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, r))
	assert.Contains(t, buf.String(), "BEAM: broken.csv")
	assert.Contains(t, buf.String(), "Error: broken.csv: missing row")
	assert.NotContains(t, buf.String(), "SUPPORTS:")
}

func TestWritePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	results := []batch.Result{
		balcony(),
		{Source: "broken.csv", Err: errors.New("missing row")},
	}
	require.NoError(t, WritePDF(path, results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestWritePDF_BadPath(t *testing.T) {
	err := WritePDF(filepath.Join(t.TempDir(), "missing", "report.pdf"), []batch.Result{balcony()})
	assert.Error(t, err)
}
