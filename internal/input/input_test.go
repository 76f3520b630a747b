package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const balcony = `Balcony transfer beam,,,
4800, 24500, 1200000000,1,1,1,0.2,2.4e-9
0:P,3800:R,,,

DIST:Fy,30,30,0,4800,case:Dead
,,,
POINT:Fy,-10000,4800,case:Live
`

func TestReadCSV(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader(balcony))
	require.NoError(t, err)

	require.Len(t, rows, 5)
	assert.Equal(t, []string{"Balcony transfer beam"}, rows[0])
	assert.Equal(t, []string{"4800", "24500", "1200000000", "1", "1", "1", "0.2", "2.4e-9"}, rows[1])
	assert.Equal(t, []string{"0:P", "3800:R"}, rows[2])
	assert.Equal(t, []string{"POINT:Fy", "-10000", "4800", "case:Live"}, rows[4])
}

func TestReadCSV_KeepsInnerEmptyFields(t *testing.T) {
	rows, err := ReadCSV(strings.NewReader("a,,b,\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "", "b"}}, rows)
}

func TestReadCSV_BadQuote(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("\"unterminated\n"))
	assert.Error(t, err)
}

func TestReadFile_CSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balcony.csv")
	require.NoError(t, os.WriteFile(path, []byte(balcony), 0o644))

	records, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, path, records[0].Source)
	assert.Len(t, records[0].Rows, 5)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beams.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "B1"))
	require.NoError(t, f.SetSheetRow("B1", "A1", &[]any{"Balcony transfer beam"}))
	require.NoError(t, f.SetSheetRow("B1", "A2", &[]any{4800, 24500, 1200000000}))
	require.NoError(t, f.SetSheetRow("B1", "A3", &[]any{"0:P", "3800:R"}))
	require.NoError(t, f.SetSheetRow("B1", "A4", &[]any{"POINT:Fy", -10000, 4800, "case:Live"}))
	_, err := f.NewSheet("Empty")
	require.NoError(t, err)
	_, err = f.NewSheet("B2")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("B2", "A1", &[]any{"Lintel"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	records, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, path+"#B1", records[0].Source)
	assert.Equal(t, []string{"4800", "24500", "1200000000"}, records[0].Rows[1])
	assert.Equal(t, []string{"POINT:Fy", "-10000", "4800", "case:Live"}, records[0].Rows[3])
	assert.Equal(t, path+"#B2", records[1].Source)
	assert.Equal(t, [][]string{{"Lintel"}}, records[1].Rows)
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	require.NoError(t, os.WriteFile(a, []byte("A\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("B\n"), 0o644))

	records, err := ReadFiles([]string{b, a})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, b, records[0].Source)
	assert.Equal(t, a, records[1].Source)
}
