// Package input reads beam description rows from CSV files and Excel
// workbooks.
package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Record is the raw rows of one beam and where they came from.
type Record struct {
	Source string
	Rows   [][]string
}

// ReadCSV reads comma separated rows. Rows may have any number of fields.
// Fields are trimmed, trailing empty fields are dropped, and rows left
// empty are skipped.
func ReadCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %w", err)
		}
		if row := clean(rec); len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// ReadWorkbook returns one record per non-empty sheet of an .xlsx file, in
// sheet order. The source of each record is "path#sheet".
func ReadWorkbook(path string) ([]Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	var records []Record
	for _, sheet := range f.GetSheetList() {
		raw, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %s of %s: %w", sheet, path, err)
		}
		var rows [][]string
		for _, r := range raw {
			if row := clean(r); len(row) > 0 {
				rows = append(rows, row)
			}
		}
		if len(rows) == 0 {
			continue
		}
		records = append(records, Record{Source: path + "#" + sheet, Rows: rows})
	}
	return records, nil
}

// ReadFile reads the records of one file: every sheet of an .xlsx
// workbook, or the single beam of any other (CSV) file.
func ReadFile(path string) ([]Record, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ReadWorkbook(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return []Record{{Source: path, Rows: rows}}, nil
}

// ReadFiles reads every path in order. It stops at the first file that
// cannot be read.
func ReadFiles(paths []string) ([]Record, error) {
	var records []Record
	for _, p := range paths {
		recs, err := ReadFile(p)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	return records, nil
}

func clean(fields []string) []string {
	row := make([]string, len(fields))
	for i, f := range fields {
		row[i] = strings.TrimSpace(f)
	}
	for len(row) > 0 && row[len(row)-1] == "" {
		row = row[:len(row)-1]
	}
	return row
}
