// Package batch parses and assembles many beam records in parallel.
package batch

import (
	"fmt"
	"runtime"

	conciter "github.com/sourcegraph/conc/iter"

	"github.com/alexiusacademia/gobeam/internal/beamfile"
	"github.com/alexiusacademia/gobeam/internal/input"
	"github.com/alexiusacademia/gobeam/internal/model"
)

// Options configures a batch run.
type Options struct {
	Parse beamfile.Options
	Model model.Options
	// Workers bounds the number of records processed at once. Zero means
	// one per CPU.
	Workers int
	// QuietDefaults leaves the nu and rho default warnings out of results.
	QuietDefaults bool
}

// Result is the outcome of one record. Err is set when the record could
// not be parsed or assembled; Description may still be set when only
// assembly failed.
type Result struct {
	Source      string
	Description *beamfile.Description
	Model       *model.Model
	Warnings    []string
	Err         error
}

// Summary counts the outcomes of a batch.
type Summary struct {
	Processed int
	Failed    int
}

// Total returns the number of records in the batch.
func (s Summary) Total() int { return s.Processed + s.Failed }

// Summarize counts successes and failures.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
		} else {
			s.Processed++
		}
	}
	return s
}

// Run processes every record independently and returns one result per
// record, in input order. A failing record never stops the others.
func Run(records []input.Record, opts Options) []Result {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	m := conciter.Mapper[input.Record, Result]{MaxGoroutines: workers}
	return m.Map(records, func(rec *input.Record) Result {
		return Process(*rec, opts)
	})
}

// Process parses and assembles a single record.
func Process(rec input.Record, opts Options) Result {
	res := Result{Source: rec.Source}

	d, err := beamfile.Parse(rec.Rows, opts.Parse)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", rec.Source, err)
		return res
	}
	res.Description = d

	m, err := model.Assemble(d, opts.Model)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", rec.Source, err)
		return res
	}
	res.Model = m

	if !opts.QuietDefaults {
		res.Warnings = d.DefaultWarnings()
	}
	res.Warnings = append(res.Warnings, d.SupportWarnings()...)
	for _, c := range m.UnmappedCases {
		res.Warnings = append(res.Warnings, fmt.Sprintf("beam %q: load case %q matches no NSCP load type and is left out of combinations", d.Name, c))
	}
	return res
}
