package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/batch"
	"github.com/alexiusacademia/gobeam/internal/input"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Beam description files: parse, model, combinations, diagrams, reports",
	Long: `Read beam description files and work with the beams they describe.

A file holds one beam (CSV) or one beam per sheet (.xlsx):
  row 1   name
  row 2   L, E, Iz [, Iy, A, J, nu, rho]
  row 3   support tokens, e.g. 0:P 3800:R 4800:F
  row 4+  POINT:<dir>, P, x, case:<label>
          DIST:<dir>, w1, w2, x1, x2, case:<label>

Subcommands:
  parse    - Validate files and print each beam
  model    - Print the analysis model of each beam
  combos   - Print the NSCP load combinations of each beam
  diagram  - Draw a beam elevation and load profile
  report   - Write a full report (text or PDF)`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}

// loadBeams reads every file and processes its records with the current
// configuration.
func loadBeams(paths []string) ([]batch.Result, error) {
	records, err := input.ReadFiles(paths)
	if err != nil {
		return nil, err
	}
	return batch.Run(records, cfg.BatchOptions()), nil
}

// logOutcome logs warnings and failures and returns an error when any
// record failed.
func logOutcome(results []batch.Result) error {
	for _, r := range results {
		if r.Err != nil {
			logger.Println(r.Err)
			continue
		}
		for _, w := range r.Warnings {
			logger.Println("warning:", w)
		}
	}
	if s := batch.Summarize(results); s.Failed > 0 {
		return fmt.Errorf("%d of %d beams failed", s.Failed, s.Total())
	}
	return nil
}
