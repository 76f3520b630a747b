package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var beamParseCmd = &cobra.Command{
	Use:   "parse FILE...",
	Short: "Validate beam description files",
	Long: `Parse and validate beam description files. Each valid beam is printed
on one line; each invalid one is reported on stderr with its row number,
the offending token and the expected shape.

Examples:
  gobeam beam parse balcony.csv
  gobeam beam parse --strict beams.xlsx`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBeamParse,
}

func init() {
	beamCmd.AddCommand(beamParseCmd)
}

func runBeamParse(cmd *cobra.Command, args []string) error {
	results, err := loadBeams(args)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "  ✗\t%s\t\n", r.Source)
			continue
		}
		fmt.Fprintf(w, "  ✓\t%s\t%s\n", r.Source, r.Description)
	}
	w.Flush()

	return logOutcome(results)
}
