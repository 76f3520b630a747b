package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/report"
)

var reportPDF string

var beamReportCmd = &cobra.Command{
	Use:   "report FILE...",
	Short: "Write a report of each beam",
	Long: `Write a report of each beam: attributes, supports, loads, the analysis
model and its load combinations, and any warnings.

Examples:
  gobeam beam report balcony.csv
  gobeam beam report beams.xlsx --pdf beams.pdf`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBeamReport,
}

func init() {
	beamCmd.AddCommand(beamReportCmd)

	beamReportCmd.Flags().StringVar(&reportPDF, "pdf", "", "Write the report to a PDF file instead of stdout")
}

func runBeamReport(cmd *cobra.Command, args []string) error {
	results, err := loadBeams(args)
	if err != nil {
		return err
	}

	if reportPDF != "" {
		if err := report.WritePDF(reportPDF, results); err != nil {
			return err
		}
		fmt.Printf("  Report saved to %s\n", reportPDF)
	} else {
		for _, r := range results {
			if err := report.WriteText(os.Stdout, r); err != nil {
				return err
			}
		}
	}

	return logOutcome(results)
}
