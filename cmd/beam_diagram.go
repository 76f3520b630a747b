package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/diagram"
)

var (
	diagramOut       string
	diagramDirection string
)

var beamDiagramCmd = &cobra.Command{
	Use:   "diagram FILE",
	Short: "Draw a beam elevation and its distributed load profile",
	Long: `Draw the elevation of the first beam in FILE with its supports and
loads, followed by the distributed load intensity along the span.

Examples:
  gobeam beam diagram balcony.csv

  # Also export the elevation as an image (png, svg or pdf)
  gobeam beam diagram balcony.csv --out balcony.png`,
	Args: cobra.ExactArgs(1),
	RunE: runBeamDiagram,
}

func init() {
	beamCmd.AddCommand(beamDiagramCmd)

	beamDiagramCmd.Flags().StringVarP(&diagramOut, "out", "o", "", "Export the elevation to an image file (.png, .svg, .pdf)")
	beamDiagramCmd.Flags().StringVarP(&diagramDirection, "direction", "d", "Fy", "Load direction of the profile")
}

func runBeamDiagram(cmd *cobra.Command, args []string) error {
	results, err := loadBeams(args)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("%s: no beam found", args[0])
	}
	r := results[0]
	if r.Err != nil {
		return r.Err
	}

	fmt.Print(diagram.DrawBeam(r.Description))
	fmt.Println()

	profile, err := diagram.LoadProfile(r.Description, diagramDirection)
	switch {
	case errors.Is(err, diagram.ErrNoDistributedLoads):
		fmt.Printf("  No distributed %s loads.\n", diagramDirection)
	case err != nil:
		return err
	default:
		fmt.Print(profile)
	}
	fmt.Println()

	if diagramOut != "" {
		if err := diagram.ExportBeamDiagram(r.Description, diagramOut); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Printf("  Diagram saved to %s\n", diagramOut)
	}

	return logOutcome(results[:1])
}
