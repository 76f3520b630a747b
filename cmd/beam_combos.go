package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexiusacademia/gobeam/internal/config"
)

var beamCombosCmd = &cobra.Command{
	Use:   "combos FILE...",
	Short: "Print the NSCP load combinations of each beam",
	Long: `Apply the NSCP 2015 load combinations to the load case labels of each
beam. Labels are matched to load types ignoring case:

Load Types:
  D  | Dead        - Dead load
  L  | Live        - Live load
  Lr | Roof        - Roof live load
  W  | Wind        - Wind load
  E  | Earthquake  - Earthquake load
  R  | Rain        - Rain load

Combinations that use none of a beam's cases are left out.

Examples:
  # Gravity combinations only (1.4D and 1.2D+1.6L)
  gobeam beam combos balcony.csv

  # All basic combinations of Section 203.3.1
  gobeam beam combos --combinations full balcony.csv`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBeamCombos,
}

func init() {
	beamCmd.AddCommand(beamCombosCmd)

	beamCombosCmd.Flags().String(config.KeyCombinations, "simplified", "Combination set: full, simplified or none")
	viper.BindPFlag(config.KeyCombinations, beamCombosCmd.Flags().Lookup(config.KeyCombinations))
}

func runBeamCombos(cmd *cobra.Command, args []string) error {
	results, err := loadBeams(args)
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.Model == nil {
			continue
		}

		fmt.Println()
		fmt.Println("═══════════════════════════════════════════════════════════════")
		fmt.Printf("     LOAD COMBINATIONS: %s\n", r.Model.Name)
		fmt.Println("═══════════════════════════════════════════════════════════════")
		fmt.Println()
		fmt.Printf("  Load cases: %s\n\n", strings.Join(r.Description.Cases(), ", "))

		if len(r.Model.Combinations) == 0 {
			fmt.Println("  No combination applies to these load cases.")
			fmt.Println()
			continue
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Name\tCombination\tFactors\n")
		fmt.Fprintf(w, "  ────\t───────────\t───────\n")
		for _, c := range r.Model.Combinations {
			factors := make([]string, len(c.Factors))
			for i, f := range c.Factors {
				factors[i] = fmt.Sprintf("%g×%s", f.Factor, f.Case)
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\n", c.Name, c.Description, strings.Join(factors, " + "))
		}
		w.Flush()
		fmt.Println()
	}

	return logOutcome(results)
}
