package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/statics"
)

var (
	bucklingLength float64
	bucklingE      float64
	bucklingI      float64
	bucklingK      float64
)

var bucklingCmd = &cobra.Command{
	Use:   "buckling",
	Short: "Euler critical buckling load of a column",
	Long: `Calculate the Euler critical load of a pin-ended column,

  Pcr = π²EI / (kl)²

where k is the effective length factor (1.0 pinned-pinned, 0.5 fixed-fixed,
0.7 fixed-pinned, 2.0 fixed-free).

Examples:
  gobeam buckling --length 3000 --e 200000 --i 8.5e6
  gobeam buckling -l 3000 --e 200000 --i 8.5e6 -k 0.7`,
	Args: cobra.NoArgs,
	RunE: runBuckling,
}

func init() {
	rootCmd.AddCommand(bucklingCmd)

	bucklingCmd.Flags().Float64VarP(&bucklingLength, "length", "l", 0, "Unbraced length [required]")
	bucklingCmd.Flags().Float64Var(&bucklingE, "e", 0, "Elastic modulus [required]")
	bucklingCmd.Flags().Float64Var(&bucklingI, "i", 0, "Moment of inertia about the buckling axis [required]")
	bucklingCmd.Flags().Float64VarP(&bucklingK, "k", "k", 1.0, "Effective length factor")

	bucklingCmd.MarkFlagRequired("length")
	bucklingCmd.MarkFlagRequired("e")
	bucklingCmd.MarkFlagRequired("i")
}

func runBuckling(cmd *cobra.Command, args []string) error {
	pcr, err := statics.EulerBucklingLoad(bucklingLength, bucklingE, bucklingI, bucklingK)
	if err != nil {
		return err
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Effective length (kl):\t%g\n", bucklingK*bucklingLength)
	fmt.Fprintf(w, "  Critical load (Pcr):\t%.4g\n", pcr)
	w.Flush()
	fmt.Println()
	return nil
}
