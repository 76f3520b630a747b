package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/statics"
)

var (
	reactionW           float64
	reactionB           float64
	reactionA           float64
	reactionLength      float64
	reactionCantileverX float64
)

var reactionCmd = &cobra.Command{
	Use:   "reaction",
	Short: "Support reactions of a beam with one overhang under a UDL",
	Long: `Calculate the support reactions of a beam on two supports with one
cantilever overhang, carrying a uniform load w over its full length.

  R1 = -w(b + a)² / 2b     (hammer support, at the root of the cantilever)
  R2 = -w(b + a) - R1      (backspan support, at the start of the beam)

b is the backspan between the supports and a the cantilever length.
Reactions are opposite in sign to w.

Examples:
  # Backspan and overhang given directly
  gobeam reaction --w -50 --b 4500 --a 2350

  # Total length and distance to the cantilever support
  gobeam reaction --w -50 --length 6850 --cantilever-at 4500`,
	Args: cobra.NoArgs,
	RunE: runReaction,
}

func init() {
	rootCmd.AddCommand(reactionCmd)

	reactionCmd.Flags().Float64VarP(&reactionW, "w", "w", 0, "Uniform load intensity (force/length) [required]")
	reactionCmd.Flags().Float64VarP(&reactionB, "b", "b", 0, "Backspan between supports")
	reactionCmd.Flags().Float64VarP(&reactionA, "a", "a", 0, "Cantilever length")
	reactionCmd.Flags().Float64VarP(&reactionLength, "length", "l", 0, "Total beam length")
	reactionCmd.Flags().Float64Var(&reactionCantileverX, "cantilever-at", 0, "Distance from the beam start to the hammer support")

	reactionCmd.MarkFlagRequired("w")
	reactionCmd.MarkFlagsRequiredTogether("b", "a")
	reactionCmd.MarkFlagsRequiredTogether("length", "cantilever-at")
	reactionCmd.MarkFlagsOneRequired("b", "length")
	reactionCmd.MarkFlagsMutuallyExclusive("b", "length")
}

func runReaction(cmd *cobra.Command, args []string) error {
	b, a := reactionB, reactionA
	if cmd.Flags().Changed("length") {
		var err error
		b, a, err = statics.Spans(reactionLength, reactionCantileverX)
		if err != nil {
			return err
		}
	}

	r, err := statics.CantileverReactions(reactionW, b, a)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          CANTILEVER BEAM SUPPORT REACTIONS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Uniform load (w):\t%g\n", reactionW)
	fmt.Fprintf(w, "  Backspan (b):\t%g\n", b)
	fmt.Fprintf(w, "  Cantilever (a):\t%g\n", a)
	fmt.Fprintf(w, "  Total length:\t%g\n", b+a)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("REACTIONS", []string{
		fmt.Sprintf("R1 (hammer support)   = %.2f", r.R1),
		fmt.Sprintf("R2 (backspan support) = %.2f", r.R2),
		fmt.Sprintf("R1 + R2               = %.2f", r.Total()),
	}))
	fmt.Println()

	if r.R2 != 0 && (r.R2 > 0) == (reactionW > 0) {
		fmt.Println("  ⚠ R2 acts with the load: the backspan support is held down (uplift).")
		fmt.Println()
	}
	return nil
}
