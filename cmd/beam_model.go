package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexiusacademia/gobeam/internal/config"
	"github.com/alexiusacademia/gobeam/internal/model"
)

var beamModelCmd = &cobra.Command{
	Use:   "model FILE...",
	Short: "Print the analysis model of each beam",
	Long: `Build the model handed to a structural analysis engine: material,
nodes at the beam start, every support and the cantilever tip, support
restraints, one member, member loads and load combinations.

Formats:
  yaml   - model document (default)
  json   - model document
  calls  - the engine calls that build the model, one per line

Examples:
  gobeam beam model balcony.csv
  gobeam beam model --format calls balcony.csv`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBeamModel,
}

func init() {
	beamCmd.AddCommand(beamModelCmd)

	beamModelCmd.Flags().String(config.KeyFormat, model.FormatYAML, "Output format: yaml, json or calls")
	viper.BindPFlag(config.KeyFormat, beamModelCmd.Flags().Lookup(config.KeyFormat))
}

func runBeamModel(cmd *cobra.Command, args []string) error {
	results, err := loadBeams(args)
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.Model == nil {
			continue
		}
		out, err := model.Marshal(r.Model, cfg.Format)
		if err != nil {
			return err
		}
		if cfg.Format == model.FormatYAML && len(results) > 1 {
			os.Stdout.WriteString("---\n")
		}
		os.Stdout.Write(out)
	}

	return logOutcome(results)
}
