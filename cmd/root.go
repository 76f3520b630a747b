package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexiusacademia/gobeam/internal/config"
	"github.com/alexiusacademia/gobeam/internal/version"
)

var (
	cfgFile string
	cfg     = config.Default()

	// logger carries diagnostics and warnings; reports go to stdout.
	logger = log.New(os.Stderr, "gobeam: ", 0)
)

var rootCmd = &cobra.Command{
	Use:   "gobeam",
	Short: "Beam description parser and structural model builder",
	Long: `gobeam - Go Beam Description Toolkit

A CLI tool that reads row-oriented beam description files, normalizes
them into validated beam descriptions and builds the node, support,
member and load model handed to a structural analysis engine.

This tool helps structural engineers:
  - Validate beam description files (CSV or Excel workbooks)
  - Generate analysis models with NSCP 2015 load combinations
  - Compute cantilever support reactions in closed form
  - Draw beam elevations and load profiles`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobeam v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Beam Description Toolkit                             ║")
		fmt.Printf("  ║   %s ©  %-36s║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Reads beam description files and builds structural models")
		fmt.Println("  for analysis engines.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Beam description parsing with row-level diagnostics")
		fmt.Println("    • Analysis model generation (YAML, JSON, engine calls)")
		fmt.Println("    • NSCP 2015 load combinations from load case labels")
		fmt.Println("    • Cantilever reactions and Euler buckling loads")
		fmt.Println()
		fmt.Println("  Use 'gobeam --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./gobeam.yaml or ~/.config/gobeam/gobeam.yaml)")
	rootCmd.PersistentFlags().Bool(config.KeyStrict, false, "Reject duplicate support locations and unknown support kinds")
	viper.BindPFlag(config.KeyStrict, rootCmd.PersistentFlags().Lookup(config.KeyStrict))
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Printf("reading .env: %v", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gobeam")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "gobeam"))
		}
	}

	viper.SetEnvPrefix("GOBEAM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.Println("using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		logger.Printf("reading config %s: %v", cfgFile, err)
	}
}
