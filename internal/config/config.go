// Package config holds the settings shared by the gobeam commands. Values
// come from gobeam.yaml, GOBEAM_* environment variables and flags, through
// viper.
package config

import (
	"fmt"
	"slices"

	"github.com/spf13/viper"

	"github.com/alexiusacademia/gobeam/internal/batch"
	"github.com/alexiusacademia/gobeam/internal/beamfile"
	"github.com/alexiusacademia/gobeam/internal/model"
	"github.com/alexiusacademia/gobeam/internal/nscp"
)

// Setting keys.
const (
	KeyStrict       = "strict"
	KeyWarnDefaults = "warn_defaults"
	KeyWorkers      = "workers"
	KeyCombinations = "combinations"
	KeyFormat       = "format"
)

// Config is the resolved configuration.
type Config struct {
	Strict       bool   `mapstructure:"strict" yaml:"strict"`
	WarnDefaults bool   `mapstructure:"warn_defaults" yaml:"warn_defaults"`
	Workers      int    `mapstructure:"workers" yaml:"workers"`
	Combinations string `mapstructure:"combinations" yaml:"combinations"`
	Format       string `mapstructure:"format" yaml:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		WarnDefaults: true,
		Combinations: "simplified",
		Format:       model.FormatYAML,
	}
}

// SetDefaults registers the built-in settings on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyStrict, d.Strict)
	v.SetDefault(KeyWarnDefaults, d.WarnDefaults)
	v.SetDefault(KeyWorkers, d.Workers)
	v.SetDefault(KeyCombinations, d.Combinations)
	v.SetDefault(KeyFormat, d.Format)
}

// Load reads and validates the settings held by v.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first setting out of range.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must be >= 0, got %d", c.Workers)
	}
	if _, err := nscp.Set(c.Combinations); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if !slices.Contains([]string{model.FormatYAML, model.FormatJSON, model.FormatCalls}, c.Format) {
		return fmt.Errorf("config: unknown format %q (want yaml, json or calls)", c.Format)
	}
	return nil
}

// BatchOptions turns the settings into batch options.
func (c Config) BatchOptions() batch.Options {
	combos, _ := nscp.Set(c.Combinations)
	return batch.Options{
		Parse:         beamfile.Options{Supports: beamfile.SupportOptions{Strict: c.Strict}},
		Model:         model.Options{Combinations: combos},
		Workers:       c.Workers,
		QuietDefaults: !c.WarnDefaults,
	}
}
