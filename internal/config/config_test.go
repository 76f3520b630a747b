package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gobeam/internal/nscp"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, Default(), c)

	opts := c.BatchOptions()
	assert.False(t, opts.Parse.Supports.Strict)
	assert.Equal(t, nscp.SimplifiedCombinations, opts.Model.Combinations)
}

func TestLoad_FromYAML(t *testing.T) {
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
strict: true
workers: 3
combinations: full
format: calls
`)))

	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, Config{Strict: true, WarnDefaults: true, Workers: 3, Combinations: "full", Format: "calls"}, c)

	opts := c.BatchOptions()
	assert.True(t, opts.Parse.Supports.Strict)
	assert.Equal(t, 3, opts.Workers)
	assert.Len(t, opts.Model.Combinations, len(nscp.LoadCombinations))
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gobeam.yaml")
	require.NoError(t, os.WriteFile(path, []byte("combinations: none\nwarn_defaults: false\n"), 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	c, err := Load(v)
	require.NoError(t, err)
	assert.False(t, c.WarnDefaults)
	assert.True(t, c.BatchOptions().QuietDefaults)
	assert.Nil(t, c.BatchOptions().Model.Combinations)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("GOBEAM_FORMAT", "json")

	v := viper.New()
	v.SetEnvPrefix("GOBEAM")
	v.AutomaticEnv()

	c, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "json", c.Format)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
		want string
	}{
		{"negative workers", KeyWorkers, -1, "workers"},
		{"unknown set", KeyCombinations, "ultimate", "load combination set"},
		{"unknown format", KeyFormat, "xml", "format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.val)
			_, err := Load(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
