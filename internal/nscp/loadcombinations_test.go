package nscp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCase(t *testing.T) {
	tests := []struct {
		label string
		want  LoadType
		ok    bool
	}{
		{"Dead", Dead, true},
		{"D", Dead, true},
		{"live", Live, true},
		{"Lr", Roof, true},
		{" Wind ", Wind, true},
		{"E", Earthquake, true},
		{"Rain", Rain, true},
		{"Snow", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := ClassifyCase(tt.label)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCombinationsFor_Simplified(t *testing.T) {
	combos, unmapped := CombinationsFor([]string{"Dead", "Live", "Snow"}, SimplifiedCombinations)

	assert.Equal(t, []string{"Snow"}, unmapped)
	assert.Equal(t, []Combination{
		{Name: "NSCP-1", Description: "1.4D", Factors: []CaseFactor{{"Dead", 1.4}}},
		{Name: "NSCP-2", Description: "1.2D + 1.6L", Factors: []CaseFactor{{"Dead", 1.2}, {"Live", 1.6}}},
	}, combos)
}

func TestCombinationsFor_SkipsInapplicable(t *testing.T) {
	combos, _ := CombinationsFor([]string{"Live"}, LoadCombinations)

	names := make([]string, len(combos))
	for i, c := range combos {
		names[i] = c.Name
	}
	// 1.4D, 0.9D + 1.0W and 0.9D + 1.0E carry no live load.
	assert.Equal(t, []string{"NSCP-2", "NSCP-3", "NSCP-4", "NSCP-5"}, names)
}

func TestSet(t *testing.T) {
	full, err := Set("full")
	require.NoError(t, err)
	assert.Len(t, full, 7)

	none, err := Set("none")
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = Set("asce7")
	assert.Error(t, err)
}

func TestLoadType_String(t *testing.T) {
	assert.Equal(t, "Lr", Roof.String())
	assert.Equal(t, 1.2, LoadCombinations[2].Factor(Dead))
	assert.Zero(t, LoadCombinations[2].Factor(Roof))
	assert.Equal(t, "1.6Lr", Term{Roof, 1.6}.String())
}

func TestCombinationsFor_ExpandsAlternatives(t *testing.T) {
	labels := []string{"Dead", "Live", "Wind", "Roof", "Rain"}
	combos, unmapped := CombinationsFor(labels, LoadCombinations)
	require.Empty(t, unmapped)

	byName := make(map[string]Combination, len(combos))
	names := make([]string, len(combos))
	for i, c := range combos {
		byName[c.Name] = c
		names[i] = c.Name
	}
	assert.Equal(t, []string{
		"NSCP-1", "NSCP-2a", "NSCP-2b",
		"NSCP-3a", "NSCP-3b", "NSCP-3c", "NSCP-3d",
		"NSCP-4a", "NSCP-4b", "NSCP-5", "NSCP-6", "NSCP-7",
	}, names)

	for _, c := range combos {
		cases := make(map[string]bool)
		for _, f := range c.Factors {
			cases[f.Case] = true
		}
		assert.False(t, cases["Roof"] && cases["Rain"], "%s applies both Lr and R", c.Name)
		if strings.HasPrefix(c.Name, "NSCP-3") {
			assert.False(t, cases["Live"] && cases["Wind"], "%s applies both L and W", c.Name)
		}
	}

	assert.Equal(t, Combination{
		Name:        "NSCP-3b",
		Description: "1.2D + 1.6Lr + 0.5W",
		Factors:     []CaseFactor{{"Dead", 1.2}, {"Wind", 0.5}, {"Roof", 1.6}},
	}, byName["NSCP-3b"])
	assert.Equal(t, Combination{
		Name:        "NSCP-4b",
		Description: "1.2D + 1.0L + 1.0W + 0.5R",
		Factors:     []CaseFactor{{"Dead", 1.2}, {"Live", 1.0}, {"Wind", 1.0}, {"Rain", 0.5}},
	}, byName["NSCP-4b"])
}

func TestCombinationsFor_OnlyPresentAlternatives(t *testing.T) {
	combos, _ := CombinationsFor([]string{"Dead", "Live", "Rain"}, LoadCombinations[:3])

	assert.Equal(t, []Combination{
		{Name: "NSCP-1", Description: "1.4D", Factors: []CaseFactor{{"Dead", 1.4}}},
		{Name: "NSCP-2", Description: "1.2D + 1.6L + 0.5R", Factors: []CaseFactor{{"Dead", 1.2}, {"Live", 1.6}, {"Rain", 0.5}}},
		{Name: "NSCP-3", Description: "1.2D + 1.6R + 1.0L", Factors: []CaseFactor{{"Dead", 1.2}, {"Live", 1.0}, {"Rain", 1.6}}},
	}, combos)
}
