// Package section computes the properties of polygonal cross sections and
// turns them into the attribute row of a beam description file.
package section

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/alexiusacademia/gobeam/internal/nscp"
)

// Section represents a cross section defined by vertices
// The section is defined in a local coordinate system where:
// - Y-axis points upward
// - X-axis points to the right
// - Origin can be at any convenient location
type Section struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Material is "concrete" or "steel"
	Material string  `json:"material"`
	Fc       float64 `json:"fc,omitempty"` // Concrete compressive strength (MPa)

	// Section geometry defined by vertices (in mm)
	// The section is assumed to be a simple polygon (no holes)
	Vertices []Point `json:"vertices"`
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"` // mm
	Y float64 `json:"y"` // mm
}

// LoadFromFile loads a section definition from a JSON file
func LoadFromFile(filepath string) (*Section, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var section Section
	if err := json.Unmarshal(data, &section); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}

	if err := section.Validate(); err != nil {
		return nil, err
	}

	return &section, nil
}

// Validate checks if the section definition is valid
func (s *Section) Validate() error {
	if len(s.Vertices) < 3 {
		return &ValidationError{"section must have at least 3 vertices"}
	}
	if _, err := nscp.MaterialFor(s.Material, s.Fc); err != nil {
		return &ValidationError{err.Error()}
	}
	if s.Properties().Area == 0 {
		return &ValidationError{"section vertices enclose no area"}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// AttributeRow returns the attribute row of a beam of the given length
// with this section: L, E, Iz, Iy, A, J, nu, rho.
func (s *Section) AttributeRow(length float64) ([]string, error) {
	if length <= 0 {
		return nil, fmt.Errorf("beam length must be positive, got %g", length)
	}
	m, err := nscp.MaterialFor(s.Material, s.Fc)
	if err != nil {
		return nil, err
	}
	p := s.Properties()

	values := []float64{length, m.E, p.Iz, p.Iy, p.Area, p.J, m.Nu, m.Rho}
	row := make([]string, len(values))
	for i, v := range values {
		row[i] = strconv.FormatFloat(v, 'g', 6, 64)
	}
	return row, nil
}
