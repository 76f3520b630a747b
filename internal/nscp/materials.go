package nscp

import (
	"fmt"
	"math"
	"strings"
)

// NSCP 2015 Material Constants
// Units are N, mm and MPa; densities are in t/mm³ so that mass times
// acceleration in mm/s² gives N.

const (
	// Modulus of elasticity for steel (Section 420.2.2)
	Es = 200000.0 // MPa

	// Poisson's ratios
	NuConcrete = 0.2
	NuSteel    = 0.3

	// Mass densities (t/mm³)
	RhoConcrete = 2.4e-9  // 2400 kg/m³ normal-weight concrete
	RhoSteel    = 7.85e-9 // 7850 kg/m³
)

// ConcreteModulus calculates the modulus of elasticity of normal-weight
// concrete, Ec = 4700√f'c
// NSCP 2015 Section 419.2.2.1
func ConcreteModulus(fc float64) float64 {
	return 4700 * math.Sqrt(fc)
}

// Material holds the elastic properties written to a beam attribute row.
type Material struct {
	Name string
	E    float64 // MPa
	Nu   float64
	Rho  float64 // t/mm³
}

// MaterialFor returns the properties of "concrete" with strength fc (MPa)
// or of "steel".
func MaterialFor(name string, fc float64) (Material, error) {
	switch strings.ToLower(name) {
	case "concrete":
		if fc <= 0 {
			return Material{}, fmt.Errorf("concrete needs a positive f'c, got %g", fc)
		}
		return Material{Name: "concrete", E: ConcreteModulus(fc), Nu: NuConcrete, Rho: RhoConcrete}, nil
	case "steel":
		return Material{Name: "steel", E: Es, Nu: NuSteel, Rho: RhoSteel}, nil
	}
	return Material{}, fmt.Errorf("unknown material %q (want concrete or steel)", name)
}
