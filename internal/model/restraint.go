package model

import "github.com/alexiusacademia/gobeam/internal/beamfile"

// Restraint says which of the six degrees of freedom of a node are held.
type Restraint struct {
	DX bool `json:"DX" yaml:"DX"`
	DY bool `json:"DY" yaml:"DY"`
	DZ bool `json:"DZ" yaml:"DZ"`
	RX bool `json:"RX" yaml:"RX"`
	RY bool `json:"RY" yaml:"RY"`
	RZ bool `json:"RZ" yaml:"RZ"`
}

var restraints = map[beamfile.SupportKind]Restraint{
	beamfile.Pin:     {DX: true, DY: true, DZ: true, RX: true, RY: true, RZ: false},
	beamfile.Roller:  {DY: true},
	beamfile.Fixed:   {DX: true, DY: true, DZ: true, RX: true, RY: true, RZ: true},
	beamfile.Unknown: {},
}

// RestraintFor returns the fixed restraint pattern of a support kind.
// Unknown restrains nothing.
func RestraintFor(kind beamfile.SupportKind) Restraint {
	return restraints[kind]
}

// Code renders the restraint as six characters, F for fixed and R for
// released, in DX DY DZ RX RY RZ order.
func (r Restraint) Code() string {
	b := make([]byte, 0, 6)
	for _, held := range []bool{r.DX, r.DY, r.DZ, r.RX, r.RY, r.RZ} {
		if held {
			b = append(b, 'F')
		} else {
			b = append(b, 'R')
		}
	}
	return string(b)
}
