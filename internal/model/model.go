// Package model turns a beam Description into the model handed to an
// external structural analysis engine: nodes, supports, one member, member
// loads and load combinations.
package model

import (
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/beamfile"
	"github.com/alexiusacademia/gobeam/internal/nscp"
	"github.com/alexiusacademia/gobeam/internal/statics"
)

// ErrNoSupportsDefined is returned when a description reaches the
// assembler without supports. It is the parser's error, so one check
// classifies both.
var ErrNoSupportsDefined = beamfile.ErrNoSupportsDefined

const (
	// MaterialName is the name of the single material of a beam model.
	MaterialName = "default"
	// MemberID is the identifier of the single member of a beam model.
	MemberID = "M0"
)

// Material holds the elastic properties of the beam material.
type Material struct {
	Name string  `json:"name" yaml:"name"`
	E    float64 `json:"E" yaml:"E"`
	G    float64 `json:"G" yaml:"G"`
	Nu   float64 `json:"nu" yaml:"nu"`
	Rho  float64 `json:"rho" yaml:"rho"`
}

// NodeSupport is a support restraint applied to a node.
type NodeSupport struct {
	Node string               `json:"node" yaml:"node"`
	Kind beamfile.SupportKind `json:"kind" yaml:"kind"`

	Restraint `yaml:",inline"`
}

// Member spans the first node to the last node.
type Member struct {
	ID       string  `json:"id" yaml:"id"`
	INode    string  `json:"i_node" yaml:"i_node"`
	JNode    string  `json:"j_node" yaml:"j_node"`
	Material string  `json:"material" yaml:"material"`
	Iy       float64 `json:"Iy" yaml:"Iy"`
	Iz       float64 `json:"Iz" yaml:"Iz"`
	J        float64 `json:"J" yaml:"J"`
	A        float64 `json:"A" yaml:"A"`
}

// MemberLoad is one load on the member. Exactly one of Point and Dist is set.
type MemberLoad struct {
	Member string                    `json:"member" yaml:"member"`
	Type   beamfile.LoadKind         `json:"type" yaml:"type"`
	Point  *beamfile.PointLoad       `json:"point,omitempty" yaml:"point,omitempty"`
	Dist   *beamfile.DistributedLoad `json:"dist,omitempty" yaml:"dist,omitempty"`
}

// Model is the complete engine input for one beam.
type Model struct {
	Name         string             `json:"name" yaml:"name"`
	Material     Material           `json:"material" yaml:"material"`
	Nodes        []Node             `json:"nodes" yaml:"nodes"`
	Supports     []NodeSupport      `json:"supports" yaml:"supports"`
	Member       Member             `json:"member" yaml:"member"`
	Loads        []MemberLoad       `json:"loads" yaml:"loads"`
	Combinations []nscp.Combination `json:"combinations,omitempty" yaml:"combinations,omitempty"`

	// UnmappedCases are load case labels no combination could use.
	UnmappedCases []string `json:"-" yaml:"-"`
}

// Options controls assembly.
type Options struct {
	// Combinations is the table applied to the beam's load cases; nil
	// emits no combinations.
	Combinations []nscp.LoadCombination
}

// Assemble builds the engine model of a description. It does not modify d.
func Assemble(d *beamfile.Description, opts Options) (*Model, error) {
	if d.Supports.Len() == 0 {
		return nil, fmt.Errorf("beam %q: %w", d.Name, ErrNoSupportsDefined)
	}

	g, err := statics.ShearModulus(d.Nu, d.E)
	if err != nil {
		return nil, fmt.Errorf("beam %q: shear modulus: %w", d.Name, err)
	}

	nodes := Nodes(NodeLocations(d.Length, d.Supports))
	at := make(map[float64]string, len(nodes))
	for _, n := range nodes {
		at[n.X] = n.ID
	}

	m := &Model{
		Name:     d.Name,
		Material: Material{Name: MaterialName, E: d.E, G: g, Nu: d.Nu, Rho: d.Rho},
		Nodes:    nodes,
		Member: Member{
			ID:       MemberID,
			INode:    nodes[0].ID,
			JNode:    nodes[len(nodes)-1].ID,
			Material: MaterialName,
			Iy:       d.Iy,
			Iz:       d.Iz,
			J:        d.J,
			A:        d.A,
		},
	}

	for loc, kind := range d.Supports.All() {
		m.Supports = append(m.Supports, NodeSupport{Node: at[loc], Kind: kind, Restraint: RestraintFor(kind)})
	}

	m.Loads = make([]MemberLoad, 0, len(d.Loads))
	for _, l := range d.Loads {
		ml := MemberLoad{Member: MemberID, Type: l.Kind()}
		switch l := l.(type) {
		case beamfile.PointLoad:
			ml.Point = &l
		case beamfile.DistributedLoad:
			ml.Dist = &l
		}
		m.Loads = append(m.Loads, ml)
	}

	m.Combinations, m.UnmappedCases = nscp.CombinationsFor(d.Cases(), opts.Combinations)
	return m, nil
}

// Node returns the node with the given identifier.
func (m *Model) Node(id string) (Node, bool) {
	for _, n := range m.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}
