package model

import (
	"fmt"
	"slices"

	"github.com/alexiusacademia/gobeam/internal/beamfile"
)

// Node is a point on the beam axis where the engine places a node.
type Node struct {
	ID string  `json:"id" yaml:"id"`
	X  float64 `json:"x" yaml:"x"`
}

// NodeID returns the identifier of the i-th node in ascending location order.
func NodeID(i int) string {
	return fmt.Sprintf("N%d", i)
}

// NodeLocations returns the ascending, de-duplicated node locations of a
// beam: its start, every support location, and its end when the beam
// cantilevers past the last support.
func NodeLocations(length float64, supports beamfile.SupportTable) []float64 {
	locs := append([]float64{0}, supports.Locations()...)
	if last, ok := supports.Last(); !ok || length > last.Location {
		locs = append(locs, length)
	}
	slices.Sort(locs)
	return slices.Compact(locs)
}

// Nodes numbers locations in ascending order, N0 first. Identifiers depend
// only on the locations, never on earlier calls.
func Nodes(locations []float64) []Node {
	nodes := make([]Node, len(locations))
	for i, x := range locations {
		nodes[i] = Node{ID: NodeID(i), X: x}
	}
	return nodes
}
