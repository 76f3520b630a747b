package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexiusacademia/gobeam/internal/nscp"
)

// Engine is the structural analysis engine a Model is handed to. Method
// names follow the engine's own model-building calls.
type Engine interface {
	AddMaterial(name string, e, g, nu, rho float64) error
	AddNode(name string, x, y, z float64) error
	DefSupport(node string, r Restraint) error
	AddMember(name, iNode, jNode, material string, iy, iz, j, a float64) error
	AddMemberPtLoad(member, direction string, p, x float64, loadCase string) error
	AddMemberDistLoad(member, direction string, w1, w2, x1, x2 float64, loadCase string) error
	AddLoadCombo(name string, factors []nscp.CaseFactor) error
}

// Emit issues the calls that build m in e: the material, one node per
// location, one support per support location, the member, every load in
// input order, then the load combinations. It stops at the first error.
func (m *Model) Emit(e Engine) error {
	mat := m.Material
	if err := e.AddMaterial(mat.Name, mat.E, mat.G, mat.Nu, mat.Rho); err != nil {
		return fmt.Errorf("adding material %s: %w", mat.Name, err)
	}
	for _, n := range m.Nodes {
		if err := e.AddNode(n.ID, n.X, 0, 0); err != nil {
			return fmt.Errorf("adding node %s: %w", n.ID, err)
		}
	}
	for _, s := range m.Supports {
		if err := e.DefSupport(s.Node, s.Restraint); err != nil {
			return fmt.Errorf("defining support at %s: %w", s.Node, err)
		}
	}
	mem := m.Member
	if err := e.AddMember(mem.ID, mem.INode, mem.JNode, mem.Material, mem.Iy, mem.Iz, mem.J, mem.A); err != nil {
		return fmt.Errorf("adding member %s: %w", mem.ID, err)
	}
	for i, l := range m.Loads {
		var err error
		switch {
		case l.Point != nil:
			p := l.Point
			err = e.AddMemberPtLoad(l.Member, p.Direction, p.Magnitude, p.Location, p.Case)
		case l.Dist != nil:
			d := l.Dist
			err = e.AddMemberDistLoad(l.Member, d.Direction, d.StartMagnitude, d.EndMagnitude, d.StartLocation, d.EndLocation, d.Case)
		default:
			err = fmt.Errorf("load has no data")
		}
		if err != nil {
			return fmt.Errorf("adding load %d: %w", i, err)
		}
	}
	for _, c := range m.Combinations {
		if err := e.AddLoadCombo(c.Name, c.Factors); err != nil {
			return fmt.Errorf("adding load combination %s: %w", c.Name, err)
		}
	}
	return nil
}

// Call is one recorded engine call.
type Call struct {
	Method string
	Args   []any
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		switch v := a.(type) {
		case string:
			args[i] = fmt.Sprintf("%q", v)
		case float64:
			args[i] = fmt.Sprintf("%g", v)
		case Restraint:
			args[i] = fmt.Sprintf("%t, %t, %t, %t, %t, %t", v.DX, v.DY, v.DZ, v.RX, v.RY, v.RZ)
		case []nscp.CaseFactor:
			parts := make([]string, len(v))
			for j, f := range v {
				parts[j] = fmt.Sprintf("%q: %g", f.Case, f.Factor)
			}
			args[i] = "{" + strings.Join(parts, ", ") + "}"
		default:
			args[i] = fmt.Sprint(v)
		}
	}
	return fmt.Sprintf("%s(%s)", c.Method, strings.Join(args, ", "))
}

// Recorder is an Engine that records calls in order. It is used to print
// the build script of a model and in tests.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) record(method string, args ...any) error {
	r.Calls = append(r.Calls, Call{Method: method, Args: args})
	return nil
}

func (r *Recorder) AddMaterial(name string, e, g, nu, rho float64) error {
	return r.record("add_material", name, e, g, nu, rho)
}

func (r *Recorder) AddNode(name string, x, y, z float64) error {
	return r.record("add_node", name, x, y, z)
}

func (r *Recorder) DefSupport(node string, rs Restraint) error {
	return r.record("def_support", node, rs)
}

func (r *Recorder) AddMember(name, iNode, jNode, material string, iy, iz, j, a float64) error {
	return r.record("add_member", name, iNode, jNode, material, iy, iz, j, a)
}

func (r *Recorder) AddMemberPtLoad(member, direction string, p, x float64, loadCase string) error {
	return r.record("add_member_pt_load", member, direction, p, x, loadCase)
}

func (r *Recorder) AddMemberDistLoad(member, direction string, w1, w2, x1, x2 float64, loadCase string) error {
	return r.record("add_member_dist_load", member, direction, w1, w2, x1, x2, loadCase)
}

func (r *Recorder) AddLoadCombo(name string, factors []nscp.CaseFactor) error {
	return r.record("add_load_combo", name, factors)
}

// WriteTo writes one call per line.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, c := range r.Calls {
		k, err := fmt.Fprintln(w, c.String())
		n += int64(k)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
