package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gobeam/internal/beamfile"
)

var (
	memberColor  = color.Black
	supportColor = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	distColor    = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	pointColor   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// supportShapes are the glyphs of each support kind.
var supportShapes = map[beamfile.SupportKind]draw.GlyphDrawer{
	beamfile.Pin:     draw.TriangleGlyph{},
	beamfile.Roller:  draw.RingGlyph{},
	beamfile.Fixed:   draw.BoxGlyph{},
	beamfile.Unknown: draw.CrossGlyph{},
}

// ExportBeamDiagram exports a beam elevation to an image file. Load
// heights are drawn to scale within each load type; the vertical axis is
// dimensionless.
func ExportBeamDiagram(d *beamfile.Description, filename string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Beam: %s", d.Name)
	p.X.Label.Text = "Location along beam"
	p.Y.Min = -0.5
	p.Y.Max = 1.5
	p.Y.Tick.Marker = plot.ConstantTicks(nil)

	// Distributed loads, scaled to the largest intensity
	var maxW float64
	for _, l := range d.Loads {
		if dl, ok := l.(beamfile.DistributedLoad); ok {
			maxW = math.Max(maxW, math.Max(math.Abs(dl.StartMagnitude), math.Abs(dl.EndMagnitude)))
		}
	}
	for _, l := range d.Loads {
		dl, ok := l.(beamfile.DistributedLoad)
		if !ok || maxW == 0 {
			continue
		}
		block, err := plotter.NewPolygon(plotter.XYs{
			{X: dl.StartLocation, Y: 0},
			{X: dl.StartLocation, Y: math.Abs(dl.StartMagnitude) / maxW},
			{X: dl.EndLocation, Y: math.Abs(dl.EndMagnitude) / maxW},
			{X: dl.EndLocation, Y: 0},
		})
		if err != nil {
			return err
		}
		block.Color = distColor
		block.LineStyle.Color = supportColor
		p.Add(block)

		if err := addLabel(p, (dl.StartLocation+dl.EndLocation)/2, 1.05, loadText(dl)); err != nil {
			return err
		}
	}

	// Member
	member, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: d.Length, Y: 0}})
	if err != nil {
		return err
	}
	member.LineStyle.Width = vg.Points(3)
	member.LineStyle.Color = memberColor
	p.Add(member)

	// Point loads
	for _, l := range d.Loads {
		pl, ok := l.(beamfile.PointLoad)
		if !ok {
			continue
		}
		arrow, err := plotter.NewLine(plotter.XYs{{X: pl.Location, Y: 0}, {X: pl.Location, Y: 1.25}})
		if err != nil {
			return err
		}
		arrow.LineStyle.Width = vg.Points(2)
		arrow.LineStyle.Color = pointColor
		p.Add(arrow)

		if err := addLabel(p, pl.Location, 1.3, loadText(pl)); err != nil {
			return err
		}
	}

	// Supports
	for loc, kind := range d.Supports.All() {
		s, err := plotter.NewScatter(plotter.XYs{{X: loc, Y: -0.08}})
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = supportColor
		s.GlyphStyle.Radius = vg.Points(7)
		s.GlyphStyle.Shape = supportShapes[kind]
		p.Add(s)

		if err := addLabel(p, loc, -0.3, fmt.Sprintf("%s %g", kind.Code(), loc)); err != nil {
			return err
		}
	}

	// Determine file format from extension
	width := 10 * vg.Inch
	height := 4 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

func addLabel(p *plot.Plot, x, y float64, text string) error {
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: x, Y: y}},
		Labels: []string{text},
	})
	if err != nil {
		return err
	}
	p.Add(l)
	return nil
}

func loadText(l beamfile.Load) string {
	switch l := l.(type) {
	case beamfile.PointLoad:
		return fmt.Sprintf("%s %g (%s)", l.Direction, l.Magnitude, l.Case)
	case beamfile.DistributedLoad:
		if l.Uniform() {
			return fmt.Sprintf("%s %g (%s)", l.Direction, l.StartMagnitude, l.Case)
		}
		return fmt.Sprintf("%s %g..%g (%s)", l.Direction, l.StartMagnitude, l.EndMagnitude, l.Case)
	}
	return ""
}
