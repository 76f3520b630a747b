package diagram

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/gobeam/internal/beamfile"
)

// ErrNoDistributedLoads is returned by LoadProfile when no distributed load
// acts in the requested direction.
var ErrNoDistributedLoads = errors.New("no distributed loads in direction")

// elevationWidth is the number of columns the beam length is drawn over.
const elevationWidth = 60

var supportGlyphs = map[beamfile.SupportKind]rune{
	beamfile.Pin:     '△',
	beamfile.Roller:  '○',
	beamfile.Fixed:   '█',
	beamfile.Unknown: '?',
}

// column maps a location on a beam of the given length to a drawing column.
func column(x, length float64) int {
	c := int(math.Round(x / length * elevationWidth))
	return min(max(c, 0), elevationWidth)
}

func blankRow() []rune {
	return []rune(strings.Repeat(" ", elevationWidth+1))
}

// DrawBeam creates an ASCII elevation of a beam: distributed loads, point
// loads, the member, its supports and the support locations.
func DrawBeam(d *beamfile.Description) string {
	var sb strings.Builder

	dist := blankRow()
	point := blankRow()
	for _, l := range d.Loads {
		switch l := l.(type) {
		case beamfile.DistributedLoad:
			glyph := '↓'
			if l.StartMagnitude+l.EndMagnitude > 0 {
				glyph = '↑'
			}
			for c := column(l.StartLocation, d.Length); c <= column(l.EndLocation, d.Length); c++ {
				dist[c] = glyph
			}
		case beamfile.PointLoad:
			glyph := '▼'
			if l.Magnitude > 0 {
				glyph = '▲'
			}
			point[column(l.Location, d.Length)] = glyph
		}
	}

	supports := blankRow()
	labels := blankRow()
	for loc, kind := range d.Supports.All() {
		c := column(loc, d.Length)
		supports[c] = supportGlyphs[kind]
		text := []rune(fmt.Sprintf("%g", loc))
		start := min(c, elevationWidth+1-len(text))
		if start < 0 || strings.TrimSpace(string(labels[start:start+len(text)])) != "" {
			continue
		}
		copy(labels[start:], text)
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  BEAM ELEVATION: %s (L = %g)\n", d.Name, d.Length))
	sb.WriteString("  " + strings.Repeat("─", elevationWidth+1) + "\n")
	if strings.TrimSpace(string(dist)) != "" {
		sb.WriteString("  " + strings.TrimRight(string(dist), " ") + "\n")
	}
	if strings.TrimSpace(string(point)) != "" {
		sb.WriteString("  " + strings.TrimRight(string(point), " ") + "\n")
	}
	sb.WriteString("  " + strings.Repeat("═", elevationWidth+1) + "\n")
	sb.WriteString("  " + strings.TrimRight(string(supports), " ") + "\n")
	sb.WriteString("  " + strings.TrimRight(string(labels), " ") + "\n")

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  △ = Pin   ○ = Roller   █ = Fixed   ? = Unknown\n")
	sb.WriteString("  ↓↑ = Distributed load   ▼▲ = Point load\n")

	return sb.String()
}

// Intensity returns the summed intensity at x of the distributed loads of
// d acting in direction.
func Intensity(d *beamfile.Description, direction string, x float64) float64 {
	var w float64
	for _, l := range d.Loads {
		if dl, ok := l.(beamfile.DistributedLoad); ok && dl.Direction == direction {
			w += dl.IntensityAt(x)
		}
	}
	return w
}

// LoadProfile charts the summed distributed load intensity along the beam
// for one direction, such as "Fy".
func LoadProfile(d *beamfile.Description, direction string) (string, error) {
	found := false
	for _, l := range d.Loads {
		if l.Kind() == beamfile.KindDistributed && l.LoadDirection() == direction {
			found = true
			break
		}
	}
	if !found {
		return "", fmt.Errorf("beam %q: %w %s", d.Name, ErrNoDistributedLoads, direction)
	}

	samples := make([]float64, elevationWidth+1)
	for i := range samples {
		samples[i] = Intensity(d, direction, d.Length*float64(i)/elevationWidth)
	}

	graph := asciigraph.Plot(samples,
		asciigraph.Height(10),
		asciigraph.Width(elevationWidth),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("%s distributed load, 0 to %g", direction, d.Length)),
	)
	return graph + "\n", nil
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
