package section

import "math"

// Properties holds calculated geometric properties
type Properties struct {
	// Overall dimensions
	Width  float64 // Maximum width (mm)
	Height float64 // Total height (mm)
	Area   float64 // Gross area (mm²)

	// Centroid location
	CentroidX float64 // mm
	CentroidY float64 // mm

	// Second moments of area about the centroidal axes (mm⁴)
	Iz float64 // horizontal axis, strong-axis bending of the beam
	Iy float64 // vertical axis

	// J is the torsion constant of the bounding rectangle (mm⁴)
	J float64

	// Bounding box
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Properties computes geometric properties of the section
func (s *Section) Properties() Properties {
	var props Properties

	if len(s.Vertices) < 3 {
		return props
	}

	// Find bounding box
	props.MinX, props.MaxX = s.Vertices[0].X, s.Vertices[0].X
	props.MinY, props.MaxY = s.Vertices[0].Y, s.Vertices[0].Y

	for _, v := range s.Vertices {
		props.MinX = math.Min(props.MinX, v.X)
		props.MaxX = math.Max(props.MaxX, v.X)
		props.MinY = math.Min(props.MinY, v.Y)
		props.MaxY = math.Max(props.MaxY, v.Y)
	}

	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	// Area, centroid and second moments using the shoelace formula
	var signedArea, sumX, sumY, ixx, iyy float64
	n := len(s.Vertices)
	for i := 0; i < n; i++ {
		a, b := s.Vertices[i], s.Vertices[(i+1)%n]
		cross := a.X*b.Y - b.X*a.Y
		signedArea += cross
		sumX += (a.X + b.X) * cross
		sumY += (a.Y + b.Y) * cross
		ixx += (a.Y*a.Y + a.Y*b.Y + b.Y*b.Y) * cross
		iyy += (a.X*a.X + a.X*b.X + b.X*b.X) * cross
	}
	signedArea /= 2
	if signedArea == 0 {
		return props
	}

	props.Area = math.Abs(signedArea)
	props.CentroidX = sumX / (6 * signedArea)
	props.CentroidY = sumY / (6 * signedArea)

	// Vertex order only flips the sign of the sums; shift to the centroid
	sign := math.Copysign(1, signedArea)
	props.Iz = sign*ixx/12 - props.Area*props.CentroidY*props.CentroidY
	props.Iy = sign*iyy/12 - props.Area*props.CentroidX*props.CentroidX

	props.J = rectangleTorsion(props.Width, props.Height)

	return props
}

// rectangleTorsion approximates the torsion constant of a w by h rectangle:
// J = b t³ (1/3 - 0.21 (t/b) (1 - t⁴/12b⁴)) with b the long side.
func rectangleTorsion(w, h float64) float64 {
	b, t := math.Max(w, h), math.Min(w, h)
	if b == 0 {
		return 0
	}
	r := t / b
	return b * t * t * t * (1.0/3 - 0.21*r*(1-math.Pow(r, 4)/12))
}
