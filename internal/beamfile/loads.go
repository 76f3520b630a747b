package beamfile

import (
	"errors"
	"fmt"
	"strings"
)

// LoadKind discriminates Load variants.
type LoadKind string

const (
	KindPoint       LoadKind = "Point"
	KindDistributed LoadKind = "Dist"
)

// Load is a PointLoad or a DistributedLoad.
type Load interface {
	Kind() LoadKind
	LoadCase() string
	LoadDirection() string
}

// PointLoad is a concentrated force or moment applied at one location.
type PointLoad struct {
	Direction string  `json:"direction" yaml:"direction"` // force component tag, e.g. Fy
	Magnitude float64 `json:"magnitude" yaml:"magnitude"`
	Location  float64 `json:"location" yaml:"location"`
	Case      string  `json:"case" yaml:"case"`
}

func (PointLoad) Kind() LoadKind { return KindPoint }
func (l PointLoad) LoadCase() string { return l.Case }
func (l PointLoad) LoadDirection() string { return l.Direction }

// DistributedLoad varies linearly from StartMagnitude at StartLocation to
// EndMagnitude at EndLocation. Equal magnitudes describe a UDL.
type DistributedLoad struct {
	Direction      string  `json:"direction" yaml:"direction"`
	StartMagnitude float64 `json:"w1" yaml:"w1"`
	EndMagnitude   float64 `json:"w2" yaml:"w2"`
	StartLocation  float64 `json:"x1" yaml:"x1"`
	EndLocation    float64 `json:"x2" yaml:"x2"`
	Case           string  `json:"case" yaml:"case"`
}

func (DistributedLoad) Kind() LoadKind { return KindDistributed }
func (l DistributedLoad) LoadCase() string { return l.Case }
func (l DistributedLoad) LoadDirection() string { return l.Direction }

// Uniform reports whether the load has a constant intensity.
func (l DistributedLoad) Uniform() bool {
	return l.StartMagnitude == l.EndMagnitude
}

// IntensityAt returns the load intensity at x, zero outside the loaded length.
func (l DistributedLoad) IntensityAt(x float64) float64 {
	if x < l.StartLocation || x > l.EndLocation {
		return 0
	}
	if l.EndLocation == l.StartLocation {
		return l.StartMagnitude
	}
	t := (x - l.StartLocation) / (l.EndLocation - l.StartLocation)
	return l.StartMagnitude + t*(l.EndMagnitude-l.StartMagnitude)
}

const (
	pointTokens = 4
	distTokens  = 6
)

// ParseLoads parses the load rows of a record, preserving their order.
// firstRow is the record index of the first load row, used in errors.
func ParseLoads(rows [][]string, firstRow int) ([]Load, error) {
	loads := make([]Load, 0, len(rows))
	for i, r := range rows {
		l, err := ParseLoad(r)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Row = firstRow + i
			}
			return nil, err
		}
		loads = append(loads, l)
	}
	return loads, nil
}

// ParseLoad parses one load row:
//
//	POINT:<direction>, <magnitude>, <location>, case:<label>
//	DIST:<direction>, <w1>, <w2>, <x1>, <x2>, case:<label>
//
// The type is case-insensitive. A row of any other length is rejected.
func ParseLoad(tokens []string) (Load, error) {
	tokens = trimTrailingEmpty(tokens)
	joined := strings.Join(tokens, ",")
	if len(tokens) == 0 {
		return nil, rowError(-1, joined, shapeLoad, ErrMalformedLoadRow)
	}

	typ, dir, found := strings.Cut(strings.TrimSpace(tokens[0]), ":")
	dir = strings.TrimSpace(dir)
	if !found || dir == "" {
		return nil, rowError(-1, tokens[0], shapeLoad, ErrMalformedLoadRow)
	}

	var kind LoadKind
	var want int
	var shape string
	switch strings.ToUpper(strings.TrimSpace(typ)) {
	case "POINT":
		kind, want, shape = KindPoint, pointTokens, shapePointLoad
	case "DIST":
		kind, want, shape = KindDistributed, distTokens, shapeDistLoad
	default:
		return nil, rowError(-1, tokens[0], shapeLoad, ErrMalformedLoadRow)
	}
	if len(tokens) != want {
		return nil, rowError(-1, describeRow(tokens), shape, ErrMalformedLoadRow)
	}

	loadCase, err := parseCase(tokens[len(tokens)-1])
	if err != nil {
		return nil, err
	}

	values := make([]float64, want-2)
	for i, tok := range tokens[1 : want-1] {
		v, err := ParseFloat(tok)
		if err != nil {
			return nil, rowError(-1, tok, shape, fmt.Errorf("%w: %w", ErrMalformedLoadRow, ErrInvalidNumber))
		}
		values[i] = v
	}

	if kind == KindPoint {
		return PointLoad{Direction: dir, Magnitude: values[0], Location: values[1], Case: loadCase}, nil
	}
	l := DistributedLoad{
		Direction:      dir,
		StartMagnitude: values[0],
		EndMagnitude:   values[1],
		StartLocation:  values[2],
		EndLocation:    values[3],
		Case:           loadCase,
	}
	if l.StartLocation > l.EndLocation {
		return nil, rowError(-1, joined, "x1 <= x2", ErrMalformedLoadRow)
	}
	return l, nil
}

// parseCase extracts the label from a "case:<label>" token. The label may
// not contain another colon.
func parseCase(tok string) (string, error) {
	_, label, found := strings.Cut(strings.TrimSpace(tok), ":")
	label = strings.TrimSpace(label)
	if !found || label == "" || strings.Contains(label, ":") {
		return "", rowError(-1, tok, shapeCase, ErrMalformedCaseToken)
	}
	return label, nil
}

// describeRow renders a row with the kind of each token, for errors about
// row shape: POINT:Fy,-10000,4800 → "POINT:Fy,-10000,4800 [text num num]".
func describeRow(tokens []string) string {
	kinds := make([]string, len(tokens))
	for i, tok := range tokens {
		if ParseField(tok).Numeric {
			kinds[i] = "num"
		} else {
			kinds[i] = "text"
		}
	}
	return fmt.Sprintf("%s [%s]", strings.Join(tokens, ","), strings.Join(kinds, " "))
}
