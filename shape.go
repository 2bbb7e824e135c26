package plot

import (
	"fmt"
	"math"
	"slices"
)

// LineShape selects how consecutive points of a line are connected.
type LineShape uint8

const (
	// ShapeLinear connects points with straight segments.
	ShapeLinear LineShape = iota
	// ShapeHV steps horizontally first, then vertically.
	ShapeHV
	// ShapeVH steps vertically first, then horizontally.
	ShapeVH
	// ShapeHVH steps horizontally to the midpoint, vertically, then horizontally.
	ShapeHVH
	// ShapeVHV steps vertically to the midpoint, horizontally, then vertically.
	ShapeVHV
	// ShapeSpline draws a smoothed open curve through the points.
	ShapeSpline
)

var lineShapeNames = [...]string{
	ShapeLinear: "linear",
	ShapeHV:     "hv",
	ShapeVH:     "vh",
	ShapeHVH:    "hvh",
	ShapeVHV:    "vhv",
	ShapeSpline: "spline",
}

// String returns the attribute name of the shape.
func (s LineShape) String() string {
	if int(s) < len(lineShapeNames) {
		return lineShapeNames[s]
	}
	return "unknown"
}

// ParseLineShape parses a line shape name. The empty string is linear.
func ParseLineShape(name string) (LineShape, error) {
	if name == "" {
		return ShapeLinear, nil
	}
	for i, n := range lineShapeNames {
		if n == name {
			return LineShape(i), nil
		}
	}
	return ShapeLinear, fmt.Errorf("plot: unknown line shape %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (s LineShape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *LineShape) UnmarshalText(b []byte) error {
	v, err := ParseLineShape(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// IsStep reports whether s is one of the axis-aligned step shapes.
func (s LineShape) IsStep() bool {
	return s >= ShapeHV && s <= ShapeVHV
}

// Reverse returns the shape whose name is the character reversal of s.
// Traversing a step line backwards with the reversed shape keeps the
// corners where the forward traversal put them.
func (s LineShape) Reverse() LineShape {
	switch s {
	case ShapeHV:
		return ShapeVH
	case ShapeVH:
		return ShapeHV
	}
	return s
}

// BuildLine returns the path through pts for the given shape.
// smoothing is only used by ShapeSpline and is clamped to [0, 1].
func BuildLine(pts []Point, shape LineShape, smoothing float64) *Path {
	p := NewPath()
	if len(pts) == 0 {
		return p
	}
	switch {
	case shape.IsStep():
		steps(p, pts, shape)
	case shape == ShapeSpline:
		smoothOpen(p, pts, math.Max(0, math.Min(1, smoothing)))
	default:
		p.MoveTo(pts[0].X, pts[0].Y)
		for _, pt := range pts[1:] {
			p.LineTo(pt.X, pt.Y)
		}
	}
	return p
}

// BuildLineReversed returns the path through pts traversed backwards,
// starting with a line command instead of a move so it can be
// appended to another path to close a fill region.
//
// BuildLineReversed reverses pts in place; callers must not rely on the
// order of pts afterwards.
func BuildLineReversed(pts []Point, shape LineShape, smoothing float64) *Path {
	slices.Reverse(pts)
	p := BuildLine(pts, shape.Reverse(), smoothing)
	if len(p.elements) > 0 {
		if m, ok := p.elements[0].(MoveTo); ok {
			p.elements[0] = LineTo(m)
		}
	}
	return p
}

func steps(p *Path, pts []Point, shape LineShape) {
	p.MoveTo(pts[0].X, pts[0].Y)
	for i := 1; i < len(pts); i++ {
		p0, p1 := pts[i-1], pts[i]
		switch shape {
		case ShapeHV:
			p.LineTo(p1.X, p0.Y)
			p.LineTo(p1.X, p1.Y)
		case ShapeVH:
			p.LineTo(p0.X, p1.Y)
			p.LineTo(p1.X, p1.Y)
		case ShapeHVH:
			mx := (p0.X + p1.X) / 2
			p.LineTo(mx, p0.Y)
			p.LineTo(mx, p1.Y)
			p.LineTo(p1.X, p1.Y)
		case ShapeVHV:
			my := (p0.Y + p1.Y) / 2
			p.LineTo(p0.X, my)
			p.LineTo(p1.X, my)
			p.LineTo(p1.X, p1.Y)
		}
	}
}

// catmullRomExp is the Catmull-Rom parameterization exponent (centripetal).
const catmullRomExp = 0.5

// smoothOpen draws a smoothed open curve: a quadratic into the second
// point, cubics between interior points and a quadratic into the last.
func smoothOpen(p *Path, pts []Point, smoothness float64) {
	p.MoveTo(pts[0].X, pts[0].Y)
	if len(pts) < 3 {
		for _, pt := range pts[1:] {
			p.LineTo(pt.X, pt.Y)
		}
		return
	}
	tangents := make([][2]Point, 0, len(pts)-2)
	for i := 1; i < len(pts)-1; i++ {
		tangents = append(tangents, makeTangent(pts[i-1], pts[i], pts[i+1], smoothness))
	}
	c := tangents[0][0]
	p.QuadraticTo(c.X, c.Y, pts[1].X, pts[1].Y)
	for i := 2; i < len(pts)-1; i++ {
		c1, c2 := tangents[i-2][1], tangents[i-1][0]
		p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pts[i].X, pts[i].Y)
	}
	c = tangents[len(pts)-3][1]
	last := pts[len(pts)-1]
	p.QuadraticTo(c.X, c.Y, last.X, last.Y)
}

// makeTangent returns the incoming and outgoing control points at cur.
func makeTangent(prev, cur, next Point, smoothness float64) [2]Point {
	d1 := prev.Sub(cur)
	d2 := next.Sub(cur)
	d1a := math.Pow(d1.Dot(d1), catmullRomExp/2)
	d2a := math.Pow(d2.Dot(d2), catmullRomExp/2)
	num := d1.Mul(d2a * d2a).Sub(d2.Mul(d1a * d1a)).Mul(smoothness)
	denom1 := 3 * d2a * (d1a + d2a)
	denom2 := 3 * d1a * (d1a + d2a)

	in, out := cur, cur
	if denom1 != 0 {
		in = cur.Add(num.Mul(1 / denom1))
	}
	if denom2 != 0 {
		out = cur.Sub(num.Mul(1 / denom2))
	}
	return [2]Point{in, out}
}
