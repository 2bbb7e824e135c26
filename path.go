package plot

import (
	"math"
	"strconv"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a vector path in pixel space that serializes to SVG path data.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
// On an empty path the line starts the path, which is how reversed
// fill paths begin.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	if len(p.elements) == 0 {
		p.start = pt
	}
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of path elements.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.elements)
}

// IsEmpty reports whether the path has no elements. A nil path is empty.
func (p *Path) IsEmpty() bool {
	return p.Len() == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Extend appends q to p, joined straight across: a leading MoveTo of q
// becomes a LineTo so the result stays a single subpath.
func (p *Path) Extend(q *Path) *Path {
	if q.IsEmpty() {
		return p
	}
	for i, elem := range q.elements {
		if m, ok := elem.(MoveTo); ok && i == 0 && len(p.elements) > 0 {
			p.elements = append(p.elements, LineTo(m))
			continue
		}
		if m, ok := elem.(MoveTo); ok {
			p.start = m.Point
		}
		if l, ok := elem.(LineTo); ok && len(p.elements) == 0 {
			p.start = l.Point
		}
		p.elements = append(p.elements, elem)
	}
	p.current = q.current
	return p
}

// AppendSubpath appends q to p as a separate subpath: a leading LineTo
// of q becomes a MoveTo.
func (p *Path) AppendSubpath(q *Path) *Path {
	if q.IsEmpty() {
		return p
	}
	for i, elem := range q.elements {
		if l, ok := elem.(LineTo); ok && i == 0 {
			elem = MoveTo(l)
		}
		if m, ok := elem.(MoveTo); ok {
			p.start = m.Point
		}
		p.elements = append(p.elements, elem)
	}
	p.current = q.current
	return p
}

// Points returns the end point of every drawing element, in order.
// Close elements contribute nothing.
func (p *Path) Points() []Point {
	pts := make([]Point, 0, len(p.elements))
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pts = append(pts, e.Point)
		case LineTo:
			pts = append(pts, e.Point)
		case QuadTo:
			pts = append(pts, e.Point)
		case CubicTo:
			pts = append(pts, e.Point)
		}
	}
	return pts
}

// Translate returns a copy of the path moved by (dx, dy).
func (p *Path) Translate(dx, dy float64) *Path {
	d := Pt(dx, dy)
	result := &Path{elements: make([]PathElement, len(p.elements))}
	for i, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.elements[i] = MoveTo{Point: e.Point.Add(d)}
		case LineTo:
			result.elements[i] = LineTo{Point: e.Point.Add(d)}
		case QuadTo:
			result.elements[i] = QuadTo{Control: e.Control.Add(d), Point: e.Point.Add(d)}
		case CubicTo:
			result.elements[i] = CubicTo{
				Control1: e.Control1.Add(d),
				Control2: e.Control2.Add(d),
				Point:    e.Point.Add(d),
			}
		default:
			result.elements[i] = elem
		}
	}
	result.start = p.start.Add(d)
	result.current = p.current.Add(d)
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

// String returns the SVG path data of p.
func (p *Path) String() string {
	if p.IsEmpty() {
		return ""
	}
	return string(p.AppendSVG(make([]byte, 0, 16*len(p.elements))))
}

// AppendSVG appends the SVG path data of p to dst.
// Coordinates are rounded to two decimals.
func (p *Path) AppendSVG(dst []byte) []byte {
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			dst = append(dst, 'M')
			dst = appendPoint(dst, e.Point)
		case LineTo:
			dst = append(dst, 'L')
			dst = appendPoint(dst, e.Point)
		case QuadTo:
			dst = append(dst, 'Q')
			dst = appendPoint(dst, e.Control)
			dst = append(dst, ' ')
			dst = appendPoint(dst, e.Point)
		case CubicTo:
			dst = append(dst, 'C')
			dst = appendPoint(dst, e.Control1)
			dst = append(dst, ' ')
			dst = appendPoint(dst, e.Control2)
			dst = append(dst, ' ')
			dst = appendPoint(dst, e.Point)
		case Close:
			dst = append(dst, 'Z')
		}
	}
	return dst
}

func appendPoint(dst []byte, pt Point) []byte {
	dst = AppendNumber(dst, pt.X)
	dst = append(dst, ',')
	return AppendNumber(dst, pt.Y)
}

// AppendNumber appends v rounded to two decimals in its shortest form.
func AppendNumber(dst []byte, v float64) []byte {
	r := Round2(v)
	if r == 0 {
		r = 0 // drop the sign of negative zero
	}
	return strconv.AppendFloat(dst, r, 'f', -1, 64)
}

// FormatNumber formats v the way path data and attributes are written.
func FormatNumber(v float64) string {
	return string(AppendNumber(nil, v))
}

// Round2 rounds v to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
