// path_builder.go

package plot

import "math"

// PathBuilder provides a fluent interface for path construction.
// All methods return the builder for chaining.
type PathBuilder struct {
	path *Path
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{path: NewPath()}
}

// MoveTo moves to a new position.
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	b.path.MoveTo(x, y)
	return b
}

// LineTo draws a line to a position.
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	b.path.LineTo(x, y)
	return b
}

// Close closes the current subpath.
func (b *PathBuilder) Close() *PathBuilder {
	b.path.Close()
	return b
}

// Polyline adds a closed polygon through the given vertices.
func (b *PathBuilder) Polyline(pts ...Point) *PathBuilder {
	if len(pts) == 0 {
		return b
	}
	b.path.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		b.path.LineTo(pt.X, pt.Y)
	}
	b.path.Close()
	return b
}

// Rect adds a rectangle to the path.
func (b *PathBuilder) Rect(x, y, w, h float64) *PathBuilder {
	return b.Polyline(Pt(x, y), Pt(x+w, y), Pt(x+w, y+h), Pt(x, y+h))
}

// Circle adds a circle to the path using cubic Bezier curves.
func (b *PathBuilder) Circle(cx, cy, r float64) *PathBuilder {
	// Magic constant for circle approximation with cubic Beziers
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	o := r * k

	b.path.MoveTo(cx+r, cy)
	b.path.CubicTo(cx+r, cy+o, cx+o, cy+r, cx, cy+r)
	b.path.CubicTo(cx-o, cy+r, cx-r, cy+o, cx-r, cy)
	b.path.CubicTo(cx-r, cy-o, cx-o, cy-r, cx, cy-r)
	b.path.CubicTo(cx+o, cy-r, cx+r, cy-o, cx+r, cy)
	b.path.Close()
	return b
}

// Polygon adds a regular polygon to the path with its first vertex at
// the given angle (radians, 0 is right, -π/2 is up).
func (b *PathBuilder) Polygon(cx, cy, radius float64, sides int, startAngle float64) *PathBuilder {
	if sides < 3 {
		return b
	}
	pts := make([]Point, sides)
	angleStep := 2 * math.Pi / float64(sides)
	for i := range pts {
		angle := startAngle + float64(i)*angleStep
		pts[i] = Pt(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle))
	}
	return b.Polyline(pts...)
}

// Star adds a star shape to the path.
func (b *PathBuilder) Star(cx, cy, outerRadius, innerRadius float64, points int) *PathBuilder {
	if points < 3 {
		return b
	}
	pts := make([]Point, 2*points)
	angleStep := math.Pi / float64(points)
	startAngle := -math.Pi / 2
	for i := range pts {
		angle := startAngle + float64(i)*angleStep
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		pts[i] = Pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return b.Polyline(pts...)
}

// Build returns the constructed path.
func (b *PathBuilder) Build() *Path {
	return b.path
}
