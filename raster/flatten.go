package raster

import (
	"math"

	"github.com/gogpu/plot"
)

// polyline is one flattened subpath.
type polyline struct {
	pts    []plot.Point
	closed bool
}

// flatten converts p to polylines in device space, approximating curves
// by line segments within tolerance.
func flatten(p *plot.Path, m Matrix, tolerance float64) []polyline {
	var out []polyline
	var cur *polyline
	var last, first plot.Point
	start := func(pt plot.Point) {
		out = append(out, polyline{pts: []plot.Point{m.Apply(pt)}})
		cur = &out[len(out)-1]
		first = pt
	}
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case plot.MoveTo:
			start(e.Point)
			last = e.Point
		case plot.LineTo:
			if cur == nil {
				start(last)
			}
			cur.pts = append(cur.pts, m.Apply(e.Point))
			last = e.Point
		case plot.QuadTo:
			if cur == nil {
				start(last)
			}
			a, c, b := m.Apply(last), m.Apply(e.Control), m.Apply(e.Point)
			flattenQuad(a, c, b, tolerance, &cur.pts)
			last = e.Point
		case plot.CubicTo:
			if cur == nil {
				start(last)
			}
			a, c1, c2, b := m.Apply(last), m.Apply(e.Control1), m.Apply(e.Control2), m.Apply(e.Point)
			flattenCubic(a, c1, c2, b, tolerance, &cur.pts, 0)
			last = e.Point
		case plot.Close:
			if cur != nil {
				cur.closed = true
				last = first
				// drawing after a close starts from the subpath start
				cur = nil
			}
		}
	}
	return out
}

const maxDepth = 16

func flattenQuad(p0, p1, p2 plot.Point, tolerance float64, out *[]plot.Point) {
	// elevate to a cubic so both curve kinds share one subdivision
	c1 := p0.Add(p1.Sub(p0).Mul(2.0 / 3))
	c2 := p2.Add(p1.Sub(p2).Mul(2.0 / 3))
	flattenCubic(p0, c1, c2, p2, tolerance, out, 0)
}

func flattenCubic(p0, p1, p2, p3 plot.Point, tolerance float64, out *[]plot.Point, depth int) {
	if depth >= maxDepth || math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3)) < tolerance {
		*out = append(*out, p3)
		return
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)
	flattenCubic(p0, q0, r0, s, tolerance, out, depth+1)
	flattenCubic(s, r1, q2, p3, tolerance, out, depth+1)
}

// distanceToLine returns the distance from p to the segment ab.
func distanceToLine(p, a, b plot.Point) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 < 1e-20 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / l2
	t = math.Max(0, math.Min(1, t))
	return p.Distance(a.Add(ab.Mul(t)))
}
