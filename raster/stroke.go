package raster

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/plot"
)

// Stroke describes how polylines are outlined. Joins are round and caps
// are butt, matching the scene's default line style.
type Stroke struct {
	Width float64
	// Dash holds alternating dash and gap lengths in device units. An odd
	// count repeats the pattern once.
	Dash []float64
}

// ParseDashArray parses a stroke-dasharray value such as "3px,3px".
// "none" and malformed values yield nil.
func ParseDashArray(s string) []float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "none" {
		return nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]float64, 0, len(fields))
	positive := false
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSuffix(f, "px"), 64)
		if err != nil || v < 0 {
			return nil
		}
		positive = positive || v > 0
		out = append(out, v)
	}
	if !positive {
		return nil
	}
	if len(out)%2 != 0 {
		out = append(out, out...)
	}
	return out
}

// outline returns polygons covering the stroke of lines. Every polygon
// is wound the same way so overlapping pieces add up instead of
// cancelling.
func (s Stroke) outline(lines []polyline) [][]plot.Point {
	if s.Width <= 0 {
		return nil
	}
	hw := s.Width / 2
	var polys [][]plot.Point
	for _, l := range lines {
		pts := l.pts
		if l.closed && len(pts) > 1 {
			pts = append(pts[:len(pts):len(pts)], pts[0])
		}
		for _, run := range dashes(pts, s.Dash) {
			for i := 1; i < len(run); i++ {
				if q := segmentQuad(run[i-1], run[i], hw); q != nil {
					polys = append(polys, q)
				}
				if i < len(run)-1 || (l.closed && len(s.Dash) == 0) {
					polys = append(polys, disc(run[i], hw))
				}
			}
		}
	}
	return polys
}

func segmentQuad(a, b plot.Point, hw float64) []plot.Point {
	d := b.Sub(a)
	l := d.Length()
	if l < 1e-9 {
		return nil
	}
	n := plot.Pt(-d.Y/l*hw, d.X/l*hw)
	return orient([]plot.Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
}

func disc(c plot.Point, r float64) []plot.Point {
	n := max(8, int(math.Ceil(r*math.Pi)))
	pts := make([]plot.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = plot.Pt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
	}
	return orient(pts)
}

// orient reverses pts when its signed area is negative.
func orient(pts []plot.Point) []plot.Point {
	area := 0.0
	for i := range pts {
		area += pts[i].Cross(pts[(i+1)%len(pts)])
	}
	if area < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	return pts
}

// dashes splits pts into the runs drawn by the dash pattern. A nil
// pattern draws pts whole.
func dashes(pts []plot.Point, pattern []float64) [][]plot.Point {
	if len(pattern) == 0 || len(pts) < 2 {
		return [][]plot.Point{pts}
	}
	var runs [][]plot.Point
	idx, left, on := 0, pattern[0], true
	cur := []plot.Point{pts[0]}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		seg := b.Distance(a)
		pos := 0.0
		for seg-pos > left {
			pos += left
			p := a.Lerp(b, pos/seg)
			if on {
				runs = append(runs, append(cur, p))
			}
			cur = []plot.Point{p}
			on = !on
			idx = (idx + 1) % len(pattern)
			left = pattern[idx]
		}
		left -= seg - pos
		cur = append(cur, b)
	}
	if on && len(cur) > 1 {
		runs = append(runs, cur)
	}
	return runs
}
