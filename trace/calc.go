package trace

import (
	"math"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/axis"
)

// CalcPoint is one point of calc-data.
type CalcPoint struct {
	// X and Y are calc values; NaN marks a blank point.
	X, Y float64
	// I is the index of the point in the trace data.
	I  int
	ID string
	// Gap marks a point filled in by stacking rather than given.
	Gap bool

	// Merged per-point style; zero values fall back to the trace.
	Text   string
	Size   float64
	Color  string
	Symbol string
}

// IsBlank reports whether the point has no usable data value.
func (p CalcPoint) IsBlank() bool {
	return !finite(p.X) || !finite(p.Y)
}

// Pixel returns the screen position of the point on the given axes.
// The result is only valid for the axis ranges active when it is called.
func (p CalcPoint) Pixel(xa, ya axis.Axis) plot.Point {
	return plot.Pt(xa.C2P(p.X, false), ya.C2P(p.Y, false))
}

// CalcTrace is the calc-data of one trace.
type CalcTrace struct {
	Trace  *Trace
	Points []CalcPoint
	// Index is the position of the trace in the figure.
	Index int
}

// Len returns the number of points.
func (c CalcTrace) Len() int { return len(c.Points) }

// Calc converts the raw arrays of tr to calc-data. Missing X values
// default to the point index. Points beyond the shorter of X and Y are
// dropped.
func Calc(tr *Trace) CalcTrace {
	n := len(tr.Y)
	if len(tr.X) > 0 && len(tr.X) < n {
		n = len(tr.X)
	}
	pts := make([]CalcPoint, n)
	for i := range pts {
		x := float64(i)
		if len(tr.X) > 0 {
			x = tr.X[i]
		}
		pt := CalcPoint{X: x, Y: tr.Y[i], I: i}
		if i < len(tr.IDs) {
			pt.ID = tr.IDs[i]
		}
		if i < len(tr.Text) {
			pt.Text = tr.Text[i]
		}
		if i < len(tr.Marker.Sizes) {
			pt.Size = tr.Marker.Sizes[i]
		}
		if i < len(tr.Marker.Colors) {
			pt.Color = tr.Marker.Colors[i]
		}
		if i < len(tr.Marker.Symbols) {
			pt.Symbol = tr.Marker.Symbols[i]
		}
		pts[i] = pt
	}
	return CalcTrace{Trace: tr, Points: pts}
}

// CalcAll converts every trace and numbers them in order.
func CalcAll(traces []*Trace) []CalcTrace {
	cd := make([]CalcTrace, len(traces))
	for i, tr := range traces {
		cd[i] = Calc(tr)
		cd[i].Index = i
	}
	return cd
}

// Stack accumulates the Y values of traces sharing a stack group, in
// trace order. Points are matched by index. Blank Y values inside a
// group become gap points: zero with StackGapsInferZero, interpolated
// from the neighbors with StackGapsInterpolate.
func Stack(cd []CalcTrace) {
	sums := make(map[string][]float64)
	for ti := range cd {
		tr := cd[ti].Trace
		if tr == nil || tr.StackGroup == "" || !tr.IsVisible() {
			continue
		}
		pts := cd[ti].Points
		fillGaps(pts, tr.StackGaps)
		sum := sums[tr.StackGroup]
		for i := range pts {
			if i >= len(sum) {
				sum = append(sum, 0)
			}
			if !finite(pts[i].Y) {
				continue
			}
			sum[i] += pts[i].Y
			pts[i].Y = sum[i]
		}
		sums[tr.StackGroup] = sum
	}
}

func fillGaps(pts []CalcPoint, mode StackGaps) {
	for i := range pts {
		if finite(pts[i].Y) || !finite(pts[i].X) {
			continue
		}
		if mode == StackGapsInterpolate {
			y, ok := interpolate(pts, i)
			if !ok {
				continue
			}
			pts[i].Y = y
		} else {
			pts[i].Y = 0
		}
		pts[i].Gap = true
	}
}

func interpolate(pts []CalcPoint, i int) (float64, bool) {
	lo, hi := -1, -1
	for j := i - 1; j >= 0; j-- {
		if finite(pts[j].Y) && !pts[j].Gap {
			lo = j
			break
		}
	}
	for j := i + 1; j < len(pts); j++ {
		if finite(pts[j].Y) {
			hi = j
			break
		}
	}
	if lo < 0 || hi < 0 || pts[hi].X == pts[lo].X {
		return 0, false
	}
	t := (pts[i].X - pts[lo].X) / (pts[hi].X - pts[lo].X)
	return pts[lo].Y + t*(pts[hi].Y-pts[lo].Y), true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
