// Package decimate selects which markers of a trace to draw when the
// trace caps its marker count.
package decimate

import (
	"math"

	"github.com/gogpu/plot/axis"
	"github.com/gogpu/plot/trace"
)

// Visibility marks, per calc-data point, whether its marker is drawn.
// A nil Visibility means decimation is off and every marker is drawn.
type Visibility []bool

// Active reports whether decimation applies.
func (v Visibility) Active() bool { return v != nil }

// Visible reports whether point i is drawn.
func (v Visibility) Visible(i int) bool {
	if v == nil {
		return true
	}
	return i >= 0 && i < len(v) && v[i]
}

// Count returns the number of visible points.
func (v Visibility) Count() int {
	n := 0
	for _, on := range v {
		if on {
			n++
		}
	}
	return n
}

// Select computes the visibility of the markers of traces[idx]. It
// returns nil unless the trace shows markers and sets MaxDisplayed.
//
// Points inside the visible axis ranges (bounds included) are thinned
// to every inc-th point, inc = ceil(|V|/max). The phase is staggered by
// the number of preceding decimating traces so overlapping traces do
// not line their markers up in rows.
//
// The result is a fresh slice on every call.
func Select(traces []trace.CalcTrace, idx int, xa, ya axis.Axis) Visibility {
	tr := traces[idx].Trace
	if !tr.HasMarkers() || tr.Marker.MaxDisplayed == nil {
		return nil
	}
	pts := traces[idx].Points
	vis := make(Visibility, len(pts))
	mnum := *tr.Marker.MaxDisplayed
	if mnum <= 0 {
		return vis
	}

	x0, x1 := bounds(xa)
	y0, y1 := bounds(ya)
	var in []int
	for i, p := range pts {
		if p.X >= x0 && p.X <= x1 && p.Y >= y0 && p.Y <= y1 {
			in = append(in, i)
		}
	}
	if len(in) == 0 {
		return vis
	}

	inc := math.Ceil(float64(len(in)) / float64(mnum))
	tnum := 0
	for _, prev := range traces[:idx] {
		pt := prev.Trace
		if pt == nil {
			continue
		}
		if pt.HasMarkers() && pt.Marker.MaxDisplayed != nil && *pt.Marker.MaxDisplayed > 0 {
			tnum++
		}
	}
	i0 := math.Round(float64(tnum)*inc/3 + math.Floor(float64(tnum)/3)*inc/7.1)

	for i, pi := range in {
		if math.Round(math.Mod(float64(i)+i0, inc)) == 0 {
			vis[pi] = true
		}
	}
	return vis
}

// bounds returns the visible range of ax in calc units, low end first.
func bounds(ax axis.Axis) (float64, float64) {
	r := ax.Range()
	a, b := ax.R2C(r[0]), ax.R2C(r[1])
	return math.Min(a, b), math.Max(a, b)
}
