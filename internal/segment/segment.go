// Package segment splits calc-data into screen-space line segments.
package segment

import (
	"math"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/axis"
	"github.com/gogpu/plot/trace"
)

const (
	// minTolerance scales the tolerance below which a point is too close
	// to the cluster start to define its direction.
	minTolerance = 0.2
	// toleranceGrowth scales the tolerance of off-screen points per
	// subplot length they lie outside.
	toleranceGrowth = 10
)

// Options controls segment planning.
type Options struct {
	// ConnectGaps joins the points on either side of a blank point.
	ConnectGaps bool
	// BaseTolerance is the on-screen simplification tolerance in pixels.
	// Zero or less disables simplification.
	BaseTolerance float64
	// Linear reports whether the line shape is linear. Only linear lines
	// are simplified.
	Linear bool
}

// BaseTolerance returns the simplification tolerance for a line width.
func BaseTolerance(lineWidth float64) float64 {
	if lineWidth == 0 {
		lineWidth = 1
	}
	return math.Max(lineWidth, 3) / 4
}

// Plan returns the maximal runs of positionable points, in data order.
//
// Runs of nearly collinear points on linear lines are collapsed to the
// points that matter for drawing: the start, the extreme points along
// the run direction and the end. Collapsing is a single pass: a cluster
// grows while the spread of perpendicular deviations from its direction
// stays within the tolerance.
func Plan(points []trace.CalcPoint, xa, ya axis.Axis, opts Options) [][]plot.Point {
	p := planner{points: points, xa: xa, ya: ya, opts: opts}
	return p.run()
}

type planner struct {
	points []trace.CalcPoint
	xa, ya axis.Axis
	opts   Options
	pts    []plot.Point
}

// pt returns the pixel position of points[i], or false for blank points
// and indices out of range.
func (p *planner) pt(i int) (plot.Point, bool) {
	if i < 0 || i >= len(p.points) {
		return plot.Point{}, false
	}
	d := p.points[i]
	x := p.xa.C2P(d.X, false)
	if math.IsNaN(x) {
		x = p.xa.C2P(d.X, true)
	}
	y := p.ya.C2P(d.Y, false)
	if math.IsNaN(y) {
		y = p.ya.C2P(d.Y, true)
	}
	pt := plot.Pt(x, y)
	return pt, pt.IsFinite()
}

func (p *planner) tolerance(pt plot.Point) float64 {
	xf := pt.X / p.xa.Length()
	yf := pt.Y / p.ya.Length()
	off := math.Max(0, math.Max(math.Max(-xf, xf-1), math.Max(-yf, yf-1)))
	return (1 + toleranceGrowth*off) * p.opts.BaseTolerance
}

func (p *planner) add(pt plot.Point) {
	p.pts = append(p.pts, pt)
}

func (p *planner) run() [][]plot.Point {
	var segments [][]plot.Point
	n := len(p.points)
	simplify := p.opts.Linear && p.opts.BaseTolerance > 0

	for i := 0; i < n; i++ {
		start, ok := p.pt(i)
		if !ok {
			continue
		}
		p.pts = make([]plot.Point, 0, 16)
		p.add(start)

		for i++; i < n; i++ {
			high, ok := p.pt(i)
			if !ok {
				if p.opts.ConnectGaps {
					continue
				}
				break
			}
			if !simplify {
				p.add(high)
				continue
			}

			next, nextOK := p.pt(i + 1)
			refDist := high.Distance(start)
			if refDist < p.tolerance(high)*minTolerance {
				continue
			}
			unit := high.Sub(start).Mul(1 / refDist)

			low := start
			end := high
			highVal, lowVal := refDist, 0.0
			minDev, maxDev := 0.0, 0.0
			highFirst := false

			var this plot.Point
			thisOK := false
			for i++; i < n; i++ {
				this, thisOK = next, nextOK
				next, nextOK = p.pt(i + 1)
				if !thisOK {
					if p.opts.ConnectGaps {
						continue
					}
					break
				}
				v := this.Sub(start)
				dev := v.Cross(unit)
				minDev = math.Min(minDev, dev)
				maxDev = math.Max(maxDev, dev)
				if maxDev-minDev > p.tolerance(this) {
					break
				}
				end = this
				val := v.Dot(unit)
				if val > highVal {
					highVal, high = val, this
					highFirst = false
				} else if val < lowVal {
					lowVal, low = val, this
					highFirst = true
				}
			}

			if highFirst {
				p.add(high)
				if end != low {
					p.add(low)
				}
			} else {
				if low != start {
					p.add(low)
				}
				if end != high {
					p.add(high)
				}
			}
			p.add(end)

			if i >= n || !thisOK {
				break
			}
			p.add(this)
			start = this
		}
		segments = append(segments, p.pts)
	}
	return segments
}
