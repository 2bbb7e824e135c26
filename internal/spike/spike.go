// Package spike keeps persistent hover spike-lines anchored when a trace
// draws lines but no markers.
//
// A spike-line is a line node in the hover layer classed
// "spikeline <plotID> <axisName>". The x spike-line (classed with the x
// axis name) runs vertically from the hovered point to the x axis; the
// y spike-line runs horizontally to the y axis. Besides the SVG line
// attributes each carries:
//
//	x0, y0   pixel offset of the subplot inside the hover layer
//	px, py   linearized data coordinates of the hovered point
//	data-dx  horizontal offset applied so far
//	data-dy  vertical offset applied so far
package spike

import (
	"math"
	"strconv"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/axis"
	"github.com/gogpu/plot/scene"
	"github.com/gogpu/plot/style"
)

// Class is the class shared by every spike-line.
const Class = "spikeline"

// Place draws the pair of spike-lines for the point (px, py), given in
// linearized coordinates, into hover. (x0, y0) is the subplot offset.
// Existing spike-lines of the subplot are replaced.
func Place(hover *scene.Node, xa, ya axis.Axis, px, py, x0, y0 float64) (xs, ys *scene.Node) {
	id := axis.PlotID(xa, ya)
	for _, n := range hover.SelectAll("." + Class + "." + id) {
		n.Remove()
	}
	x := x0 + xa.C2P(xa.L2C(px), false)
	y := y0 + ya.C2P(ya.L2C(py), false)

	xs = hover.Append("line", Class, id, xa.Name())
	setNum(xs, "x1", x)
	setNum(xs, "y1", y)
	setNum(xs, "x2", x)
	setNum(xs, "y2", y0+ya.Length())

	ys = hover.Append("line", Class, id, ya.Name())
	setNum(ys, "x1", x)
	setNum(ys, "y1", y)
	setNum(ys, "x2", x0)
	setNum(ys, "y2", y)

	for _, n := range []*scene.Node{xs, ys} {
		setNum(n, "x0", x0)
		setNum(n, "y0", y0)
		setNum(n, "px", px)
		setNum(n, "py", py)
		n.SetStyle("stroke", "#444444")
		n.SetStyle("stroke-width", "1px")
		n.SetStyle("stroke-dasharray", "3px,3px")
	}
	return xs, ys
}

// Adjust moves the spike-lines of the subplot of xa and ya so their
// point end sits where the current axis ranges put the hovered point.
// It reports whether anything moved; missing or malformed spike-lines
// make it a no-op.
func Adjust(hover *scene.Node, xa, ya axis.Axis) bool {
	if hover == nil {
		return false
	}
	lines := hover.SelectAll("." + Class + "." + axis.PlotID(xa, ya))
	var xs, ys []*scene.Node
	for _, n := range lines {
		switch {
		case n.HasClass(xa.Name()):
			xs = append(xs, n)
		case n.HasClass(ya.Name()):
			ys = append(ys, n)
		}
	}
	if len(xs) == 0 || len(ys) == 0 {
		return false
	}

	xr, yr := xa.LinearRange(), ya.LinearRange()
	xRange, yRange := xr[1]-xr[0], yr[1]-yr[0]
	if xRange == 0 || yRange == 0 {
		return false
	}

	xl, yl := xs[0], ys[0]
	py, ok1 := num(xl, "py")
	y0, ok2 := intAttr(xl, "y0")
	y1, ok3 := intAttr(xl, "y1")
	px, ok4 := num(yl, "px")
	x0, ok5 := intAttr(yl, "x0")
	x1, ok6 := intAttr(yl, "x1")
	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6) {
		plot.Logger().Debug("spike: malformed spike-line", "plot", axis.PlotID(xa, ya))
		return false
	}
	prevDy := numOr(xl, "data-dy")
	prevDx := numOr(yl, "data-dx")

	yRatio := 1 - (py-yr[0])/yRange
	xRatio := (px - xr[0]) / xRange
	dy := yRatio*ya.Length() + y0 - (y1 + prevDy)
	dx := xRatio*xa.Length() + x0 - (x1 + prevDx)
	if dx == 0 && dy == 0 {
		return false
	}

	tx, ty := prevDx+dx, prevDy+dy
	for _, n := range append(xs, ys...) {
		setNum(n, "data-dx", tx)
		setNum(n, "data-dy", ty)
		n.SetAttr("transform", style.Translate(tx, ty))
	}
	return true
}

func setNum(n *scene.Node, name string, v float64) {
	n.SetAttr(name, plot.FormatNumber(v))
}

func num(n *scene.Node, name string) (float64, bool) {
	s, ok := n.Attr(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func numOr(n *scene.Node, name string) float64 {
	v, _ := num(n, name)
	return v
}

// intAttr reads a pixel attribute truncated to an integer, the way the
// hover layer reads its own line endpoints.
func intAttr(n *scene.Node, name string) (float64, bool) {
	v, ok := num(n, name)
	return math.Trunc(v), ok
}
