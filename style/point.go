package style

import (
	"math"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/axis"
	"github.com/gogpu/plot/scene"
	"github.com/gogpu/plot/trace"
)

// PointStyleFns resolves per-point marker attributes, falling back to
// the trace-level marker.
type PointStyleFns struct {
	Marker trace.Marker
}

// NewPointStyleFns returns the resolvers for tr.
func NewPointStyleFns(tr *trace.Trace) PointStyleFns {
	return PointStyleFns{Marker: tr.Marker}
}

// Size returns the marker diameter of p.
func (f PointStyleFns) Size(p trace.CalcPoint) float64 {
	if p.Size > 0 {
		return p.Size
	}
	return f.Marker.Size
}

// Radius returns half the marker size of p.
func (f PointStyleFns) Radius(p trace.CalcPoint) float64 {
	return f.Size(p) / 2
}

// Color returns the marker color of p.
func (f PointStyleFns) Color(p trace.CalcPoint) string {
	if p.Color != "" {
		return p.Color
	}
	return f.Marker.Color
}

// Symbol returns the marker symbol of p.
func (f PointStyleFns) Symbol(p trace.CalcPoint) string {
	if p.Symbol != "" {
		return p.Symbol
	}
	return f.Marker.Symbol
}

// SinglePointStyle applies the marker shape and colors of p to t.
func SinglePointStyle(t scene.Target, p trace.CalcPoint, fns PointStyleFns) {
	sym := fns.Symbol(p)
	_, open := ParseSymbol(sym)
	t.SetAttr("d", SymbolPath(sym, fns.Size(p)).String())

	color := cssColor(fns.Color(p))
	opacity := plot.FormatNumber(fns.Marker.OpacityOr(1))
	lw := fns.Marker.Line.Width
	lc := cssColor(fns.Marker.Line.Color)
	if open {
		if lw == 0 {
			lw = 1
		}
		lc = color
		t.SetStyle("fill", "none")
	} else {
		t.SetStyle("fill", color)
		t.SetStyle("fill-opacity", opacity)
	}
	if lc == "" {
		lc = "#444444"
	}
	t.SetStyle("stroke", lc)
	t.SetStyle("stroke-opacity", opacity)
	t.SetStyle("stroke-width", plot.FormatNumber(lw)+"px")
}

// TranslatePoint moves n to the pixel position pt through t: text nodes
// get x and y attributes, other nodes a translate transform. When pt is
// not finite n is removed and TranslatePoint returns false.
func TranslatePoint(n *scene.Node, t scene.Target, pt plot.Point) bool {
	if !pt.IsFinite() {
		n.Remove()
		return false
	}
	if n.Tag == "text" {
		t.SetAttr("x", plot.FormatNumber(pt.X))
		t.SetAttr("y", plot.FormatNumber(pt.Y))
		return true
	}
	t.SetAttr("transform", Translate(pt.X, pt.Y))
	return true
}

// Translate formats a translate transform.
func Translate(x, y float64) string {
	return "translate(" + plot.FormatNumber(x) + "," + plot.FormatNumber(y) + ")"
}

// HideOutsideRange hides n when pt lies outside the subplot spanned by
// the axes, and shows it otherwise. It reports whether n changed.
func HideOutsideRange(n *scene.Node, pt plot.Point, xa, ya axis.Axis) bool {
	if inRange(pt.X, xa.Length()) && inRange(pt.Y, ya.Length()) {
		return n.RemoveAttr("display")
	}
	return n.SetAttr("display", "none")
}

func inRange(v, length float64) bool {
	const eps = 1e-6
	return !math.IsNaN(v) && v >= -eps && v <= length+eps
}

func cssColor(s string) string {
	if s == "" {
		return ""
	}
	c, err := plot.ParseColor(s)
	if err != nil {
		plot.Logger().Warn("style: unparsable color", "color", s, "err", err)
		return s
	}
	return c.CSS()
}
