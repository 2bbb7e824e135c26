package style

import (
	"math"
	"strings"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/scene"
	"github.com/gogpu/plot/trace"
)

// DashArray returns the stroke-dasharray of a named dash style scaled to
// the line width. Custom dash lists such as "5px,10px" pass through;
// "solid" and the empty string give "".
func DashArray(dash string, width float64) string {
	dlw := plot.FormatNumber(math.Max(width, 3))
	d := math.Max(width, 3)
	f := func(k float64) string { return plot.FormatNumber(k*d) + "px" }
	switch dash {
	case "", "solid":
		return ""
	case "dot":
		return dlw + "px," + dlw + "px"
	case "dash":
		return f(3) + "," + f(3)
	case "longdash":
		return f(5) + "," + f(5)
	case "dashdot":
		return f(3) + "," + f(1) + "," + f(1) + "," + f(1)
	case "longdashdot":
		return f(5) + "," + f(2) + "," + f(1) + "," + f(2)
	}
	return strings.ReplaceAll(dash, " ", ",")
}

// LineStyle applies the line style of tr to a line path.
func LineStyle(t scene.Target, tr *trace.Trace) {
	t.SetStyle("fill", "none")
	t.SetStyle("stroke", cssColor(tr.Line.Color))
	t.SetStyle("stroke-width", plot.FormatNumber(tr.Line.Width)+"px")
	if da := DashArray(tr.Line.Dash, tr.Line.Width); da != "" {
		t.SetStyle("stroke-dasharray", da)
	}
}

// FillStyle applies the fill color of tr to a fill path.
func FillStyle(t scene.Target, tr *trace.Trace) {
	t.SetStyle("fill", cssColor(tr.FillColor))
	t.SetStyle("stroke-width", "0")
}
