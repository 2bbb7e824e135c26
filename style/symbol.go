// Package style applies trace styles to scene nodes: marker symbols,
// per-point marker style, point and label placement, line and fill
// styling.
package style

import (
	"math"
	"strings"

	"github.com/gogpu/plot"
)

// symbolFunc returns the path of a symbol of radius r centred on the
// origin.
type symbolFunc func(r float64) *plot.Path

var symbols = map[string]symbolFunc{
	"circle": func(r float64) *plot.Path {
		return plot.BuildPath().Circle(0, 0, r).Build()
	},
	"square": func(r float64) *plot.Path {
		return plot.BuildPath().Rect(-r, -r, 2*r, 2*r).Build()
	},
	"diamond": func(r float64) *plot.Path {
		rd := r * 1.3
		return plot.BuildPath().Polyline(plot.Pt(rd, 0), plot.Pt(0, rd), plot.Pt(-rd, 0), plot.Pt(0, -rd)).Build()
	},
	"cross": func(r float64) *plot.Path {
		rc, rc2 := fmtR(r*0.4), fmtR(r*1.2)
		return mustParse("M" + rc2 + "," + rc + "H" + rc + "V" + rc2 + "H-" + rc +
			"V" + rc + "H-" + rc2 + "V-" + rc + "H-" + rc + "V-" + rc2 +
			"H" + rc + "V-" + rc + "H" + rc2 + "Z")
	},
	"x": func(r float64) *plot.Path {
		rx := fmtR(r * 0.8 / math.Sqrt2)
		ne := "l" + rx + "," + rx
		se := "l" + rx + ",-" + rx
		sw := "l-" + rx + ",-" + rx
		nw := "l-" + rx + "," + rx
		return mustParse("M0," + rx + ne + se + sw + se + sw + nw + sw + nw + ne + nw + ne + "Z")
	},
	"triangle-up": func(r float64) *plot.Path {
		rt, r2, rs := fmtR(r*2/math.Sqrt(3)), fmtR(r/2), fmtR(r)
		return mustParse("M-" + rt + "," + r2 + "H" + rt + "L0,-" + rs + "Z")
	},
	"triangle-down": func(r float64) *plot.Path {
		rt, r2, rs := fmtR(r*2/math.Sqrt(3)), fmtR(r/2), fmtR(r)
		return mustParse("M-" + rt + ",-" + r2 + "H" + rt + "L0," + rs + "Z")
	},
	"triangle-left": func(r float64) *plot.Path {
		rt, r2, rs := fmtR(r*2/math.Sqrt(3)), fmtR(r/2), fmtR(r)
		return mustParse("M" + r2 + ",-" + rt + "V" + rt + "L-" + rs + ",0Z")
	},
	"triangle-right": func(r float64) *plot.Path {
		rt, r2, rs := fmtR(r*2/math.Sqrt(3)), fmtR(r/2), fmtR(r)
		return mustParse("M-" + r2 + ",-" + rt + "V" + rt + "L" + rs + ",0Z")
	},
	"pentagon": func(r float64) *plot.Path {
		return plot.BuildPath().Polygon(0, 0, r*1.05, 5, -math.Pi/2).Build()
	},
	"hexagon": func(r float64) *plot.Path {
		return plot.BuildPath().Polygon(0, 0, r*1.05, 6, -math.Pi/2).Build()
	},
	"star": func(r float64) *plot.Path {
		return plot.BuildPath().Star(0, 0, r*1.4, r*0.55, 5).Build()
	},
}

// ParseSymbol splits a symbol name into its base shape and whether the
// open (unfilled) variant is requested. Unknown names are circles.
func ParseSymbol(name string) (base string, open bool) {
	base = strings.TrimSpace(strings.ToLower(name))
	if b, ok := strings.CutSuffix(base, "-open"); ok {
		base, open = b, true
	}
	if _, ok := symbols[base]; !ok {
		base = "circle"
	}
	return base, open
}

// SymbolPath returns the path of the named symbol with the given marker
// size (diameter), centred on the origin. A non-positive size gives an
// empty path.
func SymbolPath(name string, size float64) *plot.Path {
	if !(size > 0) {
		return plot.NewPath()
	}
	base, _ := ParseSymbol(name)
	return symbols[base](size / 2)
}

// Symbols returns the base symbol names.
func Symbols() []string {
	names := make([]string, 0, len(symbols))
	for n := range symbols {
		names = append(names, n)
	}
	return names
}

func fmtR(v float64) string { return plot.FormatNumber(v) }

func mustParse(d string) *plot.Path {
	p, err := plot.ParsePath(d)
	if err != nil {
		panic("style: bad symbol path " + d + ": " + err.Error())
	}
	return p
}
