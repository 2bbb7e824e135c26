package style

import (
	"math"
	"strings"
	"testing"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/axis"
	"github.com/gogpu/plot/scene"
	"github.com/gogpu/plot/trace"
)

func TestSymbolPath(t *testing.T) {
	for _, name := range Symbols() {
		t.Run(name, func(t *testing.T) {
			p := SymbolPath(name, 10)
			if p.IsEmpty() {
				t.Fatal("empty symbol path")
			}
			for _, pt := range p.Points() {
				if math.Abs(pt.X) > 7.5 || math.Abs(pt.Y) > 7.5 {
					t.Errorf("point %v too far from the centre", pt)
				}
			}
		})
	}
	if !SymbolPath("circle", 0).IsEmpty() {
		t.Error("zero size should give an empty path")
	}
	if got := SymbolPath("triangle-up", 6).String(); got != "M-3.46,1.5L3.46,1.5L0,-3Z" {
		t.Errorf("triangle-up = %q", got)
	}
}

func TestParseSymbol(t *testing.T) {
	tests := []struct {
		in   string
		base string
		open bool
	}{
		{"circle", "circle", false},
		{"square-open", "square", true},
		{"Diamond", "diamond", false},
		{"blob", "circle", false},
	}
	for _, tt := range tests {
		base, open := ParseSymbol(tt.in)
		if base != tt.base || open != tt.open {
			t.Errorf("ParseSymbol(%q) = %q, %v", tt.in, base, open)
		}
	}
}

func TestSinglePointStyle(t *testing.T) {
	tr := &trace.Trace{}
	tr.SetDefaults(0)
	fns := NewPointStyleFns(tr)
	n := scene.New("path", "point")

	SinglePointStyle(n, trace.CalcPoint{Size: 10, Color: "red"}, fns)
	if fill, _ := n.Style("fill"); fill != "#ff0000" {
		t.Errorf("fill = %q", fill)
	}
	if d, _ := n.Attr("d"); !strings.HasPrefix(d, "M5,0C") {
		t.Errorf("d = %q", d)
	}

	SinglePointStyle(n, trace.CalcPoint{Symbol: "square-open"}, fns)
	if fill, _ := n.Style("fill"); fill != "none" {
		t.Errorf("open fill = %q", fill)
	}
	if stroke, _ := n.Style("stroke"); stroke != "#1f77b4" {
		t.Errorf("open stroke = %q", stroke)
	}
}

func TestTranslatePoint(t *testing.T) {
	g := scene.New("g")
	p := g.Append("path", "point")
	if !TranslatePoint(p, p, plot.Pt(1.234, 5)) {
		t.Fatal("finite point should be placed")
	}
	if got := p.AttrOr("transform", ""); got != "translate(1.23,5)" {
		t.Errorf("transform = %q", got)
	}
	tx := g.Append("text")
	TranslatePoint(tx, tx, plot.Pt(3, 4))
	if tx.AttrOr("x", "") != "3" || tx.AttrOr("y", "") != "4" {
		t.Errorf("text x/y = %v", tx.Attrs())
	}
	if TranslatePoint(p, p, plot.Pt(math.NaN(), 1)) {
		t.Error("NaN point should not be placed")
	}
	if p.Parent() != nil {
		t.Error("unplaceable node should be removed")
	}
}

func TestHideOutsideRange(t *testing.T) {
	xa := axis.New("x", 0, 10, 100)
	ya := axis.New("y", 0, 10, 100)
	n := scene.New("path")
	HideOutsideRange(n, plot.Pt(120, 50), xa, ya)
	if n.AttrOr("display", "") != "none" {
		t.Error("outside point should be hidden")
	}
	HideOutsideRange(n, plot.Pt(100, 0), xa, ya)
	if _, ok := n.Attr("display"); ok {
		t.Error("edge point should be shown")
	}
}

func TestTextAnchors(t *testing.T) {
	tests := []struct{ pos, v, h string }{
		{"top left", "top", "end"},
		{"bottom right", "bottom", "start"},
		{"middle center", "middle", "middle"},
		{"top center", "top", "middle"},
	}
	for _, tt := range tests {
		v, h := TextAnchors(tt.pos)
		if v != tt.v || h != tt.h {
			t.Errorf("TextAnchors(%q) = %q, %q", tt.pos, v, h)
		}
	}
}

func TestTextPointStyle(t *testing.T) {
	tr := &trace.Trace{TextPosition: "top right"}
	tr.SetDefaults(0)
	g := scene.New("g", "textpoint")

	ok, changed := TextPointStyle(g, trace.CalcPoint{Text: "a<br>b"}, tr, 4)
	if !ok || !changed {
		t.Fatal("labelled point should be styled")
	}
	if _, again := TextPointStyle(g, trace.CalcPoint{Text: "a<br>b"}, tr, 4); again {
		t.Error("restyling with the same label reported a change")
	}
	tx := g.Select("text")
	if tx == nil || len(tx.ChildrenMatching("tspan.line")) != 2 {
		t.Fatalf("want two tspan lines")
	}
	if tx.AttrOr("text-anchor", "") != "start" {
		t.Errorf("text-anchor = %q", tx.AttrOr("text-anchor", ""))
	}
	// r = 4/0.8+1 = 6; numLines = 2.3; dy = 9 - 6 + (-2)*2.3*6 = -24.6
	if got := g.AttrOr("transform", ""); got != "translate(6,-24.6)" {
		t.Errorf("transform = %q", got)
	}

	TextPointStyle(g, trace.CalcPoint{Text: "single"}, tr, 0)
	if len(tx.ChildrenMatching("tspan.line")) != 0 || tx.Text() != "single" {
		t.Error("single line should drop the tspans")
	}
	if got := g.AttrOr("transform", ""); got != "translate(0,-3)" {
		t.Errorf("transform = %q, want translate(0,-3)", got)
	}
	if ok, _ := TextPointStyle(g, trace.CalcPoint{}, tr, 0); ok {
		t.Error("empty text should report false")
	}
}

func TestTextPointStyleRTL(t *testing.T) {
	tr := &trace.Trace{TextPosition: "middle right"}
	tr.SetDefaults(0)
	g := scene.New("g", "textpoint")
	TextPointStyle(g, trace.CalcPoint{Text: "שלום"}, tr, 0)
	tx := g.Select("text")
	if tx.AttrOr("direction", "") != "rtl" || tx.AttrOr("text-anchor", "") != "end" {
		t.Errorf("attrs = %v", tx.Attrs())
	}
}

func TestDashArray(t *testing.T) {
	tests := []struct {
		dash  string
		width float64
		want  string
	}{
		{"solid", 2, ""},
		{"dot", 2, "3px,3px"},
		{"dash", 4, "12px,12px"},
		{"dashdot", 3, "9px,3px,3px,3px"},
		{"5px 10px", 2, "5px,10px"},
	}
	for _, tt := range tests {
		if got := DashArray(tt.dash, tt.width); got != tt.want {
			t.Errorf("DashArray(%q, %v) = %q, want %q", tt.dash, tt.width, got, tt.want)
		}
	}
}

func TestLineAndFillStyle(t *testing.T) {
	tr := &trace.Trace{Fill: trace.FillToZeroY}
	tr.SetDefaults(0)
	line := scene.New("path")
	LineStyle(line, tr)
	if s, _ := line.Style("stroke-width"); s != "2px" {
		t.Errorf("stroke-width = %q", s)
	}
	fill := scene.New("path")
	FillStyle(fill, tr)
	if s, _ := fill.Style("fill"); s != "rgba(31,119,180,0.5)" {
		t.Errorf("fill = %q", s)
	}
}
