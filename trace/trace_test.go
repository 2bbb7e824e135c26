package trace

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/gogpu/plot/axis"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"lines", ModeLines, false},
		{"lines+markers", ModeLines | ModeMarkers, false},
		{"markers+text", ModeMarkers | ModeText, false},
		{"none", ModeNone, false},
		{"dots", ModeNone, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if !tt.wantErr && got.String() != tt.in {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestFillMode(t *testing.T) {
	tests := []struct {
		f      FillMode
		zero   bool
		next   bool
		alongY bool
	}{
		{FillToZeroY, true, false, true},
		{FillToZeroX, true, false, false},
		{FillToNextY, false, true, true},
		{FillToNextX, false, true, false},
		{FillToNext, false, true, false},
		{FillToSelf, false, false, false},
		{FillNone, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.f.String(), func(t *testing.T) {
			if tt.f.IsToZero() != tt.zero || tt.f.IsToNext() != tt.next || tt.f.AlongY() != tt.alongY {
				t.Errorf("%v: IsToZero=%v IsToNext=%v AlongY=%v", tt.f,
					tt.f.IsToZero(), tt.f.IsToNext(), tt.f.AlongY())
			}
			back, err := ParseFillMode(tt.f.String())
			if err != nil || back != tt.f {
				t.Errorf("ParseFillMode(%q) = %v, %v", tt.f, back, err)
			}
		})
	}
}

func TestVisibleJSON(t *testing.T) {
	tests := map[string]Visible{
		`true`:         VisibleTrue,
		`false`:        VisibleFalse,
		`"legendonly"`: VisibleLegendOnly,
	}
	for in, want := range tests {
		var v Visible
		if err := json.Unmarshal([]byte(in), &v); err != nil {
			t.Fatalf("Unmarshal(%s): %v", in, err)
		}
		if v != want {
			t.Errorf("Unmarshal(%s) = %v, want %v", in, v, want)
		}
	}
	var v Visible
	if err := json.Unmarshal([]byte(`"maybe"`), &v); err == nil {
		t.Error("Unmarshal(maybe) should fail")
	}
}

func TestCalcMergesPerPointArrays(t *testing.T) {
	tr := &Trace{
		X:    []float64{0, 1, 2},
		Y:    []float64{5, 6, 7, 8},
		IDs:  []string{"a", "b", "c"},
		Text: []string{"one"},
		Marker: Marker{
			Sizes:  []float64{10, 12},
			Colors: []string{"red"},
		},
	}
	cd := Calc(tr)
	if cd.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", cd.Len())
	}
	p := cd.Points[1]
	if p.X != 1 || p.Y != 6 || p.ID != "b" || p.Size != 12 || p.Text != "" || p.Color != "" || p.I != 1 {
		t.Errorf("Points[1] = %+v", p)
	}
	if cd.Points[0].Text != "one" || cd.Points[0].Color != "red" {
		t.Errorf("Points[0] = %+v", cd.Points[0])
	}
}

func TestCalcDefaultX(t *testing.T) {
	cd := Calc(&Trace{Y: []float64{3, 4}})
	if cd.Points[1].X != 1 {
		t.Errorf("X = %v, want 1", cd.Points[1].X)
	}
}

func TestCalcPointPixel(t *testing.T) {
	xa := axis.New("x", 0, 10, 100)
	ya := axis.New("y", 0, 10, 100)
	got := CalcPoint{X: 2, Y: 2}.Pixel(xa, ya)
	if got.X != 20 || got.Y != 80 {
		t.Errorf("Pixel() = %v, want (20, 80)", got)
	}
	if !(CalcPoint{X: math.NaN(), Y: 1}).IsBlank() {
		t.Error("NaN point should be blank")
	}
}

func TestStack(t *testing.T) {
	a := &Trace{Y: []float64{1, 2, 3}, StackGroup: "s"}
	b := &Trace{Y: []float64{1, math.NaN(), 1}, StackGroup: "s"}
	c := &Trace{Y: []float64{1, 1, 1}}
	for i, tr := range []*Trace{a, b, c} {
		tr.SetDefaults(i)
	}
	cd := CalcAll([]*Trace{a, b, c})
	Stack(cd)

	wantB := []float64{2, 2, 4}
	for i, w := range wantB {
		if got := cd[1].Points[i].Y; got != w {
			t.Errorf("b[%d].Y = %v, want %v", i, got, w)
		}
	}
	if !cd[1].Points[1].Gap {
		t.Error("b[1] should be a gap point")
	}
	if cd[2].Points[0].Y != 1 {
		t.Errorf("unstacked trace changed: %v", cd[2].Points[0].Y)
	}
}

func TestStackInterpolate(t *testing.T) {
	tr := &Trace{Y: []float64{0, math.NaN(), 4}, StackGroup: "s", StackGaps: StackGapsInterpolate}
	cd := CalcAll([]*Trace{tr})
	Stack(cd)
	if got := cd[0].Points[1].Y; got != 2 {
		t.Errorf("interpolated Y = %v, want 2", got)
	}
}

func TestSetDefaults(t *testing.T) {
	tr := &Trace{Fill: FillToZeroY}
	tr.SetDefaults(1)
	if tr.Line.Color != "#ff7f0e" || tr.Marker.Color != "#ff7f0e" {
		t.Errorf("colors = %q, %q", tr.Line.Color, tr.Marker.Color)
	}
	if tr.FillColor != "rgba(255,127,14,0.5)" {
		t.Errorf("FillColor = %q", tr.FillColor)
	}
	if !tr.Clips() || !tr.Line.ShouldSimplify() {
		t.Error("Clips and Simplify should default to true")
	}
}
