package fill

import (
	"strings"
	"testing"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/axis"
	"github.com/gogpu/plot/trace"
)

func geometry(pts ...plot.Point) *Geometry {
	fwd := plot.BuildLine(pts, plot.ShapeLinear, 0)
	first, last := pts[0], pts[len(pts)-1]
	rev := plot.BuildLineReversed(append([]plot.Point(nil), pts...), plot.ShapeLinear, 0)
	return &Geometry{Full: fwd, Reversed: rev, First: first, Last: last}
}

func TestBuildToZeroY(t *testing.T) {
	xa := axis.New("x", 0, 2, 200)
	ya := axis.New("y", 0, 1, 100)
	g := geometry(plot.Pt(0, 100), plot.Pt(100, 0), plot.Pt(200, 100))
	p := Build(Input{Mode: trace.FillToZeroY, Full: g.Full, First: g.First, Last: g.Last, XAxis: xa, YAxis: ya})
	if got, want := p.String(), "M0,100L100,0L200,100L200,100L0,100Z"; got != want {
		t.Errorf("fill = %q, want %q", got, want)
	}
	if g.Full.String() != "M0,100L100,0L200,100" {
		t.Error("Build modified the forward path")
	}
}

func TestBuildToZeroX(t *testing.T) {
	xa := axis.New("x", -1, 1, 200)
	ya := axis.New("y", 0, 1, 100)
	g := geometry(plot.Pt(150, 10), plot.Pt(180, 90))
	p := Build(Input{Mode: trace.FillToZeroX, Full: g.Full, First: g.First, Last: g.Last, XAxis: xa, YAxis: ya})
	if got, want := p.String(), "M150,10L180,90L100,90L100,10Z"; got != want {
		t.Errorf("fill = %q, want %q", got, want)
	}
}

func TestBuildToZeroLogClamps(t *testing.T) {
	xa := axis.New("x", 0, 10, 100)
	ya := axis.New("y", 0, 2, 100, axis.WithType(axis.Log))
	g := geometry(plot.Pt(0, 50), plot.Pt(100, 0))
	p := Build(Input{Mode: trace.FillToZeroY, Full: g.Full, First: g.First, Last: g.Last, XAxis: xa, YAxis: ya})
	if p == nil {
		t.Fatal("log axis fill should clamp zero, not vanish")
	}
	for _, pt := range p.Points()[2:] {
		if pt.Y <= 100 {
			t.Errorf("zero line at %v, want below the subplot", pt.Y)
		}
	}
}

func TestBuildToNext(t *testing.T) {
	prev := geometry(plot.Pt(0, 80), plot.Pt(100, 80))
	cur := geometry(plot.Pt(0, 20), plot.Pt(100, 40))
	p := Build(Input{Mode: trace.FillToNextY, Full: cur.Full, PrevReversed: prev.Reversed})
	if got, want := p.String(), "M0,20L100,40L100,80L0,80Z"; got != want {
		t.Errorf("fill = %q, want %q", got, want)
	}
	if Build(Input{Mode: trace.FillToNextY, Full: cur.Full}) != nil {
		t.Error("tonext without a preceding path should not fill")
	}
}

func TestBuildToNextModes(t *testing.T) {
	prev := geometry(plot.Pt(0, 80), plot.Pt(100, 80))
	cur := geometry(plot.Pt(0, 20), plot.Pt(100, 40))
	// every tonext mode joins both lines into one closed loop
	for _, mode := range []trace.FillMode{trace.FillToNext, trace.FillToNextX, trace.FillToNextY} {
		t.Run(mode.String(), func(t *testing.T) {
			p := Build(Input{Mode: mode, Full: cur.Full, PrevReversed: prev.Reversed})
			if got, want := p.String(), "M0,20L100,40L100,80L0,80Z"; got != want {
				t.Errorf("fill = %q, want %q", got, want)
			}
		})
	}
}

func TestBuildToSelfAndNone(t *testing.T) {
	g := geometry(plot.Pt(0, 0), plot.Pt(10, 0), plot.Pt(10, 10))
	if got := Build(Input{Mode: trace.FillToSelf, Full: g.Full}).String(); got != "M0,0L10,0L10,10Z" {
		t.Errorf("toself = %q", got)
	}
	if Build(Input{Mode: trace.FillNone, Full: g.Full}) != nil {
		t.Error("fill none built a path")
	}
	if Build(Input{Mode: trace.FillToSelf}) != nil {
		t.Error("empty path built a fill")
	}
}

func TestComposeChain(t *testing.T) {
	xa := axis.New("x", 0, 1, 100)
	ya := axis.New("y", 0, 1, 100)
	geoms := []*Geometry{
		geometry(plot.Pt(0, 80), plot.Pt(100, 80)),
		nil, // markers only: not part of the chain
		geometry(plot.Pt(0, 50), plot.Pt(100, 50)),
		geometry(plot.Pt(0, 20), plot.Pt(100, 20)),
	}
	modes := []trace.FillMode{trace.FillToNextY, trace.FillToNextY, trace.FillToNextY, trace.FillToZeroY}
	fills := Compose(modes, geoms, xa, ya)
	if len(fills) != 2 {
		t.Fatalf("fills = %d, want 2", len(fills))
	}
	next := fills[0]
	if next.Trace != 2 || next.Owner != 0 || next.Kind != KindNext {
		t.Errorf("tonext fill = %+v", next)
	}
	if !strings.HasSuffix(next.Path.String(), "L100,80L0,80Z") {
		t.Errorf("tonext path = %q", next.Path)
	}
	zero := fills[1]
	if zero.Trace != 3 || zero.Owner != 3 || zero.Kind != KindZero {
		t.Errorf("tozero fill = %+v", zero)
	}
	if KindNext.Class() != "tonext" || KindZero.Class() != "tozero" {
		t.Error("unexpected kind classes")
	}
}
