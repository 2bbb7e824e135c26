package reconcile

import (
	"math"
	"testing"
	"time"

	"github.com/gogpu/plot/axis"
	"github.com/gogpu/plot/scene"
	"github.com/gogpu/plot/trace"
)

func testAxes() (*axis.Cartesian, *axis.Cartesian) {
	return axis.New("x", 0, 10, 100), axis.New("y", 0, 10, 100)
}

func markerTrace(ys []float64, ids ...string) *trace.Trace {
	tr := &trace.Trace{Mode: trace.ModeMarkers, Y: ys, IDs: ids}
	tr.SetDefaults(0)
	return tr
}

func transforms(g *scene.Node) []string {
	var out []string
	for _, c := range g.Children() {
		out = append(out, c.AttrOr("transform", ""))
	}
	return out
}

func TestMarkersEnterUpdateExit(t *testing.T) {
	xa, ya := testAxes()
	g := scene.New("g", "points")
	b := Binding{}
	join := Join{Group: g, Binding: b, Strategy: Positional()}

	tr := markerTrace([]float64{1, 2, 3})
	res := Markers(join, trace.Calc(tr).Points, tr, xa, ya, false)
	if res.Entered != 3 || res.Nodes != 3 {
		t.Fatalf("first join = %+v", res)
	}
	want := []string{"translate(0,90)", "translate(10,80)", "translate(20,70)"}
	for i, got := range transforms(g) {
		if got != want[i] {
			t.Errorf("marker %d transform = %q, want %q", i, got, want[i])
		}
	}

	tr2 := markerTrace([]float64{1, 5})
	res = Markers(join, trace.Calc(tr2).Points, tr2, xa, ya, false)
	if res.Entered != 0 || res.Updated != 2 || res.Changed != 1 || res.Exited != 1 {
		t.Errorf("second join = %+v", res)
	}
	if len(g.Children()) != 2 || len(b) != 2 {
		t.Errorf("after exit: %d children, %d bound", len(g.Children()), len(b))
	}
}

func TestMarkersIdempotent(t *testing.T) {
	tests := []struct {
		name string
		cfg  scene.TransitionConfig
	}{
		{"immediate", scene.TransitionConfig{}},
		{"animated", scene.TransitionConfig{Duration: 500 * time.Millisecond}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xa, ya := testAxes()
			g := scene.New("g", "points")
			join := Join{Group: g, Binding: Binding{}, Strategy: Positional(), Transition: tt.cfg}
			tr := markerTrace([]float64{1, 2, 3})
			pts := trace.Calc(tr).Points

			Markers(join, pts, tr, xa, ya, true)
			scene.Advance(g, 100*time.Millisecond)
			if res := Markers(join, pts, tr, xa, ya, true); !res.Idle() {
				t.Errorf("mid-transition rerun = %+v", res)
			}
			scene.Finish(g)
			if res := Markers(join, pts, tr, xa, ya, true); !res.Idle() || res.Updated != 3 {
				t.Errorf("settled rerun = %+v", res)
			}
			if scene.Running(g) {
				t.Error("idle rerun started a transition")
			}
		})
	}
}

func TestMarkersKeyedReorder(t *testing.T) {
	xa, ya := testAxes()
	g := scene.New("g", "points")
	join := Join{Group: g, Binding: Binding{}, Strategy: Keyed(func(p trace.CalcPoint) string { return p.ID })}

	tr := &trace.Trace{Mode: trace.ModeMarkers, X: []float64{0, 1, 2}, Y: []float64{1, 2, 3}, IDs: []string{"a", "b", "c"}}
	tr.SetDefaults(0)
	Markers(join, trace.Calc(tr).Points, tr, xa, ya, false)
	before := map[string]*scene.Node{}
	for k, n := range join.Binding {
		before[k] = n
	}

	// same points, new order
	tr2 := &trace.Trace{Mode: trace.ModeMarkers, X: []float64{2, 0, 1}, Y: []float64{3, 1, 2}, IDs: []string{"c", "a", "b"}}
	tr2.SetDefaults(0)
	res := Markers(join, trace.Calc(tr2).Points, tr2, xa, ya, false)
	if !res.Idle() {
		t.Errorf("reordered join = %+v", res)
	}
	for k, n := range join.Binding {
		if before[k] != n {
			t.Errorf("key %q rebound to a new node", k)
		}
	}
	kids := g.Children()
	for i, id := range []string{"c", "a", "b"} {
		if kids[i] != join.Binding[id] {
			t.Errorf("child %d is not the node of %q", i, id)
		}
	}
}

func TestMarkersDuplicateKeys(t *testing.T) {
	xa, ya := testAxes()
	g := scene.New("g")
	tr := markerTrace([]float64{1, 2, 3}, "a", "a", "b")
	res := Markers(Join{Group: g, Strategy: For(tr)}, trace.Calc(tr).Points, tr, xa, ya, false)
	if res.Entered != 2 {
		t.Fatalf("Entered = %d, want 2", res.Entered)
	}
	if got := g.Children()[0].AttrOr("transform", ""); got != "translate(0,90)" {
		t.Errorf("first duplicate should win, got %q", got)
	}
}

func TestMarkersFilterAndBlank(t *testing.T) {
	xa, ya := testAxes()
	g := scene.New("g")
	tr := markerTrace([]float64{1, 2, 3, 4})
	pts := trace.Calc(tr).Points
	pts[3].Y = math.NaN()
	even := func(i int, _ trace.CalcPoint) bool { return i%2 == 0 }
	res := Markers(Join{Group: g, Strategy: Positional(), Filter: even}, pts, tr, xa, ya, false)
	if res.Entered != 2 {
		t.Errorf("Entered = %d, want 2", res.Entered)
	}

	g2 := scene.New("g")
	res = Markers(Join{Group: g2, Strategy: Positional()}, pts, tr, xa, ya, false)
	if res.Entered != 3 {
		t.Errorf("blank point should produce no marker, Entered = %d", res.Entered)
	}
}

func TestMarkersHideOutside(t *testing.T) {
	xa, ya := testAxes()
	g := scene.New("g")
	tr := markerTrace([]float64{5, 20})
	Markers(Join{Group: g, Strategy: Positional()}, trace.Calc(tr).Points, tr, xa, ya, true)
	kids := g.Children()
	if _, ok := kids[0].Attr("display"); ok {
		t.Error("in-range marker hidden")
	}
	if got := kids[1].AttrOr("display", ""); got != "none" {
		t.Errorf("out-of-range marker display = %q", got)
	}
}

func TestMarkersTransitions(t *testing.T) {
	xa, ya := testAxes()
	g := scene.New("g")
	cfg := scene.TransitionConfig{Duration: time.Second, Easing: scene.EaseLinear}
	join := Join{Group: g, Binding: Binding{}, Strategy: Positional(), Transition: cfg}

	tr := markerTrace([]float64{0, 0})
	Markers(join, trace.Calc(tr).Points, tr, xa, ya, false)
	first := g.Children()[0]
	if got, _ := first.Style("opacity"); got != "0" {
		t.Errorf("entering opacity = %q, want 0", got)
	}
	scene.Finish(g)
	if got, _ := first.Style("opacity"); got != "1" {
		t.Errorf("entered opacity = %q, want 1", got)
	}

	tr2 := markerTrace([]float64{10})
	res := Markers(join, trace.Calc(tr2).Points, tr2, xa, ya, false)
	if res.Changed != 1 || res.Exited != 1 {
		t.Fatalf("join = %+v", res)
	}
	if len(g.Children()) != 2 {
		t.Fatal("exiting marker removed before its transition ended")
	}
	scene.Advance(g, 500*time.Millisecond)
	if got := first.AttrOr("transform", ""); got != "translate(0,50)" {
		t.Errorf("mid-transition transform = %q", got)
	}
	scene.Finish(g)
	if len(g.Children()) != 1 {
		t.Errorf("exited marker still attached: %d children", len(g.Children()))
	}
	if got := first.AttrOr("transform", ""); got != "translate(0,0)" {
		t.Errorf("final transform = %q", got)
	}
}

func TestTexts(t *testing.T) {
	xa, ya := testAxes()
	g := scene.New("g", "text")
	join := Join{Group: g, Binding: Binding{}, Strategy: Positional()}
	tr := &trace.Trace{Mode: trace.ModeText, Y: []float64{1, 2}, Text: []string{"a", "b<br>c"}}
	tr.SetDefaults(0)

	res := Texts(join, trace.Calc(tr).Points, tr, xa, ya, nil)
	if res.Entered != 2 {
		t.Fatalf("Entered = %d", res.Entered)
	}
	tx := g.Children()[1].ChildMatching("text")
	if got := tx.AttrOr("x", ""); got != "10" {
		t.Errorf("text x = %q", got)
	}
	if got := tx.AttrOr("y", ""); got != "80" {
		t.Errorf("text y = %q", got)
	}
	lines := tx.ChildrenMatching("tspan.line")
	if len(lines) != 2 {
		t.Fatalf("tspans = %d", len(lines))
	}
	// dy offsets count from the label position, not the previous line
	for i, ts := range lines {
		if x, y := ts.AttrOr("x", ""), ts.AttrOr("y", ""); x != "10" || y != "80" {
			t.Errorf("tspan %d at (%s, %s), want (10, 80)", i, x, y)
		}
	}

	if res := Texts(join, trace.Calc(tr).Points, tr, xa, ya, nil); !res.Idle() {
		t.Errorf("rerun = %+v", res)
	}

	tr.Text = []string{"a", ""}
	res = Texts(join, trace.Calc(tr).Points, tr, xa, ya, nil)
	if res.Exited != 1 || len(g.Children()) != 1 {
		t.Errorf("cleared label: %+v, %d children", res, len(g.Children()))
	}
}

func TestStrategy(t *testing.T) {
	p := trace.CalcPoint{ID: "k"}
	if got := Positional().Key(p, 4); got != "4" {
		t.Errorf("positional key = %q", got)
	}
	if got := For(&trace.Trace{IDs: []string{"k"}}).Key(p, 4); got != "k" {
		t.Errorf("keyed key = %q", got)
	}
	if For(&trace.Trace{}).IsKeyed() {
		t.Error("trace without ids should join positionally")
	}
}
