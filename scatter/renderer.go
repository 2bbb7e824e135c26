package scatter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/axis"
	"github.com/gogpu/plot/internal/decimate"
	"github.com/gogpu/plot/internal/fill"
	"github.com/gogpu/plot/internal/reconcile"
	"github.com/gogpu/plot/internal/segment"
	"github.com/gogpu/plot/internal/spike"
	"github.com/gogpu/plot/scene"
	"github.com/gogpu/plot/style"
	"github.com/gogpu/plot/trace"
)

// Renderer draws scatter traces into subplots.
type Renderer struct {
	state      *RenderState
	log        *slog.Logger
	transition scene.TransitionConfig
	errorBars  ErrorBarPlotter
	gapPolicy  GapMarkerPolicy
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		state: newRenderState(),
		log:   plot.ComponentLogger("scatter"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns the retained state of the renderer.
func (r *Renderer) State() *RenderState { return r.state }

// Transition returns the transition configuration of the renderer.
func (r *Renderer) Transition() scene.TransitionConfig { return r.transition }

// layout is what a render knows about one trace.
type layout struct {
	ct    trace.CalcTrace
	st    *traceState
	vis   Visibility
	geom  *fill.Geometry
	lines int
}

// Plot renders cd into the scatter layer of sp, reusing the nodes of the
// previous render. Traces are processed in order. Plot fails only when sp
// or its axes are missing, or when ctx is done; a cancelled render leaves
// a partly updated scene that the next Plot corrects.
func (r *Renderer) Plot(ctx context.Context, sp *Subplot, cd []trace.CalcTrace) error {
	if sp == nil {
		return ErrNilSubplot
	}
	if sp.XAxis == nil || sp.YAxis == nil {
		return ErrNilAxis
	}
	xa, ya := sp.XAxis, sp.YAxis
	plotID := axis.PlotID(xa, ya)

	gen := r.state.begin()
	traces := make([]*layout, len(cd))
	groups := make([]*scene.Node, len(cd))
	used := make(map[string]bool, len(cd))
	for i, ct := range cd {
		key := traceKey(plotID, i, ct)
		if used[key] {
			r.log.Debug("scatter: duplicate trace key, keyed by position", "key", key, "trace", i)
			key = uniqueKey(positionalKey(plotID, i), used)
		}
		used[key] = true
		st := r.state.ensure(key, sp.Layer)
		traces[i] = &layout{ct: ct, st: st}
		groups[i] = st.group
	}
	if n := r.state.prune(sp.Layer, gen); n > 0 {
		r.log.Debug("scatter: removed stale traces", "plot", plotID, "count", n)
	}
	sp.Layer.Order(groups)

	// pass 1: error bars and lines, collecting fill geometry
	for i, tl := range traces {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("scatter: render of %s interrupted: %w", plotID, err)
		}
		tr := tl.ct.Trace
		if tr == nil || !tr.IsVisible() {
			r.reset(tl)
			continue
		}
		tl.vis = decimate.Select(cd, i, xa, ya)
		if r.errorBars != nil {
			r.errorBars.PlotErrorBars(tl.st.group.Ensure("g", "errorbars"), tl.ct, tl.vis, xa, ya)
		}
		// fills go beneath lines
		tl.st.group.Ensure("g", "fills")
		r.plotLines(tl, xa, ya)
	}

	// pass 2: fills, placed in the group of the trace that owns them
	modes := make([]trace.FillMode, len(traces))
	geoms := make([]*fill.Geometry, len(traces))
	for i, tl := range traces {
		geoms[i] = tl.geom
		if tl.ct.Trace != nil {
			modes[i] = tl.ct.Trace.Fill
		}
	}
	owned := make([][]fill.Fill, len(traces))
	for _, f := range fill.Compose(modes, geoms, xa, ya) {
		owned[f.Owner] = append(owned[f.Owner], f)
	}
	for i, tl := range traces {
		if tl.ct.Trace == nil || !tl.ct.Trace.IsVisible() {
			continue
		}
		r.placeFills(tl.st.group.Ensure("g", "fills"), owned[i], cd)
	}

	// points, text, spike-lines and clipping
	for i, tl := range traces {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("scatter: render of %s interrupted: %w", plotID, err)
		}
		if tl.ct.Trace == nil || !tl.ct.Trace.IsVisible() {
			continue
		}
		r.plotPoints(sp, tl, i)
	}
	return nil
}

// reset empties the group of a trace that is not drawn.
func (r *Renderer) reset(tl *layout) {
	tl.st.group.RemoveChildren()
	clear(tl.st.markers)
	clear(tl.st.texts)
}

// plotLines plans the segments of a trace, draws one line per segment
// and records the forward and reversed paths for the fills.
func (r *Renderer) plotLines(tl *layout, xa, ya axis.Axis) {
	tr := tl.ct.Trace
	lines := tl.st.group.Ensure("g", "lines")
	if !tr.HasLines() && tr.Fill == trace.FillNone {
		r.syncLines(lines, nil, tr)
		return
	}
	opts := segment.Options{
		ConnectGaps: tr.ConnectGaps,
		Linear:      tr.Line.Shape == plot.ShapeLinear,
	}
	if tr.Line.ShouldSimplify() {
		opts.BaseTolerance = segment.BaseTolerance(tr.Line.Width)
	}
	segments := segment.Plan(tl.ct.Points, xa, ya, opts)
	if len(segments) == 0 {
		r.syncLines(lines, nil, tr)
		return
	}

	last := segments[len(segments)-1]
	g := &fill.Geometry{
		First: segments[0][0],
		Last:  last[len(last)-1],
	}
	var drawn []*plot.Path
	for _, pts := range segments {
		p := plot.BuildLine(pts, tr.Line.Shape, tr.Line.Smoothing)
		if g.Full == nil {
			g.Full = p.Clone()
		} else {
			g.Full.Extend(p)
		}
		rev := plot.BuildLineReversed(pts, tr.Line.Shape, tr.Line.Smoothing)
		g.Reversed = rev.Extend(g.Reversed)
		if tr.HasLines() && len(pts) > 1 {
			drawn = append(drawn, p)
		}
	}
	tl.geom = g
	tl.lines = r.syncLines(lines, drawn, tr)
	r.log.Debug("scatter: lines", "trace", tr.UID, "segments", len(segments), "drawn", tl.lines)
}

// syncLines makes the path.js-line children of lines match paths.
func (r *Renderer) syncLines(lines *scene.Node, paths []*plot.Path, tr *trace.Trace) int {
	old := lines.ChildrenMatching("path.js-line")
	for i, p := range paths {
		var n *scene.Node
		var t scene.Target
		if i < len(old) {
			n = old[i]
			t = n.Animate(r.transition)
		} else {
			n = lines.Append("path", "js-line")
			t = n
		}
		t.SetAttr("d", p.String())
		style.LineStyle(t, tr)
	}
	for _, n := range old[min(len(paths), len(old)):] {
		n.Remove()
	}
	return len(paths)
}

// placeFills makes the path.js-fill children of fills match the fills
// owned by its trace: its own zero or self fill first, then the fill of
// the next trace.
func (r *Renderer) placeFills(fills *scene.Node, owned []fill.Fill, cd []trace.CalcTrace) {
	var want []*scene.Node
	for _, f := range owned {
		sel := "path.js-fill." + f.Kind.Class()
		n := fills.ChildMatching(sel)
		var t scene.Target
		if n == nil {
			n = fills.Append("path", "js-fill", f.Kind.Class())
			t = n
		} else {
			t = n.Animate(r.transition)
		}
		t.SetAttr("d", f.Path.String())
		style.FillStyle(t, cd[f.Trace].Trace)
		want = append(want, n)
	}
	keep := make(map[*scene.Node]bool, len(want))
	for _, n := range want {
		keep[n] = true
	}
	for _, n := range fills.ChildrenMatching("path.js-fill") {
		if !keep[n] {
			n.Remove()
		}
	}
	fills.Order(want)
}

// plotPoints joins the markers and labels of a trace, then adjusts
// spike-lines and clipping.
func (r *Renderer) plotPoints(sp *Subplot, tl *layout, i int) {
	tr := tl.ct.Trace
	xa, ya := sp.XAxis, sp.YAxis
	g := tl.st.group
	points := g.Ensure("g", "points")
	text := g.Ensure("g", "text")

	show := r.showFilter(tr, tl.vis)
	var hide reconcile.Filter = func(int, trace.CalcPoint) bool { return false }
	strategy := reconcile.For(tr)

	markerFilter, textFilter := hide, hide
	if tr.HasMarkers() {
		markerFilter = show
	}
	if tr.HasText() {
		textFilter = show
	}

	mres := reconcile.Markers(reconcile.Join{
		Group:      points,
		Binding:    tl.st.markers,
		Strategy:   strategy,
		Filter:     markerFilter,
		Transition: r.transition,
	}, tl.ct.Points, tr, xa, ya, sp.LayerClipID != "")

	fns := style.NewPointStyleFns(tr)
	radius := func(p trace.CalcPoint) float64 {
		if !tr.HasMarkers() {
			return 0
		}
		return fns.Radius(p)
	}
	tres := reconcile.Texts(reconcile.Join{
		Group:      text,
		Binding:    tl.st.texts,
		Strategy:   strategy,
		Filter:     textFilter,
		Transition: r.transition,
	}, tl.ct.Points, tr, xa, ya, radius)

	if !r.transition.Enabled() && mres.Nodes == 0 && tl.lines > 0 {
		if spike.Adjust(sp.HoverLayer, xa, ya) {
			r.log.Debug("scatter: moved spike-lines", "plot", sp.ID(), "trace", i)
		}
	}

	clipID := ""
	if tr.Clips() {
		clipID = sp.LayerClipID
	}
	scene.SetClipURL(points, clipID)
	scene.SetClipURL(text, clipID)
	scene.SetClipURL(g.Ensure("g", "lines"), sp.LayerClipID)
	scene.SetClipURL(g.Ensure("g", "fills"), sp.LayerClipID)

	r.log.Debug("scatter: points",
		"trace", i,
		"markers", mres.Nodes,
		"entered", mres.Entered,
		"changed", mres.Changed,
		"exited", mres.Exited,
		"labels", tres.Nodes,
	)
}

// showFilter returns the filter selecting the displayed points of tr.
func (r *Renderer) showFilter(tr *trace.Trace, vis Visibility) reconcile.Filter {
	inferZero := tr.InferZero()
	gaps := tr.StackGroup != "" && !inferZero
	switch r.gapPolicy {
	case GapMarkersAlways:
		gaps = false
	case GapMarkersNever:
		gaps = true
	}
	switch {
	case vis.Active() && gaps:
		return func(i int, p trace.CalcPoint) bool { return vis.Visible(i) && !p.Gap }
	case vis.Active():
		return func(i int, _ trace.CalcPoint) bool { return vis.Visible(i) }
	case gaps:
		return func(_ int, p trace.CalcPoint) bool { return !p.Gap }
	}
	return nil
}
