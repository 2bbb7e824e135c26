// Package reconcile joins calc-data points to the retained marker and
// text nodes of a trace. Points are matched to the nodes of the previous
// render by key: new keys create nodes, known keys update their node in
// place (animated when transitions are enabled) and missing keys remove
// theirs. Re-running a join with unchanged data changes nothing.
package reconcile

import (
	"strconv"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/axis"
	"github.com/gogpu/plot/scene"
	"github.com/gogpu/plot/style"
	"github.com/gogpu/plot/trace"
)

// Strategy decides the key of a point.
type Strategy struct {
	id func(p trace.CalcPoint) string
}

// Keyed matches points by an identifier derived from the point.
func Keyed(id func(p trace.CalcPoint) string) Strategy {
	return Strategy{id: id}
}

// Positional matches points by their position among the displayed points.
func Positional() Strategy {
	return Strategy{}
}

// For returns the strategy of tr: keyed by point id when tr carries ids,
// positional otherwise.
func For(tr *trace.Trace) Strategy {
	if len(tr.IDs) > 0 {
		return Keyed(func(p trace.CalcPoint) string { return p.ID })
	}
	return Positional()
}

// IsKeyed reports whether s matches by identifier.
func (s Strategy) IsKeyed() bool { return s.id != nil }

// Key returns the key of p, displayed at position pos.
func (s Strategy) Key(p trace.CalcPoint, pos int) string {
	if s.id != nil {
		return s.id(p)
	}
	return strconv.Itoa(pos)
}

// Binding maps keys to the nodes they were joined to. It is carried
// from one render of a trace to the next.
type Binding map[string]*scene.Node

// Filter reports whether the point at index i is displayed.
type Filter func(i int, p trace.CalcPoint) bool

// Join describes one join of points into a group.
type Join struct {
	Group      *scene.Node
	Binding    Binding
	Strategy   Strategy
	Filter     Filter
	Transition scene.TransitionConfig
}

// Result counts what a join did.
type Result struct {
	Entered int
	Updated int
	// Changed counts updated nodes that had at least one value changed.
	Changed int
	Exited  int
	// Nodes is the number of nodes bound after the join.
	Nodes int
}

// Idle reports whether the join created, changed and removed nothing.
func (r Result) Idle() bool {
	return r.Entered == 0 && r.Changed == 0 && r.Exited == 0
}

// tracker records whether any value set through it changed.
type tracker struct {
	t       scene.Target
	changed bool
}

func (c *tracker) SetAttr(name, value string) bool {
	ch := c.t.SetAttr(name, value)
	c.changed = c.changed || ch
	return ch
}

func (c *tracker) SetStyle(name, value string) bool {
	ch := c.t.SetStyle(name, value)
	c.changed = c.changed || ch
	return ch
}

type joiner struct {
	Join
	res   Result
	keep  Binding
	order []*scene.Node
	pos   int
}

func newJoiner(j Join) *joiner {
	if j.Binding == nil {
		j.Binding = Binding{}
	}
	return &joiner{Join: j, keep: Binding{}}
}

// next returns the key of p, or false when p is filtered out or its key
// was already used by an earlier point.
func (j *joiner) next(i int, p trace.CalcPoint) (string, bool) {
	if j.Filter != nil && !j.Filter(i, p) {
		return "", false
	}
	key := j.Strategy.Key(p, j.pos)
	j.pos++
	if _, dup := j.keep[key]; dup {
		plot.Logger().Debug("reconcile: duplicate point key", "key", key, "index", i)
		return "", false
	}
	return key, true
}

// bound returns the node previously joined to key, if it is still
// attached to the group.
func (j *joiner) bound(key string) *scene.Node {
	n := j.Binding[key]
	if n == nil || n.Parent() != j.Group {
		return nil
	}
	return n
}

func (j *joiner) fadeIn(n *scene.Node) {
	if !j.Transition.Enabled() {
		return
	}
	n.SetStyle("opacity", "0")
	n.Transition(j.Transition).SetStyle("opacity", "1")
}

func (j *joiner) bind(key string, n *scene.Node) {
	j.keep[key] = n
	j.order = append(j.order, n)
}

// finish removes the nodes of unmatched keys, replaces the binding and
// puts the bound nodes into data order.
func (j *joiner) finish() Result {
	for key, n := range j.Binding {
		if j.keep[key] == n {
			continue
		}
		delete(j.Binding, key)
		if n.Parent() == nil {
			continue
		}
		j.res.Exited++
		if j.Transition.Enabled() {
			tw := n.Transition(j.Transition)
			tw.SetStyle("opacity", "0")
			tw.Remove()
			continue
		}
		n.Remove()
	}
	for key, n := range j.keep {
		j.Binding[key] = n
	}
	j.Group.Order(j.order)
	j.res.Nodes = len(j.order)
	return j.res
}

// Markers joins the displayed points of tr to path.point nodes of
// j.Group. When hideOutside is set, markers outside the subplot are
// hidden instead of drawn.
func Markers(j Join, points []trace.CalcPoint, tr *trace.Trace, xa, ya axis.Axis, hideOutside bool) Result {
	jn := newJoiner(j)
	fns := style.NewPointStyleFns(tr)
	for i, p := range points {
		key, ok := jn.next(i, p)
		if !ok {
			continue
		}
		pt := p.Pixel(xa, ya)
		n := jn.bound(key)
		if n == nil {
			if !pt.IsFinite() {
				continue
			}
			n = jn.Group.Append("path", "point")
			style.SinglePointStyle(n, p, fns)
			style.TranslatePoint(n, n, pt)
			if hideOutside {
				style.HideOutsideRange(n, pt, xa, ya)
			}
			jn.fadeIn(n)
			jn.res.Entered++
			jn.bind(key, n)
			continue
		}

		t := &tracker{t: n.Animate(jn.Transition)}
		style.SinglePointStyle(t, p, fns)
		if !style.TranslatePoint(n, t, pt) {
			jn.res.Exited++
			continue
		}
		if hideOutside && style.HideOutsideRange(n, pt, xa, ya) {
			t.changed = true
		}
		jn.res.Updated++
		if t.changed {
			jn.res.Changed++
		}
		jn.bind(key, n)
	}
	return jn.finish()
}

// Texts joins the labelled points of tr to g.textpoint groups of
// j.Group. markerRadius returns the radius the label is offset by.
func Texts(j Join, points []trace.CalcPoint, tr *trace.Trace, xa, ya axis.Axis, markerRadius func(trace.CalcPoint) float64) Result {
	jn := newJoiner(j)
	for i, p := range points {
		key, ok := jn.next(i, p)
		if !ok {
			continue
		}
		pt := p.Pixel(xa, ya)
		g := jn.bound(key)
		entering := g == nil
		if entering {
			if !pt.IsFinite() || p.Text == "" {
				continue
			}
			g = jn.Group.Append("g", "textpoint")
		}

		r := 0.0
		if markerRadius != nil {
			r = markerRadius(p)
		}
		ok, styled := style.TextPointStyle(g, p, tr, r)
		if !ok {
			g.Remove()
			if !entering {
				jn.res.Exited++
			}
			continue
		}

		tx := g.ChildMatching("text")
		var t *tracker
		if entering {
			t = &tracker{t: tx}
		} else {
			t = &tracker{t: tx.Animate(jn.Transition)}
		}
		if !pt.IsFinite() {
			g.Remove()
			if !entering {
				jn.res.Exited++
			}
			continue
		}
		placeText(tx, t, pt, entering, jn.Transition)

		if entering {
			jn.fadeIn(g)
			jn.res.Entered++
		} else {
			jn.res.Updated++
			if styled || t.changed {
				jn.res.Changed++
			}
		}
		jn.bind(key, g)
	}
	return jn.finish()
}

// placeText positions a label at pt. The dy of each tspan.line is an em
// offset from the label position, so every line carries x and y too.
func placeText(tx *scene.Node, t *tracker, pt plot.Point, entering bool, cfg scene.TransitionConfig) {
	x, y := plot.FormatNumber(pt.X), plot.FormatNumber(pt.Y)
	t.SetAttr("x", x)
	t.SetAttr("y", y)
	for _, ts := range tx.ChildrenMatching("tspan.line") {
		lt := &tracker{t: ts}
		if !entering {
			lt.t = ts.Animate(cfg)
		}
		lt.SetAttr("x", x)
		lt.SetAttr("y", y)
		t.changed = t.changed || lt.changed
	}
}
