package scene

import "time"

// Target receives attribute and style values. A *Node applies them
// immediately; a *Tween animates towards them.
type Target interface {
	SetAttr(name, value string) bool
	SetStyle(name, value string) bool
}

// TransitionConfig describes how changes animate.
type TransitionConfig struct {
	Duration time.Duration
	// Easing defaults to EaseCubicInOut.
	Easing Easing
}

// Enabled reports whether changes animate at all.
func (c TransitionConfig) Enabled() bool { return c.Duration > 0 }

func (c TransitionConfig) ease(t float64) float64 {
	if c.Easing == nil {
		return EaseCubicInOut(t)
	}
	return c.Easing(t)
}

type prop struct {
	name  string
	style bool
	from  string
	to    string
}

// Tween is a transition of one node. A tween attaches to its node the
// first time a value actually changes; attaching interrupts the tween
// already running on the node, which leaves its interpolated values in
// place and hands its unfinished targets to the new tween.
type Tween struct {
	node    *Node
	cfg     TransitionConfig
	props   []prop
	elapsed time.Duration
	remove  bool
	onEnd   []func()
}

// Transition returns a tween of n with the given timing. When cfg is not
// enabled the tween applies every value immediately.
func (n *Node) Transition(cfg TransitionConfig) *Tween {
	return &Tween{node: n, cfg: cfg}
}

// Animate returns n itself when cfg is disabled, else a new tween.
func (n *Node) Animate(cfg TransitionConfig) Target {
	if !cfg.Enabled() {
		return n
	}
	return n.Transition(cfg)
}

// Transitioning reports whether a tween is running on n.
func (n *Node) Transitioning() bool { return n.tween != nil }

// Interrupt stops the running tween, leaving the current values.
func (n *Node) Interrupt() {
	n.tween = nil
}

// SetAttr animates an attribute towards value and reports whether the
// target changed.
func (t *Tween) SetAttr(name, value string) bool {
	return t.set(name, value, false)
}

// SetStyle animates a style property towards value and reports whether
// the target changed.
func (t *Tween) SetStyle(name, value string) bool {
	return t.set(name, value, true)
}

// Remove detaches the node once the tween ends.
func (t *Tween) Remove() {
	if !t.cfg.Enabled() {
		t.node.Remove()
		return
	}
	t.remove = true
	t.attach()
}

// OnEnd registers fn to run when the tween completes.
func (t *Tween) OnEnd(fn func()) {
	t.onEnd = append(t.onEnd, fn)
}

// Active reports whether t is the tween running on its node.
func (t *Tween) Active() bool { return t.node.tween == t }

func (t *Tween) set(name, value string, style bool) bool {
	if !t.cfg.Enabled() {
		if style {
			return t.node.SetStyle(name, value)
		}
		return t.node.SetAttr(name, value)
	}
	if cur, ok := t.target(name, style); ok && cur == value {
		return false
	}
	t.attach()
	from, _ := t.node.value(name, style)
	for i := range t.props {
		if t.props[i].name == name && t.props[i].style == style {
			t.props[i].to = value
			return true
		}
	}
	t.props = append(t.props, prop{name: name, style: style, from: from, to: value})
	return true
}

// target returns the value the node is heading to: the target of t,
// else of the running tween, else the current value.
func (t *Tween) target(name string, style bool) (string, bool) {
	for _, tw := range []*Tween{t, t.node.tween} {
		if tw == nil {
			continue
		}
		for _, p := range tw.props {
			if p.name == name && p.style == style {
				return p.to, true
			}
		}
	}
	return t.node.value(name, style)
}

func (t *Tween) attach() {
	n := t.node
	old := n.tween
	if old == t {
		return
	}
	n.tween = t
	if old == nil {
		return
	}
	for _, p := range old.props {
		if t.has(p.name, p.style) {
			continue
		}
		from, _ := n.value(p.name, p.style)
		t.props = append(t.props, prop{name: p.name, style: p.style, from: from, to: p.to})
	}
}

func (t *Tween) has(name string, style bool) bool {
	for _, p := range t.props {
		if p.name == name && p.style == style {
			return true
		}
	}
	return false
}

// step advances the tween and reports whether it is still running.
func (t *Tween) step(dt time.Duration) bool {
	t.elapsed += dt
	k := 1.0
	if t.cfg.Duration > 0 && t.elapsed < t.cfg.Duration {
		k = float64(t.elapsed) / float64(t.cfg.Duration)
	}
	e := t.cfg.ease(k)
	for _, p := range t.props {
		v := p.to
		if k < 1 {
			v = Interpolate(p.from, p.to, e)
		}
		t.node.setValue(p.name, v, p.style)
	}
	if k < 1 {
		return true
	}
	t.node.tween = nil
	if t.remove {
		t.node.Remove()
	}
	for _, fn := range t.onEnd {
		fn()
	}
	return false
}

func (n *Node) value(name string, style bool) (string, bool) {
	if style {
		return n.Style(name)
	}
	return n.Attr(name)
}

func (n *Node) setValue(name, value string, style bool) {
	if style {
		n.SetStyle(name, value)
	} else {
		n.SetAttr(name, value)
	}
}

// Advance moves every tween under root forward by dt and returns the
// number still running. Nodes whose exit tween completes are removed.
func Advance(root *Node, dt time.Duration) int {
	var running []*Node
	root.Walk(func(n *Node) bool {
		if n.tween != nil {
			running = append(running, n)
		}
		return true
	})
	left := 0
	for _, n := range running {
		if tw := n.tween; tw != nil && tw.step(dt) {
			left++
		}
	}
	return left
}

// Finish runs every tween under root to completion.
func Finish(root *Node) {
	for Advance(root, time.Hour) > 0 {
	}
}

// Running reports whether any tween under root is in progress.
func Running(root *Node) bool {
	found := false
	root.Walk(func(n *Node) bool {
		if n.tween != nil {
			found = true
		}
		return !found
	})
	return found
}
