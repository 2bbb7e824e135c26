package scene

import (
	"testing"
	"time"
)

var testCfg = TransitionConfig{Duration: 100 * time.Millisecond, Easing: EaseLinear}

func TestTweenAnimates(t *testing.T) {
	n := New("path")
	n.SetAttr("transform", "translate(0,0)")
	tw := n.Transition(testCfg)
	if !tw.SetAttr("transform", "translate(10,20)") {
		t.Fatal("SetAttr should report a change")
	}
	if !n.Transitioning() {
		t.Fatal("tween should be attached")
	}
	if left := Advance(n, 50*time.Millisecond); left != 1 {
		t.Errorf("running = %d, want 1", left)
	}
	if got := n.AttrOr("transform", ""); got != "translate(5,10)" {
		t.Errorf("midway transform = %q", got)
	}
	Advance(n, 50*time.Millisecond)
	if got := n.AttrOr("transform", ""); got != "translate(10,20)" || n.Transitioning() {
		t.Errorf("final transform = %q, running %v", got, n.Transitioning())
	}
}

func TestTweenNoChangeDoesNotAttach(t *testing.T) {
	n := New("path")
	n.SetStyle("opacity", "1")
	tw := n.Transition(testCfg)
	if tw.SetStyle("opacity", "1") {
		t.Error("unchanged style reported a change")
	}
	if n.Transitioning() {
		t.Error("tween attached without a change")
	}
}

func TestTweenInterruptContinuesFromCurrent(t *testing.T) {
	n := New("path")
	n.SetAttr("x", "0")
	n.SetStyle("opacity", "0")
	first := n.Transition(testCfg)
	first.SetAttr("x", "100")
	first.SetStyle("opacity", "1")
	Advance(n, 50*time.Millisecond)

	second := n.Transition(testCfg)
	if second.SetStyle("opacity", "1") {
		t.Error("target already reached by the running tween reported a change")
	}
	if !second.SetAttr("x", "0") {
		t.Fatal("new target should report a change")
	}
	if first.Active() || !second.Active() {
		t.Fatal("second tween should replace the first")
	}
	Advance(n, 50*time.Millisecond)
	if got := n.AttrOr("x", ""); got != "25" {
		t.Errorf("x = %q, want 25 (from 50 towards 0)", got)
	}
	Finish(n)
	if got, _ := n.Style("opacity"); got != "1" {
		t.Errorf("carried opacity = %q, want 1", got)
	}
}

func TestTweenRemove(t *testing.T) {
	root := New("g")
	n := root.Append("path")
	n.SetStyle("opacity", "1")
	tw := n.Transition(testCfg)
	tw.SetStyle("opacity", "0")
	ended := false
	tw.OnEnd(func() { ended = true })
	tw.Remove()
	Advance(root, 50*time.Millisecond)
	if n.Parent() == nil {
		t.Fatal("node removed before the fade finished")
	}
	Advance(root, 50*time.Millisecond)
	if n.Parent() != nil || !ended {
		t.Error("node should be removed when the fade ends")
	}
	if Running(root) {
		t.Error("no tween should be running")
	}
}

func TestAnimateDisabled(t *testing.T) {
	n := New("path")
	target := n.Animate(TransitionConfig{})
	if target != Target(n) {
		t.Fatal("disabled config should return the node")
	}
	target.SetAttr("d", "M0,0")
	if n.AttrOr("d", "") != "M0,0" {
		t.Error("value not applied immediately")
	}
}

func TestInterpolate(t *testing.T) {
	tests := []struct {
		a, b string
		t    float64
		want string
	}{
		{"0", "10", 0.5, "5"},
		{"translate(0,0)", "translate(10,-10)", 0.25, "translate(2.5,-2.5)"},
		{"M0,0L10,10", "M10,10L20,20", 0.5, "M5,5L15,15"},
		{"#000000", "#ffffff", 1, "#ffffff"},
		{"rgba(0,0,0,0)", "#000000", 0.5, "rgba(0,0,0,0.5)"},
		{"", "translate(3,4)", 0.5, "translate(3,4)"},
		{"none", "block", 0.5, "block"},
	}
	for _, tt := range tests {
		t.Run(tt.b, func(t *testing.T) {
			if got := Interpolate(tt.a, tt.b, tt.t); got != tt.want {
				t.Errorf("Interpolate(%q, %q, %v) = %q, want %q", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}

func TestParseEasing(t *testing.T) {
	for _, name := range []string{"", "linear", "cubic", "quad-in-out", "sin-out"} {
		e, err := ParseEasing(name)
		if err != nil {
			t.Fatalf("ParseEasing(%q): %v", name, err)
		}
		if e(0) > 1e-9 || e(1) < 1-1e-9 {
			t.Errorf("%q: e(0)=%v e(1)=%v", name, e(0), e(1))
		}
	}
	if _, err := ParseEasing("wobble"); err == nil {
		t.Error("unknown easing should fail")
	}
}
