package decimate

import (
	"math"
	"testing"

	"github.com/gogpu/plot/axis"
	"github.com/gogpu/plot/trace"
)

func intp(v int) *int { return &v }

func calcTrace(n int, maxDisplayed *int) trace.CalcTrace {
	tr := &trace.Trace{Mode: trace.ModeMarkers}
	tr.Marker.MaxDisplayed = maxDisplayed
	tr.Y = make([]float64, n)
	for i := range tr.Y {
		tr.Y[i] = float64(i)
	}
	return trace.Calc(tr)
}

func axes() (axis.Axis, axis.Axis) {
	return axis.New("x", 0, 9, 100), axis.New("y", 0, 9, 100)
}

func TestSelectInactive(t *testing.T) {
	xa, ya := axes()
	cd := []trace.CalcTrace{calcTrace(10, nil)}
	if v := Select(cd, 0, xa, ya); v != nil {
		t.Errorf("no cap: got %v, want nil", v)
	}
	cd[0].Trace.Mode = trace.ModeLines
	cd[0].Trace.Marker.MaxDisplayed = intp(3)
	if v := Select(cd, 0, xa, ya); v != nil {
		t.Errorf("lines only: got %v, want nil", v)
	}
	if !Visibility(nil).Visible(4) {
		t.Error("nil visibility should show every point")
	}
}

func TestSelectZero(t *testing.T) {
	xa, ya := axes()
	v := Select([]trace.CalcTrace{calcTrace(10, intp(0))}, 0, xa, ya)
	if v == nil || v.Count() != 0 || len(v) != 10 {
		t.Errorf("maxdisplayed=0: %v", v)
	}
}

func TestSelectAllWhenCapExceedsPoints(t *testing.T) {
	xa, ya := axes()
	for _, m := range []int{10, 25} {
		v := Select([]trace.CalcTrace{calcTrace(10, intp(m))}, 0, xa, ya)
		if v.Count() != 10 {
			t.Errorf("maxdisplayed=%d: %d visible, want 10", m, v.Count())
		}
	}
}

func TestSelectThreeOfTen(t *testing.T) {
	xa, ya := axes()
	v := Select([]trace.CalcTrace{calcTrace(10, intp(3))}, 0, xa, ya)
	// inc = ceil(10/3) = 4, phase 0: points 0, 4, 8.
	want := []bool{true, false, false, false, true, false, false, false, true, false}
	for i := range want {
		if v[i] != want[i] {
			t.Fatalf("visibility = %v, want %v", v, want)
		}
	}
	inc := math.Ceil(10.0 / 3)
	if c := v.Count(); math.Abs(float64(c)-math.Ceil(10/inc)) > 1 {
		t.Errorf("count = %d, not within one of ceil(|V|/inc)", c)
	}
}

func TestSelectStaggersTraces(t *testing.T) {
	xa, ya := axes()
	cd := []trace.CalcTrace{calcTrace(10, intp(3)), calcTrace(10, intp(3))}
	first := Select(cd, 0, xa, ya)
	second := Select(cd, 1, xa, ya)
	// tnum = 1: i0 = round(4/3) = 1, visible where (i+1) % 4 == 0.
	for _, i := range []int{3, 7} {
		if !second[i] {
			t.Errorf("second trace point %d should be visible: %v", i, second)
		}
	}
	same := 0
	for i := range first {
		if first[i] && second[i] {
			same++
		}
	}
	if same != 0 {
		t.Errorf("staggered traces share %d markers", same)
	}
}

func TestSelectViewportOnly(t *testing.T) {
	xa := axis.New("x", 2, 7, 100)
	ya := axis.New("y", 0, 9, 100)
	v := Select([]trace.CalcTrace{calcTrace(10, intp(100))}, 0, xa, ya)
	for i, on := range v {
		want := i >= 2 && i <= 7
		if on != want {
			t.Errorf("point %d visible = %v, want %v", i, on, want)
		}
	}
}

func TestSelectFreshEachCall(t *testing.T) {
	xa, ya := axes()
	cd := []trace.CalcTrace{calcTrace(10, intp(3))}
	a := Select(cd, 0, xa, ya)
	a[1] = true
	b := Select(cd, 0, xa, ya)
	if b[1] {
		t.Error("stale flag leaked into a new selection")
	}
}
