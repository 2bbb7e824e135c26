// Package fill composes the fill areas of scatter traces from the line
// geometry computed for each trace.
//
// Composition runs after the line pass has produced the forward and
// reversed paths of every trace: a fill to the next trace reads the
// stored reversed path of the preceding contributing trace instead of
// relying on state carried between loop iterations.
package fill

import (
	"github.com/gogpu/plot"
	"github.com/gogpu/plot/axis"
	"github.com/gogpu/plot/trace"
)

// Kind is the role of a fill path in its layer.
type Kind uint8

const (
	// KindZero closes a trace to the zero line.
	KindZero Kind = iota
	// KindNext fills between a trace and the preceding one.
	KindNext
	// KindSelf closes a trace onto itself.
	KindSelf
)

// Class returns the scene class of fill paths of kind k.
func (k Kind) Class() string {
	switch k {
	case KindNext:
		return "tonext"
	case KindSelf:
		return "toself"
	}
	return "tozero"
}

// Geometry is the line geometry of one trace from the first pass.
type Geometry struct {
	// Full joins every segment straight across gaps.
	Full *plot.Path
	// Reversed is Full traversed backwards, starting with a line command.
	Reversed *plot.Path
	// First and Last are the first point of the first segment and the
	// last point of the last segment.
	First, Last plot.Point
}

// Empty reports whether the trace produced no segments.
func (g *Geometry) Empty() bool {
	return g == nil || g.Full.IsEmpty()
}

// Input is everything needed to compose one fill path.
type Input struct {
	Mode         trace.FillMode
	Full         *plot.Path
	First, Last  plot.Point
	PrevReversed *plot.Path
	XAxis, YAxis axis.Axis
}

// Build returns the fill path for in, or nil when the mode draws no fill
// or its prerequisites are missing. A fill to the next trace without a
// preceding path is not an error: the first trace of a chain has
// nothing to fill to.
func Build(in Input) *plot.Path {
	if in.Full.IsEmpty() {
		return nil
	}
	switch {
	case in.Mode.IsToZero():
		first, last := in.First, in.Last
		if in.Mode.AlongY() {
			zero := in.YAxis.C2P(0, true)
			first.Y, last.Y = zero, zero
		} else {
			zero := in.XAxis.C2P(0, true)
			first.X, last.X = zero, zero
		}
		if !first.IsFinite() || !last.IsFinite() {
			return nil
		}
		p := in.Full.Clone()
		p.LineTo(last.X, last.Y)
		p.LineTo(first.X, first.Y)
		p.Close()
		return p
	case in.Mode.IsToNext():
		if in.PrevReversed.IsEmpty() {
			return nil
		}
		p := in.Full.Clone()
		p.Extend(in.PrevReversed)
		p.Close()
		return p
	case in.Mode == trace.FillToSelf:
		p := in.Full.Clone()
		p.Close()
		return p
	}
	return nil
}

// Fill is one composed fill.
type Fill struct {
	// Trace is the index of the trace the fill belongs to; its fill
	// color is used.
	Trace int
	// Owner is the index of the trace whose fill layer holds the path.
	// For fills to the next trace this is the preceding contributing
	// trace, so the fill renders beneath the lines of both.
	Owner int
	Kind  Kind
	Path  *plot.Path
}

// Compose runs the second pass over the geometry of a subplot's traces
// in order. geoms[i] is nil or empty for traces that drew no line and
// no fill; such traces neither get fills nor become the predecessor of
// the next trace.
func Compose(modes []trace.FillMode, geoms []*Geometry, xa, ya axis.Axis) []Fill {
	var fills []Fill
	prev := -1
	for i, g := range geoms {
		if g.Empty() {
			continue
		}
		mode := modes[i]
		in := Input{
			Mode:  mode,
			Full:  g.Full,
			First: g.First,
			Last:  g.Last,
			XAxis: xa,
			YAxis: ya,
		}
		owner, kind := i, KindZero
		switch {
		case mode.IsToNext():
			if prev < 0 {
				plot.Logger().Debug("fill: no preceding trace", "trace", i, "fill", mode)
				break
			}
			in.PrevReversed = geoms[prev].Reversed
			owner, kind = prev, KindNext
		case mode == trace.FillToSelf:
			kind = KindSelf
		}
		if p := Build(in); p != nil {
			fills = append(fills, Fill{Trace: i, Owner: owner, Kind: kind, Path: p})
		}
		prev = i
	}
	return fills
}
