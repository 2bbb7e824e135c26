// Package axis converts between data coordinates and subplot pixels.
//
// Three coordinate spaces are involved, named after their role:
//   - calc (c): data values as stored in calc-data
//   - linearized (l): calc values after the axis transform (log10 for log axes)
//   - range (r): the units the axis range is expressed in (linearized for
//     the axis types supported here)
//
// Pixels are measured from the start of the subplot along the axis.
// Vertical axes put the top of the range at pixel 0.
package axis

import (
	"fmt"
	"math"
	"strings"
)

// Axis is the read-only view of an axis the renderer needs.
type Axis interface {
	// ID returns the short axis id, for example "x" or "y2".
	ID() string
	// Name returns the layout attribute name, for example "xaxis" or "yaxis2".
	Name() string
	// C2P converts a calc value to pixels. With clamp set, values the
	// axis transform cannot represent (non-positive values on log axes)
	// map far outside the visible range instead of NaN.
	C2P(v float64, clamp bool) float64
	// L2C converts a linearized value to calc.
	L2C(l float64) float64
	// R2C converts a range value to calc.
	R2C(r float64) float64
	// Range returns the visible range in range units.
	Range() [2]float64
	// LinearRange returns the visible range in linearized units.
	LinearRange() [2]float64
	// Length returns the axis length in pixels.
	Length() float64
}

// Type is the axis transform.
type Type uint8

const (
	// Linear axes map calc values to pixels affinely.
	Linear Type = iota
	// Log axes map log10 of calc values to pixels affinely.
	Log
)

// String returns the layout name of t.
func (t Type) String() string {
	if t == Log {
		return "log"
	}
	return "linear"
}

// logClip is how many axis lengths below the range non-positive log
// values are clamped to.
const logClip = 10

// Cartesian is a linear or log axis of a 2D Cartesian subplot.
type Cartesian struct {
	id       string
	name     string
	typ      Type
	rng      [2]float64
	length   float64
	vertical bool

	// pixel = b + m*linearized
	m, b float64
}

// Option configures a Cartesian axis.
type Option func(*Cartesian)

// Vertical makes the axis run top to bottom: the end of the range is at
// pixel 0.
func Vertical() Option {
	return func(a *Cartesian) { a.vertical = true }
}

// WithType sets the axis transform.
func WithType(t Type) Option {
	return func(a *Cartesian) { a.typ = t }
}

// WithName overrides the layout name derived from the id.
func WithName(name string) Option {
	return func(a *Cartesian) { a.name = name }
}

// New creates an axis with the given id, range (in range units) and pixel
// length. Ids starting with "y" are vertical unless configured otherwise.
func New(id string, r0, r1, length float64, opts ...Option) *Cartesian {
	a := &Cartesian{
		id:       id,
		name:     defaultName(id),
		rng:      [2]float64{r0, r1},
		length:   length,
		vertical: strings.HasPrefix(id, "y"),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.setScale()
	return a
}

func defaultName(id string) string {
	if id == "" {
		return ""
	}
	return id[:1] + "axis" + id[1:]
}

func (a *Cartesian) setScale() {
	span := a.rng[1] - a.rng[0]
	if span == 0 || a.length <= 0 {
		a.m, a.b = math.NaN(), math.NaN()
		return
	}
	if a.vertical {
		a.m = -a.length / span
		a.b = -a.m * a.rng[1]
		return
	}
	a.m = a.length / span
	a.b = -a.m * a.rng[0]
}

// SetRange changes the visible range.
func (a *Cartesian) SetRange(r0, r1 float64) {
	a.rng = [2]float64{r0, r1}
	a.setScale()
}

// ID implements Axis.
func (a *Cartesian) ID() string { return a.id }

// Name implements Axis.
func (a *Cartesian) Name() string { return a.name }

// Type returns the axis transform.
func (a *Cartesian) Type() Type { return a.typ }

// Range implements Axis.
func (a *Cartesian) Range() [2]float64 { return a.rng }

// LinearRange implements Axis.
func (a *Cartesian) LinearRange() [2]float64 { return a.rng }

// Length implements Axis.
func (a *Cartesian) Length() float64 { return a.length }

// C2L converts a calc value to linearized units.
func (a *Cartesian) C2L(v float64, clamp bool) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return math.NaN()
	}
	if a.typ != Log {
		return v
	}
	if v > 0 {
		return math.Log10(v)
	}
	if clamp {
		r0, r1 := a.rng[0], a.rng[1]
		return 0.5 * (r0 + r1 - 3*logClip*math.Abs(r0-r1))
	}
	return math.NaN()
}

// L2C implements Axis.
func (a *Cartesian) L2C(l float64) float64 {
	if a.typ == Log {
		return math.Pow(10, l)
	}
	return l
}

// R2C implements Axis.
func (a *Cartesian) R2C(r float64) float64 {
	return a.L2C(r)
}

// L2P converts a linearized value to pixels.
func (a *Cartesian) L2P(l float64) float64 {
	if math.IsNaN(l) {
		return math.NaN()
	}
	return a.b + a.m*l
}

// C2P implements Axis.
func (a *Cartesian) C2P(v float64, clamp bool) float64 {
	return a.L2P(a.C2L(v, clamp))
}

// P2C converts pixels back to a calc value.
func (a *Cartesian) P2C(p float64) float64 {
	return a.L2C((p - a.b) / a.m)
}

// String implements fmt.Stringer.
func (a *Cartesian) String() string {
	return fmt.Sprintf("%s(%s [%g, %g] %gpx)", a.name, a.typ, a.rng[0], a.rng[1], a.length)
}

// PlotID returns the subplot id of an axis pair, for example "xy" or "x2y".
func PlotID(xa, ya Axis) string {
	return xa.ID() + ya.ID()
}
