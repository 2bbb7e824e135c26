package scatter

import (
	"log/slog"
	"time"

	"github.com/gogpu/plot/axis"
	"github.com/gogpu/plot/internal/decimate"
	"github.com/gogpu/plot/scene"
	"github.com/gogpu/plot/trace"
)

// Visibility marks which markers of a trace survive decimation. A nil
// Visibility shows every marker.
type Visibility = decimate.Visibility

// ErrorBarPlotter draws the error bars of one trace into group. It runs
// before the lines and fills of the trace are built.
type ErrorBarPlotter interface {
	PlotErrorBars(group *scene.Node, cd trace.CalcTrace, vis Visibility, xa, ya axis.Axis)
}

// ErrorBarFunc adapts a function to ErrorBarPlotter.
type ErrorBarFunc func(group *scene.Node, cd trace.CalcTrace, vis Visibility, xa, ya axis.Axis)

// PlotErrorBars calls f.
func (f ErrorBarFunc) PlotErrorBars(group *scene.Node, cd trace.CalcTrace, vis Visibility, xa, ya axis.Axis) {
	f(group, cd, vis, xa, ya)
}

// GapMarkerPolicy decides whether stacking gap points get markers.
type GapMarkerPolicy uint8

const (
	// GapMarkersAuto shows gap markers only for "infer zero" stacks.
	GapMarkersAuto GapMarkerPolicy = iota
	// GapMarkersAlways shows gap markers.
	GapMarkersAlways
	// GapMarkersNever hides gap markers.
	GapMarkersNever
)

// String returns the policy name.
func (p GapMarkerPolicy) String() string {
	switch p {
	case GapMarkersAlways:
		return "always"
	case GapMarkersNever:
		return "never"
	}
	return "auto"
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger of the renderer. By default the renderer
// logs through plot.ComponentLogger("scatter") and follows plot.SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

// WithTransition animates updates for the given duration. Zero disables
// transitions.
func WithTransition(d time.Duration, easing scene.Easing) Option {
	return func(r *Renderer) {
		r.transition = scene.TransitionConfig{Duration: d, Easing: easing}
	}
}

// WithErrorBars installs the error-bar hook.
func WithErrorBars(p ErrorBarPlotter) Option {
	return func(r *Renderer) {
		r.errorBars = p
	}
}

// WithGapMarkerPolicy sets how stacking gap points are marked.
func WithGapMarkerPolicy(p GapMarkerPolicy) Option {
	return func(r *Renderer) {
		r.gapPolicy = p
	}
}
