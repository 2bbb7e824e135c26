// Package trace holds the scatter trace model and its calc-data.
package trace

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gogpu/plot"
)

// Visible is the trace visibility.
type Visible uint8

const (
	// VisibleTrue draws the trace.
	VisibleTrue Visible = iota
	// VisibleFalse hides the trace entirely.
	VisibleFalse
	// VisibleLegendOnly hides the trace but keeps its legend entry.
	VisibleLegendOnly
)

// String returns the attribute value of v.
func (v Visible) String() string {
	switch v {
	case VisibleFalse:
		return "false"
	case VisibleLegendOnly:
		return "legendonly"
	}
	return "true"
}

// MarshalText implements encoding.TextMarshaler.
func (v Visible) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Visible) UnmarshalText(b []byte) error {
	switch string(b) {
	case "", "true":
		*v = VisibleTrue
	case "false":
		*v = VisibleFalse
	case "legendonly":
		*v = VisibleLegendOnly
	default:
		return fmt.Errorf("trace: invalid visible %q", b)
	}
	return nil
}

// UnmarshalJSON accepts a boolean or a string.
func (v *Visible) UnmarshalJSON(b []byte) error {
	var on bool
	if err := json.Unmarshal(b, &on); err == nil {
		if on {
			*v = VisibleTrue
		} else {
			*v = VisibleFalse
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("trace: invalid visible %s", b)
	}
	return v.UnmarshalText([]byte(s))
}

// Mode is the set of things drawn for each point.
type Mode uint8

const (
	// ModeLines connects the points.
	ModeLines Mode = 1 << iota
	// ModeMarkers draws a marker at each point.
	ModeMarkers
	// ModeText draws the point text.
	ModeText

	// ModeNone draws nothing; fills are still drawn.
	ModeNone Mode = 0
)

// DefaultMode returns the mode used when none is given for a trace of n
// points: lines and markers for small traces, lines only otherwise.
func DefaultMode(n int) Mode {
	if n < 20 {
		return ModeLines | ModeMarkers
	}
	return ModeLines
}

// String returns the flaglist form of m, for example "lines+markers".
func (m Mode) String() string {
	if m == ModeNone {
		return "none"
	}
	var parts []string
	if m&ModeLines != 0 {
		parts = append(parts, "lines")
	}
	if m&ModeMarkers != 0 {
		parts = append(parts, "markers")
	}
	if m&ModeText != 0 {
		parts = append(parts, "text")
	}
	return strings.Join(parts, "+")
}

// ParseMode parses a flaglist such as "lines+markers" or "none".
func ParseMode(s string) (Mode, error) {
	if s == "none" {
		return ModeNone, nil
	}
	var m Mode
	for _, part := range strings.Split(s, "+") {
		switch strings.TrimSpace(part) {
		case "lines":
			m |= ModeLines
		case "markers":
			m |= ModeMarkers
		case "text":
			m |= ModeText
		default:
			return ModeNone, fmt.Errorf("trace: invalid mode %q", s)
		}
	}
	return m, nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// FillMode selects the area a trace shades.
type FillMode uint8

const (
	FillNone FillMode = iota
	FillToZeroY
	FillToZeroX
	FillToNextY
	FillToNextX
	FillToSelf
	FillToNext
)

var fillNames = [...]string{
	FillNone:    "none",
	FillToZeroY: "tozeroy",
	FillToZeroX: "tozerox",
	FillToNextY: "tonexty",
	FillToNextX: "tonextx",
	FillToSelf:  "toself",
	FillToNext:  "tonext",
}

// String returns the attribute value of f.
func (f FillMode) String() string {
	if int(f) < len(fillNames) {
		return fillNames[f]
	}
	return "unknown"
}

// ParseFillMode parses a fill attribute value. The empty string is none.
func ParseFillMode(s string) (FillMode, error) {
	if s == "" {
		return FillNone, nil
	}
	for i, n := range fillNames {
		if n == s {
			return FillMode(i), nil
		}
	}
	return FillNone, fmt.Errorf("trace: invalid fill %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (f FillMode) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FillMode) UnmarshalText(b []byte) error {
	v, err := ParseFillMode(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// IsToZero reports whether f closes the trace to a zero line.
func (f FillMode) IsToZero() bool { return f == FillToZeroY || f == FillToZeroX }

// IsToNext reports whether f fills to the preceding trace.
func (f FillMode) IsToNext() bool {
	return f == FillToNextY || f == FillToNextX || f == FillToNext
}

// AlongY reports whether the zero line of f is y = 0.
func (f FillMode) AlongY() bool { return strings.HasSuffix(f.String(), "y") }

// StackGaps is how a stack group handles points missing from one trace.
type StackGaps string

const (
	// StackGapsInferZero treats missing points as zero.
	StackGapsInferZero StackGaps = "infer zero"
	// StackGapsInterpolate interpolates missing points from neighbors.
	StackGapsInterpolate StackGaps = "interpolate"
)

// Line is the line style of a trace.
type Line struct {
	Shape     plot.LineShape `json:"shape" yaml:"shape" toml:"shape"`
	Width     float64        `json:"width" yaml:"width" toml:"width"`
	Smoothing float64        `json:"smoothing" yaml:"smoothing" toml:"smoothing"`
	Color     string         `json:"color" yaml:"color" toml:"color"`
	Dash      string         `json:"dash" yaml:"dash" toml:"dash"`
	// Simplify drops nearly collinear points of linear lines. Nil is true.
	Simplify *bool `json:"simplify,omitempty" yaml:"simplify,omitempty" toml:"simplify,omitempty"`
}

// ShouldSimplify reports whether collinear simplification is enabled.
func (l Line) ShouldSimplify() bool { return l.Simplify == nil || *l.Simplify }

// MarkerLine is the outline of a marker.
type MarkerLine struct {
	Color string  `json:"color" yaml:"color" toml:"color"`
	Width float64 `json:"width" yaml:"width" toml:"width"`
}

// Marker is the marker style of a trace.
type Marker struct {
	// MaxDisplayed caps the number of markers drawn. Nil draws every
	// marker; zero draws none.
	MaxDisplayed *int `json:"maxdisplayed,omitempty" yaml:"maxdisplayed,omitempty" toml:"maxdisplayed,omitempty"`

	Symbol  string   `json:"symbol" yaml:"symbol" toml:"symbol"`
	Size    float64  `json:"size" yaml:"size" toml:"size"`
	Color   string   `json:"color" yaml:"color" toml:"color"`
	Opacity *float64 `json:"opacity,omitempty" yaml:"opacity,omitempty" toml:"opacity,omitempty"`
	Line    MarkerLine `json:"line" yaml:"line" toml:"line"`

	// Per-point overrides, indexed like the trace data.
	Sizes   []float64 `json:"sizes,omitempty" yaml:"sizes,omitempty" toml:"sizes,omitempty"`
	Colors  []string  `json:"colors,omitempty" yaml:"colors,omitempty" toml:"colors,omitempty"`
	Symbols []string  `json:"symbols,omitempty" yaml:"symbols,omitempty" toml:"symbols,omitempty"`
}

// Decimating reports whether the marker count is capped.
func (m Marker) Decimating() bool { return m.MaxDisplayed != nil }

// OpacityOr returns the marker opacity, or def when unset.
func (m Marker) OpacityOr(def float64) float64 {
	if m.Opacity == nil {
		return def
	}
	return *m.Opacity
}

// Font is a text font.
type Font struct {
	Family string  `json:"family" yaml:"family" toml:"family"`
	Size   float64 `json:"size" yaml:"size" toml:"size"`
	Color  string  `json:"color" yaml:"color" toml:"color"`
}

// Trace is one scatter trace.
type Trace struct {
	UID     string  `json:"uid" yaml:"uid" toml:"uid"`
	Name    string  `json:"name" yaml:"name" toml:"name"`
	Visible Visible `json:"visible" yaml:"visible" toml:"visible"`
	Mode    Mode    `json:"mode" yaml:"mode" toml:"mode"`

	X []float64 `json:"x" yaml:"x" toml:"x"`
	Y []float64 `json:"y" yaml:"y" toml:"y"`
	// IDs are per-point identifiers used to join points across updates.
	IDs []string `json:"ids,omitempty" yaml:"ids,omitempty" toml:"ids,omitempty"`

	Line      Line     `json:"line" yaml:"line" toml:"line"`
	Fill      FillMode `json:"fill" yaml:"fill" toml:"fill"`
	FillColor string   `json:"fillcolor" yaml:"fillcolor" toml:"fillcolor"`
	Marker    Marker   `json:"marker" yaml:"marker" toml:"marker"`

	Text         []string `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`
	TextPosition string   `json:"textposition" yaml:"textposition" toml:"textposition"`
	TextFont     Font     `json:"textfont" yaml:"textfont" toml:"textfont"`

	StackGroup  string    `json:"stackgroup,omitempty" yaml:"stackgroup,omitempty" toml:"stackgroup,omitempty"`
	StackGaps   StackGaps `json:"stackgaps,omitempty" yaml:"stackgaps,omitempty" toml:"stackgaps,omitempty"`
	ConnectGaps bool      `json:"connectgaps" yaml:"connectgaps" toml:"connectgaps"`
	// ClipOnAxis clips markers and text to the subplot. Nil is true.
	ClipOnAxis *bool `json:"cliponaxis,omitempty" yaml:"cliponaxis,omitempty" toml:"cliponaxis,omitempty"`
}

// HasLines reports whether the trace draws lines.
func (t *Trace) HasLines() bool { return t.Mode&ModeLines != 0 }

// HasMarkers reports whether the trace draws markers.
func (t *Trace) HasMarkers() bool { return t.Mode&ModeMarkers != 0 }

// HasText reports whether the trace draws point text.
func (t *Trace) HasText() bool { return t.Mode&ModeText != 0 }

// IsVisible reports whether the trace is drawn on the subplot.
func (t *Trace) IsVisible() bool { return t.Visible == VisibleTrue }

// Clips reports whether markers and text are clipped to the subplot.
func (t *Trace) Clips() bool { return t.ClipOnAxis == nil || *t.ClipOnAxis }

// InferZero reports whether the trace is stacked with infer-zero gaps.
func (t *Trace) InferZero() bool {
	return t.StackGroup != "" && (t.StackGaps == "" || t.StackGaps == StackGapsInferZero)
}

// SetDefaults fills unset style attributes. index selects the default
// color from the colorway.
func (t *Trace) SetDefaults(index int) {
	color := plot.Colorway[index%len(plot.Colorway)]
	if t.Line.Color == "" {
		t.Line.Color = color
	}
	if t.Line.Width == 0 {
		t.Line.Width = 2
	}
	if t.Line.Smoothing == 0 && t.Line.Shape == plot.ShapeSpline {
		t.Line.Smoothing = 1
	}
	if t.Marker.Color == "" {
		t.Marker.Color = color
	}
	if t.Marker.Size == 0 {
		t.Marker.Size = 6
	}
	if t.Marker.Symbol == "" {
		t.Marker.Symbol = "circle"
	}
	if t.TextPosition == "" {
		t.TextPosition = "middle center"
	}
	if t.TextFont.Size == 0 {
		t.TextFont.Size = 12
	}
	if t.TextFont.Color == "" {
		t.TextFont.Color = "#444"
	}
	if t.TextFont.Family == "" {
		t.TextFont.Family = `"Open Sans", verdana, arial, sans-serif`
	}
	if t.StackGroup != "" && t.StackGaps == "" {
		t.StackGaps = StackGapsInferZero
	}
	if t.Fill != FillNone && t.FillColor == "" {
		c := plot.Hex(color)
		t.FillColor = c.WithAlpha(0.5).CSS()
	}
}
