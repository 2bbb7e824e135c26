package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/plot/axis"
	"github.com/gogpu/plot/trace"
)

var (
	errUnknownExt = errors.New("scatterdemo: unknown figure format")
	errBadSet     = errors.New("scatterdemo: invalid --set")
)

// Figure is a figure file: the traces and the layout of one subplot.
type Figure struct {
	Data   []*trace.Trace `json:"data"`
	Layout Layout         `json:"layout"`
}

// Layout is the page and axis configuration.
type Layout struct {
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Margin Margin     `json:"margin"`
	XAxis  AxisLayout `json:"xaxis"`
	YAxis  AxisLayout `json:"yaxis"`
	// Transition in milliseconds; the demo finishes it before export.
	Transition int `json:"transition"`
}

// Margin is the space around the plot area in pixels.
type Margin struct {
	L float64 `json:"l"`
	R float64 `json:"r"`
	T float64 `json:"t"`
	B float64 `json:"b"`
}

// AxisLayout configures one axis. An empty range is computed from the
// data.
type AxisLayout struct {
	Type  string    `json:"type"`
	Range []float64 `json:"range"`
}

// toJSON converts figure file contents to JSON according to the file
// extension of name.
func toJSON(name string, data []byte) ([]byte, error) {
	var v any
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json":
		if !gjson.ValidBytes(data) {
			return nil, fmt.Errorf("scatterdemo: %s is not valid JSON", name)
		}
		return data, nil
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("scatterdemo: decode %s: %w", name, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("scatterdemo: decode %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("%w %q", errUnknownExt, ext)
	}
	out, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("scatterdemo: convert %s: %w", name, err)
	}
	return out, nil
}

// applySets applies path=value overrides to the JSON form of a figure.
// Values that are valid JSON are set raw, anything else as a string.
func applySets(doc []byte, sets []string) ([]byte, error) {
	for _, s := range sets {
		path, value, ok := strings.Cut(s, "=")
		if !ok || path == "" {
			return nil, fmt.Errorf("%w %q: want path=value", errBadSet, s)
		}
		var err error
		if gjson.Valid(value) {
			doc, err = sjson.SetRawBytes(doc, path, []byte(value))
		} else {
			doc, err = sjson.SetBytes(doc, path, value)
		}
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", errBadSet, s, err)
		}
	}
	return doc, nil
}

// parseFigure decodes the JSON form of a figure and fills defaults.
func parseFigure(doc []byte) (*Figure, error) {
	fig := &Figure{}
	if err := json.Unmarshal(doc, fig); err != nil {
		return nil, fmt.Errorf("scatterdemo: decode figure: %w", err)
	}
	for i, tr := range fig.Data {
		if tr == nil {
			return nil, fmt.Errorf("scatterdemo: trace %d is null", i)
		}
		// the zero Mode is "none", so only an absent key gets the default
		if !gjson.GetBytes(doc, "data."+strconv.Itoa(i)+".mode").Exists() {
			tr.Mode = trace.DefaultMode(len(tr.Y))
		}
		tr.SetDefaults(i)
	}
	l := &fig.Layout
	if l.Width <= 0 {
		l.Width = 700
	}
	if l.Height <= 0 {
		l.Height = 450
	}
	if !gjson.GetBytes(doc, "layout.margin").Exists() {
		l.Margin = Margin{L: 80, R: 80, T: 100, B: 80}
	}
	return fig, nil
}

// plotSize returns the size of the plot area.
func (l Layout) plotSize() (w, h float64) {
	return float64(l.Width) - l.Margin.L - l.Margin.R, float64(l.Height) - l.Margin.T - l.Margin.B
}

// axes builds the axes of the figure, computing missing ranges from cd.
func (fig *Figure) axes(cd []trace.CalcTrace) (*axis.Cartesian, *axis.Cartesian, error) {
	w, h := fig.Layout.plotSize()
	if w <= 0 || h <= 0 {
		return nil, nil, fmt.Errorf("scatterdemo: margins leave no plot area (%gx%g)", w, h)
	}
	xa, err := buildAxis("x", fig.Layout.XAxis, w, cd, func(p trace.CalcPoint) float64 { return p.X })
	if err != nil {
		return nil, nil, err
	}
	ya, err := buildAxis("y", fig.Layout.YAxis, h, cd, func(p trace.CalcPoint) float64 { return p.Y })
	if err != nil {
		return nil, nil, err
	}
	return xa, ya, nil
}

func buildAxis(id string, al AxisLayout, length float64, cd []trace.CalcTrace, value func(trace.CalcPoint) float64) (*axis.Cartesian, error) {
	var typ axis.Type
	switch al.Type {
	case "", "linear":
	case "log":
		typ = axis.Log
	default:
		return nil, fmt.Errorf("scatterdemo: %saxis: invalid type %q", id, al.Type)
	}
	var r0, r1 float64
	switch len(al.Range) {
	case 2:
		r0, r1 = al.Range[0], al.Range[1]
	case 0:
		r0, r1 = autorange(cd, typ, id == "y", value)
	default:
		return nil, fmt.Errorf("scatterdemo: %saxis: range needs two values", id)
	}
	return axis.New(id, r0, r1, length, axis.WithType(typ)), nil
}

// autorange returns the padded extent of the visible data in range
// units. Zero is included along the fill direction of tozero fills.
func autorange(cd []trace.CalcTrace, typ axis.Type, alongY bool, value func(trace.CalcPoint) float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	add := func(v float64) {
		if typ == axis.Log {
			if v <= 0 {
				return
			}
			v = math.Log10(v)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	for _, ct := range cd {
		if ct.Trace == nil || !ct.Trace.IsVisible() {
			continue
		}
		for _, p := range ct.Points {
			add(value(p))
		}
		if f := ct.Trace.Fill; f.IsToZero() && f.AlongY() == alongY {
			add(0)
		}
	}
	if lo > hi {
		return 0, 1
	}
	if lo == hi {
		return lo - 1, hi + 1
	}
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}
