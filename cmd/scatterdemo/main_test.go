package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/gogpu/plot/axis"
	"github.com/gogpu/plot/trace"
)

const yamlFigure = `
data:
  - uid: a
    x: [0, 1, 2]
    y: [1, 3, 2]
    fill: tozeroy
  - uid: b
    mode: markers
    x: [0, 1, 2]
    y: [2, 2, 2]
layout:
  width: 300
  height: 200
  margin: {l: 0, r: 0, t: 0, b: 0}
  yaxis:
    range: [0, 4]
`

const tomlFigure = `
[[data]]
uid = "a"
x = [0, 1, 2]
y = [1, 3, 2]

[layout]
width = 300
height = 200
`

const jsonFigure = `{"data":[{"uid":"a","x":[0,1,2],"y":[1,3,2]}],"layout":{"width":300}}`

func TestToJSON(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"fig.yaml", yamlFigure, nil},
		{"fig.YML", yamlFigure, nil},
		{"fig.toml", tomlFigure, nil},
		{"fig.json", jsonFigure, nil},
		{"fig.csv", "a,b", errUnknownExt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := toJSON(tt.name, []byte(tt.data))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("toJSON() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("toJSON() error = %v", err)
			}
			if got := gjson.GetBytes(doc, "data.0.y.1").Float(); got != 3 {
				t.Errorf("data.0.y.1 = %v, want 3", got)
			}
			if got := gjson.GetBytes(doc, "layout.width").Int(); got != 300 {
				t.Errorf("layout.width = %v, want 300", got)
			}
		})
	}
	if _, err := toJSON("bad.json", []byte("{")); err == nil {
		t.Error("invalid JSON accepted")
	}
}

func TestApplySets(t *testing.T) {
	doc := []byte(jsonFigure)
	doc, err := applySets(doc, []string{
		"data.0.line.shape=spline",
		"data.0.line.width=4",
		"layout.xaxis.range=[0,10]",
	})
	if err != nil {
		t.Fatalf("applySets() error = %v", err)
	}
	tests := []struct {
		path string
		want string
	}{
		{"data.0.line.shape", "spline"},
		{"data.0.line.width", "4"},
		{"layout.xaxis.range.1", "10"},
		{"data.0.uid", "a"},
	}
	for _, tt := range tests {
		if got := gjson.GetBytes(doc, tt.path).String(); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.path, got, tt.want)
		}
	}

	for _, bad := range []string{"novalue", "=1"} {
		if _, err := applySets([]byte(jsonFigure), []string{bad}); !errors.Is(err, errBadSet) {
			t.Errorf("applySets(%q) error = %v, want errBadSet", bad, err)
		}
	}
}

func TestParseFigure(t *testing.T) {
	doc, err := toJSON("fig.yaml", []byte(yamlFigure))
	if err != nil {
		t.Fatal(err)
	}
	doc, err = applySets(doc, []string{"data.1.mode=none"})
	if err != nil {
		t.Fatal(err)
	}
	fig, err := parseFigure(doc)
	if err != nil {
		t.Fatalf("parseFigure() error = %v", err)
	}
	if len(fig.Data) != 2 {
		t.Fatalf("%d traces, want 2", len(fig.Data))
	}
	if got := fig.Data[0].Mode; got != trace.ModeLines|trace.ModeMarkers {
		t.Errorf("default mode = %v, want lines+markers", got)
	}
	if got := fig.Data[1].Mode; got != trace.ModeNone {
		t.Errorf("explicit mode = %v, want none", got)
	}
	if fig.Data[0].Fill != trace.FillToZeroY || fig.Data[0].FillColor == "" {
		t.Errorf("fill = %v color %q", fig.Data[0].Fill, fig.Data[0].FillColor)
	}
	if fig.Layout.Margin != (Margin{}) {
		t.Errorf("explicit zero margin replaced: %+v", fig.Layout.Margin)
	}

	fig, err = parseFigure([]byte(jsonFigure))
	if err != nil {
		t.Fatal(err)
	}
	if fig.Layout.Height != 450 || fig.Layout.Margin.L != 80 {
		t.Errorf("layout defaults = %+v", fig.Layout)
	}
}

func TestAutorange(t *testing.T) {
	tr := &trace.Trace{X: []float64{1, 10, 100}, Y: []float64{2, 4, 6}, Fill: trace.FillToZeroY}
	tr.SetDefaults(0)
	cd := trace.CalcAll([]*trace.Trace{tr})
	y := func(p trace.CalcPoint) float64 { return p.Y }
	x := func(p trace.CalcPoint) float64 { return p.X }

	tests := []struct {
		name   string
		typ    axis.Type
		alongY bool
		value  func(trace.CalcPoint) float64
		lo, hi float64
	}{
		{"tozero y", axis.Linear, true, y, -0.3, 6.3},
		{"log x", axis.Log, false, x, -0.1, 2.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := autorange(cd, tt.typ, tt.alongY, tt.value)
			if !near(lo, tt.lo) || !near(hi, tt.hi) {
				t.Errorf("autorange() = [%g, %g], want [%g, %g]", lo, hi, tt.lo, tt.hi)
			}
		})
	}
	if lo, hi := autorange(nil, axis.Linear, false, x); lo != 0 || hi != 1 {
		t.Errorf("empty autorange = [%g, %g]", lo, hi)
	}
}

func near(a, b float64) bool {
	d := a - b
	return d > -1e-9 && d < 1e-9
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "fig.yaml")
	if err := os.WriteFile(in, []byte(yamlFigure), 0o600); err != nil {
		t.Fatal(err)
	}
	svg, png := filepath.Join(dir, "out.svg"), filepath.Join(dir, "out.png")
	err := run(context.Background(), &bytes.Buffer{}, in, options{outputs: []string{svg, png}, scale: 1})
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	out, err := os.ReadFile(svg)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"js-fill tozero", "js-line", "point", `clip-path="url(#clipxyplot)"`} {
		if !strings.Contains(string(out), want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if st, err := os.Stat(png); err != nil || st.Size() == 0 {
		t.Errorf("png not written: %v", err)
	}

	if err := run(context.Background(), &bytes.Buffer{}, in, options{outputs: []string{filepath.Join(dir, "out.gif")}}); err == nil {
		t.Error("unknown output format accepted")
	}
}

func TestRootCmd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "fig.json")
	if err := os.WriteFile(in, []byte(jsonFigure), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"svg to stdout", []string{in}, "<svg"},
		{"dump", []string{in, "--dump", "--set", "data.0.name=first"}, `"name":"first"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			cmd := newRootCmd()
			cmd.SetArgs(tt.args)
			cmd.SetOut(&stdout)
			cmd.SetErr(&bytes.Buffer{})
			if err := cmd.Execute(); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, stdout.String())
			}
		})
	}

	cmd := newRootCmd()
	cmd.SetArgs(nil)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Error("missing figure argument accepted")
	}
}
