// Package raster draws a scene to an image for previews.
//
// Rendering covers what the scatter renderer emits: groups with
// translate and scale transforms, paths, lines, text with tspan lines,
// rectangular clip paths, fill and stroke colors with opacities, dashes
// and display: none. Coverage is computed with golang.org/x/image/vector
// and labels are drawn as glyph outlines from the text package.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strconv"
	"strings"

	"golang.org/x/image/vector"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/scene"
	"github.com/gogpu/plot/text"
)

// ErrInvalidSize is returned for non-positive image dimensions.
var ErrInvalidSize = errors.New("raster: invalid image size")

// Option configures Render.
type Option func(*renderer)

// WithBackground fills the image with c before drawing. The default is
// white; a nil color leaves the image transparent.
func WithBackground(c color.Color) Option {
	return func(r *renderer) {
		r.background = c
	}
}

// WithScale renders at s device pixels per scene unit.
func WithScale(s float64) Option {
	return func(r *renderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithShaper sets the text shaper used for labels.
func WithShaper(s *text.Shaper) Option {
	return func(r *renderer) {
		r.shaper = s
	}
}

// WithTolerance sets the curve flattening tolerance in device pixels.
func WithTolerance(t float64) Option {
	return func(r *renderer) {
		if t > 0 {
			r.tolerance = t
		}
	}
}

type renderer struct {
	dst        *image.RGBA
	root       *scene.Node
	background color.Color
	scale      float64
	tolerance  float64
	shaper     *text.Shaper
	z          *vector.Rasterizer
}

// Render draws root into a new w×h scene-unit image.
func Render(root *scene.Node, w, h int, opts ...Option) (*image.RGBA, error) {
	r := &renderer{
		root:       root,
		background: color.White,
		scale:      1,
		tolerance:  0.25,
	}
	for _, opt := range opts {
		opt(r)
	}
	pw, ph := int(float64(w)*r.scale+0.5), int(float64(h)*r.scale+0.5)
	if pw <= 0 || ph <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	if r.shaper == nil {
		s, err := text.Default()
		if err != nil {
			return nil, fmt.Errorf("raster: load font: %w", err)
		}
		r.shaper = s
	}
	r.dst = image.NewRGBA(image.Rect(0, 0, pw, ph))
	if r.background != nil {
		draw.Draw(r.dst, r.dst.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)
	}
	r.z = vector.NewRasterizer(pw, ph)
	if root != nil {
		r.node(root, Scale(r.scale, r.scale), r.dst.Bounds(), 1)
	}
	return r.dst, nil
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

func (r *renderer) node(n *scene.Node, m Matrix, clip image.Rectangle, opacity float64) {
	if v, _ := n.Attr("display"); v == "none" {
		return
	}
	if v, _ := n.Style("display"); v == "none" {
		return
	}
	if t, ok := n.Attr("transform"); ok {
		tm, err := ParseTransform(t)
		if err != nil {
			plot.Logger().Debug("raster: skipping transform", "err", err)
		} else {
			m = m.Multiply(tm)
		}
	}
	if cp, ok := n.Attr("clip-path"); ok {
		clip = clip.Intersect(r.clipRect(cp, m))
	}
	opacity *= styleNum(n, "opacity", 1)
	if opacity <= 0 || clip.Empty() {
		return
	}

	switch n.Tag {
	case "defs", "clipPath":
		return
	case "path":
		d, _ := n.Attr("d")
		p, err := plot.ParsePath(d)
		if err != nil {
			plot.Logger().Debug("raster: skipping path", "err", err)
			return
		}
		r.shape(n, p, m, clip, opacity)
		return
	case "line":
		p := plot.NewPath()
		p.MoveTo(attrNum(n, "x1"), attrNum(n, "y1"))
		p.LineTo(attrNum(n, "x2"), attrNum(n, "y2"))
		r.shape(n, p, m, clip, opacity)
		return
	case "rect":
		x, y := attrNum(n, "x"), attrNum(n, "y")
		p := plot.BuildPath().Rect(x, y, attrNum(n, "width"), attrNum(n, "height")).Build()
		r.shape(n, p, m, clip, opacity)
		return
	case "text":
		r.text(n, m, clip, opacity)
		return
	}
	for _, c := range n.Children() {
		r.node(c, m, clip, opacity)
	}
}

// clipRect resolves a url(#id) clip-path to a device rectangle.
func (r *renderer) clipRect(ref string, m Matrix) image.Rectangle {
	id := strings.TrimSuffix(strings.TrimPrefix(ref, "url(#"), ")")
	cp := scene.FindClip(r.root, id)
	if cp == nil {
		return r.dst.Bounds()
	}
	rect := cp.ChildMatching("rect")
	if rect == nil {
		return r.dst.Bounds()
	}
	x, y := attrNum(rect, "x"), attrNum(rect, "y")
	p0 := m.Apply(plot.Pt(x, y))
	p1 := m.Apply(plot.Pt(x+attrNum(rect, "width"), y+attrNum(rect, "height")))
	return image.Rect(int(p0.X), int(p0.Y), int(p1.X+0.999), int(p1.Y+0.999))
}

// shape fills and strokes p with the paint of n.
func (r *renderer) shape(n *scene.Node, p *plot.Path, m Matrix, clip image.Rectangle, opacity float64) {
	lines := flatten(p, m, r.tolerance)
	if c, ok := paint(n, "fill", "#000000", opacity*styleNum(n, "fill-opacity", 1)); ok && n.Tag != "line" {
		var polys [][]plot.Point
		for _, l := range lines {
			polys = append(polys, l.pts)
		}
		r.fill(polys, c, clip)
	}
	if c, ok := paint(n, "stroke", "none", opacity*styleNum(n, "stroke-opacity", 1)); ok {
		sf := m.ScaleFactor()
		st := Stroke{Width: styleNum(n, "stroke-width", 1) * sf}
		for _, d := range ParseDashArray(style(n, "stroke-dasharray")) {
			st.Dash = append(st.Dash, d*sf)
		}
		r.fill(st.outline(lines), c, clip)
	}
}

// text draws a label: its own text or one line per tspan.line child.
func (r *renderer) text(n *scene.Node, m Matrix, clip image.Rectangle, opacity float64) {
	c, ok := paint(n, "fill", "#000000", opacity*styleNum(n, "fill-opacity", 1))
	if !ok {
		return
	}
	size := styleNum(n, "font-size", 12)
	anchor := n.AttrOr("text-anchor", "start")
	x, y := attrNum(n, "x"), attrNum(n, "y")

	type line struct {
		s    string
		x, y float64
	}
	var lines []line
	if tspans := n.ChildrenMatching("tspan.line"); len(tspans) > 0 {
		for _, ts := range tspans {
			dy := strings.TrimSuffix(ts.AttrOr("dy", "0"), "em")
			em, _ := strconv.ParseFloat(dy, 64)
			lx, ly := x, y
			if v, ok := ts.Attr("x"); ok {
				lx, _ = strconv.ParseFloat(v, 64)
			}
			if v, ok := ts.Attr("y"); ok {
				ly, _ = strconv.ParseFloat(v, 64)
			}
			lines = append(lines, line{s: ts.Text(), x: lx, y: ly + em*size})
		}
	} else {
		lines = append(lines, line{s: n.Text(), x: x, y: y})
	}

	var polys [][]plot.Point
	for _, l := range lines {
		if l.s == "" {
			continue
		}
		lx := l.x
		switch anchor {
		case "middle":
			lx -= r.shaper.Measure(l.s, size).Width / 2
		case "end":
			lx -= r.shaper.Measure(l.s, size).Width
		}
		for _, pl := range flatten(r.shaper.Outline(l.s, size, lx, l.y), m, r.tolerance) {
			polys = append(polys, pl.pts)
		}
	}
	r.fill(polys, c, clip)
}

// fill accumulates polys into the rasterizer and composites c through
// the coverage mask, restricted to clip.
func (r *renderer) fill(polys [][]plot.Point, c color.Color, clip image.Rectangle) {
	if len(polys) == 0 {
		return
	}
	r.z.Reset(r.dst.Bounds().Dx(), r.dst.Bounds().Dy())
	drawn := false
	for _, poly := range polys {
		if len(poly) < 2 {
			continue
		}
		r.z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, pt := range poly[1:] {
			r.z.LineTo(float32(pt.X), float32(pt.Y))
		}
		r.z.ClosePath()
		drawn = true
	}
	if !drawn {
		return
	}
	r.z.Draw(r.dst, clip, image.NewUniform(c), clip.Min)
}

// paint resolves the fill or stroke color of n. ok is false for "none"
// or a fully transparent result.
func paint(n *scene.Node, prop, def string, alpha float64) (color.Color, bool) {
	v := style(n, prop)
	if v == "" {
		v = def
	}
	if v == "none" {
		return nil, false
	}
	c, err := plot.ParseColor(v)
	if err != nil {
		plot.Logger().Debug("raster: unparsable color", "prop", prop, "value", v)
		return nil, false
	}
	c = c.WithAlpha(alpha)
	if c.A <= 0 {
		return nil, false
	}
	return c.Color(), true
}

func style(n *scene.Node, name string) string {
	if v, ok := n.Style(name); ok {
		return v
	}
	return n.AttrOr(name, "")
}

func styleNum(n *scene.Node, name string, def float64) float64 {
	v := strings.TrimSuffix(style(n, name), "px")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func attrNum(n *scene.Node, name string) float64 {
	f, _ := strconv.ParseFloat(n.AttrOr(name, "0"), 64)
	return f
}
