package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/internal/lru"
)

// Extents are the measured size of a shaped line, in pixels.
type Extents struct {
	Width   float64
	Ascent  float64
	Descent float64 // positive, below the baseline
}

// Height returns the line height without gap.
func (e Extents) Height() float64 { return e.Ascent + e.Descent }

// Shaper shapes single lines of text with one font.
//
// Shaper is safe for concurrent use. The parsed font is shared; faces
// and HarfBuzz shapers are created per call or pooled.
type Shaper struct {
	font    *font.Font
	pool    sync.Pool
	extents *lru.Cache[measureKey, Extents]
}

type measureKey struct {
	s    string
	size float64
}

// measureCacheSize bounds the memoized extents per Shaper.
const measureCacheSize = 1024

// Option configures a Shaper.
type Option func(*shaperOptions)

type shaperOptions struct {
	data []byte
}

// WithFont uses the given TrueType or OpenType font data instead of
// Go Regular.
func WithFont(data []byte) Option {
	return func(o *shaperOptions) { o.data = data }
}

// New parses the font and returns a Shaper.
func New(opts ...Option) (*Shaper, error) {
	o := shaperOptions{data: goregular.TTF}
	for _, opt := range opts {
		opt(&o)
	}
	if len(o.data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(o.data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	s := &Shaper{
		font:    face.Font,
		extents: lru.New[measureKey, Extents](measureCacheSize),
	}
	s.pool.New = func() any { return &shaping.HarfbuzzShaper{} }
	return s, nil
}

var defaultShaper = sync.OnceValues(func() (*Shaper, error) { return New() })

// Default returns the shared Go Regular shaper.
func Default() (*Shaper, error) {
	return defaultShaper()
}

func (s *Shaper) shape(str string, size float64) shaping.Output {
	runes := []rune(str)
	dir := di.DirectionLTR
	if DirectionOf(str) == RightToLeft {
		dir = di.DirectionRTL
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(s.font),
		Size:      toFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.pool.Put(hb)
	return out
}

// Measure returns the extents of str set at size pixels. Results are
// memoized since labels are measured again on every render.
func (s *Shaper) Measure(str string, size float64) Extents {
	if str == "" || size <= 0 {
		return Extents{}
	}
	return s.extents.GetOrCreate(measureKey{str, size}, func() Extents {
		out := s.shape(str, size)
		return Extents{
			Width:   fromFixed(out.Advance),
			Ascent:  fromFixed(out.LineBounds.Ascent),
			Descent: -fromFixed(out.LineBounds.Descent),
		}
	})
}

// Outline returns the glyph outlines of str set at size pixels with the
// left end of the baseline at (x, y). The y axis points down.
func (s *Shaper) Outline(str string, size, x, y float64) *plot.Path {
	p := plot.NewPath()
	if str == "" || size <= 0 {
		return p
	}
	out := s.shape(str, size)
	face := out.Face
	if face == nil {
		face = font.NewFace(s.font)
	}
	scale := size / float64(face.Upem())
	pen := x
	for _, g := range out.Glyphs {
		ox := pen + fromFixed(g.XOffset)
		oy := y - fromFixed(g.YOffset)
		if data, ok := face.GlyphData(g.GlyphID).(font.GlyphOutline); ok {
			appendOutline(p, data, scale, ox, oy)
		}
		pen += fromFixed(g.XAdvance)
	}
	return p
}

func appendOutline(p *plot.Path, g font.GlyphOutline, scale, ox, oy float64) {
	pt := func(sp ot.SegmentPoint) (float64, float64) {
		return ox + float64(sp.X)*scale, oy - float64(sp.Y)*scale
	}
	open := false
	for _, seg := range g.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			x, y := pt(seg.Args[0])
			p.MoveTo(x, y)
			open = true
		case ot.SegmentOpLineTo:
			x, y := pt(seg.Args[0])
			p.LineTo(x, y)
		case ot.SegmentOpQuadTo:
			cx, cy := pt(seg.Args[0])
			x, y := pt(seg.Args[1])
			p.QuadraticTo(cx, cy, x, y)
		case ot.SegmentOpCubeTo:
			c1x, c1y := pt(seg.Args[0])
			c2x, c2y := pt(seg.Args[1])
			x, y := pt(seg.Args[2])
			p.CubicTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		p.Close()
	}
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
