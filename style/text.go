package style

import (
	"strconv"
	"strings"

	"github.com/gogpu/plot"
	"github.com/gogpu/plot/scene"
	"github.com/gogpu/plot/text"
	"github.com/gogpu/plot/trace"
)

// LineSpacing is the distance between label lines in em.
const LineSpacing = 1.3

var textOffsetSign = map[string]float64{
	"start":  1,
	"end":    -1,
	"middle": 0,
	"bottom": 1,
	"top":    -1,
}

// TextAnchors splits a text position such as "top left" into the
// vertical anchor (top, middle, bottom) and the SVG text-anchor (start,
// middle, end) that puts the label on the requested side of the point.
func TextAnchors(pos string) (v, h string) {
	switch {
	case strings.Contains(pos, "top"):
		v = "top"
	case strings.Contains(pos, "bottom"):
		v = "bottom"
	default:
		v = "middle"
	}
	switch {
	case strings.Contains(pos, "left"):
		h = "end"
	case strings.Contains(pos, "right"):
		h = "start"
	default:
		h = "middle"
	}
	return v, h
}

// TextPointStyle writes the label of p into the textpoint group g: the
// text node with one tspan.line per <br>-separated line, the font, the
// anchor and the group offset away from a marker of radius
// markerRadius. ok is false when p has no text; the caller removes the
// group then. changed reports whether any value of g changed.
func TextPointStyle(g *scene.Node, p trace.CalcPoint, tr *trace.Trace, markerRadius float64) (ok, changed bool) {
	if p.Text == "" {
		return false, false
	}
	var c changes
	tx := g.ChildMatching("text")
	if tx == nil {
		tx = g.Append("text")
		c.set(true)
	}
	fs := tr.TextFont.Size
	c.set(tx.SetStyle("font-family", tr.TextFont.Family))
	c.set(tx.SetStyle("font-size", plot.FormatNumber(fs)+"px"))
	c.set(tx.SetStyle("fill", cssColor(tr.TextFont.Color)))
	c.set(tx.SetAttr("data-unformatted", p.Text))

	lines := text.SplitLines(p.Text)
	c.set(setLines(tx, lines))

	v, h := TextAnchors(tr.TextPosition)
	r := 0.0
	if markerRadius > 0 {
		r = markerRadius/0.8 + 1
	}
	numLines := float64(len(lines)-1)*LineSpacing + 1
	dx := textOffsetSign[h] * r
	dy := fs*0.75 + textOffsetSign[v]*r + (textOffsetSign[v]-1)*numLines*fs/2

	anchor := h
	if text.DirectionOf(p.Text) == text.RightToLeft {
		c.set(tx.SetAttr("direction", "rtl"))
		anchor = flipAnchor(h)
	} else {
		c.set(tx.RemoveAttr("direction"))
	}
	c.set(tx.SetAttr("text-anchor", anchor))
	c.set(g.SetAttr("transform", Translate(dx, dy)))
	return true, bool(c)
}

type changes bool

func (c *changes) set(changed bool) {
	if changed {
		*c = true
	}
}

// setLines keeps tspan.line children in step with lines. A single line
// is plain text content.
func setLines(tx *scene.Node, lines []string) bool {
	var c changes
	old := tx.ChildrenMatching("tspan.line")
	if len(lines) == 1 {
		for _, ts := range old {
			ts.Remove()
			c.set(true)
		}
		c.set(tx.SetText(lines[0]))
		return bool(c)
	}
	c.set(tx.SetText(""))
	for i, line := range lines {
		var ts *scene.Node
		if i < len(old) {
			ts = old[i]
		} else {
			ts = tx.Append("tspan", "line")
			c.set(true)
		}
		c.set(ts.SetAttr("dy", strconv.FormatFloat(float64(i)*LineSpacing, 'f', -1, 64)+"em"))
		c.set(ts.SetText(line))
	}
	for _, ts := range old[min(len(lines), len(old)):] {
		ts.Remove()
		c.set(true)
	}
	return bool(c)
}

func flipAnchor(h string) string {
	switch h {
	case "start":
		return "end"
	case "end":
		return "start"
	}
	return h
}
