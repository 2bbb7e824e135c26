package scatter

import (
	"github.com/gogpu/plot/axis"
	"github.com/gogpu/plot/scene"
	"github.com/gogpu/plot/style"
)

// Subplot is the scene of one x/y axis pair.
type Subplot struct {
	XAxis axis.Axis
	YAxis axis.Axis

	// Root holds the whole subplot: defs, the plot area and the hover layer.
	Root *scene.Node
	// Defs holds clip paths.
	Defs *scene.Node
	// Layer is the scatter layer, parent of every trace group.
	Layer *scene.Node
	// HoverLayer holds spike-lines. It is not offset.
	HoverLayer *scene.Node
	// LayerClipID names the clip path of the plot area. Empty disables
	// point clipping and range hiding.
	LayerClipID string
}

type subplotConfig struct {
	x, y   float64
	noClip bool
}

// SubplotOption configures NewSubplot.
type SubplotOption func(*subplotConfig)

// WithOffset places the plot area at (x, y) inside Root.
func WithOffset(x, y float64) SubplotOption {
	return func(c *subplotConfig) {
		c.x, c.y = x, y
	}
}

// WithoutLayerClip leaves the plot area unclipped.
func WithoutLayerClip() SubplotOption {
	return func(c *subplotConfig) {
		c.noClip = true
	}
}

// NewSubplot builds the scene skeleton of the subplot of xa and ya.
func NewSubplot(xa, ya axis.Axis, opts ...SubplotOption) *Subplot {
	var cfg subplotConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	id := ""
	if xa != nil && ya != nil {
		id = axis.PlotID(xa, ya)
	}
	sp := &Subplot{XAxis: xa, YAxis: ya}
	sp.Root = scene.New("g", "subplot", id)
	sp.Defs = sp.Root.Append("defs")
	area := sp.Root.Append("g", "plot")
	if cfg.x != 0 || cfg.y != 0 {
		area.SetAttr("transform", style.Translate(cfg.x, cfg.y))
	}
	sp.Layer = area.Append("g", "scatterlayer")
	sp.HoverLayer = sp.Root.Append("g", "hoverlayer")

	if !cfg.noClip && xa != nil && ya != nil {
		sp.LayerClipID = "clip" + id + "plot"
		scene.ClipRect(sp.Defs, sp.LayerClipID, 0, 0, xa.Length(), ya.Length())
	}
	return sp
}

// ID returns the subplot id, for example "xy".
func (sp *Subplot) ID() string {
	return axis.PlotID(sp.XAxis, sp.YAxis)
}

// Resize updates the layer clip after the axis lengths changed.
func (sp *Subplot) Resize() {
	if sp.LayerClipID == "" {
		return
	}
	scene.ClipRect(sp.Defs, sp.LayerClipID, 0, 0, sp.XAxis.Length(), sp.YAxis.Length())
}
