// Package plot provides the geometry layer of a scatter-trace renderer
// for 2D Cartesian charts.
//
// # Overview
//
// The root package holds the pieces every other package shares: [Point],
// [Path] with SVG path-data serialization, the line-shape path builders
// ([BuildLine], [BuildLineReversed]) used for lines and fills, CSS colors,
// and the package-wide slog logger.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/plot/axis"
//	    "github.com/gogpu/plot/scatter"
//	    "github.com/gogpu/plot/scene"
//	    "github.com/gogpu/plot/trace"
//	)
//
//	xa := axis.New("x", 0, 2, 640)
//	ya := axis.New("y", 0, 1, 480)
//	sp := scatter.NewSubplot(xa, ya)
//
//	tr := &trace.Trace{Mode: trace.ModeLines | trace.ModeMarkers, Fill: trace.FillToZeroY}
//	tr.X = []float64{0, 1, 2}
//	tr.Y = []float64{0, 1, 0}
//	tr.SetDefaults(0)
//
//	r := scatter.NewRenderer()
//	if err := r.Plot(ctx, sp, trace.CalcAll([]*trace.Trace{tr})); err != nil {
//	    return err
//	}
//	return scene.WriteDocument(os.Stdout, 640, 480, sp.Root)
//
// # Architecture
//
// The module is organized into:
//   - plot: Point, Path, line shapes, colors, logging
//   - axis: coordinate to pixel conversion
//   - trace: trace attributes and calc-data
//   - scene: retained node tree, transitions, SVG output
//   - style: marker symbols and per-point styling
//   - text: text extents and glyph outlines (go-text/typesetting)
//   - scatter: the scatter layer renderer
//   - raster: PNG previews of a scene
//   - export: svg and png writers, registered by format name
//   - cmd/scatterdemo: renders figure files from the command line
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left of the subplot
//   - X increases right
//   - Y increases down
package plot

// Version is the current version of the library.
const Version = "0.1.0"
