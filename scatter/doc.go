// Package scatter renders scatter traces into the retained scene of a
// subplot.
//
// A [Renderer] keeps the nodes of every trace it has drawn in its
// [RenderState] and reconciles them on each call to [Renderer.Plot]:
// lines and fills are rebuilt from the current calc-data, markers and
// text labels are joined to their previous nodes so updates can animate.
//
// Each trace owns one group in the subplot's scatter layer:
//
//	g.trace.scatter
//	  g.errorbars          (only with WithErrorBars)
//	  g.fills              path.js-fill.tozero | .toself, path.js-fill.tonext
//	  g.lines              path.js-line per drawn segment
//	  g.points             path.point per displayed marker
//	  g.text               g.textpoint > text > tspan.line
//
// The tonext fill of a trace lives in the fills group of the trace it
// fills to, so it renders beneath the lines of both.
//
// A Renderer is not safe for concurrent use.
package scatter
