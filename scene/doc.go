// Package scene provides the retained node tree the scatter renderer
// draws into.
//
// A scene is a tree of [Node] values mirroring SVG elements. Nodes keep
// their identity between renders so that data updates reuse them, and
// attribute changes can run as transitions:
//
//	t := n.Animate(scene.TransitionConfig{Duration: 300 * time.Millisecond})
//	t.SetAttr("transform", "translate(10,20)")
//	...
//	scene.Advance(root, 16*time.Millisecond)
//
// With a zero TransitionConfig, Animate returns the node itself and
// changes apply immediately. A new transition on a node interrupts the
// running one, starting from the interpolated values.
//
// Nodes are selected by tag and class ("path.point"), serialized with
// [Node.WriteSVG] or [WriteDocument], and clipped through clip paths kept
// under a defs node ([ClipRect], [SetClipURL]).
package scene
