package scene

import "github.com/gogpu/plot"

// ClipURL returns the clip-path reference to the clip path with the
// given id.
func ClipURL(id string) string {
	return "url(#" + id + ")"
}

// SetClipURL points the clip-path attribute of n at the clip path id,
// or removes the attribute when id is empty. It reports whether n
// changed.
func SetClipURL(n *Node, id string) bool {
	if id == "" {
		return n.RemoveAttr("clip-path")
	}
	return n.SetAttr("clip-path", ClipURL(id))
}

// ClipRect ensures a rectangular clipPath with the given id under defs
// and sizes it.
func ClipRect(defs *Node, id string, x, y, w, h float64) *Node {
	var cp *Node
	for _, c := range defs.ChildrenMatching("clipPath") {
		if v, _ := c.Attr("id"); v == id {
			cp = c
			break
		}
	}
	if cp == nil {
		cp = defs.Append("clipPath")
		cp.SetAttr("id", id)
	}
	r := cp.Ensure("rect", "")
	r.SetAttr("x", plot.FormatNumber(x))
	r.SetAttr("y", plot.FormatNumber(y))
	r.SetAttr("width", plot.FormatNumber(w))
	r.SetAttr("height", plot.FormatNumber(h))
	return cp
}

// FindClip returns the clipPath with the given id under root, or nil.
func FindClip(root *Node, id string) *Node {
	for _, c := range root.SelectAll("clipPath") {
		if v, _ := c.Attr("id"); v == id {
			return c
		}
	}
	return nil
}
