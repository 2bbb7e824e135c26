package scene

import "strings"

// compound is one step of a selector: an optional tag and classes.
type compound struct {
	tag     string
	classes []string
}

func parseCompound(s string) compound {
	parts := strings.Split(s, ".")
	c := compound{tag: parts[0]}
	for _, p := range parts[1:] {
		if p != "" {
			c.classes = append(c.classes, p)
		}
	}
	return c
}

func (c compound) matches(n *Node) bool {
	if c.tag != "" && c.tag != "*" && c.tag != n.Tag {
		return false
	}
	for _, cl := range c.classes {
		if !n.HasClass(cl) {
			return false
		}
	}
	return true
}

// selector is a descendant combinator chain such as "g.trace path.point".
type selector []compound

func parseSelector(s string) selector {
	fields := strings.Fields(s)
	sel := make(selector, len(fields))
	for i, f := range fields {
		sel[i] = parseCompound(f)
	}
	return sel
}

// matches reports whether n matches the last step and its ancestors,
// below root, match the preceding steps in order.
func (sel selector) matches(n, root *Node) bool {
	if len(sel) == 0 || !sel[len(sel)-1].matches(n) {
		return false
	}
	i := len(sel) - 2
	for a := n.parent; i >= 0 && a != nil && a != root; a = a.parent {
		if sel[i].matches(a) {
			i--
		}
	}
	return i < 0
}

// Matches reports whether n matches a simple selector such as
// "path.point" or ".spikeline".
func (n *Node) Matches(sel string) bool {
	return parseCompound(sel).matches(n)
}

// Select returns the first descendant of n matching sel, or nil.
// sel is a tag with optional classes, steps separated by spaces.
func (n *Node) Select(sel string) *Node {
	s := parseSelector(sel)
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c != n && s.matches(c, n) {
			found = c
			return false
		}
		return true
	})
	return found
}

// SelectAll returns every descendant of n matching sel in document order.
func (n *Node) SelectAll(sel string) []*Node {
	s := parseSelector(sel)
	var out []*Node
	n.Walk(func(c *Node) bool {
		if c != n && s.matches(c, n) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// ChildMatching returns the first direct child matching a simple
// selector, or nil.
func (n *Node) ChildMatching(sel string) *Node {
	if sel == "" {
		return nil
	}
	c := parseCompound(sel)
	for _, ch := range n.children {
		if c.matches(ch) {
			return ch
		}
	}
	return nil
}

// ChildrenMatching returns the direct children matching a simple selector.
func (n *Node) ChildrenMatching(sel string) []*Node {
	c := parseCompound(sel)
	var out []*Node
	for _, ch := range n.children {
		if c.matches(ch) {
			out = append(out, ch)
		}
	}
	return out
}
