package scene

import (
	"slices"
	"strings"
)

// Attr is one attribute or style property of a node.
type Attr struct {
	Name  string
	Value string
}

// Node is an element of the retained scene: a g, path, text, tspan,
// clipPath or rect, with ordered attributes and inline styles.
//
// Nodes keep their identity across renders so running transitions can
// continue when the data they show changes.
type Node struct {
	Tag string

	parent   *Node
	children []*Node
	classes  []string
	attrs    []Attr
	styles   []Attr
	text     string

	tween *Tween
}

// New creates a detached node with the given tag and classes.
func New(tag string, classes ...string) *Node {
	n := &Node{Tag: tag}
	for _, c := range classes {
		n.AddClass(c)
	}
	return n
}

// Parent returns the parent node, or nil for a detached node.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the direct children. The slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// Append creates a child at the end of n and returns it.
func (n *Node) Append(tag string, classes ...string) *Node {
	c := New(tag, classes...)
	n.AppendChild(c)
	return c
}

// AppendChild moves c to the end of n's children.
func (n *Node) AppendChild(c *Node) {
	c.Remove()
	c.parent = n
	n.children = append(n.children, c)
}

// InsertBefore moves c in front of ref. A nil or foreign ref appends.
func (n *Node) InsertBefore(c, ref *Node) {
	c.Remove()
	i := n.indexOf(ref)
	if i < 0 {
		n.AppendChild(c)
		return
	}
	c.parent = n
	n.children = slices.Insert(n.children, i, c)
}

// Insert creates a child in front of the first child matching sel, or
// at the end when none matches.
func (n *Node) Insert(tag, sel string, classes ...string) *Node {
	c := New(tag, classes...)
	n.InsertBefore(c, n.ChildMatching(sel))
	return c
}

// Remove detaches n from its parent. Running transitions keep their
// state; a removed node is simply no longer part of the tree.
func (n *Node) Remove() {
	p := n.parent
	if p == nil {
		return
	}
	if i := p.indexOf(n); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	n.parent = nil
}

// RemoveChildren detaches every child of n.
func (n *Node) RemoveChildren() {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = n.children[:0]
}

func (n *Node) indexOf(c *Node) int {
	if c == nil {
		return -1
	}
	return slices.Index(n.children, c)
}

// Index returns the position of n among its siblings, or -1.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	return n.parent.indexOf(n)
}

// Order moves the given children, in the given order, behind every other
// child that precedes the first of them. Nodes that are not children of
// n are ignored. This mirrors re-sorting joined elements into data order.
func (n *Node) Order(nodes []*Node) {
	want := make(map[*Node]bool, len(nodes))
	for _, c := range nodes {
		if c.parent == n {
			want[c] = true
		}
	}
	if len(want) == 0 {
		return
	}
	out := make([]*Node, 0, len(n.children))
	placed := false
	for _, c := range n.children {
		if _, ok := want[c]; !ok {
			out = append(out, c)
			continue
		}
		if placed {
			continue
		}
		placed = true
		for _, o := range nodes {
			if want[o] {
				out = append(out, o)
				want[o] = false
			}
		}
	}
	n.children = out
}

// Ensure returns the first child with the given tag and class, creating
// it at the end of n when missing.
func (n *Node) Ensure(tag, class string) *Node {
	for _, c := range n.children {
		if c.Tag == tag && (class == "" || c.HasClass(class)) {
			return c
		}
	}
	if class == "" {
		return n.Append(tag)
	}
	return n.Append(tag, class)
}

// Attr returns the value of an attribute.
func (n *Node) Attr(name string) (string, bool) {
	return lookup(n.attrs, name)
}

// AttrOr returns the value of an attribute, or def when unset.
func (n *Node) AttrOr(name, def string) string {
	if v, ok := n.Attr(name); ok {
		return v
	}
	return def
}

// SetAttr sets an attribute and reports whether its value changed.
func (n *Node) SetAttr(name, value string) bool {
	var changed bool
	n.attrs, changed = set(n.attrs, name, value)
	return changed
}

// RemoveAttr deletes an attribute and reports whether it was present.
func (n *Node) RemoveAttr(name string) bool {
	var removed bool
	n.attrs, removed = del(n.attrs, name)
	return removed
}

// Attrs returns the attributes in the order they were first set.
func (n *Node) Attrs() []Attr { return n.attrs }

// Style returns the value of an inline style property.
func (n *Node) Style(name string) (string, bool) {
	return lookup(n.styles, name)
}

// SetStyle sets an inline style property and reports whether it changed.
func (n *Node) SetStyle(name, value string) bool {
	var changed bool
	n.styles, changed = set(n.styles, name, value)
	return changed
}

// RemoveStyle deletes an inline style property.
func (n *Node) RemoveStyle(name string) bool {
	var removed bool
	n.styles, removed = del(n.styles, name)
	return removed
}

// Styles returns the inline styles in the order they were first set.
func (n *Node) Styles() []Attr { return n.styles }

// Text returns the text content of n.
func (n *Node) Text() string { return n.text }

// SetText replaces the text content and reports whether it changed.
func (n *Node) SetText(s string) bool {
	if n.text == s {
		return false
	}
	n.text = s
	return true
}

// HasClass reports whether n carries class c.
func (n *Node) HasClass(c string) bool {
	return slices.Contains(n.classes, c)
}

// AddClass adds class c if missing.
func (n *Node) AddClass(c string) {
	if c != "" && !n.HasClass(c) {
		n.classes = append(n.classes, c)
	}
}

// RemoveClass removes class c.
func (n *Node) RemoveClass(c string) {
	if i := slices.Index(n.classes, c); i >= 0 {
		n.classes = slices.Delete(n.classes, i, i+1)
	}
}

// Classed adds or removes class c.
func (n *Node) Classed(c string, on bool) {
	if on {
		n.AddClass(c)
	} else {
		n.RemoveClass(c)
	}
}

// Classes returns the class list joined by spaces.
func (n *Node) Classes() string {
	return strings.Join(n.classes, " ")
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range slices.Clone(n.children) {
		c.Walk(fn)
	}
}

func lookup(list []Attr, name string) (string, bool) {
	for _, a := range list {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func set(list []Attr, name, value string) ([]Attr, bool) {
	for i := range list {
		if list[i].Name == name {
			if list[i].Value == value {
				return list, false
			}
			list[i].Value = value
			return list, true
		}
	}
	return append(list, Attr{Name: name, Value: value}), true
}

func del(list []Attr, name string) ([]Attr, bool) {
	for i := range list {
		if list[i].Name == name {
			return slices.Delete(list, i, i+1), true
		}
	}
	return list, false
}
