package scene

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/gogpu/plot"
)

const svgNS = "http://www.w3.org/2000/svg"

// WriteSVG writes n and its descendants as SVG markup.
func (n *Node) WriteSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	writeNode(bw, n)
	return bw.Flush()
}

// WriteDocument writes a standalone SVG document of the given size
// containing root.
func WriteDocument(w io.Writer, width, height float64, root *Node) error {
	bw := bufio.NewWriter(w)
	ws, hs := plot.FormatNumber(width), plot.FormatNumber(height)
	fmt.Fprintf(bw, `<svg xmlns="%s" width="%s" height="%s" viewBox="0 0 %s %s">`, svgNS, ws, hs, ws, hs)
	if root != nil {
		writeNode(bw, root)
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

func writeNode(w *bufio.Writer, n *Node) {
	w.WriteByte('<')
	w.WriteString(n.Tag)
	if len(n.classes) > 0 {
		writeAttr(w, "class", n.Classes())
	}
	for _, a := range n.attrs {
		writeAttr(w, a.Name, a.Value)
	}
	if len(n.styles) > 0 {
		w.WriteString(` style="`)
		for i, s := range n.styles {
			if i > 0 {
				w.WriteByte(' ')
			}
			escape(w, s.Name)
			w.WriteString(": ")
			escape(w, s.Value)
			w.WriteByte(';')
		}
		w.WriteByte('"')
	}
	if len(n.children) == 0 && n.text == "" {
		w.WriteString("/>")
		return
	}
	w.WriteByte('>')
	escape(w, n.text)
	for _, c := range n.children {
		writeNode(w, c)
	}
	w.WriteString("</")
	w.WriteString(n.Tag)
	w.WriteByte('>')
}

func writeAttr(w *bufio.Writer, name, value string) {
	w.WriteByte(' ')
	w.WriteString(name)
	w.WriteString(`="`)
	escape(w, value)
	w.WriteByte('"')
}

func escape(w io.Writer, s string) {
	// EscapeText only fails when w does, and bufio reports that on Flush.
	_ = xml.EscapeText(w, []byte(s))
}
