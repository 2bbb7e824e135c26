// Package export writes rendered figures to files.
//
// Formats are registered by name in the manner of database/sql drivers;
// svg and png are built in:
//
//	ex, err := export.ForPath("out.png")
//	if err != nil {
//		return err
//	}
//	err = ex.Export(w, export.Document{Root: sp.Root, Width: 640, Height: 480})
package export

import (
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/plot/raster"
	"github.com/gogpu/plot/scene"
)

var (
	// ErrUnknownFormat is returned for format names nothing registered.
	ErrUnknownFormat = errors.New("export: unknown format")

	// ErrEmptyDocument is returned when a document has no root node.
	ErrEmptyDocument = errors.New("export: document has no root")
)

// Document is a scene ready to be written.
type Document struct {
	Root          *scene.Node
	Width, Height int
	// Scale is the device pixel ratio of raster formats. Zero means 1.
	Scale float64
}

// Exporter writes a document in one format.
type Exporter interface {
	Format() string
	Export(w io.Writer, doc Document) error
}

func init() {
	Register("svg", func() Exporter { return svgExporter{} })
	Register("png", func() Exporter { return pngExporter{} })
}

type svgExporter struct{}

func (svgExporter) Format() string { return "svg" }

func (svgExporter) Export(w io.Writer, doc Document) error {
	if doc.Root == nil {
		return ErrEmptyDocument
	}
	if err := scene.WriteDocument(w, float64(doc.Width), float64(doc.Height), doc.Root); err != nil {
		return fmt.Errorf("export: write svg: %w", err)
	}
	return nil
}

type pngExporter struct{}

func (pngExporter) Format() string { return "png" }

func (pngExporter) Export(w io.Writer, doc Document) error {
	if doc.Root == nil {
		return ErrEmptyDocument
	}
	var opts []raster.Option
	if doc.Scale > 0 {
		opts = append(opts, raster.WithScale(doc.Scale))
	}
	img, err := raster.Render(doc.Root, doc.Width, doc.Height, opts...)
	if err != nil {
		return fmt.Errorf("export: render png: %w", err)
	}
	return raster.EncodePNG(w, img)
}
