// Package text measures point labels and turns them into glyph outlines.
//
// Shaping uses go-text/typesetting (HarfBuzz) with the Go Regular font
// from golang.org/x/image as the default face. Only single lines are
// shaped; multi-line labels are split on <br> by [SplitLines] and laid
// out by the caller.
package text
