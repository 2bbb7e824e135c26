package raster

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/gogpu/plot"
)

// Matrix is a 2D affine transformation in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// mapping (x, y) to (a*x + b*y + c, d*x + e*y + f).
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns a translation.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale returns a scaling.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Multiply returns m * other: other is applied first.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Apply transforms a point.
func (m Matrix) Apply(p plot.Point) plot.Point {
	return plot.Pt(m.A*p.X+m.B*p.Y+m.C, m.D*p.X+m.E*p.Y+m.F)
}

// ScaleFactor returns the geometric mean scale of m, used for stroke
// widths.
func (m Matrix) ScaleFactor() float64 {
	det := m.A*m.E - m.B*m.D
	if det < 0 {
		det = -det
	}
	return math.Sqrt(det)
}

var transformRe = regexp.MustCompile(`(translate|scale)\s*\(([^)]*)\)`)

// ParseTransform parses the translate and scale functions of an SVG
// transform attribute.
func ParseTransform(s string) (Matrix, error) {
	m := Identity()
	for _, fn := range transformRe.FindAllStringSubmatch(s, -1) {
		args, err := parseArgs(fn[2])
		if err != nil || len(args) == 0 || len(args) > 2 {
			return Identity(), fmt.Errorf("raster: invalid transform %q", s)
		}
		switch fn[1] {
		case "translate":
			if len(args) == 1 {
				args = append(args, 0)
			}
			m = m.Multiply(Translate(args[0], args[1]))
		case "scale":
			if len(args) == 1 {
				args = append(args, args[0])
			}
			m = m.Multiply(Scale(args[0], args[1]))
		}
	}
	return m, nil
}

func parseArgs(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
