package scene

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/gogpu/plot"
)

var numberRE = regexp.MustCompile(`[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`)

// Interpolate returns the value between a and b at progress t.
//
// Colors interpolate per channel. Other values keep the text of b and
// interpolate each number in b from the number at the same position in
// a, so path data, transforms and plain numbers all animate.
func Interpolate(a, b string, t float64) string {
	if t >= 1 || a == b {
		return b
	}
	if ca, cb, ok := colors(a, b); ok {
		return plot.RGBA{
			R: ca.R + (cb.R-ca.R)*t,
			G: ca.G + (cb.G-ca.G)*t,
			B: ca.B + (cb.B-ca.B)*t,
			A: ca.A + (cb.A-ca.A)*t,
		}.CSS()
	}
	from := numberRE.FindAllString(a, -1)
	locs := numberRE.FindAllStringIndex(b, -1)
	if len(locs) == 0 {
		if t <= 0 {
			return a
		}
		return b
	}
	var sb strings.Builder
	last := 0
	for i, loc := range locs {
		sb.WriteString(b[last:loc[0]])
		last = loc[1]
		to, err := strconv.ParseFloat(b[loc[0]:loc[1]], 64)
		if err != nil || i >= len(from) {
			sb.WriteString(b[loc[0]:loc[1]])
			continue
		}
		f, err := strconv.ParseFloat(from[i], 64)
		if err != nil {
			sb.WriteString(b[loc[0]:loc[1]])
			continue
		}
		sb.WriteString(formatFloat(f + (to-f)*t))
	}
	sb.WriteString(b[last:])
	return sb.String()
}

func colors(a, b string) (plot.RGBA, plot.RGBA, bool) {
	if !looksLikeColor(a) || !looksLikeColor(b) {
		return plot.RGBA{}, plot.RGBA{}, false
	}
	ca, err := plot.ParseColor(a)
	if err != nil {
		return plot.RGBA{}, plot.RGBA{}, false
	}
	cb, err := plot.ParseColor(b)
	if err != nil {
		return plot.RGBA{}, plot.RGBA{}, false
	}
	return ca, cb, true
}

func looksLikeColor(s string) bool {
	return strings.HasPrefix(s, "#") || strings.HasPrefix(s, "rgb")
}

func formatFloat(v float64) string {
	r := math.Round(v*1e6) / 1e6
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
