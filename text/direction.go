package text

import (
	"regexp"

	"golang.org/x/text/unicode/bidi"
)

// Direction is the base direction of a label.
type Direction uint8

const (
	LeftToRight Direction = iota
	RightToLeft
)

// DirectionOf returns the direction of the first strong character of s.
// Text without strong characters is left to right.
func DirectionOf(s string) Direction {
	for _, r := range s {
		p, _ := bidi.LookupRune(r)
		switch p.Class() {
		case bidi.L:
			return LeftToRight
		case bidi.R, bidi.AL:
			return RightToLeft
		}
	}
	return LeftToRight
}

var brRE = regexp.MustCompile(`(?i)<br\s*/?>`)

// SplitLines splits a label on <br>, <br/> and <br /> tags.
func SplitLines(s string) []string {
	return brRE.Split(s, -1)
}
