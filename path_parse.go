package plot

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidPath is returned by ParsePath for malformed path data.
var ErrInvalidPath = errors.New("plot: invalid path data")

// ParsePath parses SVG path data made of M, L, H, V, Q, C and Z commands
// (absolute or relative). Implicit command repetition is supported.
func ParsePath(d string) (*Path, error) {
	p := NewPath()
	s := pathScanner{src: d}
	var cmd byte
	for {
		s.skipSeparators()
		if s.done() {
			return p, nil
		}
		if c := s.peek(); isCommand(c) {
			cmd = c
			s.pos++
		} else if cmd == 0 {
			return nil, fmt.Errorf("%w: expected command at offset %d", ErrInvalidPath, s.pos)
		}
		if err := p.applyCommand(cmd, &s); err != nil {
			return nil, err
		}
		// A moveto followed by bare coordinates continues as lineto.
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
	}
}

func (p *Path) applyCommand(cmd byte, s *pathScanner) error {
	var origin Point
	if cmd >= 'a' && cmd <= 'z' {
		origin = p.current
	}
	switch cmd {
	case 'M', 'm':
		pt, err := s.point(origin)
		if err != nil {
			return err
		}
		p.MoveTo(pt.X, pt.Y)
	case 'L', 'l':
		pt, err := s.point(origin)
		if err != nil {
			return err
		}
		p.LineTo(pt.X, pt.Y)
	case 'H', 'h':
		x, err := s.number()
		if err != nil {
			return err
		}
		p.LineTo(x+origin.X, p.current.Y)
	case 'V', 'v':
		y, err := s.number()
		if err != nil {
			return err
		}
		p.LineTo(p.current.X, y+origin.Y)
	case 'Q', 'q':
		c, err := s.point(origin)
		if err != nil {
			return err
		}
		pt, err := s.point(origin)
		if err != nil {
			return err
		}
		p.QuadraticTo(c.X, c.Y, pt.X, pt.Y)
	case 'C', 'c':
		c1, err := s.point(origin)
		if err != nil {
			return err
		}
		c2, err := s.point(origin)
		if err != nil {
			return err
		}
		pt, err := s.point(origin)
		if err != nil {
			return err
		}
		p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
	case 'Z', 'z':
		p.Close()
	default:
		return fmt.Errorf("%w: unsupported command %q", ErrInvalidPath, cmd)
	}
	return nil
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'Q', 'q', 'C', 'c', 'Z', 'z':
		return true
	}
	return false
}

type pathScanner struct {
	src string
	pos int
}

func (s *pathScanner) done() bool { return s.pos >= len(s.src) }

func (s *pathScanner) peek() byte { return s.src[s.pos] }

func (s *pathScanner) skipSeparators() {
	for !s.done() {
		switch s.peek() {
		case ' ', ',', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

func (s *pathScanner) number() (float64, error) {
	s.skipSeparators()
	start := s.pos
	if !s.done() && (s.peek() == '-' || s.peek() == '+') {
		s.pos++
	}
	seenDot, seenExp := false, false
scan:
	for !s.done() {
		c := s.peek()
		switch {
		case c >= '0' && c <= '9':
		case c == '.' && !seenDot && !seenExp:
			seenDot = true
		case (c == 'e' || c == 'E') && !seenExp && s.pos > start:
			seenExp = true
			if s.pos+1 < len(s.src) && (s.src[s.pos+1] == '-' || s.src[s.pos+1] == '+') {
				s.pos++
			}
		default:
			break scan
		}
		s.pos++
	}
	if start == s.pos {
		return 0, fmt.Errorf("%w: expected number at offset %d", ErrInvalidPath, start)
	}
	v, err := strconv.ParseFloat(s.src[start:s.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	return v, nil
}

func (s *pathScanner) point(origin Point) (Point, error) {
	x, err := s.number()
	if err != nil {
		return Point{}, err
	}
	y, err := s.number()
	if err != nil {
		return Point{}, err
	}
	return Pt(x+origin.X, y+origin.Y), nil
}
