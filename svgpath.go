package pathmesh

import (
	"github.com/tdewolff/parse/v2/strconv"
)

// svgFloatPrec is the number of significant digits written by Path.SVG.
const svgFloatPrec = 12

func skipCommaWhitespace(d []byte) int {
	i := 0
	for i < len(d) && (d[i] == ' ' || d[i] == ',' || d[i] == '\n' || d[i] == '\r' || d[i] == '\t') {
		i++
	}
	return i
}

// svgScanner reads numbers out of SVG path data.
type svgScanner struct {
	d   []byte
	pos int
	err error
}

func (s *svgScanner) num() float64 {
	if s.err != nil {
		return 0
	}
	s.pos += skipCommaWhitespace(s.d[s.pos:])
	f, n := strconv.ParseFloat(s.d[s.pos:])
	if n == 0 {
		s.err = &SVGPathError{Offset: s.pos, Msg: "expected number"}
		return 0
	}
	s.pos += n
	return f
}

// nums reads len(dst) numbers.
func (s *svgScanner) nums(dst ...*float64) bool {
	for _, p := range dst {
		*p = s.num()
	}
	return s.err == nil
}

// ParseSVGPath parses SVG path data ("M 0 0 L 10 0 Q 15 5 10 10 Z").
//
// Supported commands are M, L, H, V, Q, T, C, S and Z with their relative
// forms. Elliptical arcs (A) are rejected.
func ParseSVGPath(d string) (*Path, error) {
	s := &svgScanner{d: []byte(d)}
	b := BuildPath()

	var (
		cmd, prev byte
		ctrl      Point // last control point, for S and T reflection
	)
	for {
		s.pos += skipCommaWhitespace(s.d[s.pos:])
		if s.pos >= len(s.d) {
			break
		}
		if c := s.d[s.pos]; (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			cmd = c
			s.pos++
		} else if cmd == 0 || cmd == 'Z' || cmd == 'z' {
			return nil, &SVGPathError{Offset: s.pos, Msg: "expected command"}
		} else if cmd == 'M' {
			cmd = 'L'
		} else if cmd == 'm' {
			cmd = 'l'
		}

		cur, _ := b.CurrentPoint()
		rel := cmd >= 'a'
		off := Point{}
		if rel {
			off = cur
		}

		var x, y, x1, y1, x2, y2 float64
		switch cmd {
		case 'M', 'm':
			if !s.nums(&x, &y) {
				return nil, s.err
			}
			b.MoveTo(off.X+x, off.Y+y)
		case 'L', 'l':
			if !s.nums(&x, &y) {
				return nil, s.err
			}
			b.LineTo(off.X+x, off.Y+y)
		case 'H', 'h':
			if !s.nums(&x) {
				return nil, s.err
			}
			b.LineTo(off.X+x, cur.Y)
		case 'V', 'v':
			if !s.nums(&y) {
				return nil, s.err
			}
			b.LineTo(cur.X, off.Y+y)
		case 'Q', 'q':
			if !s.nums(&x1, &y1, &x, &y) {
				return nil, s.err
			}
			ctrl = Pt(off.X+x1, off.Y+y1)
			b.QuadTo(ctrl.X, ctrl.Y, off.X+x, off.Y+y)
		case 'T', 't':
			if !s.nums(&x, &y) {
				return nil, s.err
			}
			c := cur
			if prev == 'Q' || prev == 'q' || prev == 'T' || prev == 't' {
				c = cur.Mul(2).Sub(ctrl)
			}
			ctrl = c
			b.QuadTo(c.X, c.Y, off.X+x, off.Y+y)
		case 'C', 'c':
			if !s.nums(&x1, &y1, &x2, &y2, &x, &y) {
				return nil, s.err
			}
			ctrl = Pt(off.X+x2, off.Y+y2)
			b.CubicTo(off.X+x1, off.Y+y1, ctrl.X, ctrl.Y, off.X+x, off.Y+y)
		case 'S', 's':
			if !s.nums(&x2, &y2, &x, &y) {
				return nil, s.err
			}
			c1 := cur
			if prev == 'C' || prev == 'c' || prev == 'S' || prev == 's' {
				c1 = cur.Mul(2).Sub(ctrl)
			}
			ctrl = Pt(off.X+x2, off.Y+y2)
			b.CubicTo(c1.X, c1.Y, ctrl.X, ctrl.Y, off.X+x, off.Y+y)
		case 'Z', 'z':
			b.Close()
		case 'A', 'a':
			return nil, &SVGPathError{Offset: s.pos - 1, Msg: "arc commands are not supported"}
		default:
			return nil, &SVGPathError{Offset: s.pos - 1, Msg: "unknown command " + string(cmd)}
		}
		prev = cmd
	}
	return b.Build()
}

// SVG formats the path as SVG path data with absolute commands.
// Coordinates are rounded to svgFloatPrec significant digits, so
// ParseSVGPath(p.SVG()) reproduces the segments up to that rounding
// rather than bit for bit.
func (p *Path) SVG() string {
	var buf []byte
	pt := func(cmd byte, pts ...Point) {
		if len(buf) > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, cmd)
		for _, q := range pts {
			buf = append(buf, ' ')
			buf, _ = strconv.AppendFloat(buf, q.X, svgFloatPrec)
			buf = append(buf, ' ')
			buf, _ = strconv.AppendFloat(buf, q.Y, svgFloatPrec)
		}
	}

	for _, sp := range p.subpaths {
		segs := sp.Segments
		if len(segs) == 0 {
			continue
		}
		pt('M', sp.Start())
		if sp.Closed {
			// Close re-creates a trailing line back to the start.
			if _, ok := segs[len(segs)-1].(Line); ok && len(segs) > 1 {
				segs = segs[:len(segs)-1]
			}
		}
		for _, seg := range segs {
			switch s := seg.(type) {
			case Line:
				pt('L', s.P1)
			case QuadBez:
				pt('Q', s.P1, s.P2)
			case CubicBez:
				pt('C', s.P1, s.P2, s.P3)
			}
		}
		if sp.Closed {
			pt('Z')
		}
	}
	return string(buf)
}
