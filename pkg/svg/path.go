package svg

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/inktrace/inktrace/pkg/geometry"
)

// parsePathData converts one path data string into polylines. Every moveto
// starts a new polyline; closepath repeats the subpath start so closed
// subpaths end on their first point.
func parsePathData(d string, tolerance float64) ([]geometry.Polyline, error) {
	p := &pathParser{tokens: tokenizePathData(d), tolerance: tolerance}
	if err := p.run(); err != nil {
		return nil, err
	}
	return p.out, nil
}

type pathParser struct {
	tokens    []string
	pos       int
	tolerance float64

	cur   geometry.Point
	start geometry.Point
	line  geometry.Polyline
	out   []geometry.Polyline

	started  bool
	prevCmd  byte
	prevCtrl geometry.Point
}

func (p *pathParser) run() error {
	var cmd byte
	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		if len(tok) == 1 && isCommandLetter(tok[0]) {
			cmd = tok[0]
			p.pos++
			if cmd == 'Z' || cmd == 'z' {
				p.closeSubpath()
				p.prevCmd = 'Z'
				cmd = 0
				continue
			}
		} else if cmd == 0 {
			return fmt.Errorf("expected a command before %q", tok)
		}
		if !p.started && cmd != 'M' && cmd != 'm' {
			return fmt.Errorf("path data must begin with a moveto command")
		}
		if err := p.apply(cmd); err != nil {
			return err
		}
		// Extra coordinate pairs after a moveto are implicit linetos.
		switch cmd {
		case 'M':
			cmd = 'L'
		case 'm':
			cmd = 'l'
		}
	}
	p.flush()
	return nil
}

func (p *pathParser) apply(cmd byte) error {
	switch cmd {
	case 'M', 'm':
		pt, err := p.point()
		if err != nil {
			return err
		}
		if cmd == 'm' {
			pt = p.rel(pt)
		}
		p.moveTo(pt)
	case 'L', 'l':
		pt, err := p.point()
		if err != nil {
			return err
		}
		if cmd == 'l' {
			pt = p.rel(pt)
		}
		p.lineTo(pt)
	case 'H', 'h':
		x, err := p.number()
		if err != nil {
			return err
		}
		if cmd == 'h' {
			x += p.cur.X
		}
		p.lineTo(geometry.Point{X: x, Y: p.cur.Y})
	case 'V', 'v':
		y, err := p.number()
		if err != nil {
			return err
		}
		if cmd == 'v' {
			y += p.cur.Y
		}
		p.lineTo(geometry.Point{X: p.cur.X, Y: y})
	case 'C', 'c':
		c1, err := p.point()
		if err != nil {
			return err
		}
		c2, err := p.point()
		if err != nil {
			return err
		}
		end, err := p.point()
		if err != nil {
			return err
		}
		if cmd == 'c' {
			c1, c2, end = p.rel(c1), p.rel(c2), p.rel(end)
		}
		p.curveTo(c1, c2, end)
		p.prevCtrl = c2
	case 'S', 's':
		c2, err := p.point()
		if err != nil {
			return err
		}
		end, err := p.point()
		if err != nil {
			return err
		}
		if cmd == 's' {
			c2, end = p.rel(c2), p.rel(end)
		}
		c1 := p.reflectedControl("CS")
		p.curveTo(c1, c2, end)
		p.prevCtrl = c2
	case 'Q', 'q':
		q, err := p.point()
		if err != nil {
			return err
		}
		end, err := p.point()
		if err != nil {
			return err
		}
		if cmd == 'q' {
			q, end = p.rel(q), p.rel(end)
		}
		p.quadTo(q, end)
		p.prevCtrl = q
	case 'T', 't':
		end, err := p.point()
		if err != nil {
			return err
		}
		if cmd == 't' {
			end = p.rel(end)
		}
		q := p.reflectedControl("QT")
		p.quadTo(q, end)
		p.prevCtrl = q
	case 'A', 'a':
		return fmt.Errorf("arc commands are not supported, convert arcs to curves before exporting")
	default:
		return fmt.Errorf("unsupported path command %q", string(cmd))
	}
	p.prevCmd = upperCommand(cmd)
	return nil
}

func (p *pathParser) rel(pt geometry.Point) geometry.Point {
	return geometry.Point{X: p.cur.X + pt.X, Y: p.cur.Y + pt.Y}
}

// reflectedControl mirrors the previous control point through the current
// position for the smooth curve commands. When the previous command is not
// in kinds the current position is used, per the SVG specification.
func (p *pathParser) reflectedControl(kinds string) geometry.Point {
	if strings.IndexByte(kinds, p.prevCmd) >= 0 {
		return geometry.Point{X: 2*p.cur.X - p.prevCtrl.X, Y: 2*p.cur.Y - p.prevCtrl.Y}
	}
	return p.cur
}

func (p *pathParser) moveTo(pt geometry.Point) {
	p.flush()
	p.cur = pt
	p.start = pt
	p.line = geometry.Polyline{pt}
	p.started = true
}

func (p *pathParser) lineTo(pt geometry.Point) {
	p.ensureOpen()
	p.line = append(p.line, pt)
	p.cur = pt
}

func (p *pathParser) curveTo(c1, c2, end geometry.Point) {
	p.ensureOpen()
	p.line = flattenCubic(p.line, p.cur, c1, c2, end, p.tolerance)
	p.cur = end
}

// quadTo promotes a quadratic segment to the equivalent cubic.
func (p *pathParser) quadTo(q, end geometry.Point) {
	c1 := geometry.Point{
		X: p.cur.X + 2.0/3.0*(q.X-p.cur.X),
		Y: p.cur.Y + 2.0/3.0*(q.Y-p.cur.Y),
	}
	c2 := geometry.Point{
		X: end.X + 2.0/3.0*(q.X-end.X),
		Y: end.Y + 2.0/3.0*(q.Y-end.Y),
	}
	p.curveTo(c1, c2, end)
}

func (p *pathParser) closeSubpath() {
	if len(p.line) > 0 {
		p.line = append(p.line, p.start)
		p.flush()
	}
	p.cur = p.start
}

// ensureOpen begins a new polyline at the current point when drawing
// continues after a closepath.
func (p *pathParser) ensureOpen() {
	if len(p.line) == 0 {
		p.line = append(p.line, p.cur)
	}
}

// flush emits the polyline under construction. A lone moveto draws nothing
// and is dropped.
func (p *pathParser) flush() {
	if len(p.line) > 1 {
		p.out = append(p.out, p.line)
	}
	p.line = nil
}

func (p *pathParser) number() (float64, error) {
	if p.pos >= len(p.tokens) {
		return 0, fmt.Errorf("unexpected end of path data")
	}
	tok := p.tokens[p.pos]
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid coordinate %q", tok)
	}
	p.pos++
	return v, nil
}

func (p *pathParser) point() (geometry.Point, error) {
	x, err := p.number()
	if err != nil {
		return geometry.Point{}, err
	}
	y, err := p.number()
	if err != nil {
		return geometry.Point{}, err
	}
	return geometry.Point{X: x, Y: y}, nil
}

// flattenCubic subdivides a cubic Bezier until both control points lie
// within tolerance of the chord, then emits the endpoint. Points are
// appended to dst; the start point is assumed to be there already.
func flattenCubic(dst geometry.Polyline, p0, p1, p2, p3 geometry.Point, tolerance float64) geometry.Polyline {
	if distPointToLine(p1, p0, p3) <= tolerance && distPointToLine(p2, p0, p3) <= tolerance {
		return append(dst, p3)
	}
	m01 := midpoint(p0, p1)
	m12 := midpoint(p1, p2)
	m23 := midpoint(p2, p3)
	m012 := midpoint(m01, m12)
	m123 := midpoint(m12, m23)
	m0123 := midpoint(m012, m123)
	dst = flattenCubic(dst, p0, m01, m012, m0123, tolerance)
	return flattenCubic(dst, m0123, m123, m23, p3, tolerance)
}

func midpoint(a, b geometry.Point) geometry.Point {
	return geometry.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// distPointToLine is the perpendicular distance from p to the line through
// a and b, or the distance to a when the line is degenerate.
func distPointToLine(p, a, b geometry.Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	return math.Abs(dx*(a.Y-p.Y)-dy*(a.X-p.X)) / length
}

// tokenizePathData splits path data into command letters and numbers.
// Commas count as whitespace and a sign directly after a digit starts a new
// number, so compact forms like "10-20" split correctly while exponents
// like "1e-5" stay intact.
func tokenizePathData(d string) []string {
	var b strings.Builder
	b.Grow(len(d) + 16)
	for i := 0; i < len(d); i++ {
		c := d[i]
		switch {
		case isCommandLetter(c):
			b.WriteByte(' ')
			b.WriteByte(c)
			b.WriteByte(' ')
		case c == ',':
			b.WriteByte(' ')
		case (c == '-' || c == '+') && i > 0 && (isDigit(d[i-1]) || d[i-1] == '.'):
			b.WriteByte(' ')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return strings.Fields(b.String())
}

// isCommandLetter treats every ASCII letter except the exponent markers as
// a potential command so unknown commands surface as parse errors instead
// of corrupting the number stream.
func isCommandLetter(c byte) bool {
	if c == 'e' || c == 'E' {
		return false
	}
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func upperCommand(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
