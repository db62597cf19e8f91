package svg

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/inktrace/inktrace/pkg/geometry"
)

// Transform is a 2x3 affine matrix laid out as
//
//	| A C E |
//	| B D F |
//
// matching the parameter order of the SVG matrix() function.
type Transform struct {
	A, B, C, D, E, F float64
}

func identity() Transform {
	return Transform{A: 1, D: 1}
}

// Mul composes two transforms; applying the result is equivalent to
// applying o first and t second.
func (t Transform) Mul(o Transform) Transform {
	return Transform{
		A: t.A*o.A + t.C*o.B,
		B: t.B*o.A + t.D*o.B,
		C: t.A*o.C + t.C*o.D,
		D: t.B*o.C + t.D*o.D,
		E: t.A*o.E + t.C*o.F + t.E,
		F: t.B*o.E + t.D*o.F + t.F,
	}
}

// Apply maps a point through the matrix.
func (t Transform) Apply(p geometry.Point) geometry.Point {
	return geometry.Point{
		X: t.A*p.X + t.C*p.Y + t.E,
		Y: t.B*p.X + t.D*p.Y + t.F,
	}
}

func translation(tx, ty float64) Transform {
	return Transform{A: 1, D: 1, E: tx, F: ty}
}

func scaling(sx, sy float64) Transform {
	return Transform{A: sx, D: sy}
}

func rotation(degrees float64) Transform {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Transform{A: cos, B: sin, C: -sin, D: cos}
}

// parseTransform parses a transform attribute such as
// "translate(10,20) rotate(45) scale(2)". An empty attribute yields the
// identity.
func parseTransform(attr string) (Transform, error) {
	t := identity()
	s := strings.TrimSpace(attr)
	for s != "" {
		open := strings.IndexByte(s, '(')
		end := strings.IndexByte(s, ')')
		if open < 0 || end < open {
			return Transform{}, fmt.Errorf("malformed transform %q", attr)
		}
		name := strings.TrimSpace(s[:open])
		args, err := parseNumberList(s[open+1 : end])
		if err != nil {
			return Transform{}, fmt.Errorf("transform %s: %w", name, err)
		}

		var fn Transform
		switch name {
		case "translate":
			switch len(args) {
			case 1:
				fn = translation(args[0], 0)
			case 2:
				fn = translation(args[0], args[1])
			default:
				return Transform{}, fmt.Errorf("translate expects 1 or 2 arguments, got %d", len(args))
			}
		case "scale":
			switch len(args) {
			case 1:
				fn = scaling(args[0], args[0])
			case 2:
				fn = scaling(args[0], args[1])
			default:
				return Transform{}, fmt.Errorf("scale expects 1 or 2 arguments, got %d", len(args))
			}
		case "rotate":
			switch len(args) {
			case 1:
				fn = rotation(args[0])
			case 3:
				// Rotation about a center point.
				fn = translation(args[1], args[2]).Mul(rotation(args[0])).Mul(translation(-args[1], -args[2]))
			default:
				return Transform{}, fmt.Errorf("rotate expects 1 or 3 arguments, got %d", len(args))
			}
		case "matrix":
			if len(args) != 6 {
				return Transform{}, fmt.Errorf("matrix expects 6 arguments, got %d", len(args))
			}
			fn = Transform{A: args[0], B: args[1], C: args[2], D: args[3], E: args[4], F: args[5]}
		default:
			return Transform{}, fmt.Errorf("unsupported transform %q", name)
		}

		t = t.Mul(fn)
		s = strings.TrimSpace(s[end+1:])
		s = strings.TrimSpace(strings.TrimPrefix(s, ","))
	}
	return t, nil
}

// parseNumberList splits a comma or whitespace separated list of numbers.
func parseNumberList(s string) ([]float64, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	nums := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", f)
		}
		nums = append(nums, v)
	}
	return nums, nil
}

// parsePointsList parses the points attribute of polyline and polygon
// elements into coordinate pairs.
func parsePointsList(s string) (geometry.Polyline, error) {
	nums, err := parseNumberList(s)
	if err != nil {
		return nil, err
	}
	if len(nums)%2 != 0 {
		return nil, fmt.Errorf("odd number of coordinates (%d)", len(nums))
	}
	pts := make(geometry.Polyline, 0, len(nums)/2)
	for i := 0; i+1 < len(nums); i += 2 {
		pts = append(pts, geometry.Point{X: nums[i], Y: nums[i+1]})
	}
	return pts, nil
}
