// Package geometry provides the 2D primitives shared by the SVG front end
// and the LibrePCB emitters.
//
// All coordinates live in source space: X grows right, Y grows down, exactly
// as parsed from the drawing. The Y flip into LibrePCB's Y-up plane happens
// at emission time, never here.
package geometry

// Point is a location in source (Y-down) space.
type Point struct {
	X, Y float64
}

// Polyline is an ordered sequence of points. A polyline is never empty once
// parsed; a single point is a valid (degenerate) polyline.
type Polyline []Point

// Closed reports whether the polyline forms a closed loop, which is the case
// exactly when its first and last points are equal. A single-point polyline
// is closed by this rule.
func (p Polyline) Closed() bool {
	if len(p) == 0 {
		return false
	}
	return p[0] == p[len(p)-1]
}

// Bounds is the axis-aligned bounding box of a set of polylines.
// Min is always <= Max on both axes.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Compute folds min/max over every point of every polyline.
// The second return value is false when the collection contains no points;
// callers must treat these bounds as absent, not as a zero-sized box at the
// origin.
func Compute(polylines []Polyline) (Bounds, bool) {
	first := true
	var b Bounds
	for _, pl := range polylines {
		for _, pt := range pl {
			if first {
				b = Bounds{MinX: pt.X, MaxX: pt.X, MinY: pt.Y, MaxY: pt.Y}
				first = false
				continue
			}
			b.MinX = min(b.MinX, pt.X)
			b.MaxX = max(b.MaxX, pt.X)
			b.MinY = min(b.MinY, pt.Y)
			b.MaxY = max(b.MaxY, pt.Y)
		}
	}
	return b, !first
}
