package geometry

import "fmt"

// Align selects how a drawing is positioned relative to the output origin.
type Align string

// Alignment modes. The reference point is expressed in LibrePCB's Y-up
// plane, so "top-left" means the drawing hangs below the origin after the
// emission-time Y flip.
const (
	AlignNone       Align = "none"
	AlignCenter     Align = "center"
	AlignTopLeft    Align = "top-left"
	AlignBottomLeft Align = "bottom-left"
)

// ValidAligns is the set of supported alignment modes.
var ValidAligns = map[Align]bool{
	AlignNone:       true,
	AlignCenter:     true,
	AlignTopLeft:    true,
	AlignBottomLeft: true,
}

// ParseAlign converts a user-supplied string into an Align.
func ParseAlign(s string) (Align, error) {
	a := Align(s)
	if s == "" {
		return AlignNone, nil
	}
	if !ValidAligns[a] {
		return "", fmt.Errorf("invalid alignment: %q (must be one of: none, center, top-left, bottom-left)", s)
	}
	return a, nil
}

// Offset is a translation applied to every point of an emission pass.
// It is computed once per pass from the pass's bounds and alignment mode.
type Offset struct {
	DX, DY float64
}

// Offset returns the translation that places the drawing according to mode.
// The DY component is applied before the emission-time Y flip, so the table
// below is stated in source (Y-down) coordinates.
func (b Bounds) Offset(mode Align) Offset {
	switch mode {
	case AlignCenter:
		return Offset{
			DX: -b.MinX - b.Width()/2,
			DY: -b.MinY - b.Height()/2,
		}
	case AlignTopLeft:
		return Offset{DX: -b.MinX, DY: -b.MinY}
	case AlignBottomLeft:
		return Offset{DX: -b.MinX, DY: -b.MaxY}
	default:
		return Offset{}
	}
}
