// Package svg parses vector line art into polylines.
//
// The parser covers the subset of SVG that line drawings exported from
// Inkscape and similar editors actually use: path elements (straight
// segments and Bezier curves), polyline/polygon/line shape elements, and
// nested groups with affine transforms. Curves are flattened into straight
// segments with a caller-controlled tolerance; larger tolerance means fewer
// points and a coarser approximation.
//
// Everything else (arcs, text, gradients, CSS) is out of scope. Arc path
// commands produce an explicit error instead of a silent approximation so
// callers can tell users to convert arcs to curves before exporting.
package svg

import (
	"encoding/xml"
	"fmt"

	"github.com/inktrace/inktrace/pkg/geometry"
)

type svgGroup struct {
	Transform string     `xml:"transform,attr"`
	Groups    []svgGroup `xml:"g"`
	Paths     []svgPath  `xml:"path"`
	Polylines []svgPoly  `xml:"polyline"`
	Polygons  []svgPoly  `xml:"polygon"`
	Lines     []svgLine  `xml:"line"`
}

type svgRoot struct {
	XMLName xml.Name `xml:"svg"`
	svgGroup
}

type svgPath struct {
	D         string `xml:"d,attr"`
	Transform string `xml:"transform,attr"`
}

type svgPoly struct {
	Points    string `xml:"points,attr"`
	Transform string `xml:"transform,attr"`
}

type svgLine struct {
	X1        float64 `xml:"x1,attr"`
	Y1        float64 `xml:"y1,attr"`
	X2        float64 `xml:"x2,attr"`
	Y2        float64 `xml:"y2,attr"`
	Transform string  `xml:"transform,attr"`
}

// Parse extracts all polylines from an SVG document. Coordinates are
// returned in user units with group and element transforms applied; no
// viewport scaling is performed. Polylines are never empty; an entirely
// blank drawing yields an empty slice and no error.
func Parse(data []byte, tolerance float64) ([]geometry.Polyline, error) {
	if tolerance <= 0 {
		return nil, fmt.Errorf("flattening tolerance must be positive, got %v", tolerance)
	}

	var root svgRoot
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decode svg: %w", err)
	}

	var out []geometry.Polyline
	if err := collect(root.svgGroup, identity(), tolerance, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// collect walks one group level, composing its transform onto the parent's
// and gathering the polylines of every contained shape.
func collect(g svgGroup, parent Transform, tolerance float64, out *[]geometry.Polyline) error {
	local, err := parseTransform(g.Transform)
	if err != nil {
		return err
	}
	t := parent.Mul(local)

	for _, p := range g.Paths {
		et, err := elementTransform(t, p.Transform)
		if err != nil {
			return err
		}
		polylines, err := parsePathData(p.D, tolerance)
		if err != nil {
			return fmt.Errorf("path %q: %w", truncate(p.D, 40), err)
		}
		appendTransformed(out, polylines, et)
	}

	for _, p := range g.Polylines {
		et, err := elementTransform(t, p.Transform)
		if err != nil {
			return err
		}
		pts, err := parsePointsList(p.Points)
		if err != nil {
			return fmt.Errorf("polyline: %w", err)
		}
		appendTransformed(out, []geometry.Polyline{pts}, et)
	}

	for _, p := range g.Polygons {
		et, err := elementTransform(t, p.Transform)
		if err != nil {
			return err
		}
		pts, err := parsePointsList(p.Points)
		if err != nil {
			return fmt.Errorf("polygon: %w", err)
		}
		// Polygons are implicitly closed.
		if len(pts) > 1 && pts[0] != pts[len(pts)-1] {
			pts = append(pts, pts[0])
		}
		appendTransformed(out, []geometry.Polyline{pts}, et)
	}

	for _, l := range g.Lines {
		et, err := elementTransform(t, l.Transform)
		if err != nil {
			return err
		}
		seg := geometry.Polyline{{X: l.X1, Y: l.Y1}, {X: l.X2, Y: l.Y2}}
		appendTransformed(out, []geometry.Polyline{seg}, et)
	}

	for _, child := range g.Groups {
		if err := collect(child, t, tolerance, out); err != nil {
			return err
		}
	}
	return nil
}

func elementTransform(parent Transform, attr string) (Transform, error) {
	local, err := parseTransform(attr)
	if err != nil {
		return Transform{}, err
	}
	return parent.Mul(local), nil
}

// appendTransformed applies t to every point and drops empty polylines.
func appendTransformed(out *[]geometry.Polyline, polylines []geometry.Polyline, t Transform) {
	for _, pl := range polylines {
		if len(pl) == 0 {
			continue
		}
		mapped := make(geometry.Polyline, len(pl))
		for i, pt := range pl {
			mapped[i] = t.Apply(pt)
		}
		*out = append(*out, mapped)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
