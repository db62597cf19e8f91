// Package librepcb emits LibrePCB library elements as *.lp documents.
//
// The package turns normalized 2D polylines into the four element types a
// library can hold: packages (with footprints on selected board layers),
// symbols, components, and devices. Output is the parenthesized
// block format LibrePCB reads natively, built line by line with one space of
// indentation per nesting level.
//
// # Coordinate handling
//
// Input polylines live in source (Y-down) space. Emission applies the
// alignment offset first and then negates Y, so a point lands at
// (x+dx, -(y+dy)) in LibrePCB's Y-up plane. Offsets are computed once per
// emission pass from the pass's bounding box.
//
// # Determinism
//
// A Generator allocates identifiers and reads the clock only through its
// IDSource and Clock, and builders allocate identifiers strictly in document
// order. Injecting SequentialIDs and a FixedClock therefore makes output
// byte-for-byte reproducible:
//
//	gen := librepcb.New(librepcb.NewSequentialIDs(), librepcb.FixedClock{Time: t})
//	pkg := gen.Package(librepcb.PackageSpec{
//	    Meta:      librepcb.Metadata{Name: "Logo", Author: "jane", Version: "0.1.0"},
//	    Layers:    []librepcb.Layer{librepcb.LayerTopCopper},
//	    Polylines: polylines,
//	    Align:     geometry.AlignCenter,
//	})
//	os.WriteFile("package.lp", pkg.Data, 0o644)
package librepcb

import (
	"time"

	"github.com/inktrace/inktrace/pkg/geometry"
)

// Label geometry for generated symbols: text height and the clearance that
// keeps name/value labels outside the outline's bounding extent.
const (
	textHeight = 2.54
	labelGap   = 1.27
)

// Generator builds library elements. The zero value is not usable; create
// one with New.
type Generator struct {
	ids   IDSource
	clock Clock
}

// New creates a Generator. A nil ids falls back to RandomIDs, a nil clock to
// SystemClock.
func New(ids IDSource, clock Clock) *Generator {
	if ids == nil {
		ids = RandomIDs{}
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Generator{ids: ids, clock: clock}
}

// PackageSpec describes a package element. When ID is empty a fresh
// identifier is allocated. Layers are emitted in the order given.
type PackageSpec struct {
	ID        string
	Meta      Metadata
	Layers    []Layer
	Polylines []geometry.Polyline
	Align     geometry.Align
}

// Package builds a package element with one footprint per requested layer.
// A spec with no polylines still produces valid, empty footprint shells.
func (g *Generator) Package(spec PackageSpec) Element {
	id := spec.ID
	if id == "" {
		id = g.ids.NewID()
	}

	w := &docWriter{}
	w.open("(librepcb_package %s", id)
	g.writeMetadata(w, spec.Meta)
	for _, layer := range spec.Layers {
		g.writeFootprint(w, layer, spec.Polylines, spec.Align)
	}
	w.close()

	return Element{Kind: KindPackage, UUID: id, Data: w.bytes()}
}

// SymbolSpec describes a symbol element. Alignment is not configurable:
// symbols always center their outline on the origin so the generated labels
// sit symmetrically around it.
type SymbolSpec struct {
	ID        string
	Meta      Metadata
	Polylines []geometry.Polyline
}

// Symbol builds a symbol element: the outline polygons on the schematic
// outline layer plus a value label below and a name label above the drawing.
// With no polylines the labels collapse around the origin.
func (g *Generator) Symbol(spec SymbolSpec) Element {
	id := spec.ID
	if id == "" {
		id = g.ids.NewID()
	}

	// Translated vertical extent, needed to place the labels clear of the
	// outline. Centering makes it symmetric, so the source-space extent can
	// be used directly despite the Y flip at emission.
	var yMin, yMax float64
	if bounds, ok := geometry.Compute(spec.Polylines); ok {
		off := bounds.Offset(geometry.AlignCenter)
		yMin = bounds.MinY + off.DY
		yMax = bounds.MaxY + off.DY
	}

	w := &docWriter{}
	w.open("(librepcb_symbol %s", id)
	g.writeMetadata(w, spec.Meta)
	g.writePolygons(w, LayerSymbolOutlines.ID, spec.Polylines, geometry.AlignCenter)
	g.writeText(w, LayerSymbolValues.ID, "{{VALUE}}", "center top", yMin-labelGap)
	g.writeText(w, LayerSymbolNames.ID, "{{NAME}}", "center bottom", yMax+labelGap)
	w.close()

	return Element{Kind: KindSymbol, UUID: id, Data: w.bytes()}
}

// ComponentSpec describes a component element referencing an already
// generated symbol.
type ComponentSpec struct {
	ID       string
	Meta     Metadata
	SymbolID string
}

// Component builds a component element with a single default variant whose
// one gate references the symbol at a neutral position.
func (g *Generator) Component(spec ComponentSpec) Element {
	id := spec.ID
	if id == "" {
		id = g.ids.NewID()
	}

	w := &docWriter{}
	w.open("(librepcb_component %s", id)
	g.writeMetadata(w, spec.Meta)
	w.line("(schematic_only false)")
	w.line(`(prefix "")`)
	w.open(`(variant %s (norm "")`, g.ids.NewID())
	w.line(`(name "default")`)
	w.line(`(description "")`)
	w.open("(gate %s (symbol %s)", g.ids.NewID(), spec.SymbolID)
	w.line(`(position 0.0 0.0) (rotation 0.0) (required true) (suffix "")`)
	w.close()
	w.close()
	w.close()

	return Element{Kind: KindComponent, UUID: id, Data: w.bytes()}
}

// DeviceSpec describes a device element pairing a component with a package.
type DeviceSpec struct {
	ID          string
	Meta        Metadata
	ComponentID string
	PackageID   string
}

// Device builds a device element. It carries no geometry of its own, only
// the component and package references.
func (g *Generator) Device(spec DeviceSpec) Element {
	id := spec.ID
	if id == "" {
		id = g.ids.NewID()
	}

	w := &docWriter{}
	w.open("(librepcb_device %s", id)
	g.writeMetadata(w, spec.Meta)
	w.line("(component %s)", spec.ComponentID)
	w.line("(package %s)", spec.PackageID)
	w.close()

	return Element{Kind: KindDevice, UUID: id, Data: w.bytes()}
}

// writeMetadata emits the shared descriptive fields in their fixed order.
// Category is an identifier reference, not a quoted string, and is omitted
// entirely when unset.
func (g *Generator) writeMetadata(w *docWriter, m Metadata) {
	w.line(`(name "%s")`, escapeString(m.Name))
	w.line(`(description "%s")`, escapeString(m.Description))
	w.line(`(keywords "%s")`, escapeString(m.Keywords))
	w.line(`(author "%s")`, escapeString(m.Author))
	w.line(`(version "%s")`, escapeString(m.Version))
	w.line("(created %s)", g.clock.Now().UTC().Format(time.RFC3339))
	w.line("(deprecated false)")
	if m.Category != "" {
		w.line("(category %s)", m.Category)
	}
}

// writeFootprint emits one footprint named after its layer, holding one
// polygon per polyline.
func (g *Generator) writeFootprint(w *docWriter, layer Layer, polylines []geometry.Polyline, align geometry.Align) {
	w.open("(footprint %s", g.ids.NewID())
	w.line(`(name "%s")`, escapeString(layer.Name))
	w.line(`(description "")`)
	g.writePolygons(w, layer.ID, polylines, align)
	w.close()
}

// writePolygons emits one polygon block per polyline, all on the same layer
// and sharing one offset computed from the collection's bounds. Closed
// polylines become filled zero-width outlines, open ones stroked unfilled
// paths. An empty collection emits nothing.
func (g *Generator) writePolygons(w *docWriter, layerID string, polylines []geometry.Polyline, align geometry.Align) {
	bounds, ok := geometry.Compute(polylines)
	if !ok {
		return
	}
	off := bounds.Offset(align)

	for _, pl := range polylines {
		if len(pl) == 0 {
			continue
		}
		width, fill := "0.2", "false"
		if pl.Closed() {
			width, fill = "0.0", "true"
		}
		w.open(`(polygon "%s" (layer %s)`, g.ids.NewID(), layerID)
		w.line("(width %s) (fill %s) (grab_area true)", width, fill)
		for _, pt := range pl {
			w.line("(vertex (position %s %s) (angle 0.0))",
				FormatFloat(pt.X+off.DX), FormatFloat(-(pt.Y+off.DY)))
		}
		w.close()
	}
}

// writeText emits one text label sub-block at x=0 and the given y.
func (g *Generator) writeText(w *docWriter, layerID, value, align string, y float64) {
	w.open(`(text "%s" (layer %s) (value "%s")`, g.ids.NewID(), layerID, escapeString(value))
	w.line("(align %s) (height %s) (position 0.0 %s) (rotation 0.0)",
		align, FormatFloat(textHeight), FormatFloat(y))
	w.close()
}
