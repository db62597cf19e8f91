// Package pipeline provides the core generation pipeline for Inktrace.
//
// This package implements the complete parse → generate flow that turns an
// SVG drawing into LibrePCB library elements. It is shared by the CLI and
// API components so both entry points behave identically.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Parse: Flatten the SVG document into plain polylines
//  2. Generate: Emit the requested library elements from the polylines
//
// A package element is always generated; symbol, component, and device
// elements are opt-in and build on each other.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Name:            "Logo",
//	    Author:          "jane",
//	    PackageCategory: "ed2b6409-76fa-4e97-b0d8-0bb1f2cd0b54",
//	}
//	result, err := runner.Execute(ctx, svgData, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, el := range result.Elements {
//	    fmt.Println(el.Kind, el.UUID)
//	}
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/inktrace/inktrace/pkg/errors"
	"github.com/inktrace/inktrace/pkg/geometry"
	"github.com/inktrace/inktrace/pkg/librepcb"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultVersion is the element version stamped into generated files
	// when the caller does not supply one.
	DefaultVersion = "0.1.0"

	// DefaultTolerance is the curve flattening tolerance in drawing units.
	// Small enough that flattened curves stay visually smooth at footprint
	// scale, large enough to keep vertex counts reasonable.
	DefaultTolerance = 0.15
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the generation pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Element metadata
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Keywords    string `json:"keywords,omitempty"`
	Author      string `json:"author"`
	Version     string `json:"version,omitempty"`

	// Identifier overrides. When set, the element reuses the given UUID
	// instead of allocating a fresh one, so regenerating a drawing updates
	// the library element in place.
	PackageUUID   string `json:"package_uuid,omitempty"`
	SymbolUUID    string `json:"symbol_uuid,omitempty"`
	ComponentUUID string `json:"component_uuid,omitempty"`
	DeviceUUID    string `json:"device_uuid,omitempty"`

	// Category references
	PackageCategory   string `json:"package_category"`
	ComponentCategory string `json:"component_category,omitempty"`

	// Geometry options
	Align     string  `json:"align,omitempty"`
	Tolerance float64 `json:"tolerance,omitempty"`

	// Footprint layer toggles. All layers are generated by default.
	SkipCopper    bool `json:"skip_copper,omitempty"`
	SkipPlacement bool `json:"skip_placement,omitempty"`
	SkipStopMask  bool `json:"skip_stop_mask,omitempty"`

	// Element toggles. The package is always generated; the schematic-side
	// elements are opt-in. Requesting a device implies a component, and a
	// component implies a symbol.
	Symbol    bool `json:"symbol,omitempty"`
	Component bool `json:"component,omitempty"`
	Device    bool `json:"device,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger       `json:"-"`
	IDs    librepcb.IDSource `json:"-"`
	Clock  librepcb.Clock    `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Elements holds the generated elements in generation order: package
	// first, then symbol, component, and device as requested.
	Elements []librepcb.Element

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PolylineCount int
	PointCount    int
	ClosedCount   int
	ParseTime     time.Duration
	GenerateTime  time.Duration
}

// Element returns the generated element of the given kind.
func (r *Result) Element(kind librepcb.Kind) (librepcb.Element, bool) {
	for _, el := range r.Elements {
		if el.Kind == kind {
			return el, true
		}
	}
	return librepcb.Element{}, false
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once. Validation failures carry INVALID_CONFIG or
// INVALID_ALIGN codes.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if err := errors.ValidateElementName(o.Name); err != nil {
		return err
	}
	if o.Author == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "author is required")
	}
	if o.PackageCategory == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "package category is required")
	}

	if o.Version == "" {
		o.Version = DefaultVersion
	}
	if err := errors.ValidateVersion(o.Version); err != nil {
		return err
	}

	for _, id := range []string{o.PackageCategory, o.ComponentCategory,
		o.PackageUUID, o.SymbolUUID, o.ComponentUUID, o.DeviceUUID} {
		if id == "" {
			continue
		}
		if err := errors.ValidateUUID(id); err != nil {
			return err
		}
	}

	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.Tolerance < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "flattening tolerance must be positive, got %v", o.Tolerance)
	}

	if _, err := geometry.ParseAlign(o.Align); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidAlign, err, "align")
	}

	// Devices sit on components, components on symbols.
	if o.Device {
		o.Component = true
	}
	if o.Component {
		o.Symbol = true
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// AlignMode returns the parsed package alignment. Call only after
// ValidateAndSetDefaults has accepted the options.
func (o *Options) AlignMode() geometry.Align {
	mode, _ := geometry.ParseAlign(o.Align)
	return mode
}

// Layers returns the enabled footprint layers in emission order.
func (o *Options) Layers() []librepcb.Layer {
	var layers []librepcb.Layer
	if !o.SkipCopper {
		layers = append(layers, librepcb.LayerTopCopper)
	}
	if !o.SkipPlacement {
		layers = append(layers, librepcb.LayerTopPlacement)
	}
	if !o.SkipStopMask {
		layers = append(layers, librepcb.LayerTopStopMask)
	}
	return layers
}

// Metadata assembles the descriptive fields shared by every element, with
// the category reference chosen per element kind.
func (o *Options) Metadata(category string) librepcb.Metadata {
	return librepcb.Metadata{
		Name:        o.Name,
		Description: o.Description,
		Keywords:    o.Keywords,
		Author:      o.Author,
		Version:     o.Version,
		Category:    category,
	}
}
