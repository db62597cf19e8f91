package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/inktrace/inktrace/pkg/errors"
	"github.com/inktrace/inktrace/pkg/geometry"
	"github.com/inktrace/inktrace/pkg/librepcb"
	"github.com/inktrace/inktrace/pkg/observability"
	"github.com/inktrace/inktrace/pkg/svg"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete parse → generate pipeline.
func (r *Runner) Execute(ctx context.Context, svgData []byte, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}
	hooks := observability.Pipeline()

	// Stage 1: Parse
	hooks.OnParseStart(ctx, len(svgData))
	parseStart := time.Now()
	polylines, err := r.Parse(svgData, opts)
	if err != nil {
		hooks.OnParseComplete(ctx, 0, 0, time.Since(parseStart), err)
		return nil, err
	}
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.PolylineCount = len(polylines)
	for _, pl := range polylines {
		result.Stats.PointCount += len(pl)
		if pl.Closed() {
			result.Stats.ClosedCount++
		}
	}
	hooks.OnParseComplete(ctx, result.Stats.PolylineCount, result.Stats.PointCount, result.Stats.ParseTime, nil)

	opts.Logger.Info("parsed svg",
		"polylines", result.Stats.PolylineCount,
		"points", result.Stats.PointCount,
		"duration", result.Stats.ParseTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Generate
	hooks.OnGenerateStart(ctx, len(polylines))
	generateStart := time.Now()
	elements, err := r.Generate(polylines, opts)
	if err != nil {
		hooks.OnGenerateComplete(ctx, 0, time.Since(generateStart), err)
		return nil, err
	}
	result.Elements = elements
	result.Stats.GenerateTime = time.Since(generateStart)
	hooks.OnGenerateComplete(ctx, len(elements), result.Stats.GenerateTime, nil)

	opts.Logger.Info("generated elements",
		"count", len(result.Elements),
		"duration", result.Stats.GenerateTime)

	return result, nil
}

// Parse flattens the SVG document into polylines. Failures carry the
// INVALID_SVG code.
func (r *Runner) Parse(svgData []byte, opts Options) ([]geometry.Polyline, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	polylines, err := svg.Parse(svgData, opts.Tolerance)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSVG, err, "parse svg")
	}
	return polylines, nil
}

// Generate emits the requested library elements from the polylines.
// Elements are built in a fixed order (package, symbol, component, device)
// and identifiers are allocated strictly in document order, so a
// deterministic IDSource yields byte-for-byte reproducible output.
func (r *Runner) Generate(polylines []geometry.Polyline, opts Options) ([]librepcb.Element, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	gen := librepcb.New(opts.IDs, opts.Clock)

	pkg := gen.Package(librepcb.PackageSpec{
		ID:        opts.PackageUUID,
		Meta:      opts.Metadata(opts.PackageCategory),
		Layers:    opts.Layers(),
		Polylines: polylines,
		Align:     opts.AlignMode(),
	})
	elements := []librepcb.Element{pkg}

	if !opts.Symbol {
		return elements, nil
	}
	sym := gen.Symbol(librepcb.SymbolSpec{
		ID:        opts.SymbolUUID,
		Meta:      opts.Metadata(opts.ComponentCategory),
		Polylines: polylines,
	})
	elements = append(elements, sym)

	if !opts.Component {
		return elements, nil
	}
	cmp := gen.Component(librepcb.ComponentSpec{
		ID:       opts.ComponentUUID,
		Meta:     opts.Metadata(opts.ComponentCategory),
		SymbolID: sym.UUID,
	})
	elements = append(elements, cmp)

	if !opts.Device {
		return elements, nil
	}
	dev := gen.Device(librepcb.DeviceSpec{
		ID:          opts.DeviceUUID,
		Meta:        opts.Metadata(opts.ComponentCategory),
		ComponentID: cmp.UUID,
		PackageID:   pkg.UUID,
	})
	elements = append(elements, dev)

	return elements, nil
}

// applyLogger makes the runner's logger the default for the run; a logger
// set on the options wins.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
