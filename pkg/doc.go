// Package pkg provides the core libraries for Inktrace library element generation.
//
// # Overview
//
// Inktrace turns SVG drawings into LibrePCB library elements so that artwork
// drawn in Inkscape can land on a circuit board. The pkg directory is
// organized into four main areas:
//
//  1. [svg] / [geometry] - Drawing ingestion (path parsing, flattening, alignment)
//  2. [librepcb] - Element generation (S-expression documents, identifiers)
//  3. [pipeline] / [library] - Orchestration and on-disk library trees
//  4. [errors] / [profile] / [observability] / [buildinfo] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow through Inktrace:
//
//	SVG document
//	     ↓
//	[svg] package (parse elements, flatten curves)
//	     ↓
//	[geometry] package (polylines, bounds, alignment)
//	     ↓
//	[librepcb] package (package/symbol/component/device documents)
//	     ↓
//	[library] package (element directories + format markers)
//
// # Quick Start
//
// Generate a package element from a drawing:
//
//	import (
//	    "context"
//	    "github.com/inktrace/inktrace/pkg/library"
//	    "github.com/inktrace/inktrace/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil)
//	result, _ := runner.Execute(context.Background(), svgData, pipeline.Options{
//	    Name:            "Logo",
//	    Author:          "jane",
//	    PackageCategory: "ed2b6409-76fa-4e97-b0d8-0bb1f2cd0b54",
//	})
//
//	// Write the elements into an existing library directory.
//	paths, _ := library.Write("MyLibrary.lplib", result.Elements)
//
// # Main Packages
//
// ## Drawing Ingestion
//
// [svg] - Minimal SVG reader for the subset plotters and Inkscape exports
// produce: path data (move/line/cubic/quadratic/close), polygon, polyline,
// line and group transforms. Curves are flattened to line segments within a
// configurable tolerance.
//
// [geometry] - Plane primitives shared by the whole pipeline: points,
// polylines, bounding boxes, and drawing alignment (center, corners).
//
// ## Element Generation
//
// [librepcb] - Builds the four element kinds as LibrePCB S-expression
// documents: package footprints with per-layer polygons, schematic symbols,
// components wired to their symbol, and devices tying a component to its
// footprint. Identifier allocation is pluggable so output can be made
// byte-for-byte reproducible.
//
// ## Orchestration
//
// [pipeline] - The parse → generate pipeline shared by CLI and API. Options
// carries metadata, layer selection, element selection and geometry settings,
// with validation and defaulting in one place.
//
// [library] - Writes generated elements into a library tree, one directory
// per element with its document and format marker file.
//
// ## Supporting Infrastructure
//
// [errors] - Coded errors (INVALID_SVG, INVALID_CONFIG, ...) separating
// user-facing validation failures from internal ones.
//
// [profile] - TOML profiles holding shared generation settings; explicit
// flags always win over profile values.
//
// [observability] - Backend-agnostic hooks for pipeline, library and HTTP
// events. No-op by default, registered by main.
//
// [buildinfo] - Version, commit and build date injected via ldflags.
//
// # Common Workflows
//
// Inspect a drawing without generating elements:
//
//	polylines, _ := runner.Parse(svgData, opts)
//
// Generate the full element chain:
//
//	opts.Device = true // implies Component and Symbol
//
// Reproducible output for golden tests:
//
//	opts.IDs = librepcb.NewSequentialIDs()
//	opts.Clock = librepcb.FixedClock{Time: created}
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...             # All tests
//	go test ./pkg/librepcb/...    # Specific package
//	go test -run Example          # Examples only
//
// [svg]: https://pkg.go.dev/github.com/inktrace/inktrace/pkg/svg
// [geometry]: https://pkg.go.dev/github.com/inktrace/inktrace/pkg/geometry
// [librepcb]: https://pkg.go.dev/github.com/inktrace/inktrace/pkg/librepcb
// [pipeline]: https://pkg.go.dev/github.com/inktrace/inktrace/pkg/pipeline
// [library]: https://pkg.go.dev/github.com/inktrace/inktrace/pkg/library
// [errors]: https://pkg.go.dev/github.com/inktrace/inktrace/pkg/errors
// [profile]: https://pkg.go.dev/github.com/inktrace/inktrace/pkg/profile
// [observability]: https://pkg.go.dev/github.com/inktrace/inktrace/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/inktrace/inktrace/pkg/buildinfo
package pkg
