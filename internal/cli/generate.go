package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/inktrace/inktrace/pkg/errors"
	"github.com/inktrace/inktrace/pkg/library"
	"github.com/inktrace/inktrace/pkg/pipeline"
	"github.com/inktrace/inktrace/pkg/profile"
)

// generateOpts holds the command-line flags for the generate command.
// These options mirror pipeline.Options; a TOML profile fills in whatever
// the user did not set explicitly.
type generateOpts struct {
	outpath     string   // library directory that receives the elements
	profilePath string   // TOML profile with shared defaults
	echoSVG     bool     // reprint the input SVG on stdout (Inkscape extension protocol)
	ids         []string // ignored; Inkscape passes --id for each selected object

	name        string // element name shown in the library browser
	description string // element description
	keywords    string // comma-separated search keywords
	author      string // element author
	version     string // element version

	uuidPkg    string // package UUID override
	uuidSym    string // symbol UUID override
	uuidCmp    string // component UUID override
	uuidDev    string // device UUID override
	uuidPkgCat string // package category UUID
	uuidCmpCat string // component category UUID

	copper    bool // draw the footprint on the copper layer
	placement bool // draw the footprint on the placement layer
	stopMask  bool // draw the footprint on the stop mask layer

	symbol    bool // also generate a symbol
	component bool // also generate a component
	device    bool // also generate a device

	align     string  // geometry alignment: none, center, top-left, bottom-left
	tolerance float64 // curve flattening tolerance in millimetres
}

// userConfigDir is os.UserConfigDir, swapped in tests.
var userConfigDir = os.UserConfigDir

// defaultProfilePath returns the user-level profile when one exists, or ""
// otherwise. An unreadable config dir just means there is no profile.
func defaultProfilePath() string {
	dir, err := userConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, appName, "profile.toml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// resolveOptions merges profile values and explicit flags into pipeline
// options. Explicit flags win over profile values, which in turn win over
// the defaults applied during validation. Without --profile, a profile.toml
// under the user config dir is picked up when present.
func (o *generateOpts) resolveOptions(cmd *cobra.Command) (pipeline.Options, error) {
	opts := pipeline.Options{}

	profilePath := o.profilePath
	if profilePath == "" {
		profilePath = defaultProfilePath()
	}
	if profilePath != "" {
		prof, err := profile.Load(profilePath)
		if err != nil {
			return opts, err
		}
		prof.Apply(&opts)
	}

	// Fields a profile cannot carry are bound unconditionally.
	opts.Name = o.name
	opts.PackageUUID = o.uuidPkg
	opts.SymbolUUID = o.uuidSym
	opts.ComponentUUID = o.uuidCmp
	opts.DeviceUUID = o.uuidDev

	if o.author != "" {
		opts.Author = o.author
	}
	if o.version != "" {
		opts.Version = o.version
	}
	if o.keywords != "" {
		opts.Keywords = o.keywords
	}
	if o.description != "" {
		opts.Description = o.description
	}
	if o.uuidPkgCat != "" {
		opts.PackageCategory = o.uuidPkgCat
	}
	if o.uuidCmpCat != "" {
		opts.ComponentCategory = o.uuidCmpCat
	}
	if o.align != "" {
		opts.Align = o.align
	}
	if o.tolerance > 0 {
		opts.Tolerance = o.tolerance
	}

	// Boolean flags carry no unset state, so only toggles the user passed
	// explicitly override the profile.
	flags := cmd.Flags()
	if flags.Changed("layer-copper") {
		opts.SkipCopper = !o.copper
	}
	if flags.Changed("layer-placement") {
		opts.SkipPlacement = !o.placement
	}
	if flags.Changed("layer-stopmask") {
		opts.SkipStopMask = !o.stopMask
	}
	if flags.Changed("symbol") {
		opts.Symbol = o.symbol
	}
	if flags.Changed("component") {
		opts.Component = o.component
	}
	if flags.Changed("device") {
		opts.Device = o.device
	}

	return opts, nil
}

// generateCommand creates the generate command for converting an SVG drawing
// into LibrePCB library elements.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{copper: true, placement: true, stopMask: true}

	cmd := &cobra.Command{
		Use:   "generate [drawing.svg]",
		Short: "Convert an SVG drawing into LibrePCB library elements",
		Long: `Convert an SVG drawing into LibrePCB library elements.

The command parses the SVG, flattens paths, polylines, polygons and lines
into plain point sequences and writes a package element into the library
at --outpath. With --symbol, --component and --device the same drawing is
carried onto the schematic side, up to a device that is ready to be placed
from the library browser.

Values that stay constant across a library (author, categories, layer and
element selection) can be stored in a TOML profile and passed with
--profile. Without --profile, a profile.toml under the user config
directory (~/.config/inktrace on Linux) is used when present. Explicit
flags always win over profile values.

Examples:
  inktrace generate logo.svg -o artwork.lplib --name "Logo" --author jane \
    --uuid-pkgcat ed2b6409-76fa-4e97-b0d8-0bb1f2cd0b54
  inktrace generate logo.svg -o artwork.lplib --name "Logo" --profile company.toml --device`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeOpts, err := opts.resolveOptions(cmd)
			if err != nil {
				return err
			}
			var echo io.Writer
			if opts.echoSVG {
				echo = cmd.OutOrStdout()
			}
			return c.runGenerate(cmd.Context(), args[0], pipeOpts, opts.outpath, echo)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&opts.outpath, "outpath", "o", "", "library directory receiving the elements (required)")
	cmd.Flags().StringVar(&opts.profilePath, "profile", "", "TOML profile with shared defaults (default: profile.toml in the user config dir)")
	cmd.Flags().BoolVar(&opts.echoSVG, "echo-svg", false, "reprint the input SVG on stdout (Inkscape extension protocol)")

	// Metadata flags
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "element name (required)")
	cmd.Flags().StringVar(&opts.description, "description", "", "element description")
	cmd.Flags().StringVar(&opts.keywords, "keywords", "", "comma-separated search keywords")
	cmd.Flags().StringVar(&opts.author, "author", "", "element author")
	cmd.Flags().StringVar(&opts.version, "version", "", "element version (default 0.1.0)")

	// Identifier flags
	cmd.Flags().StringVar(&opts.uuidPkg, "uuid-pkg", "", "package UUID (default random)")
	cmd.Flags().StringVar(&opts.uuidSym, "uuid-sym", "", "symbol UUID (default random)")
	cmd.Flags().StringVar(&opts.uuidCmp, "uuid-cmp", "", "component UUID (default random)")
	cmd.Flags().StringVar(&opts.uuidDev, "uuid-dev", "", "device UUID (default random)")
	cmd.Flags().StringVar(&opts.uuidPkgCat, "uuid-pkgcat", "", "package category UUID")
	cmd.Flags().StringVar(&opts.uuidCmpCat, "uuid-cmpcat", "", "component category UUID")

	// Layer flags
	cmd.Flags().BoolVar(&opts.copper, "layer-copper", opts.copper, "draw the footprint on the copper layer")
	cmd.Flags().BoolVar(&opts.placement, "layer-placement", opts.placement, "draw the footprint on the placement layer")
	cmd.Flags().BoolVar(&opts.stopMask, "layer-stopmask", opts.stopMask, "draw the footprint on the stop mask layer")

	// Element flags
	cmd.Flags().BoolVar(&opts.symbol, "symbol", false, "also generate a symbol")
	cmd.Flags().BoolVar(&opts.component, "component", false, "also generate a component (implies --symbol)")
	cmd.Flags().BoolVar(&opts.device, "device", false, "also generate a device (implies --component)")

	// Geometry flags
	cmd.Flags().StringVar(&opts.align, "align", "", "geometry alignment: none (default), center, top-left, bottom-left")
	cmd.Flags().Float64Var(&opts.tolerance, "flattening-tolerance", 0, "curve flattening tolerance in millimetres (default 0.15)")

	// Inkscape invokes extensions with --id for every selected object.
	cmd.Flags().StringArrayVar(&opts.ids, "id", nil, "ignored (Inkscape compatibility)")
	_ = cmd.Flags().MarkHidden("id")

	_ = cmd.MarkFlagRequired("outpath")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// runGenerate reads the drawing, runs the pipeline and writes the generated
// elements into the library. When echo is non-nil the raw SVG is reprinted
// there after a successful run and the usual summary is suppressed, as the
// Inkscape extension protocol requires a clean document on stdout.
func (c *CLI) runGenerate(ctx context.Context, input string, opts pipeline.Options, outpath string, echo io.Writer) error {
	svgData, err := os.ReadFile(input)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "read drawing %q", input)
	}

	runner := c.newRunner()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Generating %s...", input))
	spinner.Start()

	result, err := runner.Execute(ctx, svgData, opts)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}

	paths, err := library.Write(outpath, result.Elements)
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if echo != nil {
		if _, err := echo.Write(svgData); err != nil {
			return fmt.Errorf("echo svg: %w", err)
		}
		return nil
	}

	printSuccess("Generated %d library element(s)", len(result.Elements))
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.PolylineCount, result.Stats.PointCount, result.Stats.ClosedCount)
	if result.Stats.PolylineCount == 0 {
		printWarning("No drawable geometry found in %s", input)
	}
	printNewline()
	printNextStep("Inspect", "librepcb-cli open-library --all --check "+outpath)

	return nil
}
