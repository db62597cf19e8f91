// Package profile loads generation presets from TOML files.
//
// A profile carries the options that stay constant across a whole library:
// author, categories, version conventions, layer selection. Drawings then
// only need their per-element settings (name, output path, uuid overrides)
// on the command line.
//
//	author = "jane"
//	keywords = "logo, artwork"
//	align = "center"
//
//	[categories]
//	package = "ed2b6409-76fa-4e97-b0d8-0bb1f2cd0b54"
//
//	[layers]
//	stop_mask = false
//
//	[elements]
//	symbol = true
package profile

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/inktrace/inktrace/pkg/errors"
	"github.com/inktrace/inktrace/pkg/pipeline"
)

// Profile mirrors the TOML file layout. Toggles are pointers so an absent
// key can be told apart from an explicit false.
type Profile struct {
	Author      string  `toml:"author"`
	Version     string  `toml:"version"`
	Keywords    string  `toml:"keywords"`
	Description string  `toml:"description"`
	Align       string  `toml:"align"`
	Tolerance   float64 `toml:"flattening_tolerance"`

	Categories categories `toml:"categories"`
	Layers     layers     `toml:"layers"`
	Elements   elements   `toml:"elements"`
}

type categories struct {
	Package   string `toml:"package"`
	Component string `toml:"component"`
}

type layers struct {
	Copper    *bool `toml:"copper"`
	Placement *bool `toml:"placement"`
	StopMask  *bool `toml:"stop_mask"`
}

type elements struct {
	Symbol    *bool `toml:"symbol"`
	Component *bool `toml:"component"`
	Device    *bool `toml:"device"`
}

// Load reads and parses a profile file. A missing file is an INVALID_PATH
// error, a malformed one INVALID_CONFIG.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "profile %q", path)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "profile %q", path)
	}
	return p, nil
}

// Parse decodes profile TOML. Unknown keys are rejected so typos surface
// instead of silently dropping a setting.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	md, err := toml.Decode(string(data), &p)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return &p, nil
}

// Apply copies every value the profile carries onto opts, overwriting what
// is there. Callers layer explicit flags on top afterwards, so the
// precedence ends up flags over profile over defaults.
func (p *Profile) Apply(opts *pipeline.Options) {
	if p.Author != "" {
		opts.Author = p.Author
	}
	if p.Version != "" {
		opts.Version = p.Version
	}
	if p.Keywords != "" {
		opts.Keywords = p.Keywords
	}
	if p.Description != "" {
		opts.Description = p.Description
	}
	if p.Align != "" {
		opts.Align = p.Align
	}
	if p.Tolerance > 0 {
		opts.Tolerance = p.Tolerance
	}

	if p.Categories.Package != "" {
		opts.PackageCategory = p.Categories.Package
	}
	if p.Categories.Component != "" {
		opts.ComponentCategory = p.Categories.Component
	}

	if v := p.Layers.Copper; v != nil {
		opts.SkipCopper = !*v
	}
	if v := p.Layers.Placement; v != nil {
		opts.SkipPlacement = !*v
	}
	if v := p.Layers.StopMask; v != nil {
		opts.SkipStopMask = !*v
	}

	if v := p.Elements.Symbol; v != nil {
		opts.Symbol = *v
	}
	if v := p.Elements.Component; v != nil {
		opts.Component = *v
	}
	if v := p.Elements.Device; v != nil {
		opts.Device = *v
	}
}
