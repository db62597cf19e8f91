package svg

import (
	"math"
	"testing"

	"github.com/inktrace/inktrace/pkg/geometry"
)

func TestParseTransformAttr(t *testing.T) {
	tests := []struct {
		name string
		attr string
		in   geometry.Point
		want geometry.Point
	}{
		{"empty", "", geometry.Point{X: 3, Y: 4}, geometry.Point{X: 3, Y: 4}},
		{"translate one arg", "translate(10)", geometry.Point{X: 1, Y: 1}, geometry.Point{X: 11, Y: 1}},
		{"translate two args", "translate(10, 20)", geometry.Point{X: 1, Y: 1}, geometry.Point{X: 11, Y: 21}},
		{"uniform scale", "scale(2)", geometry.Point{X: 3, Y: 4}, geometry.Point{X: 6, Y: 8}},
		{"non-uniform scale", "scale(2 3)", geometry.Point{X: 3, Y: 4}, geometry.Point{X: 6, Y: 12}},
		{"rotate", "rotate(90)", geometry.Point{X: 1, Y: 0}, geometry.Point{X: 0, Y: 1}},
		{"rotate about center", "rotate(180 5 5)", geometry.Point{X: 0, Y: 0}, geometry.Point{X: 10, Y: 10}},
		{"matrix", "matrix(1 0 0 1 5 6)", geometry.Point{X: 1, Y: 1}, geometry.Point{X: 6, Y: 7}},
		{"composed", "translate(1,2) scale(2)", geometry.Point{X: 1, Y: 1}, geometry.Point{X: 3, Y: 4}},
		{"comma separated list", "translate(1,2), scale(2)", geometry.Point{X: 1, Y: 1}, geometry.Point{X: 3, Y: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := parseTransform(tt.attr)
			if err != nil {
				t.Fatalf("parseTransform(%q) returned error: %v", tt.attr, err)
			}
			got := tr.Apply(tt.in)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("parseTransform(%q).Apply(%v) = %v, want %v", tt.attr, tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTransformAttrErrors(t *testing.T) {
	attrs := []string{
		"translate(",
		"skewX(10)",
		"scale(1, 2, 3)",
		"rotate(45, 1)",
		"matrix(1 2 3)",
		"translate(abc)",
	}
	for _, attr := range attrs {
		if _, err := parseTransform(attr); err == nil {
			t.Errorf("parseTransform(%q) succeeded, want error", attr)
		}
	}
}

func TestTransformCompositionOrder(t *testing.T) {
	translate := translation(10, 0)
	scale := scaling(2, 2)
	p := geometry.Point{X: 1, Y: 1}

	// translate after scale
	if got := translate.Mul(scale).Apply(p); got != (geometry.Point{X: 12, Y: 2}) {
		t.Errorf("translate*scale applied to %v = %v, want (12, 2)", p, got)
	}
	// scale after translate
	if got := scale.Mul(translate).Apply(p); got != (geometry.Point{X: 22, Y: 2}) {
		t.Errorf("scale*translate applied to %v = %v, want (22, 2)", p, got)
	}
}
