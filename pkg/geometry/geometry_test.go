package geometry

import "testing"

func TestComputeBounds(t *testing.T) {
	polylines := []Polyline{
		{{X: -1, Y: 2}, {X: 3, Y: -4}},
	}

	b, ok := Compute(polylines)
	if !ok {
		t.Fatal("Compute() ok = false, want true")
	}
	if b.MinX != -1 || b.MaxX != 3 {
		t.Errorf("X range = [%v, %v], want [-1, 3]", b.MinX, b.MaxX)
	}
	if b.MinY != -4 || b.MaxY != 2 {
		t.Errorf("Y range = [%v, %v], want [-4, 2]", b.MinY, b.MaxY)
	}
}

func TestComputeBoundsMultiplePolylines(t *testing.T) {
	polylines := []Polyline{
		{{X: 0, Y: 0}, {X: 10, Y: 0}},
		{{X: 5, Y: -3}, {X: 5, Y: 6}},
	}

	b, ok := Compute(polylines)
	if !ok {
		t.Fatal("Compute() ok = false, want true")
	}
	want := Bounds{MinX: 0, MaxX: 10, MinY: -3, MaxY: 6}
	if b != want {
		t.Errorf("Compute() = %+v, want %+v", b, want)
	}
}

func TestComputeBoundsEmpty(t *testing.T) {
	if _, ok := Compute(nil); ok {
		t.Error("Compute(nil) ok = true, want false")
	}
	if _, ok := Compute([]Polyline{}); ok {
		t.Error("Compute(empty) ok = true, want false")
	}
	if _, ok := Compute([]Polyline{{}}); ok {
		t.Error("Compute(one empty polyline) ok = true, want false")
	}
}

func TestComputeBoundsSinglePoint(t *testing.T) {
	b, ok := Compute([]Polyline{{{X: 2.5, Y: -1.5}}})
	if !ok {
		t.Fatal("Compute() ok = false, want true")
	}
	if b.MinX != b.MaxX || b.MinY != b.MaxY {
		t.Errorf("single point bounds = %+v, want min == max on both axes", b)
	}
	if b.Width() != 0 || b.Height() != 0 {
		t.Errorf("Width/Height = %v/%v, want 0/0", b.Width(), b.Height())
	}
}

func TestClosed(t *testing.T) {
	tests := []struct {
		name string
		p    Polyline
		want bool
	}{
		{"empty", Polyline{}, false},
		{"single point", Polyline{{X: 1, Y: 1}}, true},
		{"open", Polyline{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, false},
		{"closed", Polyline{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}, true},
		{"almost closed", Polyline{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1e-9}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Closed(); got != tt.want {
				t.Errorf("Closed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	b := Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 6}

	tests := []struct {
		mode Align
		want Offset
	}{
		{AlignNone, Offset{0, 0}},
		{AlignCenter, Offset{-5, -3}},
		{AlignTopLeft, Offset{0, 0}},
		{AlignBottomLeft, Offset{0, -6}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			if got := b.Offset(tt.mode); got != tt.want {
				t.Errorf("Offset(%s) = %+v, want %+v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestOffsetShiftedBounds(t *testing.T) {
	b := Bounds{MinX: 2, MaxX: 5, MinY: 2, MaxY: 8}

	tests := []struct {
		mode Align
		want Offset
	}{
		{AlignNone, Offset{0, 0}},
		{AlignCenter, Offset{-3.5, -5}},
		{AlignTopLeft, Offset{-2, -2}},
		{AlignBottomLeft, Offset{-2, -8}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			if got := b.Offset(tt.mode); got != tt.want {
				t.Errorf("Offset(%s) = %+v, want %+v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestParseAlign(t *testing.T) {
	tests := []struct {
		input   string
		want    Align
		wantErr bool
	}{
		{"", AlignNone, false},
		{"none", AlignNone, false},
		{"center", AlignCenter, false},
		{"top-left", AlignTopLeft, false},
		{"bottom-left", AlignBottomLeft, false},
		{"middle", "", true},
		{"Center", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAlign(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAlign(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseAlign(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
