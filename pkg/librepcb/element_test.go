package librepcb

import "testing"

func TestKindLayout(t *testing.T) {
	tests := []struct {
		kind   Kind
		dir    string
		file   string
		marker string
	}{
		{KindPackage, "pkg", "package.lp", ".librepcb-pkg"},
		{KindSymbol, "sym", "symbol.lp", ".librepcb-sym"},
		{KindComponent, "cmp", "component.lp", ".librepcb-cmp"},
		{KindDevice, "dev", "device.lp", ".librepcb-dev"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.Dir(); got != tt.dir {
				t.Errorf("Dir() = %q, want %q", got, tt.dir)
			}
			if got := tt.kind.FileName(); got != tt.file {
				t.Errorf("FileName() = %q, want %q", got, tt.file)
			}
			if got := tt.kind.MarkerName(); got != tt.marker {
				t.Errorf("MarkerName() = %q, want %q", got, tt.marker)
			}
		})
	}
}

func TestKindUnknown(t *testing.T) {
	var k Kind = "bogus"
	if k.Dir() != "" || k.FileName() != "" || k.MarkerName() != "" {
		t.Error("unknown kind must map to empty names")
	}
}
