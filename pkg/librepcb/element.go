package librepcb

// Kind identifies the type of a generated library element.
type Kind string

// Element kinds, named after the top-level node they emit.
const (
	KindPackage   Kind = "package"
	KindSymbol    Kind = "symbol"
	KindComponent Kind = "component"
	KindDevice    Kind = "device"
)

// Dir returns the library subdirectory elements of this kind live in.
func (k Kind) Dir() string {
	switch k {
	case KindPackage:
		return "pkg"
	case KindSymbol:
		return "sym"
	case KindComponent:
		return "cmp"
	case KindDevice:
		return "dev"
	}
	return ""
}

// FileName returns the document file name for this kind.
func (k Kind) FileName() string {
	switch k {
	case KindPackage:
		return "package.lp"
	case KindSymbol:
		return "symbol.lp"
	case KindComponent:
		return "component.lp"
	case KindDevice:
		return "device.lp"
	}
	return ""
}

// MarkerName returns the name of the directory marker file LibrePCB uses to
// recognize an element directory.
func (k Kind) MarkerName() string {
	switch k {
	case KindPackage:
		return ".librepcb-pkg"
	case KindSymbol:
		return ".librepcb-sym"
	case KindComponent:
		return ".librepcb-cmp"
	case KindDevice:
		return ".librepcb-dev"
	}
	return ""
}

// MarkerContent is the format version written into every marker file.
const MarkerContent = "0.1"

// Element is one fully serialized library element.
type Element struct {
	Kind Kind
	UUID string
	Data []byte
}

// Metadata carries the user-supplied descriptive fields shared by all
// top-level elements. Quoted fields are escaped at emission time; Category
// is an identifier reference and is rendered only when set.
type Metadata struct {
	Name        string
	Description string
	Keywords    string
	Author      string
	Version     string
	Category    string
}

// Layer is a board or schematic layer a polygon group can target.
type Layer struct {
	ID   string // identifier used in documents, e.g. "top_cu"
	Name string // display name, e.g. "Top Copper"
}

// Board layers for generated footprints and the schematic layers used by
// symbol outlines and text labels.
var (
	LayerTopCopper    = Layer{ID: "top_cu", Name: "Top Copper"}
	LayerTopPlacement = Layer{ID: "top_placement", Name: "Top Placement"}
	LayerTopStopMask  = Layer{ID: "top_stop_mask", Name: "Top Stop Mask"}

	LayerSymbolOutlines = Layer{ID: "sym_outlines", Name: "Outlines"}
	LayerSymbolNames    = Layer{ID: "sym_names", Name: "Names"}
	LayerSymbolValues   = Layer{ID: "sym_values", Name: "Values"}
)
