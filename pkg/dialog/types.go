package dialog

// Kind identifies one of the closed set of control classes a declaration can
// ask for. The string values match the `class` field scripts use.
type Kind string

const (
	KindLabel      Kind = "label"
	KindEdit       Kind = "edit"
	KindTextbox    Kind = "textbox"
	KindIntEdit    Kind = "intedit"
	KindFloatEdit  Kind = "floatedit"
	KindDropdown   Kind = "dropdown"
	KindCheckbox   Kind = "checkbox"
	KindColor      Kind = "color"
	KindColorAlpha Kind = "coloralpha"
)

// Geometry is the declared grid cell of a control. The model only carries
// these numbers through to the host toolkit; overlap and bounds are a
// rendering concern.
type Geometry struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Control is one built dialog field. Implementations are the concrete
// control types in this package; the set is closed.
type Control interface {
	// Name is the read-back and persistence key. Names are not required to
	// be unique across a dialog.
	Name() string
	// Hint is the tooltip text supplied by the declaration.
	Hint() string
	// Kind reports which control class built this descriptor.
	Kind() Kind
	// Geometry returns the declared grid cell.
	Geometry() Geometry
	// Value returns the control's current value in its natural dynamic type
	// (string, int, float64 or bool). Labels return nil.
	Value() any
}

// Persistable is the optional capability implemented by every control whose
// value survives serialize/deserialize round trips. Label is the only kind
// that does not implement it.
type Persistable interface {
	Control
	// EncodeValue returns the delimiter-safe token for the current value.
	EncodeValue() string
	// DecodeValue replaces the current value from a token produced by
	// EncodeValue. Malformed tokens leave the value unchanged.
	DecodeValue(token string)
}
