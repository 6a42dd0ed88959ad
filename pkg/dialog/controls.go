package dialog

import (
	"math"
	"strconv"

	"github.com/goliatone/go-scriptdialog/internal/color"
	"github.com/goliatone/go-scriptdialog/internal/inline"
)

// control carries the identity and geometry fields shared by every class.
type control struct {
	name string
	hint string
	geo  Geometry
}

func newControl(rec Record) control {
	return control{
		name: getString(rec, "name", ""),
		hint: getString(rec, "hint", ""),
		geo: Geometry{
			X:      getInt(rec, "x", 0),
			Y:      getInt(rec, "y", 0),
			Width:  getInt(rec, "width", 1),
			Height: getInt(rec, "height", 1),
		},
	}
}

func (c *control) Name() string       { return c.name }
func (c *control) Hint() string       { return c.hint }
func (c *control) Geometry() Geometry { return c.geo }

// Label is a static text control. It produces no read-back value and does
// not participate in persistence.
type Label struct {
	control
	text string
}

func newLabel(rec Record) *Label {
	return &Label{control: newControl(rec), text: getString(rec, "label", "")}
}

func (l *Label) Kind() Kind   { return KindLabel }
func (l *Label) Text() string { return l.text }
func (l *Label) Value() any   { return nil }

// Edit is a single-line text control. The declaration's `text` field, when
// present, overrides `value` as the initial-text source so edit controls can
// stand in for other text-bearing classes.
type Edit struct {
	control
	text      string
	multiline bool
}

func newEdit(rec Record, multiline bool) *Edit {
	e := &Edit{control: newControl(rec), multiline: multiline}
	e.text = getString(rec, "value", "")
	e.text = getString(rec, "text", e.text)
	return e
}

func (e *Edit) Kind() Kind {
	if e.multiline {
		return KindTextbox
	}
	return KindEdit
}

func (e *Edit) Text() string        { return e.text }
func (e *Edit) SetText(text string) { e.text = text }
func (e *Edit) Value() any          { return e.text }

func (e *Edit) EncodeValue() string      { return inline.Encode(e.text) }
func (e *Edit) DecodeValue(token string) { e.text = inline.Decode(token) }

// IntEdit is an integer-only edit control with an optional declared range.
type IntEdit struct {
	control
	value int
	min   int
	max   int
}

func newIntEdit(rec Record) *IntEdit {
	e := &IntEdit{
		control: newControl(rec),
		value:   getInt(rec, "value", 0),
		min:     getInt(rec, "min", math.MinInt),
		max:     getInt(rec, "max", math.MaxInt),
	}
	// Inverted or empty bounds collapse to the full range. The value itself
	// is deliberately not clamped.
	if e.min >= e.max {
		e.min = math.MinInt
		e.max = math.MaxInt
	}
	return e
}

func (e *IntEdit) Kind() Kind         { return KindIntEdit }
func (e *IntEdit) Int() int           { return e.value }
func (e *IntEdit) SetInt(v int)       { e.value = v }
func (e *IntEdit) Bounds() (int, int) { return e.min, e.max }
func (e *IntEdit) Value() any         { return e.value }

func (e *IntEdit) EncodeValue() string { return strconv.Itoa(e.value) }

func (e *IntEdit) DecodeValue(token string) {
	if v, err := strconv.Atoi(token); err == nil {
		e.value = v
	}
}

// FloatEdit is a floating-point edit control with an optional declared range
// and spinner step.
type FloatEdit struct {
	control
	value float64
	min   float64
	max   float64
	step  float64
}

func newFloatEdit(rec Record) *FloatEdit {
	e := &FloatEdit{
		control: newControl(rec),
		value:   getFloat(rec, "value", 0),
		min:     getFloat(rec, "min", -math.MaxFloat64),
		max:     getFloat(rec, "max", math.MaxFloat64),
		step:    getFloat(rec, "step", 0),
	}
	if e.min >= e.max {
		e.min = -math.MaxFloat64
		e.max = math.MaxFloat64
	}
	return e
}

func (e *FloatEdit) Kind() Kind                 { return KindFloatEdit }
func (e *FloatEdit) Float() float64             { return e.value }
func (e *FloatEdit) SetFloat(v float64)         { e.value = v }
func (e *FloatEdit) Bounds() (float64, float64) { return e.min, e.max }
func (e *FloatEdit) Step() float64              { return e.step }
func (e *FloatEdit) Value() any                 { return e.value }

// Shortest decimal text that round-trips the exact value; always `.` for the
// decimal point, never grouping separators.
func (e *FloatEdit) EncodeValue() string {
	return strconv.FormatFloat(e.value, 'g', -1, 64)
}

func (e *FloatEdit) DecodeValue(token string) {
	if v, err := strconv.ParseFloat(token, 64); err == nil {
		e.value = v
	}
}

// Dropdown is a single-selection list control.
type Dropdown struct {
	control
	options  []string
	selected string
}

func newDropdown(rec Record) *Dropdown {
	d := &Dropdown{
		control:  newControl(rec),
		options:  getStrings(rec, "items"),
		selected: getString(rec, "value", ""),
	}
	// Once options exist the selection must be one of them; an absent value
	// falls back to the first option. An empty list keeps the declared value
	// untouched.
	if len(d.options) > 0 && !contains(d.options, d.selected) {
		d.selected = d.options[0]
	}
	return d
}

func (d *Dropdown) Kind() Kind        { return KindDropdown }
func (d *Dropdown) Options() []string { return d.options }
func (d *Dropdown) Selected() string  { return d.selected }
func (d *Dropdown) Value() any        { return d.selected }

// SetSelected changes the selection. Values outside the option list are
// ignored when options exist, preserving the membership invariant.
func (d *Dropdown) SetSelected(value string) {
	if len(d.options) > 0 && !contains(d.options, value) {
		return
	}
	d.selected = value
}

func (d *Dropdown) EncodeValue() string      { return inline.Encode(d.selected) }
func (d *Dropdown) DecodeValue(token string) { d.selected = inline.Decode(token) }

// Checkbox is a boolean control with its own label text.
type Checkbox struct {
	control
	label   string
	checked bool
}

func newCheckbox(rec Record) *Checkbox {
	return &Checkbox{
		control: newControl(rec),
		label:   getString(rec, "label", ""),
		checked: getBool(rec, "value", false),
	}
}

func (c *Checkbox) Kind() Kind        { return KindCheckbox }
func (c *Checkbox) Label() string     { return c.label }
func (c *Checkbox) Checked() bool     { return c.checked }
func (c *Checkbox) SetChecked(v bool) { c.checked = v }
func (c *Checkbox) Value() any        { return c.checked }

func (c *Checkbox) EncodeValue() string {
	if c.checked {
		return "1"
	}
	return "0"
}

func (c *Checkbox) DecodeValue(token string) { c.checked = token != "0" }

// ColorPicker is a color-swatch button control. The alpha flag decides
// whether the alpha channel is part of the canonical text form.
type ColorPicker struct {
	control
	value color.Color
	alpha bool
}

func newColorPicker(rec Record, alpha bool) *ColorPicker {
	return &ColorPicker{
		control: newControl(rec),
		value:   color.Parse(getString(rec, "value", "")),
		alpha:   alpha,
	}
}

func (c *ColorPicker) Kind() Kind {
	if c.alpha {
		return KindColorAlpha
	}
	return KindColor
}

func (c *ColorPicker) Hex() string        { return c.value.Hex(c.alpha) }
func (c *ColorPicker) SetHex(text string) { c.value = color.Parse(text) }
func (c *ColorPicker) Value() any         { return c.value.Hex(c.alpha) }

func (c *ColorPicker) EncodeValue() string { return inline.Encode(c.value.Hex(c.alpha)) }

func (c *ColorPicker) DecodeValue(token string) {
	c.value = color.Parse(inline.Decode(token))
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
