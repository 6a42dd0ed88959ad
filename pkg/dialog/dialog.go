// Package dialog builds typed interactive control descriptors from the
// untyped declarations an embedded extension script hands the host, reads
// their values back, and persists them as a flat string across invocations.
//
// Construction is atomic: either every declared control and button is valid
// and a usable Dialog is returned, or construction fails and no partial
// model exists. Malformed fields inside an otherwise well-formed declaration
// are repaired with per-type defaults instead of failing; see the package's
// control constructors for the exact rules.
package dialog

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-scriptdialog/internal/inline"
)

// Dialog owns the ordered controls and buttons built from one declaration.
// It is exclusively owned by the host dialog instance that created it and is
// not safe for concurrent use.
type Dialog struct {
	controls   []Control
	buttons    []Button
	useButtons bool
	pressed    int

	bindings []ButtonBinding
	log      zerolog.Logger
}

// New builds a Dialog from a declaration root. The root must be an ordered
// list of control records ([]Record, []map[string]any or []any of records);
// anything else fails construction. Button declarations arrive through
// WithButtons and WithButtonBindings.
func New(root any, opts ...Option) (*Dialog, error) {
	d := &Dialog{pressed: -1, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(d)
	}

	records, err := controlRecords(root)
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		ctl, err := buildControl(rec)
		if err != nil {
			return nil, err
		}
		geo := ctl.Geometry()
		d.log.Debug().
			Str("name", ctl.Name()).
			Str("class", string(ctl.Kind())).
			Int("x", geo.X).Int("y", geo.Y).
			Int("width", geo.Width).Int("height", geo.Height).
			Msg("created control")
		d.controls = append(d.controls, ctl)
	}

	if d.useButtons {
		for _, binding := range d.bindings {
			if err := d.applyBinding(binding); err != nil {
				return nil, err
			}
		}
	}
	d.bindings = nil

	if len(d.buttons) == 0 {
		d.buttons = append(d.buttons,
			Button{ID: ButtonOK, Label: "OK"},
			Button{ID: ButtonCancel, Label: "Cancel"},
		)
	}
	for i, btn := range d.buttons {
		d.log.Debug().Int("index", i).Str("label", btn.Label).Msg("created button")
	}

	return d, nil
}

// controlRecords validates the declaration root shape.
func controlRecords(root any) ([]Record, error) {
	switch typed := root.(type) {
	case []Record:
		return typed, nil
	case []map[string]any:
		records := make([]Record, len(typed))
		for i, rec := range typed {
			records[i] = rec
		}
		return records, nil
	case []any:
		records := make([]Record, 0, len(typed))
		for _, entry := range typed {
			switch rec := entry.(type) {
			case Record:
				records = append(records, rec)
			case map[string]any:
				records = append(records, rec)
			default:
				return nil, fmt.Errorf("%w: entry is %T, not a record", ErrBadControl, entry)
			}
		}
		return records, nil
	}
	return nil, ErrBadRoot
}

// buildControl is the single factory over the closed control-class set.
func buildControl(rec Record) (Control, error) {
	class := strings.ToLower(getString(rec, "class", ""))
	switch Kind(class) {
	case KindLabel:
		return newLabel(rec), nil
	case KindEdit:
		return newEdit(rec, false), nil
	case KindTextbox:
		return newEdit(rec, true), nil
	case KindIntEdit:
		return newIntEdit(rec), nil
	case KindFloatEdit:
		return newFloatEdit(rec), nil
	case KindDropdown:
		return newDropdown(rec), nil
	case KindCheckbox:
		return newCheckbox(rec), nil
	case KindColor:
		return newColorPicker(rec, false), nil
	case KindColorAlpha:
		return newColorPicker(rec, true), nil
	}
	return nil, fmt.Errorf("%w: unknown control class %q", ErrBadControl, class)
}

func (d *Dialog) applyBinding(binding ButtonBinding) error {
	id := ButtonIDByName(strings.ToLower(binding.Name))
	for i := range d.buttons {
		if d.buttons[i].Label == binding.Label {
			d.buttons[i].ID = id
			return nil
		}
	}
	return fmt.Errorf("dialog: invalid button for id %q", binding.Name)
}

// Controls returns the built descriptors in declaration order.
func (d *Dialog) Controls() []Control { return d.controls }

// Buttons returns the dialog's buttons in declaration order.
func (d *Dialog) Buttons() []Button { return d.buttons }

// HasButtons reports whether buttons participate in read-back.
func (d *Dialog) HasButtons() bool { return d.useButtons }

// Press records which button fired. Indexes outside [0, len(buttons)) other
// than the -1 "none" sentinel are reported and coerced to none.
func (d *Dialog) Press(index int) {
	if index != -1 && (index < 0 || index >= len(d.buttons)) {
		d.log.Error().Int("index", index).Msg("button index not in range; defaulting to none")
		index = -1
	}
	d.pressed = index
}

// Pressed returns the pressed button's label. ok is false when no button
// was pressed or when the pressed button's canonical id is Cancel,
// regardless of its label text.
func (d *Dialog) Pressed() (label string, ok bool) {
	if d.pressed == -1 || d.buttons[d.pressed].ID == ButtonCancel {
		d.log.Info().Msg("dialog cancelled")
		return "", false
	}
	label = d.buttons[d.pressed].Label
	d.log.Info().Str("label", label).Msg("dialog accepted")
	return label, true
}

// Values returns every control's current read-back value keyed by name, in
// declaration order; with duplicate names the later control wins. Labels
// contribute nil.
func (d *Dialog) Values() map[string]any {
	values := make(map[string]any, len(d.controls))
	for _, ctl := range d.controls {
		values[ctl.Name()] = ctl.Value()
	}
	return values
}

// Serialize flattens every persistable control into `name:token` pieces
// joined by `|`, in declaration order. Names pass through the inline codec
// so embedded delimiters cannot corrupt the format. Dialogs with no
// persistable controls produce the empty string.
func (d *Dialog) Serialize() string {
	var b strings.Builder
	for _, ctl := range d.controls {
		p, ok := ctl.(Persistable)
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(inline.Encode(p.Name()))
		b.WriteByte(':')
		b.WriteString(p.EncodeValue())
	}
	return b.String()
}

// Deserialize restores control values from a string produced by Serialize.
// Each `|`-separated piece is split on its first `:`; the decoded name
// selects every matching persistable control, not just the first. Pieces
// with no colon are skipped and unmatched names are ignored, so stale
// persisted state from removed or renamed controls drops out harmlessly.
func (d *Dialog) Deserialize(state string) {
	for _, piece := range strings.Split(state, "|") {
		sep := strings.IndexByte(piece, ':')
		if sep < 0 {
			continue
		}
		name := inline.Decode(piece[:sep])
		token := piece[sep+1:]
		for _, ctl := range d.controls {
			if p, ok := ctl.(Persistable); ok && p.Name() == name {
				p.DecodeValue(token)
			}
		}
	}
}
