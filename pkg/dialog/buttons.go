package dialog

// ButtonID is the canonical identifier giving semantic meaning (notably
// Cancel) to an otherwise free-text button label.
type ButtonID int

// ButtonNone marks a button with no canonical identity.
const ButtonNone ButtonID = -1

const (
	ButtonOK ButtonID = iota
	ButtonYes
	ButtonSave
	ButtonApply
	ButtonClose
	ButtonNo
	ButtonCancel
	ButtonHelp
	ButtonContextHelp
)

// Button pairs a canonical id (or ButtonNone) with user-visible label text.
type Button struct {
	ID    ButtonID
	Label string
}

// buttonCatalog maps canonical button names to their ids. Lookups are done
// on lower-cased input; see ButtonIDByName.
var buttonCatalog = map[string]ButtonID{
	"ok":           ButtonOK,
	"yes":          ButtonYes,
	"save":         ButtonSave,
	"apply":        ButtonApply,
	"close":        ButtonClose,
	"no":           ButtonNo,
	"cancel":       ButtonCancel,
	"help":         ButtonHelp,
	"context_help": ButtonContextHelp,
}

// ButtonIDByName resolves a canonical button name. Unrecognized names yield
// ButtonNone; whether that is acceptable is the caller's decision. The name
// must already be lower-cased.
func ButtonIDByName(name string) ButtonID {
	if id, ok := buttonCatalog[name]; ok {
		return id
	}
	return ButtonNone
}
