package luadialog

import (
	"errors"
	"fmt"

	lua "github.com/Shopify/go-lua"

	"github.com/goliatone/go-scriptdialog/pkg/dialog"
)

// ErrNotTable is returned when the value at stack slot 1 is not the
// expected dialog table.
var ErrNotTable = errors.New("luadialog: cannot create config dialog from non-table value")

// Declarations never nest deeper than record → items list, but scripts are
// untrusted so conversion still carries a depth limit.
const maxDepth = 4

// New builds a Dialog from the script values on the stack: the control list
// at slot 1, and when includeButtons is set, an optional button-label list
// at slot 2 and an optional name→label id table at slot 3. The stack is left
// exactly as it was found on every path.
func New(l *lua.State, includeButtons bool, opts ...dialog.Option) (*dialog.Dialog, error) {
	if !l.IsTable(1) {
		return nil, ErrNotTable
	}
	root := listToGo(l, 1)

	if includeButtons {
		var labels []string
		if l.IsTable(2) {
			var err error
			if labels, err = stringList(l, 2); err != nil {
				return nil, err
			}
		}
		opts = append(opts, dialog.WithButtons(labels...))

		if l.IsTable(3) {
			bindings, err := buttonBindings(l, 3)
			if err != nil {
				return nil, err
			}
			opts = append(opts, dialog.WithButtonBindings(bindings...))
		}
	}

	return dialog.New(root, opts...)
}

// ReadBack pushes the read-back results for a closed dialog: when the dialog
// is button-bearing, first either false (cancelled) or the pressed button's
// label, then always a table mapping control names to their current values.
// It returns the number of values pushed, 2 or 1.
func ReadBack(l *lua.State, d *dialog.Dialog) int {
	pushed := 0
	if d.HasButtons() {
		if label, ok := d.Pressed(); ok {
			l.PushString(label)
		} else {
			l.PushBoolean(false)
		}
		pushed++
	}

	controls := d.Controls()
	l.CreateTable(0, len(controls))
	for _, ctl := range controls {
		pushValue(l, ctl.Value())
		l.SetField(-2, ctl.Name())
	}
	return pushed + 1
}

func pushValue(l *lua.State, value any) {
	switch v := value.(type) {
	case string:
		l.PushString(v)
	case int:
		l.PushInteger(v)
	case float64:
		l.PushNumber(v)
	case bool:
		l.PushBoolean(v)
	default:
		l.PushNil()
	}
}

// listToGo converts the array part of the table at index into a generic
// list, keeping non-record entries as-is so the dialog build can reject
// them.
func listToGo(l *lua.State, index int) []any {
	index = l.AbsIndex(index)
	n := l.RawLength(index)
	list := make([]any, 0, n)
	for i := 1; i <= n; i++ {
		l.RawGetInt(index, i)
		list = append(list, toGoValue(l, -1, maxDepth))
		l.Pop(1)
	}
	return list
}

func toGoValue(l *lua.State, index, depth int) any {
	switch l.TypeOf(index) {
	case lua.TypeString:
		s, _ := l.ToString(index)
		return s
	case lua.TypeNumber:
		n, _ := l.ToNumber(index)
		return n
	case lua.TypeBoolean:
		return l.ToBoolean(index)
	case lua.TypeTable:
		if depth <= 0 {
			return nil
		}
		return tableToGo(l, index, depth-1)
	}
	return nil
}

// tableToGo converts a table with an array part into []any and anything
// else into a string-keyed record. Control records are string-keyed and item
// lists are pure arrays, so the two shapes never mix in valid declarations.
func tableToGo(l *lua.State, index, depth int) any {
	index = l.AbsIndex(index)
	if n := l.RawLength(index); n > 0 {
		list := make([]any, 0, n)
		for i := 1; i <= n; i++ {
			l.RawGetInt(index, i)
			list = append(list, toGoValue(l, -1, depth))
			l.Pop(1)
		}
		return list
	}

	rec := make(map[string]any)
	l.PushNil()
	for l.Next(index) {
		// Guard the key type before ToString: converting a number key in
		// place would break table traversal.
		if l.TypeOf(-2) == lua.TypeString {
			key, _ := l.ToString(-2)
			rec[key] = toGoValue(l, -1, depth)
		}
		l.Pop(1)
	}
	return rec
}

// stringList reads an ordered list of strings; any non-string entry is a
// build error, matching the strict handling of button declarations.
func stringList(l *lua.State, index int) ([]string, error) {
	index = l.AbsIndex(index)
	n := l.RawLength(index)
	out := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		l.RawGetInt(index, i)
		if l.TypeOf(-1) != lua.TypeString {
			l.Pop(1)
			return nil, fmt.Errorf("luadialog: button label %d is not a string", i)
		}
		s, _ := l.ToString(-1)
		out = append(out, s)
		l.Pop(1)
	}
	return out, nil
}

// buttonBindings reads the canonical-name → label table at index.
func buttonBindings(l *lua.State, index int) ([]dialog.ButtonBinding, error) {
	index = l.AbsIndex(index)
	var out []dialog.ButtonBinding
	l.PushNil()
	for l.Next(index) {
		if l.TypeOf(-2) != lua.TypeString || l.TypeOf(-1) != lua.TypeString {
			l.Pop(2)
			return nil, errors.New("luadialog: button id table must map names to label strings")
		}
		name, _ := l.ToString(-2)
		label, _ := l.ToString(-1)
		out = append(out, dialog.ButtonBinding{Name: name, Label: label})
		l.Pop(1)
	}
	return out, nil
}
