package dialog

import "errors"

var (
	// ErrBadRoot is returned when the declaration root is not an ordered
	// list of control records.
	ErrBadRoot = errors.New("dialog: declaration is not a list of control records")
	// ErrBadControl is returned when a list entry is not a record or names
	// an unknown control class.
	ErrBadControl = errors.New("dialog: bad control table entry")
)
