package dialog

import "github.com/rs/zerolog"

// ButtonBinding assigns a canonical id to a declared button by matching its
// label text. Name is one of the catalog's canonical names; unrecognized
// names resolve to ButtonNone, but a Label matching no declared button is a
// build error.
type ButtonBinding struct {
	Name  string
	Label string
}

// Option configures dialog construction.
type Option func(*Dialog)

// WithButtons makes the dialog button-bearing and declares the ordered
// button labels. Calling it with no labels still enables buttons; the
// default OK/Cancel pair is synthesized when nothing is declared.
func WithButtons(labels ...string) Option {
	return func(d *Dialog) {
		d.useButtons = true
		for _, label := range labels {
			d.buttons = append(d.buttons, Button{ID: ButtonNone, Label: label})
		}
	}
}

// WithButtonBindings resolves canonical ids for declared button labels. The
// bindings are applied during construction, after the labels from
// WithButtons are in place.
func WithButtonBindings(bindings ...ButtonBinding) Option {
	return func(d *Dialog) {
		d.bindings = append(d.bindings, bindings...)
	}
}

// WithLogger attaches a logger for build and interaction diagnostics. The
// default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(d *Dialog) {
		d.log = log
	}
}
