// Package scriptdialog turns declarative dialog descriptions authored by
// embedded extension scripts into typed control models, reads their values
// back, and persists them across invocations. The root package re-exports
// the most common entry points; the full API lives in pkg/dialog and its
// sibling packages.
package scriptdialog

import (
	"github.com/goliatone/go-scriptdialog/pkg/decl"
	"github.com/goliatone/go-scriptdialog/pkg/dialog"
)

// Dialog aliases the core dialog model.
type Dialog = dialog.Dialog

// Control aliases the built control descriptor interface.
type Control = dialog.Control

// Persistable aliases the optional persistence capability of controls.
type Persistable = dialog.Persistable

// Button aliases the (id, label) button pair.
type Button = dialog.Button

// ButtonBinding aliases the canonical-name → label id assignment.
type ButtonBinding = dialog.ButtonBinding

// Option aliases the dialog construction option.
type Option = dialog.Option

// New builds a dialog from a declaration root; see dialog.New.
func New(root any, opts ...Option) (*Dialog, error) {
	return dialog.New(root, opts...)
}

// WithButtons makes the dialog button-bearing with the given labels.
func WithButtons(labels ...string) Option {
	return dialog.WithButtons(labels...)
}

// WithButtonBindings assigns canonical ids to declared button labels.
func WithButtonBindings(bindings ...ButtonBinding) Option {
	return dialog.WithButtonBindings(bindings...)
}

// ParseDocument decodes a JSON or YAML declaration document; see decl.Parse.
func ParseDocument(data []byte, path string) (decl.Document, error) {
	return decl.Parse(data, path)
}
