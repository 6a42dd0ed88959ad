// Package decl loads dialog declarations from JSON or YAML documents, for
// hosts that ship dialog definitions as files rather than receiving them
// from a running script. The document shape mirrors the script-side inputs:
// an ordered `controls` list, an optional `buttons` label list, and an
// optional `ids` map assigning canonical button names to labels.
package decl

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-scriptdialog/pkg/dialog"
)

// Document is a parsed dialog declaration.
type Document struct {
	Controls []map[string]any  `json:"controls" yaml:"controls"`
	Buttons  []string          `json:"buttons" yaml:"buttons"`
	IDs      map[string]string `json:"ids" yaml:"ids"`
}

// Parse decodes a declaration document. The path is only used to pick the
// decoder by extension (`.json` vs `.yaml`/`.yml`) and to contextualize
// errors.
func Parse(data []byte, path string) (Document, error) {
	var doc Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("decl: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("decl: parse %s: %w", path, err)
		}
	default:
		return Document{}, fmt.Errorf("decl: unsupported declaration file %s", path)
	}
	return doc, nil
}

// Load reads and parses a declaration file from the provided filesystem.
func Load(fsys fs.FS, path string) (Document, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Document{}, fmt.Errorf("decl: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Dialog builds the dialog model described by the document. A document with
// a `buttons` list or an `ids` map is button-bearing; extra options are
// appended after the document-derived ones so callers can still attach a
// logger or more bindings.
func (doc Document) Dialog(opts ...dialog.Option) (*dialog.Dialog, error) {
	var buildOpts []dialog.Option
	if doc.Buttons != nil || len(doc.IDs) > 0 {
		buildOpts = append(buildOpts, dialog.WithButtons(doc.Buttons...))
	}
	if len(doc.IDs) > 0 {
		buildOpts = append(buildOpts, dialog.WithButtonBindings(doc.bindings()...))
	}
	buildOpts = append(buildOpts, opts...)
	return dialog.New(doc.Controls, buildOpts...)
}

// bindings returns the id assignments in a stable order so build failures
// are deterministic.
func (doc Document) bindings() []dialog.ButtonBinding {
	names := make([]string, 0, len(doc.IDs))
	for name := range doc.IDs {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]dialog.ButtonBinding, 0, len(names))
	for _, name := range names {
		out = append(out, dialog.ButtonBinding{Name: name, Label: doc.IDs[name]})
	}
	return out
}
