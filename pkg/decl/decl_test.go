package decl

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-scriptdialog/pkg/dialog"
)

const jsonDoc = `{
  "controls": [
    {"class": "label", "name": "heading", "label": "Export settings"},
    {"class": "intedit", "name": "retries", "value": 3, "min": 0, "max": 10},
    {"class": "dropdown", "name": "format", "value": "srt", "items": ["srt", "ass"]}
  ],
  "buttons": ["Export", "Abort"],
  "ids": {"ok": "Export", "cancel": "Abort"}
}`

const yamlDoc = `
controls:
  - class: checkbox
    name: confirm
    label: "Ask before overwrite"
    value: true
buttons: []
`

func TestParseJSON(t *testing.T) {
	doc, err := Parse([]byte(jsonDoc), "export.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.Controls) != 3 {
		t.Fatalf("expected 3 controls, got %d", len(doc.Controls))
	}
	if diff := cmp.Diff([]string{"Export", "Abort"}, doc.Buttons); diff != "" {
		t.Fatalf("buttons mismatch (-want +got):\n%s", diff)
	}
}

func TestParseYAML(t *testing.T) {
	doc, err := Parse([]byte(yamlDoc), "confirm.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(doc.Controls) != 1 {
		t.Fatalf("expected 1 control, got %d", len(doc.Controls))
	}
}

func TestParseRejectsUnknownExtension(t *testing.T) {
	if _, err := Parse([]byte("{}"), "dialog.toml"); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"dialogs/export.json": &fstest.MapFile{Data: []byte(jsonDoc)},
	}
	doc, err := Load(fsys, "dialogs/export.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(doc.Controls) != 3 {
		t.Fatalf("expected 3 controls, got %d", len(doc.Controls))
	}
}

func TestDialogFromJSONDocument(t *testing.T) {
	doc, err := Parse([]byte(jsonDoc), "export.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	d, err := doc.Dialog()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	want := []dialog.Button{
		{ID: dialog.ButtonOK, Label: "Export"},
		{ID: dialog.ButtonCancel, Label: "Abort"},
	}
	if diff := cmp.Diff(want, d.Buttons()); diff != "" {
		t.Fatalf("buttons mismatch (-want +got):\n%s", diff)
	}

	values := d.Values()
	if values["retries"] != 3 {
		t.Fatalf("expected retries 3, got %v", values["retries"])
	}
	if values["format"] != "srt" {
		t.Fatalf("expected format srt, got %v", values["format"])
	}
}

func TestDialogFromYAMLDocumentIsButtonBearing(t *testing.T) {
	doc, err := Parse([]byte(yamlDoc), "confirm.yaml")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	d, err := doc.Dialog()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !d.HasButtons() {
		t.Fatalf("an empty buttons list still makes the dialog button-bearing")
	}
	// No labels declared, so the defaults kick in.
	if len(d.Buttons()) != 2 || d.Buttons()[0].Label != "OK" {
		t.Fatalf("expected default OK/Cancel, got %v", d.Buttons())
	}
}

func TestDialogControlOnlyDocument(t *testing.T) {
	doc, err := Parse([]byte(`{"controls": [{"class": "edit", "name": "v"}]}`), "plain.json")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	d, err := doc.Dialog()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if d.HasButtons() {
		t.Fatalf("document without buttons must build a control-only dialog")
	}
}
