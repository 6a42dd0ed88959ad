package luadialog

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-scriptdialog/pkg/dialog"
)

const declScript = `return {
	{ class = "label", name = "heading", label = "Export" },
	{ class = "edit", name = "title", value = "old title" },
	{ class = "intedit", name = "count", value = 3, min = 0, max = 10 },
	{ class = "checkbox", name = "sure", label = "Really?", value = true },
	{ class = "dropdown", name = "mode", value = "b", items = { "a", "b" } },
}, { "Go", "Stop" }, { cancel = "Stop" }`

func TestNewFromScript(t *testing.T) {
	engine := NewEngine()
	if err := engine.Execute(declScript); err != nil {
		t.Fatalf("execute: %v", err)
	}

	d, err := New(engine.State(), true)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if len(d.Controls()) != 5 {
		t.Fatalf("expected 5 controls, got %d", len(d.Controls()))
	}
	wantButtons := []dialog.Button{
		{ID: dialog.ButtonNone, Label: "Go"},
		{ID: dialog.ButtonCancel, Label: "Stop"},
	}
	if diff := cmp.Diff(wantButtons, d.Buttons()); diff != "" {
		t.Fatalf("buttons mismatch (-want +got):\n%s", diff)
	}

	values := d.Values()
	if values["title"] != "old title" {
		t.Fatalf("expected edit text, got %v", values["title"])
	}
	// Lua numbers arrive as float64 and intedit coerces on extraction.
	if values["count"] != 3 {
		t.Fatalf("expected 3, got %v (%T)", values["count"], values["count"])
	}
	if values["sure"] != true {
		t.Fatalf("expected checked checkbox, got %v", values["sure"])
	}
	if values["mode"] != "b" {
		t.Fatalf("expected declared dropdown value, got %v", values["mode"])
	}
}

func TestNewRejectsNonTableRoot(t *testing.T) {
	engine := NewEngine()
	if err := engine.Execute(`return "not a table"`); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if _, err := New(engine.State(), true); !errors.Is(err, ErrNotTable) {
		t.Fatalf("expected ErrNotTable, got %v", err)
	}
}

func TestNewRejectsNonStringButtonLabel(t *testing.T) {
	engine := NewEngine()
	if err := engine.Execute(`return {}, { "Go", 7 }`); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if _, err := New(engine.State(), true); err == nil {
		t.Fatalf("expected error for numeric button label")
	}
}

func TestNewControlOnly(t *testing.T) {
	engine := NewEngine()
	if err := engine.Execute(`return { { class = "edit", name = "v" } }`); err != nil {
		t.Fatalf("execute: %v", err)
	}
	d, err := New(engine.State(), false)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if d.HasButtons() {
		t.Fatalf("control-only dialog must not be button-bearing")
	}
}

func TestReadBackPushesLabelAndValues(t *testing.T) {
	engine := NewEngine()
	if err := engine.Execute(declScript); err != nil {
		t.Fatalf("execute: %v", err)
	}
	d, err := New(engine.State(), true)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	d.Press(0)

	l := engine.State()
	base := l.Top()
	if n := ReadBack(l, d); n != 2 {
		t.Fatalf("expected 2 pushed values, got %d", n)
	}
	if l.Top() != base+2 {
		t.Fatalf("stack grew by %d, expected 2", l.Top()-base)
	}

	if !l.IsTable(-1) {
		t.Fatalf("top of stack must be the value table")
	}
	label, _ := l.ToString(-2)
	if label != "Go" {
		t.Fatalf("expected pressed label Go, got %q", label)
	}

	l.Field(-1, "sure")
	if !l.ToBoolean(-1) {
		t.Fatalf("expected checkbox true in read-back table")
	}
	l.Pop(1)

	l.Field(-1, "count")
	count, _ := l.ToInteger(-1)
	if count != 3 {
		t.Fatalf("expected count 3, got %d", count)
	}
	l.Pop(1)

	// Labels read back as nil.
	l.Field(-1, "heading")
	if !l.IsNil(-1) {
		t.Fatalf("label must read back nil")
	}
	l.Pop(1)
}

func TestReadBackCancelPushesFalse(t *testing.T) {
	engine := NewEngine()
	if err := engine.Execute(declScript); err != nil {
		t.Fatalf("execute: %v", err)
	}
	d, err := New(engine.State(), true)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	d.Press(1) // Stop carries the cancel id

	l := engine.State()
	if n := ReadBack(l, d); n != 2 {
		t.Fatalf("expected 2 pushed values, got %d", n)
	}
	if l.IsTable(-2) || l.ToBoolean(-2) {
		t.Fatalf("cancelled dialog must push false before the value table")
	}
}

func TestReadBackControlOnlyPushesOneValue(t *testing.T) {
	engine := NewEngine()
	if err := engine.Execute(`return { { class = "edit", name = "v", value = "x" } }`); err != nil {
		t.Fatalf("execute: %v", err)
	}
	d, err := New(engine.State(), false)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	l := engine.State()
	if n := ReadBack(l, d); n != 1 {
		t.Fatalf("expected 1 pushed value, got %d", n)
	}
	if !l.IsTable(-1) {
		t.Fatalf("read-back must push the value table")
	}
}
