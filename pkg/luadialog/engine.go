// Package luadialog bridges a Lua state to the dialog model: it reads the
// declarative control and button tables a script leaves on the stack, builds
// a dialog.Dialog from them, and pushes read-back results into the script's
// execution context.
package luadialog

import lua "github.com/Shopify/go-lua"

// Engine is a thin wrapper around a Lua state with the standard libraries
// opened. It exists so hosts and tests have a single place to create and
// drive the interpreter the dialog tables come from.
type Engine struct {
	l *lua.State
}

// NewEngine creates a Lua state with the standard libraries loaded.
func NewEngine() *Engine {
	l := lua.NewState()
	lua.OpenLibraries(l)
	return &Engine{l: l}
}

// Execute runs a script in the engine's state. Values the script returns
// stay on the stack for New to consume.
func (e *Engine) Execute(script string) error {
	return lua.DoString(e.l, script)
}

// State exposes the underlying Lua state.
func (e *Engine) State() *lua.State {
	return e.l
}
