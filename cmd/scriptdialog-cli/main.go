package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-scriptdialog/pkg/decl"
	"github.com/goliatone/go-scriptdialog/pkg/dialog"
	"github.com/goliatone/go-scriptdialog/pkg/luadialog"
	"github.com/goliatone/go-scriptdialog/pkg/renderers/tui"
)

func main() {
	source := flag.String("source", "", "JSON or YAML dialog declaration file")
	luaSource := flag.String("lua", "", "Lua script returning dialog tables (controls[, buttons[, ids]])")
	state := flag.String("state", "", "serialized state to restore before running")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	logger := zerolog.Nop()
	if *verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	d, err := buildDialog(*source, *luaSource, logger)
	if err != nil {
		log.Fatalf("Failed to build dialog: %v", err)
	}
	if *state != "" {
		d.Deserialize(*state)
	}

	runner := tui.New()
	if err := runner.Run(context.Background(), d); err != nil {
		log.Fatalf("Dialog aborted: %v", err)
	}

	if label, ok := d.Pressed(); ok {
		fmt.Printf("Pressed: %s\n", label)
	} else {
		fmt.Println("Cancelled")
	}

	values, err := json.MarshalIndent(d.Values(), "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode values: %v", err)
	}
	fmt.Println(string(values))
	fmt.Printf("State: %s\n", d.Serialize())
}

func buildDialog(source, luaSource string, logger zerolog.Logger) (*dialog.Dialog, error) {
	opts := []dialog.Option{dialog.WithLogger(logger)}

	switch {
	case luaSource != "":
		script, err := os.ReadFile(luaSource)
		if err != nil {
			return nil, err
		}
		engine := luadialog.NewEngine()
		if err := engine.Execute(string(script)); err != nil {
			return nil, err
		}
		return luadialog.New(engine.State(), true, opts...)
	case source != "":
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, err
		}
		doc, err := decl.Parse(data, source)
		if err != nil {
			return nil, err
		}
		return doc.Dialog(opts...)
	}
	return nil, fmt.Errorf("either -source or -lua is required")
}
