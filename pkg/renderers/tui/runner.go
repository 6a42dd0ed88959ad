// Package tui is a reference host-toolkit implementation that walks a built
// dialog's controls as terminal prompts. Real GUI hosts supply their own
// widgets; this package exists so dialogs are usable (and testable)
// end-to-end without one.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-scriptdialog/pkg/dialog"
)

// Option configures the runner.
type Option func(*Runner)

// WithPromptDriver overrides the prompt driver used by the runner.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// Runner prompts for every control of a dialog in declaration order and
// records which button the user picks.
type Runner struct {
	driver PromptDriver
}

// New creates a Runner backed by an interactive terminal driver unless one
// is injected via WithPromptDriver.
func New(opts ...Option) *Runner {
	r := &Runner{driver: newSurveyDriver()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run walks the dialog's controls, writing each answer back into the
// control, then presents the button choices and records the pressed index.
// Aborting any prompt leaves the dialog with no button pressed and returns
// ErrAborted.
func (r *Runner) Run(ctx context.Context, d *dialog.Dialog) error {
	for _, ctl := range d.Controls() {
		if err := r.prompt(ctx, ctl); err != nil {
			d.Press(-1)
			return err
		}
	}

	if !d.HasButtons() {
		return nil
	}
	buttons := d.Buttons()
	labels := make([]string, len(buttons))
	for i, btn := range buttons {
		labels[i] = btn.Label
	}
	idx, err := r.driver.Select(ctx, SelectConfig{Message: "Close dialog with", Options: labels})
	if err != nil {
		d.Press(-1)
		return err
	}
	d.Press(idx)
	return nil
}

func (r *Runner) prompt(ctx context.Context, ctl dialog.Control) error {
	switch c := ctl.(type) {
	case *dialog.Label:
		return r.driver.Info(ctx, c.Text())

	case *dialog.Edit:
		cfg := InputConfig{Message: c.Name(), Default: c.Text(), Help: c.Hint()}
		if c.Kind() == dialog.KindTextbox {
			text, err := r.driver.TextArea(ctx, TextAreaConfig{Message: c.Name(), Default: c.Text(), Help: c.Hint()})
			if err != nil {
				return err
			}
			c.SetText(text)
			return nil
		}
		text, err := r.driver.Input(ctx, cfg)
		if err != nil {
			return err
		}
		c.SetText(text)
		return nil

	case *dialog.IntEdit:
		min, max := c.Bounds()
		text, err := r.driver.Input(ctx, InputConfig{
			Message:   c.Name(),
			Default:   strconv.Itoa(c.Int()),
			Help:      c.Hint(),
			Validator: intValidator(min, max),
		})
		if err != nil {
			return err
		}
		if v, err := strconv.Atoi(strings.TrimSpace(text)); err == nil {
			c.SetInt(v)
		}
		return nil

	case *dialog.FloatEdit:
		min, max := c.Bounds()
		text, err := r.driver.Input(ctx, InputConfig{
			Message:   c.Name(),
			Default:   strconv.FormatFloat(c.Float(), 'g', -1, 64),
			Help:      c.Hint(),
			Validator: floatValidator(min, max),
		})
		if err != nil {
			return err
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
			c.SetFloat(v)
		}
		return nil

	case *dialog.Dropdown:
		options := c.Options()
		if len(options) == 0 {
			return nil
		}
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      c.Name(),
			Options:      options,
			DefaultIndex: indexOf(options, c.Selected()),
			Help:         c.Hint(),
		})
		if err != nil {
			return err
		}
		if idx >= 0 && idx < len(options) {
			c.SetSelected(options[idx])
		}
		return nil

	case *dialog.Checkbox:
		message := c.Label()
		if message == "" {
			message = c.Name()
		}
		checked, err := r.driver.Confirm(ctx, ConfirmConfig{Message: message, Default: c.Checked(), Help: c.Hint()})
		if err != nil {
			return err
		}
		c.SetChecked(checked)
		return nil

	case *dialog.ColorPicker:
		text, err := r.driver.Input(ctx, InputConfig{
			Message:   c.Name(),
			Default:   c.Hex(),
			Help:      c.Hint(),
			Validator: hexColorValidator,
		})
		if err != nil {
			return err
		}
		c.SetHex(text)
		return nil
	}
	return nil
}

func intValidator(min, max int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("enter a whole number")
		}
		if v < min || v > max {
			return fmt.Errorf("value must be between %d and %d", min, max)
		}
		return nil
	}
}

func floatValidator(min, max float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if v < min || v > max {
			return fmt.Errorf("value must be between %g and %g", min, max)
		}
		return nil
	}
}

func hexColorValidator(s string) error {
	s = strings.TrimSpace(s)
	if len(s) == 0 || s[0] != '#' {
		return fmt.Errorf("enter a #RRGGBB or #RRGGBBAA color")
	}
	switch len(s) {
	case 4, 7, 9:
	default:
		return fmt.Errorf("enter a #RRGGBB or #RRGGBBAA color")
	}
	for _, c := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return fmt.Errorf("enter a #RRGGBB or #RRGGBBAA color")
		}
	}
	return nil
}
