// Package script implements the scripting facade external collaborator: a
// jQuery-like $(selector) API over *dom.Element, backed by goja. The core
// (pkg/style, pkg/layout, pkg/dom) never imports this package — scripts
// reach into the DOM only through the narrow surface registered here,
// matching spec.md section 1's "external collaborator, specified only by
// the interfaces" framing for scripting.
package script

import (
	"fmt"
	"log/slog"

	"github.com/dop251/goja"

	"wisp/pkg/dom"
)

// Engine executes JavaScript against a *dom.Element document root.
type Engine struct {
	vm     *goja.Runtime
	logger *slog.Logger
}

// New creates an Engine with a fresh goja runtime and the console API
// registered, grounded on the teacher's pkg/js/engine.go + console.go.
func New(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	vm := goja.New()
	e := &Engine{vm: vm, logger: logger}
	registerConsole(vm, logger)
	return e
}

// Execute registers the $(selector) facade bound to root and runs each
// script in order, synchronously, matching spec.md section 5's
// "scripts run to completion, synchronously" framing for host-driven
// script execution (distinct from pkg/dom's own event-callback dispatch).
func (e *Engine) Execute(root *dom.Element, scripts []string) error {
	registerDollar(e.vm, root)
	for i, src := range scripts {
		if _, err := e.vm.RunString(src); err != nil {
			return fmt.Errorf("script: script %d: %w", i, err)
		}
	}
	return nil
}
