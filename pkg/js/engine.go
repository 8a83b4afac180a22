package js

import (
	"fmt"
	"io"
	"os"

	"fixedgrid/pkg/scene"

	"github.com/dop251/goja"
)

// Engine runs scene scripts. Each Run starts from a fresh runtime, so
// scripts cannot see each other's globals.
type Engine struct {
	out io.Writer
	err io.Writer
}

// New creates an engine whose console writes to stdout and stderr.
func New() *Engine {
	return &Engine{out: os.Stdout, err: os.Stderr}
}

// SetConsole redirects console.log (out) and console.warn/error (errOut).
func (e *Engine) SetConsole(out, errOut io.Writer) {
	e.out = out
	e.err = errOut
}

// Run executes src and returns the scene it built. The script must pick a
// grid with fixed(), uniform() or balanced(); the resulting scene is
// validated before it is returned.
func (e *Engine) Run(src string) (*scene.Scene, error) {
	return e.RunNamed("script", src)
}

// RunNamed is Run with a script name used in error positions.
func (e *Engine) RunNamed(name, src string) (*scene.Scene, error) {
	vm := goja.New()

	c := &consoleAPI{out: e.out, err: e.err}
	c.register(vm)

	ctx := registerScene(vm)

	if _, err := vm.RunScript(name, src); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if ctx.scene.Kind == "" {
		return nil, fmt.Errorf("%s: script did not choose a grid", name)
	}
	if err := ctx.scene.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return ctx.scene, nil
}
