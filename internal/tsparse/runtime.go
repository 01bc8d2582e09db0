package tsparse

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/console"
	"github.com/dop251/goja_nodejs/require"

	"github.com/typescript-eslint/tsequiv/internal/estree"
)

// RuntimeParser runs the companion script in process. Each call gets a fresh
// goja runtime, so the parser is safe for concurrent use.
type RuntimeParser struct {
	settings
}

func NewRuntimeParser(opts ...Option) *RuntimeParser {
	return &RuntimeParser{settings: newSettings(opts)}
}

func (p *RuntimeParser) Parse(ctx context.Context, path string) estree.RawNode {
	return p.run(ctx, "goja", path, p.evaluate)
}

func (p *RuntimeParser) evaluate(ctx context.Context, path, src string) (estree.CompilerNode, error) {
	vm := goja.New()
	stop := context.AfterFunc(ctx, func() {
		vm.Interrupt(ctx.Err())
	})
	defer stop()

	registry := require.NewRegistry(require.WithGlobalFolders(p.modulePaths...))
	req := registry.Enable(vm)
	console.Enable(vm)

	if _, err := vm.RunString(Script(true)); err != nil {
		return nil, fmt.Errorf("loading companion script: %w", err)
	}

	ts, err := p.loadTypeScript(vm, req)
	if err != nil {
		return nil, err
	}

	toWire, ok := goja.AssertFunction(vm.Get("toWire"))
	if !ok {
		return nil, errors.New("companion script does not define toWire")
	}
	result, err := toWire(goja.Undefined(), ts, vm.ToValue(path), vm.ToValue(src))
	if err != nil {
		var interrupted *goja.InterruptedError
		if errors.As(err, &interrupted) {
			return nil, fmt.Errorf("companion script for %s: %w", path, ctx.Err())
		}
		return nil, fmt.Errorf("companion script for %s: %w", path, err)
	}
	return Decode([]byte(result.String()))
}

func (p *RuntimeParser) loadTypeScript(vm *goja.Runtime, req *require.RequireModule) (goja.Value, error) {
	if p.bundle == "" {
		ts, err := req.Require("typescript")
		if err != nil {
			return nil, fmt.Errorf("resolving typescript: %w", err)
		}
		return ts, nil
	}

	bundle, err := os.ReadFile(p.bundle)
	if err != nil {
		return nil, fmt.Errorf("reading typescript bundle: %w", err)
	}
	if _, err := vm.RunScript(p.bundle, string(bundle)); err != nil {
		return nil, fmt.Errorf("loading typescript bundle: %w", err)
	}
	ts := vm.Get("ts")
	if ts == nil || goja.IsUndefined(ts) {
		return nil, fmt.Errorf("typescript bundle %s does not define ts", p.bundle)
	}
	return ts, nil
}
