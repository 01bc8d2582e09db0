package tsparse

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"gotest.tools/v3/assert"
	"gotest.tools/v3/assert/cmp"

	"github.com/typescript-eslint/tsequiv/internal/estree"
)

// Wire output for `let x: number = 1;`.
const letWire = `{"kind":298,"statements":[{"kind":234,"declarationList":{"kind":252,"flags":1,` +
	`"declarations":[{"kind":251,"name":{"kind":79,"escapedText":"x"},"type":{"kind":146},` +
	`"initializer":{"kind":8,"text":"1"}}]}}]}`

func TestDecode(t *testing.T) {
	tree, err := Decode([]byte("warning: noise\n" + letWire + "\n"))
	assert.NilError(t, err)
	assert.Equal(t, tree.Shape(), estree.ShapeCompiler)
	assert.Equal(t, tree["kind"], float64(estree.KindSourceFile))

	canonical := estree.Normalize(tree)
	assert.DeepEqual(t, canonical, estree.Node{
		"type": "Program",
		"body": []any{
			estree.Node{
				"type": "VariableDeclaration",
				"kind": "let",
				"declarations": []any{
					estree.Node{
						"type": "VariableDeclarator",
						"id":   estree.Node{"type": "Identifier", "name": "x"},
						"init": estree.Node{"type": "Literal", "value": int64(1)},
					},
				},
			},
		},
	})
}

func TestDecodeFailures(t *testing.T) {
	_, err := Decode(nil)
	assert.Assert(t, errors.Is(err, ErrEmptyOutput))

	_, err = Decode([]byte("  \n\n"))
	assert.Assert(t, errors.Is(err, ErrEmptyOutput))

	_, err = Decode([]byte("{}"))
	assert.Assert(t, errors.Is(err, ErrEmptyOutput))

	_, err = Decode([]byte(`{"kind":`))
	assert.ErrorContains(t, err, "decoding companion output")

	_, err = Decode([]byte(`{"statements":[]}`))
	assert.ErrorContains(t, err, "no numeric kind")
}

func TestScriptPrelude(t *testing.T) {
	script := Script(true)
	assert.Assert(t, strings.HasPrefix(script, "const KINDS = {"))
	assert.Assert(t, cmp.Contains(script, `"Identifier":79`))
	assert.Assert(t, cmp.Contains(script, `"VariableStatement":234`))
	assert.Assert(t, cmp.Contains(script, "const EMBEDDED = true;"))
	assert.Assert(t, cmp.Contains(script, "function toWire("))
	assert.Assert(t, cmp.Contains(Script(false), "const EMBEDDED = false;"))
}

func TestPreflight(t *testing.T) {
	assert.NilError(t, Preflight("a.tsx", "const el = <div>{x as number}</div>;"))
	assert.NilError(t, Preflight("a.ts", "const n = <number>x;"))

	err := Preflight("b.tsx", "function (")
	assert.Assert(t, errors.Is(err, ErrPreflight))
	assert.ErrorContains(t, err, "b.tsx")

	// Angle-bracket assertions are not valid TSX.
	assert.Assert(t, errors.Is(Preflight("c.tsx", "const n = <number>x;"), ErrPreflight))
}

func writeFile(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NilError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestParseFailuresAreNil(t *testing.T) {
	for _, p := range []Parser{
		NewExecParser(WithNode("tsequiv-missing-node")),
		NewRuntimeParser(WithModulePaths(t.TempDir())),
	} {
		assert.Assert(t, p.Parse(context.Background(), filepath.Join(t.TempDir(), "missing.ts")) == nil)
		assert.Assert(t, p.Parse(context.Background(), writeFile(t, "bad.tsx", "let = ;")) == nil)
	}

	small := NewExecParser(WithMaxFileSize(2))
	assert.Assert(t, small.Parse(context.Background(), writeFile(t, "a.ts", "let a = 1;")) == nil)
}

func TestParseSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	p := NewExecParser(WithTracerProvider(tp), WithNode("tsequiv-missing-node"))

	p.Parse(context.Background(), writeFile(t, "bad.tsx", "function ("))

	spans := recorder.Ended()
	assert.Equal(t, len(spans), 1)
	assert.Equal(t, spans[0].Name(), "tsparse.Parse")
	assert.Equal(t, spans[0].Status().Code.String(), "Error")
	assert.Assert(t, cmp.Contains(spans[0].Status().Description, "preflight"))
}

// requireTypeScript skips unless node can resolve the typescript package.
func requireTypeScript(t *testing.T) {
	t.Helper()
	node, err := exec.LookPath("node")
	if err != nil {
		t.Skip("node not found")
	}
	if err := exec.Command(node, "-e", "require('typescript')").Run(); err != nil {
		t.Skip("typescript package not resolvable")
	}
}

func TestExecParser(t *testing.T) {
	requireTypeScript(t)

	path := writeFile(t, "a.tsx", "'use strict';\nasync function f(this: Window, a: number, ...b: string[]): Promise<void> {}\n")
	raw := NewExecParser().Parse(context.Background(), path)
	assert.Assert(t, raw != nil)

	canonical := estree.Normalize(raw).(estree.Node)
	body := canonical["body"].([]any)
	assert.Equal(t, len(body), 1)
	assert.DeepEqual(t, body[0], estree.Node{
		"type": "FunctionDeclaration",
		"id":   estree.Node{"type": "Identifier", "name": "f"},
		"params": []any{
			estree.Node{"type": "Identifier", "name": "a"},
			estree.Node{"type": "RestElement", "argument": estree.Node{"type": "Identifier", "name": "b"}},
		},
		"body":       estree.Node{"type": "BlockStatement", "body": []any{}},
		"async":      true,
		"generator":  false,
		"expression": false,
	})
}

func TestExecParserTimeout(t *testing.T) {
	requireTypeScript(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Assert(t, NewExecParser().Parse(ctx, writeFile(t, "a.ts", "let a = 1;")) == nil)
}
