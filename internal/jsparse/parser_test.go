package jsparse

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"gotest.tools/v3/assert"

	"github.com/typescript-eslint/tsequiv/internal/estree"
)

func parseCanonical(t *testing.T, src string) estree.Node {
	t.Helper()
	raw := New().ParseSource(context.Background(), "test.js", src)
	assert.Assert(t, raw != nil, "parse failed: %s", src)
	assert.Equal(t, raw.Shape(), estree.ShapeEsprima)
	return estree.Normalize(raw).(estree.Node)
}

func firstStatement(t *testing.T, src string) estree.Node {
	t.Helper()
	body := parseCanonical(t, src)["body"].([]any)
	assert.Assert(t, len(body) > 0)
	return body[0].(estree.Node)
}

func ident(name string) estree.Node {
	return estree.Node{"type": "Identifier", "name": name}
}

func TestParseFunctionDeclaration(t *testing.T) {
	stmt := firstStatement(t, `function greet(name, greeting = "Hi", ...rest) { return greeting + name; }`)
	assert.DeepEqual(t, stmt, estree.Node{
		"type":       "FunctionDeclaration",
		"id":         ident("greet"),
		"params":     []any{ident("name"), ident("greeting"), estree.Node{"type": "RestElement", "argument": ident("rest")}},
		"generator":  false,
		"expression": false,
		"async":      false,
		"body": estree.Node{
			"type": "BlockStatement",
			"body": []any{
				estree.Node{
					"type": "ReturnStatement",
					"argument": estree.Node{
						"type":     "BinaryExpression",
						"operator": "+",
						"left":     ident("greeting"),
						"right":    ident("name"),
					},
				},
			},
		},
	})
}

func TestParseDeclarations(t *testing.T) {
	for src, kind := range map[string]string{
		"var a = 1;":   "var",
		"let a = 1;":   "let",
		"const a = 1;": "const",
	} {
		t.Run(kind, func(t *testing.T) {
			stmt := firstStatement(t, src)
			assert.DeepEqual(t, stmt, estree.Node{
				"type": "VariableDeclaration",
				"kind": kind,
				"declarations": []any{
					estree.Node{
						"type": "VariableDeclarator",
						"id":   ident("a"),
						"init": estree.Node{"type": "Literal", "value": int64(1)},
					},
				},
			})
		})
	}
}

func TestParseLiterals(t *testing.T) {
	cases := map[string]estree.Node{
		"42;":      {"type": "Literal", "value": int64(42)},
		"3.14;":    {"type": "Literal", "value": 3.14},
		"true;":    {"type": "Literal", "value": true},
		"null;":    {"type": "Literal"},
		"x = 's';": nil,
	}
	for src, want := range cases {
		t.Run(src, func(t *testing.T) {
			expression := firstStatement(t, src)["expression"]
			if want == nil {
				assert.DeepEqual(t, expression.(estree.Node)["right"], estree.Node{"type": "Literal", "value": "s"})
				return
			}
			assert.DeepEqual(t, expression, want)
		})
	}
}

func TestParseDirectivePrologue(t *testing.T) {
	program := parseCanonical(t, "'use strict';\nfoo();\n'not a directive';")
	body := program["body"].([]any)
	assert.Equal(t, len(body), 2)
	assert.Equal(t, body[0].(estree.Node)["expression"].(estree.Node)["type"], "CallExpression")
}

func TestParseOperators(t *testing.T) {
	cases := map[string]estree.Node{
		"a && b;": {"type": "LogicalExpression", "operator": "&&", "left": ident("a"), "right": ident("b")},
		"a ?? b;": {"type": "LogicalExpression", "operator": "??", "left": ident("a"), "right": ident("b")},
		"a ** b;": {"type": "BinaryExpression", "operator": "**", "left": ident("a"), "right": ident("b")},
		"a += b;": {"type": "AssignmentExpression", "operator": "+=", "left": ident("a"), "right": ident("b")},
		"a = b;":  {"type": "AssignmentExpression", "operator": "=", "left": ident("a"), "right": ident("b")},
		"!a;":     {"type": "UnaryExpression", "operator": "!", "argument": ident("a"), "prefix": true},
		"typeof a;": {
			"type": "UnaryExpression", "operator": "typeof", "argument": ident("a"), "prefix": true,
		},
		"a++;": {"type": "UpdateExpression", "operator": "++", "argument": ident("a"), "prefix": false},
		"--a;": {"type": "UpdateExpression", "operator": "--", "argument": ident("a"), "prefix": true},
	}
	for src, want := range cases {
		t.Run(src, func(t *testing.T) {
			assert.DeepEqual(t, firstStatement(t, src)["expression"], want)
		})
	}
}

func TestParseMemberAndObject(t *testing.T) {
	stmt := firstStatement(t, "console.log(a[0], { b, c: 1 });")
	assert.DeepEqual(t, stmt["expression"], estree.Node{
		"type": "CallExpression",
		"callee": estree.Node{
			"type":     "MemberExpression",
			"computed": false,
			"object":   ident("console"),
			"property": ident("log"),
		},
		"arguments": []any{
			estree.Node{
				"type":     "MemberExpression",
				"computed": true,
				"object":   ident("a"),
				"property": estree.Node{"type": "Literal", "value": int64(0)},
			},
			estree.Node{
				"type": "ObjectExpression",
				"properties": []any{
					estree.Node{
						"type": "Property", "key": ident("b"), "value": ident("b"),
						"computed": false, "kind": "init", "method": false, "shorthand": true,
					},
					estree.Node{
						"type": "Property", "key": ident("c"), "value": estree.Node{"type": "Literal", "value": int64(1)},
						"computed": false, "kind": "init", "method": false, "shorthand": false,
					},
				},
			},
		},
	})
}

func TestParseArrow(t *testing.T) {
	stmt := firstStatement(t, "const f = async (x) => x;")
	init := stmt["declarations"].([]any)[0].(estree.Node)["init"].(estree.Node)
	assert.DeepEqual(t, init, estree.Node{
		"type":       "ArrowFunctionExpression",
		"params":     []any{ident("x")},
		"body":       ident("x"),
		"generator":  false,
		"expression": true,
		"async":      true,
	})
}

func TestParseFailureIsNil(t *testing.T) {
	p := New()
	assert.Assert(t, p.ParseSource(context.Background(), "bad.js", "function (") == nil)
	assert.Assert(t, p.ParseSource(context.Background(), "typed.js", "let a: string = 1;") == nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Assert(t, p.ParseSource(ctx, "a.js", "a();") == nil)

	small := New(WithMaxFileSize(4))
	assert.Assert(t, small.ParseSource(context.Background(), "a.js", "a(); b();") == nil)

	assert.Assert(t, p.Parse(context.Background(), filepath.Join(t.TempDir(), "missing.js")) == nil)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.js")
	assert.NilError(t, os.WriteFile(path, []byte("\xef\xbb\xbfa();"), 0o644))
	raw := New().Parse(context.Background(), path)
	assert.Assert(t, raw != nil)
	assert.Equal(t, len(raw.Fields()["body"].([]any)), 1)
}

func TestParseSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	p := New(WithTracerProvider(tp))

	p.ParseSource(context.Background(), "ok.js", "a();")
	p.ParseSource(context.Background(), "bad.js", "a(")

	spans := recorder.Ended()
	assert.Equal(t, len(spans), 2)
	assert.Equal(t, spans[0].Name(), "jsparse.Parse")
	assert.Equal(t, spans[0].Status().Code.String(), "Unset")
	assert.Equal(t, spans[1].Status().Code.String(), "Error")
	assert.Assert(t, len(spans[1].Events()) > 0)
}
