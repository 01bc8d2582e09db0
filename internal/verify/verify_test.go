package verify

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/assert/cmp"

	"github.com/typescript-eslint/tsequiv/internal/estree"
	"github.com/typescript-eslint/tsequiv/internal/jsparse"
)

func touch(t *testing.T, path, content string) {
	t.Helper()
	assert.NilError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	assert.NilError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscover(t *testing.T) {
	jsDir, tsDir := t.TempDir(), t.TempDir()
	touch(t, filepath.Join(jsDir, "a.js"), "")
	touch(t, filepath.Join(jsDir, "lib", "b.js"), "")
	touch(t, filepath.Join(jsDir, "c.js"), "")
	touch(t, filepath.Join(jsDir, "notes.md"), "")
	touch(t, filepath.Join(tsDir, "a.ts"), "")
	touch(t, filepath.Join(tsDir, "a.tsx"), "")
	touch(t, filepath.Join(tsDir, "lib", "b.ts"), "")

	d, err := Discover(jsDir, tsDir, []string{".tsx", ".ts"})
	assert.NilError(t, err)
	assert.DeepEqual(t, d.Pairs, []Pair{
		{Name: "a", JS: filepath.Join(jsDir, "a.js"), TS: filepath.Join(tsDir, "a.tsx")},
		{Name: "lib/b", JS: filepath.Join(jsDir, "lib", "b.js"), TS: filepath.Join(tsDir, "lib", "b.ts")},
	})
	assert.DeepEqual(t, d.UnmatchedJS, []string{filepath.Join(jsDir, "c.js")})

	_, err = Discover(filepath.Join(jsDir, "missing"), tsDir, []string{".ts"})
	assert.ErrorContains(t, err, "discovering pairs")
}

type fakeParser struct {
	trees map[string]estree.RawNode
	calls atomic.Int32
}

func (f *fakeParser) Parse(_ context.Context, path string) estree.RawNode {
	f.calls.Add(1)
	return f.trees[path]
}

func tsProgram(statements ...any) estree.CompilerNode {
	return estree.CompilerNode{"kind": float64(estree.KindSourceFile), "statements": statements}
}

func tsCall(name string) map[string]any {
	return map[string]any{
		"kind": float64(estree.KindExpressionStatement),
		"expression": map[string]any{
			"kind":       float64(estree.KindCallExpression),
			"expression": map[string]any{"kind": float64(estree.KindIdentifier), "escapedText": name},
			"arguments":  []any{},
		},
	}
}

func testVerifier(t *testing.T) (*Verifier, []Pair) {
	dir := t.TempDir()
	js := func(name, src string) string {
		path := filepath.Join(dir, name+".js")
		touch(t, path, src)
		return path
	}

	pairs := []Pair{
		{Name: "same", JS: js("same", "foo();"), TS: "same.ts"},
		{Name: "different", JS: js("different", "bar();"), TS: "different.ts"},
		{Name: "broken", JS: js("broken", "foo("), TS: "broken.ts"},
	}
	ts := &fakeParser{trees: map[string]estree.RawNode{
		"same.ts":      tsProgram(tsCall("foo")),
		"different.ts": tsProgram(tsCall("foo")),
		"broken.ts":    tsProgram(tsCall("foo")),
	}}
	return &Verifier{JS: jsparse.New(), TS: ts, Workers: 2, Explain: true}, pairs
}

func TestVerifierRun(t *testing.T) {
	v, pairs := testVerifier(t)
	results, err := v.Run(context.Background(), pairs)
	assert.NilError(t, err)
	assert.Equal(t, len(results), 3)

	assert.Equal(t, results[0].Pair.Name, "same")
	assert.Assert(t, results[0].Equal)
	assert.NilError(t, results[0].Err)

	assert.Equal(t, results[1].Pair.Name, "different")
	assert.Assert(t, !results[1].Equal)
	assert.NilError(t, results[1].Err)
	assert.Assert(t, results[1].Mismatch != nil)
	assert.Equal(t, results[1].Mismatch.Path, "/body/0/expression/callee/name")

	assert.Assert(t, !results[2].Equal)
	assert.Assert(t, errors.Is(results[2].Err, ErrJSParse))
	assert.Assert(t, results[2].Mismatch == nil)

	assert.Equal(t, v.TS.(*fakeParser).calls.Load(), int32(3))
}

func TestVerifierCanceled(t *testing.T) {
	v, pairs := testVerifier(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := v.Run(ctx, pairs)
	assert.Assert(t, errors.Is(err, context.Canceled))
}

func TestVerifierNoPairs(t *testing.T) {
	v, _ := testVerifier(t)
	results, err := v.Run(context.Background(), nil)
	assert.NilError(t, err)
	assert.Equal(t, len(results), 0)
}

func TestReporter(t *testing.T) {
	v, pairs := testVerifier(t)
	results, err := v.Run(context.Background(), pairs)
	assert.NilError(t, err)

	var buf bytes.Buffer
	r := &Reporter{W: &buf, Diff: true}
	assert.NilError(t, r.Write(results, []string{"orphan.js"}))

	out := buf.String()
	assert.Assert(t, cmp.Contains(out, "OK   same\n"))
	assert.Assert(t, cmp.Contains(out, "DIFF different\n"))
	assert.Assert(t, cmp.Contains(out, "first difference at /body/0/expression/callee/name"))
	assert.Assert(t, cmp.Contains(strings.ReplaceAll(out, " ", ""), `"name":"bar"`))
	assert.Assert(t, cmp.Contains(out, "\n- "))
	assert.Assert(t, cmp.Contains(out, "FAIL broken: js file did not parse"))
	assert.Assert(t, cmp.Contains(out, "MISS orphan.js: no ts counterpart"))
	assert.Assert(t, cmp.Contains(out, "3 pairs: 1 equal, 1 different, 1 failed, 1 unmatched\n"))
	assert.Assert(t, !bytes.Contains(buf.Bytes(), []byte("\x1b[")))
}

func TestSummary(t *testing.T) {
	s := Summarize([]Result{{Equal: true}, {Equal: true}}, nil)
	assert.Assert(t, s.OK())
	s = Summarize([]Result{{Equal: true, Err: ErrTSParse}}, nil)
	assert.Assert(t, !s.OK())
	assert.Equal(t, s.Failed, 1)
}
