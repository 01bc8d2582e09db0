package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/assert/cmp"

	"github.com/typescript-eslint/tsequiv/internal/verify"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func write(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	assert.NilError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	assert.NilError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDumpJS(t *testing.T) {
	path := write(t, t.TempDir(), "a.js", "'use strict';\nfoo(1);\n")
	out, _, err := execute(t, "dump", path)
	assert.NilError(t, err)
	compact := strings.ReplaceAll(out, " ", "")
	assert.Assert(t, cmp.Contains(compact, `"type":"Program"`))
	assert.Assert(t, cmp.Contains(compact, `"name":"foo"`))
	assert.Assert(t, !strings.Contains(out, "use strict"))
}

func TestDumpUnparsable(t *testing.T) {
	path := write(t, t.TempDir(), "a.js", "foo(")
	_, _, err := execute(t, "dump", path)
	assert.ErrorContains(t, err, "did not parse")
}

func TestCompareTSFailure(t *testing.T) {
	dir := t.TempDir()
	js := write(t, dir, "a.js", "foo();")
	ts := write(t, dir, "a.ts", "foo();")
	_, _, err := execute(t, "compare", "--node", filepath.Join(dir, "no-such-node"), js, ts)
	assert.Assert(t, errors.Is(err, verify.ErrTSParse))
}

func TestVerifyUnmatched(t *testing.T) {
	jsDir, tsDir := t.TempDir(), t.TempDir()
	write(t, jsDir, "a.js", "foo();")
	out, _, err := execute(t, "verify", "--color", "never", "--js-dir", jsDir, "--ts-dir", tsDir)
	assert.NilError(t, err)
	assert.Assert(t, cmp.Contains(out, "MISS "+filepath.Join(jsDir, "a.js")))
	assert.Assert(t, cmp.Contains(out, "0 pairs: 0 equal, 0 different, 0 failed, 1 unmatched"))
}

func TestVerifyRequiresDirs(t *testing.T) {
	_, _, err := execute(t, "verify")
	assert.ErrorContains(t, err, "--js-dir and --ts-dir are required")
}

func TestFlagValidation(t *testing.T) {
	path := write(t, t.TempDir(), "a.js", "foo();")

	_, _, err := execute(t, "dump", "--color", "sometimes", path)
	assert.ErrorContains(t, err, "invalid --color")

	_, _, err = execute(t, "dump", "--mode", "wasm", path)
	assert.ErrorContains(t, err, "invalid mode")

	_, _, err = execute(t, "dump", "--workers", "0", path)
	assert.ErrorContains(t, err, "invalid workers")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := write(t, dir, "tsequiv.yaml", "mode: bogus\n")
	path := write(t, dir, "a.js", "foo();")
	_, _, err := execute(t, "dump", "--config", cfg, path)
	assert.ErrorContains(t, err, "invalid mode")

	_, _, err = execute(t, "dump", "--config", filepath.Join(dir, "missing.yaml"), path)
	assert.ErrorContains(t, err, "reading config")
}

func TestTraceLogsSpans(t *testing.T) {
	path := write(t, t.TempDir(), "a.js", "foo();")
	_, stderr, err := execute(t, "dump", "--trace", path)
	assert.NilError(t, err)
	assert.Assert(t, cmp.Contains(stderr, "span=jsparse.Parse"))
}
