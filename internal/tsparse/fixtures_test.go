package tsparse_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/typescript-eslint/tsequiv/internal/equiv/equivtest"
	"github.com/typescript-eslint/tsequiv/internal/estree"
	"github.com/typescript-eslint/tsequiv/internal/tsparse"
)

// TestFixtureWire checks the recorded output.json of every equivalence fixture
// against what the compiler produces for output.tsx today.
func TestFixtureWire(t *testing.T) {
	if _, err := exec.LookPath("node"); err != nil {
		t.Skip("node not found")
	}
	if err := exec.Command("node", "-e", "require('typescript')").Run(); err != nil {
		t.Skip("typescript package not resolvable")
	}

	parser := tsparse.NewExecParser()
	for _, f := range equivtest.LoadFixtures(t, "../equiv/testdata/*.txtar") {
		if f.TS == "" {
			continue
		}
		t.Run(f.Name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), f.TSName)
			assert.NilError(t, os.WriteFile(path, []byte(f.TS), 0o644))

			parsed := parser.Parse(context.Background(), path)
			assert.Assert(t, parsed != nil)
			assert.DeepEqual(t, estree.Normalize(parsed), estree.Normalize(equivtest.ParseTS(t, f.Wire)))
		})
	}
}
