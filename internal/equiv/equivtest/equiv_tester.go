// Package equivtest runs table-driven equivalence cases: JS source on one side,
// compiler-shape wire JSON on the other.
package equivtest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/go-json-experiment/json/jsontext"
	"golang.org/x/tools/txtar"
	"gotest.tools/v3/assert"

	"github.com/typescript-eslint/tsequiv/internal/equiv"
	"github.com/typescript-eslint/tsequiv/internal/estree"
	"github.com/typescript-eslint/tsequiv/internal/jsparse"
	"github.com/typescript-eslint/tsequiv/internal/tsparse"
)

type ValidTestCase struct {
	Name string
	JS   string
	// TS is the wire JSON of the TS counterpart. Indented JSON is accepted.
	TS   string
	Only bool
	Skip bool
}

type InvalidTestCase struct {
	Name string
	JS   string
	TS   string
	// Path is the expected first difference. Empty skips the check.
	Path string
	Only bool
	Skip bool
}

// ParseTS decodes wire JSON, compacting it first so fixtures can be indented.
func ParseTS(t *testing.T, wire string) estree.RawNode {
	t.Helper()
	if strings.TrimSpace(wire) == "" {
		return nil
	}
	v := jsontext.Value(wire)
	assert.NilError(t, v.Compact(), "invalid wire json")
	tree, err := tsparse.Decode(v)
	assert.NilError(t, err)
	return tree
}

func ParseJS(t *testing.T, src string) estree.RawNode {
	t.Helper()
	return jsparse.New().ParseSource(context.Background(), "input.js", src)
}

func caseName(prefix string, i int, name string) string {
	if name == "" {
		return prefix + "-" + strconv.Itoa(i)
	}
	return prefix + "-" + name
}

func RunEquivTester(t *testing.T, validTestCases []ValidTestCase, invalidTestCases []InvalidTestCase) {
	t.Parallel()
	onlyMode := slices.ContainsFunc(validTestCases, func(c ValidTestCase) bool { return c.Only }) ||
		slices.ContainsFunc(invalidTestCases, func(c InvalidTestCase) bool { return c.Only })

	for i, testCase := range validTestCases {
		t.Run(caseName("valid", i, testCase.Name), func(t *testing.T) {
			t.Parallel()
			if (onlyMode && !testCase.Only) || testCase.Skip {
				t.SkipNow()
			}

			js, ts := ParseJS(t, testCase.JS), ParseTS(t, testCase.TS)
			equal, err := equiv.Compare(js, ts)
			assert.NilError(t, err)
			if !equal {
				mismatch, err := equiv.Explain(js, ts)
				assert.NilError(t, err)
				t.Fatalf("Expected trees to be equal. JS:\n%v\nMismatch:\n%v", testCase.JS, mismatch)
			}
		})
	}

	for i, testCase := range invalidTestCases {
		t.Run(caseName("invalid", i, testCase.Name), func(t *testing.T) {
			t.Parallel()
			if (onlyMode && !testCase.Only) || testCase.Skip {
				t.SkipNow()
			}

			js, ts := ParseJS(t, testCase.JS), ParseTS(t, testCase.TS)
			equal, err := equiv.Compare(js, ts)
			assert.NilError(t, err)
			if equal {
				t.Fatalf("Expected trees to differ. JS:\n%v", testCase.JS)
			}
			if testCase.Path == "" {
				return
			}
			mismatch, err := equiv.Explain(js, ts)
			assert.NilError(t, err)
			assert.Assert(t, mismatch != nil)
			assert.Equal(t, mismatch.Path, testCase.Path, "first difference")
		})
	}
}

// Fixture files hold one case each. The archive comment is `equal` or
// `differ [path]`; input.js is the JS side and output.json the wire JSON of
// output.tsx (or output.ts), which is kept for reference and re-parsing.
type Fixture struct {
	Name   string
	Equal  bool
	Path   string
	JS     string
	TS     string
	Wire   string
	TSName string
}

func LoadFixtures(t *testing.T, pattern string) []Fixture {
	t.Helper()
	files, err := filepath.Glob(pattern)
	assert.NilError(t, err)
	assert.Assert(t, len(files) > 0, "no fixtures match %s", pattern)

	fixtures := make([]Fixture, 0, len(files))
	for _, file := range files {
		f, err := loadFixture(file)
		assert.NilError(t, err)
		fixtures = append(fixtures, f)
	}
	return fixtures
}

func loadFixture(file string) (Fixture, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return Fixture{}, err
	}
	archive := txtar.Parse(data)
	f := Fixture{Name: strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))}

	verdict := strings.Fields(string(archive.Comment))
	switch {
	case len(verdict) == 1 && verdict[0] == "equal":
		f.Equal = true
	case len(verdict) >= 1 && verdict[0] == "differ":
		if len(verdict) > 1 {
			f.Path = verdict[1]
		}
	default:
		return Fixture{}, fmt.Errorf("%s: comment must be `equal` or `differ [path]`", file)
	}

	for _, member := range archive.Files {
		switch member.Name {
		case "input.js":
			f.JS = string(member.Data)
		case "output.json":
			f.Wire = string(member.Data)
		case "output.tsx", "output.ts":
			f.TS = string(member.Data)
			f.TSName = member.Name
		default:
			return Fixture{}, fmt.Errorf("%s: unexpected file %s", file, member.Name)
		}
	}
	if f.JS == "" || f.Wire == "" {
		return Fixture{}, fmt.Errorf("%s: input.js and output.json are required", file)
	}
	return f, nil
}

// Cases splits fixtures into tester cases.
func Cases(fixtures []Fixture) ([]ValidTestCase, []InvalidTestCase) {
	var valid []ValidTestCase
	var invalid []InvalidTestCase
	for _, f := range fixtures {
		if f.Equal {
			valid = append(valid, ValidTestCase{Name: f.Name, JS: f.JS, TS: f.Wire})
		} else {
			invalid = append(invalid, InvalidTestCase{Name: f.Name, JS: f.JS, TS: f.Wire, Path: f.Path})
		}
	}
	return valid, invalid
}
