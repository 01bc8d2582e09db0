// Package equiv decides whether a JS tree and a TS tree are structurally the
// same program once types are erased.
package equiv

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/typescript-eslint/tsequiv/internal/estree"
)

var ErrEncode = errors.New("canonical encoding failed")

func emptyProgram() estree.Node {
	return estree.Node{"type": estree.ESTreeKindProgram, "body": []any{}}
}

// Canonical normalizes a raw tree, substituting an empty program when the tree
// normalizes to nothing.
func Canonical(raw estree.RawNode) any {
	canonical := estree.Normalize(raw)
	if canonical == nil {
		return emptyProgram()
	}
	return canonical
}

func isEmptyProgram(v any) bool {
	m, ok := v.(map[string]any)
	if !ok || m["type"] != estree.ESTreeKindProgram {
		return false
	}
	body, _ := m["body"].([]any)
	return len(body) == 0
}

// Encode is the stable text encoding of a canonical tree. Map keys are sorted.
// Non-finite numbers have no encoding.
func Encode(canonical any, opts ...json.Options) ([]byte, error) {
	if path, ok := nonFinite(canonical); ok {
		return nil, fmt.Errorf("%w: non-finite number at %s", ErrEncode, path)
	}
	b, err := json.Marshal(canonical, append([]json.Options{json.Deterministic(true)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return b, nil
}

func isNonFinite(v any) bool {
	f, ok := v.(float64)
	return ok && (math.IsNaN(f) || math.IsInf(f, 0))
}

// nonFinite returns the path of the first NaN or infinity in a canonical tree.
func nonFinite(canonical any) (string, bool) {
	if isNonFinite(canonical) {
		return "/", true
	}
	if list, ok := canonical.([]any); ok {
		for i, item := range list {
			if isNonFinite(item) {
				return "/" + strconv.Itoa(i), true
			}
		}
	}
	var found string
	estree.Traverse(canonical, func(path string, node estree.Node) {
		if found != "" {
			return
		}
		for key, v := range node {
			values, isList := v.([]any)
			if !isList {
				values = []any{v}
			}
			for _, item := range values {
				if isNonFinite(item) {
					found = path + "/" + key
					return
				}
			}
		}
	}, nil)
	return found, found != ""
}

// Compare reports whether js and ts are structurally equal. Two absent trees
// are equal; one absent tree never is. An encoding failure is returned along
// with a false verdict.
func Compare(js, ts estree.RawNode) (bool, error) {
	jsEmpty, tsEmpty := estree.IsEmpty(js), estree.IsEmpty(ts)
	if jsEmpty || tsEmpty {
		return jsEmpty && tsEmpty, nil
	}

	jsCanonical, tsCanonical := Canonical(js), Canonical(ts)

	jsEmptyProgram, tsEmptyProgram := isEmptyProgram(jsCanonical), isEmptyProgram(tsCanonical)
	if jsEmptyProgram || tsEmptyProgram {
		return jsEmptyProgram && tsEmptyProgram, nil
	}

	jsText, err := Encode(jsCanonical)
	if err != nil {
		return false, fmt.Errorf("js tree: %w", err)
	}
	tsText, err := Encode(tsCanonical)
	if err != nil {
		return false, fmt.Errorf("ts tree: %w", err)
	}
	return string(jsText) == string(tsText), nil
}

// StructurallyEqual is Compare for callers that only want a verdict. Failures
// are logged and count as not equal.
func StructurallyEqual(js, ts estree.RawNode) (equal bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("comparison panicked", slog.Any("panic", r))
			equal = false
		}
	}()

	equal, err := Compare(js, ts)
	if err != nil {
		slog.Error("comparison failed", slog.Any("error", err))
		return false
	}
	return equal
}

type Mismatch struct {
	JS   string
	TS   string
	Path string
	Diff string
}

func (m *Mismatch) String() string {
	var sb strings.Builder
	if m.Path != "" {
		fmt.Fprintf(&sb, "first difference at %s\n", m.Path)
	}
	sb.WriteString(m.Diff)
	return sb.String()
}

// Explain describes how two trees differ. It returns nil when they are equal.
func Explain(js, ts estree.RawNode) (*Mismatch, error) {
	equal, err := Compare(js, ts)
	if err != nil {
		return nil, err
	}
	if equal {
		return nil, nil
	}

	jsCanonical, tsCanonical := canonicalOrNil(js), canonicalOrNil(ts)
	jsText, err := Encode(jsCanonical, jsontext.WithIndent("  "))
	if err != nil {
		return nil, err
	}
	tsText, err := Encode(tsCanonical, jsontext.WithIndent("  "))
	if err != nil {
		return nil, err
	}

	path, _ := estree.Diverge(jsCanonical, tsCanonical)
	return &Mismatch{
		JS:   string(jsText),
		TS:   string(tsText),
		Path: path,
		Diff: lineDiff(string(jsText), string(tsText)),
	}, nil
}

func canonicalOrNil(raw estree.RawNode) any {
	if estree.IsEmpty(raw) {
		return nil
	}
	return Canonical(raw)
}

func lineDiff(a, b string) string {
	dmp := diffmatchpatch.New()
	chars1, chars2, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(chars1, chars2, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}
