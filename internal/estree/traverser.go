package estree

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

type traverser struct {
	onEnter func(path string, node Node)
	onExit  func(path string, node Node)
}

// Traverse walks a canonical tree depth-first. Paths are JSON-pointer-like
// ("/body/0/expression"); map keys are visited in sorted order.
func Traverse(root any, onEnter func(path string, node Node), onExit func(path string, node Node)) {
	t := traverser{
		onEnter,
		onExit,
	}

	t.traverse(root, "")
}

func (t *traverser) traverse(v any, path string) {
	switch v := v.(type) {
	case []any:
		for i, item := range v {
			t.traverse(item, path+"/"+strconv.Itoa(i))
		}
	case map[string]any:
		if t.onEnter != nil {
			t.onEnter(path, v)
		}
		for _, key := range sortedKeys(v) {
			t.traverse(v[key], path+"/"+escapePointer(key))
		}
		if t.onExit != nil {
			t.onExit(path, v)
		}
	}
}

// Diverge returns the first path at which two canonical trees differ.
func Diverge(a, b any) (string, bool) {
	return diverge(a, b, "")
}

func diverge(a, b any, path string) (string, bool) {
	switch a := a.(type) {
	case map[string]any:
		bm, ok := b.(map[string]any)
		if !ok {
			return rootPath(path), true
		}
		keys := append(sortedKeys(a), sortedKeys(bm)...)
		slices.Sort(keys)
		for _, key := range slices.Compact(keys) {
			av, aok := a[key]
			bv, bok := bm[key]
			child := path + "/" + escapePointer(key)
			if aok != bok {
				return child, true
			}
			if p, differ := diverge(av, bv, child); differ {
				return p, true
			}
		}
		return "", false
	case []any:
		bs, ok := b.([]any)
		if !ok {
			return rootPath(path), true
		}
		for i := range min(len(a), len(bs)) {
			if p, differ := diverge(a[i], bs[i], path+"/"+strconv.Itoa(i)); differ {
				return p, true
			}
		}
		if len(a) != len(bs) {
			return path + "/" + strconv.Itoa(min(len(a), len(bs))), true
		}
		return "", false
	}
	if !scalarEqual(a, b) {
		return rootPath(path), true
	}
	return "", false
}

func scalarEqual(a, b any) bool {
	af, aNum := number(a)
	bf, bNum := number(b)
	if aNum || bNum {
		return aNum && bNum && af == bf
	}
	return a == b
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}

func escapePointer(key string) string {
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(key)
}

func rootPath(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
