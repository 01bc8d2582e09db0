package estree

import (
	"github.com/typescript-eslint/tsequiv/internal/utils"
)

type converter struct {
	shape Shape
}

// Normalize turns a raw parser tree into its canonical form: an Esprima-shape
// tree with metadata and type-only syntax removed. The input is never
// mutated. A nil result means the tree normalized to nothing.
func Normalize(root RawNode) any {
	if root == nil {
		return nil
	}
	return NormalizeShape(root.Fields(), root.Shape())
}

// NormalizeShape normalizes an untagged value read as the given shape.
func NormalizeShape(v any, shape Shape) any {
	c := &converter{shape: shape}
	return c.normalize(v)
}

func (c *converter) normalize(v any) any {
	switch v := v.(type) {
	case []any:
		return c.normalizeSlice(v)
	case map[string]any:
		return c.normalizeNode(v)
	case CompilerNode:
		return c.normalizeNode(v)
	case EsprimaNode:
		return c.normalizeNode(v)
	case int:
		return int64(v)
	case Kind:
		return int64(v)
	}
	return v
}

func (c *converter) normalizeSlice(s []any) []any {
	return utils.FilterMap(s, func(item any) (any, bool) {
		cleaned := c.normalize(item)
		return cleaned, cleaned != nil
	})
}

func (c *converter) normalizeNode(orig map[string]any) any {
	kind, numeric := kindOf(orig)
	isCompiler := c.shape == ShapeCompiler && numeric

	if c.isDeleted(orig, kind, isCompiler) {
		return nil
	}

	var shell Node
	switch {
	case isCompiler:
		res := c.convertNode(orig, kind)
		if res.final {
			return res.value
		}
		shell = res.shell
	case c.shape == ShapeEsprima:
		if _, typed := orig["type"].(string); typed {
			res := c.convertEsprima(orig)
			shell = res.shell
			break
		}
		shell = orig
	default:
		shell = orig
	}

	result := Node{}
	if t, ok := shell["type"]; ok && t != nil {
		result["type"] = t
	}

	if isCompiler {
		if modifiers, ok := asSlice(orig["modifiers"]); ok {
			kept := c.normalizeModifiers(modifiers, kind)
			if len(kept) > 0 {
				result["modifiers"] = kept
			}
		}
	}

	for key, value := range shell {
		if key == "type" || (isCompiler && key == "modifiers") {
			continue
		}
		if IsStrippedKey(key) {
			continue
		}
		if key == "flags" && isCompiler && kind != KindVariableDeclarationList {
			continue
		}
		if key == "id" && isZero(value) && (kind == KindSourceFile || result["type"] == ESTreeKindProgram) {
			continue
		}
		cleaned := c.normalize(value)
		if cleaned == nil {
			continue
		}
		if s, ok := cleaned.([]any); ok && len(s) == 0 {
			if _, structural := structuralCollections[key]; !structural {
				continue
			}
		}
		result[key] = cleaned
	}

	fixup(result)

	if len(result) == 0 && c.isTypeOnlyOrigin(orig, kind, isCompiler) {
		return nil
	}
	return result
}

// isDeleted reports whether a node is type-only syntax that disappears along
// with everything below it.
func (c *converter) isDeleted(orig map[string]any, kind Kind, isCompiler bool) bool {
	if isCompiler {
		if IsTypeOnlyKind(kind) {
			return true
		}
		if kind == KindHeritageClause {
			token, _ := kindOf(map[string]any{"kind": orig["token"]})
			return token == KindImplementsKeyword
		}
		if hasModifier(orig, KindDeclareKeyword) {
			return true
		}
		if _, body := orig["body"]; !body && kind == KindFunctionDeclaration {
			// overload signature
			return true
		}
		return false
	}
	t, ok := orig["type"].(string)
	if !ok {
		return false
	}
	if IsTypeOnlyName(t) {
		return true
	}
	if t == ESTreeKindExpressionStatement && c.shape == ShapeEsprima {
		switch d := orig["directive"].(type) {
		case string:
			return d != ""
		case bool:
			return d
		}
	}
	return false
}

func (c *converter) isTypeOnlyOrigin(orig map[string]any, kind Kind, isCompiler bool) bool {
	if isCompiler {
		return IsTypeOnlyKind(kind)
	}
	t, _ := orig["type"].(string)
	return IsTypeOnlyName(t)
}

func (c *converter) normalizeModifiers(modifiers []any, owner Kind) []any {
	consumesAsync := owner == KindFunctionDeclaration || owner == KindFunctionExpression || owner == KindArrowFunction
	return utils.FilterMap(modifiers, func(m any) (any, bool) {
		if mm, ok := asMap(m); ok {
			if k, ok := kindOf(mm); ok {
				if IsTypeOnlyModifier(k) || (consumesAsync && k == KindAsyncKeyword) {
					return nil, false
				}
			}
		}
		cleaned := c.normalize(m)
		return cleaned, cleaned != nil
	})
}

// fixup supplies the fields a node of each type always carries.
func fixup(result Node) {
	t, _ := result["type"].(string)
	switch {
	case t == ESTreeKindProgram:
		setDefault(result, "body", []any{})
	case isFunctionType(t):
		setDefault(result, "params", []any{})
		setDefault(result, "body", Node{"type": ESTreeKindBlockStatement, "body": []any{}})
		if t == ESTreeKindFunctionDeclaration {
			setDefault(result, "id", nil)
		}
	case t == ESTreeKindVariableDeclaration:
		setDefault(result, "declarations", []any{})
	case t == ESTreeKindBlockStatement:
		setDefault(result, "body", []any{})
	}
}

func setDefault(result Node, key string, value any) {
	if _, ok := result[key]; !ok {
		result[key] = value
	}
}

func isZero(v any) bool {
	switch n := v.(type) {
	case float64:
		return n == 0
	case int:
		return n == 0
	case int64:
		return n == 0
	}
	return false
}
