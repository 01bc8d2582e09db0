package estree

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestTraverse(t *testing.T) {
	tree := Node{
		"type": ESTreeKindProgram,
		"body": []any{
			Node{"type": ESTreeKindExpressionStatement, "expression": ident("a")},
			Node{"type": ESTreeKindEmptyStatement},
		},
	}

	var entered, exited []string
	Traverse(tree, func(path string, node Node) {
		entered = append(entered, path+" "+node["type"].(string))
	}, func(path string, node Node) {
		exited = append(exited, path)
	})

	assert.DeepEqual(t, entered, []string{
		" Program",
		"/body/0 ExpressionStatement",
		"/body/0/expression Identifier",
		"/body/1 EmptyStatement",
	})
	assert.DeepEqual(t, exited, []string{
		"/body/0/expression",
		"/body/0",
		"/body/1",
		"",
	})
}

func TestDiverge(t *testing.T) {
	a := Node{
		"type": ESTreeKindProgram,
		"body": []any{Node{"type": ESTreeKindLiteral, "value": int64(1)}},
	}

	_, differ := Diverge(a, a)
	assert.Assert(t, !differ)

	b := Node{
		"type": ESTreeKindProgram,
		"body": []any{Node{"type": ESTreeKindLiteral, "value": float64(1)}},
	}
	_, differ = Diverge(a, b)
	assert.Assert(t, !differ)

	c := Node{
		"type": ESTreeKindProgram,
		"body": []any{Node{"type": ESTreeKindLiteral, "value": "1"}},
	}
	path, differ := Diverge(a, c)
	assert.Assert(t, differ)
	assert.Equal(t, path, "/body/0/value")

	d := Node{"type": ESTreeKindProgram, "body": []any{}}
	path, differ = Diverge(a, d)
	assert.Assert(t, differ)
	assert.Equal(t, path, "/body/0")

	e := Node{"type": ESTreeKindProgram, "body": []any{a["body"].([]any)[0]}, "extra/key": true}
	path, differ = Diverge(a, e)
	assert.Assert(t, differ)
	assert.Equal(t, path, "/extra~1key")

	path, differ = Diverge(a, nil)
	assert.Assert(t, differ)
	assert.Equal(t, path, "/")
}
