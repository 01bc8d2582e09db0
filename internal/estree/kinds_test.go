package estree

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestKindNamesRoundTrip(t *testing.T) {
	for name, k := range KindTable() {
		assert.Equal(t, k.String(), name)
		back, ok := KindFromName(name)
		assert.Assert(t, ok, name)
		assert.Equal(t, back, k)
	}
}

func TestKindNumbering(t *testing.T) {
	assert.Equal(t, int(KindIdentifier), 79)
	assert.Equal(t, int(KindEmptyStatement), 233)
	assert.Equal(t, int(KindVariableStatement), 234)
	assert.Equal(t, int(KindReturnStatement), 244)
	assert.Equal(t, int(KindVariableDeclarationList), 252)
	assert.Equal(t, int(KindSourceFile), 298)
}

func TestUnregisteredKind(t *testing.T) {
	k := UnregisteredKindOffset + 12
	assert.Equal(t, k.String(), "Unknown")
	assert.Assert(t, !k.Registered())
	_, ok := KindFromName("NotAKind")
	assert.Assert(t, !ok)
}

func TestTypeOnlyClassification(t *testing.T) {
	assert.Assert(t, IsTypeOnlyKind(KindInterfaceDeclaration))
	assert.Assert(t, IsTypeOnlyKind(KindTypeReference))
	assert.Assert(t, !IsTypeOnlyKind(KindAsExpression))
	assert.Assert(t, !IsTypeOnlyKind(KindHeritageClause))
	assert.Assert(t, !IsTypeOnlyKind(KindIdentifier))

	assert.Assert(t, IsTypeOnlyName("TSTypeAnnotation"))
	assert.Assert(t, IsTypeOnlyName("InterfaceDeclaration"))
	assert.Assert(t, !IsTypeOnlyName("Identifier"))

	assert.Assert(t, IsTypeOnlyModifier(KindPrivateKeyword))
	assert.Assert(t, !IsTypeOnlyModifier(KindExportKeyword))
	assert.Assert(t, !IsTypeOnlyModifier(KindStaticKeyword))
}

func TestStrippedKeys(t *testing.T) {
	for _, key := range []string{"range", "loc", "pos", "end", "parent", "typeAnnotation", "typeArguments"} {
		assert.Assert(t, IsStrippedKey(key), key)
	}
	for _, key := range []string{"name", "body", "flags", "kind", KindOriginalKey} {
		assert.Assert(t, !IsStrippedKey(key), key)
	}
}

func TestOperators(t *testing.T) {
	assert.Equal(t, BinaryOperator(KindPlusToken), "+")
	assert.Equal(t, BinaryOperator(KindEqualsEqualsEqualsToken), "===")
	assert.Equal(t, BinaryOperator(KindInstanceOfKeyword), "instanceof")
	assert.Equal(t, BinaryOperator(Kind(999)), "OP_KIND:999")
	assert.Equal(t, UnaryOperator(KindExclamationToken), "!")
	assert.Equal(t, UnaryOperator(Kind(7)), "OP_KIND:7")

	assert.Equal(t, ClassifyOperator("&&").ExpressionType(), ESTreeKindLogicalExpression)
	assert.Equal(t, ClassifyOperator("??").ExpressionType(), ESTreeKindLogicalExpression)
	assert.Equal(t, ClassifyOperator("+=").ExpressionType(), ESTreeKindAssignmentExpression)
	assert.Equal(t, ClassifyOperator("<").ExpressionType(), ESTreeKindBinaryExpression)
	assert.Equal(t, ClassifyOperator("OP_KIND:999").ExpressionType(), ESTreeKindBinaryExpression)
}
