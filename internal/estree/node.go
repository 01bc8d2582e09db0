package estree

import "math"

// Shape tells which parser family produced a raw tree.
type Shape int

const (
	ShapeEsprima Shape = iota
	ShapeCompiler
)

func (s Shape) String() string {
	if s == ShapeCompiler {
		return "compiler"
	}
	return "esprima"
}

// RawNode is a parser tree as received from a parser collaborator. Parsers wrap
// the root on receipt; the children of a tagged root share its shape.
type RawNode interface {
	Shape() Shape
	Fields() map[string]any
}

// CompilerNode is a tree with numeric `kind` discriminants.
type CompilerNode map[string]any

func (CompilerNode) Shape() Shape             { return ShapeCompiler }
func (n CompilerNode) Fields() map[string]any { return n }

// EsprimaNode is a tree with string `type` discriminants.
type EsprimaNode map[string]any

func (EsprimaNode) Shape() Shape             { return ShapeEsprima }
func (n EsprimaNode) Fields() map[string]any { return n }

// IsEmpty reports whether a parser returned nothing usable.
func IsEmpty(n RawNode) bool {
	return n == nil || len(n.Fields()) == 0
}

// Node is a canonical node: an Esprima-shape record without metadata.
type Node = map[string]any

const (
	ESTreeKindProgram                  = "Program"
	ESTreeKindIdentifier               = "Identifier"
	ESTreeKindLiteral                  = "Literal"
	ESTreeKindFunctionDeclaration      = "FunctionDeclaration"
	ESTreeKindFunctionExpression       = "FunctionExpression"
	ESTreeKindArrowFunctionExpression  = "ArrowFunctionExpression"
	ESTreeKindVariableDeclaration      = "VariableDeclaration"
	ESTreeKindVariableDeclarator       = "VariableDeclarator"
	ESTreeKindCallExpression           = "CallExpression"
	ESTreeKindNewExpression            = "NewExpression"
	ESTreeKindBinaryExpression         = "BinaryExpression"
	ESTreeKindLogicalExpression        = "LogicalExpression"
	ESTreeKindAssignmentExpression     = "AssignmentExpression"
	ESTreeKindUnaryExpression          = "UnaryExpression"
	ESTreeKindUpdateExpression         = "UpdateExpression"
	ESTreeKindConditionalExpression    = "ConditionalExpression"
	ESTreeKindMemberExpression         = "MemberExpression"
	ESTreeKindObjectExpression         = "ObjectExpression"
	ESTreeKindArrayExpression          = "ArrayExpression"
	ESTreeKindProperty                 = "Property"
	ESTreeKindSpreadElement            = "SpreadElement"
	ESTreeKindRestElement              = "RestElement"
	ESTreeKindAssignmentPattern        = "AssignmentPattern"
	ESTreeKindAwaitExpression          = "AwaitExpression"
	ESTreeKindThisExpression           = "ThisExpression"
	ESTreeKindReturnStatement          = "ReturnStatement"
	ESTreeKindBlockStatement           = "BlockStatement"
	ESTreeKindExpressionStatement      = "ExpressionStatement"
	ESTreeKindIfStatement              = "IfStatement"
	ESTreeKindEmptyStatement           = "EmptyStatement"
	ESTreeKindThrowStatement           = "ThrowStatement"
	ESTreeKindWhileStatement           = "WhileStatement"
	ESTreeKindForStatement             = "ForStatement"
	ESTreeKindClassDeclaration         = "ClassDeclaration"
	ESTreeKindClassExpression          = "ClassExpression"
	ESTreeKindClassBody                = "ClassBody"
	ESTreeKindMethodDefinition         = "MethodDefinition"
	ESTreeKindPropertyDefinition       = "PropertyDefinition"
	ESTreeKindStaticBlock              = "StaticBlock"
	ESTreeKindDoWhileStatement         = "DoWhileStatement"
	ESTreeKindForInStatement           = "ForInStatement"
	ESTreeKindForOfStatement           = "ForOfStatement"
	ESTreeKindBreakStatement           = "BreakStatement"
	ESTreeKindContinueStatement        = "ContinueStatement"
	ESTreeKindLabeledStatement         = "LabeledStatement"
	ESTreeKindSwitchStatement          = "SwitchStatement"
	ESTreeKindSwitchCase               = "SwitchCase"
	ESTreeKindTryStatement             = "TryStatement"
	ESTreeKindCatchClause              = "CatchClause"
	ESTreeKindWithStatement            = "WithStatement"
	ESTreeKindDebuggerStatement        = "DebuggerStatement"
	ESTreeKindSuper                    = "Super"
	ESTreeKindYieldExpression          = "YieldExpression"
	ESTreeKindMetaProperty             = "MetaProperty"
	ESTreeKindTemplateLiteral          = "TemplateLiteral"
	ESTreeKindTemplateElement          = "TemplateElement"
	ESTreeKindTaggedTemplateExpression = "TaggedTemplateExpression"
	ESTreeKindSequenceExpression       = "SequenceExpression"
	ESTreeKindObjectPattern            = "ObjectPattern"
	ESTreeKindArrayPattern             = "ArrayPattern"
	ESTreeKindPrivateIdentifier        = "PrivateIdentifier"
)

// KindOriginalKey tags canonical nodes built from compiler kinds with no
// Esprima counterpart.
const KindOriginalKey = "kind_original_ts"

// Child collections that stay present even when empty.
var structuralCollections = map[string]struct{}{
	"params":       {},
	"arguments":    {},
	"body":         {},
	"members":      {},
	"elements":     {},
	"declarations": {},
	"properties":   {},
	"statements":   {},
}

func isFunctionType(t any) bool {
	switch t {
	case ESTreeKindFunctionDeclaration, ESTreeKindFunctionExpression, ESTreeKindArrowFunctionExpression:
		return true
	}
	return false
}

// kindOf reads a numeric discriminant. Decoded JSON numbers arrive as float64.
func kindOf(m map[string]any) (Kind, bool) {
	switch v := m["kind"].(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return Kind(v), true
	case int:
		return Kind(v), true
	case int64:
		return Kind(v), true
	case Kind:
		return v, true
	}
	return 0, false
}

func flagsOf(m map[string]any) int64 {
	switch v := m["flags"].(type) {
	case float64:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	}
	return 0
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case CompilerNode:
		return m, true
	case EsprimaNode:
		return m, true
	}
	return nil, false
}

func asSlice(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}
