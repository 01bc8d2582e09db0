package estree

import (
	"errors"
	"math/big"
	"strconv"
	"strings"

	"github.com/typescript-eslint/tsequiv/internal/utils"
)

// Declaration-list flags.
const (
	FlagsLet   = 1
	FlagsConst = 2
)

// Function-like node flags.
const (
	FlagsAsync     = 256
	FlagsGenerator = 512
)

// converted is what the shell builder hands back: either a shell whose child
// fields still hold raw children, or a final value that skips the rest of
// normalization.
type converted struct {
	shell Node
	value any
	final bool
}

func shellOf(shell Node) converted {
	return converted{shell: shell}
}

func finalOf(value any) converted {
	return converted{value: value, final: true}
}

func (c *converter) convertEsprima(node map[string]any) converted {
	if !isFunctionType(node["type"]) {
		return shellOf(node)
	}
	params, ok := asSlice(node["params"])
	if !ok {
		return shellOf(node)
	}
	// a default value is erased the same way a compiler parameter initializer is
	shell := make(Node, len(node))
	for k, v := range node {
		shell[k] = v
	}
	shell["params"] = utils.Map(params, func(p any) any {
		if m, ok := asMap(p); ok && m["type"] == ESTreeKindAssignmentPattern {
			return m["left"]
		}
		return p
	})
	return shellOf(shell)
}

func (c *converter) convertNode(node map[string]any, kind Kind) converted {
	switch kind {
	case KindSourceFile:
		return shellOf(Node{
			"type": ESTreeKindProgram,
			"body": dropPrologue(listOf(node, "statements")),
		})
	case KindBlock:
		return shellOf(Node{
			"type": ESTreeKindBlockStatement,
			"body": listOf(node, "statements"),
		})
	case KindIdentifier:
		return shellOf(Node{
			"type": ESTreeKindIdentifier,
			"name": identifierText(node),
		})
	case KindThisKeyword:
		return shellOf(Node{"type": ESTreeKindThisExpression})

	// Literals

	case KindNumericLiteral:
		text, _ := node["text"].(string)
		if text == "" {
			text = "0"
		}
		return shellOf(Node{"type": ESTreeKindLiteral, "value": coerceNumericLiteral(text)})
	case KindStringLiteral:
		text, _ := node["text"].(string)
		return shellOf(Node{"type": ESTreeKindLiteral, "value": text})
	case KindTrueKeyword:
		return shellOf(Node{"type": ESTreeKindLiteral, "value": true})
	case KindFalseKeyword:
		return shellOf(Node{"type": ESTreeKindLiteral, "value": false})
	case KindNullKeyword:
		return shellOf(Node{"type": ESTreeKindLiteral, "value": nil})

	// Parameters and wrappers never produce a node of their own

	case KindParameter:
		return c.convertParameter(node)
	case KindParenthesizedExpression,
		KindAsExpression,
		KindNonNullExpression,
		KindSatisfiesExpression,
		KindTypeAssertionExpression,
		KindExpressionWithTypeArguments:
		return finalOf(c.normalize(node["expression"]))
	case KindOmittedExpression:
		return finalOf(nil)

	// Functions

	case KindFunctionDeclaration, KindFunctionExpression, KindArrowFunction:
		return c.convertFunction(node, kind)

	// Declarations

	case KindVariableStatement:
		list, _ := asMap(node["declarationList"])
		return shellOf(Node{
			"type":         ESTreeKindVariableDeclaration,
			"kind":         getDeclarationKind(list),
			"declarations": listOf(list, "declarations"),
		})
	case KindVariableDeclarationList:
		return shellOf(Node{
			"type":         ESTreeKindVariableDeclaration,
			"kind":         getDeclarationKind(node),
			"declarations": listOf(node, "declarations"),
		})
	case KindVariableDeclaration:
		shell := Node{
			"type": ESTreeKindVariableDeclarator,
			"id":   node["name"],
		}
		if init, ok := node["initializer"]; ok {
			shell["init"] = init
		}
		return shellOf(shell)

	// Statements

	case KindReturnStatement:
		return shellOf(Node{
			"type":     ESTreeKindReturnStatement,
			"argument": node["expression"],
		})
	case KindExpressionStatement:
		return shellOf(Node{
			"type":       ESTreeKindExpressionStatement,
			"expression": node["expression"],
		})
	case KindIfStatement:
		return shellOf(Node{
			"type":       ESTreeKindIfStatement,
			"test":       node["expression"],
			"consequent": node["thenStatement"],
			"alternate":  node["elseStatement"],
		})
	case KindEmptyStatement:
		return shellOf(Node{"type": ESTreeKindEmptyStatement})
	case KindThrowStatement:
		return shellOf(Node{
			"type":     ESTreeKindThrowStatement,
			"argument": node["expression"],
		})
	case KindWhileStatement:
		return shellOf(Node{
			"type": ESTreeKindWhileStatement,
			"test": node["expression"],
			"body": node["statement"],
		})
	case KindForStatement:
		return shellOf(Node{
			"type":   ESTreeKindForStatement,
			"init":   node["initializer"],
			"test":   node["condition"],
			"update": node["incrementor"],
			"body":   node["statement"],
		})

	// Expressions

	case KindCallExpression:
		return shellOf(Node{
			"type":      ESTreeKindCallExpression,
			"callee":    node["expression"],
			"arguments": listOf(node, "arguments"),
		})
	case KindNewExpression:
		return shellOf(Node{
			"type":      ESTreeKindNewExpression,
			"callee":    node["expression"],
			"arguments": listOf(node, "arguments"),
		})
	case KindBinaryExpression:
		operatorToken, _ := asMap(node["operatorToken"])
		opKind, _ := kindOf(operatorToken)
		if opKind == KindCommaToken {
			return shellOf(Node{
				"type":        ESTreeKindSequenceExpression,
				"expressions": sequenceOf(node),
			})
		}
		operator := BinaryOperator(opKind)
		if operator == "=" && isLiteralTarget(node["left"]) {
			return finalOf(Node{
				"type":     ESTreeKindAssignmentExpression,
				"operator": operator,
				"left":     toPattern(c.normalize(node["left"])),
				"right":    c.normalize(node["right"]),
			})
		}
		return shellOf(Node{
			"type":     ClassifyOperator(operator).ExpressionType(),
			"operator": operator,
			"left":     node["left"],
			"right":    node["right"],
		})
	case KindPrefixUnaryExpression, KindPostfixUnaryExpression:
		operator := UnaryOperator(operatorKindOf(node))
		t := ESTreeKindUnaryExpression
		if operator == "++" || operator == "--" {
			t = ESTreeKindUpdateExpression
		}
		return shellOf(Node{
			"type":     t,
			"operator": operator,
			"argument": node["operand"],
			"prefix":   kind == KindPrefixUnaryExpression,
		})
	case KindTypeOfExpression, KindVoidExpression, KindDeleteExpression:
		operator := map[Kind]string{
			KindTypeOfExpression: "typeof",
			KindVoidExpression:   "void",
			KindDeleteExpression: "delete",
		}[kind]
		return shellOf(Node{
			"type":     ESTreeKindUnaryExpression,
			"operator": operator,
			"argument": node["expression"],
			"prefix":   true,
		})
	case KindConditionalExpression:
		return shellOf(Node{
			"type":       ESTreeKindConditionalExpression,
			"test":       node["condition"],
			"consequent": node["whenTrue"],
			"alternate":  node["whenFalse"],
		})
	case KindAwaitExpression:
		return shellOf(Node{
			"type":     ESTreeKindAwaitExpression,
			"argument": node["expression"],
		})
	case KindSpreadElement, KindSpreadAssignment:
		return shellOf(Node{
			"type":     ESTreeKindSpreadElement,
			"argument": node["expression"],
		})
	case KindPropertyAccessExpression:
		return shellOf(Node{
			"type":     ESTreeKindMemberExpression,
			"computed": false,
			"object":   node["expression"],
			"property": node["name"],
		})
	case KindElementAccessExpression:
		return shellOf(Node{
			"type":     ESTreeKindMemberExpression,
			"computed": true,
			"object":   node["expression"],
			"property": node["argumentExpression"],
		})
	case KindArrayLiteralExpression:
		return shellOf(Node{
			"type":     ESTreeKindArrayExpression,
			"elements": listOf(node, "elements"),
		})
	case KindObjectLiteralExpression:
		return shellOf(Node{
			"type":       ESTreeKindObjectExpression,
			"properties": mapList(listOf(node, "properties"), c.objectMember),
		})
	case KindPropertyAssignment:
		key, computed := propertyKey(node["name"])
		return shellOf(Node{
			"type":      ESTreeKindProperty,
			"key":       key,
			"computed":  computed,
			"value":     node["initializer"],
			"kind":      "init",
			"method":    false,
			"shorthand": false,
		})
	case KindShorthandPropertyAssignment:
		value := node["name"]
		if init, ok := node["objectAssignmentInitializer"]; ok {
			// only valid as a destructuring target
			value = Node{"type": ESTreeKindAssignmentPattern, "left": node["name"], "right": init}
		}
		return shellOf(Node{
			"type":      ESTreeKindProperty,
			"key":       node["name"],
			"computed":  false,
			"value":     value,
			"kind":      "init",
			"method":    false,
			"shorthand": true,
		})

	// Loops and control flow

	case KindDoStatement:
		return shellOf(Node{
			"type": ESTreeKindDoWhileStatement,
			"body": node["statement"],
			"test": node["expression"],
		})
	case KindForInStatement:
		return finalOf(compact(Node{
			"type":  ESTreeKindForInStatement,
			"left":  c.forTarget(node["initializer"]),
			"right": c.normalize(node["expression"]),
			"body":  c.normalize(node["statement"]),
			"each":  false,
		}))
	case KindForOfStatement:
		return finalOf(compact(Node{
			"type":  ESTreeKindForOfStatement,
			"left":  c.forTarget(node["initializer"]),
			"right": c.normalize(node["expression"]),
			"body":  c.normalize(node["statement"]),
		}))
	case KindBreakStatement, KindContinueStatement:
		t := ESTreeKindBreakStatement
		if kind == KindContinueStatement {
			t = ESTreeKindContinueStatement
		}
		return shellOf(Node{"type": t, "label": node["label"]})
	case KindLabeledStatement:
		return shellOf(Node{
			"type":  ESTreeKindLabeledStatement,
			"label": node["label"],
			"body":  node["statement"],
		})
	case KindSwitchStatement:
		caseBlock, _ := asMap(node["caseBlock"])
		return shellOf(Node{
			"type":         ESTreeKindSwitchStatement,
			"discriminant": node["expression"],
			"cases":        listOf(caseBlock, "clauses"),
		})
	case KindCaseClause, KindDefaultClause:
		return shellOf(Node{
			"type":       ESTreeKindSwitchCase,
			"test":       node["expression"],
			"consequent": listOf(node, "statements"),
		})
	case KindTryStatement:
		return shellOf(Node{
			"type":      ESTreeKindTryStatement,
			"block":     node["tryBlock"],
			"handler":   node["catchClause"],
			"finalizer": node["finallyBlock"],
		})
	case KindCatchClause:
		var param any
		if decl, ok := asMap(node["variableDeclaration"]); ok {
			param = decl["name"]
		}
		return shellOf(Node{
			"type":  ESTreeKindCatchClause,
			"param": param,
			"body":  node["block"],
		})
	case KindWithStatement:
		return shellOf(Node{
			"type":   ESTreeKindWithStatement,
			"object": node["expression"],
			"body":   node["statement"],
		})
	case KindDebuggerStatement:
		return shellOf(Node{"type": ESTreeKindDebuggerStatement})

	// Classes

	case KindClassDeclaration, KindClassExpression:
		t := ESTreeKindClassDeclaration
		if kind == KindClassExpression {
			t = ESTreeKindClassExpression
		}
		return shellOf(Node{
			"type":       t,
			"id":         node["name"],
			"superClass": superClassOf(node),
			"body": Node{
				"type": ESTreeKindClassBody,
				"body": mapList(listOf(node, "members"), c.classMember),
			},
		})
	case KindSuperKeyword:
		return shellOf(Node{"type": ESTreeKindSuper})
	case KindPrivateIdentifier:
		return shellOf(Node{
			"type": ESTreeKindPrivateIdentifier,
			"name": strings.TrimPrefix(identifierText(node), "#"),
		})

	// Binding patterns

	case KindObjectBindingPattern:
		return shellOf(Node{
			"type":       ESTreeKindObjectPattern,
			"properties": mapList(listOf(node, "elements"), objectBinding),
		})
	case KindArrayBindingPattern:
		return shellOf(Node{
			"type":     ESTreeKindArrayPattern,
			"elements": mapList(listOf(node, "elements"), arrayBinding),
		})

	// Remaining expressions

	case KindYieldExpression:
		_, delegate := node["asteriskToken"]
		return shellOf(Node{
			"type":     ESTreeKindYieldExpression,
			"argument": node["expression"],
			"delegate": delegate,
		})
	case KindMetaProperty:
		keyword, _ := kindOf(map[string]any{"kind": node["keywordToken"]})
		meta := "new"
		if keyword == KindImportKeyword {
			meta = "import"
		}
		return shellOf(Node{
			"type":     ESTreeKindMetaProperty,
			"meta":     Node{"type": ESTreeKindIdentifier, "name": meta},
			"property": node["name"],
		})
	case KindNoSubstitutionTemplateLiteral:
		return shellOf(Node{
			"type":        ESTreeKindTemplateLiteral,
			"quasis":      []any{templateElement(node, true)},
			"expressions": []any{},
		})
	case KindTemplateExpression:
		head, _ := asMap(node["head"])
		spans := listOf(node, "templateSpans")
		quasis := []any{templateElement(head, len(spans) == 0)}
		expressions := make([]any, 0, len(spans))
		for i, s := range spans {
			span, _ := asMap(s)
			literal, _ := asMap(span["literal"])
			quasis = append(quasis, templateElement(literal, i == len(spans)-1))
			expressions = append(expressions, span["expression"])
		}
		return shellOf(Node{
			"type":        ESTreeKindTemplateLiteral,
			"quasis":      quasis,
			"expressions": expressions,
		})
	case KindTaggedTemplateExpression:
		return shellOf(Node{
			"type":  ESTreeKindTaggedTemplateExpression,
			"tag":   node["tag"],
			"quasi": node["template"],
		})
	case KindRegularExpressionLiteral:
		text, _ := node["text"].(string)
		return finalOf(regexLiteral(text))
	case KindBigIntLiteral:
		text, _ := node["text"].(string)
		return finalOf(bigIntLiteral(text))
	}

	return shellOf(fallbackShell(node, kind))
}

// fallbackShell carries an unmapped node through with its remaining fields so
// its children are normalized, and possibly deleted, one by one.
func fallbackShell(node map[string]any, kind Kind) Node {
	shell := Node{KindOriginalKey: int64(kind)}
	for k, v := range node {
		switch k {
		case "kind", "pos", "end", "parent", "modifiers", "type":
			continue
		}
		if IsStrippedKey(k) {
			continue
		}
		shell[k] = v
	}
	return shell
}

func (c *converter) convertParameter(node map[string]any) converted {
	name, _ := asMap(node["name"])
	if k, ok := kindOf(name); ok && k == KindIdentifier && identifierText(name) == "this" {
		// `this` parameters only declare the receiver type
		return finalOf(nil)
	}
	id := c.normalize(node["name"])
	if _, rest := node["dotDotDotToken"]; rest && id != nil {
		return finalOf(Node{
			"type":     ESTreeKindRestElement,
			"argument": id,
		})
	}
	return finalOf(id)
}

func (c *converter) convertFunction(node map[string]any, kind Kind) converted {
	t := map[Kind]string{
		KindFunctionDeclaration: ESTreeKindFunctionDeclaration,
		KindFunctionExpression:  ESTreeKindFunctionExpression,
		KindArrowFunction:       ESTreeKindArrowFunctionExpression,
	}[kind]
	shell := functionShell(node, t)
	shell["id"] = node["name"]
	shell["expression"] = kind == KindArrowFunction && !isBlock(node["body"])
	return shellOf(shell)
}

func isBlock(v any) bool {
	m, ok := asMap(v)
	if !ok {
		return false
	}
	k, _ := kindOf(m)
	return k == KindBlock
}

// functionShell builds the parts every function-like node shares. Methods,
// accessors and constructors use it for their FunctionExpression value.
func functionShell(node map[string]any, t string) Node {
	flags := flagsOf(node)
	_, star := node["asteriskToken"]

	body := node["body"]
	bodyKind := KindUnknown
	if b, ok := asMap(body); ok {
		bodyKind, _ = kindOf(b)
		if bodyKind == KindBlock {
			body = withStatements(b, dropPrologue(listOf(b, "statements")))
		}
	}

	return Node{
		"type":       t,
		"params":     listOf(node, "parameters"),
		"body":       body,
		"async":      flags&FlagsAsync != 0 || hasModifier(node, KindAsyncKeyword),
		"generator":  flags&FlagsGenerator != 0 || star,
		"expression": false,
	}
}

// Class and object members become plain shells keyed by their Esprima
// type. Members that only declare types map to nil and drop out of the list.

func (c *converter) classMember(m any) any {
	member, ok := asMap(m)
	if !ok {
		return m
	}
	kind, _ := kindOf(member)
	static := hasModifier(member, KindStaticKeyword)
	switch kind {
	case KindMethodDeclaration, KindConstructor, KindGetAccessor, KindSetAccessor:
		if _, ok := member["body"]; !ok {
			// overload signatures and abstract members
			return nil
		}
		key, computed := propertyKey(member["name"])
		if kind == KindConstructor {
			key, computed = Node{"type": ESTreeKindIdentifier, "name": "constructor"}, false
		}
		return Node{
			"type":     ESTreeKindMethodDefinition,
			"key":      key,
			"computed": computed,
			"value":    functionShell(member, ESTreeKindFunctionExpression),
			"kind":     methodKind(kind),
			"static":   static,
		}
	case KindPropertyDeclaration:
		if hasModifier(member, KindDeclareKeyword) || hasModifier(member, KindAbstractKeyword) {
			return nil
		}
		key, computed := propertyKey(member["name"])
		return Node{
			"type":     ESTreeKindPropertyDefinition,
			"key":      key,
			"computed": computed,
			"value":    member["initializer"],
			"static":   static,
		}
	case KindClassStaticBlockDeclaration:
		block, _ := asMap(member["body"])
		return Node{
			"type": ESTreeKindStaticBlock,
			"body": listOf(block, "statements"),
		}
	case KindSemicolonClassElement:
		return nil
	}
	return m
}

func (c *converter) objectMember(m any) any {
	member, ok := asMap(m)
	if !ok {
		return m
	}
	kind, _ := kindOf(member)
	switch kind {
	case KindMethodDeclaration, KindGetAccessor, KindSetAccessor:
		key, computed := propertyKey(member["name"])
		propertyKind := methodKind(kind)
		if kind == KindMethodDeclaration {
			propertyKind = "init"
		}
		return Node{
			"type":      ESTreeKindProperty,
			"key":       key,
			"computed":  computed,
			"value":     functionShell(member, ESTreeKindFunctionExpression),
			"kind":      propertyKind,
			"method":    kind == KindMethodDeclaration,
			"shorthand": false,
		}
	}
	return m
}

func methodKind(kind Kind) string {
	switch kind {
	case KindConstructor:
		return "constructor"
	case KindGetAccessor:
		return "get"
	case KindSetAccessor:
		return "set"
	}
	return "method"
}

func superClassOf(class map[string]any) any {
	for _, h := range listOf(class, "heritageClauses") {
		clause, _ := asMap(h)
		if token, _ := kindOf(map[string]any{"kind": clause["token"]}); token != KindExtendsKeyword {
			continue
		}
		if types := listOf(clause, "types"); len(types) > 0 {
			return types[0]
		}
	}
	return nil
}

func objectBinding(e any) any {
	el, ok := asMap(e)
	if k, _ := kindOf(el); !ok || k != KindBindingElement {
		return e
	}
	if _, rest := el["dotDotDotToken"]; rest {
		return Node{"type": ESTreeKindRestElement, "argument": el["name"]}
	}
	key, computed, shorthand := el["name"], false, true
	if name, ok := el["propertyName"]; ok {
		key, computed = propertyKey(name)
		shorthand = false
	}
	return Node{
		"type":      ESTreeKindProperty,
		"key":       key,
		"computed":  computed,
		"value":     bindingValue(el),
		"kind":      "init",
		"method":    false,
		"shorthand": shorthand,
	}
}

func arrayBinding(e any) any {
	el, ok := asMap(e)
	if k, _ := kindOf(el); !ok || k != KindBindingElement {
		return e
	}
	if _, rest := el["dotDotDotToken"]; rest {
		return Node{"type": ESTreeKindRestElement, "argument": el["name"]}
	}
	return bindingValue(el)
}

func bindingValue(el map[string]any) any {
	if init, ok := el["initializer"]; ok {
		return Node{"type": ESTreeKindAssignmentPattern, "left": el["name"], "right": init}
	}
	return el["name"]
}

func (c *converter) forTarget(init any) any {
	if m, ok := asMap(init); ok {
		if k, _ := kindOf(m); k == KindVariableDeclarationList {
			return c.normalize(init)
		}
	}
	return toPattern(c.normalize(init))
}

func isLiteralTarget(v any) bool {
	m, ok := asMap(v)
	if !ok {
		return false
	}
	k, _ := kindOf(m)
	return k == KindArrayLiteralExpression || k == KindObjectLiteralExpression
}

// toPattern reinterprets a canonical array or object literal in assignment
// target position as the pattern Esprima parses it as.
func toPattern(v any) any {
	m, ok := asMap(v)
	if !ok {
		return v
	}
	switch m["type"] {
	case ESTreeKindArrayExpression:
		elements, _ := asSlice(m["elements"])
		return Node{"type": ESTreeKindArrayPattern, "elements": mapList(elements, toPattern)}
	case ESTreeKindObjectExpression:
		properties, _ := asSlice(m["properties"])
		return Node{"type": ESTreeKindObjectPattern, "properties": mapList(properties, func(p any) any {
			prop, ok := asMap(p)
			if !ok || prop["type"] != ESTreeKindProperty {
				return toPattern(p)
			}
			copied := make(Node, len(prop))
			for k, v := range prop {
				copied[k] = v
			}
			copied["value"] = toPattern(prop["value"])
			return copied
		})}
	case ESTreeKindAssignmentExpression:
		if m["operator"] == "=" {
			return Node{"type": ESTreeKindAssignmentPattern, "left": toPattern(m["left"]), "right": m["right"]}
		}
	case ESTreeKindSpreadElement:
		return Node{"type": ESTreeKindRestElement, "argument": toPattern(m["argument"])}
	}
	return m
}

// sequenceOf flattens a left-nested chain of comma operators.
func sequenceOf(node map[string]any) []any {
	var expressions []any
	if left, ok := asMap(node["left"]); ok && isComma(left) {
		expressions = sequenceOf(left)
	} else {
		expressions = []any{node["left"]}
	}
	return append(expressions, node["right"])
}

func isComma(node map[string]any) bool {
	if k, _ := kindOf(node); k != KindBinaryExpression {
		return false
	}
	operatorToken, _ := asMap(node["operatorToken"])
	k, _ := kindOf(operatorToken)
	return k == KindCommaToken
}

func templateElement(node map[string]any, tail bool) Node {
	text, _ := node["text"].(string)
	return Node{
		"type":  ESTreeKindTemplateElement,
		"value": Node{"cooked": text},
		"tail":  tail,
	}
}

func regexLiteral(text string) Node {
	pattern, flags := text, ""
	if i := strings.LastIndexByte(text, '/'); i > 0 {
		pattern, flags = text[1:i], text[i+1:]
	}
	return Node{
		"type":  ESTreeKindLiteral,
		"regex": Node{"pattern": pattern, "flags": flags},
	}
}

func bigIntLiteral(text string) Node {
	digits := strings.TrimSuffix(text, "n")
	if v, ok := new(big.Int).SetString(digits, 0); ok {
		digits = v.String()
	}
	return Node{"type": ESTreeKindLiteral, "bigint": digits}
}

func mapList(list []any, f func(any) any) []any {
	result := make([]any, 0, len(list))
	for _, item := range list {
		result = append(result, f(item))
	}
	return result
}

// compact drops absent fields from a node built from normalized values.
func compact(node Node) Node {
	for k, v := range node {
		if v == nil {
			delete(node, k)
		}
	}
	return node
}

func getDeclarationKind(list map[string]any) string {
	flags := flagsOf(list)
	if flags&FlagsConst != 0 {
		return "const"
	}
	if flags&FlagsLet != 0 {
		return "let"
	}
	return "var"
}

func propertyKey(name any) (any, bool) {
	m, ok := asMap(name)
	if !ok {
		return name, false
	}
	if k, _ := kindOf(m); k == KindComputedPropertyName {
		return m["expression"], true
	}
	return name, false
}

// The compiler escapes identifiers that start with two underscores by adding a third.
func identifierText(node map[string]any) string {
	text, _ := node["escapedText"].(string)
	if strings.HasPrefix(text, "___") {
		return text[1:]
	}
	return text
}

func operatorKindOf(node map[string]any) Kind {
	k, _ := kindOf(map[string]any{"kind": node["operator"]})
	return k
}

func hasModifier(node map[string]any, modifier Kind) bool {
	modifiers, _ := asSlice(node["modifiers"])
	for _, m := range modifiers {
		if mm, ok := asMap(m); ok {
			if k, _ := kindOf(mm); k == modifier {
				return true
			}
		}
	}
	return false
}

func listOf(node map[string]any, key string) []any {
	if node == nil {
		return []any{}
	}
	if l, ok := asSlice(node[key]); ok {
		return l
	}
	return []any{}
}

func withStatements(block map[string]any, statements []any) map[string]any {
	copied := make(map[string]any, len(block))
	for k, v := range block {
		copied[k] = v
	}
	copied["statements"] = statements
	return copied
}

// dropPrologue removes the directive prologue: leading expression statements
// made of a bare string literal.
func dropPrologue(statements []any) []any {
	for i, s := range statements {
		m, ok := asMap(s)
		if !ok {
			return statements[i:]
		}
		if k, _ := kindOf(m); k != KindExpressionStatement {
			return statements[i:]
		}
		expr, _ := asMap(m["expression"])
		if k, _ := kindOf(expr); k != KindStringLiteral {
			return statements[i:]
		}
	}
	return []any{}
}

func coerceNumericLiteral(text string) any {
	digits := strings.ReplaceAll(text, "_", "")
	if !strings.HasPrefix(digits, "0x") && !strings.HasPrefix(digits, "0X") && strings.ContainsAny(digits, ".eE") {
		// Out-of-range text still yields the ±Inf or zero a JS engine produces.
		if v, err := strconv.ParseFloat(digits, 64); err == nil || errors.Is(err, strconv.ErrRange) {
			return v
		}
		return text
	}
	if v, err := strconv.ParseInt(digits, 0, 64); err == nil {
		return v
	}
	if n, ok := new(big.Int).SetString(digits, 0); ok {
		f, _ := new(big.Float).SetInt(n).Float64()
		return f
	}
	if v, err := strconv.ParseFloat(digits, 64); err == nil {
		return v
	}
	return text
}
