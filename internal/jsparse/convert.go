package jsparse

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/dop251/goja/ast"
	"github.com/dop251/goja/token"
	"github.com/typescript-eslint/tsequiv/internal/estree"
)

// converter turns a goja program into an Esprima-shape tree. Every node gets a
// `range` of zero-based source offsets.
type converter struct {
	src string
}

func (c *converter) createNode(node ast.Node, fields map[string]any) map[string]any {
	fields["range"] = []any{int64(node.Idx0()) - 1, int64(node.Idx1()) - 1}
	return fields
}

func (c *converter) convertProgram(program *ast.Program) map[string]any {
	return map[string]any{
		"type":       estree.ESTreeKindProgram,
		"sourceType": "script",
		"body":       c.convertBody(program.Body),
		"range":      []any{int64(0), int64(len(c.src))},
	}
}

// convertBody converts a statement list that may open with a directive prologue.
func (c *converter) convertBody(list []ast.Statement) []any {
	result := make([]any, 0, len(list))
	prologue := true
	for _, s := range list {
		converted := c.convertStatement(s)
		if prologue {
			if directive, ok := directiveOf(s); ok {
				converted.(map[string]any)["directive"] = directive
			} else {
				prologue = false
			}
		}
		result = append(result, converted)
	}
	return result
}

func directiveOf(s ast.Statement) (string, bool) {
	stmt, ok := s.(*ast.ExpressionStatement)
	if !ok {
		return "", false
	}
	lit, ok := stmt.Expression.(*ast.StringLiteral)
	if !ok || len(lit.Literal) < 2 {
		return "", false
	}
	return lit.Literal[1 : len(lit.Literal)-1], true
}

func (c *converter) convertStatements(list []ast.Statement) []any {
	result := make([]any, 0, len(list))
	for _, s := range list {
		result = append(result, c.convertStatement(s))
	}
	return result
}

func (c *converter) convertExpressions(list []ast.Expression) []any {
	result := make([]any, 0, len(list))
	for _, e := range list {
		result = append(result, c.convertExpression(e))
	}
	return result
}

func (c *converter) convertStatement(s ast.Statement) any {
	switch n := s.(type) {
	case nil:
		return nil
	case *ast.BlockStatement:
		return c.convertBlock(n)
	case *ast.EmptyStatement:
		return c.createNode(n, map[string]any{"type": estree.ESTreeKindEmptyStatement})
	case *ast.DebuggerStatement:
		return c.createNode(n, map[string]any{"type": estree.ESTreeKindDebuggerStatement})
	case *ast.ExpressionStatement:
		return c.createNode(n, map[string]any{
			"type":       estree.ESTreeKindExpressionStatement,
			"expression": c.convertExpression(n.Expression),
		})
	case *ast.IfStatement:
		return c.createNode(n, map[string]any{
			"type":       estree.ESTreeKindIfStatement,
			"test":       c.convertExpression(n.Test),
			"consequent": c.convertStatement(n.Consequent),
			"alternate":  c.convertStatement(n.Alternate),
		})
	case *ast.ReturnStatement:
		return c.createNode(n, map[string]any{
			"type":     estree.ESTreeKindReturnStatement,
			"argument": c.convertExpression(n.Argument),
		})
	case *ast.ThrowStatement:
		return c.createNode(n, map[string]any{
			"type":     estree.ESTreeKindThrowStatement,
			"argument": c.convertExpression(n.Argument),
		})
	case *ast.TryStatement:
		var handler any
		if n.Catch != nil {
			handler = c.createNode(n.Catch, map[string]any{
				"type":  estree.ESTreeKindCatchClause,
				"param": c.convertBindingTarget(n.Catch.Parameter),
				"body":  c.convertBlock(n.Catch.Body),
			})
		}
		return c.createNode(n, map[string]any{
			"type":      estree.ESTreeKindTryStatement,
			"block":     c.convertBlock(n.Body),
			"handler":   handler,
			"finalizer": c.convertBlock(n.Finally),
		})
	case *ast.WhileStatement:
		return c.createNode(n, map[string]any{
			"type": estree.ESTreeKindWhileStatement,
			"test": c.convertExpression(n.Test),
			"body": c.convertStatement(n.Body),
		})
	case *ast.DoWhileStatement:
		return c.createNode(n, map[string]any{
			"type": estree.ESTreeKindDoWhileStatement,
			"body": c.convertStatement(n.Body),
			"test": c.convertExpression(n.Test),
		})
	case *ast.ForStatement:
		return c.createNode(n, map[string]any{
			"type":   estree.ESTreeKindForStatement,
			"init":   c.convertForInit(n.Initializer),
			"test":   c.convertExpression(n.Test),
			"update": c.convertExpression(n.Update),
			"body":   c.convertStatement(n.Body),
		})
	case *ast.ForInStatement:
		return c.createNode(n, map[string]any{
			"type":  estree.ESTreeKindForInStatement,
			"left":  c.convertForInto(n.Into),
			"right": c.convertExpression(n.Source),
			"body":  c.convertStatement(n.Body),
			"each":  false,
		})
	case *ast.ForOfStatement:
		return c.createNode(n, map[string]any{
			"type":  estree.ESTreeKindForOfStatement,
			"left":  c.convertForInto(n.Into),
			"right": c.convertExpression(n.Source),
			"body":  c.convertStatement(n.Body),
		})
	case *ast.BranchStatement:
		t := estree.ESTreeKindBreakStatement
		if n.Token == token.CONTINUE {
			t = estree.ESTreeKindContinueStatement
		}
		return c.createNode(n, map[string]any{
			"type":  t,
			"label": c.convertIdentifier(n.Label),
		})
	case *ast.LabelledStatement:
		return c.createNode(n, map[string]any{
			"type":  estree.ESTreeKindLabeledStatement,
			"label": c.convertIdentifier(n.Label),
			"body":  c.convertStatement(n.Statement),
		})
	case *ast.SwitchStatement:
		cases := make([]any, 0, len(n.Body))
		for _, cs := range n.Body {
			cases = append(cases, c.createNode(cs, map[string]any{
				"type":       estree.ESTreeKindSwitchCase,
				"test":       c.convertExpression(cs.Test),
				"consequent": c.convertStatements(cs.Consequent),
			}))
		}
		return c.createNode(n, map[string]any{
			"type":         estree.ESTreeKindSwitchStatement,
			"discriminant": c.convertExpression(n.Discriminant),
			"cases":        cases,
		})
	case *ast.WithStatement:
		return c.createNode(n, map[string]any{
			"type":   estree.ESTreeKindWithStatement,
			"object": c.convertExpression(n.Object),
			"body":   c.convertStatement(n.Body),
		})
	case *ast.VariableStatement:
		return c.createNode(n, map[string]any{
			"type":         estree.ESTreeKindVariableDeclaration,
			"kind":         "var",
			"declarations": c.convertDeclarators(n.List),
		})
	case *ast.LexicalDeclaration:
		return c.convertLexical(n)
	case *ast.FunctionDeclaration:
		return c.convertFunction(n.Function, estree.ESTreeKindFunctionDeclaration)
	case *ast.ClassDeclaration:
		return c.convertClass(n.Class, estree.ESTreeKindClassDeclaration)
	}
	return c.unsupported(s)
}

func (c *converter) convertBlock(n *ast.BlockStatement) any {
	if n == nil {
		return nil
	}
	return c.createNode(n, map[string]any{
		"type": estree.ESTreeKindBlockStatement,
		"body": c.convertStatements(n.List),
	})
}

func (c *converter) convertLexical(n *ast.LexicalDeclaration) map[string]any {
	kind := "let"
	if n.Token == token.CONST {
		kind = "const"
	}
	return c.createNode(n, map[string]any{
		"type":         estree.ESTreeKindVariableDeclaration,
		"kind":         kind,
		"declarations": c.convertDeclarators(n.List),
	})
}

func (c *converter) convertDeclarators(list []*ast.Binding) []any {
	result := make([]any, 0, len(list))
	for _, b := range list {
		result = append(result, c.createNode(b, map[string]any{
			"type": estree.ESTreeKindVariableDeclarator,
			"id":   c.convertBindingTarget(b.Target),
			"init": c.convertExpression(b.Initializer),
		}))
	}
	return result
}

func (c *converter) convertForInit(init ast.ForLoopInitializer) any {
	switch n := init.(type) {
	case nil:
		return nil
	case *ast.ForLoopInitializerExpression:
		return c.convertExpression(n.Expression)
	case *ast.ForLoopInitializerVarDeclList:
		return map[string]any{
			"type":         estree.ESTreeKindVariableDeclaration,
			"kind":         "var",
			"declarations": c.convertDeclarators(n.List),
		}
	case *ast.ForLoopInitializerLexicalDecl:
		return c.convertLexical(&n.LexicalDeclaration)
	}
	return map[string]any{"type": fmt.Sprintf("Unsupported(%T)", init)}
}

func (c *converter) convertForInto(into ast.ForInto) any {
	switch n := into.(type) {
	case *ast.ForIntoVar:
		return map[string]any{
			"type":         estree.ESTreeKindVariableDeclaration,
			"kind":         "var",
			"declarations": c.convertDeclarators([]*ast.Binding{n.Binding}),
		}
	case *ast.ForDeclaration:
		kind := "let"
		if n.IsConst {
			kind = "const"
		}
		return c.createNode(n, map[string]any{
			"type": estree.ESTreeKindVariableDeclaration,
			"kind": kind,
			"declarations": []any{map[string]any{
				"type": estree.ESTreeKindVariableDeclarator,
				"id":   c.convertBindingTarget(n.Target),
			}},
		})
	case *ast.ForIntoExpression:
		return c.convertPattern(n.Expression)
	}
	return map[string]any{"type": fmt.Sprintf("Unsupported(%T)", into)}
}

func (c *converter) convertFunction(fn *ast.FunctionLiteral, t string) map[string]any {
	var body any
	if fn.Body != nil {
		body = c.createNode(fn.Body, map[string]any{
			"type": estree.ESTreeKindBlockStatement,
			"body": c.convertBody(fn.Body.List),
		})
	}
	return c.createNode(fn, map[string]any{
		"type":       t,
		"id":         c.convertIdentifier(fn.Name),
		"params":     c.convertParameters(fn.ParameterList),
		"body":       body,
		"generator":  fn.Generator,
		"expression": false,
		"async":      fn.Async,
	})
}

func (c *converter) convertArrow(fn *ast.ArrowFunctionLiteral) map[string]any {
	var body any
	expression := false
	switch b := fn.Body.(type) {
	case *ast.BlockStatement:
		body = c.createNode(b, map[string]any{
			"type": estree.ESTreeKindBlockStatement,
			"body": c.convertBody(b.List),
		})
	case *ast.ExpressionBody:
		body = c.convertExpression(b.Expression)
		expression = true
	}
	return c.createNode(fn, map[string]any{
		"type":       estree.ESTreeKindArrowFunctionExpression,
		"id":         nil,
		"params":     c.convertParameters(fn.ParameterList),
		"body":       body,
		"generator":  false,
		"expression": expression,
		"async":      fn.Async,
	})
}

func (c *converter) convertParameters(list *ast.ParameterList) []any {
	if list == nil {
		return []any{}
	}
	params := make([]any, 0, len(list.List)+1)
	for _, b := range list.List {
		params = append(params, c.convertBinding(b))
	}
	if list.Rest != nil {
		params = append(params, map[string]any{
			"type":     estree.ESTreeKindRestElement,
			"argument": c.convertPattern(list.Rest),
		})
	}
	return params
}

// convertBinding converts a binding with an optional default value.
func (c *converter) convertBinding(b *ast.Binding) any {
	target := c.convertBindingTarget(b.Target)
	if b.Initializer == nil {
		return target
	}
	return c.createNode(b, map[string]any{
		"type":  estree.ESTreeKindAssignmentPattern,
		"left":  target,
		"right": c.convertExpression(b.Initializer),
	})
}

func (c *converter) convertBindingTarget(target ast.BindingTarget) any {
	if target == nil {
		return nil
	}
	return c.convertPattern(target)
}

// convertPattern converts an expression in binding or assignment-target position.
func (c *converter) convertPattern(e ast.Expression) any {
	switch n := e.(type) {
	case nil:
		return nil
	case *ast.ArrayPattern:
		elements := make([]any, 0, len(n.Elements)+1)
		for _, el := range n.Elements {
			elements = append(elements, c.convertPattern(el))
		}
		if n.Rest != nil {
			elements = append(elements, map[string]any{
				"type":     estree.ESTreeKindRestElement,
				"argument": c.convertPattern(n.Rest),
			})
		}
		return c.createNode(n, map[string]any{
			"type":     estree.ESTreeKindArrayPattern,
			"elements": elements,
		})
	case *ast.ObjectPattern:
		properties := make([]any, 0, len(n.Properties)+1)
		for _, p := range n.Properties {
			properties = append(properties, c.convertProperty(p, true))
		}
		if n.Rest != nil {
			properties = append(properties, map[string]any{
				"type":     estree.ESTreeKindRestElement,
				"argument": c.convertPattern(n.Rest),
			})
		}
		return c.createNode(n, map[string]any{
			"type":       estree.ESTreeKindObjectPattern,
			"properties": properties,
		})
	case *ast.AssignExpression:
		if n.Operator == token.ASSIGN {
			return c.createNode(n, map[string]any{
				"type":  estree.ESTreeKindAssignmentPattern,
				"left":  c.convertPattern(n.Left),
				"right": c.convertExpression(n.Right),
			})
		}
	}
	return c.convertExpression(e)
}

func (c *converter) convertIdentifier(id *ast.Identifier) any {
	if id == nil {
		return nil
	}
	return c.createNode(id, map[string]any{
		"type": estree.ESTreeKindIdentifier,
		"name": id.Name.String(),
	})
}

// convertKey converts a property name. goja parses bare names as string
// literals without quotes.
func (c *converter) convertKey(key ast.Expression, computed bool) any {
	if lit, ok := key.(*ast.StringLiteral); ok && !computed && !isQuoted(lit.Literal) {
		return c.createNode(lit, map[string]any{
			"type": estree.ESTreeKindIdentifier,
			"name": lit.Value.String(),
		})
	}
	return c.convertExpression(key)
}

func isQuoted(literal string) bool {
	return strings.HasPrefix(literal, `"`) || strings.HasPrefix(literal, `'`)
}

func (c *converter) convertProperty(p ast.Property, pattern bool) any {
	switch n := p.(type) {
	case *ast.PropertyShort:
		key := c.convertIdentifier(&n.Name)
		value := key
		if n.Initializer != nil {
			value = map[string]any{
				"type":  estree.ESTreeKindAssignmentPattern,
				"left":  c.convertIdentifier(&n.Name),
				"right": c.convertExpression(n.Initializer),
			}
		}
		return c.createNode(n, map[string]any{
			"type":      estree.ESTreeKindProperty,
			"key":       key,
			"computed":  false,
			"value":     value,
			"kind":      "init",
			"method":    false,
			"shorthand": true,
		})
	case *ast.PropertyKeyed:
		kind := "init"
		method := false
		switch n.Kind {
		case ast.PropertyKindGet:
			kind = "get"
		case ast.PropertyKindSet:
			kind = "set"
		case ast.PropertyKindMethod:
			method = true
		}
		var value any
		if pattern {
			value = c.convertPattern(n.Value)
		} else {
			value = c.convertExpression(n.Value)
		}
		return c.createNode(n, map[string]any{
			"type":      estree.ESTreeKindProperty,
			"key":       c.convertKey(n.Key, n.Computed),
			"computed":  n.Computed,
			"value":     value,
			"kind":      kind,
			"method":    method,
			"shorthand": false,
		})
	case *ast.SpreadElement:
		t := estree.ESTreeKindSpreadElement
		if pattern {
			t = estree.ESTreeKindRestElement
		}
		return c.createNode(n, map[string]any{
			"type":     t,
			"argument": c.convertExpression(n.Expression),
		})
	}
	return map[string]any{"type": fmt.Sprintf("Unsupported(%T)", p)}
}

func (c *converter) convertClass(class *ast.ClassLiteral, t string) map[string]any {
	members := make([]any, 0, len(class.Body))
	for _, el := range class.Body {
		members = append(members, c.convertClassElement(el))
	}
	return c.createNode(class, map[string]any{
		"type":       t,
		"id":         c.convertIdentifier(class.Name),
		"superClass": c.convertExpression(class.SuperClass),
		"body": map[string]any{
			"type": estree.ESTreeKindClassBody,
			"body": members,
		},
	})
}

func (c *converter) convertClassElement(el ast.ClassElement) any {
	switch n := el.(type) {
	case *ast.MethodDefinition:
		key := c.convertKey(n.Key, n.Computed)
		kind := "method"
		switch n.Kind {
		case ast.PropertyKindGet:
			kind = "get"
		case ast.PropertyKindSet:
			kind = "set"
		default:
			if k, ok := key.(map[string]any); ok && !n.Static && !n.Computed && k["name"] == "constructor" {
				kind = "constructor"
			}
		}
		return c.createNode(n, map[string]any{
			"type":     estree.ESTreeKindMethodDefinition,
			"key":      key,
			"computed": n.Computed,
			"value":    c.convertFunction(n.Body, estree.ESTreeKindFunctionExpression),
			"kind":     kind,
			"static":   n.Static,
		})
	case *ast.FieldDefinition:
		return c.createNode(n, map[string]any{
			"type":     estree.ESTreeKindPropertyDefinition,
			"key":      c.convertKey(n.Key, n.Computed),
			"computed": n.Computed,
			"value":    c.convertExpression(n.Initializer),
			"static":   n.Static,
		})
	case *ast.ClassStaticBlock:
		return c.createNode(n, map[string]any{
			"type": estree.ESTreeKindStaticBlock,
			"body": c.convertStatements(n.Block.List),
		})
	}
	return map[string]any{"type": fmt.Sprintf("Unsupported(%T)", el)}
}

func (c *converter) convertExpression(e ast.Expression) any {
	switch n := e.(type) {
	case nil:
		return nil
	case *ast.Identifier:
		return c.convertIdentifier(n)
	case *ast.NullLiteral:
		return c.createNode(n, map[string]any{
			"type":  estree.ESTreeKindLiteral,
			"value": nil,
			"raw":   n.Literal,
		})
	case *ast.BooleanLiteral:
		return c.createNode(n, map[string]any{
			"type":  estree.ESTreeKindLiteral,
			"value": n.Value,
			"raw":   n.Literal,
		})
	case *ast.StringLiteral:
		return c.createNode(n, map[string]any{
			"type":  estree.ESTreeKindLiteral,
			"value": n.Value.String(),
			"raw":   n.Literal,
		})
	case *ast.NumberLiteral:
		fields := map[string]any{
			"type": estree.ESTreeKindLiteral,
			"raw":  n.Literal,
		}
		switch v := n.Value.(type) {
		case int64:
			fields["value"] = v
		case float64:
			fields["value"] = v
		case *big.Int:
			fields["value"] = nil
			fields["bigint"] = v.String()
		}
		return c.createNode(n, fields)
	case *ast.RegExpLiteral:
		return c.createNode(n, map[string]any{
			"type":  estree.ESTreeKindLiteral,
			"value": nil,
			"raw":   n.Literal,
			"regex": map[string]any{"pattern": n.Pattern, "flags": n.Flags},
		})
	case *ast.TemplateLiteral:
		quasis := make([]any, 0, len(n.Elements))
		for i, el := range n.Elements {
			quasis = append(quasis, c.createNode(el, map[string]any{
				"type": estree.ESTreeKindTemplateElement,
				"value": map[string]any{
					"raw":    el.Literal,
					"cooked": el.Parsed.String(),
				},
				"tail": i == len(n.Elements)-1,
			}))
		}
		literal := c.createNode(n, map[string]any{
			"type":        estree.ESTreeKindTemplateLiteral,
			"quasis":      quasis,
			"expressions": c.convertExpressions(n.Expressions),
		})
		if n.Tag == nil {
			return literal
		}
		return c.createNode(n, map[string]any{
			"type":  estree.ESTreeKindTaggedTemplateExpression,
			"tag":   c.convertExpression(n.Tag),
			"quasi": literal,
		})
	case *ast.ThisExpression:
		return c.createNode(n, map[string]any{"type": estree.ESTreeKindThisExpression})
	case *ast.SuperExpression:
		return c.createNode(n, map[string]any{"type": estree.ESTreeKindSuper})
	case *ast.ArrayLiteral:
		return c.createNode(n, map[string]any{
			"type":     estree.ESTreeKindArrayExpression,
			"elements": c.convertExpressions(n.Value),
		})
	case *ast.ObjectLiteral:
		properties := make([]any, 0, len(n.Value))
		for _, p := range n.Value {
			properties = append(properties, c.convertProperty(p, false))
		}
		return c.createNode(n, map[string]any{
			"type":       estree.ESTreeKindObjectExpression,
			"properties": properties,
		})
	case *ast.ArrayPattern, *ast.ObjectPattern:
		return c.convertPattern(n)
	case *ast.FunctionLiteral:
		return c.convertFunction(n, estree.ESTreeKindFunctionExpression)
	case *ast.ArrowFunctionLiteral:
		return c.convertArrow(n)
	case *ast.ClassLiteral:
		return c.convertClass(n, estree.ESTreeKindClassExpression)
	case *ast.DotExpression:
		return c.createNode(n, map[string]any{
			"type":     estree.ESTreeKindMemberExpression,
			"computed": false,
			"object":   c.convertExpression(n.Left),
			"property": c.convertIdentifier(&n.Identifier),
		})
	case *ast.PrivateDotExpression:
		return c.createNode(n, map[string]any{
			"type":     estree.ESTreeKindMemberExpression,
			"computed": false,
			"object":   c.convertExpression(n.Left),
			"property": c.convertExpression(&n.Identifier),
		})
	case *ast.PrivateIdentifier:
		return c.createNode(n, map[string]any{
			"type": estree.ESTreeKindPrivateIdentifier,
			"name": strings.TrimPrefix(n.Name.String(), "#"),
		})
	case *ast.BracketExpression:
		return c.createNode(n, map[string]any{
			"type":     estree.ESTreeKindMemberExpression,
			"computed": true,
			"object":   c.convertExpression(n.Left),
			"property": c.convertExpression(n.Member),
		})
	case *ast.OptionalChain:
		return c.convertExpression(n.Expression)
	case *ast.Optional:
		return c.convertExpression(n.Expression)
	case *ast.CallExpression:
		return c.createNode(n, map[string]any{
			"type":      estree.ESTreeKindCallExpression,
			"callee":    c.convertExpression(n.Callee),
			"arguments": c.convertExpressions(n.ArgumentList),
		})
	case *ast.NewExpression:
		return c.createNode(n, map[string]any{
			"type":      estree.ESTreeKindNewExpression,
			"callee":    c.convertExpression(n.Callee),
			"arguments": c.convertExpressions(n.ArgumentList),
		})
	case *ast.SpreadElement:
		return c.createNode(n, map[string]any{
			"type":     estree.ESTreeKindSpreadElement,
			"argument": c.convertExpression(n.Expression),
		})
	case *ast.UnaryExpression:
		operator := n.Operator.String()
		if n.Operator == token.INCREMENT || n.Operator == token.DECREMENT {
			return c.createNode(n, map[string]any{
				"type":     estree.ESTreeKindUpdateExpression,
				"operator": operator,
				"argument": c.convertExpression(n.Operand),
				"prefix":   !n.Postfix,
			})
		}
		return c.createNode(n, map[string]any{
			"type":     estree.ESTreeKindUnaryExpression,
			"operator": operator,
			"argument": c.convertExpression(n.Operand),
			"prefix":   true,
		})
	case *ast.BinaryExpression:
		operator := n.Operator.String()
		return c.createNode(n, map[string]any{
			"type":     estree.ClassifyOperator(operator).ExpressionType(),
			"operator": operator,
			"left":     c.convertExpression(n.Left),
			"right":    c.convertExpression(n.Right),
		})
	case *ast.AssignExpression:
		// compound assignments carry the binary operator
		operator := "="
		if n.Operator != token.ASSIGN {
			operator = n.Operator.String() + "="
		}
		return c.createNode(n, map[string]any{
			"type":     estree.ESTreeKindAssignmentExpression,
			"operator": operator,
			"left":     c.convertPattern(n.Left),
			"right":    c.convertExpression(n.Right),
		})
	case *ast.ConditionalExpression:
		return c.createNode(n, map[string]any{
			"type":       estree.ESTreeKindConditionalExpression,
			"test":       c.convertExpression(n.Test),
			"consequent": c.convertExpression(n.Consequent),
			"alternate":  c.convertExpression(n.Alternate),
		})
	case *ast.SequenceExpression:
		return c.createNode(n, map[string]any{
			"type":        estree.ESTreeKindSequenceExpression,
			"expressions": c.convertExpressions(n.Sequence),
		})
	case *ast.AwaitExpression:
		return c.createNode(n, map[string]any{
			"type":     estree.ESTreeKindAwaitExpression,
			"argument": c.convertExpression(n.Argument),
		})
	case *ast.YieldExpression:
		return c.createNode(n, map[string]any{
			"type":     estree.ESTreeKindYieldExpression,
			"argument": c.convertExpression(n.Argument),
			"delegate": n.Delegate,
		})
	case *ast.MetaProperty:
		return c.createNode(n, map[string]any{
			"type":     estree.ESTreeKindMetaProperty,
			"meta":     c.convertIdentifier(n.Meta),
			"property": c.convertIdentifier(n.Property),
		})
	}
	return c.unsupported(e)
}

// unsupported keeps the node in the tree so a comparison against it fails
// instead of silently passing.
func (c *converter) unsupported(n ast.Node) map[string]any {
	return c.createNode(n, map[string]any{"type": fmt.Sprintf("Unsupported(%T)", n)})
}
