package estree

import (
	"math"

	"github.com/t14raptor/go-estree/ast"
)

func base(n ast.Node) Base {
	return Base{
		Type:  ast.TypeOf(n),
		Start: uint32(n.Idx0()),
		End:   uint32(n.Idx1()),
	}
}

// FromProgram converts a program into its ESTree form.
func FromProgram(p *ast.Program) *Program {
	return &Program{
		Base:       base(p),
		Body:       statements(p.Body),
		SourceType: "script",
	}
}

func statements(list ast.Statements) []any {
	out := make([]any, len(list))
	for i, s := range list {
		out[i] = FromNode(s)
	}
	return out
}

func expressions(list ast.Expressions) []any {
	out := make([]any, len(list))
	for i, e := range list {
		out[i] = FromNode(e)
	}
	return out
}

func identifiers(list ast.Identifiers) []any {
	out := make([]any, len(list))
	for i, id := range list {
		out[i] = FromNode(id)
	}
	return out
}

// optional converts id, keeping a missing identifier as a JSON null.
func optional(id *ast.Identifier) any {
	if id == nil {
		return nil
	}
	return FromNode(id)
}

// FromNode converts any node. A nil node converts to nil.
func FromNode(n ast.Node) any {
	switch n := n.(type) {
	case nil:
		return nil
	case *ast.Program:
		return FromProgram(n)
	case *ast.BlockStatement:
		return &BlockStatement{Base: base(n), Body: statements(n.Body)}
	case *ast.VariableDeclaration:
		decls := make([]any, len(n.Declarations))
		for i, d := range n.Declarations {
			decls[i] = FromNode(d)
		}
		return &VariableDeclaration{Base: base(n), Kind: string(n.Kind), Declarations: decls}
	case *ast.VariableDeclarator:
		var init any
		if n.Init != nil {
			init = FromNode(n.Init)
		}
		return &VariableDeclarator{Base: base(n), ID: optional(n.ID), Init: init}
	case *ast.Identifier:
		return &Identifier{Base: base(n), Name: n.Name}
	case *ast.Literal:
		return literal(n)
	case *ast.TemplateLiteral:
		quasis := make([]any, len(n.Quasis))
		for i, q := range n.Quasis {
			quasis[i] = FromNode(q)
		}
		return &TemplateLiteral{Base: base(n), Quasis: quasis, Expressions: expressions(n.Expressions)}
	case *ast.TemplateElement:
		return &TemplateElement{
			Base:  base(n),
			Value: TemplateValue{Raw: n.Raw, Cooked: n.Cooked},
			Tail:  n.Tail,
		}
	case *ast.ArrayExpression:
		return &ArrayExpression{Base: base(n), Elements: expressions(n.Elements)}
	case *ast.ObjectExpression:
		props := make([]any, len(n.Properties))
		for i, p := range n.Properties {
			props[i] = FromNode(p)
		}
		return &ObjectExpression{Base: base(n), Properties: props}
	case *ast.Property:
		return &Property{
			Base:      base(n),
			Key:       FromNode(n.Key),
			Value:     FromNode(n.Value),
			Kind:      string(n.Kind),
			Computed:  n.Computed,
			Method:    n.Method,
			Shorthand: n.Shorthand,
		}
	case *ast.FunctionExpression:
		return &Function{
			Base:      base(n),
			ID:        optional(n.ID),
			Params:    identifiers(n.Params),
			Body:      FromNode(n.Body),
			Generator: n.Generator,
			Async:     n.Async,
		}
	case *ast.ArrowFunctionExpression:
		return &Function{
			Base:       base(n),
			Params:     identifiers(n.Params),
			Body:       FromNode(n.Body),
			Expression: n.Expression,
			Async:      n.Async,
		}
	case *ast.UnaryExpression:
		return &UnaryExpression{Base: base(n), Operator: n.Operator, Prefix: true, Argument: FromNode(n.Argument)}
	case *ast.BinaryExpression:
		return &BinaryExpression{Base: base(n), Operator: n.Operator, Left: FromNode(n.Left), Right: FromNode(n.Right)}
	case *ast.LogicalExpression:
		return &BinaryExpression{Base: base(n), Operator: n.Operator, Left: FromNode(n.Left), Right: FromNode(n.Right)}
	case *ast.AssignmentExpression:
		return &BinaryExpression{Base: base(n), Operator: n.Operator, Left: FromNode(n.Left), Right: FromNode(n.Right)}
	case *ast.ConditionalExpression:
		return &ConditionalExpression{
			Base:       base(n),
			Test:       FromNode(n.Test),
			Consequent: FromNode(n.Consequent),
			Alternate:  FromNode(n.Alternate),
		}
	case *ast.MemberExpression:
		return &MemberExpression{Base: base(n), Object: FromNode(n.Object), Property: FromNode(n.Property), Computed: n.Computed}
	case *ast.CallExpression:
		return &CallExpression{Base: base(n), Callee: FromNode(n.Callee), Arguments: expressions(n.Arguments)}
	case *ast.NewExpression:
		return &NewExpression{Base: base(n), Callee: FromNode(n.Callee), Arguments: expressions(n.Arguments)}
	}
	return nil
}

func literal(n *ast.Literal) *Literal {
	lit := &Literal{
		Base:        base(n),
		Value:       n.Value,
		Raw:         n.Raw,
		LiteralType: string(n.LiteralType),
	}
	// Infinity has no JSON form.
	if f, ok := n.Value.(float64); ok && (math.IsInf(f, 0) || math.IsNaN(f)) {
		lit.Value = nil
	}
	if n.Regex != nil {
		lit.Regex = &Regex{Pattern: n.Regex.Pattern, Flags: n.Regex.Flags}
	}
	return lit
}
