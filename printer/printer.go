// Package printer renders an AST as an indented tree, one node per line.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/t14raptor/go-estree/ast"
)

// Print returns the tree rooted at node.
func Print(node ast.Node) string {
	s := &state{out: &strings.Builder{}, node: node}
	dump(s)
	s.out.WriteByte('\n')
	return s.out.String()
}

func dump(s *state) {
	s.header()
	for _, child := range children(s.node) {
		dump(s.wrap(child))
	}
}

// children returns the direct children of n in source order.
func children(n ast.Node) []ast.Node {
	var list []ast.Node
	n.VisitChildrenWith(ast.VisitorFunc(func(child ast.Node) bool {
		list = append(list, child)
		return false
	}))
	return list
}

func describe(n ast.Node) string {
	parts := []string{ast.TypeOf(n)}
	switch n := n.(type) {
	case *ast.VariableDeclaration:
		parts = append(parts, string(n.Kind))
	case *ast.Identifier:
		parts = append(parts, n.Name)
	case *ast.Literal:
		parts = append(parts, string(n.LiteralType), n.Raw)
	case *ast.TemplateElement:
		parts = append(parts, strconv.Quote(n.Raw))
		parts = flag(parts, n.Tail, "tail")
	case *ast.Property:
		parts = append(parts, string(n.Kind))
		parts = flag(parts, n.Computed, "computed")
		parts = flag(parts, n.Shorthand, "shorthand")
		parts = flag(parts, n.Method, "method")
	case *ast.FunctionExpression:
		parts = flag(parts, n.Async, "async")
		parts = flag(parts, n.Generator, "generator")
	case *ast.ArrowFunctionExpression:
		parts = flag(parts, n.Async, "async")
		parts = flag(parts, n.Expression, "expression")
	case *ast.UnaryExpression:
		parts = append(parts, n.Operator)
	case *ast.BinaryExpression:
		parts = append(parts, n.Operator)
	case *ast.LogicalExpression:
		parts = append(parts, n.Operator)
	case *ast.AssignmentExpression:
		parts = append(parts, n.Operator)
	case *ast.MemberExpression:
		parts = flag(parts, n.Computed, "computed")
	}
	parts = append(parts, fmt.Sprintf("[%d,%d)", n.Idx0(), n.Idx1()))
	return strings.Join(parts, " ")
}

func flag(parts []string, set bool, name string) []string {
	if set {
		return append(parts, name)
	}
	return parts
}

// role names the field of parent that holds child. Members of lists have
// no role.
func role(parent, child ast.Node) string {
	switch p := parent.(type) {
	case *ast.VariableDeclarator:
		return pick(child, p.ID, "id", p.Init, "init")
	case *ast.Property:
		return pick(child, p.Key, "key", p.Value, "value")
	case *ast.BinaryExpression:
		return pick(child, p.Left, "left", p.Right, "right")
	case *ast.LogicalExpression:
		return pick(child, p.Left, "left", p.Right, "right")
	case *ast.AssignmentExpression:
		return pick(child, p.Left, "left", p.Right, "right")
	case *ast.ConditionalExpression:
		if r := pick(child, p.Test, "test", p.Consequent, "consequent"); r != "" {
			return r
		}
		return pick(child, p.Alternate, "alternate", nil, "")
	case *ast.MemberExpression:
		return pick(child, p.Object, "object", p.Property, "property")
	case *ast.CallExpression:
		return pick(child, p.Callee, "callee", nil, "")
	case *ast.NewExpression:
		return pick(child, p.Callee, "callee", nil, "")
	case *ast.FunctionExpression:
		if p.ID != nil && child == ast.Node(p.ID) {
			return "id"
		}
		return pick(child, p.Body, "body", nil, "")
	case *ast.ArrowFunctionExpression:
		return pick(child, p.Body, "body", nil, "")
	}
	return ""
}

func pick(child ast.Node, a any, aName string, b any, bName string) string {
	switch {
	case a != nil && same(child, a):
		return aName
	case b != nil && same(child, b):
		return bName
	}
	return ""
}

func same(child ast.Node, field any) bool {
	n, ok := field.(ast.Node)
	return ok && n == child
}
