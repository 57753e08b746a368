package ast

// Visitor is called for every node reached during a walk.
type Visitor interface {
	Visit(n Node)
}

// NoopVisitor descends into every child and does nothing else. Embed it
// in a visitor, point V at the embedding value and override Visit; call
// NoopVisitor.Visit to keep descending.
type NoopVisitor struct {
	V Visitor
}

func (nv *NoopVisitor) Visit(n Node) {
	n.VisitChildrenWith(nv.V)
}

// VisitorFunc adapts a function to the Visitor interface. The walk
// descends into the children of a node only when f returns true.
type VisitorFunc func(n Node) bool

func (f VisitorFunc) Visit(n Node) {
	if f(n) {
		n.VisitChildrenWith(f)
	}
}

// Walk visits n with v.
func Walk(v Visitor, n Node) {
	if n != nil {
		v.Visit(n)
	}
}

func visitStatements(v Visitor, list Statements) {
	for _, s := range list {
		v.Visit(s)
	}
}

func visitExpressions(v Visitor, list Expressions) {
	for _, e := range list {
		if e != nil {
			v.Visit(e)
		}
	}
}

func visitIdentifiers(v Visitor, list Identifiers) {
	for _, id := range list {
		v.Visit(id)
	}
}

func (n *Program) VisitChildrenWith(v Visitor)        { visitStatements(v, n.Body) }
func (n *BlockStatement) VisitChildrenWith(v Visitor) { visitStatements(v, n.Body) }

func (n *VariableDeclaration) VisitChildrenWith(v Visitor) {
	for _, d := range n.Declarations {
		v.Visit(d)
	}
}

func (n *VariableDeclarator) VisitChildrenWith(v Visitor) {
	v.Visit(n.ID)
	if n.Init != nil {
		v.Visit(n.Init)
	}
}

func (n *Identifier) VisitChildrenWith(Visitor)      {}
func (n *Literal) VisitChildrenWith(Visitor)         {}
func (n *TemplateElement) VisitChildrenWith(Visitor) {}

func (n *TemplateLiteral) VisitChildrenWith(v Visitor) {
	// Quasis and expressions interleave in source order.
	for i, q := range n.Quasis {
		v.Visit(q)
		if i < len(n.Expressions) {
			v.Visit(n.Expressions[i])
		}
	}
}

func (n *ArrayExpression) VisitChildrenWith(v Visitor) { visitExpressions(v, n.Elements) }

func (n *ObjectExpression) VisitChildrenWith(v Visitor) {
	for _, p := range n.Properties {
		v.Visit(p)
	}
}

func (n *Property) VisitChildrenWith(v Visitor) {
	if n.Shorthand {
		v.Visit(n.Value)
		return
	}
	v.Visit(n.Key)
	v.Visit(n.Value)
}

func (n *FunctionExpression) VisitChildrenWith(v Visitor) {
	if n.ID != nil {
		v.Visit(n.ID)
	}
	visitIdentifiers(v, n.Params)
	v.Visit(n.Body)
}

func (n *ArrowFunctionExpression) VisitChildrenWith(v Visitor) {
	visitIdentifiers(v, n.Params)
	v.Visit(n.Body)
}

func (n *UnaryExpression) VisitChildrenWith(v Visitor) { v.Visit(n.Argument) }

func (n *BinaryExpression) VisitChildrenWith(v Visitor) {
	v.Visit(n.Left)
	v.Visit(n.Right)
}

func (n *LogicalExpression) VisitChildrenWith(v Visitor) {
	v.Visit(n.Left)
	v.Visit(n.Right)
}

func (n *AssignmentExpression) VisitChildrenWith(v Visitor) {
	v.Visit(n.Left)
	v.Visit(n.Right)
}

func (n *ConditionalExpression) VisitChildrenWith(v Visitor) {
	v.Visit(n.Test)
	v.Visit(n.Consequent)
	v.Visit(n.Alternate)
}

func (n *MemberExpression) VisitChildrenWith(v Visitor) {
	v.Visit(n.Object)
	v.Visit(n.Property)
}

func (n *CallExpression) VisitChildrenWith(v Visitor) {
	v.Visit(n.Callee)
	visitExpressions(v, n.Arguments)
}

func (n *NewExpression) VisitChildrenWith(v Visitor) {
	v.Visit(n.Callee)
	visitExpressions(v, n.Arguments)
}
