package ast

type (
	Expressions []Expr

	// All expression nodes implement the Expr interface.
	Expr interface {
		Node
		_expr()
	}

	ArrayExpression struct {
		Span
		Elements Expressions
	}

	ObjectExpression struct {
		Span
		Properties Properties
	}

	UnaryExpression struct {
		Span
		Operator string
		Argument Expr
	}

	BinaryExpression struct {
		Span
		Operator string
		Left     Expr
		Right    Expr
	}

	LogicalExpression struct {
		Span
		Operator string
		Left     Expr
		Right    Expr
	}

	AssignmentExpression struct {
		Span
		Operator string
		Left     Expr
		Right    Expr
	}

	ConditionalExpression struct {
		Span
		Test       Expr
		Consequent Expr
		Alternate  Expr
	}

	MemberExpression struct {
		Span
		Object   Expr
		Property Expr
		Computed bool
	}

	CallExpression struct {
		Span
		Callee    Expr
		Arguments Expressions
	}

	NewExpression struct {
		Span
		Callee    Expr
		Arguments Expressions
	}
)

func (*ArrayExpression) _expr()       {}
func (*ObjectExpression) _expr()      {}
func (*UnaryExpression) _expr()       {}
func (*BinaryExpression) _expr()      {}
func (*LogicalExpression) _expr()     {}
func (*AssignmentExpression) _expr()  {}
func (*ConditionalExpression) _expr() {}
func (*MemberExpression) _expr()      {}
func (*CallExpression) _expr()        {}
func (*NewExpression) _expr()         {}
