package ast

type (
	FunctionExpression struct {
		Span
		ID     *Identifier
		Params Identifiers
		Body   *BlockStatement

		Async, Generator bool
	}

	// ArrowFunctionExpression has either a *BlockStatement body or, when
	// Expression is set, an expression body.
	ArrowFunctionExpression struct {
		Span
		Params     Identifiers
		Body       Node
		Expression bool
		Async      bool
	}

	Identifiers []*Identifier
)

func (*FunctionExpression) _expr()      {}
func (*ArrowFunctionExpression) _expr() {}
