package ast

type (
	Statements []Stmt

	// All statement nodes implement the Stmt interface.
	Stmt interface {
		Node
		_stmt()
	}

	BlockStatement struct {
		Span
		Body Statements
	}
)

func (*BlockStatement) _stmt()      {}
func (*VariableDeclaration) _stmt() {}
