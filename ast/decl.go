package ast

// DeclarationKind is the keyword that introduced a variable declaration.
type DeclarationKind string

const (
	DeclarationConst DeclarationKind = "const"
	DeclarationLet   DeclarationKind = "let"
	DeclarationVar   DeclarationKind = "var"
)

type (
	VariableDeclaration struct {
		Span
		Kind         DeclarationKind
		Declarations VariableDeclarators
	}

	VariableDeclarators []*VariableDeclarator

	VariableDeclarator struct {
		Span
		ID   *Identifier
		Init Expr
	}
)
