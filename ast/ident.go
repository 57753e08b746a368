package ast

type Identifier struct {
	Span
	Name string
}

func (*Identifier) _expr() {}
