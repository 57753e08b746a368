package ast

type PropertyKind string

const (
	PropertyKindInit PropertyKind = "init"
	PropertyKindGet  PropertyKind = "get"
	PropertyKindSet  PropertyKind = "set"
)

type (
	Properties []*Property

	// Property is a member of an object literal. Key is an *Identifier or
	// a *Literal unless Computed is set, in which case it may be any
	// expression.
	Property struct {
		Span
		Key       Expr
		Value     Expr
		Kind      PropertyKind
		Computed  bool
		Shorthand bool
		Method    bool
	}
)
