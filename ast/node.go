package ast

// Idx is a compact encoding of a source position: the count of Unicode
// scalar values preceding it.
type Idx uint32

// Span is the half-open range [Start, End) covered by a node.
type Span struct {
	Start Idx
	End   Idx
}

// Idx0 returns the index of the first character belonging to the node.
func (s Span) Idx0() Idx { return s.Start }

// Idx1 returns the index of the first character immediately after the node.
func (s Span) Idx1() Idx { return s.End }

// Contains reports whether o lies within s.
func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

type Node interface {
	// Idx0 returns the index of the first character belonging to the node.
	Idx0() Idx
	// Idx1 returns the index of the first character immediately after the node.
	Idx1() Idx

	VisitChildrenWith(v Visitor)
}

// SpanOf returns the span of any node.
func SpanOf(n Node) Span {
	return Span{Start: n.Idx0(), End: n.Idx1()}
}

type Program struct {
	Span
	Body Statements
}
