package printer

import (
	"strings"

	"github.com/t14raptor/go-estree/ast"
)

const indentUnit = "    "

type state struct {
	out  *strings.Builder
	node ast.Node

	// role is the field of the parent node that holds node, if it has one.
	role  string
	depth int
}

// wrap returns the state for a child of s.node, one level deeper.
func (s *state) wrap(node ast.Node) *state {
	return &state{
		out:   s.out,
		node:  node,
		role:  role(s.node, node),
		depth: s.depth + 1,
	}
}

// header writes the line describing s.node. Every line but the first starts
// on a new line.
func (s *state) header() {
	if s.depth > 0 {
		s.out.WriteByte('\n')
	}
	s.out.WriteString(strings.Repeat(indentUnit, s.depth))
	if s.role != "" {
		s.out.WriteString(s.role)
		s.out.WriteString(": ")
	}
	s.out.WriteString(describe(s.node))
}
