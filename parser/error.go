package parser

import (
	"fmt"

	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/token"
)

const (
	errUnexpectedToken      = "Unexpected token %v"
	errUnexpectedEndOfInput = "Unexpected end of input"
	errInvalidAssignment    = "Invalid left-hand side in assignment"
	errUnaryBeforeExponent  = "Unary operator used immediately before exponentiation expression"
)

// SyntaxError is a grammar error covering [Start, End) of the source.
type SyntaxError struct {
	Message string
	Start   ast.Idx
	End     ast.Idx
}

func (e SyntaxError) Error() string {
	return e.Message
}

func (p parser) errorf(start, end ast.Idx, msg string, msgValues ...any) error {
	return SyntaxError{
		Message: fmt.Sprintf(msg, msgValues...),
		Start:   start,
		End:     end,
	}
}

// errorUnexpectedToken reports the token at cursor, or the end of input
// once the cursor has run past the last token.
func (p parser) errorUnexpectedToken(cursor int) error {
	tkn, ok := p.at(cursor)
	if !ok {
		return p.errorf(p.end, p.end, errUnexpectedEndOfInput)
	}
	switch tkn.Label {
	case token.Name:
		return p.errorf(tkn.Start, tkn.End, "Unexpected identifier")
	case token.Number:
		return p.errorf(tkn.Start, tkn.End, "Unexpected number")
	case token.String:
		return p.errorf(tkn.Start, tkn.End, "Unexpected string")
	case token.Template:
		return p.errorf(tkn.Start, tkn.End, "Unexpected template string")
	case token.RegExp:
		return p.errorf(tkn.Start, tkn.End, "Unexpected regular expression")
	}
	return p.errorf(tkn.Start, tkn.End, errUnexpectedToken, tkn.Label)
}
