package token

import (
	"fmt"

	"github.com/t14raptor/go-estree/ast"
)

// Label is the category of a token: one of the category labels, or the
// exact spelling of a keyword, punctuator or template delimiter.
type Label string

// String returns the label spelling.
func (l Label) String() string {
	return string(l)
}

// Value is the payload of a token: Text, *RegExpValue, or nil.
type Value interface {
	_value()
}

// Text is a plain text payload.
type Text string

// RegExpValue describes a regular expression literal.
type RegExpValue struct {
	Pattern string
	Flags   string
	Raw     string
}

func (Text) _value()         {}
func (*RegExpValue) _value() {}

// Token is a single lexical unit covering [Start, End) of the source.
type Token struct {
	Label   Label
	Keyword string
	Value   Value

	Start, End ast.Idx
}

// Text returns the text payload, or "" when the token carries none.
func (t Token) Text() string {
	if s, ok := t.Value.(Text); ok {
		return string(s)
	}
	if re, ok := t.Value.(*RegExpValue); ok {
		return re.Raw
	}
	return ""
}

// IsKeyword reports whether the token is a recognised keyword.
func (t Token) IsKeyword() bool {
	return t.Keyword != ""
}

func (t Token) String() string {
	switch v := t.Value.(type) {
	case Text:
		return fmt.Sprintf("%s %q [%d,%d)", t.Label, string(v), t.Start, t.End)
	case *RegExpValue:
		return fmt.Sprintf("%s /%s/%s [%d,%d)", t.Label, v.Pattern, v.Flags, t.Start, t.End)
	}
	return fmt.Sprintf("%s [%d,%d)", t.Label, t.Start, t.End)
}

// Precedence returns the binary operator precedence of l, or 0 when l is
// not a binary operator. The in keyword only counts when in is true.
func (l Label) Precedence(in bool) int {
	switch l {
	case LogicalOr, Coalesce:
		return 1
	case LogicalAnd:
		return 2
	case Or:
		return 3
	case ExclusiveOr:
		return 4
	case And:
		return 5
	case Equal,
		NotEqual,
		StrictEqual,
		StrictNotEqual:
		return 6
	case Less, Greater, LessOrEqual, GreaterOrEqual, InstanceOf:
		return 7
	case In:
		if in {
			return 7
		}
		return 0
	case ShiftLeft, ShiftRight, UnsignedShiftRight:
		return 8
	case Plus, Minus:
		return 9
	case Multiply, Slash, Remainder:
		return 11
	case Exponent:
		return 12
	}
	return 0
}

// IsAssign reports whether l is an assignment operator.
func (l Label) IsAssign() bool {
	switch l {
	case Assign, AddAssign, SubtractAssign, MultiplyAssign, ExponentAssign,
		QuotientAssign, RemainderAssign, AndAssign, OrAssign, ExclusiveOrAssign,
		ShiftLeftAssign, ShiftRightAssign, UnsignedShiftRightAssign:
		return true
	}
	return false
}

// IsLogical reports whether l builds a LogicalExpression rather than a
// BinaryExpression.
func (l Label) IsLogical() bool {
	return l == LogicalAnd || l == LogicalOr || l == Coalesce
}
