package scanner

import (
	"fmt"

	"github.com/t14raptor/go-estree/ast"
)

// Error is a lexical error covering [Start, End) of the source.
type Error struct {
	Message string
	Start   ast.Idx
	End     ast.Idx
}

func (d Error) Error() string {
	return d.Message
}

func unexpectedCharacter(c rune, start, end ast.Idx) Error {
	return Error{
		Message: fmt.Sprintf("Unexpected character `%c`", c),
		Start:   start,
		End:     end,
	}
}

func unexpectedToken(text string, start, end ast.Idx) Error {
	return Error{
		Message: fmt.Sprintf("Unexpected token `%s`", text),
		Start:   start,
		End:     end,
	}
}

func unterminatedString(start, end ast.Idx) Error {
	return Error{
		Message: "Unterminated string",
		Start:   start,
		End:     end,
	}
}

func unterminatedTemplateLiteral(start, end ast.Idx) Error {
	return Error{
		Message: "Unterminated template literal",
		Start:   start,
		End:     end,
	}
}

func unterminatedMultiLineComment(start, end ast.Idx) Error {
	return Error{
		Message: "Unterminated multiline comment",
		Start:   start,
		End:     end,
	}
}

func unterminatedRegExp(start, end ast.Idx) Error {
	return Error{
		Message: "Unterminated regular expression",
		Start:   start,
		End:     end,
	}
}

func unterminatedGroup(start, end ast.Idx) Error {
	return Error{
		Message: "Unterminated group in regular expression",
		Start:   start,
		End:     end,
	}
}

func unmatchedParenthesis(start, end ast.Idx) Error {
	return Error{
		Message: "Unmatched `)` in regular expression",
		Start:   start,
		End:     end,
	}
}

func nothingToRepeat(start, end ast.Idx) Error {
	return Error{
		Message: "Nothing to repeat in regular expression",
		Start:   start,
		End:     end,
	}
}

func regExpFlag(c rune, start, end ast.Idx) Error {
	return Error{
		Message: fmt.Sprintf("Invalid regular expression flag `%c`", c),
		Start:   start,
		End:     end,
	}
}

func regExpFlagTwice(c rune, start, end ast.Idx) Error {
	return Error{
		Message: fmt.Sprintf("Duplicate regular expression flag `%c`", c),
		Start:   start,
		End:     end,
	}
}

func unexpectedNumber(start, end ast.Idx) Error {
	return Error{
		Message: "Unexpected number",
		Start:   start,
		End:     end,
	}
}

func identifierAfterNumber(start, end ast.Idx) Error {
	return Error{
		Message: "Identifier directly after number",
		Start:   start,
		End:     end,
	}
}

func sourceTooLarge(n int) Error {
	return Error{
		Message: fmt.Sprintf("Source too large: %d characters", n),
	}
}
