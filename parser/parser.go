// Package parser builds an AST from a token sequence.
//
// Each production is a method on an immutable parser value. It takes the
// cursor of its first token and returns the node it built together with
// the cursor just past it. A production that has committed to a branch
// never falls back to a sibling: its failure fails the whole parse.
package parser

import (
	"unicode/utf8"

	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/parser/scanner"
	"github.com/t14raptor/go-estree/token"
)

type parser struct {
	tokens []token.Token

	// end is the offset reported for errors at the end of input.
	end ast.Idx
}

// ParseFile tokenizes and parses src. The error is a scanner.Error for
// lexical problems and a SyntaxError otherwise.
func ParseFile(src string) (*ast.Program, error) {
	tokens, err := scanner.Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := parser{
		tokens: tokens,
		end:    ast.Idx(utf8.RuneCountInString(src)),
	}
	return p.program()
}

// ParseTokens parses an already scanned token sequence.
func ParseTokens(tokens []token.Token) (*ast.Program, error) {
	p := parser{tokens: tokens}
	if n := len(tokens); n > 0 {
		p.end = tokens[n-1].End
	}
	return p.program()
}

func (p parser) program() (*ast.Program, error) {
	body, next, err := p.statementList(0)
	if err != nil {
		return nil, err
	}
	if next < len(p.tokens) {
		// A stray closing brace.
		return nil, p.errorUnexpectedToken(next)
	}
	return &ast.Program{
		Span: ast.Span{Start: 0, End: p.end},
		Body: body,
	}, nil
}

func (p parser) at(cursor int) (token.Token, bool) {
	if cursor < 0 || cursor >= len(p.tokens) {
		return token.Token{}, false
	}
	return p.tokens[cursor], true
}

func (p parser) is(cursor int, label token.Label) bool {
	tkn, ok := p.at(cursor)
	return ok && tkn.Label == label
}

// expect returns the token at cursor if it has the given label.
func (p parser) expect(cursor int, label token.Label) (token.Token, int, error) {
	tkn, ok := p.at(cursor)
	if !ok || tkn.Label != label {
		return token.Token{}, cursor, p.errorUnexpectedToken(cursor)
	}
	return tkn, cursor + 1, nil
}

// optional skips a token with the given label if one is at cursor.
func (p parser) optional(cursor int, label token.Label) (token.Token, int, bool) {
	if tkn, ok := p.at(cursor); ok && tkn.Label == label {
		return tkn, cursor + 1, true
	}
	return token.Token{}, cursor, false
}

// attempt runs f from cursor. A failed attempt consumes nothing and
// leaves the caller free to try another branch from the same cursor.
// It is only used on short, bounded prefixes such as arrow parameters.
func attempt[T any](f func(int) (T, int, error), cursor int) (T, int, bool) {
	node, next, err := f(cursor)
	if err != nil {
		var zero T
		return zero, cursor, false
	}
	return node, next, true
}

// skip is expect for callers that only need the cursor.
func (p parser) skip(cursor int, label token.Label) (int, error) {
	_, next, err := p.expect(cursor, label)
	return next, err
}
