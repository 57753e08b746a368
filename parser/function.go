package parser

import (
	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/token"
)

// functionExpression parses `[async] function [*] [name] (params) { body }`.
func (p parser) functionExpression(cursor int) (*ast.FunctionExpression, int, error) {
	start := p.tokens[cursor].Start
	_, next, async := p.optional(cursor, token.Async)
	next, err := p.skip(next, token.Function)
	if err != nil {
		return nil, cursor, err
	}
	_, next, generator := p.optional(next, token.Multiply)

	var id *ast.Identifier
	if p.is(next, token.Name) {
		id, next, _ = p.identifier(next)
	}

	fn, next, err := p.functionTail(next, start)
	if err != nil {
		return nil, cursor, err
	}
	fn.ID = id
	fn.Async, fn.Generator = async, generator
	return fn, next, nil
}

// functionTail parses the parameter list and body of a function that
// starts at offset start.
func (p parser) functionTail(cursor int, start ast.Idx) (*ast.FunctionExpression, int, error) {
	params, next, err := p.params(cursor)
	if err != nil {
		return nil, cursor, err
	}
	body, next, err := p.blockStatement(next)
	if err != nil {
		return nil, cursor, err
	}
	return &ast.FunctionExpression{
		Span:   ast.Span{Start: start, End: body.End},
		Params: params,
		Body:   body,
	}, next, nil
}

// params parses `( name, ... )` allowing one trailing comma.
func (p parser) params(cursor int) (ast.Identifiers, int, error) {
	next, err := p.skip(cursor, token.LeftParenthesis)
	if err != nil {
		return nil, cursor, err
	}
	params := ast.Identifiers{}
	for !p.is(next, token.RightParenthesis) {
		id, after, err := p.identifier(next)
		if err != nil {
			return nil, cursor, err
		}
		params = append(params, id)
		next = after
		if _, after, ok := p.optional(next, token.Comma); ok {
			next = after
			continue
		}
		break
	}
	next, err = p.skip(next, token.RightParenthesis)
	if err != nil {
		return nil, cursor, err
	}
	return params, next, nil
}

type arrowHead struct {
	start  ast.Idx
	params ast.Identifiers
	async  bool
}

// arrowAhead reports whether an arrow function may start at cursor.
func (p parser) arrowAhead(cursor int) bool {
	switch {
	case p.is(cursor, token.Name):
		return p.is(cursor+1, token.Arrow)
	case p.is(cursor, token.LeftParenthesis):
		return true
	case p.is(cursor, token.Async):
		return p.is(cursor+1, token.Name) || p.is(cursor+1, token.LeftParenthesis)
	}
	return false
}

// arrowHead parses the parameters of an arrow function up to and
// including the arrow.
func (p parser) arrowHead(cursor int) (arrowHead, int, error) {
	head := arrowHead{start: p.tokens[cursor].Start}
	_, next, async := p.optional(cursor, token.Async)
	head.async = async

	var err error
	if p.is(next, token.Name) {
		var id *ast.Identifier
		id, next, _ = p.identifier(next)
		head.params = ast.Identifiers{id}
	} else if head.params, next, err = p.params(next); err != nil {
		return head, cursor, err
	}
	if next, err = p.skip(next, token.Arrow); err != nil {
		return head, cursor, err
	}
	return head, next, nil
}

func (p parser) arrowFunction(head arrowHead, cursor int) (*ast.ArrowFunctionExpression, int, error) {
	fn := &ast.ArrowFunctionExpression{
		Params: head.params,
		Async:  head.async,
	}
	if p.is(cursor, token.LeftBrace) {
		body, next, err := p.blockStatement(cursor)
		if err != nil {
			return nil, cursor, err
		}
		fn.Body = body
		fn.Span = ast.Span{Start: head.start, End: body.End}
		return fn, next, nil
	}
	body, next, err := p.expression(cursor)
	if err != nil {
		return nil, cursor, err
	}
	fn.Body = body
	fn.Expression = true
	fn.Span = ast.Span{Start: head.start, End: body.Idx1()}
	return fn, next, nil
}
