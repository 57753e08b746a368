package parser

import (
	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/token"
)

func (p parser) objectExpression(cursor int) (*ast.ObjectExpression, int, error) {
	open, next, err := p.expect(cursor, token.LeftBrace)
	if err != nil {
		return nil, cursor, err
	}
	obj := &ast.ObjectExpression{Properties: ast.Properties{}}
	for !p.is(next, token.RightBrace) {
		prop, after, err := p.objectProperty(next)
		if err != nil {
			return nil, cursor, err
		}
		obj.Properties = append(obj.Properties, prop)
		next = after
		if _, after, ok := p.optional(next, token.Comma); ok {
			next = after
			continue
		}
		break
	}
	closing, next, err := p.expect(next, token.RightBrace)
	if err != nil {
		return nil, cursor, err
	}
	obj.Span = ast.Span{Start: open.Start, End: closing.End}
	return obj, next, nil
}

// objectProperty parses one member of an object literal:
//
//	name: value   "name": value   1: value   [key]: value
//	name          name() {}       get name() {}   set name(v) {}
//	async name() {}   *name() {}
func (p parser) objectProperty(cursor int) (*ast.Property, int, error) {
	tkn, ok := p.at(cursor)
	if !ok {
		return nil, cursor, p.errorUnexpectedToken(cursor)
	}

	switch {
	case tkn.Label == token.Name && (tkn.Text() == "get" || tkn.Text() == "set") && !p.endsKey(cursor+1):
		return p.methodProperty(cursor, cursor+1, ast.PropertyKind(tkn.Text()), false, false)
	case tkn.Label == token.Async && !p.endsKey(cursor+1):
		if p.is(cursor+1, token.Multiply) {
			return p.methodProperty(cursor, cursor+2, ast.PropertyKindInit, true, true)
		}
		return p.methodProperty(cursor, cursor+1, ast.PropertyKindInit, true, false)
	case tkn.Label == token.Multiply:
		return p.methodProperty(cursor, cursor+1, ast.PropertyKindInit, false, true)
	}

	key, computed, next, err := p.propertyKey(cursor)
	if err != nil {
		return nil, cursor, err
	}
	prop := &ast.Property{
		Key:      key,
		Kind:     ast.PropertyKindInit,
		Computed: computed,
	}
	switch {
	case p.is(next, token.Colon):
		value, after, err := p.expression(next + 1)
		if err != nil {
			return nil, cursor, err
		}
		prop.Value = value
		next = after
	case p.is(next, token.LeftParenthesis):
		return p.methodProperty(cursor, cursor, ast.PropertyKindInit, false, false)
	case tkn.Label == token.Name && !computed:
		id := *key.(*ast.Identifier)
		prop.Value = &id
		prop.Shorthand = true
	default:
		return nil, cursor, p.errorUnexpectedToken(next)
	}
	prop.Span = ast.Span{Start: tkn.Start, End: prop.Value.Idx1()}
	return prop, next, nil
}

// endsKey reports whether the token at cursor ends a property key, in
// which case a preceding get, set or async is the key itself.
func (p parser) endsKey(cursor int) bool {
	tkn, ok := p.at(cursor)
	if !ok {
		return true
	}
	switch tkn.Label {
	case token.Colon, token.Comma, token.RightBrace, token.LeftParenthesis:
		return true
	}
	return false
}

// propertyKey parses a plain, string, numeric or computed key.
func (p parser) propertyKey(cursor int) (key ast.Expr, computed bool, next int, err error) {
	tkn, ok := p.at(cursor)
	if !ok {
		return nil, false, cursor, p.errorUnexpectedToken(cursor)
	}
	switch {
	case tkn.Label == token.Name || tkn.IsKeyword():
		return &ast.Identifier{
			Span: ast.Span{Start: tkn.Start, End: tkn.End},
			Name: tkn.Text(),
		}, false, cursor + 1, nil
	case tkn.Label == token.String || tkn.Label == token.Number:
		key, next, err = p.literal(cursor)
		return key, false, next, err
	case tkn.Label == token.LeftBracket:
		key, next, err = p.expression(cursor + 1)
		if err != nil {
			return nil, false, cursor, err
		}
		if _, next, err = p.expect(next, token.RightBracket); err != nil {
			return nil, false, cursor, err
		}
		return key, true, next, nil
	}
	return nil, false, cursor, p.errorUnexpectedToken(cursor)
}

// methodProperty parses a method or accessor whose key starts at keyAt.
// The property itself starts at cursor, where any get, set, async or *
// prefix sits.
func (p parser) methodProperty(cursor, keyAt int, kind ast.PropertyKind, async, generator bool) (*ast.Property, int, error) {
	key, computed, next, err := p.propertyKey(keyAt)
	if err != nil {
		return nil, cursor, err
	}
	open, ok := p.at(next)
	if !ok || open.Label != token.LeftParenthesis {
		return nil, cursor, p.errorUnexpectedToken(next)
	}
	fn, next, err := p.functionTail(next, open.Start)
	if err != nil {
		return nil, cursor, err
	}
	fn.Async, fn.Generator = async, generator

	switch {
	case kind == ast.PropertyKindGet && len(fn.Params) != 0:
		return nil, cursor, p.errorf(fn.Start, fn.End, "Getter must not have any formal parameters")
	case kind == ast.PropertyKindSet && len(fn.Params) != 1:
		return nil, cursor, p.errorf(fn.Start, fn.End, "Setter must have exactly one formal parameter")
	}

	return &ast.Property{
		Span:     ast.Span{Start: p.tokens[cursor].Start, End: fn.End},
		Key:      key,
		Value:    fn,
		Kind:     kind,
		Computed: computed,
		Method:   kind == ast.PropertyKindInit,
	}, next, nil
}
