package parser

import (
	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/token"
)

// statementList parses statements until the end of input or a closing
// brace. The first failing statement fails the list.
func (p parser) statementList(cursor int) (ast.Statements, int, error) {
	var list ast.Statements
	for cursor < len(p.tokens) && !p.is(cursor, token.RightBrace) {
		stmt, next, err := p.statement(cursor)
		if err != nil {
			return nil, cursor, err
		}
		list = append(list, stmt)
		cursor = next
	}
	return list, cursor, nil
}

func (p parser) statement(cursor int) (ast.Stmt, int, error) {
	tkn, ok := p.at(cursor)
	if !ok {
		return nil, cursor, p.errorUnexpectedToken(cursor)
	}
	switch tkn.Label {
	case token.LeftBrace:
		block, next, err := p.blockStatement(cursor)
		if err != nil {
			return nil, cursor, err
		}
		_, next, _ = p.optional(next, token.Semicolon)
		return block, next, nil
	case token.Const, token.Let, token.Var:
		return p.variableStatement(cursor)
	}
	return nil, cursor, p.errorUnexpectedToken(cursor)
}

// blockStatement parses `{ statements }`. Any trailing semicolon is left
// to the caller.
func (p parser) blockStatement(cursor int) (*ast.BlockStatement, int, error) {
	open, next, err := p.expect(cursor, token.LeftBrace)
	if err != nil {
		return nil, cursor, err
	}
	body, next, err := p.statementList(next)
	if err != nil {
		return nil, cursor, err
	}
	closing, next, err := p.expect(next, token.RightBrace)
	if err != nil {
		return nil, cursor, err
	}
	return &ast.BlockStatement{
		Span: ast.Span{Start: open.Start, End: closing.End},
		Body: body,
	}, next, nil
}

// variableStatement parses a const, let or var statement. const takes a
// single declaration, let and var a comma separated list. A trailing
// semicolon belongs to the statement.
func (p parser) variableStatement(cursor int) (*ast.VariableDeclaration, int, error) {
	kw := p.tokens[cursor]
	decl := &ast.VariableDeclaration{
		Kind: ast.DeclarationKind(kw.Keyword),
	}

	var err error
	next := cursor + 1
	if kw.Label == token.Const {
		var d *ast.VariableDeclarator
		d, next, err = p.variableDeclaration(next)
		if err != nil {
			return nil, cursor, err
		}
		decl.Declarations = ast.VariableDeclarators{d}
	} else {
		decl.Declarations, next, err = p.variableDeclarationList(next)
		if err != nil {
			return nil, cursor, err
		}
	}

	end := decl.Declarations[len(decl.Declarations)-1].End
	if semi, after, ok := p.optional(next, token.Semicolon); ok {
		end, next = semi.End, after
	}
	decl.Span = ast.Span{Start: kw.Start, End: end}
	return decl, next, nil
}

func (p parser) variableDeclarationList(cursor int) (ast.VariableDeclarators, int, error) {
	var list ast.VariableDeclarators
	next := cursor
	for {
		d, after, err := p.variableDeclaration(next)
		if err != nil {
			return nil, cursor, err
		}
		list = append(list, d)
		if _, after, ok := p.optional(after, token.Comma); ok {
			next = after
			continue
		}
		return list, after, nil
	}
}

// variableDeclaration parses `name = expression`.
func (p parser) variableDeclaration(cursor int) (*ast.VariableDeclarator, int, error) {
	id, next, err := p.identifier(cursor)
	if err != nil {
		return nil, cursor, err
	}
	if _, next, err = p.expect(next, token.Assign); err != nil {
		return nil, cursor, err
	}
	init, next, err := p.expression(next)
	if err != nil {
		return nil, cursor, err
	}
	return &ast.VariableDeclarator{
		Span: ast.Span{Start: id.Start, End: init.Idx1()},
		ID:   id,
		Init: init,
	}, next, nil
}

func (p parser) identifier(cursor int) (*ast.Identifier, int, error) {
	tkn, next, err := p.expect(cursor, token.Name)
	if err != nil {
		return nil, cursor, err
	}
	return &ast.Identifier{
		Span: ast.Span{Start: tkn.Start, End: tkn.End},
		Name: tkn.Text(),
	}, next, nil
}
