package parser

import (
	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/token"
)

// expression parses an assignment expression. There is no comma operator:
// commas always separate list items.
func (p parser) expression(cursor int) (ast.Expr, int, error) {
	if p.arrowAhead(cursor) {
		if head, next, ok := attempt(p.arrowHead, cursor); ok {
			return p.arrowFunction(head, next)
		}
	}

	left, next, err := p.conditional(cursor)
	if err != nil {
		return nil, cursor, err
	}
	op, ok := p.at(next)
	if !ok || !op.Label.IsAssign() {
		return left, next, nil
	}
	switch left.(type) {
	case *ast.Identifier, *ast.MemberExpression:
	default:
		return nil, cursor, p.errorf(left.Idx0(), left.Idx1(), errInvalidAssignment)
	}
	right, next, err := p.expression(next + 1)
	if err != nil {
		return nil, cursor, err
	}
	return &ast.AssignmentExpression{
		Span:     ast.Span{Start: left.Idx0(), End: right.Idx1()},
		Operator: op.Label.String(),
		Left:     left,
		Right:    right,
	}, next, nil
}

func (p parser) conditional(cursor int) (ast.Expr, int, error) {
	test, next, err := p.binary(cursor, 0)
	if err != nil {
		return nil, cursor, err
	}
	if !p.is(next, token.QuestionMark) {
		return test, next, nil
	}
	consequent, next, err := p.expression(next + 1)
	if err != nil {
		return nil, cursor, err
	}
	if _, next, err = p.expect(next, token.Colon); err != nil {
		return nil, cursor, err
	}
	alternate, next, err := p.expression(next)
	if err != nil {
		return nil, cursor, err
	}
	return &ast.ConditionalExpression{
		Span:       ast.Span{Start: test.Idx0(), End: alternate.Idx1()},
		Test:       test,
		Consequent: consequent,
		Alternate:  alternate,
	}, next, nil
}

// binary parses operators binding tighter than minPrec by precedence
// climbing. Exponentiation is right associative, all others left.
func (p parser) binary(cursor int, minPrec int) (ast.Expr, int, error) {
	left, next, err := p.unary(cursor)
	if err != nil {
		return nil, cursor, err
	}
	// A parenthesized operand yields its inner node, so look at the first
	// token to tell -a from (-a).
	bareUnary := p.isUnaryOperator(cursor)
	for {
		op, ok := p.at(next)
		if !ok {
			return left, next, nil
		}
		prec := op.Label.Precedence(true)
		if prec == 0 || prec <= minPrec {
			return left, next, nil
		}
		rightMin := prec
		if op.Label == token.Exponent {
			if _, ok := left.(*ast.UnaryExpression); ok && bareUnary {
				return nil, cursor, p.errorf(left.Idx0(), left.Idx1(), errUnaryBeforeExponent)
			}
			rightMin = prec - 1
		}
		right, after, err := p.binary(next+1, rightMin)
		if err != nil {
			return nil, cursor, err
		}
		span := ast.Span{Start: left.Idx0(), End: right.Idx1()}
		if op.Label.IsLogical() {
			left = &ast.LogicalExpression{Span: span, Operator: op.Label.String(), Left: left, Right: right}
		} else {
			left = &ast.BinaryExpression{Span: span, Operator: op.Label.String(), Left: left, Right: right}
		}
		next = after
	}
}

func (p parser) unary(cursor int) (ast.Expr, int, error) {
	tkn, ok := p.at(cursor)
	if !ok {
		return nil, cursor, p.errorUnexpectedToken(cursor)
	}
	if !p.isUnaryOperator(cursor) {
		return p.leftHandSide(cursor)
	}
	arg, next, err := p.unary(cursor + 1)
	if err != nil {
		return nil, cursor, err
	}
	return &ast.UnaryExpression{
		Span:     ast.Span{Start: tkn.Start, End: arg.Idx1()},
		Operator: tkn.Label.String(),
		Argument: arg,
	}, next, nil
}

func (p parser) isUnaryOperator(cursor int) bool {
	tkn, ok := p.at(cursor)
	if !ok {
		return false
	}
	switch tkn.Label {
	case token.Not, token.Minus, token.Plus, token.BitwiseNot,
		token.Typeof, token.Void, token.Delete:
		return true
	}
	return false
}

// leftHandSide parses a primary or new expression followed by any
// number of member accesses and calls.
func (p parser) leftHandSide(cursor int) (ast.Expr, int, error) {
	var (
		expr ast.Expr
		next int
		err  error
	)
	if p.is(cursor, token.New) {
		expr, next, err = p.newExpression(cursor)
	} else {
		expr, next, err = p.primary(cursor)
	}
	if err != nil {
		return nil, cursor, err
	}
	for {
		switch {
		case p.is(next, token.Period), p.is(next, token.LeftBracket):
			expr, next, err = p.member(expr, next)
		case p.is(next, token.LeftParenthesis):
			var (
				args ast.Expressions
				end  ast.Idx
			)
			args, end, next, err = p.arguments(next)
			if err == nil {
				expr = &ast.CallExpression{
					Span:      ast.Span{Start: expr.Idx0(), End: end},
					Callee:    expr,
					Arguments: args,
				}
			}
		default:
			return expr, next, nil
		}
		if err != nil {
			return nil, cursor, err
		}
	}
}

// member parses one `.name` or `[expression]` suffix of object.
func (p parser) member(object ast.Expr, cursor int) (ast.Expr, int, error) {
	if p.is(cursor, token.Period) {
		tkn, ok := p.at(cursor + 1)
		if !ok || (tkn.Label != token.Name && !tkn.IsKeyword()) {
			return nil, cursor, p.errorUnexpectedToken(cursor + 1)
		}
		prop := &ast.Identifier{
			Span: ast.Span{Start: tkn.Start, End: tkn.End},
			Name: tkn.Text(),
		}
		return &ast.MemberExpression{
			Span:     ast.Span{Start: object.Idx0(), End: prop.End},
			Object:   object,
			Property: prop,
		}, cursor + 2, nil
	}

	prop, next, err := p.expression(cursor + 1)
	if err != nil {
		return nil, cursor, err
	}
	closing, next, err := p.expect(next, token.RightBracket)
	if err != nil {
		return nil, cursor, err
	}
	return &ast.MemberExpression{
		Span:     ast.Span{Start: object.Idx0(), End: closing.End},
		Object:   object,
		Property: prop,
		Computed: true,
	}, next, nil
}

// newExpression parses `new callee(args)`. The argument list is optional
// and the callee takes member suffixes but no calls.
func (p parser) newExpression(cursor int) (ast.Expr, int, error) {
	kw := p.tokens[cursor]

	var (
		callee ast.Expr
		next   int
		err    error
	)
	if p.is(cursor+1, token.New) {
		callee, next, err = p.newExpression(cursor + 1)
	} else {
		callee, next, err = p.primary(cursor + 1)
	}
	if err != nil {
		return nil, cursor, err
	}
	for p.is(next, token.Period) || p.is(next, token.LeftBracket) {
		if callee, next, err = p.member(callee, next); err != nil {
			return nil, cursor, err
		}
	}

	expr := &ast.NewExpression{
		Span:   ast.Span{Start: kw.Start, End: callee.Idx1()},
		Callee: callee,
	}
	if p.is(next, token.LeftParenthesis) {
		args, end, after, err := p.arguments(next)
		if err != nil {
			return nil, cursor, err
		}
		expr.Arguments = args
		expr.End = end
		next = after
	}
	return expr, next, nil
}

// arguments parses `( expression, ... )` allowing one trailing comma. It
// returns the end offset of the closing parenthesis.
func (p parser) arguments(cursor int) (ast.Expressions, ast.Idx, int, error) {
	next := cursor + 1
	args := ast.Expressions{}
	for !p.is(next, token.RightParenthesis) {
		arg, after, err := p.expression(next)
		if err != nil {
			return nil, 0, cursor, err
		}
		args = append(args, arg)
		next = after
		if _, after, ok := p.optional(next, token.Comma); ok {
			next = after
			continue
		}
		break
	}
	closing, next, err := p.expect(next, token.RightParenthesis)
	if err != nil {
		return nil, 0, cursor, err
	}
	return args, closing.End, next, nil
}

// primary parses an expression that starts with a definite token.
func (p parser) primary(cursor int) (ast.Expr, int, error) {
	tkn, ok := p.at(cursor)
	if !ok {
		return nil, cursor, p.errorUnexpectedToken(cursor)
	}
	switch tkn.Label {
	case token.Name:
		return p.identifier(cursor)
	case token.Number, token.String, token.True, token.False, token.Null, token.RegExp:
		return p.literal(cursor)
	case token.LeftBracket:
		return p.arrayExpression(cursor)
	case token.LeftBrace:
		return p.objectExpression(cursor)
	case token.Function, token.Async:
		return p.functionExpression(cursor)
	case token.Backtick:
		return p.templateLiteral(cursor)
	case token.LeftParenthesis:
		expr, next, err := p.expression(cursor + 1)
		if err != nil {
			return nil, cursor, err
		}
		if _, next, err = p.expect(next, token.RightParenthesis); err != nil {
			return nil, cursor, err
		}
		return expr, next, nil
	}
	return nil, cursor, p.errorUnexpectedToken(cursor)
}

// startsExpression reports whether the token at cursor can begin an
// expression.
func (p parser) startsExpression(cursor int) bool {
	tkn, ok := p.at(cursor)
	if !ok {
		return false
	}
	switch tkn.Label {
	case token.Name, token.Number, token.String, token.RegExp,
		token.True, token.False, token.Null,
		token.LeftBracket, token.LeftBrace, token.LeftParenthesis, token.Backtick,
		token.Function, token.Async, token.New,
		token.Not, token.Minus, token.Plus, token.BitwiseNot,
		token.Typeof, token.Void, token.Delete:
		return true
	}
	return false
}

func (p parser) arrayExpression(cursor int) (*ast.ArrayExpression, int, error) {
	open, next, err := p.expect(cursor, token.LeftBracket)
	if err != nil {
		return nil, cursor, err
	}
	elements, next, err := p.elementList(next)
	if err != nil {
		return nil, cursor, err
	}
	if len(elements) > 0 {
		_, next, _ = p.optional(next, token.Comma)
	}
	closing, next, err := p.expect(next, token.RightBracket)
	if err != nil {
		return nil, cursor, err
	}
	return &ast.ArrayExpression{
		Span:     ast.Span{Start: open.Start, End: closing.End},
		Elements: elements,
	}, next, nil
}

// elementList parses comma separated expressions. It stops before a
// comma that is not followed by the start of another expression, and
// yields an empty list when no expression starts at cursor.
func (p parser) elementList(cursor int) (ast.Expressions, int, error) {
	list := ast.Expressions{}
	next := cursor
	for p.startsExpression(next) {
		expr, after, err := p.expression(next)
		if err != nil {
			return nil, cursor, err
		}
		list = append(list, expr)
		next = after
		if !p.is(next, token.Comma) || !p.startsExpression(next+1) {
			break
		}
		next++
	}
	return list, next, nil
}
