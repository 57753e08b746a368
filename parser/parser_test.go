package parser_test

import (
	"errors"
	"testing"

	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/parser"
	"github.com/t14raptor/go-estree/parser/scanner"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// mustParse parses code and fails the test if there's an error.
func mustParse(t *testing.T, code string) *ast.Program {
	t.Helper()
	p, err := parser.ParseFile(code)
	if err != nil {
		t.Fatalf("Failed to parse:\n%s\nError: %v", code, err)
	}
	return p
}

// mustFail parses code and fails the test unless parsing fails with a
// SyntaxError.
func mustFail(t *testing.T, code string) parser.SyntaxError {
	t.Helper()
	p, err := parser.ParseFile(code)
	if err == nil {
		t.Fatalf("Expected failure for:\n%s\nGot program with %d statements", code, len(p.Body))
	}
	var se parser.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("Expected a SyntaxError for %q, got %T: %v", code, err, err)
	}
	return se
}

// initializerExpr parses `const x = <code>` and returns the initializer
// of its only declarator.
func initializerExpr(t *testing.T, code string) ast.Expr {
	t.Helper()
	p := mustParse(t, "const x = "+code)
	return p.Body[0].(*ast.VariableDeclaration).Declarations[0].Init
}

// spanChecker verifies that every child span lies within its parent.
type spanChecker struct {
	ast.NoopVisitor
	t      *testing.T
	parent []ast.Span
	count  int
}

func (c *spanChecker) Visit(n ast.Node) {
	span := ast.SpanOf(n)
	if span.End < span.Start {
		c.t.Errorf("%s has an inverted span %v", ast.TypeOf(n), span)
	}
	if len(c.parent) > 0 && !c.parent[len(c.parent)-1].Contains(span) {
		c.t.Errorf("%s span %v escapes parent span %v", ast.TypeOf(n), span, c.parent[len(c.parent)-1])
	}
	c.count++
	c.parent = append(c.parent, span)
	c.NoopVisitor.Visit(n)
	c.parent = c.parent[:len(c.parent)-1]
}

func checkSpans(t *testing.T, p *ast.Program) int {
	t.Helper()
	c := &spanChecker{t: t}
	c.V = c
	ast.Walk(c, p)
	return c.count
}

// ---------------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------------

func TestConstArray(t *testing.T) {
	p := mustParse(t, `const t1 = [1, 2];`)
	if len(p.Body) != 1 {
		t.Fatalf("got %d statements, want 1", len(p.Body))
	}
	decl, ok := p.Body[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("statement is %T, want *ast.VariableDeclaration", p.Body[0])
	}
	if decl.Kind != ast.DeclarationConst || len(decl.Declarations) != 1 {
		t.Fatalf("kind %q with %d declarators", decl.Kind, len(decl.Declarations))
	}
	d := decl.Declarations[0]
	if d.ID.Name != "t1" {
		t.Errorf("id = %q, want t1", d.ID.Name)
	}
	arr, ok := d.Init.(*ast.ArrayExpression)
	if !ok {
		t.Fatalf("init is %T, want *ast.ArrayExpression", d.Init)
	}
	if len(arr.Elements) != 2 {
		t.Fatalf("got %d elements, want 2", len(arr.Elements))
	}
	for i, want := range []string{"1", "2"} {
		lit := arr.Elements[i].(*ast.Literal)
		if lit.LiteralType != ast.LiteralNumber || lit.Raw != want {
			t.Errorf("element %d = %s %q, want number %q", i, lit.LiteralType, lit.Raw, want)
		}
	}
	if decl.Start != 0 || decl.End != 18 {
		t.Errorf("declaration span = [%d,%d), want [0,18) including the semicolon", decl.Start, decl.End)
	}
	if d.Start != 6 || d.End != 17 {
		t.Errorf("declarator span = [%d,%d), want [6,17)", d.Start, d.End)
	}
	checkSpans(t, p)
}

func TestBlockWithLet(t *testing.T) {
	p := mustParse(t, `{let t2 = "abc"}`)
	block, ok := p.Body[0].(*ast.BlockStatement)
	if !ok || len(p.Body) != 1 {
		t.Fatalf("body = %v, want one block", p.Body)
	}
	if len(block.Body) != 1 {
		t.Fatalf("block has %d statements", len(block.Body))
	}
	decl := block.Body[0].(*ast.VariableDeclaration)
	if decl.Kind != ast.DeclarationLet {
		t.Errorf("kind = %q", decl.Kind)
	}
	d := decl.Declarations[0]
	lit := d.Init.(*ast.Literal)
	if d.ID.Name != "t2" || lit.LiteralType != ast.LiteralString || lit.Value != "abc" || lit.Raw != `"abc"` {
		t.Errorf("got %s = %s %q (%v)", d.ID.Name, lit.LiteralType, lit.Raw, lit.Value)
	}
	if block.Start != 0 || block.End != 16 {
		t.Errorf("block span = [%d,%d)", block.Start, block.End)
	}
	checkSpans(t, p)
}

func TestVariableLists(t *testing.T) {
	p := mustParse(t, "var a = 1, b = 2\nlet c = 3; const d = 4")
	if len(p.Body) != 3 {
		t.Fatalf("got %d statements, want 3", len(p.Body))
	}
	if n := len(p.Body[0].(*ast.VariableDeclaration).Declarations); n != 2 {
		t.Errorf("var has %d declarators, want 2", n)
	}

	// const takes exactly one declaration
	mustFail(t, "const a = 1, b = 2")
	// an initializer is required
	mustFail(t, "let a;")
	mustFail(t, "let = 1")
}

func TestBlockSemicolons(t *testing.T) {
	p := mustParse(t, "{};{}")
	if len(p.Body) != 2 {
		t.Fatalf("got %d statements, want 2", len(p.Body))
	}
	if b := p.Body[0].(*ast.BlockStatement); b.End != 2 {
		t.Errorf("block span ends at %d, the semicolon is not part of it", b.End)
	}
	mustFail(t, "{};;")

	p = mustParse(t, "{ {} { let a = 1 } }")
	if n := len(p.Body[0].(*ast.BlockStatement).Body); n != 2 {
		t.Errorf("got %d nested blocks, want 2", n)
	}
}

func TestStatementFailures(t *testing.T) {
	tests := []struct {
		code    string
		message string
	}{
		{"}", "Unexpected token }"},
		{"{", "Unexpected end of input"},
		{"x = 1", "Unexpected identifier"},
		{"if (a) {}", "Unexpected token if"},
		{"let a = 1 let b =", "Unexpected end of input"},
		{`let a = 1 "s"`, "Unexpected string"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			se := mustFail(t, tt.code)
			if se.Message != tt.message {
				t.Errorf("message = %q, want %q", se.Message, tt.message)
			}
		})
	}

	se := mustFail(t, "let a = ;")
	if se.Start != 8 || se.End != 9 {
		t.Errorf("error span = [%d,%d), want [8,9)", se.Start, se.End)
	}
}

func TestEmptyProgram(t *testing.T) {
	p := mustParse(t, "  // nothing\n")
	if len(p.Body) != 0 || p.Start != 0 || p.End != 13 {
		t.Errorf("got %d statements spanning [%d,%d)", len(p.Body), p.Start, p.End)
	}
}

// ---------------------------------------------------------------------------
// Arrays
// ---------------------------------------------------------------------------

func TestArrays(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"[]", 0},
		{"[1,2,]", 2},
		{"[1, [2, 3], 'x']", 3},
		{"[[]]", 1},
		{"[{}, [], /re/]", 3},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			arr, ok := initializerExpr(t, tt.code).(*ast.ArrayExpression)
			if !ok {
				t.Fatalf("not an array")
			}
			if len(arr.Elements) != tt.want {
				t.Errorf("got %d elements, want %d", len(arr.Elements), tt.want)
			}
			if arr.Elements == nil {
				t.Errorf("elements is nil, want an empty list")
			}
		})
	}

	for _, code := range []string{"[1,2", "[1,,2]", "[,]", "[1 2]"} {
		t.Run(code, func(t *testing.T) {
			mustFail(t, "const x = "+code)
		})
	}
}

// ---------------------------------------------------------------------------
// Literals
// ---------------------------------------------------------------------------

func TestLiterals(t *testing.T) {
	tests := []struct {
		code  string
		typ   ast.LiteralType
		value any
	}{
		{"42", ast.LiteralNumber, 42.0},
		{".5", ast.LiteralNumber, 0.5},
		{"3.25", ast.LiteralNumber, 3.25},
		{`"a\nb"`, ast.LiteralString, "a\nb"},
		{`'it\'s'`, ast.LiteralString, "it's"},
		{`"\x41B\u{43}"`, ast.LiteralString, "ABC"},
		{`"😀"`, ast.LiteralString, "\U0001F600"},
		{"\"a\\\nb\"", ast.LiteralString, "ab"},
		{"true", ast.LiteralBoolean, true},
		{"false", ast.LiteralBoolean, false},
		{"null", ast.LiteralNull, nil},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			lit, ok := initializerExpr(t, tt.code).(*ast.Literal)
			if !ok {
				t.Fatalf("not a literal")
			}
			if lit.LiteralType != tt.typ || lit.Value != tt.value || lit.Raw != tt.code {
				t.Errorf("got %s %q value %#v, want %s %#v", lit.LiteralType, lit.Raw, lit.Value, tt.typ, tt.value)
			}
		})
	}

	mustFail(t, `const x = "\u{zz}"`)
}

func TestRegExpLiteral(t *testing.T) {
	p := mustParse(t, "const t1 = /^w1/ig")
	lit := p.Body[0].(*ast.VariableDeclaration).Declarations[0].Init.(*ast.Literal)
	if lit.LiteralType != ast.LiteralRegExp || lit.Regex == nil {
		t.Fatalf("got %s regex %v", lit.LiteralType, lit.Regex)
	}
	if lit.Regex.Pattern != "^w1" || lit.Regex.Flags != "ig" || lit.Raw != "/^w1/ig" {
		t.Errorf("regex = %+v raw %q", lit.Regex, lit.Raw)
	}
}

// ---------------------------------------------------------------------------
// Objects
// ---------------------------------------------------------------------------

func TestObjectProperties(t *testing.T) {
	obj := initializerExpr(t, `{
		a: 1,
		"b c": 2,
		3: three,
		[k + 1]: 4,
		short,
		m(x) {},
		get g() {},
		set s(v) {},
		get: 5,
		set,
		async fetch() {},
		*gen() {},
		default: 6,
	}`).(*ast.ObjectExpression)

	type want struct {
		kind      ast.PropertyKind
		computed  bool
		shorthand bool
		method    bool
		key       string
	}
	wants := []want{
		{ast.PropertyKindInit, false, false, false, "a"},
		{ast.PropertyKindInit, false, false, false, `"b c"`},
		{ast.PropertyKindInit, false, false, false, "3"},
		{ast.PropertyKindInit, true, false, false, ""},
		{ast.PropertyKindInit, false, true, false, "short"},
		{ast.PropertyKindInit, false, false, true, "m"},
		{ast.PropertyKindGet, false, false, false, "g"},
		{ast.PropertyKindSet, false, false, false, "s"},
		{ast.PropertyKindInit, false, false, false, "get"},
		{ast.PropertyKindInit, false, true, false, "set"},
		{ast.PropertyKindInit, false, false, true, "fetch"},
		{ast.PropertyKindInit, false, false, true, "gen"},
		{ast.PropertyKindInit, false, false, false, "default"},
	}
	if len(obj.Properties) != len(wants) {
		t.Fatalf("got %d properties, want %d", len(obj.Properties), len(wants))
	}
	for i, w := range wants {
		prop := obj.Properties[i]
		if prop.Kind != w.kind || prop.Computed != w.computed || prop.Shorthand != w.shorthand || prop.Method != w.method {
			t.Errorf("property %d: kind=%s computed=%v shorthand=%v method=%v, want %+v",
				i, prop.Kind, prop.Computed, prop.Shorthand, prop.Method, w)
		}
		var key string
		switch k := prop.Key.(type) {
		case *ast.Identifier:
			key = k.Name
		case *ast.Literal:
			key = k.Raw
		}
		if key != w.key {
			t.Errorf("property %d key = %q, want %q", i, key, w.key)
		}
	}

	if _, ok := obj.Properties[3].Key.(*ast.BinaryExpression); !ok {
		t.Errorf("computed key is %T", obj.Properties[3].Key)
	}
	short := obj.Properties[4]
	if short.Key == short.Value {
		t.Errorf("shorthand key and value share one node")
	}
	fetch := obj.Properties[10].Value.(*ast.FunctionExpression)
	if !fetch.Async || fetch.Generator {
		t.Errorf("async method flags = %v %v", fetch.Async, fetch.Generator)
	}
	if gen := obj.Properties[11].Value.(*ast.FunctionExpression); !gen.Generator {
		t.Errorf("generator method not marked")
	}
}

func TestObjectFailures(t *testing.T) {
	for _, code := range []string{
		"{a: 1",
		"{a 1}",
		"{1}",
		"{get g(x) {}}",
		"{set s() {}}",
		"{[a: 1}",
	} {
		t.Run(code, func(t *testing.T) {
			mustFail(t, "const x = "+code)
		})
	}
}

func TestEmptyObjectInitializer(t *testing.T) {
	obj := initializerExpr(t, "{}").(*ast.ObjectExpression)
	if len(obj.Properties) != 0 || obj.Properties == nil {
		t.Errorf("properties = %v", obj.Properties)
	}
}

// ---------------------------------------------------------------------------
// Functions
// ---------------------------------------------------------------------------

func TestFunctionExpressions(t *testing.T) {
	tests := []struct {
		code        string
		name        string
		params      int
		async, star bool
	}{
		{"function () {}", "", 0, false, false},
		{"function f(a, b) { let c = a }", "f", 2, false, false},
		{"function* g(a,) {}", "g", 1, false, true},
		{"async function h() {}", "h", 0, true, false},
		{"async function* () {}", "", 0, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			fn, ok := initializerExpr(t, tt.code).(*ast.FunctionExpression)
			if !ok {
				t.Fatalf("not a function expression")
			}
			name := ""
			if fn.ID != nil {
				name = fn.ID.Name
			}
			if name != tt.name || len(fn.Params) != tt.params || fn.Async != tt.async || fn.Generator != tt.star {
				t.Errorf("got name=%q params=%d async=%v generator=%v", name, len(fn.Params), fn.Async, fn.Generator)
			}
			if fn.Start != 10 {
				t.Errorf("function starts at %d, want 10", fn.Start)
			}
		})
	}

	// A function body never swallows the statement's semicolon.
	p := mustParse(t, "const f = function () {};")
	decl := p.Body[0].(*ast.VariableDeclaration)
	if decl.End != 25 {
		t.Errorf("declaration ends at %d, want 25", decl.End)
	}

	mustFail(t, "const f = function (1) {}")
	mustFail(t, "const f = function () {")
	mustFail(t, "const f = async () {}")
}

func TestArrowFunctions(t *testing.T) {
	tests := []struct {
		code       string
		params     int
		expression bool
		async      bool
	}{
		{"x => x", 1, true, false},
		{"() => {}", 0, false, false},
		{"(a, b) => a + b", 2, true, false},
		{"async x => x", 1, true, true},
		{"async (a) => { let b = a }", 1, false, true},
		{"() => () => 1", 0, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			fn, ok := initializerExpr(t, tt.code).(*ast.ArrowFunctionExpression)
			if !ok {
				t.Fatalf("not an arrow function")
			}
			if len(fn.Params) != tt.params || fn.Expression != tt.expression || fn.Async != tt.async {
				t.Errorf("got params=%d expression=%v async=%v", len(fn.Params), fn.Expression, fn.Async)
			}
		})
	}

	// Parenthesised expressions are not taken for parameter lists.
	if _, ok := initializerExpr(t, "(a)").(*ast.Identifier); !ok {
		t.Errorf("(a) is not an identifier")
	}
	if _, ok := initializerExpr(t, "(1 + 2) * 3").(*ast.BinaryExpression); !ok {
		t.Errorf("(1 + 2) * 3 is not a binary expression")
	}
	// Once committed to the arrow, a bad body fails.
	mustFail(t, "const f = (a) => ;")
}

// ---------------------------------------------------------------------------
// Operators
// ---------------------------------------------------------------------------

func TestPrecedence(t *testing.T) {
	bin := initializerExpr(t, "1 + 2 * 3").(*ast.BinaryExpression)
	if bin.Operator != "+" {
		t.Fatalf("root operator = %q, want +", bin.Operator)
	}
	if right := bin.Right.(*ast.BinaryExpression); right.Operator != "*" {
		t.Errorf("right operator = %q, want *", right.Operator)
	}

	// left associative
	bin = initializerExpr(t, "a - b - c").(*ast.BinaryExpression)
	if _, ok := bin.Left.(*ast.BinaryExpression); !ok {
		t.Errorf("a - b - c does not group to the left")
	}

	// right associative
	bin = initializerExpr(t, "a ** b ** c").(*ast.BinaryExpression)
	if _, ok := bin.Right.(*ast.BinaryExpression); !ok {
		t.Errorf("a ** b ** c does not group to the right")
	}

	logical := initializerExpr(t, "a || b && c").(*ast.LogicalExpression)
	if logical.Operator != "||" {
		t.Errorf("root = %q, want ||", logical.Operator)
	}
	if inner := logical.Right.(*ast.LogicalExpression); inner.Operator != "&&" {
		t.Errorf("inner = %q, want &&", inner.Operator)
	}

	rel := initializerExpr(t, "a in b instanceof c").(*ast.BinaryExpression)
	if rel.Operator != "instanceof" {
		t.Errorf("root = %q, want instanceof", rel.Operator)
	}
}

func TestUnaryBeforeExponent(t *testing.T) {
	se := mustFail(t, "const x = -2 ** 2")
	if se.Message != "Unary operator used immediately before exponentiation expression" {
		t.Errorf("message = %q", se.Message)
	}
	if se.Start != 10 || se.End != 12 {
		t.Errorf("span = [%d,%d), want [10,12)", se.Start, se.End)
	}
	mustFail(t, "const x = a * typeof b ** c")

	bin := initializerExpr(t, "(-2) ** 2").(*ast.BinaryExpression)
	if _, ok := bin.Left.(*ast.UnaryExpression); !ok {
		t.Errorf("left = %T, want *ast.UnaryExpression", bin.Left)
	}
	bin = initializerExpr(t, "2 ** -2").(*ast.BinaryExpression)
	if _, ok := bin.Right.(*ast.UnaryExpression); !ok {
		t.Errorf("right = %T, want *ast.UnaryExpression", bin.Right)
	}
	initializerExpr(t, "-a * b")
}

func TestUnaryAndConditional(t *testing.T) {
	u := initializerExpr(t, "-!typeof a").(*ast.UnaryExpression)
	if u.Operator != "-" {
		t.Errorf("operator = %q", u.Operator)
	}
	if inner := u.Argument.(*ast.UnaryExpression); inner.Operator != "!" {
		t.Errorf("inner operator = %q", inner.Operator)
	}

	c := initializerExpr(t, "a ? b : c ? d : e").(*ast.ConditionalExpression)
	if _, ok := c.Alternate.(*ast.ConditionalExpression); !ok {
		t.Errorf("alternate is %T, want a nested conditional", c.Alternate)
	}
	mustFail(t, "const x = a ? b")
}

func TestAssignment(t *testing.T) {
	a := initializerExpr(t, "a = b += c").(*ast.AssignmentExpression)
	if a.Operator != "=" {
		t.Fatalf("operator = %q", a.Operator)
	}
	if inner := a.Right.(*ast.AssignmentExpression); inner.Operator != "+=" {
		t.Errorf("inner operator = %q", inner.Operator)
	}
	if _, ok := initializerExpr(t, "o.p = 1").(*ast.AssignmentExpression); !ok {
		t.Errorf("member target rejected")
	}

	se := mustFail(t, "const x = 1 = 2")
	if se.Message != "Invalid left-hand side in assignment" {
		t.Errorf("message = %q", se.Message)
	}
}

func TestMemberCallNew(t *testing.T) {
	call := initializerExpr(t, "a.b[c](1, 2,)").(*ast.CallExpression)
	if len(call.Arguments) != 2 {
		t.Errorf("got %d arguments", len(call.Arguments))
	}
	member := call.Callee.(*ast.MemberExpression)
	if !member.Computed {
		t.Errorf("a.b[c] is not computed")
	}
	if inner := member.Object.(*ast.MemberExpression); inner.Computed || inner.Property.(*ast.Identifier).Name != "b" {
		t.Errorf("a.b = %+v", inner)
	}

	if m := initializerExpr(t, "a.new").(*ast.MemberExpression); m.Property.(*ast.Identifier).Name != "new" {
		t.Errorf("keyword property name lost")
	}

	n := initializerExpr(t, "new Foo.Bar(1)").(*ast.NewExpression)
	if _, ok := n.Callee.(*ast.MemberExpression); !ok || len(n.Arguments) != 1 {
		t.Errorf("new callee %T with %d arguments", n.Callee, len(n.Arguments))
	}

	// new without arguments, then a call on the result
	c := initializerExpr(t, "new Foo()()").(*ast.CallExpression)
	if _, ok := c.Callee.(*ast.NewExpression); !ok {
		t.Errorf("callee is %T", c.Callee)
	}
	if n := initializerExpr(t, "new Foo").(*ast.NewExpression); n.Arguments != nil || n.End != 17 {
		t.Errorf("new Foo = %+v", n)
	}

	mustFail(t, "const x = a.")
	mustFail(t, "const x = f(1")
}

func TestTemplateLiteral(t *testing.T) {
	tl := initializerExpr(t, "`a${b}c${`d${e}`}`").(*ast.TemplateLiteral)
	if len(tl.Quasis) != 3 || len(tl.Expressions) != 2 {
		t.Fatalf("got %d quasis and %d expressions", len(tl.Quasis), len(tl.Expressions))
	}
	for i, want := range []string{"a", "c", ""} {
		if tl.Quasis[i].Raw != want {
			t.Errorf("quasi %d = %q, want %q", i, tl.Quasis[i].Raw, want)
		}
		if tl.Quasis[i].Tail != (i == 2) {
			t.Errorf("quasi %d tail = %v", i, tl.Quasis[i].Tail)
		}
	}
	if _, ok := tl.Expressions[1].(*ast.TemplateLiteral); !ok {
		t.Errorf("nested template is %T", tl.Expressions[1])
	}

	obj := initializerExpr(t, "`${ {a: 1} }`").(*ast.TemplateLiteral)
	if _, ok := obj.Expressions[0].(*ast.ObjectExpression); !ok {
		t.Errorf("placeholder holds %T", obj.Expressions[0])
	}
}

// ---------------------------------------------------------------------------
// Whole programs
// ---------------------------------------------------------------------------

func TestSpanContainment(t *testing.T) {
	code := `const config = {
  name: "estree",
  tags: ["a", "b",],
  build(target) { let out = target + 1; },
  get size() { const n = 3 },
  run: async (a, b) => a ?? b,
  nested: { deep: [ { x: /y+/g } ] },
  label: ` + "`v${1 + 2}`" + `,
};
{
  let fn = function named(p) { var q = new Map(p.entries()); };
  var t = !a.b(c)[d] ? -1 : 2 ** 3;
}`
	p := mustParse(t, code)
	if n := checkSpans(t, p); n < 50 {
		t.Errorf("visited only %d nodes", n)
	}
}

func TestLexicalErrorsPassThrough(t *testing.T) {
	_, err := parser.ParseFile(`let s = "open`)
	var se scanner.Error
	if !errors.As(err, &se) {
		t.Fatalf("err = %v (%T), want a scanner.Error", err, err)
	}
}

func TestParseTokens(t *testing.T) {
	tokens, err := scanner.Tokenize("let a = 1")
	if err != nil {
		t.Fatal(err)
	}
	p, err := parser.ParseTokens(tokens)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Body) != 1 || p.End != 9 {
		t.Errorf("got %d statements ending at %d", len(p.Body), p.End)
	}

	_, err = parser.ParseTokens(tokens[:3])
	var se parser.SyntaxError
	if !errors.As(err, &se) || se.Message != "Unexpected end of input" || se.Start != 7 {
		t.Errorf("err = %#v", err)
	}
}
