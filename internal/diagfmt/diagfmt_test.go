package diagfmt_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/internal/diagfmt"
	"github.com/t14raptor/go-estree/parser"
	"github.com/t14raptor/go-estree/parser/scanner"
)

func TestPosition(t *testing.T) {
	src := "ab\ncd\r\nef\u2028g"
	tests := []struct {
		off       ast.Idx
		line, col int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{4, 2, 2},
		{7, 3, 1},
		{10, 4, 1},
		{100, 4, 2},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.off), func(t *testing.T) {
			got := diagfmt.Position(src, tt.off)
			if got.Line != tt.line || got.Col != tt.col {
				t.Fatalf("got %d:%d, want %d:%d", got.Line, got.Col, tt.line, tt.col)
			}
		})
	}
}

func TestDiagnostic(t *testing.T) {
	src := "let a = 1;\nconst b = 2 3;\n"
	var buf bytes.Buffer
	p := diagfmt.NewPrinter(&buf, false)
	// "3" on the second line.
	if err := p.Diagnostic("x.js", src, 23, 24, "Unexpected number"); err != nil {
		t.Fatal(err)
	}
	want := "x.js:2:13: error: Unexpected number\n" +
		"  const b = 2 3;\n" +
		"              ^\n"
	if got := buf.String(); got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
}

func TestDiagnosticUnderline(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		start, end ast.Idx
		want       string
	}{
		{"span", "x = foo;", 4, 7, "      ^~~\n"},
		{"tab", "\tx = @", 5, 6, "  \t    ^\n"},
		{"wide", "s = '世界' +", 4, 8, "      ^~~~~~\n"},
		{"end of input", "const a =", 9, 9, "           ^\n"},
		{"clipped", "a = `x\ny`", 4, 9, "      ^~\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			p := diagfmt.NewPrinter(&buf, false)
			if err := p.Diagnostic("f.js", tt.src, tt.start, tt.end, "msg"); err != nil {
				t.Fatal(err)
			}
			lines := strings.SplitAfter(buf.String(), "\n")
			if len(lines) < 3 || lines[2] != tt.want {
				t.Fatalf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestError(t *testing.T) {
	src := "const a = 'x"
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"lexical",
			scanner.Error{Message: "Unterminated string constant", Start: 10, End: 12},
			"a.js:1:11: error: Unterminated string constant\n",
		},
		{
			"wrapped syntax",
			fmt.Errorf("a.js: %w", parser.SyntaxError{Message: "Unexpected token", Start: 6, End: 7}),
			"a.js:1:7: error: Unexpected token\n",
		},
		{
			"plain",
			errors.New("open a.js: permission denied"),
			"a.js: error: open a.js: permission denied\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := diagfmt.NewPrinter(&buf, false).Error("a.js", src, tt.err); err != nil {
				t.Fatal(err)
			}
			if first, _, _ := strings.Cut(buf.String(), "\n"); first+"\n" != tt.want {
				t.Fatalf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestColor(t *testing.T) {
	var plain, colored bytes.Buffer
	src := "a b"
	if err := diagfmt.NewPrinter(&plain, false).Diagnostic("c.js", src, 2, 3, "Unexpected identifier"); err != nil {
		t.Fatal(err)
	}
	if err := diagfmt.NewPrinter(&colored, true).Diagnostic("c.js", src, 2, 3, "Unexpected identifier"); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatal("plain output has escape codes")
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatal("colored output has no escape codes")
	}
}

func TestTokens(t *testing.T) {
	src := "let re = /a+/g;\nx"
	tokens, err := scanner.Tokenize(src)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := diagfmt.NewPrinter(&buf, false).Tokens(src, tokens); err != nil {
		t.Fatal(err)
	}
	want := []string{
		`  1: keyword    "let" at 1:1-1:4`,
		`  2: name       "re" at 1:5-1:7`,
		`  3: =          "=" at 1:8-1:9`,
		`  4: regexp     /a+/g at 1:10-1:15`,
		`  5: ;          ";" at 1:15-1:16`,
		`  6: name       "x" at 2:1-2:2`,
	}
	if got := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n"); strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("got\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

var errClosed = errors.New("writer closed")

type closedWriter struct{}

func (closedWriter) Write([]byte) (int, error) { return 0, errClosed }

func TestWriteFailure(t *testing.T) {
	src := "let re = /a/;"
	tokens, err := scanner.Tokenize(src)
	if err != nil {
		t.Fatal(err)
	}
	p := diagfmt.NewPrinter(closedWriter{}, false)
	if err := p.Tokens(src, tokens); !errors.Is(err, errClosed) {
		t.Fatalf("Tokens: got %v, want errClosed", err)
	}
	if err := p.Diagnostic("w.js", src, 4, 6, "msg"); !errors.Is(err, errClosed) {
		t.Fatalf("Diagnostic: got %v, want errClosed", err)
	}
	if err := p.Error("w.js", src, errors.New("boom")); !errors.Is(err, errClosed) {
		t.Fatalf("Error: got %v, want errClosed", err)
	}
}
