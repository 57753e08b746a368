// Package driver reads source files and runs the tokenizer and parser over
// them, one file or many at a time.
package driver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"unicode/utf8"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"github.com/t14raptor/go-estree/ast"
	"github.com/t14raptor/go-estree/parser"
	"github.com/t14raptor/go-estree/parser/scanner"
	"github.com/t14raptor/go-estree/token"
)

var log = commonlog.GetLogger("estree.driver")

// ErrInvalidUTF8 is returned for sources that are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("source is not valid UTF-8")

// Options controls how sources are read and parsed.
type Options struct {
	// Normalize converts sources to Unicode NFC before tokenizing.
	Normalize bool
	// Jobs bounds concurrent parses in ParseFiles. Zero or less means
	// GOMAXPROCS.
	Jobs int
}

// ReadSource loads path and prepares it for the tokenizer.
func ReadSource(path string, opts Options) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	src := string(data)
	if opts.Normalize && !norm.NFC.IsNormalString(src) {
		log.Debugf("normalizing %s to NFC", path)
		src = norm.NFC.String(src)
	}
	return src, nil
}

// Tokenize reads path and returns its source along with its tokens. The
// source is returned even when tokenizing fails so errors can be rendered.
func Tokenize(path string, opts Options) (string, []token.Token, error) {
	src, err := ReadSource(path, opts)
	if err != nil {
		return "", nil, err
	}
	tokens, err := scanner.Tokenize(src)
	if err != nil {
		return src, nil, err
	}
	log.Debugf("%s: %d tokens", path, len(tokens))
	return src, tokens, nil
}

// ParseFile reads and parses path. As with Tokenize the source is returned
// alongside a lexical or syntax error.
func ParseFile(path string, opts Options) (string, *ast.Program, error) {
	src, err := ReadSource(path, opts)
	if err != nil {
		return "", nil, err
	}
	prog, err := parser.ParseFile(src)
	if err != nil {
		return src, nil, err
	}
	log.Debugf("%s: %d statements", path, len(prog.Body))
	return src, prog, nil
}

// Result is the outcome of parsing one file.
type Result struct {
	Path    string
	Source  string
	Program *ast.Program
	Err     error
}

// ParseFiles parses every path concurrently. Results are returned in the
// order of paths. The error joins the failure of each file, wrapped with
// its path; it is nil only when every file parsed.
func ParseFiles(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	results := make([]Result, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	log.Infof("parsing %d files with %d jobs", len(paths), min(jobs, len(paths)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			// Each goroutine owns results[i].
			results[i].Path = path
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return err
			}
			src, prog, err := ParseFile(path, opts)
			results[i] = Result{Path: path, Source: src, Program: prog, Err: err}
			if err != nil {
				log.Debugf("%s: %s", path, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Path, r.Err))
		}
	}
	if len(errs) > 0 {
		log.Warningf("%d of %d files failed", len(errs), len(paths))
	}
	return results, errors.Join(errs...)
}
