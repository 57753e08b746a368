package estree

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/t14raptor/go-estree/ast"
)

// Format selects an output encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatMsgpack:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Encode writes the ESTree form of prog to w. indent only applies to JSON;
// an empty indent writes compact output.
func Encode(w io.Writer, prog *ast.Program, format Format, indent string) error {
	tree := FromProgram(prog)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if indent != "" {
			enc.SetIndent("", indent)
		}
		return enc.Encode(tree)
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		// The msgpack keys match the JSON ones.
		enc.SetCustomStructTag("json")
		return enc.Encode(tree)
	}
	return fmt.Errorf("unknown output format %q", format)
}
