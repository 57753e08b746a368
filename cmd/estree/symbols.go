package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/t14raptor/go-estree/parser/scanner"
)

var symbolsCmd = &cobra.Command{
	Use:       "symbols [keywords|punctuators]",
	Short:     "List the keywords and punctuators the tokenizer recognises",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"keywords", "punctuators"},
	RunE:      runSymbols,
}

func runSymbols(_ *cobra.Command, args []string) error {
	kind := ""
	if len(args) == 1 {
		kind = args[0]
	}
	if kind == "" || kind == "keywords" {
		for _, w := range scanner.Keywords() {
			fmt.Fprintln(os.Stdout, w)
		}
	}
	if kind == "" || kind == "punctuators" {
		for _, p := range scanner.Punctuators() {
			fmt.Fprintln(os.Stdout, p)
		}
	}
	return nil
}
