package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/t14raptor/go-estree/internal/diagfmt"
	"github.com/t14raptor/go-estree/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.js",
	Short: "Print the tokens of a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func runTokenize(cmd *cobra.Command, args []string) error {
	path := args[0]
	src, tokens, err := driver.Tokenize(path, driverOptions())
	if err != nil {
		return report(path, src, err)
	}
	return diagfmt.NewPrinter(os.Stdout, useColor(os.Stdout)).Tokens(src, tokens)
}
