package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/t14raptor/go-estree/estree"
	"github.com/t14raptor/go-estree/internal/driver"
	"github.com/t14raptor/go-estree/printer"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.js",
	Short: "Parse a source file and print its AST",
	Long:  `Parse prints the ESTree form of a source file as JSON or MessagePack, or as an indented tree with --tree`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "json", "ESTree encoding (json|msgpack)")
	parseCmd.Flags().String("indent", "", "JSON indentation, compact when empty")
	parseCmd.Flags().Bool("tree", false, "print an indented tree with spans instead of ESTree")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	tree, err := cmd.Flags().GetBool("tree")
	if err != nil {
		return fmt.Errorf("failed to get tree flag: %w", err)
	}

	src, prog, err := driver.ParseFile(path, driverOptions())
	if err != nil {
		return report(path, src, err)
	}

	if tree {
		_, err = fmt.Fprint(os.Stdout, printer.Print(prog))
		return err
	}

	format, err := estree.ParseFormat(settings.Format)
	if err != nil {
		return err
	}
	if format == estree.FormatMsgpack && isTerminal(os.Stdout) {
		log.Warning("writing binary MessagePack to a terminal")
	}
	if err := estree.Encode(os.Stdout, prog, format, settings.Indent); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
