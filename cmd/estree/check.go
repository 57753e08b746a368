package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/t14raptor/go-estree/internal/diagfmt"
	"github.com/t14raptor/go-estree/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] file.js...",
	Short: "Parse files concurrently and report every error",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().IntP("jobs", "j", 0, "files parsed at once (default: number of CPUs)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	results, err := driver.ParseFiles(cmd.Context(), args, driverOptions())
	if err == nil {
		log.Infof("%d files parsed", len(results))
		return nil
	}

	p := diagfmt.NewPrinter(os.Stderr, useColor(os.Stderr))
	var reported bool
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		if werr := p.Error(r.Path, r.Source, r.Err); werr != nil {
			return fmt.Errorf("failed to write diagnostics: %w", werr)
		}
		reported = true
	}
	if !reported {
		// Cancelled before any file failed on its own.
		return err
	}
	return errReported
}
