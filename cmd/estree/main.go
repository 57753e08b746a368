package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"golang.org/x/term"

	"github.com/t14raptor/go-estree/internal/config"
	"github.com/t14raptor/go-estree/internal/diagfmt"
	"github.com/t14raptor/go-estree/internal/driver"
)

var log = commonlog.GetLogger("estree")

// errReported means the failure was already printed as diagnostics.
var errReported = errors.New("errors reported")

// settings is resolved once per run by loadSettings.
var settings *config.Config

var rootCmd = &cobra.Command{
	Use:               "estree",
	Short:             "Tokenize and parse JavaScript into ESTree",
	Long:              `estree tokenizes and parses a JavaScript subset and emits an ESTree-shaped AST`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

func main() {
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(symbolsCmd)

	rootCmd.PersistentFlags().String("config", "", "config file (default: estree.toml or estree.yaml in the working directory or above)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().Bool("normalize", false, "normalize sources to Unicode NFC before tokenizing")

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "estree:", err)
		}
		os.Exit(1)
	}
}

// loadSettings reads the config file and lets flags set on the command line
// override it.
func loadSettings(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	path, err := flags.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	if path == "" {
		if path, err = config.Discover("."); err != nil {
			return fmt.Errorf("failed to discover config: %w", err)
		}
	}

	cfg := config.Default()
	if path != "" {
		if cfg, err = config.Load(path); err != nil {
			return err
		}
	}

	if flags.Changed("color") {
		cfg.Color, _ = flags.GetString("color")
	}
	if flags.Changed("verbose") {
		cfg.Verbosity, _ = flags.GetCount("verbose")
	}
	if flags.Changed("normalize") {
		cfg.Normalize, _ = flags.GetBool("normalize")
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Lookup("indent") != nil && flags.Changed("indent") {
		cfg.Indent, _ = flags.GetString("indent")
	}
	if flags.Lookup("jobs") != nil && flags.Changed("jobs") {
		cfg.Jobs, _ = flags.GetInt("jobs")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	commonlog.Configure(cfg.Verbosity, nil)
	if path != "" {
		log.Infof("using config %s", path)
	}
	for _, key := range cfg.Unknown {
		log.Warningf("%s: unknown key %q", path, key)
	}
	settings = cfg
	return nil
}

// report prints err as a diagnostic for path on stderr.
func report(path, src string, err error) error {
	if werr := diagfmt.NewPrinter(os.Stderr, useColor(os.Stderr)).Error(path, src, err); werr != nil {
		return fmt.Errorf("failed to write diagnostics: %w", werr)
	}
	return errReported
}

func driverOptions() driver.Options {
	return driver.Options{Normalize: settings.Normalize, Jobs: settings.Jobs}
}

func useColor(f *os.File) bool {
	switch settings.Color {
	case "on":
		return true
	case "off":
		return false
	}
	return isTerminal(f)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
