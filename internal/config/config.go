// Package config loads estree settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/t14raptor/go-estree/estree"
)

// FileNames are the names Discover looks for, in order of preference.
var FileNames = []string{"estree.toml", "estree.yaml", "estree.yml"}

// Config holds the settings shared by every estree command.
type Config struct {
	// Format is the AST encoding: "json" or "msgpack".
	Format string `toml:"format" yaml:"format"`
	// Indent is the JSON indentation unit. Empty means compact output.
	Indent string `toml:"indent" yaml:"indent"`
	// Color is "auto", "on" or "off".
	Color string `toml:"color" yaml:"color"`
	// Jobs bounds the number of files parsed concurrently.
	Jobs int `toml:"jobs" yaml:"jobs"`
	// Verbosity is passed to commonlog.Configure.
	Verbosity int `toml:"verbosity" yaml:"verbosity"`
	// Normalize applies Unicode NFC to sources before tokenizing.
	Normalize bool `toml:"normalize" yaml:"normalize"`

	// Unknown lists keys present in the file that Config does not define.
	Unknown []string `toml:"-" yaml:"-"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration at path. The decoder is chosen by extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = cfg.decodeTOML(string(data))
	case ".yaml", ".yml":
		err = cfg.decodeYAML(data)
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Discover walks from dir up to the filesystem root and returns the first
// config file it finds, or "" if there is none.
func Discover(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			info, err := os.Stat(path)
			if err == nil && !info.IsDir() {
				return path, nil
			}
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return "", err
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func (c *Config) decodeTOML(data string) error {
	md, err := toml.Decode(data, c)
	if err != nil {
		return err
	}
	for _, key := range md.Undecoded() {
		c.Unknown = append(c.Unknown, key.String())
	}
	return nil
}

var knownKeys = map[string]bool{
	"format":    true,
	"indent":    true,
	"color":     true,
	"jobs":      true,
	"verbosity": true,
	"normalize": true,
}

func (c *Config) decodeYAML(data []byte) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return err
	}
	if len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", root.Line)
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if key := root.Content[i].Value; !knownKeys[key] {
			c.Unknown = append(c.Unknown, key)
		}
	}
	return root.Decode(c)
}

func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = string(estree.FormatJSON)
	}
	if c.Color == "" {
		c.Color = "auto"
	}
	if c.Jobs <= 0 {
		c.Jobs = runtime.NumCPU()
	}
}

// Validate checks the values a file or the command line may set.
func (c *Config) Validate() error {
	if _, err := estree.ParseFormat(c.Format); err != nil {
		return err
	}
	switch c.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("color must be auto, on or off, got %q", c.Color)
	}
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity must not be negative, got %d", c.Verbosity)
	}
	return nil
}
