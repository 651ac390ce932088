// Package config handles tool configuration loading and management.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/Owmacohe/OMCHTools/pkg/encoding"
	"github.com/Owmacohe/OMCHTools/pkg/textfile"
)

// Config holds all tool settings.
type Config struct {
	Resources ResourcesConfig `yaml:"resources"`
	Parser    ParserConfig    `yaml:"parser"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ResourcesConfig holds where named resources are looked up.
type ResourcesConfig struct {
	Dirs       []string `yaml:"dirs"`       // Loose directories, override packs; later wins
	Packs      []string `yaml:"packs"`      // Packed archives; later wins
	Encoding   string   `yaml:"encoding"`   // Text encoding of resource files
	Extensions []string `yaml:"extensions"` // Tried for names without extension
}

// ParserConfig holds text parsing defaults.
type ParserConfig struct {
	Delimiter       string `yaml:"delimiter"`
	VectorDelimiter string `yaml:"vector_delimiter"`
	Ragged          string `yaml:"ragged"`
	Trim            bool   `yaml:"trim"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Resources: ResourcesConfig{
			Dirs:       []string{"."},
			Encoding:   encoding.UTF8,
			Extensions: []string{".txt", ".csv"},
		},
		Parser: ParserConfig{
			Delimiter:       ",",
			VectorDelimiter: ";",
			Ragged:          textfile.RaggedTruncate.String(),
			Trim:            true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values that YAML cannot constrain.
func (c *Config) Validate() error {
	if _, err := singleRune("delimiter", c.Parser.Delimiter); err != nil {
		return err
	}
	if _, err := singleRune("vector_delimiter", c.Parser.VectorDelimiter); err != nil {
		return err
	}
	if _, err := textfile.ParseRaggedPolicy(c.Parser.Ragged); err != nil {
		return fmt.Errorf("parser.ragged: %w", err)
	}
	if _, err := encoding.Lookup(c.Resources.Encoding); err != nil {
		return fmt.Errorf("resources.encoding: %w", err)
	}
	return nil
}

// Options converts the parser and resource settings to textfile options.
// Call Validate first; invalid values fall back to defaults.
func (c *Config) Options() []textfile.Option {
	ragged, _ := textfile.ParseRaggedPolicy(c.Parser.Ragged)
	trim := textfile.TrimSpace
	if !c.Parser.Trim {
		trim = textfile.TrimNone
	}
	return []textfile.Option{
		textfile.WithRagged(ragged),
		textfile.WithTrim(trim),
		textfile.WithEncoding(c.Resources.Encoding),
	}
}

func singleRune(field, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("parser.%s: expected a single character, got %q", field, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
