package main

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Config is the squares.yaml demo configuration.
type Config struct {
	// Fill is the character a square is drawn with. Defaults to "*".
	Fill string `yaml:"fill,omitempty"`

	// Min and Max bound the random side length. Defaults: 1 and 10.
	Min int `yaml:"min,omitempty"`
	Max int `yaml:"max,omitempty"`

	// Color names an ANSI color for the drawing, applied only when
	// stdout is a terminal. Empty means no color.
	Color string `yaml:"color,omitempty"`
}

var ansiColors = map[string]string{
	"red":     "31",
	"green":   "32",
	"yellow":  "33",
	"blue":    "34",
	"magenta": "35",
	"cyan":    "36",
}

// LoadConfig reads and parses a squares.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses squares.yaml content from bytes.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.setDefaults()
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if c.Fill == "" {
		c.Fill = "*"
	}
	if c.Min == 0 {
		c.Min = 1
	}
	if c.Max == 0 {
		c.Max = 10
	}
}

func (c *Config) validate(path string) error {
	if utf8.RuneCountInString(c.Fill) != 1 {
		return fmt.Errorf("%s: fill must be a single character, got %q", path, c.Fill)
	}
	if c.Min < 1 {
		return fmt.Errorf("%s: min must be at least 1, got %d", path, c.Min)
	}
	if c.Max < c.Min {
		return fmt.Errorf("%s: max (%d) must not be below min (%d)", path, c.Max, c.Min)
	}
	if c.Color != "" {
		if _, ok := ansiColors[c.Color]; !ok {
			return fmt.Errorf("%s: unknown color %q", path, c.Color)
		}
	}
	return nil
}
