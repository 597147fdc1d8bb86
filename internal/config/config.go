// Package config loads shellprompt configuration.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the full prompt configuration.
type Config struct {
	Format         string          `mapstructure:"format" yaml:"format"`
	Color          string          `mapstructure:"color" yaml:"color"`
	LogLevel       string          `mapstructure:"log_level" yaml:"log_level"`
	CommandTimeout time.Duration   `mapstructure:"command_timeout" yaml:"command_timeout"`
	PHP            PHPConfig       `mapstructure:"php" yaml:"php"`
	Directory      DirectoryConfig `mapstructure:"directory" yaml:"directory"`
	Character      CharacterConfig `mapstructure:"character" yaml:"character"`
}

// PHPConfig configures the php module.
type PHPConfig struct {
	Format   string `mapstructure:"format" yaml:"format"`
	Symbol   string `mapstructure:"symbol" yaml:"symbol"`
	Style    string `mapstructure:"style" yaml:"style"`
	Disabled bool   `mapstructure:"disabled" yaml:"disabled"`
}

// DirectoryConfig configures the directory module.
type DirectoryConfig struct {
	Format           string `mapstructure:"format" yaml:"format"`
	Style            string `mapstructure:"style" yaml:"style"`
	TruncationLength int    `mapstructure:"truncation_length" yaml:"truncation_length"`
	Disabled         bool   `mapstructure:"disabled" yaml:"disabled"`
}

// CharacterConfig configures the character module.
type CharacterConfig struct {
	Format        string `mapstructure:"format" yaml:"format"`
	SuccessSymbol string `mapstructure:"success_symbol" yaml:"success_symbol"`
	ErrorSymbol   string `mapstructure:"error_symbol" yaml:"error_symbol"`
	SuccessStyle  string `mapstructure:"success_style" yaml:"success_style"`
	ErrorStyle    string `mapstructure:"error_style" yaml:"error_style"`
	Disabled      bool   `mapstructure:"disabled" yaml:"disabled"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format:         "${directory}${php}${character}",
		Color:          "auto",
		LogLevel:       "warn",
		CommandTimeout: 500 * time.Millisecond,
		PHP: PHPConfig{
			Format: "via ${symbol}${version} ",
			Symbol: "🐘 ",
			Style:  "bold 147",
		},
		Directory: DirectoryConfig{
			Format:           "${path} ",
			Style:            "bold cyan",
			TruncationLength: 3,
		},
		Character: CharacterConfig{
			Format:        "${symbol} ",
			SuccessSymbol: "❯",
			ErrorSymbol:   "❯",
			SuccessStyle:  "bold green",
			ErrorStyle:    "bold red",
		},
	}
}

// Validate checks values that would otherwise fail later during rendering.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is required")
	}
	switch strings.ToLower(strings.TrimSpace(c.Color)) {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", c.Color)
	}
	if c.CommandTimeout <= 0 {
		return fmt.Errorf("command_timeout must be positive, got %s", c.CommandTimeout)
	}
	if c.Directory.TruncationLength < 0 {
		return fmt.Errorf("directory.truncation_length must not be negative, got %d", c.Directory.TruncationLength)
	}
	return nil
}
