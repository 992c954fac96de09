// Package config holds runtime settings: defaults, CLI flag parsing, and
// validation, plus the terminal facts (width, color) the renderer needs.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

// ErrInvalid marks a rejected setting.
var ErrInvalid = errors.New("invalid setting")

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a color-capable TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Format selects what is written to stdout.
type Format string

const (
	FormatText Format = "text" // Logo and report side by side (default).
	FormatYAML Format = "yaml" // Report only, as YAML.
)

// Config holds all runtime settings.
type Config struct {
	Compact bool      // Use the compact logo.
	Gap     int       // Default: 3. Spaces between logo and labels.
	Width   int       // 0 means detect from the terminal.
	Color   ColorMode // Default: "auto".
	Format  Format    // Default: "text".
	Debug   bool      // Log probe failures to stderr.
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() Config {
	return Config{
		Gap:    3,
		Color:  ColorAuto,
		Format: FormatText,
	}
}

// RegisterFlags binds cfg's fields to flags on fs. Defaults come from cfg.
func (c *Config) RegisterFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&c.Compact, "compact", c.Compact, "use the compact logo")
	fs.IntVar(&c.Gap, "gap", c.Gap, "number of spaces between logo and info")
	fs.IntVar(&c.Width, "width", c.Width, "terminal width in columns (0 = detect)")
	fs.StringVar((*string)(&c.Color), "color", string(c.Color), "color output: auto | always | never")
	fs.StringVar((*string)(&c.Format), "format", string(c.Format), "output format: text | yaml")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "log unavailable probes to stderr")
}

// Parse parses args into a validated Config. pflag.ErrHelp is returned
// unwrapped when help was requested.
func Parse(name string, args []string) (Config, *pflag.FlagSet, error) {
	cfg := DefaultConfig()
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, fs, err
	}
	if fs.NArg() > 0 {
		return cfg, fs, fmt.Errorf("unexpected argument %q: %w", fs.Arg(0), ErrInvalid)
	}
	return cfg, fs, cfg.Validate()
}

// Validate checks numeric ranges and enum fields.
func (c *Config) Validate() error {
	if c.Gap < 0 {
		return fmt.Errorf("gap %d must not be negative: %w", c.Gap, ErrInvalid)
	}
	if c.Width < 0 {
		return fmt.Errorf("width %d must not be negative: %w", c.Width, ErrInvalid)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color %q (use auto, always or never): %w", c.Color, ErrInvalid)
	}
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("format %q (use text or yaml): %w", c.Format, ErrInvalid)
	}
	return nil
}
