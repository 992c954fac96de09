package config

import (
	"errors"
	"testing"

	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
)

func TestParse_Defaults(t *testing.T) {
	cfg, _, err := Parse("gubamifetch", nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Parse() = %+v, want defaults %+v", cfg, DefaultConfig())
	}
	if cfg.Gap != 3 {
		t.Errorf("default gap = %d, want 3", cfg.Gap)
	}
}

func TestParse_Flags(t *testing.T) {
	cfg, _, err := Parse("gubamifetch", []string{"--compact", "--gap", "5", "--width=100", "--color", "never", "--format", "yaml", "--debug"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := Config{Compact: true, Gap: 5, Width: 100, Color: ColorNever, Format: FormatYAML, Debug: true}
	if cfg != want {
		t.Errorf("Parse() = %+v, want %+v", cfg, want)
	}
}

func TestParse_Help(t *testing.T) {
	_, _, err := Parse("gubamifetch", []string{"--help"})
	if !errors.Is(err, pflag.ErrHelp) {
		t.Fatalf("Parse(--help) error = %v, want pflag.ErrHelp", err)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"negative gap", []string{"--gap=-1"}},
		{"negative width", []string{"--width=-4"}},
		{"unknown color", []string{"--color", "sometimes"}},
		{"unknown format", []string{"--format", "json"}},
		{"positional arg", []string{"extra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse("gubamifetch", tt.args)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalid", tt.args, err)
			}
		})
	}
}

func TestResolveColor(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		profile termenv.Profile
		want    bool
	}{
		{"always ignores profile", ColorAlways, termenv.Ascii, true},
		{"never ignores profile", ColorNever, termenv.TrueColor, false},
		{"auto on color terminal", ColorAuto, termenv.ANSI256, true},
		{"auto on plain output", ColorAuto, termenv.Ascii, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveColor(tt.mode, tt.profile); got != tt.want {
				t.Errorf("ResolveColor(%q, %v) = %v, want %v", tt.mode, tt.profile, got, tt.want)
			}
		})
	}
}

func TestTerminalWidth(t *testing.T) {
	env := func(v string) func(string) string {
		return func(string) string { return v }
	}
	// fd -1 is never a terminal, so detection falls through.
	tests := []struct {
		name     string
		override int
		columns  string
		want     int
	}{
		{"override wins", 120, "90", 120},
		{"COLUMNS fallback", 0, "90", 90},
		{"bad COLUMNS", 0, "wide", DefaultWidth},
		{"nothing set", 0, "", DefaultWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TerminalWidth(tt.override, -1, env(tt.columns)); got != tt.want {
				t.Errorf("TerminalWidth() = %d, want %d", got, tt.want)
			}
		})
	}
}
