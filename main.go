// Package main provides the gubamifetch command-line tool, which prints a
// logo beside a report of local system information.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"gubamifetch/ascii"
	"gubamifetch/config"
	"gubamifetch/render"
	"gubamifetch/sysinfo"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, collects the report and writes it to stdout. It returns
// the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, _, err := config.Parse("gubamifetch", args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "gubamifetch: %v\n", err)
		return 2
	}

	logger := newLogger(stderr, cfg.Debug)
	report := sysinfo.NewCollector(logger).Collect(context.Background())

	if err := display(stdout, cfg, report, os.Getenv); err != nil {
		logger.Error("write output", "err", err)
		return 1
	}
	return 0
}

// newLogger writes text logs to w; debug enables per-probe failure logs.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// display writes report in the configured format.
func display(w io.Writer, cfg config.Config, report sysinfo.Report, getenv func(string) string) error {
	if cfg.Format == config.FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	}

	logo := ascii.GetLogo()
	if cfg.Compact {
		logo = ascii.GetCompactLogo()
	}

	color := config.ResolveColor(cfg.Color, config.DetectProfile(w))
	opts := render.DefaultOptions(config.TerminalWidth(cfg.Width, fdOf(w), getenv))
	opts.Gap = cfg.Gap
	opts.Color = color
	if err := render.Write(w, report, logo, opts); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	_, err := fmt.Fprintf(w, "\n%s\n", render.Swatch(color))
	return err
}

// fdOf returns the file descriptor behind w, or -1 when w isn't a file.
func fdOf(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		return int(f.Fd())
	}
	return -1
}
