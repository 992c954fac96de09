package main

import (
	"bytes"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"gubamifetch/ascii"
	"gubamifetch/config"
	"gubamifetch/sysinfo"
)

var testReport = sysinfo.Report{
	{Label: "OS", Values: []string{"Linux"}},
	{Label: "Uptime", Values: []string{"up 3 days"}},
	{Label: "Disks", Values: []string{"/: 10G / 50G", "/mnt/x: 1G / 2G"}},
}

func noEnv(string) string { return "" }

func TestDisplayText(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Width = 100
	cfg.Color = config.ColorNever

	var buf bytes.Buffer
	if err := display(&buf, cfg, testReport, noEnv); err != nil {
		t.Fatalf("display: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")

	// 9 logo rows, a blank line, then the swatch.
	if len(lines) != 11 {
		t.Fatalf("got %d lines; want 11:\n%s", len(lines), buf.String())
	}
	if !strings.HasSuffix(lines[0], "OS     Linux") {
		t.Errorf("first row = %q", lines[0])
	}
	if !strings.HasSuffix(lines[2], "Disks  /: 10G / 50G; /mnt/x: 1G / 2G") {
		t.Errorf("disks row = %q", lines[2])
	}
	if lines[9] != "" || !strings.HasPrefix(lines[10], "Terminal Colors: ") {
		t.Errorf("swatch lines = %q, %q", lines[9], lines[10])
	}
	if strings.Contains(buf.String(), "\033") {
		t.Error("escape sequences written with --color=never")
	}
}

func TestDisplayHonorsGap(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Width = 100
	cfg.Gap = 1
	cfg.Color = config.ColorNever

	var buf bytes.Buffer
	if err := display(&buf, cfg, testReport, noEnv); err != nil {
		t.Fatalf("display: %v", err)
	}
	first, _, _ := strings.Cut(buf.String(), "\n")
	if want := ascii.GetLogo()[0] + " OS     Linux"; first != want {
		t.Errorf("first row = %q; want %q", first, want)
	}
}

func TestDisplayColorAlways(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Width = 100
	cfg.Color = config.ColorAlways
	cfg.Compact = true

	var buf bytes.Buffer
	if err := display(&buf, cfg, testReport, noEnv); err != nil {
		t.Fatalf("display: %v", err)
	}
	if !strings.Contains(buf.String(), sysinfo.ColorGreen+"OS     "+sysinfo.ColorReset+"Linux") {
		t.Errorf("label not colored:\n%q", buf.String())
	}
	if n := strings.Count(buf.String(), "\033[48;5;"); n != 16 {
		t.Errorf("swatch blocks = %d; want 16", n)
	}
}

func TestDisplayYAML(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Format = config.FormatYAML

	var buf bytes.Buffer
	if err := display(&buf, cfg, testReport, noEnv); err != nil {
		t.Fatalf("display: %v", err)
	}
	var got sysinfo.Report
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, buf.String())
	}
	if len(got) != 3 || got[2].Label != "Disks" || len(got[2].Values) != 2 {
		t.Fatalf("decoded report = %+v", got)
	}
}

func TestRunFlagErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--color", "purple"}, &stdout, &stderr); code != 2 {
		t.Errorf("run(bad color) = %d; want 2", code)
	}
	if !strings.Contains(stderr.String(), "color") {
		t.Errorf("stderr = %q", stderr.String())
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout written on flag error: %q", stdout.String())
	}

	if code := run([]string{"--help"}, &stdout, &stderr); code != 0 {
		t.Errorf("run(--help) = %d; want 0", code)
	}
}
