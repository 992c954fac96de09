package sysinfo

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// probe is one labeled lookup. Optional probes are left out of the report
// when they fail instead of showing NotAvailable.
type probe struct {
	label    string
	run      func(context.Context) Result
	optional bool
}

// Collector runs every probe once, in display order.
type Collector struct {
	// Run executes external commands.
	Run Runner
	// Root is prepended to absolute paths such as /etc/os-release.
	Root string
	// Getenv reads environment variables.
	Getenv   func(string) string
	Hardware Hardware
	// CPUInterval is the CPU usage sampling window.
	CPUInterval time.Duration
	Logger      *slog.Logger

	readCPU func() (cpuSample, error)
}

// NewCollector returns a Collector reading the live system.
func NewCollector(logger *slog.Logger) *Collector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{
		Run:         ExecRunner,
		Root:        "/",
		Getenv:      os.Getenv,
		Hardware:    SystemHardware{},
		CPUInterval: cpuSampleInterval,
		Logger:      logger,
		readCPU:     readCPUSample("/"),
	}
}

func (c *Collector) probes() []probe {
	return []probe{
		{label: "OS", run: c.probeOS},
		{label: "Kernel", run: c.probeKernel},
		{label: "Hostname", run: c.probeHostname},
		{label: "Uptime", run: c.probeUptime},
		{label: "Shell", run: c.probeShell},
		{label: "Resolution", run: c.probeResolution},
		{label: "DE / WM", run: c.probeDesktop},
		{label: "WM Theme", run: c.gsetting("org.gnome.desktop.wm.preferences", "theme")},
		{label: "GTK Theme", run: c.gsetting("org.gnome.desktop.interface", "gtk-theme")},
		{label: "Icon Theme", run: c.gsetting("org.gnome.desktop.interface", "icon-theme")},
		{label: "CPU", run: c.probeCPU},
		{label: "GPU", run: c.probeGPU},
		{label: "RAM Usage", run: c.probeMemory},
		{label: "Swap Usage", run: c.probeSwap},
		{label: "Disks", run: c.probeDisks},
		{label: "Terminal", run: c.env("TERM")},
		{label: "Battery", run: c.probeBattery, optional: true},
		{label: "Locale", run: c.env("LANG")},
		{label: "CPU Usage", run: c.probeCPUUsage},
	}
}

// Collect runs all probes sequentially and builds the report.
//
// Parameters:
//   - ctx: Bounds external commands; the CPU sampling sleep ignores it
//
// Returns:
//   - The report in display order. Unavailable fields read NotAvailable,
//     except Battery, which is omitted
func (c *Collector) Collect(ctx context.Context) Report {
	if c.readCPU == nil {
		c.readCPU = readCPUSample(c.Root)
	}
	probes := c.probes()
	report := make(Report, 0, len(probes))
	for _, p := range probes {
		res := p.run(ctx)
		if !res.OK() {
			c.Logger.Debug("probe unavailable", "probe", p.label, "err", res.Err)
			if p.optional {
				continue
			}
		}
		report = append(report, res.entry(p.label))
	}
	return report
}
