package sysinfo

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// lsbDescription extracts the value of `lsb_release -d` ("Description:\tUbuntu 22.04.3 LTS").
func lsbDescription(out string) string {
	_, desc, ok := strings.Cut(out, ":")
	if !ok {
		return ""
	}
	return strings.TrimSpace(desc)
}

// osReleasePrettyName reads PRETTY_NAME from an os-release file.
func osReleasePrettyName(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if v, ok := strings.CutPrefix(line, "PRETTY_NAME="); ok {
			return strings.Trim(strings.TrimSpace(v), `"`), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return "", fmt.Errorf("%s: PRETTY_NAME: %w", path, ErrNoData)
}

// xrandrCurrentMode returns the first mode marked current ("*") in xrandr output.
func xrandrCurrentMode(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "*") {
			continue
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			return fields[0]
		}
	}
	return ""
}

// wmctrlName returns the window manager name from `wmctrl -m`.
func wmctrlName(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "Name") {
			continue
		}
		if _, name, ok := strings.Cut(line, ":"); ok {
			return strings.TrimSpace(name)
		}
	}
	return ""
}

var lspciDisplay = regexp.MustCompile(`(?i)vga|3d|2d`)

// lspciDisplays lists the device descriptions of display controllers, taken
// after the second colon as in "00:02.0 VGA compatible controller: Intel ...".
func lspciDisplays(out string) []string {
	var gpus []string
	for _, line := range strings.Split(out, "\n") {
		if !lspciDisplay.MatchString(line) {
			continue
		}
		fields := strings.SplitN(line, ":", 4)
		if len(fields) < 3 {
			continue
		}
		if name := strings.TrimSpace(fields[2]); name != "" {
			gpus = append(gpus, name)
		}
	}
	return gpus
}

// acpiBattery returns the charge field of `acpi -b`
// ("Battery 0: Discharging, 87%, 01:23:45 remaining").
func acpiBattery(out string) string {
	if strings.Contains(out, "No support") {
		return ""
	}
	fields := strings.Split(out, ",")
	if len(fields) < 2 {
		return ""
	}
	return strings.TrimSpace(fields[1])
}

// upowerBatteryPath picks the first battery device from `upower -e`.
func upowerBatteryPath(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "BAT") {
			return strings.TrimSpace(line)
		}
	}
	return ""
}

// upowerPercentage returns the percentage line of `upower -i <device>`.
func upowerPercentage(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "percentage") {
			continue
		}
		if _, v, ok := strings.Cut(line, ":"); ok {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// excludedFstypes are never reported as disks.
var excludedFstypes = map[string]bool{"tmpfs": true, "devtmpfs": true}

// diskLines formats the root and /mnt mounts as "<target>: <used> / <size>".
func diskLines(mounts []Mount) []string {
	var lines []string
	for _, m := range mounts {
		if excludedFstypes[m.Fstype] {
			continue
		}
		if m.Target != "/" && !strings.HasPrefix(m.Target, "/mnt") {
			continue
		}
		lines = append(lines, m.Target+": "+FormatUsage(m.Usage))
	}
	return lines
}

func (c *Collector) probeOS(ctx context.Context) Result {
	if out, err := c.Run(ctx, "lsb_release", "-d"); err == nil {
		if desc := lsbDescription(out); desc != "" {
			return Value(desc)
		}
	}
	if name, err := osReleasePrettyName(filepath.Join(c.Root, "etc", "os-release")); err == nil && name != "" {
		return Value(name)
	}
	p, err := c.Hardware.Platform()
	if err != nil {
		return Fail(err)
	}
	return Value(p)
}

func (c *Collector) probeKernel(context.Context) Result {
	k, err := c.Hardware.Kernel()
	if err != nil {
		return Fail(err)
	}
	return Value(k)
}

func (c *Collector) probeHostname(context.Context) Result {
	h, err := c.Hardware.Hostname()
	if err != nil {
		return Fail(err)
	}
	return Value(h)
}

func (c *Collector) probeUptime(context.Context) Result {
	d, err := c.Hardware.Uptime()
	if err != nil {
		return Fail(err)
	}
	return Value(FormatUptime(d))
}

func (c *Collector) probeShell(context.Context) Result {
	shell := c.Getenv("SHELL")
	if shell == "" {
		return Fail(fmt.Errorf("SHELL: %w", ErrNoData))
	}
	return Value(filepath.Base(shell))
}

func (c *Collector) probeResolution(ctx context.Context) Result {
	out, err := runString(ctx, c.Run, "xrandr")
	if err != nil {
		return Fail(err)
	}
	return Value(xrandrCurrentMode(out))
}

func (c *Collector) probeDesktop(ctx context.Context) Result {
	if de := c.Getenv("XDG_CURRENT_DESKTOP"); de != "" {
		return Value(de)
	}
	out, err := runString(ctx, c.Run, "wmctrl", "-m")
	if err != nil {
		return Fail(err)
	}
	return Value(wmctrlName(out))
}

// gsetting returns a probe reading one gsettings key.
func (c *Collector) gsetting(schema, key string) func(context.Context) Result {
	return func(ctx context.Context) Result {
		out, err := runString(ctx, c.Run, "gsettings", "get", schema, key)
		if err != nil {
			return Fail(err)
		}
		return Value(unquote(out))
	}
}

func (c *Collector) probeCPU(context.Context) Result {
	model, err := c.Hardware.CPUModel()
	if err != nil {
		return Fail(err)
	}
	return Value(model)
}

func (c *Collector) probeGPU(ctx context.Context) Result {
	gpus, err := c.Hardware.GPUs()
	if err == nil && len(gpus) > 0 {
		return List(gpus)
	}
	out, lerr := runString(ctx, c.Run, "lspci")
	if lerr != nil {
		return Fail(errors.Join(err, lerr))
	}
	return List(lspciDisplays(out))
}

func (c *Collector) probeMemory(context.Context) Result {
	u, err := c.Hardware.Memory()
	if err != nil {
		return Fail(err)
	}
	return Value(FormatUsage(u))
}

func (c *Collector) probeSwap(context.Context) Result {
	u, err := c.Hardware.Swap()
	if err != nil {
		return Fail(err)
	}
	return Value(FormatUsage(u))
}

func (c *Collector) probeDisks(context.Context) Result {
	mounts, err := c.Hardware.Mounts()
	if err != nil {
		return Fail(err)
	}
	return List(diskLines(mounts))
}

// env returns a probe reading one environment variable.
func (c *Collector) env(key string) func(context.Context) Result {
	return func(context.Context) Result {
		return Value(c.Getenv(key))
	}
}

func (c *Collector) probeBattery(ctx context.Context) Result {
	if out, err := c.Run(ctx, "acpi", "-b"); err == nil {
		if pct := acpiBattery(out); pct != "" {
			return Value(pct)
		}
	}
	devices, err := runString(ctx, c.Run, "upower", "-e")
	if err != nil {
		return Fail(err)
	}
	path := upowerBatteryPath(devices)
	if path == "" {
		return Fail(fmt.Errorf("upower: battery: %w", ErrNoData))
	}
	out, err := runString(ctx, c.Run, "upower", "-i", path)
	if err != nil {
		return Fail(err)
	}
	return Value(upowerPercentage(out))
}

func (c *Collector) probeCPUUsage(context.Context) Result {
	return cpuUsageResult(cpuSampler{read: c.readCPU, interval: c.CPUInterval})
}
