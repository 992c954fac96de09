package sysinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
)

// cpuSampleInterval is the window between the two counter reads.
const cpuSampleInterval = 100 * time.Millisecond

// cpuSample holds aggregate CPU counters at one instant.
type cpuSample struct {
	Total float64
	Idle  float64
}

// sampleFromTimes converts gopsutil's aggregate times into a sample. Every
// counter counts towards the total, guest time included.
func sampleFromTimes(t cpu.TimesStat) cpuSample {
	total := t.User + t.Nice + t.System + t.Idle + t.Iowait + t.Irq +
		t.Softirq + t.Steal + t.Guest + t.GuestNice
	return cpuSample{Total: total, Idle: t.Idle}
}

// parseStatLine parses the aggregate "cpu" line of /proc/stat.
func parseStatLine(line string) (cpuSample, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 || fields[0] != "cpu" {
		return cpuSample{}, fmt.Errorf("parse /proc/stat line %q: not an aggregate cpu line", line)
	}
	var s cpuSample
	for i, f := range fields[1:] {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return cpuSample{}, fmt.Errorf("parse /proc/stat field %d: %w", i+1, err)
		}
		s.Total += float64(n)
		if i == 3 {
			s.Idle = float64(n)
		}
	}
	return s, nil
}

// usageBetween returns the busy percentage between two samples taken in
// order. A zero total delta reports 0 rather than dividing by zero.
func usageBetween(first, second cpuSample) float64 {
	total := second.Total - first.Total
	if total <= 0 {
		return 0
	}
	idle := second.Idle - first.Idle
	usage := 100 * (total - idle) / total
	if usage < 0 {
		return 0
	}
	return usage
}

// cpuSampler reads counters twice across a fixed window.
type cpuSampler struct {
	read     func() (cpuSample, error)
	interval time.Duration
}

// usage blocks for the sampling interval. The reads must stay in order.
func (s cpuSampler) usage() (float64, error) {
	first, err := s.read()
	if err != nil {
		return 0, err
	}
	time.Sleep(s.interval)
	second, err := s.read()
	if err != nil {
		return 0, err
	}
	return usageBetween(first, second), nil
}

// readCPUSample prefers gopsutil and falls back to parsing /proc/stat
// under root directly.
func readCPUSample(root string) func() (cpuSample, error) {
	return func() (cpuSample, error) {
		if times, err := cpu.Times(false); err == nil && len(times) > 0 {
			return sampleFromTimes(times[0]), nil
		}
		data, err := os.ReadFile(filepath.Join(root, "proc", "stat"))
		if err != nil {
			return cpuSample{}, err
		}
		line, _, _ := strings.Cut(string(data), "\n")
		return parseStatLine(line)
	}
}

func cpuUsageResult(s cpuSampler) Result {
	usage, err := s.usage()
	if err != nil {
		return Fail(fmt.Errorf("cpu usage: %w", err))
	}
	return Value(fmt.Sprintf("%.0f%%", usage))
}
