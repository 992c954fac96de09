package sysinfo

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Usage is a used/total pair in bytes.
type Usage struct {
	Used  uint64
	Total uint64
}

// Mount is a mounted filesystem with its space usage.
type Mount struct {
	Target string
	Fstype string
	Usage
}

// Hardware is the set of host facts read through system libraries rather
// than external commands.
type Hardware interface {
	Hostname() (string, error)
	Kernel() (string, error)
	Platform() (string, error)
	Uptime() (time.Duration, error)
	CPUModel() (string, error)
	GPUs() ([]string, error)
	Memory() (Usage, error)
	Swap() (Usage, error)
	Mounts() ([]Mount, error)
}

// SystemHardware reads the running host via gopsutil and ghw.
type SystemHardware struct{}

var _ Hardware = SystemHardware{}

func (SystemHardware) Hostname() (string, error) {
	return os.Hostname()
}

func (SystemHardware) Kernel() (string, error) {
	return kernelRelease()
}

// Platform describes the OS from gopsutil, e.g. "ubuntu 22.04".
func (SystemHardware) Platform() (string, error) {
	info, err := host.Info()
	if err != nil {
		return "", fmt.Errorf("host info: %w", err)
	}
	return strings.TrimSpace(info.Platform + " " + info.PlatformVersion), nil
}

func (SystemHardware) Uptime() (time.Duration, error) {
	secs, err := host.Uptime()
	if err != nil {
		return 0, fmt.Errorf("host uptime: %w", err)
	}
	return time.Duration(secs) * time.Second, nil
}

func (SystemHardware) CPUModel() (string, error) {
	infos, err := cpu.Info()
	if err != nil {
		return "", fmt.Errorf("cpu info: %w", err)
	}
	for _, info := range infos {
		if name := strings.TrimSpace(info.ModelName); name != "" {
			return name, nil
		}
	}
	return "", fmt.Errorf("cpu info: %w", ErrNoData)
}

// GPUs names each graphics card as "<vendor> <product>".
func (SystemHardware) GPUs() ([]string, error) {
	gpu, err := ghw.GPU(ghw.WithDisableWarnings())
	if err != nil {
		return nil, fmt.Errorf("gpu info: %w", err)
	}
	var names []string
	for _, card := range gpu.GraphicsCards {
		if card == nil || card.DeviceInfo == nil {
			continue
		}
		var parts []string
		if v := card.DeviceInfo.Vendor; v != nil && v.Name != "" {
			parts = append(parts, v.Name)
		}
		if p := card.DeviceInfo.Product; p != nil && p.Name != "" {
			parts = append(parts, p.Name)
		}
		if len(parts) > 0 {
			names = append(names, strings.Join(parts, " "))
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("gpu info: %w", ErrNoData)
	}
	return names, nil
}

func (SystemHardware) Memory() (Usage, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return Usage{}, fmt.Errorf("virtual memory: %w", err)
	}
	return Usage{Used: vm.Used, Total: vm.Total}, nil
}

func (SystemHardware) Swap() (Usage, error) {
	sw, err := mem.SwapMemory()
	if err != nil {
		return Usage{}, fmt.Errorf("swap memory: %w", err)
	}
	return Usage{Used: sw.Used, Total: sw.Total}, nil
}

// Mounts lists physical mounts. A mount whose usage can't be read is skipped.
func (SystemHardware) Mounts() ([]Mount, error) {
	parts, err := disk.Partitions(false)
	if err != nil {
		return nil, fmt.Errorf("disk partitions: %w", err)
	}
	mounts := make([]Mount, 0, len(parts))
	for _, p := range parts {
		u, err := disk.Usage(p.Mountpoint)
		if err != nil {
			continue
		}
		mounts = append(mounts, Mount{
			Target: p.Mountpoint,
			Fstype: p.Fstype,
			Usage:  Usage{Used: u.Used, Total: u.Total},
		})
	}
	return mounts, nil
}
