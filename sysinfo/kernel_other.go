//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package sysinfo

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/host"
)

func kernelRelease() (string, error) {
	v, err := host.KernelVersion()
	if err != nil {
		return "", fmt.Errorf("kernel version: %w", err)
	}
	return v, nil
}
