//go:build linux || darwin || freebsd || netbsd || openbsd

package sysinfo

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// kernelRelease returns the uname release string, e.g. "6.5.0-14-generic".
func kernelRelease() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", fmt.Errorf("uname: %w", err)
	}
	release := unix.ByteSliceToString(uts.Release[:])
	if release == "" {
		return "", fmt.Errorf("uname: %w", ErrNoData)
	}
	return release, nil
}
