//go:build linux || darwin || freebsd || netbsd || openbsd

package sysinfo

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// Platform describes the OS as <sysname>-<release>-<machine>, for example
// Linux-6.1.0-18-amd64-x86_64. It falls back to GOOS-GOARCH if uname fails.
func Platform() string {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return runtime.GOOS + "-" + runtime.GOARCH
	}
	return unix.ByteSliceToString(u.Sysname[:]) + "-" +
		unix.ByteSliceToString(u.Release[:]) + "-" +
		unix.ByteSliceToString(u.Machine[:])
}
