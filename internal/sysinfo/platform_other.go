//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package sysinfo

import "runtime"

// Platform describes the OS as GOOS-GOARCH
func Platform() string {
	return runtime.GOOS + "-" + runtime.GOARCH
}
