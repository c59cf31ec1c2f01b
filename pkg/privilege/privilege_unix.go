//go:build !windows

// Package privilege answers whether the current process may touch the
// EC register file. Writing EC registers needs root on Linux.
package privilege

import "golang.org/x/sys/unix"

// IsElevated reports whether the process runs with root privileges.
func IsElevated() bool {
	return unix.Geteuid() == 0
}
