//go:build windows

package privilege

import (
	"syscall"
	"unsafe"
)

var (
	kernel32                = syscall.NewLazyDLL("kernel32.dll")
	advapi32                = syscall.NewLazyDLL("advapi32.dll")
	procOpenToken           = advapi32.NewProc("OpenProcessToken")
	procGetTokenInformation = advapi32.NewProc("GetTokenInformation")
	procGetCurrentProcess   = kernel32.NewProc("GetCurrentProcess")
)

const (
	tokenQuery     = 0x0008
	tokenElevation = 20
)

type tokenElevationInfo struct {
	TokenIsElevated uint32
}

// IsElevated reports whether the process token carries administrator
// elevation.
func IsElevated() bool {
	var token syscall.Token
	var elevated tokenElevationInfo
	var retLen uint32

	proc, _, _ := procGetCurrentProcess.Call()
	if proc == 0 {
		return false
	}

	ret, _, _ := procOpenToken.Call(
		proc,
		tokenQuery,
		uintptr(unsafe.Pointer(&token)),
	)
	if ret == 0 {
		return false
	}
	defer token.Close()

	ret, _, _ = procGetTokenInformation.Call(
		uintptr(token),
		tokenElevation,
		uintptr(unsafe.Pointer(&elevated)),
		unsafe.Sizeof(elevated),
		uintptr(unsafe.Pointer(&retLen)),
	)
	if ret == 0 {
		return false
	}

	return elevated.TokenIsElevated != 0
}
