//go:build !windows

// Package process provides OS-level cleanup for the renderer browser.
package process

import "syscall"

// KillProcessGroup kills a process and all its children by sending SIGKILL
// to the process group (negative PID).
func KillProcessGroup(pid int) {
	// Best-effort cleanup; error ignored as the launcher kill provides fallback
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
