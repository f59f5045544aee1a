//go:build windows

package mdpress

import (
	"os/exec"
	"strconv"
)

// setProcessGroup is a no-op on Windows; taskkill /T handles the tree.
func setProcessGroup(cmd *exec.Cmd) {}

// killProcessGroup kills a process and all its children using taskkill.
// /F = force kill, /T = terminate child processes (tree kill).
func killProcessGroup(pid int) {
	// Best-effort cleanup; the subsequent Wait reaps whatever remains
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
