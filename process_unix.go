//go:build !windows

package mdpress

import (
	"os/exec"
	"syscall"
)

// setProcessGroup places the command in its own process group so the whole
// browser process tree can be killed on timeout.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// killProcessGroup kills a process and all its children by sending SIGKILL
// to the process group (negative PID).
func killProcessGroup(pid int) {
	// Best-effort cleanup; the subsequent Wait reaps whatever remains
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
