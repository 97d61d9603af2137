//go:build windows

package utils

import (
	"os/exec"
	"syscall"
)

const createNoWindow = 0x08000000

// HideWindow prevents the spawned process from opening a visible console.
func HideWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: createNoWindow,
	}
}

func OpenPath(path string) error {
	cmd := exec.Command("cmd", "/c", "start", "", path)
	HideWindow(cmd)
	return cmd.Start()
}
