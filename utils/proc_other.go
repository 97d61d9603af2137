//go:build !windows

package utils

import "os/exec"

func HideWindow(cmd *exec.Cmd) {}

func OpenPath(path string) error {
	return exec.Command("xdg-open", path).Start()
}
