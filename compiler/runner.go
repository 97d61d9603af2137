package compiler

import (
	"bytes"
	"errors"
	"os/exec"

	"universal-compiler/app/utils"
)

// Command is one external tool invocation. Dir is empty except for
// toolchains that must run from a particular working directory.
type Command struct {
	Path string
	Args []string
	Dir  string
}

// Runner executes a command without a visible console window and returns
// its merged stdout+stderr. A non-nil error means the process could not be
// started at all; a tool that ran and failed reports through exitCode.
type Runner interface {
	Run(cmd Command) (output string, exitCode int, err error)
}

type execRunner struct{}

func (execRunner) Run(c Command) (string, int, error) {
	cmd := exec.Command(c.Path, c.Args...)
	cmd.Dir = c.Dir
	utils.HideWindow(cmd)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return buf.String(), exitErr.ExitCode(), nil
		}
		return buf.String(), 0, err
	}
	return buf.String(), 0, nil
}
