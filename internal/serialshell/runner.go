package serialshell

import (
	"context"
	"errors"
	"os"
	"os/exec"
)

const (
	shellPathConstant        = "/bin/sh"
	shellCommandFlagConstant = "-c"
)

// ShellCommandRunner is the os/exec-backed execution primitive. It hands the
// command text to /bin/sh, inherits the caller's standard streams, and blocks
// until the shell returns. The augmented launch syntax produced by
// SerializedLauncher assumes a POSIX shell, so the shell path is fixed.
type ShellCommandRunner struct {
	shellPath string
}

// NewShellCommandRunner constructs a runner backed by the platform shell.
func NewShellCommandRunner() *ShellCommandRunner {
	return &ShellCommandRunner{shellPath: shellPathConstant}
}

// Run executes commandText through the shell and reports the shell's exit
// status. A status is returned with a nil error even when it is non-zero;
// errors are reserved for failures to invoke the shell at all.
func (runner *ShellCommandRunner) Run(executionContext context.Context, commandText string) (int, error) {
	executable := exec.CommandContext(executionContext, runner.shellPath, shellCommandFlagConstant, commandText)
	executable.Stdin = os.Stdin
	executable.Stdout = os.Stdout
	executable.Stderr = os.Stderr

	runError := executable.Run()
	if runError != nil {
		exitError := &exec.ExitError{}
		if errors.As(runError, &exitError) {
			return exitError.ExitCode(), nil
		}
		return StatusSupervisionFailed, runError
	}

	return 0, nil
}
