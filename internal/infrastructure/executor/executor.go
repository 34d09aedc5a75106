// Package executor runs translated commands on the host.
package executor

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/doeshing/shellbridge/internal/domain"
	"github.com/doeshing/shellbridge/internal/ports"
)

// LocalExecutor runs commands through a platform-appropriate shell.
type LocalExecutor struct {
	shellOverride string
}

// NewLocalExecutor builds an executor. A non-empty shell other than
// "auto" overrides shell auto-selection.
func NewLocalExecutor(shell string) *LocalExecutor {
	if shell == "auto" {
		shell = ""
	}
	return &LocalExecutor{shellOverride: shell}
}

// Execute implements ports.CommandExecutor.
func (e *LocalExecutor) Execute(ctx context.Context, command string, shell domain.ShellIdentity) (domain.ExecutionResult, error) {
	name, args := e.invocation(shell, command)
	c := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	start := time.Now()
	err := c.Run()

	result := domain.ExecutionResult{
		Ran:        err == nil,
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		DurationMS: time.Since(start).Milliseconds(),
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		result.ExitCode = exitErr.ExitCode()
	}
	if err != nil {
		result.Err = err
		return result, err
	}
	return result, nil
}

// invocation picks the shell binary and argument shape for the
// detected host shell.
func (e *LocalExecutor) invocation(shell domain.ShellIdentity, command string) (string, []string) {
	if e.shellOverride != "" {
		return e.shellOverride, []string{"-c", command}
	}
	switch shell.Name {
	case domain.ShellPowerShell:
		return "powershell", []string{"-NoProfile", "-Command", command}
	case domain.ShellCmd:
		return "cmd", []string{"/C", command}
	}
	if shell.Raw != "" && shell.Name != domain.ShellUnknown {
		return shell.Raw, []string{"-c", command}
	}
	return "/bin/sh", []string{"-c", command}
}

var _ ports.CommandExecutor = (*LocalExecutor)(nil)
