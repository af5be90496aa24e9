// Where: apkbuild/internal/infra/process/runner.go
// What: External command execution for wrapper builds.
// Why: Decouple build invocation from os/exec so tests can substitute a fake runner.
package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Command describes a child process to run.
type Command struct {
	Name string
	Args []string
	Dir  string
	// Env is appended to the current process environment.
	Env []string
}

// Result reports how a child process exited. Stdout and Stderr hold the tail
// of each stream.
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// CommandRunner defines the interface for executing external commands.
// A non-zero exit is reported through Result, not as an error.
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// ExecRunner is a concrete implementation of CommandRunner using os/exec.
// Child output is streamed to Stdout/Stderr (os.Stdout/os.Stderr when nil)
// unless Quiet is set.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
	Quiet  bool
	// TailBytes bounds the captured output per stream; zero means DefaultTailBytes.
	TailBytes int
}

// DefaultTailBytes is the amount of output retained per stream.
const DefaultTailBytes = 8 << 10

func (r ExecRunner) Run(ctx context.Context, command Command) (Result, error) {
	if command.Name == "" {
		return Result{}, errCommandNameRequired
	}
	if ctx == nil {
		ctx = context.Background()
	}

	limit := r.TailBytes
	if limit <= 0 {
		limit = DefaultTailBytes
	}
	stdoutTail := newTailBuffer(limit)
	stderrTail := newTailBuffer(limit)

	cmd := exec.CommandContext(ctx, command.Name, command.Args...)
	cmd.Dir = command.Dir
	if len(command.Env) > 0 {
		cmd.Env = append(os.Environ(), command.Env...)
	}
	cmd.Stdout = r.stream(r.Stdout, os.Stdout, stdoutTail)
	cmd.Stderr = r.stream(r.Stderr, os.Stderr, stderrTail)

	err := cmd.Run()
	result := Result{
		Stdout: stdoutTail.Bytes(),
		Stderr: stderrTail.Bytes(),
	}
	if err == nil {
		return result, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// ExitCode is -1 when the child was terminated by a signal.
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	return result, fmt.Errorf("run %s: %w", command.Name, err)
}

func (r ExecRunner) stream(out, fallback io.Writer, tail *tailBuffer) io.Writer {
	if r.Quiet {
		return tail
	}
	if out == nil {
		out = fallback
	}
	return io.MultiWriter(out, tail)
}
