// Where: apkbuild/internal/builder/invoker.go
// What: Build invocation against a project's wrapper script.
// Why: Run one synchronous wrapper build and surface its outcome as an error value.
package builder

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/poruru-code/apkbuild/internal/infra/process"
)

// FileSystem is the subset of filesystem operations the invoker needs.
type FileSystem interface {
	IsRegularFile(path string) (bool, error)
	EnsureExecutable(path string) error
}

// Invoker locates a project's wrapper script, marks it executable and runs it
// with the configured goal. It holds no state between invocations.
type Invoker struct {
	Runner  process.CommandRunner
	Files   FileSystem
	Options Options
	// Env holds extra KEY=VALUE entries for the wrapper process.
	Env    []string
	Logger *slog.Logger
}

// Invoke runs a single build for req.
//
// It returns nil on success, an error matching ErrWrapperNotFound when the
// wrapper is absent (no process is spawned), a *BuildFailedError when the
// wrapper exits non-zero, and an *InternalError for any other failure.
func (i Invoker) Invoke(ctx context.Context, req BuildRequest) error {
	if i.Runner == nil {
		return &InternalError{Op: "invoke", Err: errRunnerNil}
	}
	if i.Files == nil {
		return &InternalError{Op: "invoke", Err: errFilesNil}
	}
	if strings.TrimSpace(req.ProjectPath) == "" {
		return &InternalError{Op: "invoke", Err: errProjectRequired}
	}

	opts := i.Options.WithDefaults()
	logger := i.logger()
	wrapper := req.WrapperPath(opts)

	ok, err := i.Files.IsRegularFile(wrapper)
	if err != nil {
		return &InternalError{Op: "stat " + wrapper, Err: err}
	}
	if !ok {
		logger.Debug("wrapper not found", "path", wrapper)
		return fmt.Errorf("%w: %s", ErrWrapperNotFound, wrapper)
	}

	if err := i.Files.EnsureExecutable(wrapper); err != nil {
		return &InternalError{Op: "chmod " + wrapper, Err: err}
	}
	logger.Debug("wrapper marked executable", "path", wrapper)

	// exec resolves a relative Path against Dir, so spawn the absolute path.
	executable, err := filepath.Abs(wrapper)
	if err != nil {
		return &InternalError{Op: "resolve " + wrapper, Err: err}
	}

	cmd := process.Command{
		Name: executable,
		Args: []string{opts.Goal},
		Dir:  req.ProjectPath,
		Env:  i.Env,
	}
	logger.Debug("starting build", "wrapper", executable, "goal", opts.Goal, "dir", req.ProjectPath)
	result, err := i.Runner.Run(ctx, cmd)
	if err != nil {
		return &InternalError{Op: "spawn " + wrapper, Err: err}
	}
	logger.Debug("build finished", "exit_code", result.ExitCode)

	if result.ExitCode != 0 {
		return &BuildFailedError{
			Command:  wrapper,
			Args:     []string{opts.Goal},
			ExitCode: result.ExitCode,
			Stderr:   result.Stderr,
		}
	}
	return nil
}

func (i Invoker) logger() *slog.Logger {
	if i.Logger != nil {
		return i.Logger
	}
	return slog.New(slog.DiscardHandler)
}
