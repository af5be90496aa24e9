// Where: apkbuild/internal/builder/errors.go
// What: Error types for build invocation outcomes.
// Why: Let callers tell a missing wrapper, a failed build, and an internal fault apart.
package builder

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrWrapperNotFound reports that the wrapper script is not a regular file.
	ErrWrapperNotFound = errors.New("build wrapper not found")

	errRunnerNil       = errors.New("command runner is nil")
	errFilesNil        = errors.New("file operations are nil")
	errProjectRequired = errors.New("project path is required")
)

// BuildFailedError reports a wrapper process that exited with a non-zero status.
type BuildFailedError struct {
	Command  string
	Args     []string
	ExitCode int
	Stderr   []byte
}

func (e *BuildFailedError) Error() string {
	cmdline := strings.Join(append([]string{e.Command}, e.Args...), " ")
	return fmt.Sprintf("Command '%s' returned non-zero exit status %d.", cmdline, e.ExitCode)
}

// InternalError wraps an operating-system failure that is neither a missing
// wrapper nor a build failure, such as a chmod or spawn error.
type InternalError struct {
	Op  string
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Outcome is the reported result of a build invocation.
type Outcome int

const (
	OutcomeSucceeded Outcome = iota
	OutcomeMissingWrapper
	OutcomeBuildFailed
	OutcomeInternalError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSucceeded:
		return "succeeded"
	case OutcomeMissingWrapper:
		return "missing-wrapper"
	case OutcomeBuildFailed:
		return "build-failed"
	default:
		return "internal-error"
	}
}

// Classify maps an Invoke error to its Outcome. Unrecognized errors are internal.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeSucceeded
	}
	if errors.Is(err, ErrWrapperNotFound) {
		return OutcomeMissingWrapper
	}
	var failed *BuildFailedError
	if errors.As(err, &failed) {
		return OutcomeBuildFailed
	}
	return OutcomeInternalError
}
