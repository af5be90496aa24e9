// Where: apkbuild/internal/command/errors.go
// What: Shared command errors and exit codes.
// Why: Keep the exit-code policy explicit for scripting.
package command

import "errors"

// Exit codes. A missing wrapper and internal faults get their own codes so
// scripts can tell them apart from an ordinary build failure.
const (
	ExitOK             = 0
	ExitFailure        = 1
	ExitMissingWrapper = 2
	ExitInternalError  = 3
)

var (
	errUnknownCommand   = errors.New("unknown command")
	errEmojiConflict    = errors.New("--emoji and --no-emoji cannot be used together")
	errConfigExists     = errors.New("config already exists (use --force to overwrite)")
	errUnknownPreset    = errors.New("unknown preset")
	errProjectDirAbsent = errors.New("project directory does not exist")
)
