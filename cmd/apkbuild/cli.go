// Where: apkbuild/cmd/apkbuild/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/poruru-code/apkbuild/internal/command"
	"github.com/poruru-code/apkbuild/internal/infra/fileops"
	"github.com/poruru-code/apkbuild/internal/infra/interaction"
)

// buildDependencies constructs the runtime dependencies for the CLI. The
// process runner is left nil so the build command can honor --quiet.
func buildDependencies() command.Dependencies {
	return command.Dependencies{
		Out:         os.Stdout,
		ErrOut:      os.Stderr,
		In:          os.Stdin,
		Prompter:    interaction.HuhPrompter{},
		Interactive: interaction.IsInteractive,
		Build: command.BuildDeps{
			Files: fileops.OS{},
		},
	}
}
