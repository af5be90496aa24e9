// Where: apkbuild/cmd/apkbuild/main.go
// What: CLI entrypoint.
// Why: Execute apkbuild commands with configured dependencies.
package main

import (
	"os"

	"github.com/poruru-code/apkbuild/internal/command"
)

func main() {
	os.Exit(command.Run(os.Args[1:], buildDependencies()))
}
