// Where: apkbuild/internal/command/branding.go
// What: CLI naming for usage hints.
// Why: Keep user-facing command names consistent when the binary is renamed.
package command

import (
	"os"
	"strings"

	"github.com/poruru-code/apkbuild/internal/meta"
)

func cliName() string {
	name := strings.TrimSpace(os.Getenv(meta.EnvPrefix + "_CLI_CMD"))
	if name == "" {
		name = strings.TrimSpace(meta.Slug)
	}
	return name
}
