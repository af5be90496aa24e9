// Where: apkbuild/internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep the tool name and file names in one place.
package meta

const (
	// Project Identity
	AppName   = "apkbuild"
	Slug      = "apkbuild"
	EnvPrefix = "APKBUILD"

	// Project Layout
	ConfigFileName = ".apkbuild.yaml"
)
