// Where: apkbuild/internal/builder/options.go
// What: Wrapper/goal options for a build invocation.
// Why: Keep the wrapper-script convention configurable with Android defaults.
package builder

import (
	"path/filepath"
	"runtime"
	"strings"
)

const (
	// DefaultWrapper is the Gradle wrapper script name on POSIX platforms.
	DefaultWrapper = "gradlew"
	// DefaultWindowsWrapper is the Gradle wrapper script name on Windows.
	DefaultWindowsWrapper = "gradlew.bat"
	// DefaultGoal requests a debug-variant package.
	DefaultGoal = "assembleDebug"
	// DefaultArtifactDir is where Gradle places debug APKs by convention.
	DefaultArtifactDir = "app/build/outputs/apk/debug/"
)

// Options selects the wrapper script, the build goal passed to it, and the
// artifact directory reported after a successful build.
type Options struct {
	Wrapper     string
	Goal        string
	ArtifactDir string
}

// DefaultOptions returns the Android debug-build convention for the current platform.
func DefaultOptions() Options {
	return Options{
		Wrapper:     defaultWrapperFor(runtime.GOOS),
		Goal:        DefaultGoal,
		ArtifactDir: DefaultArtifactDir,
	}
}

func defaultWrapperFor(goos string) string {
	if goos == "windows" {
		return DefaultWindowsWrapper
	}
	return DefaultWrapper
}

// WithDefaults fills empty fields from DefaultOptions.
func (o Options) WithDefaults() Options {
	defaults := DefaultOptions()
	if strings.TrimSpace(o.Wrapper) == "" {
		o.Wrapper = defaults.Wrapper
	}
	if strings.TrimSpace(o.Goal) == "" {
		o.Goal = defaults.Goal
	}
	if strings.TrimSpace(o.ArtifactDir) == "" {
		o.ArtifactDir = defaults.ArtifactDir
	}
	return o
}

// BuildRequest identifies the project to build for a single invocation.
type BuildRequest struct {
	ProjectPath string
}

// WrapperPath joins the project path with the wrapper script name.
func (r BuildRequest) WrapperPath(opts Options) string {
	return filepath.Join(r.ProjectPath, opts.WithDefaults().Wrapper)
}
