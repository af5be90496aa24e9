// Where: apkbuild/internal/infra/fileops/file_ops.go
// What: Filesystem operations for wrapper discovery, permissions and config files.
// Why: Keep OS calls behind small helpers that report errors instead of panicking.
package fileops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// ExecutableBits mirrors `chmod +x` under the common 022 umask.
const ExecutableBits fs.FileMode = 0o111

var (
	stat  = os.Stat
	chmod = os.Chmod
	goos  = runtime.GOOS
)

// OS implements the file operations used by the build invoker against the real filesystem.
type OS struct{}

// IsRegularFile reports whether path exists and is a regular file after
// following symlinks. A missing path is not an error.
func (OS) IsRegularFile(path string) (bool, error) {
	info, err := stat(path)
	if err != nil {
		if IsMissing(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	return info.Mode().IsRegular(), nil
}

// EnsureExecutable adds the execute bits to path, whatever its current mode.
// Platforms without a POSIX permission model are left untouched.
func (OS) EnsureExecutable(path string) error {
	if goos == "windows" {
		return nil
	}
	info, err := stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := chmod(path, info.Mode().Perm()|ExecutableBits); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	return nil
}

// IsMissing reports whether err means path does not exist, including the case
// where a parent component is a regular file rather than a directory.
func IsMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscallNotDir)
}

// EnsureDir creates path and any missing parents.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// WriteConfigFile writes content to path, creating parent directories.
func WriteConfigFile(path, content string) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// FileExists reports whether path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
