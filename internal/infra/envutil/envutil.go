// Package envutil provides helpers for environment files passed to the build wrapper.
package envutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

var errEnvFileRequired = errors.New("env file path is required")

// ResolvePath returns path unchanged when absolute, otherwise joined with base.
func ResolvePath(base, path string) string {
	path = strings.TrimSpace(path)
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// ReadEnvFile parses a dotenv file into sorted KEY=VALUE entries.
// Example: "JAVA_HOME=/opt/jdk" for a file containing JAVA_HOME=/opt/jdk.
func ReadEnvFile(path string) ([]string, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errEnvFileRequired
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return Pairs(values), nil
}

// Pairs flattens a map into sorted KEY=VALUE entries.
func Pairs(values map[string]string) []string {
	if len(values) == 0 {
		return nil
	}
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, key+"="+values[key])
	}
	return out
}

// LoadDotEnv loads a .env file from dir into the process environment when present.
// Existing variables are not overridden.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
