// Where: apkbuild/internal/infra/config/project.go
// What: Project config load/save and preset resolution.
// Why: Manage <project>/.apkbuild.yaml consistently.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru-code/apkbuild/internal/infra/fileops"
	"github.com/poruru-code/apkbuild/internal/meta"
	"gopkg.in/yaml.v3"
)

var (
	errInvalidConfig   = errors.New("invalid project config")
	errUnknownPreset   = errors.New("unknown preset")
	errProjectRequired = errors.New("project root is required")
)

// ProjectConfig represents the <project>/.apkbuild.yaml file.
type ProjectConfig struct {
	Version      int      `yaml:"version"`
	Preset       string   `yaml:"preset,omitempty"`
	Wrapper      string   `yaml:"wrapper,omitempty"`
	Goal         string   `yaml:"goal,omitempty"`
	ArtifactDir  string   `yaml:"artifact_dir,omitempty"`
	ArtifactName string   `yaml:"artifact_name,omitempty"`
	ProjectKind  string   `yaml:"project_kind,omitempty"`
	EnvFile      string   `yaml:"env_file,omitempty"`
	Messages     Messages `yaml:"messages,omitempty"`
}

// Messages holds optional report templates overriding the defaults.
type Messages struct {
	MissingWrapper string `yaml:"missing_wrapper,omitempty"`
	Success        string `yaml:"success,omitempty"`
	Failure        string `yaml:"failure,omitempty"`
	InternalError  string `yaml:"internal_error,omitempty"`
}

// Settings is a ProjectConfig with its preset applied.
type Settings struct {
	Preset       string
	Wrapper      string
	Goal         string
	ArtifactDir  string
	ArtifactName string
	ProjectKind  string
	EnvFile      string
	Messages     Messages
}

// DefaultProjectConfig returns an initialized ProjectConfig with version set.
func DefaultProjectConfig() ProjectConfig {
	return ProjectConfig{Version: 1}
}

// ProjectConfigPath returns the path to the project config file.
func ProjectConfigPath(projectRoot string) (string, error) {
	root := strings.TrimSpace(projectRoot)
	if root == "" {
		return "", errProjectRequired
	}
	return filepath.Join(root, meta.ConfigFileName), nil
}

// LoadProjectConfig reads, validates and decodes the config at path.
// A missing file, or a parent that is not a directory, yields
// DefaultProjectConfig unless required is set.
func LoadProjectConfig(path string, required bool) (ProjectConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if fileops.IsMissing(err) && !required {
			return DefaultProjectConfig(), nil
		}
		return ProjectConfig{}, fmt.Errorf("read project config: %w", err)
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		return DefaultProjectConfig(), nil
	}

	if err := validateProjectConfig(payload); err != nil {
		return ProjectConfig{}, fmt.Errorf("%s: %w", path, err)
	}

	cfg := DefaultProjectConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(payload))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return ProjectConfig{}, fmt.Errorf("decode project config: %w", err)
	}
	return cfg, nil
}

// SaveProjectConfig writes cfg to path.
func SaveProjectConfig(path string, cfg ProjectConfig) error {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode project config: %w", err)
	}
	if err := fileops.WriteConfigFile(path, string(payload)); err != nil {
		return fmt.Errorf("write project config: %w", err)
	}
	return nil
}

// Resolve applies the named (or default) preset and then the explicit fields.
func (c ProjectConfig) Resolve() (Settings, error) {
	name := strings.TrimSpace(c.Preset)
	if name == "" {
		name = DefaultPresetName
	}
	preset, ok := LookupPreset(name)
	if !ok {
		return Settings{}, fmt.Errorf("%w: %s", errUnknownPreset, name)
	}

	return Settings{
		Preset:       preset.Name,
		Wrapper:      firstNonEmpty(c.Wrapper, preset.Wrapper),
		Goal:         firstNonEmpty(c.Goal, preset.Goal),
		ArtifactDir:  firstNonEmpty(c.ArtifactDir, preset.ArtifactDir),
		ArtifactName: firstNonEmpty(c.ArtifactName, preset.ArtifactName),
		ProjectKind:  firstNonEmpty(c.ProjectKind, preset.ProjectKind),
		EnvFile:      strings.TrimSpace(c.EnvFile),
		Messages:     c.Messages,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
