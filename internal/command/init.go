// Where: apkbuild/internal/command/init.go
// What: Init command handler.
// Why: Write a project config from a recognized preset.
package command

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/poruru-code/apkbuild/internal/builder"
	"github.com/poruru-code/apkbuild/internal/infra/config"
	"github.com/poruru-code/apkbuild/internal/infra/fileops"
	"github.com/poruru-code/apkbuild/internal/infra/interaction"
	"github.com/poruru-code/apkbuild/internal/infra/ui"
)

func runInit(cli CLI, deps Dependencies, out io.Writer) int {
	emojiEnabled, err := resolveEmojiEnabled(out, cli)
	if err != nil {
		return exitWithError(out, err)
	}
	console := newUI(out, emojiEnabled)
	interactive := deps.Interactive(out)

	project := cli.Init.ProjectPath
	if !fileops.DirExists(project) {
		return exitWithError(out, fmt.Errorf("%w: %s", errProjectDirAbsent, project))
	}

	path := strings.TrimSpace(cli.Config)
	if path == "" {
		path, err = config.ProjectConfigPath(project)
		if err != nil {
			return exitWithError(out, err)
		}
	}

	if fileops.FileExists(path) && !cli.Init.Force {
		if !interactive {
			return exitWithError(out, fmt.Errorf("%w: %s", errConfigExists, path))
		}
		overwrite, err := interaction.PromptYesNoWithIO(deps.In, out, fmt.Sprintf("%s exists. Overwrite?", path))
		if err != nil {
			return exitWithError(out, err)
		}
		if !overwrite {
			console.Info("Aborted.")
			return ExitFailure
		}
	}

	presetName, err := resolveInitPreset(cli.Init.Preset, interactive, deps.Prompter)
	if err != nil {
		return exitWithError(out, err)
	}
	preset, ok := config.LookupPreset(presetName)
	if !ok {
		return exitWithError(out, fmt.Errorf("%w: %s (available: %s)",
			errUnknownPreset, presetName, strings.Join(config.PresetNames(), ", ")))
	}

	cfg := config.DefaultProjectConfig()
	cfg.Preset = preset.Name
	if err := config.SaveProjectConfig(path, cfg); err != nil {
		return exitWithError(out, err)
	}

	console.Success(fmt.Sprintf("Wrote %s", path))
	wrapper := builder.Options{Wrapper: preset.Wrapper}.WithDefaults().Wrapper
	console.Block("🧩", "Preset", []ui.KeyValue{
		{Key: "Name", Value: preset.Name},
		{Key: "Wrapper", Value: wrapper},
		{Key: "Goal", Value: preset.Goal},
		{Key: "Artifacts", Value: preset.ArtifactDir},
	})
	if !fileops.FileExists(filepath.Join(project, wrapper)) {
		console.Warn(fmt.Sprintf("%s not found in %s yet", wrapper, project))
	}
	return ExitOK
}

func resolveInitPreset(flag string, interactive bool, prompter interaction.Prompter) (string, error) {
	if name := strings.TrimSpace(flag); name != "" {
		return name, nil
	}
	if !interactive {
		return config.DefaultPresetName, nil
	}
	presets := config.Presets()
	options := make([]interaction.SelectOption, 0, len(presets))
	for _, preset := range presets {
		options = append(options, interaction.SelectOption{
			Label: fmt.Sprintf("%s - %s", preset.Name, preset.Description),
			Value: preset.Name,
		})
	}
	selected, err := prompter.SelectValue("Build preset", options)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(selected) == "" {
		return config.DefaultPresetName, nil
	}
	return selected, nil
}
