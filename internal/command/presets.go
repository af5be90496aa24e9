package command

import (
	"fmt"
	"io"

	"github.com/poruru-code/apkbuild/internal/infra/config"
	"github.com/poruru-code/apkbuild/internal/infra/ui"
)

// runPresets lists the recognized presets, marking the default.
func runPresets(cli CLI, _ Dependencies, out io.Writer) int {
	emojiEnabled, err := resolveEmojiEnabled(out, cli)
	if err != nil {
		return exitWithError(out, err)
	}
	rows := make([]ui.KeyValue, 0, len(config.Presets()))
	for _, preset := range config.Presets() {
		value := fmt.Sprintf("%s -> %s", preset.Goal, preset.ArtifactDir)
		if preset.Name == config.DefaultPresetName {
			value += " (default)"
		}
		rows = append(rows, ui.KeyValue{Key: preset.Name, Value: value})
	}
	newUI(out, emojiEnabled).Block("🧩", "Presets", rows)
	return ExitOK
}
