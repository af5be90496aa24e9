// Where: apkbuild/internal/command/output.go
// What: Output and logging helpers for command adapters.
// Why: Centralize UserInterface construction, emoji resolution and slog setup.
package command

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/poruru-code/apkbuild/internal/infra/interaction"
	"github.com/poruru-code/apkbuild/internal/infra/ui"
)

func newUI(out io.Writer, emojiEnabled bool) ui.UserInterface {
	return ui.NewUI(out, emojiEnabled)
}

func resolveEmojiEnabled(out io.Writer, cli CLI) (bool, error) {
	if cli.Emoji && cli.NoEmoji {
		return false, errEmojiConflict
	}
	if cli.Emoji {
		return true, nil
	}
	if cli.NoEmoji {
		return false, nil
	}
	if strings.TrimSpace(os.Getenv("NO_EMOJI")) != "" {
		return false, nil
	}
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	if term == "dumb" {
		return false, nil
	}
	if file, ok := out.(*os.File); ok {
		return interaction.IsTerminal(file), nil
	}
	return false, nil
}

// newLogger returns a text logger on w. Debug records are emitted only when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
