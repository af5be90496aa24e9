// Where: apkbuild/internal/infra/ui/ui.go
// What: High-level output surface for command handlers.
// Why: Keep outcome lines verbatim while decorating auxiliary blocks.
package ui

import (
	"io"
	"strings"
)

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes high-level output helpers used by command handlers.
type UserInterface interface {
	Info(msg string)
	Warn(msg string)
	Success(msg string)
	Block(emoji, title string, rows []KeyValue)
	Excerpt(emoji, title string, text string)
}

// NewUI returns a UserInterface writing to out. Info lines are printed
// verbatim so outcome messages stay script-friendly.
func NewUI(out io.Writer, emojiEnabled bool) UserInterface {
	return consoleUI{console: NewWithEmoji(out, emojiEnabled)}
}

type consoleUI struct {
	console *Console
}

func (c consoleUI) Info(msg string) {
	c.console.Info(msg)
}

func (c consoleUI) Warn(msg string) {
	c.console.Warn(msg)
}

func (c consoleUI) Success(msg string) {
	c.console.Success(msg)
}

func (c consoleUI) Block(emoji, title string, rows []KeyValue) {
	c.console.BlockStart(emoji, title)
	for _, kv := range rows {
		c.console.Item(kv.Key, kv.Value)
	}
	c.console.BlockEnd()
}

// Excerpt prints text as an indented block. Empty text prints nothing.
func (c consoleUI) Excerpt(emoji, title string, text string) {
	text = strings.TrimRight(text, "\r\n")
	if strings.TrimSpace(text) == "" {
		return
	}
	c.console.BlockStart(emoji, title)
	for _, line := range strings.Split(text, "\n") {
		c.console.ItemPlain(strings.TrimRight(line, "\r"))
	}
	c.console.BlockEnd()
}
