package command

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/poruru-code/apkbuild/internal/builder"
	"github.com/poruru-code/apkbuild/internal/infra/interaction"
	"github.com/poruru-code/apkbuild/internal/infra/process"
)

type fakeRunner struct {
	calls  []process.Command
	result process.Result
	err    error
}

func (f *fakeRunner) Run(_ context.Context, cmd process.Command) (process.Result, error) {
	f.calls = append(f.calls, cmd)
	return f.result, f.err
}

type fakePrompter struct {
	input       string
	inputErr    error
	selectValue string
	inputCalls  int
	selectCalls int
}

func (f *fakePrompter) Input(string, []string) (string, error) {
	f.inputCalls++
	return f.input, f.inputErr
}

func (f *fakePrompter) SelectValue(string, []interaction.SelectOption) (string, error) {
	f.selectCalls++
	return f.selectValue, nil
}

func defaultWrapper() string {
	return builder.DefaultOptions().Wrapper
}

func writeWrapper(t *testing.T, project string) string {
	t.Helper()
	path := filepath.Join(project, defaultWrapper())
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o644); err != nil {
		t.Fatalf("write wrapper: %v", err)
	}
	return path
}

func writeProjectFile(t *testing.T, project, name, content string) string {
	t.Helper()
	path := filepath.Join(project, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}


