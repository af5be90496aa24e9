package builder

import (
	"context"

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

type fakeFiles struct {
	regular    bool
	statErr    error
	chmodErr   error
	chmodCalls []string
}

func (f *fakeFiles) IsRegularFile(string) (bool, error) {
	return f.regular, f.statErr
}

func (f *fakeFiles) EnsureExecutable(path string) error {
	f.chmodCalls = append(f.chmodCalls, path)
	return f.chmodErr
}
