// Where: apkbuild/internal/builder/invoker_test.go
// What: Tests for wrapper build invocation.
// Why: Pin spawn counts, arguments, working directory and outcome classification.
package builder

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"

	"github.com/poruru-code/apkbuild/internal/infra/fileops"
	"github.com/poruru-code/apkbuild/internal/infra/process"
)

func writeWrapper(t *testing.T, dir string, perm os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, DefaultOptions().Wrapper)
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), perm); err != nil {
		t.Fatalf("write wrapper: %v", err)
	}
	return path
}

func TestInvokeMissingWrapperDoesNotSpawn(t *testing.T) {
	project := t.TempDir()
	runner := &fakeRunner{}
	invoker := Invoker{Runner: runner, Files: fileops.OS{}}

	err := invoker.Invoke(t.Context(), BuildRequest{ProjectPath: project})
	if !errors.Is(err, ErrWrapperNotFound) {
		t.Fatalf("expected ErrWrapperNotFound, got %v", err)
	}
	if Classify(err) != OutcomeMissingWrapper {
		t.Fatalf("outcome = %s", Classify(err))
	}
	if len(runner.calls) != 0 {
		t.Fatalf("expected no spawn, got %d", len(runner.calls))
	}
}

func TestInvokeDirectoryWrapperIsMissing(t *testing.T) {
	project := t.TempDir()
	if err := os.Mkdir(filepath.Join(project, DefaultOptions().Wrapper), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	runner := &fakeRunner{}
	err := Invoker{Runner: runner, Files: fileops.OS{}}.Invoke(t.Context(), BuildRequest{ProjectPath: project})
	if Classify(err) != OutcomeMissingWrapper {
		t.Fatalf("expected missing wrapper, got %v", err)
	}
	if len(runner.calls) != 0 {
		t.Fatalf("expected no spawn, got %d", len(runner.calls))
	}
}

func TestInvokeSuccessSpawnsOnceWithGoal(t *testing.T) {
	project := t.TempDir()
	wrapper := writeWrapper(t, project, 0o644)
	runner := &fakeRunner{}
	invoker := Invoker{Runner: runner, Files: fileops.OS{}, Env: []string{"JAVA_HOME=/opt/jdk"}}

	if err := invoker.Invoke(t.Context(), BuildRequest{ProjectPath: project}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(runner.calls) != 1 {
		t.Fatalf("expected one spawn, got %d", len(runner.calls))
	}
	call := runner.calls[0]
	if call.Name != wrapper {
		t.Fatalf("unexpected command: %s", call.Name)
	}
	if !reflect.DeepEqual(call.Args, []string{"assembleDebug"}) {
		t.Fatalf("unexpected args: %v", call.Args)
	}
	if call.Dir != project {
		t.Fatalf("unexpected working dir: %s", call.Dir)
	}
	if !reflect.DeepEqual(call.Env, []string{"JAVA_HOME=/opt/jdk"}) {
		t.Fatalf("unexpected env: %v", call.Env)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(wrapper)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if info.Mode().Perm()&0o100 == 0 {
			t.Fatalf("expected execute bit, got %v", info.Mode())
		}
	}
}

func TestInvokeSpawnsAbsoluteWrapperForRelativeProject(t *testing.T) {
	root := t.TempDir()
	project := filepath.Join(root, "proj")
	if err := os.Mkdir(project, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeWrapper(t, project, 0o755)
	t.Chdir(root)

	runner := &fakeRunner{}
	if err := (Invoker{Runner: runner, Files: fileops.OS{}}).Invoke(t.Context(), BuildRequest{ProjectPath: "proj"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	call := runner.calls[0]
	if !filepath.IsAbs(call.Name) {
		t.Fatalf("expected absolute wrapper path, got %s", call.Name)
	}
	if call.Dir != "proj" {
		t.Fatalf("working dir = %s, want proj", call.Dir)
	}
}

func TestInvokeNonZeroExitIsBuildFailure(t *testing.T) {
	project := t.TempDir()
	wrapper := writeWrapper(t, project, 0o755)
	runner := &fakeRunner{result: process.Result{ExitCode: 1, Stderr: []byte("error: task failed\n")}}

	err := Invoker{Runner: runner, Files: fileops.OS{}}.Invoke(t.Context(), BuildRequest{ProjectPath: project})
	var failed *BuildFailedError
	if !errors.As(err, &failed) {
		t.Fatalf("expected BuildFailedError, got %v", err)
	}
	if failed.ExitCode != 1 {
		t.Fatalf("exit code = %d", failed.ExitCode)
	}
	if string(failed.Stderr) != "error: task failed\n" {
		t.Fatalf("stderr = %q", failed.Stderr)
	}
	want := "Command '" + wrapper + " assembleDebug' returned non-zero exit status 1."
	if err.Error() != want {
		t.Fatalf("error = %q, want %q", err.Error(), want)
	}
	if len(runner.calls) != 1 {
		t.Fatalf("expected one spawn, got %d", len(runner.calls))
	}
	if Classify(err) != OutcomeBuildFailed {
		t.Fatalf("outcome = %s", Classify(err))
	}
}

func TestInvokeIsIdempotent(t *testing.T) {
	project := t.TempDir()
	writeWrapper(t, project, 0o755)

	for _, exitCode := range []int{0, 2} {
		runner := &fakeRunner{result: process.Result{ExitCode: exitCode}}
		invoker := Invoker{Runner: runner, Files: fileops.OS{}}
		first := Classify(invoker.Invoke(t.Context(), BuildRequest{ProjectPath: project}))
		second := Classify(invoker.Invoke(t.Context(), BuildRequest{ProjectPath: project}))
		if first != second {
			t.Fatalf("outcomes differ for exit %d: %s vs %s", exitCode, first, second)
		}
		if len(runner.calls) != 2 || !reflect.DeepEqual(runner.calls[0], runner.calls[1]) {
			t.Fatalf("expected identical spawns, got %#v", runner.calls)
		}
	}
}

func TestInvokeInternalErrors(t *testing.T) {
	tests := []struct {
		name      string
		files     *fakeFiles
		runnerErr error
		wantOp    string
		wantSpawn int
	}{
		{
			name:   "stat failure",
			files:  &fakeFiles{statErr: fs.ErrPermission},
			wantOp: "stat ",
		},
		{
			name:   "chmod failure",
			files:  &fakeFiles{regular: true, chmodErr: fs.ErrPermission},
			wantOp: "chmod ",
		},
		{
			name:      "spawn failure",
			files:     &fakeFiles{regular: true},
			runnerErr: errors.New("exec format error"),
			wantOp:    "spawn ",
			wantSpawn: 1,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			runner := &fakeRunner{err: tc.runnerErr}
			err := Invoker{Runner: runner, Files: tc.files}.Invoke(t.Context(), BuildRequest{ProjectPath: "/tmp/proj"})
			var internal *InternalError
			if !errors.As(err, &internal) {
				t.Fatalf("expected InternalError, got %v", err)
			}
			if !strings.HasPrefix(internal.Op, tc.wantOp) {
				t.Fatalf("op = %q, want prefix %q", internal.Op, tc.wantOp)
			}
			if Classify(err) != OutcomeInternalError {
				t.Fatalf("outcome = %s", Classify(err))
			}
			if len(runner.calls) != tc.wantSpawn {
				t.Fatalf("spawns = %d, want %d", len(runner.calls), tc.wantSpawn)
			}
		})
	}
}

func TestInvokeCustomOptions(t *testing.T) {
	files := &fakeFiles{regular: true}
	runner := &fakeRunner{}
	invoker := Invoker{
		Runner:  runner,
		Files:   files,
		Options: Options{Wrapper: "mvnw", Goal: "package"},
	}
	if err := invoker.Invoke(t.Context(), BuildRequest{ProjectPath: "/tmp/proj"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(files.chmodCalls, []string{filepath.Join("/tmp/proj", "mvnw")}) {
		t.Fatalf("unexpected chmod calls: %v", files.chmodCalls)
	}
	if !reflect.DeepEqual(runner.calls[0].Args, []string{"package"}) {
		t.Fatalf("unexpected args: %v", runner.calls[0].Args)
	}
}

func TestInvokeRequiresDependencies(t *testing.T) {
	req := BuildRequest{ProjectPath: "/tmp/proj"}
	if err := (Invoker{Files: &fakeFiles{}}).Invoke(t.Context(), req); !errors.Is(err, errRunnerNil) {
		t.Fatalf("expected runner error, got %v", err)
	}
	if err := (Invoker{Runner: &fakeRunner{}}).Invoke(t.Context(), req); !errors.Is(err, errFilesNil) {
		t.Fatalf("expected files error, got %v", err)
	}
	err := (Invoker{Runner: &fakeRunner{}, Files: &fakeFiles{}}).Invoke(t.Context(), BuildRequest{})
	if !errors.Is(err, errProjectRequired) {
		t.Fatalf("expected project error, got %v", err)
	}
}

func TestDefaultWrapperFor(t *testing.T) {
	if got := defaultWrapperFor("windows"); got != "gradlew.bat" {
		t.Fatalf("windows wrapper = %q", got)
	}
	if got := defaultWrapperFor("linux"); got != "gradlew" {
		t.Fatalf("linux wrapper = %q", got)
	}
}

func TestClassifyWrappedErrors(t *testing.T) {
	failed := &BuildFailedError{Command: "gradlew", Args: []string{"assembleDebug"}, ExitCode: 1}
	if Classify(errors.Join(errors.New("ctx"), failed)) != OutcomeBuildFailed {
		t.Fatal("expected wrapped build failure to classify as build failed")
	}
	if Classify(errors.New("boom")) != OutcomeInternalError {
		t.Fatal("expected unknown error to classify as internal")
	}
	if Classify(nil) != OutcomeSucceeded {
		t.Fatal("expected nil to classify as succeeded")
	}
}
