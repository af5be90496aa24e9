package envutil

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestReadEnvFileSortsPairs(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.build")
	content := "ORG_GRADLE_PROJECT_flavor=demo\n# comment\nJAVA_HOME=/opt/jdk\nQUOTED=\"a b\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	got, err := ReadEnvFile(path)
	if err != nil {
		t.Fatalf("ReadEnvFile() error = %v", err)
	}
	want := []string{"JAVA_HOME=/opt/jdk", "ORG_GRADLE_PROJECT_flavor=demo", "QUOTED=a b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("pairs = %#v, want %#v", got, want)
	}
}

func TestReadEnvFileErrors(t *testing.T) {
	if _, err := ReadEnvFile(" "); err != errEnvFileRequired {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := ReadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("expected error for missing env file")
	}
}

func TestResolvePath(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "x.env")
	if got := ResolvePath("/work/app", abs); got != abs {
		t.Fatalf("absolute path changed: %s", got)
	}
	if got := ResolvePath("/work/app", ".env.build"); got != filepath.Join("/work/app", ".env.build") {
		t.Fatalf("relative path = %s", got)
	}
	if got := ResolvePath("/work/app", ""); got != "" {
		t.Fatalf("empty path = %s", got)
	}
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("APKBUILD_A=file\nAPKBUILD_B=file\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Setenv("APKBUILD_A", "process")
	t.Setenv("APKBUILD_B", "")
	os.Unsetenv("APKBUILD_B")

	if err := LoadDotEnv(dir); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := os.Getenv("APKBUILD_A"); got != "process" {
		t.Fatalf("APKBUILD_A = %q", got)
	}
	if got := os.Getenv("APKBUILD_B"); got != "file" {
		t.Fatalf("APKBUILD_B = %q", got)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := LoadDotEnv(t.TempDir()); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
}
