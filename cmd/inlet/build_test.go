package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeCrate(t *testing.T, dir, name, body string) {
	t.Helper()
	manifest := "[package]\nname = \"" + name + "\"\n"
	if err := os.WriteFile(filepath.Join(dir, "Inlet.toml"), []byte(manifest), 0o600); err != nil {
		t.Fatalf("WriteFile(manifest) error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "lib.inlet"), []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile(lib.inlet) error = %v", err)
	}
}

func TestBuildCleanCrateExitsWithoutError(t *testing.T) {
	dir := t.TempDir()
	writeCrate(t, dir, "example", "fn f() -> {*} { return 1; }")

	if err := buildCmd.Flags().Set("path", dir); err != nil {
		t.Fatalf("Set(path) error = %v", err)
	}
	if err := runBuild(buildCmd, nil); err != nil {
		t.Fatalf("runBuild() error = %v", err)
	}
}

func TestBuildCrateWithErrorsExitsWithCode1(t *testing.T) {
	dir := t.TempDir()
	writeCrate(t, dir, "example", "fn f() -> {other} { return 1; }")

	if err := buildCmd.Flags().Set("path", dir); err != nil {
		t.Fatalf("Set(path) error = %v", err)
	}
	err := runBuild(buildCmd, nil)
	if err == nil {
		t.Fatalf("expected an error for a crate with a SemaReturnOriginMismatch")
	}
	var ec *exitCodeError
	if !errors.As(err, &ec) {
		t.Fatalf("expected an *exitCodeError, got %T: %v", err, err)
	}
	if ec.code != 1 {
		t.Fatalf("expected exit code 1, got %d", ec.code)
	}
}

func TestBuildMissingManifestExitsWithCode2(t *testing.T) {
	dir := t.TempDir()

	if err := buildCmd.Flags().Set("path", dir); err != nil {
		t.Fatalf("Set(path) error = %v", err)
	}
	err := runBuild(buildCmd, nil)
	if err == nil {
		t.Fatalf("expected an error for a missing manifest")
	}
	var ec *exitCodeError
	if !errors.As(err, &ec) {
		t.Fatalf("expected an *exitCodeError, got %T: %v", err, err)
	}
	if ec.code != 2 {
		t.Fatalf("expected exit code 2, got %d", ec.code)
	}
}
