package secrets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/stagecrypt/internal/errors"
)

func TestCheckExists_PresentFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "secrets.prod.yml")
	writeTestFile(t, path, "DB_PASSWORD: hunter2\n")

	if err := CheckExists(path); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
}

func TestCheckExists_MissingFile(t *testing.T) {
	dir := t.TempDir()
	path := Resolve(Invocation{Stage: "prod", ProjectRoot: dir, SecretsDir: "secrets"}).Plaintext

	err := CheckExists(path)
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
	if !errors.Is(err, kerrors.ErrMissingFile) {
		t.Errorf("Expected ErrMissingFile, got: %v", err)
	}

	var missing *kerrors.MissingFileError
	if !errors.As(err, &missing) {
		t.Fatalf("Expected *MissingFileError, got: %T", err)
	}
	if missing.File != "secrets.prod.yml" {
		t.Errorf("Expected file secrets.prod.yml, got: %s", missing.File)
	}
	if missing.Dir != filepath.Join(dir, "secrets") {
		t.Errorf("Expected dir %s, got: %s", filepath.Join(dir, "secrets"), missing.Dir)
	}
	if !strings.Contains(err.Error(), "secrets.prod.yml") {
		t.Errorf("Expected message to name the file, got: %s", err.Error())
	}
	if !strings.Contains(err.Error(), missing.Dir) {
		t.Errorf("Expected message to name the directory, got: %s", err.Error())
	}
	if !os.IsNotExist(errors.Unwrap(err)) {
		t.Errorf("Expected wrapped not-exist error, got: %v", errors.Unwrap(err))
	}
}

func TestCheckExists_DirectoryIsNotAFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "secrets.prod.yml")
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if err := CheckExists(path); !errors.Is(err, kerrors.ErrMissingFile) {
		t.Errorf("Expected ErrMissingFile for a directory, got: %v", err)
	}
}

func TestCheckExists_DoesNotCreateAnything(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "secrets.prod.yml")

	_ = CheckExists(path)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty directory, found %d entries", len(entries))
	}
}

func TestCheckExists_IgnoresCiphertext(t *testing.T) {
	dir := t.TempDir()
	paths := Resolve(Invocation{Stage: "prod", ProjectRoot: dir})
	writeTestFile(t, paths.Ciphertext, "not the plaintext")

	if err := CheckExists(paths.Plaintext); !errors.Is(err, kerrors.ErrMissingFile) {
		t.Errorf("Expected ErrMissingFile when only the ciphertext exists, got: %v", err)
	}
}
