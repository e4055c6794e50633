// Package cmd contains testing utilities shared between integration tests.
// They run the real root command against a temporary project and capture
// what it prints.
package cmd

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

const testPassword = "integration-test-password"

// captureOutput captures both stdout and stderr during function execution.
func captureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)
	drain := func(r io.Reader) {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, r); err != nil {
			log.Fatalf("Failed to copy captured output: %s", err)
		}
		outputChan <- buf.String()
	}
	go drain(stdoutReader)
	go drain(stderrReader)

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// runCLI executes the root command with args and returns its output.
// Flags from earlier runs are reset first.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	t.Setenv(PasswordEnv, "")
	ResetGlobalState()
	t.Cleanup(ResetGlobalState)

	return captureOutput(func() error {
		RootCmd.SetArgs(args)
		return RootCmd.Execute()
	})
}

// setupTestProject creates a project with .stagecrypt.toml keeping secrets
// in a "secrets" subdirectory. The age work factor is kept low for speed.
func setupTestProject(t *testing.T, format string) string {
	t.Helper()
	root := t.TempDir()

	config := "[secrets]\nlocal_path = \"secrets\"\nwork_factor = 10\naudit = true\n"
	if format != "" {
		config += "format = \"" + format + "\"\n"
	}
	if err := os.WriteFile(filepath.Join(root, ".stagecrypt.toml"), []byte(config), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(root, "secrets"), 0755); err != nil {
		t.Fatalf("Failed to create secrets directory: %v", err)
	}
	return root
}

// writeSecretsFile writes a plaintext or encrypted stage file into the project.
func writeSecretsFile(t *testing.T, root, name, content string) string {
	t.Helper()
	path := filepath.Join(root, "secrets", name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

// chdir switches to dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change to %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(originalWd); err != nil {
			t.Fatalf("Failed to restore working directory: %v", err)
		}
	})
}
