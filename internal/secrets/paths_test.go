package secrets

import (
	"errors"
	"path/filepath"
	"testing"

	kerrors "github.com/PolarWolf314/stagecrypt/internal/errors"
)

func TestResolve_StageInSubdirectory(t *testing.T) {
	root := filepath.Join("project", "root")
	paths := Resolve(Invocation{Stage: "prod", ProjectRoot: root, SecretsDir: "secrets"})

	expectedPlain := filepath.Join(root, "secrets", "secrets.prod.yml")
	expectedCipher := filepath.Join(root, "secrets", "secrets.prod.yml.encrypted")

	if paths.Plaintext != expectedPlain {
		t.Errorf("Expected plaintext path %s, got: %s", expectedPlain, paths.Plaintext)
	}
	if paths.Ciphertext != expectedCipher {
		t.Errorf("Expected ciphertext path %s, got: %s", expectedCipher, paths.Ciphertext)
	}
}

func TestResolve_EmptySecretsDirUsesProjectRoot(t *testing.T) {
	root := t.TempDir()
	paths := Resolve(Invocation{Stage: "dev", ProjectRoot: root})

	if paths.Dir() != root {
		t.Errorf("Expected files in %s, got: %s", root, paths.Dir())
	}
	if filepath.Base(paths.Plaintext) != "secrets.dev.yml" {
		t.Errorf("Expected secrets.dev.yml, got: %s", filepath.Base(paths.Plaintext))
	}
}

func TestResolve_CiphertextSitsNextToPlaintext(t *testing.T) {
	for _, stage := range []string{"dev", "staging", "prod-eu", "qa_2"} {
		paths := Resolve(Invocation{Stage: stage, ProjectRoot: "/srv/app", SecretsDir: "config/secrets"})
		if paths.Ciphertext != paths.Plaintext+".encrypted" {
			t.Errorf("stage %s: expected ciphertext %s.encrypted, got: %s", stage, paths.Plaintext, paths.Ciphertext)
		}
		if filepath.Dir(paths.Ciphertext) != filepath.Dir(paths.Plaintext) {
			t.Errorf("stage %s: ciphertext and plaintext are in different directories", stage)
		}
	}
}

func TestResolve_IgnoresPassword(t *testing.T) {
	a := Resolve(Invocation{Stage: "prod", Password: "one", ProjectRoot: "/p", SecretsDir: "s"})
	b := Resolve(Invocation{Stage: "prod", Password: "two", ProjectRoot: "/p", SecretsDir: "s"})
	if a != b {
		t.Errorf("Expected identical paths, got: %+v and %+v", a, b)
	}
}

func TestValidateStage(t *testing.T) {
	tests := []struct {
		stage   string
		wantErr bool
	}{
		{"prod", false},
		{"dev-eu-1", false},
		{"feature.x", false},
		{"", true},
		{"   ", true},
		{"../prod", true},
		{"a/b", true},
		{`a\b`, true},
	}

	for _, tt := range tests {
		t.Run(tt.stage, func(t *testing.T) {
			err := ValidateStage(tt.stage)
			if tt.wantErr {
				if !errors.Is(err, kerrors.ErrInvalidStage) {
					t.Errorf("Expected ErrInvalidStage for %q, got: %v", tt.stage, err)
				}
				return
			}
			if err != nil {
				t.Errorf("Expected no error for %q, got: %v", tt.stage, err)
			}
		})
	}
}
