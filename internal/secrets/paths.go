package secrets

import (
	"fmt"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/stagecrypt/internal/errors"
)

const (
	// PlaintextPrefix and PlaintextExt frame the stage name in the plaintext file name.
	PlaintextPrefix = "secrets."
	PlaintextExt    = ".yml"

	// EncryptedExt is appended to the plaintext file name to form the ciphertext file name.
	EncryptedExt = ".encrypted"
)

// Invocation is the per-command context the core consumes from its host.
type Invocation struct {
	Stage       string
	Password    string
	ProjectRoot string
	// SecretsDir is relative to ProjectRoot. Empty means the project root itself.
	SecretsDir string
}

// CredentialPaths locates the plaintext/ciphertext pair for one stage.
// Ciphertext is always Plaintext + EncryptedExt.
type CredentialPaths struct {
	Plaintext  string
	Ciphertext string
}

// Dir returns the directory holding both files.
func (p CredentialPaths) Dir() string {
	return filepath.Dir(p.Plaintext)
}

// PlaintextFileName returns the plaintext file name for a stage, e.g. secrets.prod.yml.
func PlaintextFileName(stage string) string {
	return PlaintextPrefix + stage + PlaintextExt
}

// Resolve derives the credential paths for the invocation's stage. It does no I/O.
func Resolve(inv Invocation) CredentialPaths {
	plaintext := filepath.Join(inv.ProjectRoot, inv.SecretsDir, PlaintextFileName(inv.Stage))
	return CredentialPaths{
		Plaintext:  plaintext,
		Ciphertext: plaintext + EncryptedExt,
	}
}

// ValidateStage checks that a stage name can be used as a single file name segment.
func ValidateStage(stage string) error {
	if strings.TrimSpace(stage) == "" {
		return fmt.Errorf("%w: stage must not be empty", kerrors.ErrInvalidStage)
	}
	if strings.ContainsAny(stage, `/\`) || strings.Contains(stage, "..") {
		return fmt.Errorf("%w: %q must not contain path separators or '..'", kerrors.ErrInvalidStage, stage)
	}
	return nil
}
