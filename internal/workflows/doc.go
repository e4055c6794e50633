// Package workflows provides high-level orchestration for stagecrypt commands.
//
// Workflows load the project settings, resolve the stage's files, run the
// core operation from the secrets package, report to the caller's log sink
// and record the audit trail. They know nothing about flags, spinners or
// colors; the cmd package is a thin layer on top.
//
// # Available Workflows
//
//   - Encrypt: secrets.<stage>.yml -> secrets.<stage>.yml.encrypted
//   - Decrypt: secrets.<stage>.yml.encrypted -> secrets.<stage>.yml
//   - Check: preflight existence check of the plaintext file
//   - RunHook: dispatches a host lifecycle event through a hooks.Registry
//   - Init: writes .stagecrypt.toml and ignores plaintext files in git
//   - Log: reads the audit trail
//
// # Error Handling
//
// Workflows return errors wrapping the sentinels in internal/errors, so the
// CLI layer can branch with errors.Is:
//
//	_, err := workflows.Decrypt(ctx, opts)
//	if errors.Is(err, kerrors.ErrCipher) {
//	    // wrong password or corrupted file
//	}
//
// Configuration problems are reported before any file is opened.
package workflows
