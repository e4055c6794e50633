// Package errors provides typed error values for stagecrypt.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Configuration errors: missing or invalid settings (ErrConfiguration, ErrInvalidStage)
//   - Transform errors: encrypt/decrypt failures (ErrSourceNotFound, ErrCipher, ErrDestinationWrite)
//   - Preflight errors: the plaintext file is absent (ErrMissingFile, MissingFileError)
//   - Hook errors: lifecycle dispatch failures (ErrUnknownEvent)
//
// # Usage
//
// Return errors from internal packages wrapped with context:
//
//	return fmt.Errorf("opening %s: %w", path, errors.ErrSourceNotFound)
//
// Handle errors in the CLI layer:
//
//	result, err := workflows.Decrypt(ctx, opts)
//	if errors.Is(err, kerrors.ErrCipher) {
//	    // Wrong password or corrupted file
//	}
//
// Preflight failures carry the searched location:
//
//	var missing *kerrors.MissingFileError
//	if errors.As(err, &missing) {
//	    fmt.Println(missing.File, missing.Dir)
//	}
package errors
