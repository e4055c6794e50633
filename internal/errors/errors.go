package errors

import (
	"errors"
	"fmt"
)

// Configuration errors indicate missing or invalid settings. They are raised
// before any file is touched.
var (
	// ErrConfiguration indicates the secrets configuration is absent or malformed.
	ErrConfiguration = errors.New("invalid secrets configuration")

	// ErrAlreadyInitialized indicates a configuration file already exists.
	ErrAlreadyInitialized = errors.New("project has already been initialized")

	// ErrInvalidStage indicates the stage name cannot be used as a file name segment.
	ErrInvalidStage = errors.New("invalid stage name")

	// ErrPasswordRequired indicates no password was supplied and none could be prompted for.
	ErrPasswordRequired = errors.New("password is required")
)

// Transform errors indicate failures while moving bytes through the cipher.
// After any of these the destination contents must not be trusted.
var (
	// ErrSourceNotFound indicates the input file is missing or unreadable.
	ErrSourceNotFound = errors.New("source file not found or unreadable")

	// ErrCipher indicates the cipher rejected the operation: wrong password,
	// corrupted or truncated ciphertext, or a failed setup.
	ErrCipher = errors.New("cipher operation failed")

	// ErrDestinationWrite indicates the output file could not be created or written.
	ErrDestinationWrite = errors.New("failed to write destination file")
)

// Preflight errors.
var (
	// ErrMissingFile indicates the plaintext secrets file for a stage is absent.
	ErrMissingFile = errors.New("secrets file not found")
)

// Hook errors.
var (
	// ErrUnknownEvent indicates no callback is registered for a lifecycle event.
	ErrUnknownEvent = errors.New("no hooks registered for event")
)

// MissingFileError is returned by the preflight check. It names the file
// that was expected and the directory that was searched.
type MissingFileError struct {
	File string
	Dir  string
	Err  error
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("couldn't find the secrets file for this stage: %s (looking in %s)", e.File, e.Dir)
}

// Unwrap exposes the underlying stat or open error.
func (e *MissingFileError) Unwrap() error {
	return e.Err
}

// Is reports MissingFileError as ErrMissingFile.
func (e *MissingFileError) Is(target error) bool {
	return target == ErrMissingFile
}
