// Package logger provides leveled logging for stagecrypt commands.
//
// Output is prefixed with a colored level tag. Verbosity is controlled by
// two flags shared by every command:
//
//   - --verbose: shows info messages
//   - --debug: shows info, debug and error details
//
// Warnings are always printed to stderr.
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Encrypting %s", path)
//	return log.ErrorfAndReturn("failed to load settings: %v", err)
package logger
