// Package utils provides shared helpers for stagecrypt.
//
// # Filesystem Utilities
//
//   - FindProjectRoot: walks up directories to the nearest project marker file
//   - EnsureLine: appends a line to a text file unless already present
//
// # System Utilities
//
//   - GetUsername: returns the current system username
//   - GetHostname: returns the system hostname
//
// # Terminal Utilities
//
//   - IsTerminal: checks if stdin is a terminal
//   - ReadPassphrase: prompts for a password without echo
package utils
