// Package audit records who encrypted or decrypted which stage, and when.
//
// # Log Format
//
// The audit log is JSON Lines (one JSON object per line) stored beside the
// stage files:
//
//	<secrets dir>/.stagecrypt-audit.jsonl
//
// Each entry contains a UTC timestamp with microseconds, a random entry id,
// the system user and host, the operation, the stage, and the files written.
//
// # Usage
//
//	entry := audit.NewEntry("encrypt", "prod")
//	entry.Files = []string{"secrets.prod.yml.encrypted"}
//	audit.Log(audit.LogPath(secretsDir), entry)
//
// # Failure Handling
//
// Audit logging is best-effort. Operations never fail because the log
// could not be written.
//
// # Reading Logs
//
// ReadEntries parses the log for display. Malformed lines are skipped to
// tolerate partial writes.
package audit
