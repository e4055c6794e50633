// Package secrets implements the file-level cryptography for stagecrypt.
//
// # Files
//
// Each stage has one plaintext file and one ciphertext file in the same
// directory:
//
//	<project>/<secrets dir>/secrets.<stage>.yml
//	<project>/<secrets dir>/secrets.<stage>.yml.encrypted
//
// Resolve derives both paths. Only the ciphertext belongs in version control.
//
// # Formats
//
// New files are written in the sealed format: an age file whose file key is
// wrapped with an scrypt passphrase stanza. age encrypts in 64 KiB
// ChaCha20-Poly1305 chunks, so a wrong password or any tampering is reported
// as ErrCipher instead of producing garbage. Re-encrypting the same plaintext
// yields different bytes every time.
//
// The legacy format is AES-256-CBC keyed by OpenSSL's EVP_BytesToKey over the
// raw password with no salt. It is kept byte-compatible with files written by
// the original deploy plugin. It is deterministic: the same plaintext and
// password always give the same ciphertext. A wrong password usually fails
// the padding check, but roughly one time in 256 it decrypts to garbage.
//
// Decrypt detects the format from the file header.
//
// # Streaming
//
// Transform never loads a whole file. Source, cipher and destination are
// chained with io.Copy on a single goroutine; the destination write returns
// before the next read, which bounds memory to a couple of chunk buffers.
// Output is staged in a temporary file and renamed into place on success.
package secrets
