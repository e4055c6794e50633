package secrets

import (
	"bytes"
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/stagecrypt/internal/errors"
)

// Format identifies the on-disk ciphertext layout.
type Format string

const (
	// FormatSealed is an age file protected by an scrypt passphrase:
	// salted key derivation and authenticated, chunked encryption.
	FormatSealed Format = "age"

	// FormatLegacy is AES-256-CBC with PKCS#7 padding, keyed with OpenSSL's
	// EVP_BytesToKey(MD5, no salt, one round) over the raw password. It is
	// deterministic and unauthenticated, and exists to read and write files
	// produced by the serverless secrets plugin.
	FormatLegacy Format = "legacy"
)

const (
	sealedMagic      = "age-encryption.org/"
	sealedArmorMagic = "-----BEGIN AGE ENCRYPTED FILE-----"

	// sniffLen is enough to see either age header after leading whitespace.
	sniffLen = 64
)

// ParseFormat maps a configuration value to a Format. Empty yields the default.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return FormatSealed, nil
	case FormatSealed:
		return FormatSealed, nil
	case FormatLegacy:
		return FormatLegacy, nil
	}
	return "", fmt.Errorf("%w: unknown format %q (expected %q or %q)", kerrors.ErrConfiguration, s, FormatSealed, FormatLegacy)
}

// DetectFormat inspects the first bytes of a ciphertext. Anything that is not
// an age header is assumed to be legacy, since legacy files have no header.
func DetectFormat(head []byte) (format Format, armored bool) {
	if bytes.HasPrefix(head, []byte(sealedMagic)) {
		return FormatSealed, false
	}
	if bytes.HasPrefix(bytes.TrimLeft(head, " \t\r\n"), []byte(sealedArmorMagic)) {
		return FormatSealed, true
	}
	return FormatLegacy, false
}
