package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5" // #nosec G501 -- required to reproduce the legacy OpenSSL key derivation
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/stagecrypt/internal/errors"
)

const (
	legacyKeySize = 32 // AES-256

	// chunkSize bounds how much ciphertext or plaintext is held in memory.
	// It must be a multiple of the AES block size.
	chunkSize = 64 * 1024
)

// legacyKeyIV reproduces EVP_BytesToKey(MD5, salt=nil, count=1) for a
// 32-byte key and 16-byte IV. D_i = MD5(D_{i-1} || password).
func legacyKeyIV(password string) (key, iv []byte) {
	var derived, prev []byte
	for len(derived) < legacyKeySize+aes.BlockSize {
		h := md5.New() // #nosec G401
		h.Write(prev)
		h.Write([]byte(password))
		prev = h.Sum(nil)
		derived = append(derived, prev...)
	}
	return derived[:legacyKeySize], derived[legacyKeySize : legacyKeySize+aes.BlockSize]
}

// cbcWriter runs CBC over everything written to it in fixed-size chunks and
// forwards the result to dst. Padding is added (encrypt) or verified and
// stripped (decrypt) on Close. Close does not close dst.
type cbcWriter struct {
	dst     io.Writer
	mode    cipher.BlockMode
	decrypt bool
	buf     []byte
	n       int
}

func newLegacyEncrypter(dst io.Writer, password string) (io.WriteCloser, error) {
	key, iv := legacyKeyIV(password)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrCipher, err)
	}
	return &cbcWriter{dst: dst, mode: cipher.NewCBCEncrypter(block, iv), buf: make([]byte, chunkSize)}, nil
}

func newLegacyDecrypter(dst io.Writer, password string) (io.WriteCloser, error) {
	key, iv := legacyKeyIV(password)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrCipher, err)
	}
	return &cbcWriter{dst: dst, mode: cipher.NewCBCDecrypter(block, iv), decrypt: true, buf: make([]byte, chunkSize)}, nil
}

func (w *cbcWriter) Write(p []byte) (int, error) {
	written := 0
	for len(p) > 0 {
		c := copy(w.buf[w.n:], p)
		w.n += c
		written += c
		p = p[c:]
		if w.n == len(w.buf) {
			if err := w.flush(); err != nil {
				return written, err
			}
		}
	}
	return written, nil
}

// flush is called with a full buffer. When decrypting, the last block is kept
// back because it may be the final, padded one.
func (w *cbcWriter) flush() error {
	end := w.n
	if w.decrypt {
		end -= w.mode.BlockSize()
	}
	w.mode.CryptBlocks(w.buf[:end], w.buf[:end])
	if _, err := w.dst.Write(w.buf[:end]); err != nil {
		return err
	}
	w.n = copy(w.buf, w.buf[end:w.n])
	return nil
}

func (w *cbcWriter) Close() error {
	bs := w.mode.BlockSize()
	if !w.decrypt {
		pad := bs - w.n%bs
		for i := 0; i < pad; i++ {
			w.buf[w.n+i] = byte(pad)
		}
		w.n += pad
		w.mode.CryptBlocks(w.buf[:w.n], w.buf[:w.n])
		_, err := w.dst.Write(w.buf[:w.n])
		return err
	}

	if w.n == 0 || w.n%bs != 0 {
		return fmt.Errorf("%w: ciphertext is not a whole number of blocks", kerrors.ErrCipher)
	}
	w.mode.CryptBlocks(w.buf[:w.n], w.buf[:w.n])
	pad := int(w.buf[w.n-1])
	if pad == 0 || pad > bs {
		return fmt.Errorf("%w: bad decrypt (wrong password or corrupted file)", kerrors.ErrCipher)
	}
	for _, b := range w.buf[w.n-pad : w.n] {
		if int(b) != pad {
			return fmt.Errorf("%w: bad decrypt (wrong password or corrupted file)", kerrors.ErrCipher)
		}
	}
	_, err := w.dst.Write(w.buf[:w.n-pad])
	return err
}
