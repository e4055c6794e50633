package secrets

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	kerrors "github.com/PolarWolf314/stagecrypt/internal/errors"
)

// Direction selects encryption or decryption for Transform.
type Direction int

const (
	Encrypt Direction = iota
	Decrypt
)

func (d Direction) String() string {
	switch d {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// TransformOptions tunes the cipher. The zero value encrypts to the sealed
// format and auto-detects the format on decrypt.
type TransformOptions struct {
	// Format forces the ciphertext format. Empty means FormatSealed when
	// encrypting and detection from the file header when decrypting.
	Format Format

	// Armor writes sealed ciphertext as PEM-style ASCII.
	Armor bool

	// WorkFactor is the scrypt log2(N) for sealed files.
	WorkFactor int
}

// TransformResult describes a completed transform.
type TransformResult struct {
	Source       string
	Destination  string
	Format       Format
	BytesRead    int64
	BytesWritten int64
}

// Transform streams src through the cipher into dst.
//
// Output goes to a temporary file next to dst which is synced and renamed
// over dst only once everything has been written, so a failed transform
// leaves dst as it was. Memory use is bounded by one copy buffer and one
// cipher chunk regardless of file size: each read is only issued after the
// previous chunk has been written out.
//
// Errors wrap ErrSourceNotFound, ErrCipher or ErrDestinationWrite, or are
// the context's error if ctx is cancelled mid-stream.
func Transform(ctx context.Context, dir Direction, src, dst, password string, opts TransformOptions) (*TransformResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	in, err := openSource(src)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	perm := os.FileMode(0600)
	if dir == Encrypt {
		// #nosec G302 -- ciphertext is meant to be committed and shared
		perm = 0644
	}
	out, err := createAtomic(dst, destinationMode(dst, perm))
	if err != nil {
		return nil, err
	}
	defer out.Abort()

	source := &sourceReader{ctx: ctx, r: in, path: src}
	dest := &destWriter{w: out, path: dst}

	var format Format
	switch dir {
	case Encrypt:
		format, err = encryptStream(dest, source, password, opts)
	case Decrypt:
		format, err = decryptStream(dest, source, password, opts)
	default:
		err = fmt.Errorf("unknown transform direction %v", dir)
	}
	if err != nil {
		return nil, err
	}

	if err := out.Commit(); err != nil {
		return nil, err
	}

	return &TransformResult{
		Source:       src,
		Destination:  dst,
		Format:       format,
		BytesRead:    source.n,
		BytesWritten: dest.n,
	}, nil
}

func encryptStream(dst io.Writer, src io.Reader, password string, opts TransformOptions) (Format, error) {
	format := opts.Format
	if format == "" {
		format = FormatSealed
	}

	var (
		w   io.WriteCloser
		err error
	)
	switch format {
	case FormatSealed:
		w, err = newSealedEncrypter(dst, password, opts.Armor, opts.WorkFactor)
	case FormatLegacy:
		w, err = newLegacyEncrypter(dst, password)
	default:
		return "", fmt.Errorf("%w: unknown format %q", kerrors.ErrCipher, format)
	}
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(w, src); err != nil {
		return "", classify(err)
	}
	if err := w.Close(); err != nil {
		return "", classify(err)
	}
	return format, nil
}

func decryptStream(dst io.Writer, src io.Reader, password string, opts TransformOptions) (Format, error) {
	br := bufio.NewReader(src)
	// A read error here is kept by br and returned again by the next Read.
	head, _ := br.Peek(sniffLen)
	format, armored := DetectFormat(head)
	if opts.Format != "" {
		format = opts.Format
	}

	switch format {
	case FormatSealed:
		r, err := newSealedDecrypter(br, password, armored, opts.WorkFactor)
		if err != nil {
			return "", err
		}
		if _, err := io.Copy(dst, r); err != nil {
			return "", classify(err)
		}
	case FormatLegacy:
		w, err := newLegacyDecrypter(dst, password)
		if err != nil {
			return "", err
		}
		if _, err := io.Copy(w, br); err != nil {
			return "", classify(err)
		}
		if err := w.Close(); err != nil {
			return "", classify(err)
		}
	default:
		return "", fmt.Errorf("%w: unknown format %q", kerrors.ErrCipher, format)
	}
	return format, nil
}

// classify leaves categorized errors alone and treats anything else raised
// inside the cipher stage as a cipher failure.
func classify(err error) error {
	switch {
	case errors.Is(err, kerrors.ErrSourceNotFound),
		errors.Is(err, kerrors.ErrDestinationWrite),
		errors.Is(err, kerrors.ErrCipher),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	}
	return fmt.Errorf("%w: %v", kerrors.ErrCipher, err)
}
