package secrets

import (
	"errors"
	"fmt"
	"io"

	"filippo.io/age"
	"filippo.io/age/armor"

	kerrors "github.com/PolarWolf314/stagecrypt/internal/errors"
)

const (
	// DefaultWorkFactor is the scrypt log2(N) used for new sealed files.
	DefaultWorkFactor = 18

	// ageMaxWorkFactor is the largest work factor age accepts on decrypt by default.
	ageMaxWorkFactor = 22
)

// sealedWriter closes the age stream before the armor that wraps it.
type sealedWriter struct {
	io.WriteCloser
	armor io.WriteCloser
}

func (w *sealedWriter) Close() error {
	if err := w.WriteCloser.Close(); err != nil {
		return err
	}
	if w.armor != nil {
		return w.armor.Close()
	}
	return nil
}

func newSealedEncrypter(dst io.Writer, password string, armored bool, workFactor int) (io.WriteCloser, error) {
	recipient, err := age.NewScryptRecipient(password)
	if err != nil {
		return nil, fmt.Errorf("%w: creating recipient: %v", kerrors.ErrCipher, err)
	}
	if workFactor <= 0 {
		workFactor = DefaultWorkFactor
	}
	recipient.SetWorkFactor(workFactor)

	sw := &sealedWriter{}
	out := dst
	if armored {
		sw.armor = armor.NewWriter(dst)
		out = sw.armor
	}

	w, err := age.Encrypt(out, recipient)
	if err != nil {
		if errors.Is(err, kerrors.ErrDestinationWrite) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: creating encryptor: %v", kerrors.ErrCipher, err)
	}
	sw.WriteCloser = w
	return sw, nil
}

func newSealedDecrypter(src io.Reader, password string, armored bool, workFactor int) (io.Reader, error) {
	identity, err := age.NewScryptIdentity(password)
	if err != nil {
		return nil, fmt.Errorf("%w: creating identity: %v", kerrors.ErrCipher, err)
	}
	if workFactor > ageMaxWorkFactor {
		identity.SetMaxWorkFactor(workFactor)
	}

	if armored {
		src = armor.NewReader(src)
	}

	r, err := age.Decrypt(src, identity)
	if err != nil {
		if errors.Is(err, kerrors.ErrSourceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", kerrors.ErrCipher, err)
	}
	return r, nil
}
