package secrets

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/stagecrypt/internal/errors"
)

func openSource(path string) (*os.File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrSourceNotFound, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", kerrors.ErrSourceNotFound, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrSourceNotFound, err)
	}
	return f, nil
}

// destinationMode keeps the permissions of an existing destination, so
// re-running a transform never widens access to a file the user tightened.
func destinationMode(path string, fallback os.FileMode) os.FileMode {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return info.Mode().Perm()
	}
	return fallback
}

// atomicFile is a temporary file that replaces path on Commit.
type atomicFile struct {
	f    *os.File
	path string
	done bool
}

func createAtomic(path string, perm os.FileMode) (*atomicFile, error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrDestinationWrite, err)
	}
	if err := f.Chmod(perm); err != nil {
		f.Close()
		os.Remove(f.Name())
		return nil, fmt.Errorf("%w: %v", kerrors.ErrDestinationWrite, err)
	}
	return &atomicFile{f: f, path: path}, nil
}

func (a *atomicFile) Write(p []byte) (int, error) {
	return a.f.Write(p)
}

// Commit flushes the temporary file to disk and moves it over the destination.
func (a *atomicFile) Commit() error {
	a.done = true
	tmp := a.f.Name()
	if err := a.f.Sync(); err != nil {
		a.f.Close()
		os.Remove(tmp)
		return fmt.Errorf("%w: syncing %s: %v", kerrors.ErrDestinationWrite, a.path, err)
	}
	if err := a.f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: closing %s: %v", kerrors.ErrDestinationWrite, a.path, err)
	}
	if err := os.Rename(tmp, a.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", kerrors.ErrDestinationWrite, err)
	}
	return nil
}

// Abort discards the temporary file. It is a no-op after Commit.
func (a *atomicFile) Abort() {
	if a.done {
		return
	}
	a.done = true
	a.f.Close()
	os.Remove(a.f.Name())
}

// sourceReader checks for cancellation before every read and tags read
// failures as source errors.
type sourceReader struct {
	ctx  context.Context
	r    io.Reader
	path string
	n    int64
}

func (s *sourceReader) Read(p []byte) (int, error) {
	if err := s.ctx.Err(); err != nil {
		return 0, err
	}
	n, err := s.r.Read(p)
	s.n += int64(n)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w: reading %s: %v", kerrors.ErrSourceNotFound, s.path, err)
	}
	return n, err
}

// destWriter tags write failures as destination errors.
type destWriter struct {
	w    io.Writer
	path string
	n    int64
}

func (d *destWriter) Write(p []byte) (int, error) {
	n, err := d.w.Write(p)
	d.n += int64(n)
	if err != nil {
		return n, fmt.Errorf("%w: writing %s: %v", kerrors.ErrDestinationWrite, d.path, err)
	}
	return n, nil
}
