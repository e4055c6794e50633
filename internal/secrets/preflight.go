package secrets

import (
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/stagecrypt/internal/errors"
)

// CheckExists verifies that path is a readable regular file without
// modifying it. Failures are *errors.MissingFileError naming the expected
// file and the directory searched.
func CheckExists(path string) error {
	missing := func(err error) error {
		return &kerrors.MissingFileError{
			File: filepath.Base(path),
			Dir:  filepath.Dir(path),
			Err:  err,
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return missing(err)
	}
	if info.IsDir() {
		return missing(fmt.Errorf("%s is a directory", path))
	}

	f, err := os.Open(path)
	if err != nil {
		return missing(err)
	}
	return f.Close()
}
