package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/stagecrypt/internal/audit"
	"github.com/PolarWolf314/stagecrypt/internal/configs"
	kerrors "github.com/PolarWolf314/stagecrypt/internal/errors"
	"github.com/PolarWolf314/stagecrypt/internal/secrets"
)

// Encrypt encrypts the stage's plaintext secrets file into its .encrypted
// counterpart.
//
// Returns ErrConfiguration if the settings are missing or invalid,
// ErrSourceNotFound if the plaintext file is absent, ErrCipher or
// ErrDestinationWrite if the transform fails.
func Encrypt(ctx context.Context, opts Options) (*Result, error) {
	settings, err := configs.Load(opts.ProjectRoot, opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	return runTransform(ctx, secrets.Encrypt, settings, opts)
}

// Decrypt restores the stage's plaintext secrets file from its .encrypted
// counterpart. The ciphertext format is detected unless opts.Format is set.
//
// Returns ErrCipher for a wrong password or a corrupted file, plus the same
// errors as Encrypt.
func Decrypt(ctx context.Context, opts Options) (*Result, error) {
	settings, err := configs.Load(opts.ProjectRoot, opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	return runTransform(ctx, secrets.Decrypt, settings, opts)
}

func runTransform(ctx context.Context, dir secrets.Direction, settings *configs.Settings, opts Options) (*Result, error) {
	if err := secrets.ValidateStage(opts.Stage); err != nil {
		return nil, err
	}

	transformOpts := settings.TransformOptions()
	if dir == secrets.Decrypt {
		transformOpts.Format = ""
	}
	if opts.Format != "" {
		format, err := secrets.ParseFormat(opts.Format)
		if err != nil {
			return nil, err
		}
		transformOpts.Format = format
	}

	paths := secrets.Resolve(settings.Invocation(opts.Stage, opts.Password))
	src, dst := paths.Plaintext, paths.Ciphertext
	if dir == secrets.Decrypt {
		src, dst = paths.Ciphertext, paths.Plaintext
	}

	result := &Result{
		Stage:       opts.Stage,
		Source:      src,
		Destination: dst,
		Format:      transformOpts.Format,
		DryRun:      opts.DryRun,
		Settings:    settings,
	}

	if opts.DryRun {
		if _, err := os.Stat(src); err != nil {
			return nil, fmt.Errorf("%w: %v", kerrors.ErrSourceNotFound, err)
		}
		return result, nil
	}

	if opts.Password == "" {
		return nil, kerrors.ErrPasswordRequired
	}

	transformed, err := secrets.Transform(ctx, dir, src, dst, opts.Password, transformOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to %s %s: %w", dir, filepath.Base(src), err)
	}
	result.Format = transformed.Format
	result.BytesRead = transformed.BytesRead
	result.BytesWritten = transformed.BytesWritten

	opts.log(fmt.Sprintf("Successfully %sed '%s' to '%s'", dir, filepath.Base(src), filepath.Base(dst)))

	if settings.Audit {
		entry := audit.NewEntry(dir.String(), opts.Stage)
		entry.Files = []string{filepath.Base(dst)}
		entry.Format = string(transformed.Format)
		audit.Log(audit.LogPath(settings.SecretsPath()), entry)
	}

	return result, nil
}
