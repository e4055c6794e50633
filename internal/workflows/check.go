package workflows

import (
	"context"

	"github.com/PolarWolf314/stagecrypt/internal/configs"
	"github.com/PolarWolf314/stagecrypt/internal/secrets"
)

// CheckResult names the plaintext file that was found.
type CheckResult struct {
	Stage string
	Path  string
}

// Check verifies the stage's plaintext secrets file exists before a
// deployment step runs against it. It never looks at the ciphertext.
//
// Returns a *errors.MissingFileError (matching ErrMissingFile) naming the
// expected file and the directory searched.
func Check(ctx context.Context, opts Options) (*CheckResult, error) {
	settings, err := configs.Load(opts.ProjectRoot, opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	return runCheck(ctx, settings, opts)
}

func runCheck(ctx context.Context, settings *configs.Settings, opts Options) (*CheckResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := secrets.ValidateStage(opts.Stage); err != nil {
		return nil, err
	}

	path := secrets.Resolve(settings.Invocation(opts.Stage, "")).Plaintext
	if err := secrets.CheckExists(path); err != nil {
		return nil, err
	}
	return &CheckResult{Stage: opts.Stage, Path: path}, nil
}
