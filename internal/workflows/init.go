package workflows

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/PolarWolf314/stagecrypt/internal/configs"
	kerrors "github.com/PolarWolf314/stagecrypt/internal/errors"
	"github.com/PolarWolf314/stagecrypt/internal/utils"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	ProjectRoot string
	SecretsDir  string
	Format      string
	Audit       bool

	// Force overwrites an existing configuration file.
	Force bool
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	ConfigPath       string
	SecretsPath      string
	IgnorePattern    string
	GitignoreUpdated bool
}

// Init writes .stagecrypt.toml, creates the secrets directory and adds an
// ignore rule for plaintext stage files to .gitignore.
//
// Returns ErrAlreadyInitialized if a config file exists and Force is unset.
func Init(ctx context.Context, opts InitOptions) (*InitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	configPath := filepath.Join(opts.ProjectRoot, configs.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil && !opts.Force {
		return nil, fmt.Errorf("%w: %s exists", kerrors.ErrAlreadyInitialized, configPath)
	}

	config := &configs.ProjectConfig{
		Secrets: configs.SecretsConfig{
			LocalPath: filepath.ToSlash(opts.SecretsDir),
			Format:    opts.Format,
			Audit:     opts.Audit,
		},
	}
	settings, err := configs.FromConfig(opts.ProjectRoot, config)
	if err != nil {
		return nil, err
	}
	config.Secrets.Format = string(settings.Format)

	if err := configs.SaveProjectConfig(opts.ProjectRoot, config); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(settings.SecretsPath(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", settings.SecretsPath(), err)
	}

	pattern := path.Join(filepath.ToSlash(settings.SecretsDir), "secrets.*.yml")
	updated, err := utils.EnsureLine(filepath.Join(opts.ProjectRoot, ".gitignore"), pattern)
	if err != nil {
		return nil, err
	}

	return &InitResult{
		ConfigPath:       configPath,
		SecretsPath:      settings.SecretsPath(),
		IgnorePattern:    pattern,
		GitignoreUpdated: updated,
	}, nil
}
