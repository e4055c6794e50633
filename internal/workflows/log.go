package workflows

import (
	"context"

	"github.com/PolarWolf314/stagecrypt/internal/audit"
	"github.com/PolarWolf314/stagecrypt/internal/configs"
)

// LogOptions configures the log workflow.
type LogOptions struct {
	ProjectRoot string
	ConfigPath  string

	// Stage and Operation filter entries. Empty matches everything.
	Stage     string
	Operation string
}

// Log returns the audit entries for the project, oldest first.
func Log(ctx context.Context, opts LogOptions) ([]audit.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	settings, err := configs.Load(opts.ProjectRoot, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	entries, err := audit.ReadEntries(audit.LogPath(settings.SecretsPath()))
	if err != nil {
		return nil, err
	}
	return audit.Filter(entries, opts.Stage, opts.Operation), nil
}
