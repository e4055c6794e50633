package workflows

import (
	"github.com/PolarWolf314/stagecrypt/internal/configs"
	"github.com/PolarWolf314/stagecrypt/internal/secrets"
)

// Options carries what the host supplies for one invocation.
type Options struct {
	Stage    string
	Password string

	// ProjectRoot is the directory the secrets path is relative to.
	ProjectRoot string

	// ConfigPath selects a settings file. Empty means discover it under ProjectRoot.
	ConfigPath string

	// Format overrides the configured format ("age" or "legacy"). On decrypt
	// an empty value means the format is detected from the file.
	Format string

	// DryRun resolves paths and checks the source without writing anything.
	DryRun bool

	// Log receives one human-readable line per completed operation.
	Log func(msg string)
}

func (o Options) log(msg string) {
	if o.Log != nil {
		o.Log(msg)
	}
}

// Result describes a completed encrypt or decrypt.
type Result struct {
	Stage        string
	Source       string
	Destination  string
	Format       secrets.Format
	BytesRead    int64
	BytesWritten int64
	DryRun       bool
	Settings     *configs.Settings
}
