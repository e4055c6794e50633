package workflows

import (
	"context"

	"github.com/PolarWolf314/stagecrypt/internal/configs"
	"github.com/PolarWolf314/stagecrypt/internal/hooks"
	"github.com/PolarWolf314/stagecrypt/internal/secrets"
)

// Lifecycle events stagecrypt answers to. The preflight event comes from
// the settings.
const (
	EventEncrypt = "encrypt:encrypt"
	EventDecrypt = "decrypt:decrypt"
)

// RegisterHooks binds the encrypt, decrypt and preflight workflows to their
// lifecycle events on reg.
func RegisterHooks(reg *hooks.Registry, settings *configs.Settings, opts Options) {
	reg.Register(EventEncrypt, func(ctx context.Context) error {
		_, err := runTransform(ctx, secrets.Encrypt, settings, opts)
		return err
	})
	reg.Register(EventDecrypt, func(ctx context.Context) error {
		_, err := runTransform(ctx, secrets.Decrypt, settings, opts)
		return err
	})
	reg.Register(settings.PreflightEvent, func(ctx context.Context) error {
		_, err := runCheck(ctx, settings, opts)
		return err
	})
}

// RunHook loads the settings, registers the stagecrypt hooks and runs event.
// Returns ErrUnknownEvent if stagecrypt has nothing bound to event.
func RunHook(ctx context.Context, event string, opts Options) error {
	settings, err := configs.Load(opts.ProjectRoot, opts.ConfigPath)
	if err != nil {
		return err
	}

	reg := hooks.NewRegistry()
	RegisterHooks(reg, settings, opts)
	return reg.Run(ctx, event)
}
