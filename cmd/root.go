package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	logger "github.com/PolarWolf314/stagecrypt/internal/logging"
	"github.com/PolarWolf314/stagecrypt/internal/ui"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	debug       bool
	projectRoot string
	configPath  string
	Logger      logger.Logger

	RootCmd = &cobra.Command{
		Use:   "stagecrypt",
		Short: "Encrypts per-stage secrets files so they can be committed safely",
		Long: `stagecrypt keeps one plaintext secrets file per deployment stage
(secrets.<stage>.yml) out of version control and commits an encrypted copy
(secrets.<stage>.yml.encrypted) instead.

Usage:
  stagecrypt init                          # write .stagecrypt.toml
  stagecrypt encrypt -s prod -p <password> # secrets.prod.yml -> .encrypted
  stagecrypt decrypt -s prod -p <password> # .encrypted -> secrets.prod.yml
  stagecrypt check -s prod                 # fail if secrets.prod.yml is missing
  stagecrypt hook before:deploy:cleanup -s prod

The password may also come from the STAGECRYPT_PASSWORD environment variable.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().StringVar(&projectRoot, "project-root", "", "project directory (default: nearest directory with a stagecrypt config or serverless manifest)")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file to use instead of discovering one")

	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(checkCmd)
	RootCmd.AddCommand(hookCmd)
	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(logCmd)
}

// Execute runs the root command and returns the process exit code.
// Interrupts cancel the running operation, which discards partial output.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		var shown *reportedError
		if !errors.As(err, &shown) {
			fmt.Fprintln(os.Stderr, ui.Failed(err.Error()))
		}
		return 1
	}
	return 0
}

// ResetGlobalState resets flags and the logger between test runs.
func ResetGlobalState() {
	verbose = false
	debug = false
	projectRoot = ""
	configPath = ""
	Logger = logger.Logger{}

	resetFlags(RootCmd)
}
