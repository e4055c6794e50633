package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/stagecrypt/internal/configs"
	kerrors "github.com/PolarWolf314/stagecrypt/internal/errors"
	"github.com/PolarWolf314/stagecrypt/internal/ui"
	"github.com/PolarWolf314/stagecrypt/internal/utils"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// PasswordEnv is consulted when --password is not given.
const PasswordEnv = "STAGECRYPT_PASSWORD"

// startSpinner creates and starts a spinner unless running verbose or debug.
// The returned cleanup stops it and prints FinalMSG, so callers set
// spinner.FinalMSG instead of printing. FinalMSG needs no trailing newline.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if quiet {
			log.SetOutput(os.Stderr)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// reportedError marks an error whose message was already shown to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

// formatError turns a workflow error into the final message for the user.
func formatError(err error) string {
	var missing *kerrors.MissingFileError
	switch {
	case errors.As(err, &missing):
		return ui.Failed("Couldn't find the secrets file for this stage: "+
			ui.Path.Sprint(missing.File)+" "+ui.Muted.Sprint("looking in "+missing.Dir)) + "\n" +
			ui.Hint("Run "+ui.Code.Sprint("stagecrypt decrypt -s <stage>")+" or create the file before deploying")

	case errors.Is(err, kerrors.ErrAlreadyInitialized):
		return ui.Failed("stagecrypt has already been initialized") + "\n" +
			ui.Hint("Use "+ui.Flag.Sprint("--force")+" to overwrite "+ui.Path.Sprint(configs.ConfigFileName))

	case errors.Is(err, kerrors.ErrConfiguration):
		return ui.Failed(err.Error()) + "\n" +
			ui.Hint("Run "+ui.Code.Sprint("stagecrypt init")+" or set custom.pluginConfig.secrets.localPath in serverless.yml")

	case errors.Is(err, kerrors.ErrPasswordRequired):
		return ui.Failed("No password provided") + "\n" +
			ui.Hint("Pass "+ui.Flag.Sprint("--password")+" or set "+ui.Code.Sprint(PasswordEnv))

	case errors.Is(err, kerrors.ErrCipher):
		return ui.Failed(err.Error()) + "\n" +
			ui.Hint("Check the password for this stage")

	case errors.Is(err, kerrors.ErrUnknownEvent):
		return ui.Failed(err.Error()) + "\n" +
			ui.Hint("stagecrypt handles "+ui.Code.Sprint("encrypt:encrypt")+", "+ui.Code.Sprint("decrypt:decrypt")+" and the configured preflight event")

	default:
		return ui.Failed(err.Error())
	}
}

// resolvePassword picks the password from the flag, then PasswordEnv, then
// an interactive prompt when stdin is a terminal.
func resolvePassword(flagValue string) (string, error) {
	if flagValue != "" {
		Logger.Debugf("Using password from --password")
		return flagValue, nil
	}
	if env := os.Getenv(PasswordEnv); env != "" {
		Logger.Debugf("Using password from %s", PasswordEnv)
		return env, nil
	}
	if !utils.IsTerminal() {
		return "", kerrors.ErrPasswordRequired
	}

	password, err := utils.ReadPassphrase("Password: ")
	if err != nil {
		return "", fmt.Errorf("%w: %v", kerrors.ErrPasswordRequired, err)
	}
	if len(password) == 0 {
		return "", kerrors.ErrPasswordRequired
	}
	return string(password), nil
}

// resolveProjectRoot returns --project-root, the directory of --config, or
// the nearest ancestor of the working directory holding a config file. It
// falls back to the working directory so the config error names it.
func resolveProjectRoot() (string, error) {
	if projectRoot != "" {
		return filepath.Abs(projectRoot)
	}
	if configPath != "" {
		abs, err := filepath.Abs(configPath)
		if err != nil {
			return "", err
		}
		return filepath.Dir(abs), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	root, err := configs.FindProjectRoot(wd)
	if err != nil {
		return "", err
	}
	if root == "" {
		Logger.Debugf("No config found above %s", wd)
		return wd, nil
	}
	Logger.Debugf("Project root: %s", root)
	return root, nil
}

// stageFlags are shared by every command that acts on one stage.
type stageFlags struct {
	stage    string
	password string
}

func (f *stageFlags) register(cmd *cobra.Command, withPassword bool) {
	cmd.Flags().StringVarP(&f.stage, "stage", "s", "", "deployment stage, e.g. dev or prod")
	if withPassword {
		cmd.Flags().StringVarP(&f.password, "password", "p", "", "password for the stage (default $"+PasswordEnv+")")
	}
	if err := cmd.MarkFlagRequired("stage"); err != nil {
		Logger.Warnf("Failed to mark stage flag required: %v", err)
	}
}

// resetFlags restores every flag of cmd and its children to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}
