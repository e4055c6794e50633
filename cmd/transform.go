package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/PolarWolf314/stagecrypt/internal/secrets"
	"github.com/PolarWolf314/stagecrypt/internal/ui"
	"github.com/PolarWolf314/stagecrypt/internal/workflows"
	"github.com/spf13/cobra"
)

// transformFlags back the encrypt and decrypt commands.
type transformFlags struct {
	stageFlags
	format string
	dryRun bool
}

func (f *transformFlags) register(cmd *cobra.Command, formatHelp string) {
	f.stageFlags.register(cmd, true)
	cmd.Flags().StringVar(&f.format, "format", "", formatHelp)
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "show what would be written without touching any file")
}

type transformFunc func(context.Context, workflows.Options) (*workflows.Result, error)

func runTransform(cmd *cobra.Command, dir secrets.Direction, flags *transformFlags, run transformFunc) error {
	Logger.Infof("Starting %s command for stage %s", dir, flags.stage)

	root, err := resolveProjectRoot()
	if err != nil {
		return err
	}

	var password string
	if !flags.dryRun {
		password, err = resolvePassword(flags.password)
		if err != nil {
			fmt.Println(formatError(err))
			return reported(err)
		}
	}

	spinner, cleanup := startSpinner(fmt.Sprintf("%sing secrets for stage %s...", titleCase(dir.String()), flags.stage), verbose)
	defer cleanup()

	var message string
	opts := workflows.Options{
		Stage:       flags.stage,
		Password:    password,
		ProjectRoot: root,
		ConfigPath:  configPath,
		Format:      flags.format,
		DryRun:      flags.dryRun,
		Log: func(msg string) {
			Logger.Debugf("%s", msg)
			message = msg
		},
	}

	result, err := run(cmd.Context(), opts)
	if err != nil {
		Logger.Errorf("%s failed: %v", dir, err)
		spinner.FinalMSG = formatError(err)
		return reported(err)
	}
	Logger.Debugf("Settings loaded from %s", result.Settings.Source)

	if result.DryRun {
		format := string(result.Format)
		if format == "" {
			format = "detected from the file"
		}
		spinner.FinalMSG = ui.Warning.Sprint("[dry-run]") + " Would " + dir.String() + " " +
			ui.Path.Sprint(result.Source) + " to " + ui.Path.Sprint(result.Destination) +
			" " + ui.Muted.Sprint("format: "+format)
		return nil
	}

	Logger.Infof("Read %d bytes, wrote %d bytes", result.BytesRead, result.BytesWritten)
	finalMessage := ui.Succeeded(message) + " " +
		ui.Muted.Sprint(string(result.Format)+", "+ui.Bytes(result.BytesWritten))
	if dir == secrets.Encrypt {
		finalMessage += "\n" + ui.Hint("You can now safely commit "+ui.Path.Sprint(filepath.Base(result.Destination)))
	} else {
		finalMessage += "\n" + ui.Hint("Keep "+ui.Path.Sprint(filepath.Base(result.Destination))+" out of version control")
	}
	spinner.FinalMSG = finalMessage
	return nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
