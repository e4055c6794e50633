package cmd

import (
	"os"
	"path/filepath"

	"github.com/PolarWolf314/stagecrypt/internal/ui"
	"github.com/PolarWolf314/stagecrypt/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	initSecretsDir string
	initFormat     string
	initAudit      bool
	initForce      bool
)

func init() {
	initCmd.Flags().StringVar(&initSecretsDir, "secrets-dir", "", "directory holding secrets files, relative to the project root")
	initCmd.Flags().StringVar(&initFormat, "format", "", "ciphertext format: age or legacy (default age)")
	initCmd.Flags().BoolVar(&initAudit, "audit", false, "record encrypt and decrypt operations in an audit log")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing configuration")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Creates .stagecrypt.toml and ignores plaintext secrets in git",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting init command")
		spinner, cleanup := startSpinner("Initializing stagecrypt...", verbose)
		defer cleanup()

		root := projectRoot
		if root == "" {
			wd, err := os.Getwd()
			if err != nil {
				return Logger.ErrorfAndReturn("failed to get working directory: %v", err)
			}
			root = wd
		}

		result, err := workflows.Init(cmd.Context(), workflows.InitOptions{
			ProjectRoot: root,
			SecretsDir:  initSecretsDir,
			Format:      initFormat,
			Audit:       initAudit,
			Force:       initForce,
		})
		if err != nil {
			spinner.FinalMSG = formatError(err)
			return reported(err)
		}

		finalMessage := ui.Succeeded("stagecrypt initialized successfully!") + "\n" +
			"Wrote " + ui.Path.Sprint(result.ConfigPath) + "\n"
		if result.GitignoreUpdated {
			finalMessage += "Added " + ui.Code.Sprint(result.IgnorePattern) + " to " + ui.Path.Sprint(".gitignore") + "\n"
		}
		example := filepath.Join(result.SecretsPath, "secrets.dev.yml")
		finalMessage += ui.Hint("Put your secrets in " + ui.Path.Sprint(example) + " and run " +
			ui.Code.Sprint("stagecrypt encrypt -s dev"))

		spinner.FinalMSG = finalMessage
		return nil
	},
}
