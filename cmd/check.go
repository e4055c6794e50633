package cmd

import (
	"fmt"

	"github.com/PolarWolf314/stagecrypt/internal/workflows"
	"github.com/spf13/cobra"
)

var checkFlags stageFlags

func init() {
	checkFlags.register(checkCmd, false)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fails if the plaintext secrets file for a stage is missing",
	Long: `Verifies that secrets.<stage>.yml exists and can be opened.

Prints nothing and exits 0 when the file is there, so it can gate a deploy
step. The encrypted file is not consulted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Checking secrets file for stage %s", checkFlags.stage)

		root, err := resolveProjectRoot()
		if err != nil {
			return err
		}

		result, err := workflows.Check(cmd.Context(), workflows.Options{
			Stage:       checkFlags.stage,
			ProjectRoot: root,
			ConfigPath:  configPath,
		})
		if err != nil {
			fmt.Println(formatError(err))
			return reported(err)
		}

		Logger.Infof("Found %s", result.Path)
		return nil
	},
}
