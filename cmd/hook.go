package cmd

import (
	"fmt"

	"github.com/PolarWolf314/stagecrypt/internal/workflows"
	"github.com/spf13/cobra"
)

var hookFlags stageFlags

func init() {
	hookFlags.register(hookCmd, true)
}

var hookCmd = &cobra.Command{
	Use:   "hook <event>",
	Short: "Runs the stagecrypt handler for a deployment lifecycle event",
	Long: `Entry point for deployment tools that fire lifecycle events.

stagecrypt answers to:
  encrypt:encrypt        encrypt the stage's secrets file
  decrypt:decrypt        decrypt the stage's secrets file
  before:deploy:cleanup  fail unless the plaintext file exists
                         (event name set by preflight_event)

Any other event exits non-zero.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		event := args[0]
		Logger.Infof("Handling event %s for stage %s", event, hookFlags.stage)

		root, err := resolveProjectRoot()
		if err != nil {
			return err
		}

		password := hookFlags.password
		if event == workflows.EventEncrypt || event == workflows.EventDecrypt {
			password, err = resolvePassword(hookFlags.password)
			if err != nil {
				fmt.Println(formatError(err))
				return reported(err)
			}
		}

		err = workflows.RunHook(cmd.Context(), event, workflows.Options{
			Stage:       hookFlags.stage,
			Password:    password,
			ProjectRoot: root,
			ConfigPath:  configPath,
			Log: func(msg string) {
				fmt.Println(msg)
			},
		})
		if err != nil {
			fmt.Println(formatError(err))
			return reported(err)
		}
		return nil
	},
}
