package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PolarWolf314/stagecrypt/internal/audit"
	"github.com/PolarWolf314/stagecrypt/internal/workflows"
	"github.com/spf13/cobra"
)

var (
	logStage     string
	logOperation string
	logJSON      bool
)

func init() {
	logCmd.Flags().StringVarP(&logStage, "stage", "s", "", "only show entries for this stage")
	logCmd.Flags().StringVar(&logOperation, "op", "", "only show this operation (encrypt or decrypt)")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Shows the audit log of encrypt and decrypt operations",
	Long: `Displays who encrypted or decrypted which stage and when.

Entries are only recorded when audit = true is set in the configuration.

Examples:
  stagecrypt log
  stagecrypt log -s prod --op decrypt
  stagecrypt log --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting log command")

		root, err := resolveProjectRoot()
		if err != nil {
			return err
		}

		entries, err := workflows.Log(cmd.Context(), workflows.LogOptions{
			ProjectRoot: root,
			ConfigPath:  configPath,
			Stage:       logStage,
			Operation:   logOperation,
		})
		if err != nil {
			fmt.Println(formatError(err))
			return reported(err)
		}

		if logJSON {
			return outputLogJSON(entries)
		}
		if len(entries) == 0 {
			fmt.Println("No audit log entries found.")
			return nil
		}
		outputLogDefault(entries)
		return nil
	},
}

func outputLogJSON(entries []audit.Entry) error {
	if entries == nil {
		entries = []audit.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries to JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func outputLogDefault(entries []audit.Entry) {
	for _, e := range entries {
		fmt.Printf("%-27s  %-8s  %-10s  %-20s  %s\n", e.Timestamp, e.Operation, e.Stage, e.User, strings.Join(e.Files, ", "))
	}
}
