package cmd

import (
	"github.com/PolarWolf314/stagecrypt/internal/secrets"
	"github.com/PolarWolf314/stagecrypt/internal/workflows"
	"github.com/spf13/cobra"
)

var decryptFlags transformFlags

func init() {
	decryptFlags.register(decryptCmd, "ciphertext format: age or legacy (default: detect from the file)")
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypts secrets.<stage>.yml.encrypted into secrets.<stage>.yml",
	Long: `Decrypts the encrypted secrets file for a stage.

The format is detected from the file, so files written with either format
can be decrypted without extra flags. A wrong password leaves any existing
plaintext file untouched.

Examples:
  stagecrypt decrypt -s prod -p hunter2
  stagecrypt decrypt -s prod --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(cmd, secrets.Decrypt, &decryptFlags, workflows.Decrypt)
	},
}
