package cmd

import (
	"github.com/PolarWolf314/stagecrypt/internal/secrets"
	"github.com/PolarWolf314/stagecrypt/internal/workflows"
	"github.com/spf13/cobra"
)

var encryptFlags transformFlags

func init() {
	encryptFlags.register(encryptCmd, "ciphertext format: age or legacy (default from config)")
}

var encryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypts secrets.<stage>.yml into secrets.<stage>.yml.encrypted",
	Long: `Encrypts the plaintext secrets file for a stage.

The file is read from the configured secrets directory and streamed through
the cipher, so its size does not matter. The encrypted copy is written next
to it and replaces any previous one only once it is complete.

Examples:
  stagecrypt encrypt -s prod -p hunter2
  STAGECRYPT_PASSWORD=hunter2 stagecrypt encrypt -s prod
  stagecrypt encrypt -s prod --format legacy   # readable by older tooling`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(cmd, secrets.Encrypt, &encryptFlags, workflows.Encrypt)
	},
}
