package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"modhub/internal/domain"
)

// encrypt <name> <message>: print a JSON envelope.
func encryptCmd() *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "encrypt <name> <message>",
		Short: "Encrypt a message to yourself, or to --to <box public key>",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := loadKey(args[0])
			if err != nil {
				return err
			}
			var env domain.EncryptedEnvelope
			if to != "" {
				env, err = appCtx.Codec.EncryptAsymmetric(args[1], key, to)
			} else {
				env, err = appCtx.Codec.EncryptSymmetric(args[1], key)
			}
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(env)
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "recipient box public key (hex); omit for symmetric encryption")
	return cmd
}
