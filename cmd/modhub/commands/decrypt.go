package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"modhub/internal/domain"
)

// decrypt <name> [envelope.json]: read an envelope from a file or stdin.
func decryptCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "decrypt <name> [envelope.json]",
		Short: "Decrypt an envelope produced by encrypt (reads stdin without a file)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := loadKey(args[0])
			if err != nil {
				return err
			}

			var r io.Reader = cmd.InOrStdin()
			if len(args) == 2 {
				f, err := os.Open(args[1])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			var env domain.EncryptedEnvelope
			if err := json.NewDecoder(r).Decode(&env); err != nil {
				return fmt.Errorf("envelope: %w", err)
			}

			var msg string
			if from != "" {
				msg, err = appCtx.Codec.DecryptAsymmetric(env, key, from)
			} else {
				msg, err = appCtx.Codec.DecryptSymmetric(env, key)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "sender box public key (hex); omit for symmetric envelopes")
	return cmd
}
