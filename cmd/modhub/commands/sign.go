package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// sign <name> <message>: print the hex signature of message.
func signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <name> <message>",
		Short: "Sign a message with a saved key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := loadKey(args[0])
			if err != nil {
				return err
			}
			sig, err := appCtx.Signer.Sign(args[1], key)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sig)
			return nil
		},
	}
}
