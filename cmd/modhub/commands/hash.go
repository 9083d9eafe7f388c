package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func hashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <message>",
		Short: "Print the BLAKE2b-256 hex digest of a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), appCtx.Codec.Hash(args[0]))
			return nil
		},
	}
}
