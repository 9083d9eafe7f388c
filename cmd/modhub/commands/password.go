package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func passwordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Manage the default wallet password",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "generate",
			Short: "Print the default password, generating it on first use",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				pw, err := appCtx.Keys.DefaultPassword()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), pw)
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Forget the stored default password",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := appCtx.Keys.ClearDefaultPassword(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Default password cleared.")
				return nil
			},
		},
	)
	return cmd
}
