package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"modhub/internal/crypto"
)

func showCmd() *cobra.Command {
	var showPrivate bool
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a saved key's address and public keys",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := appCtx.KeyStore.LoadPublic(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Scheme:         %s\n", k.Scheme)
			fmt.Fprintf(out, "Address:        %s\n", k.Address)
			fmt.Fprintf(out, "Public key:     %s\n", k.PublicKey)
			fmt.Fprintf(out, "Box public key: %s\n", k.BoxPublicKey)
			fmt.Fprintf(out, "Fingerprint:    %s\n", crypto.Fingerprint(mustHex(k.PublicKey)))

			if showPrivate {
				full, err := loadKey(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Private key:    %s\n", full.PrivateKey)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showPrivate, "private", false, "also print the private key (requires -p)")
	return cmd
}
