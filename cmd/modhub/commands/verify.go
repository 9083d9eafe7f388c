package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func verifyCmd() *cobra.Command {
	var (
		publicKey string
		keyName   string
		scheme    string
		remote    bool
	)
	cmd := &cobra.Command{
		Use:   "verify <message> <signature>",
		Short: "Verify a signature against a public key or a saved key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveScheme(scheme)
			if err != nil {
				return err
			}
			pub := publicKey
			if keyName != "" {
				k, err := appCtx.KeyStore.LoadPublic(keyName)
				if err != nil {
					return err
				}
				pub, s = k.PublicKey, k.Scheme
			}
			if pub == "" {
				return errors.New("one of --public-key or --key is required")
			}

			var ok bool
			if remote {
				if err := requireVerifier(); err != nil {
					return err
				}
				ok, err = appCtx.Verifier.VerifySignature(cmd.Context(), args[0], args[1], pub, s)
			} else {
				ok, err = appCtx.Signer.Verify(args[0], args[1], pub, s)
			}
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("signature is NOT valid")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signature is valid")
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&publicKey, "public-key", "", "hex public key of the signer")
	f.StringVar(&keyName, "key", "", "use the public key of this saved key")
	f.StringVar(&scheme, "type", "", "scheme of --public-key (default from config)")
	f.BoolVar(&remote, "remote", false, "ask the configured verifier instead of verifying locally")
	cmd.MarkFlagsMutuallyExclusive("public-key", "key")
	return cmd
}
