package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"modhub/internal/crypto"
	"modhub/internal/domain"
)

// init <name>: derive a key from exactly one source and save it.
func initCmd() *cobra.Command {
	var (
		password        string
		privateKey      string
		mnemonic        string
		newMnemonic     bool
		defaultPassword bool
	)
	cmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Derive a key and save it under <name>",
		Long: "Derive a key from --password, --private-key, --mnemonic, a fresh mnemonic\n" +
			"(--new-mnemonic) or the stored default password (--default-password),\n" +
			"then save it sealed with the -p passphrase.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			scheme := appCtx.Config.DefaultScheme()
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			var (
				key domain.KeyMaterial
				err error
			)
			switch {
			case password != "":
				key, err = appCtx.Keys.FromPassword(ctx, password, scheme)
			case privateKey != "":
				key, err = appCtx.Keys.FromPrivateKey(ctx, privateKey, scheme)
			case mnemonic != "":
				key, err = appCtx.Keys.FromMnemonic(ctx, mnemonic, scheme)
			case newMnemonic:
				phrase, perr := appCtx.Keys.NewMnemonic()
				if perr != nil {
					return perr
				}
				fmt.Fprintf(out, "Mnemonic (write it down): %s\n", phrase)
				key, err = appCtx.Keys.FromMnemonic(ctx, phrase, scheme)
			case defaultPassword:
				pw, perr := appCtx.Keys.DefaultPassword()
				if perr != nil {
					return perr
				}
				key, err = appCtx.Keys.FromPassword(ctx, pw, scheme)
			default:
				return errors.New("one of --password, --private-key, --mnemonic, --new-mnemonic, --default-password is required")
			}
			if err != nil {
				return err
			}

			if err := appCtx.KeyStore.SaveKey(args[0], passphrase, key); err != nil {
				return err
			}
			appCtx.Logger.Info("key saved", "name", args[0], "key", key)
			fmt.Fprintf(out, "Key %q saved.\nScheme:      %s\nAddress:     %s\nFingerprint: %s\n",
				args[0], key.Scheme, key.Address, crypto.Fingerprint(mustHex(key.PublicKey)))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&password, "password", "", "derive from this password")
	f.StringVar(&privateKey, "private-key", "", "import this hex private key")
	f.StringVar(&mnemonic, "mnemonic", "", "derive from this BIP-39 phrase")
	f.BoolVar(&newMnemonic, "new-mnemonic", false, "generate a fresh BIP-39 phrase and derive from it")
	f.BoolVar(&defaultPassword, "default-password", false, "derive from the stored default password")
	cmd.MarkFlagsMutuallyExclusive("password", "private-key", "mnemonic", "new-mnemonic", "default-password")
	return cmd
}

// mustHex decodes hex that this process produced itself.
func mustHex(s string) []byte {
	b, err := crypto.DecodeHex(s)
	if err != nil {
		return nil
	}
	return b
}
