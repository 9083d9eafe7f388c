package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"modhub/internal/app"
	"modhub/internal/domain"
	"modhub/internal/logging"
)

var (
	home       string
	passphrase string
	appCtx     *app.Wire

	schemeName  string
	network     uint16
	verifierURL string
	logLevel    string
)

func Execute() error {
	root := &cobra.Command{
		Use:           "modhub",
		Short:         "Wallet keys, signatures, encryption and tokens for the module hub",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := app.DefaultHome()
				if err != nil {
					return err
				}
				home = dir
			}
			cfg, err := app.LoadConfig(home)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("scheme") {
				cfg.Scheme = schemeName
			}
			if flags.Changed("network") {
				cfg.Network = network
			}
			if flags.Changed("verifier") {
				cfg.VerifierURL = verifierURL
			}
			if flags.Changed("log-level") {
				cfg.Log.Level = logLevel
			}

			log, err := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}
			appCtx, err = app.NewWire(cfg, log)
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&home, "home", "", "config dir (default $MODHUB_HOME or ~/.modhub)")
	pf.StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting saved keys")
	pf.StringVar(&schemeName, "scheme", "", "signature scheme: sr25519 or ecdsa (default from config)")
	pf.Uint16Var(&network, "network", 0, "SS58 network prefix for sr25519 addresses (default from config)")
	pf.StringVar(&verifierURL, "verifier", "", "verifier base URL (e.g. http://127.0.0.1:8787)")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		initCmd(),
		listCmd(),
		showCmd(),
		signCmd(),
		verifyCmd(),
		encryptCmd(),
		decryptCmd(),
		tokenCmd(),
		hashCmd(),
		mnemonicCmd(),
		passwordCmd(),
	)
	return root.Execute()
}

// requirePassphrase fails when -p was not given.
func requirePassphrase() error {
	if passphrase == "" {
		return errors.New("passphrase required (-p)")
	}
	return nil
}

// loadKey unseals the saved key name with the -p passphrase.
func loadKey(name string) (domain.KeyMaterial, error) {
	if err := requirePassphrase(); err != nil {
		return domain.KeyMaterial{}, err
	}
	return appCtx.KeyStore.LoadKey(name, passphrase)
}

// resolveScheme parses s, falling back to the configured default when empty.
func resolveScheme(s string) (domain.Scheme, error) {
	if s == "" {
		return appCtx.Config.DefaultScheme(), nil
	}
	return domain.ParseScheme(s)
}

// requireVerifier fails when no verifier URL is configured.
func requireVerifier() error {
	if appCtx.Verifier == nil {
		return fmt.Errorf("no verifier configured. use --verifier or verifier_url in %s", app.ConfigFilename)
	}
	return nil
}
