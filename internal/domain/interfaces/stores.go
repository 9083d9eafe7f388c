package interfaces

import domaintypes "modhub/internal/domain/types"

// KeyStore persists named key material sealed under a passphrase.
type KeyStore interface {
	SaveKey(name string, passphrase string, key domaintypes.KeyMaterial) error
	LoadKey(name string, passphrase string) (domaintypes.KeyMaterial, error)
	// LoadPublic returns the saved key without its private part.
	LoadPublic(name string) (domaintypes.KeyMaterial, error)
	ListKeys() ([]string, error)
	DeleteKey(name string) error
}

// SecretStore keeps small named secrets such as the default wallet password.
type SecretStore interface {
	SaveSecret(name string, value string) error
	LoadSecret(name string) (string, bool, error)
	DeleteSecret(name string) error
}
