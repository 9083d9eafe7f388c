package crypto

import (
	"fmt"

	"modhub/internal/domain/types"
)

// Scheme is a signature scheme. Only this package implements it, so a
// Scheme value is always one of Sr25519 or Secp256k1.
type Scheme interface {
	// Name is the wire name of the scheme.
	Name() types.Scheme

	// Import loads private key bytes (a 32-byte seed or the scheme's
	// expanded form) and returns the public key and the canonical private key.
	Import(priv []byte) (pub, canonical []byte, err error)

	// Address renders the scheme's address for a key pair.
	Address(pub, priv []byte, network uint16) (string, error)

	// Sign signs msg with a private key produced by Import.
	Sign(priv, msg []byte) ([]byte, error)

	// Verify reports whether sig is a valid signature of msg by pub.
	// Only a malformed public key is an error.
	Verify(pub, msg, sig []byte) (bool, error)

	sealed()
}

var (
	// Sr25519 is the EdwardsSeeded scheme.
	Sr25519 Scheme = sr25519Scheme{}
	// Secp256k1 is the EcdsaSecp256k1 scheme.
	Secp256k1 Scheme = secp256k1Scheme{}
)

// SchemeFor returns the implementation behind a scheme tag.
func SchemeFor(name types.Scheme) (Scheme, error) {
	switch name {
	case types.EdwardsSeeded:
		return Sr25519, nil
	case types.EcdsaSecp256k1:
		return Secp256k1, nil
	}
	return nil, fmt.Errorf("%w: %q", types.ErrUnsupportedScheme, name)
}
