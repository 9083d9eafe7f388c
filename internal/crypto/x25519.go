package crypto

import (
	"fmt"

	"golang.org/x/crypto/curve25519"

	"modhub/internal/domain/types"
)

// BoxKeySize is the size of X25519 keys and of the secretbox key.
const BoxKeySize = 32

// BoxSecret returns the X25519 secret carved from a wallet private key:
// its first 32 bytes, as NaCl's box-pair-from-secret does.
func BoxSecret(priv []byte) (*[BoxKeySize]byte, error) {
	if len(priv) < BoxKeySize {
		return nil, fmt.Errorf("%w: private key shorter than %d bytes", types.ErrInvalidInput, BoxKeySize)
	}
	var secret [BoxKeySize]byte
	copy(secret[:], priv[:BoxKeySize])
	return &secret, nil
}

// BoxPublicKey derives the X25519 public key peers encrypt to.
func BoxPublicKey(priv []byte) ([]byte, error) {
	secret, err := BoxSecret(priv)
	if err != nil {
		return nil, err
	}
	defer Wipe(secret[:])
	return curve25519.X25519(secret[:], curve25519.Basepoint)
}

func boxPublic(pub []byte) (*[BoxKeySize]byte, error) {
	if len(pub) != BoxKeySize {
		return nil, fmt.Errorf("%w: box public key must be %d bytes, got %d", types.ErrInvalidInput, BoxKeySize, len(pub))
	}
	var out [BoxKeySize]byte
	copy(out[:], pub)
	return &out, nil
}
