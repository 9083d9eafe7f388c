package crypto

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/nacl/box"
	"golang.org/x/crypto/nacl/secretbox"

	"modhub/internal/domain/types"
)

// NonceSize is the XSalsa20 nonce length used by secretbox and box.
const NonceSize = 24

// SealSymmetric encrypts msg with secretbox keyed by the first 32 bytes of priv.
func SealSymmetric(priv, msg []byte) (sealed []byte, nonce []byte, err error) {
	key, err := BoxSecret(priv)
	if err != nil {
		return nil, nil, err
	}
	defer Wipe(key[:])

	n, err := randomNonce()
	if err != nil {
		return nil, nil, err
	}
	return secretbox.Seal(nil, msg, n, key), n[:], nil
}

// OpenSymmetric reverses SealSymmetric.
func OpenSymmetric(priv, sealed, nonce []byte) ([]byte, error) {
	key, err := BoxSecret(priv)
	if err != nil {
		return nil, err
	}
	defer Wipe(key[:])

	n, err := nonceArray(nonce)
	if err != nil {
		return nil, err
	}
	out, ok := secretbox.Open(nil, sealed, n, key)
	if !ok {
		return nil, types.ErrDecryptionFailed
	}
	return out, nil
}

// SealBox encrypts msg from the sender's wallet key to a recipient box public key.
func SealBox(senderPriv, recipientPub, msg []byte) (sealed []byte, nonce []byte, err error) {
	secret, err := BoxSecret(senderPriv)
	if err != nil {
		return nil, nil, err
	}
	defer Wipe(secret[:])
	peer, err := boxPublic(recipientPub)
	if err != nil {
		return nil, nil, err
	}

	n, err := randomNonce()
	if err != nil {
		return nil, nil, err
	}
	return box.Seal(nil, msg, n, peer, secret), n[:], nil
}

// OpenBox decrypts a box sealed by senderPub for the recipient's wallet key.
func OpenBox(recipientPriv, senderPub, sealed, nonce []byte) ([]byte, error) {
	secret, err := BoxSecret(recipientPriv)
	if err != nil {
		return nil, err
	}
	defer Wipe(secret[:])
	peer, err := boxPublic(senderPub)
	if err != nil {
		return nil, err
	}

	n, err := nonceArray(nonce)
	if err != nil {
		return nil, err
	}
	out, ok := box.Open(nil, sealed, n, peer, secret)
	if !ok {
		return nil, types.ErrDecryptionFailed
	}
	return out, nil
}

func randomNonce() (*[NonceSize]byte, error) {
	var n [NonceSize]byte
	if _, err := rand.Read(n[:]); err != nil {
		return nil, fmt.Errorf("nonce: %w", err)
	}
	return &n, nil
}

func nonceArray(b []byte) (*[NonceSize]byte, error) {
	if len(b) != NonceSize {
		return nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", types.ErrDecryptionFailed, NonceSize, len(b))
	}
	var n [NonceSize]byte
	copy(n[:], b)
	return &n, nil
}
