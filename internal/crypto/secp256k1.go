package crypto

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"modhub/internal/domain/types"
)

const (
	secp256k1PrivateSize            = 32
	secp256k1CompressedPublicSize   = 33
	secp256k1UncompressedPublicSize = 65
)

type secp256k1Scheme struct{}

func (secp256k1Scheme) sealed() {}

func (secp256k1Scheme) Name() types.Scheme { return types.EcdsaSecp256k1 }

// Import treats the bytes as the private scalar directly.
func (secp256k1Scheme) Import(priv []byte) ([]byte, []byte, error) {
	key, err := secp256k1PrivateKey(priv)
	if err != nil {
		return nil, nil, err
	}
	return key.PubKey().SerializeCompressed(), key.Serialize(), nil
}

// Address is the hex BLAKE2b-256 digest of the private scalar. It is not a
// chain address; existing wallets depend on it.
func (secp256k1Scheme) Address(_, priv []byte, _ uint16) (string, error) {
	if len(priv) != secp256k1PrivateSize {
		return "", fmt.Errorf("%w: secp256k1 private key must be %d bytes", types.ErrInvalidInput, secp256k1PrivateSize)
	}
	return HashHex(priv), nil
}

// Sign produces a low-S RFC 6979 signature over BLAKE2b-256(msg), DER encoded.
func (secp256k1Scheme) Sign(priv, msg []byte) ([]byte, error) {
	key, err := secp256k1PrivateKey(priv)
	if err != nil {
		return nil, err
	}
	defer key.Zero()

	digest := Blake2b256(msg)
	return ecdsa.Sign(key, digest[:]).Serialize(), nil
}

// Verify accepts only low-S DER signatures over BLAKE2b-256(msg).
func (secp256k1Scheme) Verify(pub, msg, sig []byte) (bool, error) {
	if len(pub) != secp256k1CompressedPublicSize && len(pub) != secp256k1UncompressedPublicSize {
		return false, fmt.Errorf(
			"%w: secp256k1 public key must be %d or %d bytes, got %d",
			types.ErrInvalidInput, secp256k1CompressedPublicSize, secp256k1UncompressedPublicSize, len(pub),
		)
	}
	public, err := secp256k1.ParsePubKey(pub)
	if err != nil {
		return false, nil
	}
	signature, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false, nil
	}
	// Only the low-S form is canonical; (r, n-s) would otherwise also verify.
	if s := signature.S(); s.IsOverHalfOrder() {
		return false, nil
	}
	digest := Blake2b256(msg)
	return signature.Verify(digest[:], public), nil
}

func secp256k1PrivateKey(priv []byte) (*secp256k1.PrivateKey, error) {
	if len(priv) != secp256k1PrivateSize {
		return nil, fmt.Errorf(
			"%w: secp256k1 private key must be %d bytes, got %d",
			types.ErrInvalidInput, secp256k1PrivateSize, len(priv),
		)
	}
	var scalar secp256k1.ModNScalar
	if overflow := scalar.SetByteSlice(priv); overflow || scalar.IsZero() {
		return nil, fmt.Errorf("%w: secp256k1 private key is out of range", types.ErrInvalidInput)
	}
	return secp256k1.NewPrivateKey(&scalar), nil
}
