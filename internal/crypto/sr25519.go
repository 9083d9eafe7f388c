package crypto

import (
	"crypto/sha512"
	"fmt"

	schnorrkel "github.com/ChainSafe/go-schnorrkel"

	"modhub/internal/domain/types"
)

const (
	sr25519SeedSize      = 32
	sr25519SecretSize    = 64 // expanded key || nonce
	sr25519PublicSize    = 32
	sr25519SignatureSize = 64
)

// substrateContext is the signing context shared with Substrate tooling.
var substrateContext = []byte("substrate")

type sr25519Scheme struct{}

func (sr25519Scheme) sealed() {}

func (sr25519Scheme) Name() types.Scheme { return types.EdwardsSeeded }

// Import expands a 32-byte mini secret in Ed25519 mode, or reloads a 64-byte
// expanded secret previously returned by Import.
func (sr25519Scheme) Import(priv []byte) ([]byte, []byte, error) {
	switch len(priv) {
	case sr25519SeedSize:
		var raw [sr25519SeedSize]byte
		copy(raw[:], priv)
		mini, err := schnorrkel.NewMiniSecretKeyFromRaw(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: sr25519 seed: %v", types.ErrInvalidInput, err)
		}
		secret := mini.ExpandEd25519()
		pub, err := sr25519Public(secret)
		if err != nil {
			return nil, nil, err
		}
		key := secret.Encode()
		nonce := sha512.Sum512(priv)

		canonical := make([]byte, 0, sr25519SecretSize)
		canonical = append(canonical, key[:]...)
		canonical = append(canonical, nonce[32:]...)
		Wipe(raw[:])
		return pub, canonical, nil

	case sr25519SecretSize:
		secret, err := sr25519Secret(priv)
		if err != nil {
			return nil, nil, err
		}
		pub, err := sr25519Public(secret)
		if err != nil {
			return nil, nil, err
		}
		return pub, append([]byte(nil), priv...), nil
	}
	return nil, nil, fmt.Errorf(
		"%w: sr25519 private key must be %d or %d bytes, got %d",
		types.ErrInvalidInput, sr25519SeedSize, sr25519SecretSize, len(priv),
	)
}

// Address is the SS58 encoding of the public key.
func (sr25519Scheme) Address(pub, _ []byte, network uint16) (string, error) {
	return SS58Encode(pub, network)
}

func (sr25519Scheme) Sign(priv, msg []byte) ([]byte, error) {
	if len(priv) != sr25519SecretSize {
		return nil, fmt.Errorf(
			"%w: sr25519 private key must be %d bytes, got %d",
			types.ErrInvalidInput, sr25519SecretSize, len(priv),
		)
	}
	secret, err := sr25519Secret(priv)
	if err != nil {
		return nil, err
	}
	sig, err := secret.Sign(schnorrkel.NewSigningContext(substrateContext, msg))
	if err != nil {
		return nil, fmt.Errorf("sr25519 sign: %w", err)
	}
	enc := sig.Encode()
	return enc[:], nil
}

func (sr25519Scheme) Verify(pub, msg, sig []byte) (bool, error) {
	if len(pub) != sr25519PublicSize {
		return false, fmt.Errorf(
			"%w: sr25519 public key must be %d bytes, got %d",
			types.ErrInvalidInput, sr25519PublicSize, len(pub),
		)
	}
	if len(sig) != sr25519SignatureSize {
		return false, nil
	}

	var pubRaw [sr25519PublicSize]byte
	copy(pubRaw[:], pub)
	public := &schnorrkel.PublicKey{}
	if err := public.Decode(pubRaw); err != nil {
		return false, nil
	}

	var sigRaw [sr25519SignatureSize]byte
	copy(sigRaw[:], sig)
	signature := &schnorrkel.Signature{}
	if err := signature.Decode(sigRaw); err != nil {
		return false, nil
	}

	ok, err := public.Verify(signature, schnorrkel.NewSigningContext(substrateContext, msg))
	if err != nil {
		return false, nil
	}
	return ok, nil
}

func sr25519Secret(priv []byte) (*schnorrkel.SecretKey, error) {
	var key [32]byte
	copy(key[:], priv[:32])
	defer Wipe(key[:])

	secret := &schnorrkel.SecretKey{}
	if err := secret.Decode(key); err != nil {
		return nil, fmt.Errorf("%w: sr25519 secret key: %v", types.ErrInvalidInput, err)
	}
	return secret, nil
}

func sr25519Public(secret *schnorrkel.SecretKey) ([]byte, error) {
	public, err := secret.Public()
	if err != nil {
		return nil, fmt.Errorf("%w: sr25519 public key: %v", types.ErrInvalidInput, err)
	}
	enc := public.Encode()
	return enc[:], nil
}
