package types

import (
	"fmt"
	"strings"
)

// Scheme names the signature scheme that owns a piece of key material.
//
// The string values are the wire names carried in token headers and
// keystore files.
type Scheme string

const (
	// EdwardsSeeded is the seed-based Schnorr scheme over Ristretto25519 (sr25519).
	EdwardsSeeded Scheme = "sr25519"
	// EcdsaSecp256k1 is ECDSA over secp256k1.
	EcdsaSecp256k1 Scheme = "ecdsa"
)

// String returns the wire name of the scheme.
func (s Scheme) String() string { return string(s) }

// ParseScheme maps a wire name onto a known scheme.
func ParseScheme(name string) (Scheme, error) {
	switch Scheme(strings.ToLower(strings.TrimSpace(name))) {
	case EdwardsSeeded:
		return EdwardsSeeded, nil
	case EcdsaSecp256k1:
		return EcdsaSecp256k1, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, name)
}

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }
