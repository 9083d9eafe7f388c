package domain

import (
	interfaces "modhub/internal/domain/interfaces"
	types "modhub/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Scheme            = types.Scheme
	Fingerprint       = types.Fingerprint
	KeyMaterial       = types.KeyMaterial
	EncryptedEnvelope = types.EncryptedEnvelope
	TokenHeader       = types.TokenHeader
	TokenPayload      = types.TokenPayload
	Claims            = types.Claims
	Seconds           = types.Seconds
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KeyService     = interfaces.KeyService
	SignerService  = interfaces.SignerService
	CodecService   = interfaces.CodecService
	TokenService   = interfaces.TokenService
	VerifierClient = interfaces.VerifierClient
	KeyStore       = interfaces.KeyStore
	SecretStore    = interfaces.SecretStore
)

// Scheme tags re-exported for callers that only import domain.
const (
	EdwardsSeeded  = types.EdwardsSeeded
	EcdsaSecp256k1 = types.EcdsaSecp256k1
)

// TokenType is the typ header of issued tokens.
const TokenType = types.TokenType

// Sentinel errors re-exported for errors.Is checks.
var (
	ErrInvalidInput      = types.ErrInvalidInput
	ErrUnsupportedScheme = types.ErrUnsupportedScheme
	ErrDecryptionFailed  = types.ErrDecryptionFailed
	ErrMalformedToken    = types.ErrMalformedToken
	ErrExpiredToken      = types.ErrExpiredToken
	ErrInvalidSignature  = types.ErrInvalidSignature
	ErrDataMismatch      = types.ErrDataMismatch
	ErrKeyNotFound       = types.ErrKeyNotFound
	ErrWrongPassphrase   = types.ErrWrongPassphrase
)

// ParseScheme maps a wire name onto a known scheme.
func ParseScheme(name string) (Scheme, error) { return types.ParseScheme(name) }
