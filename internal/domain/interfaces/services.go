package interfaces

import (
	"context"
	"time"

	domaintypes "modhub/internal/domain/types"
)

// KeyService derives key material from a password, private key or mnemonic.
type KeyService interface {
	FromPassword(
		ctx context.Context,
		password string,
		scheme domaintypes.Scheme,
	) (domaintypes.KeyMaterial, error)
	FromPrivateKey(
		ctx context.Context,
		privateKeyHex string,
		scheme domaintypes.Scheme,
	) (domaintypes.KeyMaterial, error)
	FromMnemonic(
		ctx context.Context,
		mnemonic string,
		scheme domaintypes.Scheme,
	) (domaintypes.KeyMaterial, error)
}

// SignerService signs messages and verifies signatures for either scheme.
type SignerService interface {
	Sign(message string, key domaintypes.KeyMaterial) (string, error)
	Verify(
		message string,
		signatureHex string,
		publicKeyHex string,
		scheme domaintypes.Scheme,
	) (bool, error)
}

// CodecService encrypts and decrypts text with NaCl primitives.
type CodecService interface {
	EncryptSymmetric(message string, key domaintypes.KeyMaterial) (domaintypes.EncryptedEnvelope, error)
	EncryptAsymmetric(
		message string,
		key domaintypes.KeyMaterial,
		recipientBoxPublicKey string,
	) (domaintypes.EncryptedEnvelope, error)
	DecryptSymmetric(envelope domaintypes.EncryptedEnvelope, key domaintypes.KeyMaterial) (string, error)
	DecryptAsymmetric(
		envelope domaintypes.EncryptedEnvelope,
		key domaintypes.KeyMaterial,
		senderBoxPublicKey string,
	) (string, error)
	Hash(message string) string
}

// TokenService issues and verifies signed tokens.
type TokenService interface {
	IssueToken(data any, key domaintypes.KeyMaterial, ttl time.Duration) (string, error)
	VerifyToken(token string, expectedPublicKey string) (domaintypes.Claims, error)
	IssueDataToken(data []byte, key domaintypes.KeyMaterial, ttl time.Duration) (string, error)
	VerifyDataToken(token string, data []byte, expectedPublicKey string) (domaintypes.Claims, error)
}

// VerifierClient asks a remote verifier service to check tokens and signatures.
type VerifierClient interface {
	VerifyToken(ctx context.Context, token string, publicKey string) (domaintypes.Claims, error)
	VerifySignature(
		ctx context.Context,
		message string,
		signatureHex string,
		publicKeyHex string,
		scheme domaintypes.Scheme,
	) (bool, error)
}
