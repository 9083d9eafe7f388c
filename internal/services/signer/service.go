package signer

import (
	"fmt"

	"modhub/internal/crypto"
	"modhub/internal/domain"
	"modhub/internal/metrics"
)

// Service dispatches sign and verify to the scheme named by the key.
type Service struct {
	metrics *metrics.Recorder
}

// New returns a signer. rec may be nil.
func New(rec *metrics.Recorder) *Service { return &Service{metrics: rec} }

// Sign returns the lowercase hex signature of message.
func (s *Service) Sign(message string, key domain.KeyMaterial) (string, error) {
	sig, err := s.sign(message, key)
	s.metrics.Operation("sign", key.Scheme, metrics.Outcome(err))
	if err != nil {
		return "", err
	}
	return crypto.EncodeHex(sig), nil
}

func (s *Service) sign(message string, key domain.KeyMaterial) ([]byte, error) {
	if message == "" {
		return nil, fmt.Errorf("%w: empty message", domain.ErrInvalidInput)
	}
	scheme, err := crypto.SchemeFor(key.Scheme)
	if err != nil {
		return nil, err
	}
	priv, err := crypto.DecodeHex(key.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("private key: %w", err)
	}
	defer crypto.Wipe(priv)
	return scheme.Sign(priv, []byte(message))
}

// Verify reports whether signatureHex is a valid signature of message by
// publicKeyHex. A well-formed but wrong signature is false, not an error.
func (s *Service) Verify(
	message string,
	signatureHex string,
	publicKeyHex string,
	scheme domain.Scheme,
) (bool, error) {
	ok, err := s.verify(message, signatureHex, publicKeyHex, scheme)
	outcome := metrics.Outcome(err)
	if err == nil && !ok {
		outcome = metrics.OutcomeRejected
	}
	s.metrics.Operation("verify", scheme, outcome)
	return ok, err
}

func (s *Service) verify(message, signatureHex, publicKeyHex string, name domain.Scheme) (bool, error) {
	if message == "" || signatureHex == "" || publicKeyHex == "" {
		return false, fmt.Errorf("%w: message, signature and public key are required", domain.ErrInvalidInput)
	}
	scheme, err := crypto.SchemeFor(name)
	if err != nil {
		return false, err
	}
	sig, err := crypto.DecodeHex(signatureHex)
	if err != nil {
		return false, fmt.Errorf("signature: %w", err)
	}
	pub, err := crypto.DecodeHex(publicKeyHex)
	if err != nil {
		return false, fmt.Errorf("public key: %w", err)
	}
	return scheme.Verify(pub, []byte(message), sig)
}

// Compile-time assertion that Service implements domain.SignerService.
var _ domain.SignerService = (*Service)(nil)
