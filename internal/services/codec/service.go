package codec

import (
	"fmt"

	"modhub/internal/crypto"
	"modhub/internal/domain"
	"modhub/internal/metrics"
)

// Service implements domain.CodecService.
type Service struct {
	metrics *metrics.Recorder
}

// New returns a codec. rec may be nil.
func New(rec *metrics.Recorder) *Service { return &Service{metrics: rec} }

// EncryptSymmetric seals message so only holders of key can open it.
func (s *Service) EncryptSymmetric(message string, key domain.KeyMaterial) (domain.EncryptedEnvelope, error) {
	env, err := s.seal(key, func(priv []byte) ([]byte, []byte, error) {
		return crypto.SealSymmetric(priv, []byte(message))
	})
	s.metrics.Operation("encrypt_symmetric", key.Scheme, metrics.Outcome(err))
	return env, err
}

// EncryptAsymmetric seals message from key to the recipient's box public key.
func (s *Service) EncryptAsymmetric(
	message string,
	key domain.KeyMaterial,
	recipientBoxPublicKey string,
) (domain.EncryptedEnvelope, error) {
	env, err := func() (domain.EncryptedEnvelope, error) {
		peer, err := crypto.DecodeHex(recipientBoxPublicKey)
		if err != nil {
			return domain.EncryptedEnvelope{}, fmt.Errorf("recipient key: %w", err)
		}
		return s.seal(key, func(priv []byte) ([]byte, []byte, error) {
			return crypto.SealBox(priv, peer, []byte(message))
		})
	}()
	s.metrics.Operation("encrypt_asymmetric", key.Scheme, metrics.Outcome(err))
	return env, err
}

// DecryptSymmetric opens an envelope made by EncryptSymmetric.
func (s *Service) DecryptSymmetric(envelope domain.EncryptedEnvelope, key domain.KeyMaterial) (string, error) {
	out, err := s.open(envelope, key, crypto.OpenSymmetric)
	s.metrics.Operation("decrypt_symmetric", key.Scheme, metrics.Outcome(err))
	return out, err
}

// DecryptAsymmetric opens an envelope sealed by the holder of senderBoxPublicKey.
func (s *Service) DecryptAsymmetric(
	envelope domain.EncryptedEnvelope,
	key domain.KeyMaterial,
	senderBoxPublicKey string,
) (string, error) {
	out, err := func() (string, error) {
		peer, err := crypto.DecodeHex(senderBoxPublicKey)
		if err != nil {
			return "", fmt.Errorf("sender key: %w", err)
		}
		return s.open(envelope, key, func(priv, sealed, nonce []byte) ([]byte, error) {
			return crypto.OpenBox(priv, peer, sealed, nonce)
		})
	}()
	s.metrics.Operation("decrypt_asymmetric", key.Scheme, metrics.Outcome(err))
	return out, err
}

// Hash returns the hex BLAKE2b-256 digest of message.
func (s *Service) Hash(message string) string { return crypto.HashHex([]byte(message)) }

func (s *Service) seal(
	key domain.KeyMaterial,
	fn func(priv []byte) (sealed, nonce []byte, err error),
) (domain.EncryptedEnvelope, error) {
	priv, err := crypto.DecodeHex(key.PrivateKey)
	if err != nil {
		return domain.EncryptedEnvelope{}, fmt.Errorf("private key: %w", err)
	}
	defer crypto.Wipe(priv)

	sealed, nonce, err := fn(priv)
	if err != nil {
		return domain.EncryptedEnvelope{}, err
	}
	return domain.EncryptedEnvelope{
		Ciphertext: crypto.EncodeHex(sealed),
		Nonce:      crypto.EncodeHex(nonce),
	}, nil
}

func (s *Service) open(
	envelope domain.EncryptedEnvelope,
	key domain.KeyMaterial,
	fn func(priv, sealed, nonce []byte) ([]byte, error),
) (string, error) {
	sealed, err := crypto.DecodeHex(envelope.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: ciphertext: %v", domain.ErrDecryptionFailed, err)
	}
	nonce, err := crypto.DecodeHex(envelope.Nonce)
	if err != nil {
		return "", fmt.Errorf("%w: nonce: %v", domain.ErrDecryptionFailed, err)
	}
	priv, err := crypto.DecodeHex(key.PrivateKey)
	if err != nil {
		return "", fmt.Errorf("private key: %w", err)
	}
	defer crypto.Wipe(priv)

	out, err := fn(priv, sealed, nonce)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Compile-time assertion that Service implements domain.CodecService.
var _ domain.CodecService = (*Service)(nil)
