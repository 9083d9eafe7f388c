package keys

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"modhub/internal/crypto"
	"modhub/internal/domain"
	"modhub/internal/logging"
	"modhub/internal/metrics"
)

// DefaultPasswordSecret names the secret holding the generated default password.
const DefaultPasswordSecret = "default_password"

// ErrNoSecretStore is returned by the default-password helpers when the
// service was built without a secret store.
var ErrNoSecretStore = errors.New("no secret store configured")

// Service derives key material.
type Service struct {
	secrets domain.SecretStore
	network uint16
	metrics *metrics.Recorder
	log     *slog.Logger
}

// New returns a key service. secrets may be nil when the default password is
// not needed; rec and log may be nil.
func New(secrets domain.SecretStore, network uint16, rec *metrics.Recorder, log *slog.Logger) *Service {
	if log == nil {
		log = logging.Discard()
	}
	return &Service{secrets: secrets, network: network, metrics: rec, log: log}
}

// FromPassword derives key material from BLAKE2b-256(password).
func (s *Service) FromPassword(
	ctx context.Context,
	password string,
	scheme domain.Scheme,
) (domain.KeyMaterial, error) {
	if password == "" {
		return s.fail("from_password", scheme, fmt.Errorf("%w: empty password", domain.ErrInvalidInput))
	}
	seed := crypto.Blake2b256([]byte(password))
	return s.derive(ctx, "from_password", seed[:], scheme)
}

// FromPrivateKey reloads key material from hex private key bytes. sr25519
// accepts a 32-byte seed or the 64-byte expanded key; ecdsa accepts the
// 32-byte scalar.
func (s *Service) FromPrivateKey(
	ctx context.Context,
	privateKeyHex string,
	scheme domain.Scheme,
) (domain.KeyMaterial, error) {
	priv, err := crypto.DecodeHex(privateKeyHex)
	if err != nil {
		return s.fail("from_private_key", scheme, fmt.Errorf("private key: %w", err))
	}
	return s.derive(ctx, "from_private_key", priv, scheme)
}

// FromMnemonic derives key material from a checked BIP-39 phrase.
func (s *Service) FromMnemonic(
	ctx context.Context,
	mnemonic string,
	scheme domain.Scheme,
) (domain.KeyMaterial, error) {
	phrase := strings.Join(strings.Fields(mnemonic), " ")
	if phrase == "" {
		return s.fail("from_mnemonic", scheme, fmt.Errorf("%w: empty mnemonic", domain.ErrInvalidInput))
	}
	seed, err := crypto.SeedFromMnemonic(phrase, "")
	if err != nil {
		return s.fail("from_mnemonic", scheme, err)
	}
	return s.derive(ctx, "from_mnemonic", seed, scheme)
}

// NewMnemonic returns a fresh 12-word phrase.
func (s *Service) NewMnemonic() (string, error) {
	return crypto.NewMnemonic()
}

// DefaultPassword returns the stored default password, generating and
// storing one on first use.
func (s *Service) DefaultPassword() (string, error) {
	if s.secrets == nil {
		return "", ErrNoSecretStore
	}
	pw, ok, err := s.secrets.LoadSecret(DefaultPasswordSecret)
	if err != nil {
		return "", err
	}
	if ok && pw != "" {
		return pw, nil
	}
	pw, err = crypto.GeneratePassword(crypto.DefaultPasswordLength)
	if err != nil {
		return "", err
	}
	if err := s.secrets.SaveSecret(DefaultPasswordSecret, pw); err != nil {
		return "", err
	}
	s.log.Info("generated default password")
	return pw, nil
}

// ClearDefaultPassword forgets the stored default password.
func (s *Service) ClearDefaultPassword() error {
	if s.secrets == nil {
		return ErrNoSecretStore
	}
	return s.secrets.DeleteSecret(DefaultPasswordSecret)
}

// derive consumes priv: the slice is wiped before returning.
func (s *Service) derive(
	ctx context.Context,
	op string,
	priv []byte,
	name domain.Scheme,
) (domain.KeyMaterial, error) {
	defer crypto.Wipe(priv)

	scheme, err := crypto.SchemeFor(name)
	if err != nil {
		return s.fail(op, name, err)
	}
	if err := crypto.Ready(ctx); err != nil {
		return s.fail(op, name, fmt.Errorf("crypto backend: %w", err))
	}

	pub, canonical, err := scheme.Import(priv)
	if err != nil {
		return s.fail(op, name, err)
	}
	defer crypto.Wipe(canonical)

	addr, err := scheme.Address(pub, canonical, s.network)
	if err != nil {
		return s.fail(op, name, err)
	}
	boxPub, err := crypto.BoxPublicKey(canonical)
	if err != nil {
		return s.fail(op, name, err)
	}

	key := domain.KeyMaterial{
		Scheme:       name,
		Address:      addr,
		PublicKey:    crypto.EncodeHex(pub),
		PrivateKey:   crypto.EncodeHex(canonical),
		BoxPublicKey: crypto.EncodeHex(boxPub),
	}
	s.metrics.Operation(op, name, metrics.OutcomeOK)
	s.log.Debug("derived key", "op", op, "key", key)
	return key, nil
}

func (s *Service) fail(op string, scheme domain.Scheme, err error) (domain.KeyMaterial, error) {
	s.metrics.Operation(op, scheme, metrics.Outcome(err))
	return domain.KeyMaterial{}, err
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
