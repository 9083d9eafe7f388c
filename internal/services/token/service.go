package token

import (
	"encoding/json"
	"fmt"
	"time"

	"modhub/internal/crypto"
	"modhub/internal/domain"
	"modhub/internal/metrics"
	"modhub/internal/protocol/jwt"
)

// DefaultTTL is the lifetime used when callers have no preference.
const DefaultTTL = time.Hour

// Service issues and verifies tokens.
type Service struct {
	signer  domain.SignerService
	metrics *metrics.Recorder

	// Now reports the current time. Tests replace it.
	Now func() time.Time
}

// New returns a token service signing through signer. rec may be nil.
func New(signer domain.SignerService, rec *metrics.Recorder) *Service {
	return &Service{signer: signer, metrics: rec, Now: time.Now}
}

// IssueToken signs data into a token valid for ttl.
func (s *Service) IssueToken(data any, key domain.KeyMaterial, ttl time.Duration) (string, error) {
	tok, err := s.issue(data, key, ttl)
	s.metrics.Operation("issue_token", key.Scheme, metrics.Outcome(err))
	return tok, err
}

func (s *Service) issue(data any, key domain.KeyMaterial, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", fmt.Errorf("%w: ttl must be positive, got %s", domain.ErrInvalidInput, ttl)
	}
	if _, err := crypto.SchemeFor(key.Scheme); err != nil {
		return "", err
	}
	raw, err := jwt.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("%w: token data: %v", domain.ErrInvalidInput, err)
	}

	iat := jwt.UnixSeconds(s.Now())
	header, err := jwt.EncodeSegment(domain.TokenHeader{Alg: key.Scheme, Typ: domain.TokenType})
	if err != nil {
		return "", fmt.Errorf("token header: %w", err)
	}
	payload, err := jwt.EncodeSegment(domain.TokenPayload{
		Data:      raw,
		IssuedAt:  jwt.FormatSeconds(iat),
		ExpiresAt: jwt.FormatSeconds(iat + ttl.Seconds()),
		Issuer:    key.Address,
	})
	if err != nil {
		return "", fmt.Errorf("token payload: %w", err)
	}

	sigHex, err := s.signer.Sign(jwt.SigningInput(header, payload), key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	sig, err := crypto.DecodeHex(sigHex)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return jwt.Join(header, payload, crypto.EncodeBase64URL(sig)), nil
}

// VerifyToken checks token and returns its claims. expectedPublicKey, when
// non-empty, overrides the key recovered from iss.
func (s *Service) VerifyToken(token string, expectedPublicKey string) (domain.Claims, error) {
	claims, scheme, err := s.verify(token, expectedPublicKey)
	s.metrics.Operation("verify_token", scheme, metrics.Outcome(err))
	return claims, err
}

// verify also reports the scheme it checked against, empty when the header
// named none this package supports.
func (s *Service) verify(token, expectedPublicKey string) (domain.Claims, domain.Scheme, error) {
	parts, err := jwt.Split(token)
	if err != nil {
		return domain.Claims{}, "", err
	}

	var header domain.TokenHeader
	if err := jwt.DecodeSegment(parts.Header, &header); err != nil {
		return domain.Claims{}, "", fmt.Errorf("%w: header: %v", domain.ErrMalformedToken, err)
	}
	scheme, err := crypto.SchemeFor(header.Alg)
	if err != nil {
		return domain.Claims{}, "", err
	}
	alg := scheme.Name()

	sig, err := crypto.DecodeBase64URL(parts.Signature)
	if err != nil {
		return domain.Claims{}, alg, fmt.Errorf("%w: signature: %v", domain.ErrMalformedToken, err)
	}

	var payload domain.TokenPayload
	if err := jwt.DecodeSegment(parts.Payload, &payload); err != nil {
		return domain.Claims{}, alg, fmt.Errorf(
			"%w: %w: payload: %v", domain.ErrMalformedToken, domain.ErrInvalidSignature, err,
		)
	}

	pubHex, err := issuerKey(payload.Issuer, expectedPublicKey)
	if err != nil {
		return domain.Claims{}, alg, err
	}
	ok, err := s.signer.Verify(parts.SigningInput(), crypto.EncodeHex(sig), pubHex, alg)
	if err != nil {
		return domain.Claims{}, alg, fmt.Errorf("%w: %v", domain.ErrInvalidSignature, err)
	}
	if !ok {
		return domain.Claims{}, alg, domain.ErrInvalidSignature
	}

	// A token without exp never expires.
	if payload.ExpiresAt != "" {
		exp, err := jwt.ParseSeconds(payload.ExpiresAt)
		if err != nil {
			return domain.Claims{}, alg, err
		}
		if exp <= jwt.UnixSeconds(s.Now()) {
			return domain.Claims{}, alg, fmt.Errorf("%w: exp %s", domain.ErrExpiredToken, payload.ExpiresAt)
		}
	}

	return domain.Claims{
		Data:      payload.Data,
		IssuedAt:  payload.IssuedAt,
		ExpiresAt: payload.ExpiresAt,
		Issuer:    payload.Issuer,
		Time:      payload.IssuedAt,
		Signature: "0x" + crypto.EncodeHex(sig),
		Alg:       alg,
		Typ:       header.Typ,
		Token:     token,
		Key:       payload.Issuer,
	}, alg, nil
}

// IssueDataToken issues a token whose data is the hex BLAKE2b-256 of data,
// binding the token to a request body without embedding it.
func (s *Service) IssueDataToken(data []byte, key domain.KeyMaterial, ttl time.Duration) (string, error) {
	return s.IssueToken(crypto.HashHex(data), key, ttl)
}

// VerifyDataToken verifies token and checks that it was issued for data.
func (s *Service) VerifyDataToken(token string, data []byte, expectedPublicKey string) (domain.Claims, error) {
	claims, err := s.VerifyToken(token, expectedPublicKey)
	if err != nil {
		return domain.Claims{}, err
	}
	var digest string
	if err := json.Unmarshal(claims.Data, &digest); err != nil || digest != crypto.HashHex(data) {
		return domain.Claims{}, domain.ErrDataMismatch
	}
	return claims, nil
}

// issuerKey picks the hex public key to verify against.
func issuerKey(issuer, expected string) (string, error) {
	if expected != "" {
		return expected, nil
	}
	if issuer == "" {
		return "", fmt.Errorf("%w: token has no issuer", domain.ErrInvalidSignature)
	}
	if pub, _, err := crypto.SS58Decode(issuer); err == nil {
		return crypto.EncodeHex(pub), nil
	}
	if _, err := crypto.DecodeHex(issuer); err == nil {
		return issuer, nil
	}
	return "", fmt.Errorf("%w: issuer %q is not a public key or address", domain.ErrInvalidSignature, issuer)
}

// Compile-time assertion that Service implements domain.TokenService.
var _ domain.TokenService = (*Service)(nil)
