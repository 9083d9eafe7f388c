package token_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"modhub/internal/crypto"
	"modhub/internal/domain"
	"modhub/internal/protocol/jwt"
	"modhub/internal/services/keys"
	"modhub/internal/services/signer"
	"modhub/internal/services/token"
)

func derive(t *testing.T, password string, scheme domain.Scheme) domain.KeyMaterial {
	t.Helper()
	k, err := keys.New(nil, crypto.DefaultNetwork, nil, nil).FromPassword(context.Background(), password, scheme)
	if err != nil {
		t.Fatalf("derive %s: %v", scheme, err)
	}
	return k
}

func newService() *token.Service { return token.New(signer.New(nil), nil) }

func TestToken_Lifecycle(t *testing.T) {
	svc := newService()
	key := derive(t, "test_password", domain.EdwardsSeeded)

	tok, err := svc.IssueToken(map[string]int{"foo": 1}, key, token.DefaultTTL)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := svc.VerifyToken(tok, "")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	var data struct{ Foo int }
	if err := json.Unmarshal(claims.Data, &data); err != nil || data.Foo != 1 {
		t.Fatalf("data: %s (%v)", claims.Data, err)
	}
	if claims.Issuer != key.Address || claims.Key != key.Address {
		t.Fatalf("issuer %q, want %q", claims.Issuer, key.Address)
	}
	if claims.Alg != domain.EdwardsSeeded || claims.Typ != domain.TokenType || claims.Token != tok {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if !strings.HasPrefix(claims.Signature, "0x") || claims.Time != claims.IssuedAt {
		t.Fatalf("derived fields: %+v", claims)
	}

	iat, err := jwt.ParseSeconds(claims.IssuedAt)
	if err != nil {
		t.Fatalf("iat: %v", err)
	}
	exp, err := jwt.ParseSeconds(claims.ExpiresAt)
	if err != nil {
		t.Fatalf("exp: %v", err)
	}
	if d := exp - iat; d < 3599.999 || d > 3600.001 {
		t.Fatalf("exp - iat = %v", d)
	}
}

func TestToken_WireShape(t *testing.T) {
	svc := newService()
	svc.Now = func() time.Time { return time.UnixMilli(1700000000250) }
	key := derive(t, "wire", domain.EdwardsSeeded)

	tok, err := svc.IssueToken("<&>", key, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	parts, err := jwt.Split(tok)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if strings.Contains(tok, "=") {
		t.Fatal("segments must be unpadded")
	}
	header, err := crypto.DecodeBase64URL(parts.Header)
	if err != nil {
		t.Fatalf("header: %v", err)
	}
	if string(header) != `{"alg":"sr25519","typ":"JWT"}` {
		t.Fatalf("header %s", header)
	}
	payload, err := crypto.DecodeBase64URL(parts.Payload)
	if err != nil {
		t.Fatalf("payload: %v", err)
	}
	want := `{"data":"<&>","iat":"1700000000.25","exp":"1700003600.25","iss":"` + key.Address + `"}`
	if string(payload) != want {
		t.Fatalf("payload\nwant %s\ngot  %s", want, payload)
	}
}

func TestToken_Expiry(t *testing.T) {
	svc := newService()
	key := derive(t, "expiry", domain.EdwardsSeeded)

	tok, err := svc.IssueToken("short", key, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	time.Sleep(200 * time.Millisecond)
	if _, err := svc.VerifyToken(tok, ""); !errors.Is(err, domain.ErrExpiredToken) {
		t.Fatalf("want ErrExpiredToken, got %v", err)
	}
}

func TestToken_ExpiryBoundary(t *testing.T) {
	svc := newService()
	start := time.UnixMilli(1700000000000)
	svc.Now = func() time.Time { return start }
	key := derive(t, "boundary", domain.EdwardsSeeded)

	tok, err := svc.IssueToken(1, key, time.Second)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	svc.Now = func() time.Time { return start.Add(999 * time.Millisecond) }
	if _, err := svc.VerifyToken(tok, ""); err != nil {
		t.Fatalf("before exp: %v", err)
	}
	svc.Now = func() time.Time { return start.Add(time.Second) }
	if _, err := svc.VerifyToken(tok, ""); !errors.Is(err, domain.ErrExpiredToken) {
		t.Fatalf("at exp: want ErrExpiredToken, got %v", err)
	}
}

func TestToken_PayloadTamper(t *testing.T) {
	svc := newService()
	key := derive(t, "tamper", domain.EdwardsSeeded)
	tok, err := svc.IssueToken(map[string]string{"role": "user"}, key, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	parts, err := jwt.Split(tok)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	for i := range parts.Payload {
		repl := byte('A')
		if parts.Payload[i] == repl {
			repl = 'B'
		}
		mutated := parts.Payload[:i] + string(repl) + parts.Payload[i+1:]
		_, err := svc.VerifyToken(jwt.Join(parts.Header, mutated, parts.Signature), "")
		if !errors.Is(err, domain.ErrInvalidSignature) {
			t.Fatalf("char %d: want ErrInvalidSignature, got %v", i, err)
		}
	}
}

func TestToken_ForeignSignature(t *testing.T) {
	svc := newService()
	alice := derive(t, "alice", domain.EdwardsSeeded)
	mallory := derive(t, "mallory", domain.EdwardsSeeded)

	genuine, err := svc.IssueToken("x", alice, time.Hour)
	if err != nil {
		t.Fatalf("issue alice: %v", err)
	}
	forged, err := svc.IssueToken("x", mallory, time.Hour)
	if err != nil {
		t.Fatalf("issue mallory: %v", err)
	}
	rp, _ := jwt.Split(genuine)
	fp, _ := jwt.Split(forged)
	if _, err := svc.VerifyToken(jwt.Join(rp.Header, rp.Payload, fp.Signature), ""); !errors.Is(err, domain.ErrInvalidSignature) {
		t.Fatalf("swapped signature: want ErrInvalidSignature, got %v", err)
	}
	if _, err := svc.VerifyToken(genuine, mallory.PublicKey); !errors.Is(err, domain.ErrInvalidSignature) {
		t.Fatalf("wrong expected key: want ErrInvalidSignature, got %v", err)
	}
	if _, err := svc.VerifyToken(genuine, alice.PublicKey); err != nil {
		t.Fatalf("explicit key: %v", err)
	}
}

func TestToken_Ecdsa(t *testing.T) {
	svc := newService()
	key := derive(t, "ecdsa", domain.EcdsaSecp256k1)

	tok, err := svc.IssueToken("payload", key, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := svc.VerifyToken(tok, key.PublicKey)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Alg != domain.EcdsaSecp256k1 || claims.Issuer != key.Address {
		t.Fatalf("claims %+v", claims)
	}
	// iss is a hash, not a key, so recovery from iss cannot succeed.
	if _, err := svc.VerifyToken(tok, ""); !errors.Is(err, domain.ErrInvalidSignature) {
		t.Fatalf("without key: want ErrInvalidSignature, got %v", err)
	}
}

func TestToken_Malformed(t *testing.T) {
	svc := newService()
	key := derive(t, "malformed", domain.EdwardsSeeded)
	tok, err := svc.IssueToken(1, key, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	parts, _ := jwt.Split(tok)

	for _, bad := range []string{
		"",
		"one.two",
		tok + ".extra",
		jwt.Join("!!!", parts.Payload, parts.Signature),
		jwt.Join(crypto.EncodeBase64URL([]byte("not json")), parts.Payload, parts.Signature),
		jwt.Join(parts.Header, parts.Payload, "***"),
	} {
		if _, err := svc.VerifyToken(bad, ""); !errors.Is(err, domain.ErrMalformedToken) {
			t.Fatalf("%q: want ErrMalformedToken, got %v", bad, err)
		}
	}

	garbage := jwt.Join(parts.Header, crypto.EncodeBase64URL([]byte("{")), parts.Signature)
	_, err = svc.VerifyToken(garbage, "")
	if !errors.Is(err, domain.ErrMalformedToken) || !errors.Is(err, domain.ErrInvalidSignature) {
		t.Fatalf("undecodable payload should be malformed and invalid, got %v", err)
	}
}

func TestToken_UnsupportedAlg(t *testing.T) {
	svc := newService()
	key := derive(t, "alg", domain.EdwardsSeeded)
	tok, err := svc.IssueToken(1, key, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	parts, _ := jwt.Split(tok)
	header, err := jwt.EncodeSegment(domain.TokenHeader{Alg: "rs256", Typ: domain.TokenType})
	if err != nil {
		t.Fatalf("header: %v", err)
	}
	if _, err := svc.VerifyToken(jwt.Join(header, parts.Payload, parts.Signature), ""); !errors.Is(err, domain.ErrUnsupportedScheme) {
		t.Fatalf("want ErrUnsupportedScheme, got %v", err)
	}
}

func TestToken_PaddedSegments(t *testing.T) {
	svc := newService()
	key := derive(t, "padding", domain.EdwardsSeeded)
	tok, err := svc.IssueToken("pad me", key, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	parts, _ := jwt.Split(tok)
	pad := func(s string) string {
		for len(s)%4 != 0 {
			s += "="
		}
		return s
	}
	// Padding the signature only: header.payload is what was signed.
	if _, err := svc.VerifyToken(jwt.Join(parts.Header, parts.Payload, pad(parts.Signature)), ""); err != nil {
		t.Fatalf("padded signature: %v", err)
	}
}

func TestToken_IssueRejects(t *testing.T) {
	svc := newService()
	key := derive(t, "rejects", domain.EdwardsSeeded)
	if _, err := svc.IssueToken(1, key, 0); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("zero ttl: want ErrInvalidInput, got %v", err)
	}
	if _, err := svc.IssueToken(make(chan int), key, time.Hour); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("unencodable data: want ErrInvalidInput, got %v", err)
	}
	bad := key
	bad.Scheme = "dsa"
	if _, err := svc.IssueToken(1, bad, time.Hour); !errors.Is(err, domain.ErrUnsupportedScheme) {
		t.Fatalf("unknown scheme: want ErrUnsupportedScheme, got %v", err)
	}
}

func TestDataToken(t *testing.T) {
	svc := newService()
	key := derive(t, "data", domain.EdwardsSeeded)
	body := []byte(`{"module":"hub","version":3}`)

	tok, err := svc.IssueDataToken(body, key, time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := svc.VerifyDataToken(tok, body, ""); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if _, err := svc.VerifyDataToken(tok, []byte(`{"module":"hub","version":4}`), ""); !errors.Is(err, domain.ErrDataMismatch) {
		t.Fatalf("other body: want ErrDataMismatch, got %v", err)
	}
}

func TestToken_ForgedExpiredReportsInvalidSignature(t *testing.T) {
	svc := newService()
	start := time.UnixMilli(1700000000000)
	svc.Now = func() time.Time { return start }
	key := derive(t, "forged-expired", domain.EdwardsSeeded)
	other := derive(t, "forged-expired-other", domain.EdwardsSeeded)

	tok, err := svc.IssueToken("x", key, time.Second)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	foreign, err := svc.IssueToken("y", other, time.Second)
	if err != nil {
		t.Fatalf("issue foreign: %v", err)
	}
	parts, _ := jwt.Split(tok)
	foreignParts, _ := jwt.Split(foreign)
	forged := jwt.Join(parts.Header, parts.Payload, foreignParts.Signature)

	svc.Now = func() time.Time { return start.Add(time.Hour) }
	// Signature is checked first, so an expired forgery is a forgery.
	_, err = svc.VerifyToken(forged, "")
	if !errors.Is(err, domain.ErrInvalidSignature) || errors.Is(err, domain.ErrExpiredToken) {
		t.Fatalf("forged expired: want only ErrInvalidSignature, got %v", err)
	}
	if _, err := svc.VerifyToken(tok, ""); !errors.Is(err, domain.ErrExpiredToken) {
		t.Fatalf("genuine expired: want ErrExpiredToken, got %v", err)
	}
}

// signRaw builds a token around an arbitrary payload object.
func signRaw(t *testing.T, key domain.KeyMaterial, payload any) string {
	t.Helper()
	header, err := jwt.EncodeSegment(domain.TokenHeader{Alg: key.Scheme, Typ: domain.TokenType})
	if err != nil {
		t.Fatalf("header: %v", err)
	}
	body, err := jwt.EncodeSegment(payload)
	if err != nil {
		t.Fatalf("payload: %v", err)
	}
	sigHex, err := signer.New(nil).Sign(jwt.SigningInput(header, body), key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	sig, err := crypto.DecodeHex(sigHex)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return jwt.Join(header, body, crypto.EncodeBase64URL(sig))
}

func TestToken_WithoutExp(t *testing.T) {
	svc := newService()
	key := derive(t, "no-exp", domain.EdwardsSeeded)

	tok := signRaw(t, key, map[string]any{"data": "forever", "iat": "1", "iss": key.Address})
	claims, err := svc.VerifyToken(tok, "")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.ExpiresAt != "" || string(claims.Data) != `"forever"` {
		t.Fatalf("claims %+v", claims)
	}

	bad := signRaw(t, key, map[string]any{"data": 1, "iat": "1", "exp": "soon", "iss": key.Address})
	if _, err := svc.VerifyToken(bad, ""); !errors.Is(err, domain.ErrMalformedToken) {
		t.Fatalf("non-numeric exp: want ErrMalformedToken, got %v", err)
	}
}
