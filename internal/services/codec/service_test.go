package codec_test

import (
	"context"
	"errors"
	"testing"

	"modhub/internal/crypto"
	"modhub/internal/domain"
	"modhub/internal/services/codec"
	"modhub/internal/services/keys"
)

func derive(t *testing.T, password string, scheme domain.Scheme) domain.KeyMaterial {
	t.Helper()
	k, err := keys.New(nil, crypto.DefaultNetwork, nil, nil).FromPassword(context.Background(), password, scheme)
	if err != nil {
		t.Fatalf("derive %s: %v", scheme, err)
	}
	return k
}

var messages = []string{"", "plain ascii ~!@#", "ünïcødé 日本語 🚀", "line\nbreaks\tand tabs"}

func TestSymmetric_RoundTrip(t *testing.T) {
	svc := codec.New(nil)
	for _, scheme := range []domain.Scheme{domain.EdwardsSeeded, domain.EcdsaSecp256k1} {
		key := derive(t, "symmetric", scheme)
		for _, m := range messages {
			env, err := svc.EncryptSymmetric(m, key)
			if err != nil {
				t.Fatalf("%s encrypt %q: %v", scheme, m, err)
			}
			got, err := svc.DecryptSymmetric(env, key)
			if err != nil {
				t.Fatalf("%s decrypt %q: %v", scheme, m, err)
			}
			if got != m {
				t.Fatalf("%s: want %q, got %q", scheme, m, got)
			}
		}
	}
}

func TestAsymmetric_RoundTrip(t *testing.T) {
	svc := codec.New(nil)
	alice := derive(t, "alice", domain.EdwardsSeeded)
	bob := derive(t, "bob", domain.EcdsaSecp256k1)
	for _, m := range messages {
		env, err := svc.EncryptAsymmetric(m, alice, bob.BoxPublicKey)
		if err != nil {
			t.Fatalf("encrypt %q: %v", m, err)
		}
		got, err := svc.DecryptAsymmetric(env, bob, alice.BoxPublicKey)
		if err != nil {
			t.Fatalf("decrypt %q: %v", m, err)
		}
		if got != m {
			t.Fatalf("want %q, got %q", m, got)
		}
	}
}

func TestDecrypt_TamperFails(t *testing.T) {
	svc := codec.New(nil)
	key := derive(t, "tamper", domain.EdwardsSeeded)
	other := derive(t, "someone else", domain.EdwardsSeeded)

	env, err := svc.EncryptSymmetric("secret", key)
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	flip := func(h string) string {
		b, err := crypto.DecodeHex(h)
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		b[len(b)/2] ^= 0x01
		return crypto.EncodeHex(b)
	}

	cases := []struct {
		name string
		env  domain.EncryptedEnvelope
		key  domain.KeyMaterial
	}{
		{"ciphertext", domain.EncryptedEnvelope{Ciphertext: flip(env.Ciphertext), Nonce: env.Nonce}, key},
		{"nonce", domain.EncryptedEnvelope{Ciphertext: env.Ciphertext, Nonce: flip(env.Nonce)}, key},
		{"short nonce", domain.EncryptedEnvelope{Ciphertext: env.Ciphertext, Nonce: env.Nonce[:8]}, key},
		{"non-hex", domain.EncryptedEnvelope{Ciphertext: "xyz", Nonce: env.Nonce}, key},
		{"wrong key", env, other},
	}
	for _, tc := range cases {
		if _, err := svc.DecryptSymmetric(tc.env, tc.key); !errors.Is(err, domain.ErrDecryptionFailed) {
			t.Fatalf("%s: want ErrDecryptionFailed, got %v", tc.name, err)
		}
	}

	alice := derive(t, "alice", domain.EdwardsSeeded)
	boxed, err := svc.EncryptAsymmetric("for bob", alice, other.BoxPublicKey)
	if err != nil {
		t.Fatalf("encrypt asymmetric: %v", err)
	}
	if _, err := svc.DecryptAsymmetric(boxed, key, alice.BoxPublicKey); !errors.Is(err, domain.ErrDecryptionFailed) {
		t.Fatalf("wrong recipient: want ErrDecryptionFailed, got %v", err)
	}
}

func TestEncryptAsymmetric_BadRecipient(t *testing.T) {
	svc := codec.New(nil)
	key := derive(t, "recipient", domain.EdwardsSeeded)
	if _, err := svc.EncryptAsymmetric("m", key, "nothex"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput, got %v", err)
	}
}

func TestHash(t *testing.T) {
	svc := codec.New(nil)
	if svc.Hash("abc") != crypto.HashHex([]byte("abc")) {
		t.Fatal("hash should be BLAKE2b-256 hex")
	}
	if svc.Hash("abc") == svc.Hash("abd") {
		t.Fatal("distinct inputs collide")
	}
}
