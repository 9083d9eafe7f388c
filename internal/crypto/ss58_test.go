package crypto_test

import (
	"bytes"
	"errors"
	"testing"

	"modhub/internal/crypto"
	"modhub/internal/domain/types"
)

func TestSS58Encode_KnownAddress(t *testing.T) {
	pub, err := crypto.DecodeHex("d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got, err := crypto.SS58Encode(pub, crypto.DefaultNetwork)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	const want = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"
	if got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestSS58_RoundTrip(t *testing.T) {
	pub := testSeed("ss58")
	for _, network := range []uint16{0, 2, 42, 63, 64, 255, 1284, 16383} {
		addr, err := crypto.SS58Encode(pub, network)
		if err != nil {
			t.Fatalf("network %d encode: %v", network, err)
		}
		gotPub, gotNet, err := crypto.SS58Decode(addr)
		if err != nil {
			t.Fatalf("network %d decode: %v", network, err)
		}
		if gotNet != network || !bytes.Equal(gotPub, pub) {
			t.Fatalf("network %d: round trip mismatch (net=%d)", network, gotNet)
		}
	}
}

func TestSS58_Rejects(t *testing.T) {
	if _, err := crypto.SS58Encode(make([]byte, 31), crypto.DefaultNetwork); !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("short key: want ErrInvalidInput, got %v", err)
	}
	if _, err := crypto.SS58Encode(make([]byte, 32), 16384); !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("network range: want ErrInvalidInput, got %v", err)
	}

	addr, err := crypto.SS58Encode(testSeed("checksum"), crypto.DefaultNetwork)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// Swap the last character for another base58 digit to break the checksum.
	last := addr[len(addr)-1]
	repl := byte('2')
	if last == repl {
		repl = '3'
	}
	broken := addr[:len(addr)-1] + string(repl)
	if _, _, err := crypto.SS58Decode(broken); !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("checksum: want ErrInvalidInput, got %v", err)
	}
	if _, _, err := crypto.SS58Decode("not-base58-0OIl"); !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("alphabet: want ErrInvalidInput, got %v", err)
	}
}
