package jwt_test

import (
	"errors"
	"testing"
	"time"

	"modhub/internal/domain/types"
	"modhub/internal/protocol/jwt"
)

func TestSplit(t *testing.T) {
	p, err := jwt.Split("a.b.c")
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if p.Header != "a" || p.Payload != "b" || p.Signature != "c" {
		t.Fatalf("unexpected parts %+v", p)
	}
	if p.SigningInput() != "a.b" {
		t.Fatalf("signing input %q", p.SigningInput())
	}
	if jwt.Join(p.Header, p.Payload, p.Signature) != "a.b.c" {
		t.Fatal("join did not reverse split")
	}
	for _, bad := range []string{"", "a", "a.b", "a.b.c.d"} {
		if _, err := jwt.Split(bad); !errors.Is(err, types.ErrMalformedToken) {
			t.Fatalf("%q: want ErrMalformedToken, got %v", bad, err)
		}
	}
}

func TestEncodeSegment_HeaderBytes(t *testing.T) {
	seg, err := jwt.EncodeSegment(types.TokenHeader{Alg: types.EdwardsSeeded, Typ: types.TokenType})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// base64url of {"alg":"sr25519","typ":"JWT"} without padding.
	const want = "eyJhbGciOiJzcjI1NTE5IiwidHlwIjoiSldUIn0"
	if seg != want {
		t.Fatalf("want %s, got %s", want, seg)
	}
	var h types.TokenHeader
	if err := jwt.DecodeSegment(seg+"=", &h); err != nil {
		t.Fatalf("decode padded: %v", err)
	}
	if h.Alg != types.EdwardsSeeded || h.Typ != types.TokenType {
		t.Fatalf("decoded %+v", h)
	}
}

func TestMarshal_NoHTMLEscaping(t *testing.T) {
	raw, err := jwt.Marshal(map[string]string{"q": "<a&b>"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"q":"<a&b>"}` {
		t.Fatalf("got %s", raw)
	}
}

func TestSeconds(t *testing.T) {
	ts := time.UnixMilli(1700000000123)
	s := jwt.FormatSeconds(jwt.UnixSeconds(ts))
	if s != "1700000000.123" {
		t.Fatalf("got %s", s)
	}
	if got := jwt.FormatSeconds(jwt.UnixSeconds(time.UnixMilli(1700000000000))); got != "1700000000" {
		t.Fatalf("whole seconds: got %s", got)
	}
	v, err := jwt.ParseSeconds(s)
	if err != nil || v != 1700000000.123 {
		t.Fatalf("parse: %v %v", v, err)
	}
	for _, bad := range []types.Seconds{"", "soon", "NaN", "+Inf"} {
		if _, err := jwt.ParseSeconds(bad); !errors.Is(err, types.ErrMalformedToken) {
			t.Fatalf("%q: want ErrMalformedToken, got %v", bad, err)
		}
	}
}
