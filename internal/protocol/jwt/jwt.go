package jwt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"modhub/internal/crypto"
	"modhub/internal/domain/types"
)

const segmentCount = 3

// Parts holds the three raw segments of a token.
type Parts struct {
	Header    string
	Payload   string
	Signature string
}

// SigningInput is the string the signature covers.
func (p Parts) SigningInput() string { return SigningInput(p.Header, p.Payload) }

// Split breaks a token into its segments. Anything other than exactly three
// dot-separated segments is ErrMalformedToken.
func Split(token string) (Parts, error) {
	segs := strings.Split(token, ".")
	if len(segs) != segmentCount {
		return Parts{}, fmt.Errorf("%w: want %d segments, got %d", types.ErrMalformedToken, segmentCount, len(segs))
	}
	return Parts{Header: segs[0], Payload: segs[1], Signature: segs[2]}, nil
}

// Join assembles a token from encoded segments.
func Join(header, payload, signature string) string {
	return header + "." + payload + "." + signature
}

// SigningInput joins the header and payload segments.
func SigningInput(header, payload string) string { return header + "." + payload }

// EncodeSegment marshals v without HTML escaping and base64url-encodes it.
func EncodeSegment(v any) (string, error) {
	raw, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return crypto.EncodeBase64URL(raw), nil
}

// DecodeSegment base64url-decodes seg and unmarshals it into v.
func DecodeSegment(seg string, v any) error {
	raw, err := crypto.DecodeBase64URL(seg)
	if err != nil {
		return fmt.Errorf("base64url: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("json: %w", err)
	}
	return nil
}

// Marshal is json.Marshal without HTML escaping or the trailing newline
// json.Encoder adds.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnixSeconds returns t as fractional seconds at millisecond precision.
func UnixSeconds(t time.Time) float64 {
	return float64(t.UnixMilli()) / 1000
}

// FormatSeconds renders seconds in the shortest decimal form that parses back
// to the same value.
func FormatSeconds(sec float64) types.Seconds {
	return types.Seconds(strconv.FormatFloat(sec, 'f', -1, 64))
}

// ParseSeconds reads a claim written by FormatSeconds or by another issuer.
func ParseSeconds(s types.Seconds) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(s)), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: seconds claim %q", types.ErrMalformedToken, string(s))
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: seconds claim %q is not finite", types.ErrMalformedToken, string(s))
	}
	return v, nil
}
