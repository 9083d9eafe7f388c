package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"modhub/internal/domain/types"
)

// EncodeHex returns lowercase hex without a 0x prefix.
func EncodeHex(b []byte) string { return hex.EncodeToString(b) }

// DecodeHex accepts hex with or without a 0x prefix.
func DecodeHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	if s == "" {
		return nil, fmt.Errorf("%w: empty hex string", types.ErrInvalidInput)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidInput, err)
	}
	return b, nil
}

// EncodeBase64URL returns URL-safe base64 with padding stripped.
func EncodeBase64URL(b []byte) string { return base64.RawURLEncoding.EncodeToString(b) }

// DecodeBase64URL decodes URL-safe base64 whether or not it carries '=' padding.
func DecodeBase64URL(s string) ([]byte, error) {
	return base64.RawURLEncoding.Strict().DecodeString(strings.TrimRight(s, "="))
}
