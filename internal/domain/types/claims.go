package types

import (
	"encoding/json"
	"strings"
)

// TokenType is the typ header of every issued token.
const TokenType = "JWT"

// TokenHeader is the first token segment.
type TokenHeader struct {
	Alg Scheme `json:"alg"`
	Typ string `json:"typ"`
}

// TokenPayload is the second token segment. Field order is the wire order.
type TokenPayload struct {
	Data      json.RawMessage `json:"data"`
	IssuedAt  Seconds         `json:"iat"`
	ExpiresAt Seconds         `json:"exp"`
	Issuer    string          `json:"iss"`
}

// Claims is what token verification returns: the payload plus derived fields.
type Claims struct {
	Data      json.RawMessage `json:"data"`
	IssuedAt  Seconds         `json:"iat"`
	ExpiresAt Seconds         `json:"exp"`
	Issuer    string          `json:"iss"`

	Time      Seconds `json:"time"`
	Signature string  `json:"signature"` // 0x-prefixed hex
	Alg       Scheme  `json:"alg"`
	Typ       string  `json:"typ"`
	Token     string  `json:"token"`
	Key       string  `json:"key"`
}

// Seconds is a decimal seconds-since-epoch value carried as a JSON string.
//
// Issued tokens always encode it as a string; decoding also accepts a bare
// JSON number so tokens minted by other issuers still parse.
type Seconds string

// String returns the decimal form.
func (s Seconds) String() string { return string(s) }

// UnmarshalJSON accepts "1700000000.5" and 1700000000.5 alike.
func (s *Seconds) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if strings.HasPrefix(trimmed, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = Seconds(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = Seconds(n.String())
	return nil
}
