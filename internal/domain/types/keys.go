package types

import "log/slog"

// KeyMaterial is a derived key pair together with its scheme and address.
//
// All byte fields are lowercase hex without a 0x prefix. Values are built
// by the keys service and are not modified afterwards.
type KeyMaterial struct {
	Scheme     Scheme `json:"crypto_type"`
	Address    string `json:"address"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`

	// BoxPublicKey is the X25519 key peers encrypt to.
	BoxPublicKey string `json:"box_public_key"`
}

// LogValue keeps the private key out of structured logs.
func (k KeyMaterial) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("scheme", k.Scheme.String()),
		slog.String("address", k.Address),
		slog.String("public_key", k.PublicKey),
	)
}

// EncryptedEnvelope is the output of the message codec.
type EncryptedEnvelope struct {
	Ciphertext string `json:"ciphertext"`
	Nonce      string `json:"nonce"`
}
