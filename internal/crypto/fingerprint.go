package crypto

import (
	"encoding/hex"

	"modhub/internal/domain/types"
)

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(pub []byte) types.Fingerprint {
	sum := Blake2b256(pub)
	return types.Fingerprint(hex.EncodeToString(sum[:10]))
}
