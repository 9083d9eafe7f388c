package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Blake2b256 returns the 256-bit BLAKE2b digest of b.
func Blake2b256(b []byte) [32]byte { return blake2b.Sum256(b) }

// HashHex returns the lowercase hex BLAKE2b-256 digest of b.
func HashHex(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:])
}
