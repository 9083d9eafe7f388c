package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"modhub/internal/domain/types"
)

// DefaultPasswordLength matches the length of generated wallet passwords.
const DefaultPasswordLength = 16

const passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()_-+=<>?"

// GeneratePassword returns a uniformly random password over passwordCharset.
func GeneratePassword(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("%w: password length must be positive", types.ErrInvalidInput)
	}
	limit := big.NewInt(int64(len(passwordCharset)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("password: %w", err)
		}
		out[i] = passwordCharset[n.Int64()]
	}
	return string(out), nil
}
