package crypto

import (
	"fmt"

	"github.com/tyler-smith/go-bip39"

	"modhub/internal/domain/types"
)

// mnemonicEntropyBits yields a 12-word phrase.
const mnemonicEntropyBits = 128

// NewMnemonic returns a fresh BIP-39 phrase.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", fmt.Errorf("mnemonic entropy: %w", err)
	}
	defer Wipe(entropy)
	return bip39.NewMnemonic(entropy)
}

// SeedFromMnemonic validates the phrase and returns the first 32 bytes of
// its BIP-39 seed, usable as a scheme seed.
func SeedFromMnemonic(mnemonic, password string) ([]byte, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, password)
	if err != nil {
		return nil, fmt.Errorf("%w: mnemonic: %v", types.ErrInvalidInput, err)
	}
	out := append([]byte(nil), seed[:32]...)
	Wipe(seed)
	return out, nil
}
