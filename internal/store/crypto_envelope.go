package store

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"modhub/internal/domain"
)

// sealedFormatVersion is the current version of the sealed blob.
const sealedFormatVersion = 1

// sealedBlob is the on-disk JSON structure holding the ciphertext and KDF parameters.
type sealedBlob struct {
	V      int    `json:"v"`
	Salt   []byte `json:"salt"`
	N      int    `json:"scrypt_N"`
	R      int    `json:"scrypt_r"`
	P      int    `json:"scrypt_p"`
	Cipher []byte `json:"cipher"`
}

// scryptParams are the KDF cost parameters.
type scryptParams struct{ N, R, P int }

// defaultScrypt is interactive-login strength.
var defaultScrypt = scryptParams{N: 1 << 15, R: 8, P: 1}

// Upper bounds on parameters read back from disk. N=1<<20 with r=8 already
// needs 1 GiB of memory.
const (
	maxScryptN  = 1 << 20
	maxScryptRP = 1 << 6
)

// check rejects parameters that would make key derivation unbounded.
func (p scryptParams) check() error {
	if p.N < 2 || p.N > maxScryptN || p.N&(p.N-1) != 0 {
		return fmt.Errorf("scrypt N=%d out of range", p.N)
	}
	if p.R < 1 || p.P < 1 || p.R*p.P > maxScryptRP {
		return fmt.Errorf("scrypt r=%d p=%d out of range", p.R, p.P)
	}
	return nil
}

// seal derives a key from passphrase and encrypts raw, binding label.
func seal(passphrase string, raw, label []byte, kdf scryptParams) (sealedBlob, error) {
	var salt [16]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return sealedBlob{}, err
	}
	aead, err := newAEAD(passphrase, salt[:], kdf)
	if err != nil {
		return sealedBlob{}, err
	}
	// Zero nonce: every seal draws a fresh salt, hence a fresh key.
	var nonce [chacha20poly1305.NonceSize]byte
	ct := aead.Seal(nil, nonce[:], raw, associatedData(salt[:], label))

	return sealedBlob{
		V:      sealedFormatVersion,
		Salt:   salt[:],
		N:      kdf.N,
		R:      kdf.R,
		P:      kdf.P,
		Cipher: ct,
	}, nil
}

// open reverses seal. A wrong passphrase, a different label or a modified
// blob all yield ErrWrongPassphrase.
func open(passphrase string, b sealedBlob, label []byte) ([]byte, error) {
	if b.V > sealedFormatVersion {
		return nil, fmt.Errorf("unsupported sealed key version %d", b.V)
	}
	kdf := scryptParams{N: b.N, R: b.R, P: b.P}
	if err := kdf.check(); err != nil {
		return nil, fmt.Errorf("sealed key: %w", err)
	}
	aead, err := newAEAD(passphrase, b.Salt, kdf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWrongPassphrase, err)
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], b.Cipher, associatedData(b.Salt, label))
	if err != nil {
		return nil, domain.ErrWrongPassphrase
	}
	return pt, nil
}

func newAEAD(passphrase string, salt []byte, kdf scryptParams) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(passphrase), salt, kdf.N, kdf.R, kdf.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, err
	}
	return chacha20poly1305.New(key)
}

func associatedData(salt, label []byte) []byte {
	ad := make([]byte, 0, len(salt)+len(label))
	ad = append(ad, salt...)
	return append(ad, label...)
}
