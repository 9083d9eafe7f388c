package crypto

import (
	"bytes"
	"fmt"

	"github.com/mr-tron/base58/base58"
	"golang.org/x/crypto/blake2b"

	"modhub/internal/domain/types"
)

// DefaultNetwork is the generic Substrate SS58 prefix.
const DefaultNetwork uint16 = 42

const (
	ss58ChecksumSize = 2
	ss58MaxNetwork   = 16383
)

var ss58Preimage = []byte("SS58PRE")

// SS58Encode renders a 32-byte public key as an SS58 address for network.
func SS58Encode(pub []byte, network uint16) (string, error) {
	if len(pub) != sr25519PublicSize {
		return "", fmt.Errorf("%w: ss58 public key must be %d bytes, got %d", types.ErrInvalidInput, sr25519PublicSize, len(pub))
	}
	var prefix []byte
	switch {
	case network < 64:
		prefix = []byte{byte(network)}
	case network <= ss58MaxNetwork:
		first := byte((network&0b0000_0000_1111_1100)>>2) | 0b0100_0000
		second := byte(network>>8) | byte(network&0b0000_0000_0000_0011)<<6
		prefix = []byte{first, second}
	default:
		return "", fmt.Errorf("%w: ss58 network %d out of range", types.ErrInvalidInput, network)
	}

	body := make([]byte, 0, len(prefix)+len(pub)+ss58ChecksumSize)
	body = append(body, prefix...)
	body = append(body, pub...)
	sum := ss58Checksum(body)
	return base58.Encode(append(body, sum[:ss58ChecksumSize]...)), nil
}

// SS58Decode parses an SS58 address into its public key and network prefix.
func SS58Decode(address string) ([]byte, uint16, error) {
	raw, err := base58.Decode(address)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: ss58: %v", types.ErrInvalidInput, err)
	}
	if len(raw) < 1 {
		return nil, 0, fmt.Errorf("%w: ss58: empty address", types.ErrInvalidInput)
	}

	var (
		prefixLen int
		network   uint16
	)
	switch {
	case raw[0] < 64:
		prefixLen, network = 1, uint16(raw[0])
	case raw[0] < 128:
		if len(raw) < 2 {
			return nil, 0, fmt.Errorf("%w: ss58: truncated prefix", types.ErrInvalidInput)
		}
		lower := (raw[0] << 2) | (raw[1] >> 6)
		upper := raw[1] & 0b0011_1111
		prefixLen, network = 2, uint16(lower)|uint16(upper)<<8
	default:
		return nil, 0, fmt.Errorf("%w: ss58: invalid prefix byte %d", types.ErrInvalidInput, raw[0])
	}

	if len(raw) != prefixLen+sr25519PublicSize+ss58ChecksumSize {
		return nil, 0, fmt.Errorf("%w: ss58: unexpected length %d", types.ErrInvalidInput, len(raw))
	}
	body := raw[:len(raw)-ss58ChecksumSize]
	sum := ss58Checksum(body)
	if !bytes.Equal(sum[:ss58ChecksumSize], raw[len(body):]) {
		return nil, 0, fmt.Errorf("%w: ss58: checksum mismatch", types.ErrInvalidInput)
	}
	return append([]byte(nil), body[prefixLen:]...), network, nil
}

func ss58Checksum(body []byte) [blake2b.Size]byte {
	pre := make([]byte, 0, len(ss58Preimage)+len(body))
	pre = append(pre, ss58Preimage...)
	pre = append(pre, body...)
	return blake2b.Sum512(pre)
}
