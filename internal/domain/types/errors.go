package types

import "errors"

var (
	// ErrInvalidInput marks empty or malformed arguments.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupportedScheme is returned for scheme names outside the known set.
	ErrUnsupportedScheme = errors.New("unsupported crypto type")
	// ErrDecryptionFailed is returned when a ciphertext does not authenticate.
	ErrDecryptionFailed = errors.New("failed to decrypt message")
	// ErrMalformedToken is returned when a token does not split or decode.
	ErrMalformedToken = errors.New("token is malformed")
	// ErrExpiredToken is returned once a token's exp claim has passed.
	ErrExpiredToken = errors.New("token has expired")
	// ErrInvalidSignature is returned when a token signature does not verify.
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrDataMismatch is returned when a data token does not carry the hash of the presented data.
	ErrDataMismatch = errors.New("token data does not match")

	// ErrKeyNotFound is returned by key stores for unknown names.
	ErrKeyNotFound = errors.New("key not found")
	// ErrWrongPassphrase is returned when a sealed key cannot be opened.
	ErrWrongPassphrase = errors.New("wrong passphrase or corrupted key file")
)
