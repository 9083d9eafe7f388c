// Package keys turns a password, a raw private key or a BIP-39 mnemonic into
// immutable key material for one of the two signature schemes.
//
// Derivation is deterministic: the same input and scheme always yield the
// same address and key pair. Password seeds are BLAKE2b-256 of the UTF-8
// password; mnemonic seeds are the first 32 bytes of the BIP-39 seed.
//
// The service also manages the default wallet password, kept in an injected
// domain.SecretStore rather than ambient state.
package keys
