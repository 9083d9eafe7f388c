// Package store provides file-based persistence for wallet keys and small
// secrets.
//
// Layout under the configured home directory:
//
//	keys/<name>.json   one file per saved key (KeyFileStore)
//	secrets.json       named secrets such as the default password (SecretFileStore)
//
// Key files keep the scheme, address and public keys in clear so keys can be
// listed and shown without a passphrase. The private key is sealed with
// ChaCha20-Poly1305 under a scrypt-derived key; the salt and the key name are
// bound as associated data, so a sealed blob copied into another key file
// does not open.
//
// Writes go through a temp file and rename. All methods are safe for
// concurrent use within one process.
package store
