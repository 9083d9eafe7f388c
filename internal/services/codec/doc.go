// Package codec encrypts and decrypts text with NaCl primitives keyed by
// wallet key material.
//
// Symmetric envelopes use secretbox under the first 32 private key bytes.
// Asymmetric envelopes use box between the sender's key and the recipient's
// X25519 box public key (domain.KeyMaterial.BoxPublicKey). Every call draws a
// fresh random nonce.
//
// Any failure to open an envelope, including undecodable hex, surfaces as
// domain.ErrDecryptionFailed.
package codec
