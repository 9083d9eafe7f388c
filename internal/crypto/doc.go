// Package crypto exposes the primitives used by the wallet.
//
// Contents
//
//   - Signature schemes behind the sealed Scheme interface: sr25519
//     (EdwardsSeeded) and ECDSA over secp256k1 (SchemeFor, Sr25519, Secp256k1)
//   - BLAKE2b-256 hashing for seeds, message digests and fingerprints
//     (Blake2b256, HashHex)
//   - SS58 address encoding and decoding (SS58Encode, SS58Decode)
//   - NaCl secretbox and box sealing keyed from wallet private keys
//     (SealSymmetric, OpenSymmetric, SealBox, OpenBox, BoxPublicKey)
//   - Hex and padding-tolerant base64url helpers
//   - BIP-39 mnemonics, random passwords, and the one-time backend
//     readiness gate (Ready)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// Errors caused by bad caller input wrap types.ErrInvalidInput. Verification
// functions report a structurally valid but wrong signature as false with a
// nil error.
package crypto
