// Package signer signs UTF-8 messages with wallet key material and verifies
// hex signatures for either scheme, including signatures from public keys
// that never passed through this process.
package signer
