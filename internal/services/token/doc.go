// Package token issues and verifies the wallet's compact signed tokens.
//
// Issuing builds {alg,typ} and {data,iat,exp,iss} segments (see package
// protocol/jwt for the wire form), signs "header.payload" through a
// domain.SignerService and appends the base64url signature.
//
// # Verification order
//
//  1. Exactly three segments, decodable header and signature, known alg.
//  2. Payload decode. A payload that no longer decodes was altered after
//     signing, so the error matches both ErrMalformedToken and
//     ErrInvalidSignature.
//  3. Signature, against the caller's public key when given, otherwise the
//     key recovered from iss (an SS58 address or a hex public key).
//  4. Expiry: exp, when present, must be strictly later than now.
//
// The signature is checked before expiry so that any change to the payload,
// exp included, is reported as an invalid signature. ecdsa issuers carry a
// hash rather than a public key in iss, so their tokens only verify with an
// explicit public key.
package token
