// Package jwt implements the compact three-segment token form used by the
// token service.
//
// # Wire format
//
// A token is
//
//	base64url(JSON(header)) "." base64url(JSON(payload)) "." base64url(signature)
//
// with '=' padding stripped from every segment. The header is
// {"alg","typ"} and the payload is {"data","iat","exp","iss"}, in that field
// order. iat and exp are JSON strings holding decimal seconds since the Unix
// epoch (for example "1700000000.123"), not JSON numbers. Tokens already in
// circulation depend on that shape.
//
// JSON is written without HTML escaping so that '<', '>' and '&' in data
// survive byte-for-byte.
//
// # Decoding
//
// Segments are accepted with or without padding. Split only checks the
// segment count; callers decide how each decode failure is classified.
//
// The signature covers the ASCII signing input "header.payload" exactly as
// it appears in the token, never a re-encoding of the decoded JSON.
package jwt
