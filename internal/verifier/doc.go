// Package verifier exposes token and signature verification over HTTP, and
// provides the matching client.
//
// # HTTP API
//
//	POST /v1/token/verify       {"token", "public_key"?}             -> Claims
//	POST /v1/data-token/verify  {"token", "data", "public_key"?}     -> Claims
//	POST /v1/signature/verify   {"message","signature","public_key","scheme"} -> {"valid"}
//	GET  /healthz
//	GET  /metrics               Prometheus exposition
//
// Failures carry {"error","kind"} where kind is a stable label for the
// sentinel error behind the failure. Status codes:
//
//	400 invalid input, malformed token
//	401 invalid signature, expired token, data mismatch
//	422 unsupported scheme
//	429 rate limited (per client address)
//
// The client maps kind back onto the domain sentinel errors, so errors.Is
// works the same against a remote verifier as against the local services.
package verifier
