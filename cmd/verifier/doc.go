// Package main runs the modhub verifier: a stateless HTTP service that checks
// tokens and signatures on behalf of callers that hold no keys.
//
// HTTP API
//
//	POST /v1/token/verify       { "token", "public_key"? }             -> Claims
//	POST /v1/data-token/verify  { "token", "data", "public_key"? }     -> Claims
//	POST /v1/signature/verify   { "message", "signature", "public_key", "scheme" }
//	GET  /healthz
//	GET  /metrics               Prometheus exposition
//
// Behaviour
//
//   - Nothing is persisted. The server never sees private keys.
//   - Requests are limited per client address (rate_limit in config.yaml).
//   - Errors are JSON { "error", "kind" } with 400, 401, 422 or 429.
//   - Each request is logged at info with route, status and duration.
//   - The listen address comes from config.yaml (default 127.0.0.1:8787)
//     or --listen.
//
// SIGINT and SIGTERM trigger a graceful shutdown bounded by --shutdown-timeout.
package main
