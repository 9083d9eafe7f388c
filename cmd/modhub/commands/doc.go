// Package commands defines the modhub wallet CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - init            Derive a key and save it under a name
//   - list            List saved keys
//   - show            Print a saved key's address and public keys
//   - sign            Sign a message with a saved key
//   - verify          Verify a signature, locally or against a verifier
//   - encrypt         Encrypt a message (secretbox, or box with --to)
//   - decrypt         Decrypt an envelope
//   - token issue     Issue a signed token
//   - token verify    Verify a token, locally or against a verifier
//   - hash            Print the BLAKE2b-256 hex digest of a message
//   - mnemonic        Print a fresh BIP-39 phrase
//   - password        Generate or clear the default wallet password
//
// # Implementation
//
// The root command loads <home>/config.yaml, applies flag overrides, builds
// the logger and the dependency graph (app.NewWire) before any subcommand
// runs. Output goes to the command's stdout; logs go to stderr.
package commands
