// Package app loads configuration and wires application dependencies for
// both binaries.
//
// Configuration starts from DefaultConfig, is overlaid by <home>/config.yaml
// when present, and finally by command-line flags. NewWire builds the
// concrete stores, services, metrics registry and verifier client from a
// Config and exposes them through the Wire struct.
package app
