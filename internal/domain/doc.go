// Package domain defines core data models and interfaces shared across the wallet.
// It contains plain types (key material, envelopes, token claims), sentinel
// errors and contracts (interfaces) only.
package domain
