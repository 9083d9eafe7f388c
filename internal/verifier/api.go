package verifier

import (
	"errors"
	"net/http"

	"modhub/internal/domain"
	"modhub/internal/metrics"
)

// ErrRateLimited is returned by the client when the server refused a request.
var ErrRateLimited = errors.New("verifier rate limit exceeded")

// TokenRequest asks for a token to be verified.
type TokenRequest struct {
	Token     string `json:"token"`
	PublicKey string `json:"public_key,omitempty"`
}

// DataTokenRequest asks for a data token to be verified against data.
type DataTokenRequest struct {
	Token     string `json:"token"`
	Data      string `json:"data"`
	PublicKey string `json:"public_key,omitempty"`
}

// SignatureRequest asks for a detached signature to be verified.
type SignatureRequest struct {
	Message   string        `json:"message"`
	Signature string        `json:"signature"`
	PublicKey string        `json:"public_key"`
	Scheme    domain.Scheme `json:"scheme"`
}

// SignatureResponse reports the verification result.
type SignatureResponse struct {
	Valid bool `json:"valid"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

const kindRateLimited = "rate_limited"

// kindErrors maps wire kinds back onto sentinel errors.
var kindErrors = map[string]error{
	"invalid_input":      domain.ErrInvalidInput,
	"unsupported_scheme": domain.ErrUnsupportedScheme,
	"malformed":          domain.ErrMalformedToken,
	"expired":            domain.ErrExpiredToken,
	"invalid_signature":  domain.ErrInvalidSignature,
	"data_mismatch":      domain.ErrDataMismatch,
	kindRateLimited:      ErrRateLimited,
}

// StatusFor maps a verification error onto an HTTP status code.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrUnsupportedScheme):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrExpiredToken),
		errors.Is(err, domain.ErrInvalidSignature),
		errors.Is(err, domain.ErrDataMismatch):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrMalformedToken):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// kindFor is the wire label of err.
func kindFor(err error) string {
	if errors.Is(err, ErrRateLimited) {
		return kindRateLimited
	}
	return metrics.Outcome(err)
}
