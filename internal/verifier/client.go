package verifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"modhub/internal/domain"
)

// Client calls a remote verifier.
type Client struct {
	Base string
	HTTP *http.Client
}

// NewClient returns a client for the verifier at base. A nil hc uses
// http.DefaultClient.
func NewClient(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

// VerifyToken asks the verifier to check token.
func (c *Client) VerifyToken(ctx context.Context, token string, publicKey string) (domain.Claims, error) {
	var out domain.Claims
	err := c.post(ctx, "/v1/token/verify", TokenRequest{Token: token, PublicKey: publicKey}, &out)
	return out, err
}

// VerifyDataToken asks the verifier to check a data token against data.
func (c *Client) VerifyDataToken(ctx context.Context, token string, data []byte, publicKey string) (domain.Claims, error) {
	var out domain.Claims
	err := c.post(ctx, "/v1/data-token/verify", DataTokenRequest{
		Token:     token,
		Data:      string(data),
		PublicKey: publicKey,
	}, &out)
	return out, err
}

// VerifySignature asks the verifier to check a detached signature.
func (c *Client) VerifySignature(
	ctx context.Context,
	message string,
	signatureHex string,
	publicKeyHex string,
	scheme domain.Scheme,
) (bool, error) {
	var out SignatureResponse
	err := c.post(ctx, "/v1/signature/verify", SignatureRequest{
		Message:   message,
		Signature: signatureHex,
		PublicKey: publicKeyHex,
		Scheme:    scheme,
	}, &out)
	return out.Valid, err
}

// Health returns nil when the verifier answers /healthz.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+"/healthz", nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("verifier get /healthz: %s", resp.Status)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return decodeError(path, resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// decodeError turns an error body back into a sentinel-wrapping error.
func decodeError(path string, resp *http.Response) error {
	var body ErrorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil || body.Kind == "" {
		return fmt.Errorf("verifier post %s: %s", path, resp.Status)
	}
	if sentinel, ok := kindErrors[body.Kind]; ok {
		return fmt.Errorf("verifier post %s: %w: %s", path, sentinel, body.Error)
	}
	return fmt.Errorf("verifier post %s: %s: %s", path, resp.Status, body.Error)
}

// Compile-time assertion that Client implements domain.VerifierClient.
var _ domain.VerifierClient = (*Client)(nil)
