package verifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"modhub/internal/domain"
	"modhub/internal/logging"
	"modhub/internal/metrics"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Server serves the verification API.
type Server struct {
	tokens  domain.TokenService
	signer  domain.SignerService
	limiter *RateLimiter
	metrics *metrics.Recorder
	gather  prometheus.Gatherer
	log     *slog.Logger

	// Now feeds the rate limiter. Tests replace it.
	Now func() time.Time
}

// NewServer builds a Server. limiter, rec, gather and log may be nil; a nil
// gather disables /metrics.
func NewServer(
	tokens domain.TokenService,
	signer domain.SignerService,
	limiter *RateLimiter,
	rec *metrics.Recorder,
	gather prometheus.Gatherer,
	log *slog.Logger,
) *Server {
	if log == nil {
		log = logging.Discard()
	}
	return &Server{
		tokens:  tokens,
		signer:  signer,
		limiter: limiter,
		metrics: rec,
		gather:  gather,
		log:     log,
		Now:     time.Now,
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.handle(mux, "POST /v1/token/verify", true, s.verifyToken)
	s.handle(mux, "POST /v1/data-token/verify", true, s.verifyDataToken)
	s.handle(mux, "POST /v1/signature/verify", true, s.verifySignature)
	s.handle(mux, "GET /healthz", false, func(w http.ResponseWriter, _ *http.Request) error {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return nil
	})
	if s.gather != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(s.gather, promhttp.HandlerOpts{}))
	}
	return mux
}

type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle registers h with rate limiting, error mapping, metrics and an access log.
func (s *Server) handle(mux *http.ServeMux, pattern string, limited bool, h handlerFunc) {
	mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		var err error
		if limited && !s.limiter.Allow(clientKey(r), s.Now()) {
			s.metrics.RateLimited()
			err = ErrRateLimited
		} else {
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			err = h(rec, r)
		}
		if err != nil {
			writeError(rec, err)
		}

		elapsed := time.Since(start)
		s.metrics.Request(pattern, rec.status, elapsed)
		attrs := []any{
			"route", pattern,
			"remote", r.RemoteAddr,
			"status", rec.status,
			"bytes", rec.bytes,
			"duration", elapsed,
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		s.log.Info("request", attrs...)
	})
}

func (s *Server) verifyToken(w http.ResponseWriter, r *http.Request) error {
	var req TokenRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	if req.Token == "" {
		return fmt.Errorf("%w: token is required", domain.ErrInvalidInput)
	}
	claims, err := s.tokens.VerifyToken(req.Token, req.PublicKey)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, claims)
	return nil
}

func (s *Server) verifyDataToken(w http.ResponseWriter, r *http.Request) error {
	var req DataTokenRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	if req.Token == "" {
		return fmt.Errorf("%w: token is required", domain.ErrInvalidInput)
	}
	claims, err := s.tokens.VerifyDataToken(req.Token, []byte(req.Data), req.PublicKey)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, claims)
	return nil
}

func (s *Server) verifySignature(w http.ResponseWriter, r *http.Request) error {
	var req SignatureRequest
	if err := decodeBody(r, &req); err != nil {
		return err
	}
	scheme, err := domain.ParseScheme(string(req.Scheme))
	if err != nil {
		return err
	}
	ok, err := s.signer.Verify(req.Message, req.Signature, req.PublicKey, scheme)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, SignatureResponse{Valid: ok})
	return nil
}

func decodeBody(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: body exceeds %d bytes", domain.ErrInvalidInput, tooLarge.Limit)
		}
		return fmt.Errorf("%w: request body: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func writeError(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	writeJSON(w, status, ErrorResponse{Error: msg, Kind: kindFor(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusRecorder captures the status and size of a response for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}
